package knowledge

import (
	"context"
	"os"
	"strings"

	"github.com/GasserElSawaf/UniCloudTest/pkg/logger"
)

// Documents holds the grounding texts loaded once at startup.
type Documents struct {
	// Information grounds university Q&A.
	Information string
	// RegistrationHelp grounds questions about the registration process.
	RegistrationHelp string
}

// Load reads both grounding documents. A missing or unreadable file
// degrades to an empty string with a warning instead of failing startup.
func Load(ctx context.Context, informationPath, registrationInfoPath string) *Documents {
	return &Documents{
		Information:      loadFile(ctx, informationPath),
		RegistrationHelp: loadFile(ctx, registrationInfoPath),
	}
}

func loadFile(ctx context.Context, path string) string {
	log := logger.FromContext(ctx)
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("knowledge document unavailable, degrading to empty", "path", path, "error", err)
		return ""
	}
	log.Info("loaded knowledge document", "path", path, "bytes", len(data))
	return strings.TrimSpace(string(data))
}
