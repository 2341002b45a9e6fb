package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should load both documents when files exist", func(t *testing.T) {
		dir := t.TempDir()
		info := filepath.Join(dir, "information.txt")
		help := filepath.Join(dir, "registration.txt")
		require.NoError(t, os.WriteFile(info, []byte("university facts\n"), 0o644))
		require.NoError(t, os.WriteFile(help, []byte("registration help"), 0o644))
		docs := Load(context.Background(), info, help)
		assert.Equal(t, "university facts", docs.Information)
		assert.Equal(t, "registration help", docs.RegistrationHelp)
	})
	t.Run("Should degrade to empty strings for missing files", func(t *testing.T) {
		docs := Load(context.Background(), "/nonexistent/info.txt", "/nonexistent/help.txt")
		assert.Empty(t, docs.Information)
		assert.Empty(t, docs.RegistrationHelp)
	})
	t.Run("Should treat empty paths as absent documents", func(t *testing.T) {
		docs := Load(context.Background(), "", "")
		assert.Empty(t, docs.Information)
		assert.Empty(t, docs.RegistrationHelp)
	})
}
