package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GasserElSawaf/UniCloudTest/engine/core"
	"github.com/GasserElSawaf/UniCloudTest/engine/infra/postgres"
	"github.com/GasserElSawaf/UniCloudTest/engine/infra/store"
	"github.com/GasserElSawaf/UniCloudTest/engine/knowledge"
	"github.com/GasserElSawaf/UniCloudTest/engine/llm"
	llmadapter "github.com/GasserElSawaf/UniCloudTest/engine/llm/adapter"
	"github.com/GasserElSawaf/UniCloudTest/engine/registration"
	regrouter "github.com/GasserElSawaf/UniCloudTest/engine/registration/router"
	"github.com/GasserElSawaf/UniCloudTest/pkg/config"
	"github.com/GasserElSawaf/UniCloudTest/pkg/logger"
)

const (
	httpReadTimeout       = 15 * time.Second
	httpWriteTimeout      = 60 * time.Second
	httpIdleTimeout       = 60 * time.Second
	serverShutdownTimeout = 5 * time.Second
)

// Server wires the dialogue engine behind an HTTP listener.
type Server struct {
	cfg  *config.Config
	http *http.Server
	pool *pgxpool.Pool
}

// New assembles the full dependency graph: knowledge documents, language
// service, registration conversation, repository, and routes.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	log := logger.FromContext(ctx)
	docs := knowledge.Load(ctx, cfg.Knowledge.InformationFile, cfg.Knowledge.RegistrationInfoFile)

	client, err := llmadapter.NewLangChainAdapter(&core.ProviderConfig{
		Provider:    core.ProviderName(cfg.LLM.Provider),
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		APIURL:      cfg.LLM.APIURL,
		APIVersion:  cfg.LLM.APIVersion,
		Temperature: cfg.LLM.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize language model: %w", err)
	}

	schema := registration.DefaultSchema()
	svc := llm.NewService(client, llm.ServiceConfig{
		FieldNames:       schema.Names(),
		FieldAliases:     registration.FieldAliases(),
		Information:      docs.Information,
		RegistrationHelp: docs.RegistrationHelp,
	})

	var repo registration.Repository
	var pool *pgxpool.Pool
	if cfg.Database.URL != "" {
		pool, err = postgres.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		pgRepo := postgres.NewRegistrationRepo(pool)
		if cfg.Database.AutoMigrate {
			if err := pgRepo.EnsureSchema(ctx); err != nil {
				pool.Close()
				return nil, err
			}
		}
		repo = pgRepo
		log.Info("using postgres registration store")
	} else {
		repo = store.NewMemoryRepo()
		log.Warn("no database url configured, registrations are stored in memory only")
	}

	conversation := registration.NewConversation(schema, registration.NewRegistry(), svc, repo)
	handler := regrouter.NewHandler(conversation, svc, repo, docs.Information)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	regrouter.Register(router.Group("/api/v0"), handler)

	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  httpReadTimeout,
			WriteTimeout: httpWriteTimeout,
			IdleTimeout:  httpIdleTimeout,
		},
		pool: pool,
	}, nil
}

// Run serves HTTP until ctx is canceled or a termination signal arrives,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
