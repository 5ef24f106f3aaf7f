package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpapi "github.com/artem13815/recruit/api/http"
	"github.com/artem13815/recruit/api/http/handlers"
	"github.com/artem13815/recruit/pkg/assessment"
	"github.com/artem13815/recruit/pkg/candidate"
	"github.com/artem13815/recruit/pkg/config"
	"github.com/artem13815/recruit/pkg/health"
	"github.com/artem13815/recruit/pkg/health/checkers"
	"github.com/artem13815/recruit/pkg/llm"
	"github.com/artem13815/recruit/pkg/llm/gemini"
	"github.com/artem13815/recruit/pkg/llm/openai"
	"github.com/artem13815/recruit/pkg/reconcile"
	pgrepo "github.com/artem13815/recruit/pkg/repository/postgres"
	"github.com/artem13815/recruit/pkg/security/apikey"
	"github.com/artem13815/recruit/pkg/security/jwt"
	"github.com/artem13815/recruit/pkg/storage/files"
	"github.com/artem13815/recruit/pkg/storage/postgres"
	redisstore "github.com/artem13815/recruit/pkg/storage/redis"
	"github.com/artem13815/recruit/pkg/taxonomy"
	"github.com/artem13815/recruit/pkg/vacancy"
)

// maxFilesPerUpload bounds the multipart body together with the per-file limit.
const maxFilesPerUpload = 10

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger := setup()
		defer func() { _ = logger.Sync() }()

		if err := cfg.ValidateServe(); err != nil {
			logger.Error("invalid configuration", zap.Error(err))
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := postgres.Open(connectCtx, cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()

	jobRepo := pgrepo.NewJobRepository(pool)
	candidateRepo := pgrepo.NewCandidateRepository(pool)
	assessmentRepo := pgrepo.NewAssessmentRepository(pool)

	providers, err := buildProviders(ctx, cfg, logger)
	if err != nil {
		return err
	}

	readiness := []health.Checker{checkers.NewPostgresChecker(pool)}
	var guard assessment.Guard
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(connectCtx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() { _ = rdb.Close() }()
		guard = redisstore.NewSubmissionGuard(rdb, redisstore.GuardTTL(cfg.LLMTimeout, len(providers)))
		readiness = append(readiness, checkers.NewRedisChecker(rdb))
	} else {
		logger.Warn("REDIS_URL not set, concurrent submissions are only stopped by the database")
	}

	store, err := files.NewLocalStore(cfg.UploadDir, cfg.FilesBaseURL)
	if err != nil {
		return fmt.Errorf("upload dir: %w", err)
	}

	vacancyUC := vacancy.NewService(jobRepo)
	candidateUC := candidate.NewService(candidateRepo, jobRepo, store, cfg.MaxUploadBytes(), logger)
	assessmentUC := assessment.NewService(
		assessmentRepo,
		candidateRepo,
		taxonomy.Default(),
		assessment.NewAnalyzer(logger, providers...),
		assessment.Options{
			LinkBase: cfg.PublicBaseURL,
			TTL:      cfg.AssessmentTTL,
			Guard:    guard,
			Logger:   logger,
		},
	)
	reconcileUC := reconcile.NewService(jobRepo, candidateRepo)

	app := fiber.New(fiber.Config{
		AppName:               appName,
		BodyLimit:             cfg.MaxUploadBytes()*maxFilesPerUpload + 1<<20,
		DisableStartupMessage: true,
	})
	httpapi.Register(app,
		httpapi.Handlers{
			Health:     handlers.NewHealthHandler(health.NewService(readiness...), logger),
			Jobs:       handlers.NewJobHandler(vacancyUC),
			Candidates: handlers.NewCandidateHandler(candidateUC, assessmentUC, cfg.MaxUploadBytes()),
			Data:       handlers.NewDataHandler(reconcileUC, logger),
			Intake:     handlers.NewIntakeHandler(candidateUC),
			Assessment: handlers.NewAssessmentHandler(assessmentUC),
		},
		httpapi.Middleware{
			Auth:   jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
			Intake: apikey.NewMiddleware(cfg.IntakeAPIKey),
		},
		store.Dir(),
	)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("port", cfg.Port), zap.Int("llm_providers", len(providers)))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// buildProviders returns the configured narrative providers in fallback
// order: OpenAI, Groq, Gemini.
func buildProviders(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]llm.Provider, error) {
	var out []llm.Provider
	if cfg.OpenAI.Enabled() {
		out = append(out, openai.New("openai", cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, cfg.LLMTimeout))
	}
	if cfg.Groq.Enabled() {
		base := cfg.Groq.BaseURL
		if base == "" {
			base = openai.GroqBaseURL
		}
		model := cfg.Groq.Model
		if model == "" {
			model = openai.DefaultGroqModel
		}
		out = append(out, openai.New("groq", cfg.Groq.APIKey, base, model, cfg.LLMTimeout))
	}
	if cfg.Gemini.Enabled() {
		g, err := gemini.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		out = append(out, g)
	}
	if len(out) == 0 {
		logger.Warn("no LLM provider configured, results will be stored without narrative")
	}
	for i := range out {
		out[i] = llm.WithRateLimit(out[i], cfg.LLMRPM)
	}
	return out, nil
}

