package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/advisor"
	"github.com/ai4life/career-advisor-go/internal/config"
	"github.com/ai4life/career-advisor-go/internal/server"
	"github.com/ai4life/career-advisor-go/internal/service"
	"github.com/ai4life/career-advisor-go/internal/service/ai"
	"github.com/ai4life/career-advisor-go/internal/service/cache"
	"github.com/ai4life/career-advisor-go/internal/service/database"
)

// Container bundles the assembled services behind the HTTP server.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Postgres *database.PostgresService
	Cache    *cache.Service
	Models   *ai.Manager
	Engine   *advisor.Engine

	httpServer *http.Server
}

// Build assembles all infrastructure services. Heavy-weight
// initialization (DB/cache/AI) happens here so main stays thin.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Cache and database
	cacheSvc, err := cache.NewService(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	postgresSvc, err := database.NewPostgresService(database.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	closers = append(closers, func() {
		_ = postgresSvc.Close()
	})

	if err := postgresSvc.InitSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}

	// Repositories
	surveyRepo := database.NewSurveyRepository(postgresSvc, logger)
	resultRepo := database.NewResultRepository(postgresSvc, logger)
	majorRepo := database.NewMajorRepository(postgresSvc, logger)
	chatRepo := database.NewChatRepository(postgresSvc, logger)
	userRepo := database.NewUserRepository(postgresSvc, logger)

	if err := majorRepo.SeedDefaults(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed default majors: %w", err)
	}

	// Model stack
	modelManager, err := ai.NewManager(ctx, ai.ManagerConfig{
		GeminiAPIKey:       cfg.Gemini.APIKey,
		OpenAIAPIKey:       cfg.OpenAI.APIKey,
		DefaultGeminiModel: cfg.Gemini.Model,
		DefaultOpenAIModel: cfg.OpenAI.Model,
		EnableFallback:     cfg.OpenAI.EnableFallback,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create model manager: %w", err)
	}

	// Rule engine
	engine, err := advisor.NewEngine(nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create advisor engine: %w", err)
	}

	// Orchestration services
	chatSvc := service.NewChatService(modelManager, engine, cacheSvc, cacheSvc, chatRepo, logger)
	surveySvc := service.NewSurveyService(modelManager, engine, surveyRepo, resultRepo, majorRepo, logger)

	var scraperSvc *service.ScraperService
	if cfg.Scraper.Enable {
		scraperSvc = service.NewScraperService(cacheSvc, programSources(cfg.Scraper.ProgramsBaseURL), logger)
	}

	// HTTP layer
	router := server.NewRouter(server.RouterConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ChatHandler:    server.NewChatHandler(chatSvc),
		ChatSocket:     server.NewChatSocketHandler(chatSvc, cfg.Server.AllowedOrigins, logger),
		SurveyHandler:  server.NewSurveyHandler(surveySvc),
		MajorHandler:   server.NewMajorHandler(majorRepo, scraperSvc),
		UserHandler:    server.NewUserHandler(userRepo),
		StatusHandler:  server.NewStatusHandler(modelManager, postgresSvc, cacheSvc),
	})

	return &Container{
		Config:     cfg,
		Logger:     logger,
		Postgres:   postgresSvc,
		Cache:      cacheSvc,
		Models:     modelManager,
		Engine:     engine,
		httpServer: server.NewHTTPServer(cfg.Server.Host, cfg.Server.Port, router),
	}, nil
}

// Run serves HTTP until the listener fails or Shutdown is called.
func (c *Container) Run() error {
	c.Logger.Info("HTTP server listening", zap.String("addr", c.httpServer.Addr))
	if err := c.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (c *Container) Shutdown(ctx context.Context) error {
	err := c.httpServer.Shutdown(ctx)
	_ = c.Cache.Close()
	_ = c.Postgres.Close()
	return err
}

func programSources(baseURL string) []service.ScrapeSource {
	base := strings.TrimSuffix(baseURL, "/")
	return []service.ScrapeSource{
		{Name: "programs", URL: base + "/nganh-hoc"},
		{Name: "admissions", URL: base + "/tuyen-sinh"},
	}
}
