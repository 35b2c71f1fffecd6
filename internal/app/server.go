// internal/app/server.go
package app

import (
	"context"
	"fmt"

	"crm-service/internal/config"
	"crm-service/internal/db"
	"crm-service/internal/events"
	activityHandler "crm-service/internal/handlers/activity"
	contactHandler "crm-service/internal/handlers/contact"
	dashboardHandler "crm-service/internal/handlers/dashboard"
	intelHandler "crm-service/internal/handlers/intel"
	pipelineHandler "crm-service/internal/handlers/pipeline"
	wsHandler "crm-service/internal/handlers/ws"
	"crm-service/internal/llm"
	"crm-service/internal/middleware"
	"crm-service/internal/pkg/token"
	"crm-service/internal/repository/postgres"
	activityUsecase "crm-service/internal/service/activity"
	contactUsecase "crm-service/internal/service/contact"
	dashboardUsecase "crm-service/internal/service/dashboard"
	intelUsecase "crm-service/internal/service/intel"
	pipelineUsecase "crm-service/internal/service/pipeline"
	seedUsecase "crm-service/internal/service/seed"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if err := db.RunMigrations(s.cfg.DatabaseURL, s.cfg.MigrationsPath, logger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// ----- Redis (dashboard cache; optional) -----
	var redisClient *redis.Client
	redisClient, err = db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		logger.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		redisClient = nil
	}

	// ----- Repositories -----
	dbWrapper := postgres.NewDB(pool)
	contactRepo := postgres.NewContactRepository(pool, dbWrapper)
	dealRepo := postgres.NewDealRepository(pool, dbWrapper)
	activityRepo := postgres.NewActivityRepository(pool)
	intelRepo := postgres.NewIntelRepository(pool)

	// ----- Events Hub -----
	hub := events.NewHub(logger)
	go hub.Run(ctx)

	// ----- Services (Usecases) -----
	contactService := contactUsecase.NewContactService(contactRepo, dealRepo, activityRepo, logger)
	pipelineService := pipelineUsecase.NewPipelineService(dealRepo, contactRepo, hub, logger)
	dashboardService := dashboardUsecase.NewDashboardService(
		contactRepo,
		dealRepo,
		activityRepo,
		redisClient,
		s.cfg.DashboardCacheTTL,
		logger,
	)
	activityService := activityUsecase.NewActivityService(activityRepo, contactRepo, dealRepo, logger)
	analyzer := llm.NewAnthropicAnalyzer(s.cfg.AnthropicAPIKey, s.cfg.AnthropicModel)
	intelService := intelUsecase.NewIntelService(intelRepo, analyzer, logger)

	// ----- Seed demo data -----
	// Must finish before the listener starts: the fixture rows reference
	// each other by insertion position.
	if s.cfg.SeedOnStart {
		seedService := seedUsecase.NewSeedService(contactRepo, dealRepo, activityRepo, intelRepo, logger)
		if err := seedService.Seed(ctx); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	// ----- Handlers -----
	contactHandlerInst := contactHandler.NewContactHandler(contactService)
	pipelineHandlerInst := pipelineHandler.NewPipelineHandler(pipelineService)
	dashboardHandlerInst := dashboardHandler.NewDashboardHandler(dashboardService)
	activityHandlerInst := activityHandler.NewActivityHandler(activityService)
	intelHandlerInst := intelHandler.NewIntelHandler(intelService)
	wsHandlerInst := wsHandler.NewWSHandler(hub, logger)

	// ----- Middlewares -----
	verifier := token.NewVerifier(s.cfg.TokenSecret, s.cfg.TokenIssuer, s.cfg.TokenAudience)
	authMiddleware := middleware.NewAuthMiddleware(verifier)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		ContactHandler:   contactHandlerInst,
		PipelineHandler:  pipelineHandlerInst,
		DashboardHandler: dashboardHandlerInst,
		ActivityHandler:  activityHandlerInst,
		IntelHandler:     intelHandlerInst,
		WSHandler:        wsHandlerInst,
		AuthMiddleware:   authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}
