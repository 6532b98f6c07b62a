package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliocraft/backend/adapters/event"
	httpAdapter "github.com/foliocraft/backend/adapters/http"
	"github.com/foliocraft/backend/adapters/llm"
	"github.com/foliocraft/backend/adapters/persistence"
	"github.com/foliocraft/backend/internal/application/service"
	authUC "github.com/foliocraft/backend/internal/application/usecase/auth"
	portfolioUC "github.com/foliocraft/backend/internal/application/usecase/portfolio"
	"github.com/foliocraft/backend/internal/config"
	"github.com/foliocraft/backend/pkg/auth"
	"github.com/foliocraft/backend/pkg/logger"
	"github.com/foliocraft/backend/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "foliocraft-api")
		if err != nil {
			appLogger.Fatal("cannot initialize tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	medium, cleanup, err := newMedium(cfg)
	if err != nil {
		appLogger.Fatal("cannot initialize storage medium", err)
	}
	defer cleanup()

	// Repositories
	accountRepo := persistence.NewMediumAccountRepo(medium, appLogger)
	portfolioRepo := persistence.NewMediumPortfolioRepo(medium, appLogger)

	// Optional collaborators
	var events event.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := event.NewKafkaProducer(cfg)
		if err != nil {
			appLogger.Fatal("cannot initialize Kafka producer", err)
		}
		defer producer.Close()
		events = producer
	}

	var copySvc service.CopyService
	switch cfg.Assist.Provider {
	case "gemini":
		copySvc, err = llm.NewGeminiCopyAdapter(context.Background(), cfg, appLogger)
	case "ollama":
		copySvc, err = llm.NewOllamaCopyAdapter(cfg, appLogger)
	case "":
		appLogger.Info("assist provider not configured, endpoints will answer with fallbacks")
	default:
		appLogger.Fatal("unknown assist provider: "+cfg.Assist.Provider, nil)
	}
	if err != nil {
		appLogger.Fatal("cannot initialize assist provider", err)
	}

	// Services and use cases
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	signUpUseCase := authUC.NewSignUpUseCase(accountRepo, portfolioRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(accountRepo, jwtSvc, appLogger)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(portfolioRepo, accountRepo, events, appLogger)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(signUpUseCase, loginUseCase)
	portfolioHandler := httpAdapter.NewPortfolioHandler(portfolioUseCase)
	assistHandler := httpAdapter.NewAssistHandler(copySvc, appLogger)

	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.SignUp)
			authRoutes.POST("/login", authHandler.Login)
		}

		me := api.Group("/me")
		me.Use(authMiddleware)
		{
			me.GET("/portfolio", portfolioHandler.GetMine)
			me.PUT("/portfolio", portfolioHandler.SaveMine)

			assist := me.Group("/assist")
			{
				assist.POST("/bio", assistHandler.DraftBio)
				assist.POST("/polish", assistHandler.PolishText)
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/portfolios/:username", portfolioHandler.GetPublished)
		}
	}

	appLogger.Info("server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}

// newMedium picks the collection medium from config. The file medium is the
// default and needs nothing external.
func newMedium(cfg config.Config) (persistence.Medium, func(), error) {
	switch cfg.Storage.Driver {
	case "file", "":
		m, err := persistence.NewFileMedium(cfg.Storage.DataDir)
		return m, func() {}, err
	case "redis":
		client, err := persistence.NewRedisClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		return persistence.NewRedisMedium(client), func() { client.Close() }, nil
	case "postgres":
		pool, err := persistence.NewPostgresPool(cfg)
		if err != nil {
			return nil, nil, err
		}
		return persistence.NewPostgresMedium(pool), func() { pool.Close() }, nil
	default:
		return nil, nil, &unknownDriverError{driver: cfg.Storage.Driver}
	}
}

type unknownDriverError struct{ driver string }

func (e *unknownDriverError) Error() string {
	return "unknown storage driver: " + e.driver
}
