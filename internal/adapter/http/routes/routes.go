package routes

import (
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "webquote/docs" // swag-generated OpenAPI spec
	"webquote/internal/adapter/http/handlers"
	"webquote/internal/adapter/http/middleware"
	"webquote/internal/adapter/persistence/notionrepo"
	"webquote/internal/infrastructure/config"
	"webquote/internal/infrastructure/notion"
	"webquote/internal/usecase"
	"webquote/pkg/logger"
)

// Run assembles the router and starts the server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Options{ServiceName: "webquote"})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(logger.Options{
		ServiceName: "webquote",
		Level:       logger.ParseLevel(cfg.Server.LogLevel),
	})

	if err := cfg.Notion.Validate(); err != nil {
		log.Fatal().Err(err).Msg("notion configuration incomplete")
	}

	client := notion.NewClient(cfg.Notion.APIKey, notion.WithLogger(log))
	quoteRepo := notionrepo.NewNotionQuoteRepository(client, cfg.Notion.InvoicesDBID, cfg.Notion.ItemsDBID, cfg.Sender.SenderInfo(), log)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Only the API namespace is gated by the rate limiter.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, log)
	api := router.Group("/api")
	api.Use(middleware.RateLimit(limiter))

	addPingRoutes(api)
	addQuoteRoutes(api, quoteHandler)

	log.Info().Int("port", cfg.Server.Port).Msg("starting server")
	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatal().Err(err).Msg("failed to start the server")
	}
}

func setMiddlewares(router *gin.Engine, log zerolog.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
	router.Use(cors.Default())
}
