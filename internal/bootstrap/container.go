package bootstrap

import (
	"context"
	"log"

	"smartbyte-be/internal/config"
	"smartbyte-be/internal/controller"
	"smartbyte-be/internal/pkg/logger"
	"smartbyte-be/internal/repository/implementation"
	"smartbyte-be/internal/repository/memory"
	"smartbyte-be/internal/repository/unitofwork"
	"smartbyte-be/internal/service"
	"smartbyte-be/internal/websocket"
	"smartbyte-be/pkg/catalog/csvloader"
	"smartbyte-be/pkg/dialogue/archetype"
	"smartbyte-be/pkg/dialogue/catalogfilter"
	"smartbyte-be/pkg/dialogue/prompt"
	"smartbyte-be/pkg/dialogue/slots"
	"smartbyte-be/pkg/dialogue/stage"
	"smartbyte-be/pkg/dialogue/upsell"
	"smartbyte-be/pkg/llm/factory"

	pkgNats "smartbyte-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SalesController   controller.ISalesController
	CatalogController controller.ICatalogController
	AuthController    controller.IAuthController

	// Background services, run by main.go
	ConsumerService service.IConsumerService

	// Exposed for route registration and graceful shutdown
	WebSocketHub *websocket.Hub
	AuthService  service.IAuthService
	Logger       logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure. NATS and Redis are optional at startup; the engine
	// answers customers without them.
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Dashboard WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/dashboard.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Dialogue pipeline. One shared extractor keeps slot semantics
	// identical across stage analysis, archetype fallback and upsell.
	extractor := slots.NewExtractor()
	stageClassifier := stage.NewClassifier(extractor, sysLogger)
	archetypeClassifier := archetype.NewClassifier(extractor, sysLogger)

	productRepo := implementation.NewProductRepository(db)
	catalogFilter := catalogfilter.NewFilter(productRepo, sysLogger)
	upsellSelector := upsell.NewSelector(productRepo, extractor, sysLogger)
	promptBuilder := prompt.NewBuilder()

	sessionCache := memory.NewSessionCache()

	// 6. Services
	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(pubSub, wsHub, natsPub)

	salesService := service.NewSalesService(
		uowFactory,
		sessionCache,
		stageClassifier,
		archetypeClassifier,
		catalogFilter,
		upsellSelector,
		promptBuilder,
		llmProvider,
		publisherService,
		cfg.Sales,
		sysLogger,
	)
	catalogService := service.NewCatalogService(uowFactory, csvloader.NewLoader(), publisherService, sysLogger)
	authService := service.NewAuthService(uowFactory, cfg.Auth, sysLogger)

	// 7. Controllers
	return &Container{
		SalesController:   controller.NewSalesController(salesService),
		CatalogController: controller.NewCatalogController(catalogService),
		AuthController:    controller.NewAuthController(authService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
		AuthService:     authService,
		Logger:          sysLogger,
	}
}
