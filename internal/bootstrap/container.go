package bootstrap

import (
	"context"
	"log"

	"nextel-storefront-be/internal/config"
	"nextel-storefront-be/internal/controller"
	"nextel-storefront-be/internal/handler"
	"nextel-storefront-be/internal/pkg/logger"
	"nextel-storefront-be/internal/pkg/mailer"
	"nextel-storefront-be/internal/repository/contract"
	"nextel-storefront-be/internal/repository/filestore"
	"nextel-storefront-be/internal/repository/implementation"
	"nextel-storefront-be/internal/repository/memory"
	"nextel-storefront-be/internal/repository/redisstore"
	"nextel-storefront-be/internal/service"
	"nextel-storefront-be/internal/websocket"
	"nextel-storefront-be/pkg/analytics"
	pktNats "nextel-storefront-be/pkg/nats"
	"nextel-storefront-be/pkg/remote"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	CartController     controller.ICartController
	CheckoutController controller.ICheckoutController
	CatalogController  controller.ICatalogController
	AuthController     controller.IAuthController
	SupportController  controller.ISupportController

	// Background services (exposed for main.go to run)
	AnalyticsConsumerService service.IAnalyticsConsumerService

	// WebSockets
	ChatStreamHandler *handler.ChatStreamHandler
	WebSocketHub      *websocket.Hub

	Logger logger.ILogger
}

// NewContainer wires the dependency graph. db may be nil: every repository
// has an in-memory fallback so the storefront runs standalone.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Upstream gateway
	gateway := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	sink := analytics.NewWatermillSink(pubSub, analytics.TopicEvents)

	// Redis (optional: cart store + cross-instance chat fan-out)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// Cart store: Redis when available, otherwise files under DataDir,
	// otherwise memory.
	var cartStore contract.KeyedStore
	switch {
	case rdb != nil:
		cartStore = redisstore.NewKeyedStore(rdb, "storefront:")
		log.Println("[INFO] Cart store: redis")
	case cfg.App.DataDir != "":
		fileStore, err := filestore.NewKeyedStore(cfg.App.DataDir)
		if err != nil {
			log.Printf("[WARN] Failed to init file store: %v. Falling back to memory", err)
			cartStore = memory.NewKeyedStore()
		} else {
			cartStore = fileStore
			log.Printf("[INFO] Cart store: files under %s", cfg.App.DataDir)
		}
	default:
		cartStore = memory.NewKeyedStore()
		log.Println("[INFO] Cart store: memory")
	}

	// Durable repositories: gorm when a database is configured.
	var (
		orderRepo  contract.OrderRepository
		userRepo   contract.FallbackUserRepository
		ticketRepo contract.SupportTicketRepository
	)
	if db != nil {
		orderRepo = implementation.NewOrderRepository(db)
		userRepo = implementation.NewFallbackUserRepository(db)
		ticketRepo = implementation.NewSupportTicketRepository(db)
	} else {
		orderRepo = memory.NewOrderRepository()
		userRepo = memory.NewFallbackUserRepository()
		ticketRepo = memory.NewSupportTicketRepository()
	}

	// Analytics forwarder: NATS when configured, structured log otherwise.
	var forwarder analytics.Forwarder = analytics.NewLogForwarder(sysLogger)
	if cfg.App.AnalyticsForwarder == "nats" && cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v. Using log forwarder", err)
		} else {
			forwarder = analytics.NewNatsForwarder(natsPub)
			log.Println("[INFO] Analytics forwarder: nats")
		}
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/chat.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// Services
	conversationService := service.NewConversationService(
		memory.NewConversationRepository(),
		sink,
		wsHub,
		cfg.Chat.ReplyBaseDelay,
		cfg.Chat.ReplyJitter,
	)
	cartService := service.NewCartService(cartStore, sink, sysLogger)
	checkoutService := service.NewCheckoutService(
		memory.NewCheckoutRepository(),
		cartService,
		gateway,
		orderRepo,
		sink,
		sysLogger,
		cfg.Checkout.MaskFailures,
	)
	catalogService := service.NewCatalogService(gateway, orderRepo, sysLogger)
	authService := service.NewAuthService(gateway, userRepo, sink, sysLogger, cfg.Auth.JwtSecret, cfg.Auth.DemoMode)
	supportService := service.NewSupportService(ticketRepo, emailService, sink, sysLogger)
	consumerService := service.NewAnalyticsConsumerService(pubSub, analytics.TopicEvents, forwarder, sysLogger)

	return &Container{
		ChatController:     controller.NewChatController(conversationService),
		CartController:     controller.NewCartController(cartService),
		CheckoutController: controller.NewCheckoutController(checkoutService),
		CatalogController:  controller.NewCatalogController(catalogService),
		AuthController:     controller.NewAuthController(authService),
		SupportController:  controller.NewSupportController(supportService),

		AnalyticsConsumerService: consumerService,

		ChatStreamHandler: handler.NewChatStreamHandler(wsHub, wsLogger),
		WebSocketHub:      wsHub,

		Logger: sysLogger,
	}
}
