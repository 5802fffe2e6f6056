package bootstrap

import (
	"context"
	"log"

	"github.com/harshil12345000/certifyr-sub001/internal/config"
	"github.com/harshil12345000/certifyr-sub001/internal/controller"
	"github.com/harshil12345000/certifyr-sub001/internal/handler"
	"github.com/harshil12345000/certifyr-sub001/internal/pkg/logger"
	"github.com/harshil12345000/certifyr-sub001/internal/pkg/mailer"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/implementation"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/memory"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/unitofwork"
	"github.com/harshil12345000/certifyr-sub001/internal/service"
	"github.com/harshil12345000/certifyr-sub001/internal/websocket"
	"github.com/harshil12345000/certifyr-sub001/pkg/assist/access"
	"github.com/harshil12345000/certifyr-sub001/pkg/llm"
	"github.com/harshil12345000/certifyr-sub001/pkg/llm/factory"

	pktNats "github.com/harshil12345000/certifyr-sub001/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	OrganizationController controller.IOrganizationController
	RecordController       controller.IRecordController
	TemplateController     controller.ITemplateController
	AssistantController    controller.IAssistantController
	DocumentController     controller.IDocumentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// LLM is optional, the assistant falls back to deterministic phrasing
	var llmProvider llm.LLMProvider
	if cfg.Assist.LLMProvider != "" {
		provider, err := factory.NewLLMProvider(
			cfg.Assist.LLMProvider,
			cfg.Assist.LLMModel,
			cfg.Assist.LLMBaseURL,
		)
		if err != nil {
			log.Printf("[WARN] Failed to initialize LLM Provider: %v (falling back to deterministic responses)", err)
		} else {
			llmProvider = provider
			log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Assist.LLMProvider, cfg.Assist.LLMModel)
		}
	}

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
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

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	publisherService := service.NewPublisherService(cfg.App.AuditTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.AuditTopic,
		uowFactory,
	)

	// 3. Services
	accessVerifier := access.NewVerifier(cfg.Assist.DailyLimit)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	userService := service.NewUserService(uowFactory, emailService, accessVerifier)
	organizationService := service.NewOrganizationService(uowFactory)
	recordService := service.NewRecordService(uowFactory, publisherService, natsPub)
	templateService := service.NewTemplateService(uowFactory)
	documentService := service.NewDocumentService(uowFactory, emailService, natsPub)
	assistantService := service.NewAssistantService(
		uowFactory,
		llmProvider,
		sessionRepo,
		documentService,
		accessVerifier,
	)

	// 3.5 Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, sysLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	// Handler
	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, sysLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:         controller.NewAuthController(authService),
		UserController:         controller.NewUserController(userService),
		OrganizationController: controller.NewOrganizationController(organizationService),
		RecordController:       controller.NewRecordController(recordService),
		TemplateController:     controller.NewTemplateController(templateService),
		AssistantController:    controller.NewAssistantController(assistantService),
		DocumentController:     controller.NewDocumentController(documentService),

		ConsumerService: consumerService,
	}
}
