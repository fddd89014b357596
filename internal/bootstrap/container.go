package bootstrap

import (
	"context"
	"log"

	"degrondvraag-be/internal/config"
	"degrondvraag-be/internal/controller"
	"degrondvraag-be/internal/pkg/logger"
	"degrondvraag-be/internal/pkg/mailer"
	"degrondvraag-be/internal/repository/memory"
	"degrondvraag-be/internal/repository/unitofwork"
	"degrondvraag-be/internal/service"
	"degrondvraag-be/internal/websocket"
	"degrondvraag-be/pkg/llm/factory"
	"degrondvraag-be/pkg/markdown"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	EssayController    controller.IEssayController
	CommentController  controller.ICommentController
	VoteController     controller.IVoteController
	ChatController     controller.IChatController
	AdminController    controller.IAdminController
	PageController     controller.IPageController
	FeedbackController controller.IFeedbackController

	// Background services, run from main.go
	ConsumerService service.IConsumerService

	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(cfg)
	renderer := markdown.NewRenderer()

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// LLM provider backing Clarus
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	transcriptRepo := memory.NewTranscriptRepository()

	// Redis, for cross-instance websocket fanout. Optional.
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Running single instance", err)
		rdb = nil
	}

	// Services
	publisherService := service.NewPublisherService(pubSub)
	essayService := service.NewEssayService(uowFactory, publisherService, renderer)
	commentService := service.NewCommentService(uowFactory, publisherService)
	voteService := service.NewVoteService(uowFactory, publisherService)
	authService := service.NewAuthService(uowFactory, cfg, sysLogger)
	chatService := service.NewChatService(uowFactory, llmProvider, transcriptRepo, sysLogger)
	pageService := service.NewPageService(renderer)
	feedbackService := service.NewFeedbackService(emailService, sysLogger)

	snapshotService := service.NewSnapshotService(essayService, commentService, voteService)

	// Live subscriptions
	wsLogger := logger.NewIsolatedLogger("logs/live.log")
	wsHub := websocket.NewHub(rdb, snapshotService, wsLogger)
	go wsHub.Run()

	consumerService := service.NewConsumerService(pubSub, snapshotService, wsHub, sysLogger)

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		EssayController:    controller.NewEssayController(essayService),
		CommentController:  controller.NewCommentController(commentService),
		VoteController:     controller.NewVoteController(voteService),
		ChatController:     controller.NewChatController(chatService),
		AdminController:    controller.NewAdminController(essayService, chatService),
		PageController:     controller.NewPageController(pageService),
		FeedbackController: controller.NewFeedbackController(feedbackService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
