package bootstrap

import (
	"github.com/tagnote-app/tagnote-be/internal/config"
	"github.com/tagnote-app/tagnote-be/internal/controller"
	"github.com/tagnote-app/tagnote-be/internal/pkg/logger"
	"github.com/tagnote-app/tagnote-be/internal/pkg/mailer"
	"github.com/tagnote-app/tagnote-be/internal/repository/memory"
	"github.com/tagnote-app/tagnote-be/internal/repository/unitofwork"
	"github.com/tagnote-app/tagnote-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController controller.IHealthController
	AuthController   controller.IAuthController
	MemoController   controller.IMemoController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
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

	// In-memory store for one-time sign-in codes
	linkTokens := memory.NewLinkTokenRepository()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ActivityTopic, sysLogger)

	authService := service.NewAuthService(uowFactory, linkTokens, emailService, sysLogger)
	memoService := service.NewMemoService(uowFactory, publisherService, sysLogger)

	// 4. Controllers
	return &Container{
		HealthController: controller.NewHealthController(db),
		AuthController:   controller.NewAuthController(authService),
		MemoController:   controller.NewMemoController(memoService),

		ConsumerService: consumerService,
	}
}
