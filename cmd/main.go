package main

import (
	"context"
	"log"
	"ticketing-service/config"
	audithandler "ticketing-service/internal/module/audit/handler"
	auditrepositories "ticketing-service/internal/module/audit/repositories"
	auditusecases "ticketing-service/internal/module/audit/usecases"
	authhandler "ticketing-service/internal/module/auth/handler"
	authrepositories "ticketing-service/internal/module/auth/repositories"
	authusecases "ticketing-service/internal/module/auth/usecases"
	financehandler "ticketing-service/internal/module/finance/handler"
	financerepositories "ticketing-service/internal/module/finance/repositories"
	financeusecases "ticketing-service/internal/module/finance/usecases"
	tickethandler "ticketing-service/internal/module/ticket/handler"
	ticketrepositories "ticketing-service/internal/module/ticket/repositories"
	ticketusecases "ticketing-service/internal/module/ticket/usecases"
	"ticketing-service/internal/pkg/database"
	"ticketing-service/internal/pkg/http"
	log_internal "ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/messagestream"
	"ticketing-service/internal/pkg/middleware"
	"ticketing-service/internal/pkg/monitoring"
	"ticketing-service/internal/pkg/qr"
	"ticketing-service/internal/pkg/redis"
	"ticketing-service/internal/pkg/scheduler"
	router "ticketing-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, sched := initService(cfg)

	for _, mr := range messageRouters {
		ctx := context.Background()
		go func(mr *message.Router) {
			if err := mr.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(mr)
	}

	go sched()

	go monitoring.StartMetricsServer(cfg.Monitoring.MetricsPort)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, func()) {

	// init database
	db := database.GetConnection(&cfg.Database)
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	sched := &scheduler.Scheduler{Log: logger}
	asynqClient := sched.InitClient(&cfg.Redis)

	validate := validator.New()

	// ticket module
	ticketRepo := ticketrepositories.New(db, logger)
	ticketUsecase := ticketusecases.New(ticketRepo, logger, publisher, qr.NewGenerator(), &cfg.Ticketing)
	ticketHandler := &tickethandler.TicketHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   ticketUsecase,
	}

	// finance module
	financeRepo := financerepositories.New(db, logger)
	financeUsecase := financeusecases.New(financeRepo, logger)
	financeHandler := &financehandler.FinanceHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   financeUsecase,
	}

	// auth module
	authRepo := authrepositories.New(db, logger, redisClient, cfg.Admin.LoginAttemptTTL)
	authUsecase, err := authusecases.New(authRepo, logger, asynqClient, &cfg.Admin)
	if err != nil {
		log.Fatal(err)
	}
	authHandler := &authhandler.AuthHandler{
		Log:        logger,
		Validator:  validate,
		Usecase:    authUsecase,
		SessionTTL: cfg.Admin.SessionTTL,
	}

	// audit module
	auditRepo := auditrepositories.New(db, logger)
	auditUsecase := auditusecases.New(auditRepo, logger)
	auditHandler := &audithandler.AuditHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   auditUsecase,
	}

	m := &middleware.Middleware{
		Log:  logger,
		Repo: authRepo,
	}

	var messageRouters []*message.Router

	ticketEventsRouter, err := messagestream.NewRouter(publisher, "poisoned_queue", "ticket_events_handler", "ticket_events", subscriber, auditHandler.ConsumeTicketEvents)
	if err != nil {
		logger.Error(ctx, "Failed to create ticket_events router", err)
	}
	messageRouters = append(messageRouters, ticketEventsRouter)

	serverHttp := http.SetupHttpEngine()
	r := router.Initialize(serverHttp, ticketHandler, financeHandler, authHandler, auditHandler, m)

	runScheduler := func() {
		go sched.StartMonitoring(&cfg.Redis, cfg.Monitoring.SchedulerPort)
		sched.StartHandler(
			&cfg.Redis,
			[]string{scheduler.TypeSessionExpired},
			[]func(ctx context.Context, t *asynq.Task) error{authHandler.SetSessionExpired},
		)
	}

	return r, messageRouters, runScheduler
}
