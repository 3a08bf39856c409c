package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/gmfernandes/leadflow/internal/config"
	"github.com/gmfernandes/leadflow/internal/infra/cache"
	"github.com/gmfernandes/leadflow/internal/infra/database"
	"github.com/gmfernandes/leadflow/internal/infra/http/handlers"
	"github.com/gmfernandes/leadflow/internal/infra/http/middleware"
	"github.com/gmfernandes/leadflow/internal/infra/mail"
	"github.com/gmfernandes/leadflow/internal/infra/queue"
	"github.com/gmfernandes/leadflow/internal/usecase"
)

func main() {
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQUser, cfg.RabbitMQPass, cfg.RabbitMQHost, cfg.RabbitMQPort)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	// Repositories
	userRepo := database.NewUserRepository(db)
	businessRepo := database.NewBusinessRepository(db)
	serviceRepo := database.NewServiceRepository(db)
	accountRepo := database.NewPlatformAccountRepository(db)
	campaignRepo := database.NewCampaignRepository(db)
	leadRepo := database.NewLeadRepository(db)
	messageRepo := database.NewMessageRepository(db)
	subscriptionRepo := database.NewSubscriptionRepository(db)
	paymentRepo := database.NewPaymentRepository(db)
	analyticsRepo := database.NewAnalyticsRepository(db)
	recommendationRepo := database.NewRecommendationRepository(db)
	alertRepo := database.NewEmailAlertRepository(db)

	// Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	analyticsCache := cache.NewAnalyticsCache(rdb, cfg.AnalyticsCacheTTL)

	// Alert dispatch worker
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, alertRepo)
	go worker.Start(queue.QueueName)

	// Use cases
	queueAlertUC := usecase.NewQueueAlertUseCase(alertRepo, businessRepo, userRepo, producer)
	registerUserUC := usecase.NewRegisterUserUseCase(userRepo)
	updateUserUC := usecase.NewUpdateUserUseCase(userRepo)
	createBusinessUC := usecase.NewCreateBusinessUseCase(businessRepo)
	updateBusinessUC := usecase.NewUpdateBusinessUseCase(businessRepo)
	createServiceUC := usecase.NewCreateServiceUseCase(serviceRepo)
	updateServiceUC := usecase.NewUpdateServiceUseCase(serviceRepo)
	createAccountUC := usecase.NewCreatePlatformAccountUseCase(accountRepo)
	updateAccountUC := usecase.NewUpdatePlatformAccountUseCase(accountRepo)
	createCampaignUC := usecase.NewCreateCampaignUseCase(campaignRepo)
	updateCampaignUC := usecase.NewUpdateCampaignUseCase(campaignRepo)
	captureLeadUC := usecase.NewCaptureLeadUseCase(leadRepo, accountRepo, queueAlertUC)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo, queueAlertUC)
	postMessageUC := usecase.NewPostMessageUseCase(messageRepo)
	markReadUC := usecase.NewMarkMessageReadUseCase(messageRepo)
	openSubscriptionUC := usecase.NewOpenSubscriptionUseCase(subscriptionRepo)
	lifecycleUC := usecase.NewSubscriptionLifecycleUseCase(subscriptionRepo)
	recordPaymentUC := usecase.NewRecordPaymentUseCase(paymentRepo)
	settlePaymentUC := usecase.NewSettlePaymentUseCase(paymentRepo)
	upsertAnalyticsUC := usecase.NewUpsertAnalyticsUseCase(analyticsRepo, analyticsCache)
	getAnalyticsUC := usecase.NewGetAnalyticsUseCase(analyticsRepo, analyticsCache)
	createRecommendationUC := usecase.NewCreateRecommendationUseCase(recommendationRepo)
	dismissRecommendationUC := usecase.NewDismissRecommendationUseCase(recommendationRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(registerUserUC, updateUserUC, userRepo)
	businessHandler := handlers.NewBusinessHandler(createBusinessUC, updateBusinessUC, businessRepo)
	serviceHandler := handlers.NewServiceHandler(createServiceUC, updateServiceUC, serviceRepo)
	accountHandler := handlers.NewPlatformAccountHandler(createAccountUC, updateAccountUC, accountRepo)
	campaignHandler := handlers.NewCampaignHandler(createCampaignUC, updateCampaignUC, campaignRepo)
	leadHandler := handlers.NewLeadHandler(captureLeadUC, updateLeadUC, leadRepo, postMessageUC, markReadUC, messageRepo)
	subscriptionHandler := handlers.NewSubscriptionHandler(openSubscriptionUC, lifecycleUC, subscriptionRepo, recordPaymentUC, settlePaymentUC, paymentRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(upsertAnalyticsUC, getAnalyticsUC, analyticsRepo)
	recommendationHandler := handlers.NewRecommendationHandler(createRecommendationUC, dismissRecommendationUC, recommendationRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, rdb)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/users", userHandler.HandleRegister)
	r.Get("/users/{userId}", userHandler.HandleGet)
	r.Patch("/users/{userId}", userHandler.HandleUpdate)
	r.Post("/users/{userId}/business", businessHandler.HandleCreate)

	r.Get("/businesses/{businessId}", businessHandler.HandleGet)
	r.Patch("/businesses/{businessId}", businessHandler.HandleUpdate)

	r.Post("/businesses/{businessId}/services", serviceHandler.HandleCreate)
	r.Get("/businesses/{businessId}/services", serviceHandler.HandleList)
	r.Patch("/services/{serviceId}", serviceHandler.HandleUpdate)

	r.Post("/businesses/{businessId}/platform-accounts", accountHandler.HandleCreate)
	r.Get("/businesses/{businessId}/platform-accounts", accountHandler.HandleList)
	r.Patch("/platform-accounts/{accountId}", accountHandler.HandleUpdate)

	r.Post("/campaigns", campaignHandler.HandleCreate)
	r.Get("/platform-accounts/{accountId}/campaigns", campaignHandler.HandleList)
	r.Patch("/campaigns/{campaignId}", campaignHandler.HandleUpdate)

	r.Post("/leads", leadHandler.HandleCapture)
	r.Get("/leads/{leadId}", leadHandler.HandleGet)
	r.Patch("/leads/{leadId}", leadHandler.HandleUpdate)
	r.Get("/businesses/{businessId}/leads", leadHandler.HandleList)
	r.Post("/leads/{leadId}/messages", leadHandler.HandlePostMessage)
	r.Get("/leads/{leadId}/messages", leadHandler.HandleListMessages)
	r.Post("/messages/{messageId}/read", leadHandler.HandleMarkMessageRead)

	r.Post("/businesses/{businessId}/subscriptions", subscriptionHandler.HandleOpen)
	r.Get("/businesses/{businessId}/subscriptions/current", subscriptionHandler.HandleGetCurrent)
	r.Post("/subscriptions/{subscriptionId}/{action}", subscriptionHandler.HandleTransition)
	r.Post("/subscriptions/{subscriptionId}/payments", subscriptionHandler.HandleRecordPayment)
	r.Get("/subscriptions/{subscriptionId}/payments", subscriptionHandler.HandleListPayments)
	r.Post("/payments/{paymentId}/settle", subscriptionHandler.HandleSettlePayment)
	r.Post("/payments/{paymentId}/refund", subscriptionHandler.HandleRefundPayment)

	r.Put("/businesses/{businessId}/analytics", analyticsHandler.HandleUpsert)
	r.Get("/businesses/{businessId}/analytics", analyticsHandler.HandleGet)
	r.Get("/businesses/{businessId}/analytics/range", analyticsHandler.HandleListRange)

	r.Post("/businesses/{businessId}/recommendations", recommendationHandler.HandleCreate)
	r.Get("/businesses/{businessId}/recommendations", recommendationHandler.HandleListActive)
	r.Post("/recommendations/{recommendationId}/dismiss", recommendationHandler.HandleDismiss)

	addr := ":" + cfg.Port
	log.Printf("leadflow API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
