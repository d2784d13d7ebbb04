package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sokonova/sokonova-fulfillment-service/internal/config"
	"github.com/sokonova/sokonova-fulfillment-service/internal/delivery/httpapi"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/kafka"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/metrics"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/migrate"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/notifier"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/repository"
	"github.com/sokonova/sokonova-fulfillment-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.FulfillmentDB.MigrationPath != "" {
		if err := migrate.RunMigrations(db, cfg.FulfillmentDB.MigrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	fulfillmentPublisher := kafka.NewKafkaPublisher(brokers, "fulfillment-events")
	disputePublisher := kafka.NewKafkaPublisher(brokers, "dispute-events")
	payoutPublisher := kafka.NewKafkaPublisher(brokers, "payout-events")

	// Init repositories
	itemRepo := repository.NewDefaultOrderItemRepository(db)
	disputeRepo := repository.NewDefaultDisputeRepository(db)
	notificationRepo := repository.NewDefaultNotificationRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	sellerRepo := repository.NewDefaultSellerProfileRepository(db)

	// Init channel adapters
	emailSender := notifier.NewHTTPEmailSender(cfg.EmailProvider.Address, cfg.EmailProvider.APIKey)
	smsSender := notifier.NewHTTPSMSSender(cfg.SMSProvider.Address, cfg.SMSProvider.APIKey)

	fulfillmentMetrics := metrics.NewFulfillmentMetrics()

	// Init usecases
	notificationUc := usecase.NewDefaultNotificationUsecase(
		notificationRepo,
		userRepo,
		emailSender,
		smsSender,
		nil, // push provider is not wired yet
		fulfillmentMetrics,
	)
	fulfillmentUc := usecase.NewDefaultFulfillmentUsecase(
		itemRepo,
		notificationUc,
		fulfillmentPublisher,
		fulfillmentMetrics,
	)
	disputeUc := usecase.NewDefaultDisputeUsecase(
		disputeRepo,
		itemRepo,
		userRepo,
		notificationUc,
		disputePublisher,
		fulfillmentMetrics,
	)
	payoutUc := usecase.NewDefaultPayoutUsecase(
		itemRepo,
		notificationUc,
		payoutPublisher,
		fulfillmentMetrics,
	)
	paymentUc := usecase.NewDefaultPaymentUsecase(
		paymentRepo,
		notificationUc,
		fulfillmentMetrics,
	)
	catalogUc := usecase.NewDefaultCatalogUsecase(productRepo, sellerRepo)

	h := httpapi.NewHandler(
		fulfillmentUc,
		disputeUc,
		notificationUc,
		payoutUc,
		paymentUc,
		catalogUc,
		cfg.WebhookSecrets,
		fulfillmentMetrics,
		logger,
	)
	r := h.SetupRouter()

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Обновление gauge открытых диспутов
	g.Go(func() error {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				count, err := disputeUc.CountOpenDisputes()
				if err != nil {
					sugar.Errorw("failed to count open disputes", "error", err.Error())
					continue
				}
				fulfillmentMetrics.SetOpenDisputes(count)
			}
		}
	})

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting fulfillment server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
