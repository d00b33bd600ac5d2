package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/driveline/autosales-service/internal/client"
	"github.com/driveline/autosales-service/internal/config"
	"github.com/driveline/autosales-service/internal/delivery/httpapi"
	publisher "github.com/driveline/autosales-service/internal/infrastructure/kafka"
	"github.com/driveline/autosales-service/internal/infrastructure/logger"
	"github.com/driveline/autosales-service/internal/infrastructure/metrics"
	"github.com/driveline/autosales-service/internal/infrastructure/storage"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/repository"
	"github.com/driveline/autosales-service/internal/usecase"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	zapLogger := logger.New(cfg.LogConfig.LogLevel, cfg.LogConfig.LogFormat)
	defer zapLogger.Sync()

	// Init database
	db := storage.NewStore(cfg).MustOpen()

	// Init repos
	saleRepo := repository.NewDefaultSaleRepository(db)
	customerRepo := repository.NewDefaultCustomerRepository(db)
	referrerRepo := repository.NewDefaultReferrerRepository(db)
	referralRepo := repository.NewDefaultReferralRepository(db)
	coordinator := repository.NewDefaultTxCoordinator(db)

	// Init event publisher
	var eventPublisher publisher.EventPublisher = publisher.NoopPublisher{}
	if cfg.Kafka.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
		eventPublisher = publisher.NewKafkaPublisher(brokers, cfg.Kafka.Topic)
	}

	crmMetrics := metrics.NewCRMMetrics()

	// Init usecases
	saleUsecase := usecase.NewDefaultSaleUsecase(saleRepo, coordinator, eventPublisher, crmMetrics, zapLogger)
	customerUsecase := usecase.NewDefaultCustomerUsecase(customerRepo, crmMetrics, zapLogger)
	referrerUsecase := usecase.NewDefaultReferrerUsecase(referrerRepo, crmMetrics, zapLogger)
	referralUsecase := usecase.NewDefaultReferralUsecase(referralRepo, coordinator, eventPublisher, crmMetrics, zapLogger)
	goalUsecase := usecase.NewDefaultGoalUsecase(saleRepo, zapLogger)
	backupUsecase := usecase.NewDefaultBackupUsecase(coordinator, crmMetrics, zapLogger)

	vinClient := client.NewVINClient(cfg.VINService.BaseURL,
		time.Duration(cfg.VINService.TimeoutSeconds)*time.Second)

	handler := httpapi.NewHandler(
		saleUsecase,
		customerUsecase,
		referrerUsecase,
		referralUsecase,
		goalUsecase,
		backupUsecase,
		vinClient,
		cfg.Owner.DefaultOwnerID,
		zapLogger,
	)
	router := httpapi.NewRouter(handler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	zapLogger.Info("starting http server", zap.String("addr", addr), zap.String("env", cfg.Env))

	if err := http.ListenAndServe(addr, router); err != nil {
		zapLogger.Fatal("http server failed", zap.Error(err))
	}
}
