package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/auth"
	"github.com/LavaJover/shvark-exchange-service/internal/config"
	httpdelivery "github.com/LavaJover/shvark-exchange-service/internal/delivery/http"
	"github.com/LavaJover/shvark-exchange-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/exchangerate"
	publisher "github.com/LavaJover/shvark-exchange-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.ExchangeDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.ExchangeDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	userRepo := repository.NewDefaultUserRepository(db)
	exchangeRepo := repository.NewDefaultExchangeRepository(db)

	// Init rate provider client
	rateProvider := exchangerate.NewProvider(
		cfg.RateAPI.URLTemplate,
		cfg.RateAPI.APIKey,
		time.Duration(cfg.RateAPI.TimeoutSeconds)*time.Second,
	)

	// Init exchange events publisher
	var pub domain.PublisherPort
	if cfg.Kafka.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
		pub = publisher.NewDefaultKafkaPublisher(brokers)
	}

	exchangeMetrics := metrics.NewExchangeMetrics()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	// Init usecases
	userUsecase := usecase.NewDefaultUserUsecase(userRepo, tokenManager, exchangeMetrics, cfg.Exchange.StartingBalance)
	exchangeUsecase, err := usecase.NewDefaultExchangeUsecase(
		exchangeRepo,
		userRepo,
		rateProvider,
		pub,
		exchangeMetrics,
		cfg.Exchange.CostPerRequest,
		cfg.Kafka.Topic,
	)
	if err != nil {
		log.Fatalf("failed to init exchange usecase: %v", err)
	}

	// Init HTTP layer
	userHandler := handlers.NewUserHandler(userUsecase)
	exchangeHandler := handlers.NewExchangeHandler(exchangeUsecase)
	router := httpdelivery.NewRouter(userHandler, exchangeHandler, tokenManager)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("HTTP server started on %s\n", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctxShutdown)
}
