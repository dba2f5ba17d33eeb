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

	"github.com/emmawebdev2005/ShopGenius/internal/assistant"
	"github.com/emmawebdev2005/ShopGenius/internal/events"
	"github.com/emmawebdev2005/ShopGenius/internal/handler"
	"github.com/emmawebdev2005/ShopGenius/internal/pricing"
	"github.com/emmawebdev2005/ShopGenius/internal/repository"
	"github.com/emmawebdev2005/ShopGenius/internal/service"
	"github.com/emmawebdev2005/ShopGenius/pkg/config"
	spiffetls "github.com/emmawebdev2005/ShopGenius/pkg/tls"
	"go.uber.org/zap"
)

type publisher interface {
	service.OrderEventPublisher
	Close() error
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to create store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer closeStore()

	backend := repository.NewBackend(store, repository.WithDelay(cfg.StoreDelay))
	if err := backend.Init(ctx, repository.SeedProducts()); err != nil {
		logger.Fatal("Failed to initialize backend", zap.Error(err))
	}

	var model assistant.Model = assistant.UnavailableModel{}
	if cfg.GenAIAPIKey != "" {
		gemini, err := assistant.NewGeminiModel(ctx, cfg.GenAIAPIKey)
		if err != nil {
			logger.Fatal("Failed to create generative model", zap.Error(err))
		}
		model = gemini
	} else {
		logger.Warn("API_KEY not set, assistant features are unavailable")
	}
	ai := assistant.New(model, assistant.Config{
		GenerationModel: cfg.GenAIGenerationModel,
		ChatModel:       cfg.GenAIChatModel,
		Timeout:         cfg.GenAITimeout,
	}, logger)

	var pub publisher = events.NoopPublisher{}
	if cfg.KafkaEnabled {
		pub = events.NewKafkaProducer(events.NewKafkaWriter(cfg.Brokers(), cfg.KafkaOrderTopic), logger)
	}
	defer pub.Close()

	engine := pricing.MustNewEngine(pricing.DefaultCodes)
	sessions := service.NewSessionManager()

	storefrontService := service.NewStorefrontService(backend, backend, backend, engine, sessions, logger)
	checkoutService := service.NewCheckoutService(backend, backend, engine, sessions, pub, logger)
	merchantService := service.NewMerchantService(backend, backend, ai, cfg.ListingDefaultStock, logger)
	assistantService := service.NewAssistantService(ai, backend, sessions, logger)
	orderStatusService := service.NewOrderStatusService(backend, logger)

	if cfg.KafkaEnabled {
		reader := events.NewKafkaReader(cfg.Brokers(), cfg.KafkaStatusTopic, cfg.KafkaConsumerGroup)
		consumer := events.NewKafkaConsumer(reader, orderStatusService, logger)
		go func() {
			if err := consumer.Run(ctx); err != nil {
				logger.Error("Kafka consumer exited", zap.Error(err))
			}
		}()
	}

	router := handler.NewRouter(handler.Handlers{
		Storefront: handler.NewStorefrontHandler(storefrontService, logger),
		Checkout:   handler.NewCheckoutHandler(checkoutService, logger),
		Merchant:   handler.NewMerchantHandler(merchantService, logger),
		Assistant:  handler.NewAssistantHandler(assistantService, logger),
	}, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	tlsSource, err := spiffetls.NewSource(ctx, cfg.TLS, logger)
	if err != nil {
		logger.Fatal("Failed to load TLS configuration", zap.Error(err))
	}
	defer tlsSource.Close()
	if tlsSource != nil {
		srv.TLSConfig = tlsSource.ServerConfig()
		go tlsSource.Watch(ctx, 30*time.Second)
	}

	go func() {
		logger.Info("Starting server",
			zap.String("port", cfg.Port),
			zap.String("store", cfg.StoreBackend),
			zap.Bool("tls", tlsSource != nil),
			zap.Bool("kafka", cfg.KafkaEnabled))

		var err error
		if tlsSource != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}

func newStore(ctx context.Context, cfg *config.Config) (repository.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		client := repository.NewRedisClient(cfg)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return repository.NewRedisStore(client, ""), func() { client.Close() }, nil
	case config.StoreDynamoDB:
		client, err := repository.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewDynamoStore(client, cfg.DynamoTableName), func() {}, nil
	default:
		return repository.NewMemoryStore(), func() {}, nil
	}
}
