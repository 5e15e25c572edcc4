package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	catalogApp "github.com/davicafu/coincatalog/internal/catalog/application"
	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	catalogEvents "github.com/davicafu/coincatalog/internal/catalog/infra/inbound/events"
	catalogHttp "github.com/davicafu/coincatalog/internal/catalog/infra/inbound/http"
	"github.com/davicafu/coincatalog/internal/catalog/infra/outbound/analytics/clickhouse"
	"github.com/davicafu/coincatalog/internal/catalog/infra/outbound/export"
	"github.com/davicafu/coincatalog/internal/catalog/infra/outbound/filesystem"
	"github.com/davicafu/coincatalog/internal/config"
	infraEvents "github.com/davicafu/coincatalog/internal/shared/infra/events"
	sharedBus "github.com/davicafu/coincatalog/internal/shared/infra/platform/bus"
	sharedCache "github.com/davicafu/coincatalog/internal/shared/infra/platform/cache"
	infraRelayer "github.com/davicafu/coincatalog/internal/shared/infra/relayer"
	"github.com/davicafu/coincatalog/pkg/logger"
)

const cacheNamespace = "coincatalog"

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.LogLevel)
	log := logger.Logger()
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---------------- Storage ----------------
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatal("failed to open storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repos.close(closeCtx); err != nil {
			log.Warn("Error closing storage", zap.Error(err))
		}
	}()
	log.Info("✅ Storage ready", zap.String("driver", cfg.StorageDriver))

	// ---------------- Cache ----------------
	cacheInstance, closeCache := newCache(ctx, cfg, log)
	defer closeCache()

	// ---------------- Query engine ----------------
	registry, err := catalogDomain.NewFieldMappings()
	if err != nil {
		log.Fatal("invalid field mappings", zap.Error(err))
	}
	log.Info("✅ Field mappings loaded", zap.Stringers("tables", registry.Keys()))
	countryPipeline, err := catalogApp.NewListPipelineWithAccessors(registry, catalogDomain.NewCountryView, catalogDomain.CountryAccessors())
	if err != nil {
		log.Fatal("failed to build country pipeline", zap.Error(err))
	}
	coinPipeline, err := catalogApp.NewListPipeline(registry, catalogDomain.NewCoinView)
	if err != nil {
		log.Fatal("failed to build coin pipeline", zap.Error(err))
	}
	banknotePipeline, err := catalogApp.NewListPipeline(registry, catalogDomain.NewBanknoteView)
	if err != nil {
		log.Fatal("failed to build banknote pipeline", zap.Error(err))
	}

	// ---------------- Analytics ----------------
	recorder, closeAnalytics := newQueryRecorder(ctx, cfg, log)
	defer closeAnalytics()

	// ---------------- Services ----------------
	countryService := catalogApp.NewCountryService(repos.countries, repos.coins, repos.banknotes, cacheInstance, countryPipeline, recorder, log)
	coinService := catalogApp.NewCoinService(repos.coins, repos.countries, cacheInstance, coinPipeline, recorder, log)
	banknoteService := catalogApp.NewBanknoteService(repos.banknotes, repos.countries, cacheInstance, banknotePipeline, recorder, log)

	if cfg.SeedFile != "" {
		seeder := catalogApp.NewSeeder(countryService, coinService, banknoteService, log)
		if _, err := seeder.Seed(ctx, filesystem.NewJSONSeedSource(cfg.SeedFile)); err != nil {
			log.Error("Seeding failed", zap.String("file", cfg.SeedFile), zap.Error(err))
		}
	}

	// ---------------- Events ----------------
	consumer := catalogEvents.NewCatalogConsumer(cacheInstance, log)
	publisher, closeBus := newEventBus(ctx, cfg, consumer, log)
	defer closeBus()

	// ------------ Outbox Worker ------------
	worker := infraRelayer.NewOutboxWorker(repos.outbox, publisher, catalogDomain.NewEventRegistry(), cfg.OutboxPeriod, cfg.OutboxLimit, log)
	go worker.Start(ctx)

	// ---------------- HTTP ----------------
	exporters := catalogHttp.Exporters{
		"xlsx": export.NewXLSXWriter(),
		"pdf":  export.NewPDFWriter(),
	}
	handlers := catalogHttp.Handlers{
		Countries: catalogHttp.NewCountryHandler(countryService, log),
		Coins:     catalogHttp.NewCoinHandler(coinService, exporters, log),
		Banknotes: catalogHttp.NewBanknoteHandler(banknoteService, exporters, log),
	}
	if recorder != nil {
		handlers.Stats = catalogHttp.NewStatsHandler(recorder, log)
	}

	router := catalogHttp.NewEngine(log, cfg.CORSAllowedOrigins)
	catalogHttp.RegisterCatalogRoutes(router, handlers)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("🚀 Server running", zap.String("url", "http://localhost:"+cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}

// newCache usa Redis si está configurado y responde; si no, caché en memoria.
// El cierre devuelto para la purga en memoria o cierra el cliente de Redis.
func newCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (sharedCache.Cache, func()) {
	inMemory := func() (sharedCache.Cache, func()) {
		c := sharedCache.NewInMemoryCache(cfg.CacheTTL, 3*cfg.CacheTTL)
		return c, c.Stop
	}

	if cfg.RedisAddr == "" {
		log.Info("⚡️ Cache en memoria")
		return inMemory()
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("⚠️ Redis no disponible, cache en memoria", zap.Error(err))
		rdb.Close()
		return inMemory()
	}
	log.Info("✅ Redis conectado, cache habilitado", zap.String("addr", cfg.RedisAddr))
	return sharedCache.NewRedisCache(rdb, cacheNamespace, cfg.CacheTTL), func() {
		if err := rdb.Close(); err != nil {
			log.Warn("Error closing Redis client", zap.Error(err))
		}
	}
}

// newQueryRecorder devuelve nil si ClickHouse no está configurado o no responde.
func newQueryRecorder(ctx context.Context, cfg *config.Config, log *zap.Logger) (*catalogApp.QueryRecorder, func()) {
	if cfg.ClickHouseAddr == "" {
		return nil, func() {}
	}

	db, err := clickhouse.OpenDB(ctx, cfg.ClickHouseAddr, cfg.ClickHouseDB)
	if err != nil {
		log.Warn("⚠️ ClickHouse no disponible, analítica deshabilitada", zap.Error(err))
		return nil, func() {}
	}

	repo := clickhouse.NewQueryLogRepo(db)
	if err := repo.InitSchema(ctx); err != nil {
		log.Warn("⚠️ No se pudo crear query_log, analítica deshabilitada", zap.Error(err))
		db.Close()
		return nil, func() {}
	}

	recorder := catalogApp.NewQueryRecorder(repo, cfg.AnalyticsInterval, cfg.AnalyticsBatchSize, log)
	done := make(chan struct{})
	go func() {
		defer close(done)
		recorder.Start(ctx)
	}()
	log.Info("✅ ClickHouse conectado, analítica habilitada", zap.String("addr", cfg.ClickHouseAddr))

	return recorder, func() {
		<-done
		db.Close()
	}
}

// newEventBus monta Kafka o el bus en memoria y engancha el consumidor de la
// caché en ambos casos.
func newEventBus(ctx context.Context, cfg *config.Config, consumer infraEvents.MessageHandler, log *zap.Logger) (sharedBus.EventBus, func()) {
	if !cfg.UseKafka {
		log.Info("⚡️ Usando bus de eventos en memoria (canales de Go)")
		bus := infraEvents.NewInMemoryEventBus(cfg.KafkaTopic)
		infraEvents.ConsumeChan(ctx, bus.Subscribe(64), consumer, log)
		return bus, func() {}
	}

	log.Info("🚀 Usando Kafka como bus de eventos", zap.Strings("brokers", cfg.KafkaBrokers))
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers...),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.Hash{},
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaTopic,
		GroupID:  cfg.KafkaGroupID,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
	})
	infraEvents.NewConsumerAdapter(reader, consumer, log).Start(ctx)

	return infraEvents.NewKafkaPublisher(writer, log), func() {
		if err := writer.Close(); err != nil {
			log.Warn("Error closing Kafka writer", zap.Error(err))
		}
	}
}
