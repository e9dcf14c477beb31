package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	_ "github.com/FelitoAguila/dash-list-me/docs"
	"github.com/FelitoAguila/dash-list-me/internal/cache"
	"github.com/FelitoAguila/dash-list-me/internal/config"
	"github.com/FelitoAguila/dash-list-me/internal/logger"
	httpadapter "github.com/FelitoAguila/dash-list-me/internal/metrics/adapters/http/fiber"
	mongoadapter "github.com/FelitoAguila/dash-list-me/internal/metrics/adapters/mongo"
	pgadapter "github.com/FelitoAguila/dash-list-me/internal/metrics/adapters/postgres"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/ports"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/usecase"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/window"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.ServiceEnvironment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	loc, err := cfg.Location()
	if err != nil {
		zlog.Fatal("invalid timezone", zap.Error(err))
	}
	floor, err := cfg.FloorInstant(loc)
	if err != nil {
		zlog.Fatal("invalid floor instant", zap.Error(err))
	}
	normalizer := window.NewNormalizer(loc, floor)

	// Event store
	var reader ports.MetricsReaderPort
	switch cfg.MetricsBackend {
	case config.BackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			cancel()
			zlog.Fatal("failed to connect to mongo", zap.Error(err))
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			cancel()
			zlog.Fatal("failed to ping mongo", zap.Error(err))
		}
		cancel()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}()

		coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
		reader = mongoadapter.NewMetricsRepository(mongoadapter.NewCollection(coll))
		zlog.Info("using mongo event store",
			zap.String("database", cfg.MongoDatabase),
			zap.String("collection", cfg.MongoCollection))

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			zlog.Fatal("failed to open postgres", zap.Error(err))
		}
		defer db.Close()

		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			zlog.Fatal("failed to ping postgres", zap.Error(err))
		}

		reader = pgadapter.NewMetricsRepository(pgadapter.NewSQLDB(db))
		zlog.Info("using postgres event store")
	}

	// Usecases
	store := cache.New()
	chartsUC := usecase.NewGetChartMetricsUseCase(reader, normalizer, store)
	ratioUC := usecase.NewGetRatioUseCase(reader, normalizer, store, cfg.Country)
	totalsUC := usecase.NewComputeTotalsUseCase(reader, normalizer)

	// All-time snapshot: one blocking pass over the whole collection
	// before the server accepts its first request.
	zlog.Info("computing all-time totals snapshot")
	started := time.Now()
	totals, err := totalsUC.Execute(context.Background())
	if err != nil {
		zlog.Fatal("failed to compute totals snapshot", zap.Error(err))
	}
	zlog.Info("totals snapshot ready", zap.Duration("took", time.Since(started)))

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	handler := httpadapter.NewMetricsHandler(chartsUC, ratioUC, totals)
	app.Get("/metrics/charts", handler.GetChartMetrics)
	app.Get("/metrics/ratio", handler.GetRatio)
	app.Get("/metrics/totals", handler.GetTotals)
	app.Get("/healthz", handler.Healthz)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.ServiceAPIPort); err != nil {
			zlog.Error("fiber stopped", zap.Error(err))
		}
	}()

	zlog.Info("server started", zap.String("port", cfg.ServiceAPIPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	zlog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		zlog.Error("fiber shutdown error", zap.Error(err))
	}

	zlog.Info("server exiting")
}
