package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-subscription-tracker/docs"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/config"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/handlers"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/logger"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/migrations"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-subscription-tracker/internal/services"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-subscription-tracker API
// @version 1.0.0
// @description Subscription tracking service with CSV import
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Kafka writer and HTTP server.
// It applies migrations, sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFile); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.Database)

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if err := migrations.MigrateDB(db, migrations.Migrations); err != nil {
		return err
	}

	// Kafka producer, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	docs.SwaggerInfo.Host = cfg.Addr()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(db, kafkaWriter, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, the subscription service and handlers into the route table.
// Write routes run inside a request transaction.
func newRouter(db *sqlx.DB, kafkaWriter services.KafkaWriter, cfg *config.Config) http.Handler {
	// Initialize repositories
	readRepo := repositories.NewSubscriptionReadRepository(db, middlewares.GetTxFromContext)
	writeRepo := repositories.NewSubscriptionWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	svc := services.NewSubscriptionService(readRepo, writeRepo, kafkaWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.CORSMiddleware(cfg.App.AllowedOrigins))

	r.Route("/api/subscriptions", func(r chi.Router) {
		r.Get("/", handlers.NewListSubscriptionsHandler(svc))
		r.Get("/{id}", handlers.NewGetSubscriptionHandler(svc))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))

			r.Post("/", handlers.NewCreateSubscriptionHandler(svc))
			r.Put("/{id}", handlers.NewUpdateSubscriptionHandler(svc))
			r.Delete("/{id}", handlers.NewDeleteSubscriptionHandler(svc))
			r.Post("/seed", handlers.NewSeedSubscriptionsHandler(svc))
			r.Post("/upload-csv", handlers.NewUploadCSVHandler(svc, cfg.App.UploadMaxBytes))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
