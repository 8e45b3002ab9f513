// CallSight server — ingests call recordings over HTTP, runs the analysis
// pipeline stages against the broker, and serves the quality dossiers,
// compliance rules, analytics, and notifications they produce.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/callsight/callsight/pkg/analytics"
	"github.com/callsight/callsight/pkg/api"
	"github.com/callsight/callsight/pkg/audit"
	"github.com/callsight/callsight/pkg/broker"
	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/correlator"
	"github.com/callsight/callsight/pkg/database"
	"github.com/callsight/callsight/pkg/ingest"
	"github.com/callsight/callsight/pkg/mlservice"
	"github.com/callsight/callsight/pkg/notify"
	"github.com/callsight/callsight/pkg/projector"
	"github.com/callsight/callsight/pkg/stages"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")

	slog.Info("Starting CallSight",
		"http_port", httpPort,
		"brokers", kafkaBrokers,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Cache
	rdb := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing cache client", "error", err)
		}
	}()

	// 4. Object storage
	storageCfg, err := ingest.LoadStorageConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load storage config", "error", err)
		os.Exit(1)
	}
	audioStore, err := ingest.NewS3AudioStore(ctx, storageCfg)
	if err != nil {
		slog.Error("Failed to initialize audio store", "error", err)
		os.Exit(1)
	}
	slog.Info("Audio store initialized", "bucket", storageCfg.Bucket)

	// 5. Broker producer
	producer := broker.NewProducer(kafkaBrokers)
	defer func() {
		if err := producer.Close(); err != nil {
			slog.Error("Error closing producer", "error", err)
		}
	}()

	// 6. ML service client
	// grpc.NewClient dials lazily; the connection is made on the first RPC.
	mlAddr := getEnv("ML_SERVICE_ADDR", "localhost:50051")
	mlClient, err := mlservice.NewClient(mlAddr)
	if err != nil {
		slog.Error("Failed to initialize ML client", "addr", mlAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mlClient.Close(); err != nil {
			slog.Error("Error closing ML client", "error", err)
		}
	}()
	slog.Info("ML client initialized", "addr", mlAddr)

	// 7. Domain services
	calls := projector.NewCallService(dbClient.Client)
	transcriptions := projector.NewTranscriptionService(dbClient.Client)
	sentiments := projector.NewSentimentService(dbClient.Client)
	insights := projector.NewVocService(dbClient.Client)
	dossiers := projector.NewDossierService(dbClient.Client)
	rules := audit.NewRuleService(dbClient.Client)
	results := audit.NewResultService(dbClient.Client)
	scorer := audit.NewScorer(cfg.Scoring)
	notifications := notify.NewNotificationService(dbClient.Client)
	performance := analytics.NewPerformanceService(dbClient.Client)
	ingestService := ingest.NewService(audioStore, calls, producer)

	alertEngine := notify.NewEngine(cfg.Alerts)
	dispatcher := notify.NewDispatcher(alertEngine, notifications, buildSenders(cfg.Notifications))
	slog.Info("Services initialized")

	// 8. Pipeline runtime
	corr := correlator.New(cfg.Correlator)
	aggregator := analytics.NewAggregator(dbClient.Client, rdb, cfg.Aggregator)
	topics := cfg.Pipeline.Topics

	runtime := stages.NewRuntime(kafkaBrokers, cfg, producer, corr, aggregator, stages.Handlers{
		Transcribe: stages.NewTranscribe(mlClient, calls, transcriptions, producer, topics.Transcribed),
		Sentiment:  stages.NewSentiment(mlClient, calls, sentiments, producer, topics.SentimentAnalyzed),
		Voc:        stages.NewVoc(mlClient, calls, insights, producer, topics.VocAnalyzed),
		Audit:      stages.NewAudit(corr, rules, scorer, results, calls, producer, topics.Audited),
		Analytics:  stages.NewAnalytics(aggregator),
		Notify:     stages.NewNotify(alertEngine, dispatcher),
	})
	runtime.Start(ctx)

	// 9. HTTP server
	server := api.NewServer(dbClient, ingestService, calls, dossiers, rules, notifications, dispatcher, performance)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("CallSight started successfully")

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop taking HTTP traffic first so no new
	// events enter the pipeline, then drain the stages.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	runtime.Stop()
	slog.Info("Shutdown complete")
}

// buildSenders wires one delivery implementation per alert channel.
func buildSenders(cfg *config.NotificationConfig) map[string]notify.Sender {
	senders := map[string]notify.Sender{
		notify.ChannelEmail:   notify.NewEmailSender(cfg, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD")),
		notify.ChannelWebhook: notify.NewWebhookSender(),
	}
	if token := os.Getenv("SLACK_TOKEN"); token != "" {
		senders[notify.ChannelChat] = notify.NewChatSender(token)
	} else {
		slog.Warn("SLACK_TOKEN not set, chat alerts will fail until configured")
	}
	return senders
}
