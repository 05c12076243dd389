package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"question-lab/auth"
	"question-lab/clustering"
	"question-lab/embedding"
	"question-lab/infrastructure/grpc/server"
	httpserver "question-lab/infrastructure/http/server"
	"question-lab/internal"
	"question-lab/moderation"
	"question-lab/observability"
	"question-lab/repositories"
	"question-lab/repositories/storage"
	"question-lab/runtime/workers"
	"question-lab/services"
	"question-lab/summary"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run keeps every defer (stores, servers) executed before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Stores
	db, err := badger.Open(buildBadgerOpts(config, log, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	reportDB, err := repositories.OpenReportDB(config.SqliteFilepath)
	if err != nil {
		return exitRuntime, fmt.Errorf("report database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing report database...")
		_ = reportDB.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = blugeWriter.Close()
	}()

	questionRepository := repositories.NewQuestionRepository(db, log, config.LimitQuestions)
	reportRepository := repositories.NewReportRepository(reportDB, log)
	questionIndex := repositories.NewQuestionIndex(blugeWriter, log)
	sink := storage.NewQuestionSink(questionRepository, questionIndex, log)

	// 3. Domain
	var moderator *moderation.Moderator
	if config.ModerationWordsFile != "" {
		words, err := moderation.LoadWords(config.ModerationWordsFile)
		if err != nil {
			return exitConfig, fmt.Errorf("moderation words: %w", err)
		}
		if moderator, err = moderation.NewModerator(words, charReplacement, log); err != nil {
			return exitConfig, fmt.Errorf("moderation: %w", err)
		}
	}

	provider, err := embedding.New(log, config.Embedding())
	if err != nil {
		return exitConfig, err
	}
	engine := clustering.NewEngine(log, provider, config.Thresholds(), config.EmbeddingWorkers)
	summarizer := summary.New(log, config.Summary())
	monitoring := observability.NewMonitoring(log)

	reportService := services.NewReportService(log, questionRepository, reportRepository, engine,
		summarizer, monitoring, config.SummaryTimeout, config.SummaryMaxLines)
	questionService := services.NewQuestionService(log, questionRepository, questionIndex, sink,
		moderator, monitoring, config.MaxContentLength)

	// 4. Transport
	authenticator := auth.NewAuthenticator(config.JWTSecret, config.APIKey)
	if !authenticator.Enabled() {
		log.Warn("Neither JWT_SECRET nor API_KEY is set, the API is open")
	}
	httpServer := httpserver.NewServer(log, config.HTTP(), reportService, questionService, monitoring, authenticator)
	healthServer := server.NewHealthServer(log, config.AppName, config.GRPCPort, authenticator)
	healthServer.MarkServing()

	// 5. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewHTTPServerWorker(httpServer),
		workers.NewGRPCServerWorker(healthServer),
		workers.NewHealthMonitoringWorker(log, monitoring, config.MetricInterval),
	)

	log.Info("Report server started", "app", config.AppName, "port", config.Port,
		"grpc_port", config.GRPCPort, "embedder", provider.Name())
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}
