package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"question-lab/repositories"
	"question-lab/repositories/storage"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	SqliteFilepath string `envconfig:"SQLITE_FILEPATH" default:"./data/report.db"`
	BlugeFilepath  string `envconfig:"BLUGE_FILEPATH" default:"./data/bluge"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"WARN"`
	EmbeddingDim   int    `envconfig:"EMBEDDING_DIM" default:"256"`
	Workers        int    `envconfig:"WORKERS" default:"4"`
	// REPORTCTL_COLOURS enables colorized report output
	Colours bool `envconfig:"COLOURS" default:"true"`
}

// LoadConfig reads REPORTCTL_* variables.
func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("reportctl", &cfg)
	return cfg, err
}

// stores bundles the three stores opened by a command.
type stores struct {
	log       *slog.Logger
	db        *badger.DB
	reportDB  *sql.DB
	writer    *bluge.Writer
	questions repositories.QuestionRepository
	reports   repositories.ReportRepository
	index     repositories.QuestionIndex
	sink      storage.QuestionSink
}

func openStores(cfg Config) (*stores, error) {
	log := logs.GetLoggerFromString(cfg.LogLevel)
	db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	reportDB, err := repositories.OpenReportDB(cfg.SqliteFilepath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("report database opening failed: %w", err)
	}
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(cfg.BlugeFilepath))
	if err != nil {
		_ = db.Close()
		_ = reportDB.Close()
		return nil, fmt.Errorf("search index opening failed: %w", err)
	}

	s := &stores{log: log, db: db, reportDB: reportDB, writer: writer}
	s.questions = repositories.NewQuestionRepository(db, log, nil)
	s.reports = repositories.NewReportRepository(reportDB, log)
	s.index = repositories.NewQuestionIndex(writer, log)
	s.sink = storage.NewQuestionSink(s.questions, s.index, log)
	return s, nil
}

func (s *stores) Close() {
	_ = s.writer.Close()
	_ = s.reportDB.Close()
	_ = s.db.Close()
}
