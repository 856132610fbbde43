// Command import-words bulk-loads dictionary words from a CSV file. Every
// non-empty cell is one word; rows may have varying lengths. It is intended
// to be run offline, not as part of the main server.
//
// Flags:
//
//	--file     path to the CSV file (required)
//	--dry-run  parse the file without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/textwarden/obscenity-backend/internal/adapter/postgres"
	"github.com/textwarden/obscenity-backend/internal/adapter/postgres/obsceneword"
	"github.com/textwarden/obscenity-backend/internal/app"
	"github.com/textwarden/obscenity-backend/internal/config"
	"github.com/textwarden/obscenity-backend/internal/service/obscenity"
)

func main() {
	fileFlag := flag.String("file", "", "path to the CSV file")
	dryRunFlag := flag.Bool("dry-run", false, "parse the file without writing to DB")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("--file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	words, err := readWordsCSV(*fileFlag)
	if err != nil {
		logger.Error("read csv", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("csv parsed",
		slog.String("file", *fileFlag),
		slog.Int("words", len(words)),
	)

	if *dryRunFlag {
		logger.Info("dry run, nothing written")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc, err := obscenity.NewService(logger, obsceneword.New(pool), nil, nil, obscenity.Config{
		ObscenityIndicator: cfg.Filter.ObscenityIndicator,
	})
	if err != nil {
		logger.Error("create service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	imported, err := svc.ImportObsceneWords(ctx, words)
	if err != nil {
		logger.Error("import failed",
			slog.Int("imported_before_failure", imported),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("import completed", slog.Int("imported", imported))
}

func readWordsCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var words []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, cell := range record {
			if cell != "" {
				words = append(words, cell)
			}
		}
	}
	return words, nil
}
