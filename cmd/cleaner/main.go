// Package main provides the cleaner command that loads a raw customer CSV,
// runs the cleaning pipeline, and writes the cleaned dataset.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"custclean/internal/cleaning"
	"custclean/internal/config"
	"custclean/internal/csvio"
	"custclean/internal/logger"
	"custclean/internal/payload"
	"custclean/internal/report"
	"custclean/internal/table"
	"custclean/pkg/metadata"

	"github.com/google/uuid"
)

func main() {
	// 1. Define Command-Line Flags
	// ----------------------------
	configPath := flag.String("config", "", "Path to YAML configuration file (optional)")
	input := flag.String("input", "", "Raw customer CSV to clean (overrides config)")
	output := flag.String("output", "", "Destination file for the cleaned dataset (overrides config)")
	format := flag.String("format", "", "Output format: csv or json (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	flag.Parse()

	// Load configuration, falling back to defaults when no file is given.
	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *input != "" {
		cfg.Cleaner.Input.Path = *input
	}
	if *output != "" {
		cfg.Cleaner.Output.Path = *output
	}
	if *format != "" {
		cfg.Cleaner.Output.Format = *format
	}
	if *logLevel != "" {
		cfg.Cleaner.Logging.Level = *logLevel
	}

	// Initialize Logger
	log := logger.NewLogger(cfg.Cleaner.Logging.Level, cfg.Cleaner.Logging.Format)

	// Validate Inputs
	if err := cfg.Validate(); err != nil {
		log.Error(fmt.Sprintf("Invalid configuration: %v", err))
		flag.PrintDefaults()
		os.Exit(1)
	}

	runID := uuid.NewString()

	log.Info("🚀 Starting Customer Dataset Cleaner")
	log.Info(fmt.Sprintf("📍 Source: %s", cfg.Cleaner.Input.Path))
	log.Info(fmt.Sprintf("🎯 Target: %s (%s)", cfg.Cleaner.Output.Path, cfg.Cleaner.Output.Format))
	log.Info(fmt.Sprintf("🆔 Run: %s", runID))

	// 2. Ingestion (CSV Load)
	// -----------------------
	log.Info("Phase 1: Ingestion (Loading CSV)...")

	startTime := time.Now()

	opts := csvio.Options{Delimiter: cfg.Cleaner.Input.DelimiterRune()}

	raw, err := csvio.Read(cfg.Cleaner.Input.Path, opts)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Load failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Loaded %d rows, %d columns in %v",
		raw.Len(), len(raw.Names()), time.Since(startTime)))

	// 3. Processing (Cleaning Pipeline)
	// ---------------------------------
	log.Info("Phase 2: Processing (Cleaning)...")

	processStart := time.Now()

	nullsBefore := totalNulls(raw)

	cleaned, err := cleaning.NewPipeline().Run(raw)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Cleaning failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Cleaned %d rows (%d missing cells before, %d after) in %v",
		cleaned.Len(), nullsBefore, totalNulls(cleaned), time.Since(processStart)))

	// 4. Persistence (Writing Output)
	// -------------------------------
	log.Info("Phase 3: Persistence (Writing output)...")

	writeStart := time.Now()

	stamp := metadata.Stamp{
		RunID:   runID,
		Source:  cfg.Cleaner.Input.Path,
		Rows:    cleaned.Len(),
		Columns: len(cleaned.Names()),
	}

	switch cfg.Cleaner.Output.Format {
	case "json":
		doc, buildErr := payload.BuildDocument(cleaned, stamp)
		if buildErr != nil {
			log.Error(fmt.Sprintf("❌ Output failed: %v", buildErr))
			os.Exit(1)
		}
		err = payload.WriteJSON(doc, cfg.Cleaner.Output.Path, cfg.Cleaner.Output.PrettyPrint)
	default:
		err = csvio.Write(cleaned, cfg.Cleaner.Output.Path, opts)
	}
	if err != nil {
		log.Error(fmt.Sprintf("❌ Output failed: %v", err))
		os.Exit(1)
	}

	if err := metadata.Sign(cfg.Cleaner.Output.Path, stamp); err != nil {
		log.Warn(fmt.Sprintf("⚠️  Could not write metadata stamp: %v", err))
	}

	log.Info(fmt.Sprintf("✅ Wrote %s in %v", cfg.Cleaner.Output.Path, time.Since(writeStart)))

	// 5. Final Report
	// ---------------
	log.Info("✨ Cleaning Complete!")

	if cfg.Cleaner.Preview.Enabled {
		preview, pErr := report.Preview(cleaned, cfg.Cleaner.Preview.Rows)
		if pErr != nil {
			log.Warn(fmt.Sprintf("⚠️  Preview failed: %v", pErr))
		} else {
			fmt.Println("\n------------------------------------------------")
			fmt.Printf("📊 Preview (first %d rows)\n", cfg.Cleaner.Preview.Rows)
			fmt.Println("------------------------------------------------")
			fmt.Print(preview)
		}
	}

	if cfg.Cleaner.Preview.Summary {
		sums, sErr := report.Summarize(cleaned)
		if sErr != nil {
			log.Warn(fmt.Sprintf("⚠️  Summary failed: %v", sErr))
		} else {
			fmt.Println("\n------------------------------------------------")
			fmt.Println("📊 Column Summary")
			fmt.Println("------------------------------------------------")
			fmt.Print(report.FormatSummaries(sums))
		}
	}

	fmt.Println("\n------------------------------------------------")
	fmt.Printf("Total Duration: %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")
}

// totalNulls counts missing cells across all columns.
func totalNulls(t *table.Table) int {
	n := 0
	for _, name := range t.Names() {
		if col, err := t.Column(name); err == nil {
			n += col.NullCount()
		}
	}
	return n
}
