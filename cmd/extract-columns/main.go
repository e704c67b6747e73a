// Command extract-columns extracts the two language columns of a bilingual
// two-column PDF into separate page-ordered text files.
//
// Usage:
//
//	extract-columns -source gazette.pdf -primary english.txt -secondary french.txt
//	extract-columns -source gazette.pdf -primary english.txt
//
// At least one output path is required; giving only one selects
// single-column mode for that side. The exit status is non-zero if the
// source cannot be opened or an unexpected failure aborts the run; partial
// success (some pages skipped) still exits zero, with the discrepancy
// visible in the final summary.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gazette-extractor/internal/config"
	"gazette-extractor/internal/extract"
	"gazette-extractor/internal/logger"
	"gazette-extractor/internal/results"
	"gazette-extractor/internal/source"
	"gazette-extractor/internal/types"
)

func main() {
	var (
		sourcePath    = flag.String("source", "", "Path to the source PDF (required)")
		primaryPath   = flag.String("primary", "", "Output path for the left (primary language) column")
		secondaryPath = flag.String("secondary", "", "Output path for the right (secondary language) column")
		engineName    = flag.String("engine", "", "Extraction engine: pdfplumber or ledongthuc")
		configPath    = flag.String("config", "", "Path to the configuration file")
		logLevel      = flag.String("log-level", "", "Minimum log level: debug, info, warn, error")
	)
	flag.Parse()

	if *sourcePath == "" || (*primaryPath == "" && *secondaryPath == "") {
		flag.Usage()
		fmt.Fprintln(os.Stderr, "\nA source PDF and at least one output path are required.")
		os.Exit(1)
	}

	mgr, err := config.NewManager(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := mgr.Get()

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(level)
	if err := logger.Init(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	name := cfg.Engine
	if *engineName != "" {
		name = *engineName
	}
	engine, err := source.ParseEngine(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var sides []types.ColumnSide
	outputs := map[types.ColumnSide]string{}
	if *primaryPath != "" {
		sides = append(sides, types.ColumnPrimary)
		outputs[types.ColumnPrimary] = *primaryPath
	}
	if *secondaryPath != "" {
		sides = append(sides, types.ColumnSecondary)
		outputs[types.ColumnSecondary] = *secondaryPath
	}

	startedAt := time.Now()

	doc, err := source.Open(*sourcePath, engine)
	if err != nil {
		logger.Error("cannot open source document", err, logger.String("path", *sourcePath))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	fmt.Printf("Source: %s (%d pages, engine %s)\n", *sourcePath, doc.PageCount(), engine)

	extractor := extract.NewColumnExtractor(extract.Config{
		Margins:          cfg.Margins,
		ProgressInterval: cfg.ProgressInterval,
		Progress: func(processed, total int) {
			if processed > 0 && processed < total {
				fmt.Printf("Processed %d/%d pages\n", processed, total)
			}
		},
	})

	result, err := extractor.Run(doc, sides)
	if err != nil {
		logger.Error("extraction aborted", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	record := &results.RunRecord{
		RunID:      results.NewRunID(),
		SourcePath: *sourcePath,
		SourceMD5:  results.FileMD5(*sourcePath),
		TotalPages: result.TotalPages,
		Warnings:   result.Warnings,
		Status:     results.StatusComplete,
		StartedAt:  startedAt,
	}
	if result.Warnings > 0 {
		record.Status = results.StatusPartial
	}

	for _, side := range sides {
		res := result.Streams[side]
		path := outputs[side]
		if err := results.WriteDocument(path, res.Text); err != nil {
			logger.Error("cannot write output", err, logger.String("path", path))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		record.Columns = append(record.Columns, results.ColumnOutput{
			Side:       side,
			OutputPath: path,
			PageCount:  res.PageCount,
			CharCount:  res.CharCount,
			Skipped:    result.SkippedPages[side],
		})
	}
	record.FinishedAt = time.Now()

	if runs, err := results.NewManager(runsDir(cfg)); err == nil {
		if err := runs.SaveRecord(record); err != nil {
			logger.Warn("cannot save run record", logger.Err(err))
		}
	}

	fmt.Printf("Done: %s\n", result.Summary())
	for _, side := range sides {
		fmt.Printf("  %s -> %s (%d pages, %d chars)\n",
			side, outputs[side], result.Streams[side].PageCount, result.Streams[side].CharCount)
	}

	for _, side := range sides {
		if skipped := result.SkippedPages[side]; len(skipped) > 0 {
			fmt.Printf("  note: %d %s page(s) yielded no text\n", len(skipped), side)
		}
	}
}

// runsDir resolves the manifest directory from the configured work directory
func runsDir(cfg *types.Config) string {
	if cfg.WorkDirectory == "" {
		return "" // manager falls back to its home-directory default
	}
	return filepath.Join(cfg.WorkDirectory, "runs")
}
