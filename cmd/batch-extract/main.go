// Command batch-extract runs dual-column extraction over every PDF in a
// directory. Failures are recorded so a later run can retry only the
// documents that failed; one bad document never stops the batch.
//
// Usage:
//
//	batch-extract -dir gazettes/ -out extracted/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gazette-extractor/internal/config"
	xerrors "gazette-extractor/internal/errors"
	"gazette-extractor/internal/extract"
	"gazette-extractor/internal/logger"
	"gazette-extractor/internal/results"
	"gazette-extractor/internal/source"
	"gazette-extractor/internal/types"
)

func main() {
	var (
		inputDir   = flag.String("dir", "", "Directory containing source PDFs (required)")
		outputDir  = flag.String("out", "", "Directory for extracted text files (required)")
		engineName = flag.String("engine", "", "Extraction engine: pdfplumber or ledongthuc")
		configPath = flag.String("config", "", "Path to the configuration file")
	)
	flag.Parse()

	if *inputDir == "" || *outputDir == "" {
		flag.Usage()
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

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.LogLevel)
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

	pdfs, err := listPDFs(*inputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(pdfs) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no PDF files found in %s\n", *inputDir)
		os.Exit(1)
	}

	errDir := ""
	if cfg.WorkDirectory != "" {
		errDir = filepath.Join(cfg.WorkDirectory, "errors")
	}
	tracker, err := xerrors.NewManager(errDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	extractor := extract.NewColumnExtractor(extract.Config{
		Margins:          cfg.Margins,
		ProgressInterval: cfg.ProgressInterval,
	})
	sides := []types.ColumnSide{types.ColumnPrimary, types.ColumnSecondary}

	succeeded := 0
	for _, pdfPath := range pdfs {
		fmt.Printf("Extracting %s ... ", filepath.Base(pdfPath))
		if err := extractOne(extractor, pdfPath, *outputDir, engine, sides, tracker); err != nil {
			fmt.Printf("failed: %v\n", err)
			continue
		}
		succeeded++
		fmt.Println("ok")
	}

	fmt.Printf("\n%d/%d documents extracted to %s\n", succeeded, len(pdfs), *outputDir)
	if succeeded == 0 {
		os.Exit(1)
	}
}

// extractOne processes a single document and maintains its failure record
func extractOne(extractor *extract.ColumnExtractor, pdfPath, outputDir string, engine source.Engine, sides []types.ColumnSide, tracker *xerrors.Manager) error {
	doc, err := source.Open(pdfPath, engine)
	if err != nil {
		tracker.Record(pdfPath, xerrors.StageOpen, err.Error())
		return err
	}
	defer doc.Close()

	result, err := extractor.Run(doc, sides)
	if err != nil {
		tracker.Record(pdfPath, xerrors.StageExtract, err.Error())
		return err
	}

	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	for _, side := range sides {
		outPath := filepath.Join(outputDir, fmt.Sprintf("%s_%s.txt", base, side))
		if err := results.WriteDocument(outPath, result.Streams[side].Text); err != nil {
			tracker.Record(pdfPath, xerrors.StageWrite, err.Error())
			return err
		}
	}

	tracker.Remove(pdfPath)
	return nil
}

// listPDFs returns the sorted *.pdf paths directly under dir
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read input directory: %w", err)
	}

	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			pdfs = append(pdfs, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(pdfs)
	return pdfs, nil
}
