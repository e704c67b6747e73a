// Package results writes finalized column text to output files and keeps a
// JSON manifest of extraction runs under the work directory.
package results

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"gazette-extractor/internal/types"
)

// RunStatus represents the outcome of an extraction run
type RunStatus string

const (
	// StatusComplete means every page was processed without warnings
	StatusComplete RunStatus = "complete"
	// StatusPartial means the run finished but some pages were skipped
	StatusPartial RunStatus = "partial"
	// StatusFailed means the run aborted before producing output
	StatusFailed RunStatus = "failed"
)

// ColumnOutput records one column's output file and counters
type ColumnOutput struct {
	Side       types.ColumnSide `json:"side"`
	OutputPath string           `json:"output_path"`
	PageCount  int              `json:"page_count"`
	CharCount  int              `json:"char_count"`
	Skipped    []int            `json:"skipped_pages,omitempty"`
}

// RunRecord is the manifest entry for one extraction run
type RunRecord struct {
	RunID      string         `json:"run_id"`
	SourcePath string         `json:"source_path"`
	SourceMD5  string         `json:"source_md5,omitempty"`
	TotalPages int            `json:"total_pages"`
	Columns    []ColumnOutput `json:"columns"`
	Warnings   int            `json:"warnings"`
	Status     RunStatus      `json:"status"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
}

// Manager persists run records under a base directory
type Manager struct {
	baseDir string
}

// NewManager creates a results manager rooted at baseDir. An empty baseDir
// defaults to ~/.gazette-extractor/runs.
func NewManager(baseDir string) (*Manager, error) {
	if baseDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".gazette-extractor", "runs")
	}

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runs directory: %w", err)
	}

	return &Manager{baseDir: baseDir}, nil
}

// NewRunID returns a fresh run identifier
func NewRunID() string {
	return uuid.NewString()
}

// WriteDocument writes one column's finalized text to path as UTF-8,
// creating parent directories as needed.
func WriteDocument(path, text string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return types.NewAppError(types.ErrOutputWrite,
				fmt.Sprintf("failed to create output directory: %s", dir), err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return types.NewAppError(types.ErrOutputWrite,
			fmt.Sprintf("failed to write output file: %s", path), err)
	}
	return nil
}

// FileMD5 returns the hex MD5 digest of the file at path, or an empty
// string if the file cannot be read. Used to identify a source document
// across runs regardless of its path.
func FileMD5(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(nil))
}

// SaveRecord persists one run record as <run_id>.json
func (m *Manager) SaveRecord(record *RunRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run record: %w", err)
	}

	path := filepath.Join(m.baseDir, record.RunID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run record: %w", err)
	}
	return nil
}

// LoadRecord reads one run record by ID
func (m *Manager) LoadRecord(runID string) (*RunRecord, error) {
	data, err := os.ReadFile(filepath.Join(m.baseDir, runID+".json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read run record: %w", err)
	}

	record := &RunRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to parse run record: %w", err)
	}
	return record, nil
}

// ListRecords returns all stored run records, most recent first
func (m *Manager) ListRecords() ([]*RunRecord, error) {
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read runs directory: %w", err)
	}

	var records []*RunRecord
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(m.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		record := &RunRecord{}
		if err := json.Unmarshal(data, record); err != nil {
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].StartedAt.After(records[j].StartedAt)
	})
	return records, nil
}
