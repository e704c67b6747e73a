// Package errors tracks extraction failures across batch runs so failed
// documents can be retried without reprocessing the ones that succeeded.
package errors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Stage identifies where in the pipeline a failure occurred
type Stage string

const (
	// StageOpen means the source document could not be opened
	StageOpen Stage = "open"
	// StageGeometry means page geometry could not be resolved
	StageGeometry Stage = "geometry"
	// StageExtract means per-page extraction failed
	StageExtract Stage = "extract"
	// StageWrite means an output file could not be written
	StageWrite Stage = "write"
)

// Record is one tracked failure, keyed by the source file
type Record struct {
	ID         string    `json:"id"` // source file base name
	SourcePath string    `json:"source_path"`
	Stage      Stage     `json:"stage"`
	ErrorMsg   string    `json:"error_msg"`
	Timestamp  time.Time `json:"timestamp"`
	RetryCount int       `json:"retry_count"`
	LastRetry  time.Time `json:"last_retry,omitempty"`
}

// Manager persists failure records as a single JSON file under baseDir
type Manager struct {
	baseDir string
	mu      sync.RWMutex
	records map[string]*Record
}

const recordsFileName = "extraction-errors.json"

// NewManager creates an error manager rooted at baseDir. An empty baseDir
// defaults to ~/.gazette-extractor/errors.
func NewManager(baseDir string) (*Manager, error) {
	if baseDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".gazette-extractor", "errors")
	}

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create errors directory: %w", err)
	}

	m := &Manager{
		baseDir: baseDir,
		records: make(map[string]*Record),
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

// Record stores or updates a failure record for the given source file
func (m *Manager) Record(sourcePath string, stage Stage, errorMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := filepath.Base(sourcePath)
	record := &Record{
		ID:         id,
		SourcePath: sourcePath,
		Stage:      stage,
		ErrorMsg:   errorMsg,
		Timestamp:  time.Now(),
	}

	if existing, ok := m.records[id]; ok {
		record.RetryCount = existing.RetryCount + 1
		record.LastRetry = time.Now()
	}
	m.records[id] = record

	return m.save()
}

// Remove drops the record for a source file (after a successful retry)
func (m *Manager) Remove(sourcePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := filepath.Base(sourcePath)
	if _, ok := m.records[id]; !ok {
		return nil
	}
	delete(m.records, id)
	return m.save()
}

// Get returns the record for a source file, if any
func (m *Manager) Get(sourcePath string) (*Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[filepath.Base(sourcePath)]
	return record, ok
}

// List returns all records, oldest first
func (m *Manager) List() []*Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Record, 0, len(m.records))
	for _, r := range m.records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records
}

// load reads the records file; a missing file yields an empty store
func (m *Manager) load() error {
	data, err := os.ReadFile(filepath.Join(m.baseDir, recordsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read error records: %w", err)
	}

	var records []*Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse error records: %w", err)
	}
	for _, r := range records {
		m.records[r.ID] = r
	}
	return nil
}

// save writes the records file; caller holds the lock
func (m *Manager) save() error {
	records := make([]*Record, 0, len(m.records))
	for _, r := range m.records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal error records: %w", err)
	}
	if err := os.WriteFile(filepath.Join(m.baseDir, recordsFileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write error records: %w", err)
	}
	return nil
}
