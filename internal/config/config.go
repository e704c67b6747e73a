// Package config provides configuration management for the gazette extractor.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gazette-extractor/internal/logger"
	"gazette-extractor/internal/types"
)

const (
	// DefaultConfigFileName is the default configuration file name
	DefaultConfigFileName = "gazette-extractor-config.json"
	// EnvWorkDir overrides the work directory
	EnvWorkDir = "GAZETTE_WORK_DIR"
	// DefaultEngine is the default extraction backend
	DefaultEngine = "pdfplumber"
	// DefaultProgressInterval is the default page interval between progress reports
	DefaultProgressInterval = 50
	// DefaultLogLevel is the default minimum log level
	DefaultLogLevel = "info"
)

// Manager loads and persists the application configuration
type Manager struct {
	configPath string
	config     *types.Config
}

// NewManager creates a Manager with the specified config path.
// If configPath is empty, it uses the default path in the user's home directory.
func NewManager(configPath string) (*Manager, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, types.NewAppError(types.ErrConfig, "failed to get user home directory", err)
		}
		configPath = filepath.Join(homeDir, ".config", "gazette-extractor", DefaultConfigFileName)
	}

	return &Manager{
		configPath: configPath,
		config:     defaultConfig(),
	}, nil
}

// defaultConfig returns a Config with default values
func defaultConfig() *types.Config {
	return &types.Config{
		Margins:          types.DefaultMargins(),
		Engine:           DefaultEngine,
		ProgressInterval: DefaultProgressInterval,
		WorkDirectory:    "",
		LogLevel:         DefaultLogLevel,
	}
}

// Load loads configuration from the config file.
// A missing file is not an error: defaults are used. An unparseable file
// falls back to defaults with a warning. Empty fields are back-filled with
// defaults, and the GAZETTE_WORK_DIR environment variable takes precedence
// over the configured work directory.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("config file not found, using defaults", logger.String("path", m.configPath))
			m.config = defaultConfig()
		} else {
			logger.Error("failed to read config file", err, logger.String("path", m.configPath))
			return types.NewAppError(types.ErrConfig, "failed to read config file", err)
		}
	} else {
		cfg := &types.Config{}
		if err := json.Unmarshal(data, cfg); err != nil {
			logger.Warn("invalid config file format, using defaults",
				logger.String("path", m.configPath), logger.Err(err))
			m.config = defaultConfig()
		} else {
			logger.Info("configuration loaded",
				logger.String("path", m.configPath),
				logger.String("engine", cfg.Engine))
			m.config = cfg
		}
	}

	// Back-fill defaults for empty fields
	if m.config.Margins == (types.LayoutMargins{}) {
		m.config.Margins = types.DefaultMargins()
	}
	if m.config.Engine == "" {
		m.config.Engine = DefaultEngine
	}
	if m.config.ProgressInterval <= 0 {
		m.config.ProgressInterval = DefaultProgressInterval
	}
	if m.config.LogLevel == "" {
		m.config.LogLevel = DefaultLogLevel
	}
	if dir := os.Getenv(EnvWorkDir); dir != "" {
		m.config.WorkDirectory = dir
	}

	return nil
}

// Save persists the current configuration to the config file, creating
// parent directories as needed.
func (m *Manager) Save() error {
	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return types.NewAppError(types.ErrConfig, "failed to create config directory", err)
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return types.NewAppError(types.ErrConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return types.NewAppError(types.ErrConfig, "failed to write config file", err)
	}

	logger.Info("configuration saved", logger.String("path", m.configPath))
	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *types.Config {
	return m.config
}

// Set replaces the current configuration
func (m *Manager) Set(cfg *types.Config) {
	if cfg != nil {
		m.config = cfg
	}
}
