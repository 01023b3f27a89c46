package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/justyntemme/scribe/internal/logging"
)

// ErrInvalidConfig is returned by Save while the loaded file has errors.
// The file on disk is left as the user wrote it.
var ErrInvalidConfig = errors.New("config file has errors, not overwriting it")

// Config holds all user-configurable settings loaded from config.json
type Config struct {
	UI        UIConfig        `json:"ui"`
	Editor    EditorConfig    `json:"editor"`
	Workspace WorkspaceConfig `json:"workspace"`
	Search    SearchConfig    `json:"search"`
	Logging   LoggingConfig   `json:"logging"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	Theme        string `json:"theme" jsonschema:"enum=light,enum=dark,description=Color theme"`
	SidebarWidth int    `json:"sidebarWidth" jsonschema:"minimum=120,maximum=1200,description=Sidebar width in dp"`
	DirsFirst    bool   `json:"dirsFirst" jsonschema:"description=Group folders above files in the tree"`
	ToastSeconds int    `json:"toastSeconds" jsonschema:"minimum=0,description=Notification display time"`
}

// EditorConfig holds document settings
type EditorConfig struct {
	MaxFileSize int64 `json:"maxFileSize" jsonschema:"minimum=0,description=Largest file opened in bytes (0 = no limit)"`
	Monospace   bool  `json:"monospace" jsonschema:"description=Render documents in a monospace font"`
	TextSize    int   `json:"textSize" jsonschema:"minimum=6,maximum=72,description=Document text size in sp"`
}

// WorkspaceConfig holds startup behavior
type WorkspaceConfig struct {
	RestoreLastRoot bool `json:"restoreLastRoot" jsonschema:"description=Reopen the last folder when started without one"`
	HistoryLimit    int  `json:"historyLimit" jsonschema:"minimum=0,description=Recent files kept (0 = unlimited)"`
}

// SearchConfig holds file finder settings
type SearchConfig struct {
	MaxResults    int      `json:"maxResults" jsonschema:"minimum=0,description=Search hit limit (0 = unlimited)"`
	IncludeHidden bool     `json:"includeHidden" jsonschema:"description=Search inside dot files and folders"`
	Exclude       []string `json:"exclude" jsonschema:"description=.dockerignore-style patterns skipped by search"`
}

// LoggingConfig holds diagnostic log settings
type LoggingConfig struct {
	Level string `json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,description=Diagnostic log level"`
}

// ToastDuration returns how long notifications stay visible.
func (c UIConfig) ToastDuration() time.Duration {
	if c.ToastSeconds <= 0 {
		return 4 * time.Second
	}
	return time.Duration(c.ToastSeconds) * time.Second
}

// Manager handles loading, saving, and accessing configuration
type Manager struct {
	mu       sync.RWMutex
	config   *Config
	path     string
	parseErr error // Stores parsing error if config failed to load
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		config: DefaultConfig(),
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:        "light",
			SidebarWidth: 260,
			DirsFirst:    true,
			ToastSeconds: 4,
		},
		Editor: EditorConfig{
			MaxFileSize: 8 << 20,
			Monospace:   true,
			TextSize:    14,
		},
		Workspace: WorkspaceConfig{
			RestoreLastRoot: true,
			HistoryLimit:    200,
		},
		Search: SearchConfig{
			MaxResults:    500,
			IncludeHidden: false,
			Exclude:       []string{"**/.git", "**/node_modules"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ConfigPath returns the config file path: ~/.config/scribe/config.json
// This is consistent across all platforms (Windows, macOS, Linux)
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "scribe", "config.json")
}

// Load reads the configuration from ConfigPath.
func (m *Manager) Load() error {
	return m.LoadFrom(ConfigPath())
}

// LoadFrom reads the configuration at path.
// If the file doesn't exist, creates it with defaults.
// If parsing fails, stores the error and keeps defaults.
// Keys missing from the file keep their default values.
func (m *Manager) LoadFrom(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	log := logging.NewLogger("config")
	m.path = path
	m.parseErr = nil

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Infof("creating default config at %s", path)
		m.config = DefaultConfig()
		if err := m.saveUnlocked(); err != nil {
			return fmt.Errorf("save default config: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := Validate(data); err != nil {
		log.WithError(err).Warn("config invalid, using defaults")
		m.parseErr = err
		m.config = DefaultConfig()
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		// Keep running on defaults; ParseError lets the UI surface it.
		log.WithError(err).Warn("config parse error, using defaults")
		m.parseErr = err
		m.config = DefaultConfig()
		return nil
	}

	log.Debugf("loaded config from %s", path)
	m.config = cfg
	return nil
}

// saveUnlocked saves config without acquiring lock (caller must hold lock)
func (m *Manager) saveUnlocked() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}

// Save writes the current configuration to disk. It refuses while the
// loaded file failed to parse or validate, since the in-memory values are
// defaults and would replace the user's settings.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.parseErr != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, m.path)
	}
	return m.saveUnlocked()
}

// Get returns a copy of the current configuration
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return *DefaultConfig()
	}
	return *m.config
}

// Path returns the file the configuration was loaded from.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// ParseError returns the parsing error if config failed to load
func (m *Manager) ParseError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parseErr
}

// SetTheme updates the theme setting. The new theme applies for the
// session even when Save refuses to write.
func (m *Manager) SetTheme(theme string) error {
	m.mu.Lock()
	m.config.UI.Theme = theme
	m.mu.Unlock()
	return m.Save()
}

// IsDarkMode returns true if dark mode is enabled
func (m *Manager) IsDarkMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.UI.Theme == "dark"
}

// GenerateConfig backs up the config at path and writes fresh defaults.
// Returns the backup path if a backup was created, or empty string if no existing config
func GenerateConfig(path string) (backupPath string, err error) {
	if _, err := os.Stat(path); err == nil {
		timestamp := time.Now().Format("20060102-150405")
		backupPath = filepath.Join(filepath.Dir(path), "config.backup."+timestamp+".json")

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read existing config: %w", err)
		}
		if err := os.WriteFile(backupPath, data, 0o644); err != nil {
			return "", fmt.Errorf("failed to write backup: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return backupPath, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return backupPath, fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return backupPath, fmt.Errorf("failed to write config: %w", err)
	}
	return backupPath, nil
}
