package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// DefaultCrashlogMaxDays is the age cutoff applied to candidate crash
// reports when no valid value is configured.
const DefaultCrashlogMaxDays = 3

// Config represents the cabertoss configuration.
type Config struct {
	// DestinationPath is the base location under which timestamped output
	// folders are created. Empty means not configured.
	DestinationPath string `json:"destinationPath"`
	// CrashlogMaxDays excludes crash reports older than now minus N days.
	CrashlogMaxDays int `json:"crashlogMaxDays"`
	// LogDir overrides the detected Kodi log directory.
	LogDir string `json:"logDir,omitempty"`
	// LogLevel sets the verbosity of cabertoss's own logging.
	LogLevel string `json:"logLevel,omitempty"`
	// LogFile, when set, adds a rotating file writer for cabertoss's own
	// logging alongside the console output.
	LogFile string `json:"logFile,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		CrashlogMaxDays: DefaultCrashlogMaxDays,
		LogLevel:        "info",
	}
}

// ConfigDir returns the platform-appropriate config directory for cabertoss.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cabertoss"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "cabertoss"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "cabertoss"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "cabertoss"), nil
	default:
		return filepath.Join(home, ".config", "cabertoss"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	if cfg.CrashlogMaxDays <= 0 {
		cfg.CrashlogMaxDays = DefaultCrashlogMaxDays
	}
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.DestinationPath != "" {
		dst.DestinationPath = src.DestinationPath
	}
	if src.CrashlogMaxDays > 0 {
		dst.CrashlogMaxDays = src.CrashlogMaxDays
	}
	if src.LogDir != "" {
		dst.LogDir = src.LogDir
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("CABERTOSS_DESTINATION"); v != "" {
		cfg.DestinationPath = v
	}
	if v := os.Getenv("CABERTOSS_CRASHLOG_MAX_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CrashlogMaxDays = n
		}
	}
	if v := os.Getenv("CABERTOSS_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("CABERTOSS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CABERTOSS_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["destinationPath"]; ok && v != "" {
		cfg.DestinationPath = v
	}
	if v, ok := overrides["crashlogMaxDays"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CrashlogMaxDays = n
		}
	}
	if v, ok := overrides["logDir"]; ok && v != "" {
		cfg.LogDir = v
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := overrides["logFile"]; ok && v != "" {
		cfg.LogFile = v
	}
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "destinationPath":
		cfg.DestinationPath = value
	case "crashlogMaxDays":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("crashlogMaxDays must be an integer: %w", err)
		}
		cfg.CrashlogMaxDays = n
	case "logDir":
		cfg.LogDir = value
	case "logLevel":
		cfg.LogLevel = value
	case "logFile":
		cfg.LogFile = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
