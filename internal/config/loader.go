package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local config directories.
const FileName = "skyhop.yaml"

// LoadSkyhop loads game configuration.
// Search order: customPath -> ~/.skyhop/configs/skyhop.yaml -> ./configs/skyhop.yaml -> embedded default.
// Files are applied on top of the built-in defaults, so partial files are fine.
// A custom path that cannot be read, parsed or validated is an error; other
// candidates that fail are skipped.
func LoadSkyhop(customPath string) (SkyhopConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultSkyhopConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultSkyhopConfig()
	if err := yaml.Unmarshal(defaultSkyhopYAML, &cfg); err != nil {
		return DefaultSkyhopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Locate returns the file LoadSkyhop would read, or "" when the embedded default applies.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFile reads one YAML file over the defaults and validates the result.
func loadFile(path string) (SkyhopConfig, error) {
	cfg := DefaultSkyhopConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the non-custom candidates in priority order.
func searchPaths() []string {
	var paths []string
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyhop", "configs", filename)
}
