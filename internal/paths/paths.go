// Package paths resolves the configuration directory, the database file and
// the translation catalog used by the tristate CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user configuration directory.
const appName = "tristate"

// CWD-relative and config-relative default file names.
const (
	DefaultDatabaseName = "tristate.db"
	DefaultCatalogName  = "locales.yml"
)

// Environment variable names for overrides.
const (
	EnvConfigDir = "TRISTATE_CONFIG_DIR"
	EnvDatabase  = "TRISTATE_DB"
	EnvCatalog   = "TRISTATE_CATALOG"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/tristate (fallback ~/.config/tristate)
// macOS:   ~/Library/Application Support/tristate
// Windows: %APPDATA%/tristate
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > TRISTATE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDatabase returns the database path following the precedence chain:
// flag > config.yaml value > TRISTATE_DB env > $(CWD)/tristate.db.
func ResolveDatabase(flag, configValue string) (string, error) {
	if p := firstNonEmpty(flag, configValue, os.Getenv(EnvDatabase)); p != "" {
		return filepath.Abs(p)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDatabaseName), nil
}

// ResolveCatalog returns the translation catalog path following the
// precedence chain: flag > config.yaml value > TRISTATE_CATALOG env >
// <configDir>/locales.yml. Relative config values are taken relative to
// configDir.
func ResolveCatalog(flag, configValue, configDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		if filepath.IsAbs(configValue) {
			return configValue, nil
		}
		return filepath.Join(configDir, configValue), nil
	}
	if env := os.Getenv(EnvCatalog); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Join(configDir, DefaultCatalogName), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
