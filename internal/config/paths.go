package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for forge.
type Paths struct {
	// ConfigFile is the path to the config file (~/.forge/config.yaml).
	ConfigFile string

	// CacheDir is the template cache root (<user cache dir>/forge).
	CacheDir string

	// HomeDir is the forge home directory (~/.forge).
	HomeDir string
}

// DefaultPaths returns the default paths for forge.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cacheRoot, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}

	forgeHome := filepath.Join(homeDir, ".forge")

	return &Paths{
		ConfigFile: filepath.Join(forgeHome, "config.yaml"),
		CacheDir:   filepath.Join(cacheRoot, "forge"),
		HomeDir:    forgeHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If FORGE_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("FORGE_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetCacheDir returns the template cache root.
// If FORGE_CACHE_DIR is set, it takes precedence.
func GetCacheDir() (string, error) {
	if envPath := os.Getenv("FORGE_CACHE_DIR"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.CacheDir, nil
}

// EnsureCacheDir creates the cache directory if it doesn't exist.
func EnsureCacheDir(cacheDir string) error {
	return os.MkdirAll(cacheDir, 0o755)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username form is not supported, return as-is
	return path, nil
}
