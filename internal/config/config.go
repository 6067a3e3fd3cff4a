// Package config provides configuration loading and management.
package config

// DefaultsConfig contains per-user default values for new projects.
type DefaultsConfig struct {
	// AuthorName is a stored author name. Project customization reads the
	// author identity from the git configuration; this field is kept for the
	// config schema.
	AuthorName string `mapstructure:"authorName"`

	// AuthorEmail is a stored author email. See AuthorName.
	AuthorEmail string `mapstructure:"authorEmail"`

	// DefaultDirectory is where new projects are created when --directory
	// is omitted. Empty means the current directory.
	DefaultDirectory string `mapstructure:"defaultDirectory"`
}

// TemplatesConfig contains template cache settings.
type TemplatesConfig struct {
	// CacheDirectory overrides the template cache root.
	// Env: FORGE_CACHE_DIR, Default: <user cache dir>/forge
	CacheDirectory string `mapstructure:"cacheDirectory"`

	// AutoUpdate controls whether stale cached templates are refreshed
	// automatically. Default: true.
	AutoUpdate *bool `mapstructure:"autoUpdate"`

	// UpdateIntervalDays is the staleness threshold for AutoUpdate.
	// Default: 7.
	UpdateIntervalDays int `mapstructure:"updateIntervalDays"`
}

// Config represents the forge CLI configuration.
// Loaded from ~/.forge/config.yaml with FORGE_* env overrides.
type Config struct {
	Defaults  DefaultsConfig  `mapstructure:"defaults"`
	Templates TemplatesConfig `mapstructure:"templates"`
}

// WithDefaults returns a copy of the config with default values applied.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.Templates.AutoUpdate == nil {
		enabled := true
		out.Templates.AutoUpdate = &enabled
	}
	if out.Templates.UpdateIntervalDays == 0 {
		out.Templates.UpdateIntervalDays = 7
	}

	return &out
}

// CacheDirectory returns the effective template cache root: the configured
// override when set, otherwise the platform cache location.
func (c *Config) CacheDirectory() (string, error) {
	if c.Templates.CacheDirectory != "" {
		return ExpandPath(c.Templates.CacheDirectory)
	}
	return GetCacheDir()
}
