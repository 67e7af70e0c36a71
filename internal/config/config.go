package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	SelfPlay   SelfPlayConfig   `mapstructure:"selfplay"`
	Events     EventsConfig     `mapstructure:"events"`
	Experience ExperienceConfig `mapstructure:"experience"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SelfPlayConfig holds self-play runner settings
type SelfPlayConfig struct {
	Games       int   `mapstructure:"games"`
	Seed        int64 `mapstructure:"seed"`
	MaxPlays    int   `mapstructure:"max_plays"`
	RenderFinal bool  `mapstructure:"render_final"`
}

// EventsConfig holds event bus observability settings
type EventsConfig struct {
	LogEvents bool `mapstructure:"log_events"`
	DevMode   bool `mapstructure:"dev_mode"`
}

// ExperienceConfig holds training sample collection settings
type ExperienceConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Path     string `mapstructure:"path"`
	Capacity int    `mapstructure:"capacity"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("selfplay.games", 1)
	v.SetDefault("selfplay.seed", 0) // 0 means seed from the clock
	v.SetDefault("selfplay.max_plays", 64)
	v.SetDefault("selfplay.render_final", true)

	v.SetDefault("events.log_events", false)
	v.SetDefault("events.dev_mode", false)

	v.SetDefault("experience.enabled", false)
	v.SetDefault("experience.path", "experiences.jsonl")
	v.SetDefault("experience.capacity", 100000)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("AVALAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration. Init must have been called.
func Get() *Config {
	return cfg
}

// ConfigFileUsed returns the path of the config file in effect, if any
func ConfigFileUsed() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		_ = v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json")
	}
	if c.SelfPlay.Games <= 0 {
		return fmt.Errorf("selfplay.games must be positive")
	}
	if c.SelfPlay.MaxPlays <= 0 {
		return fmt.Errorf("selfplay.max_plays must be positive")
	}
	if c.Experience.Enabled {
		if c.Experience.Path == "" {
			return fmt.Errorf("experience.path must be set when collection is enabled")
		}
		if c.Experience.Capacity <= 0 {
			return fmt.Errorf("experience.capacity must be positive")
		}
	}
	return nil
}
