package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Patterns   PatternsConfig   `mapstructure:"patterns"`
	Output     OutputConfig     `mapstructure:"output"`
	Sweep      SweepConfig      `mapstructure:"sweep"`
	Viewer     ViewerConfig     `mapstructure:"viewer"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// SimulationConfig holds board and stepping settings
type SimulationConfig struct {
	TileSize          int    `mapstructure:"tile_size"`
	Generations       int    `mapstructure:"generations"`
	Workers           int    `mapstructure:"workers"`
	ParallelThreshold int    `mapstructure:"parallel_threshold"`
	Storage           string `mapstructure:"storage"`
	MaxPeriod         int    `mapstructure:"max_period"`
}

// PatternsConfig selects the two starting tiles
type PatternsConfig struct {
	A           string  `mapstructure:"a"`
	B           string  `mapstructure:"b"`
	MirrorInput bool    `mapstructure:"mirror_input"`
	Settle      bool    `mapstructure:"settle"`
	Density     float64 `mapstructure:"density"`
}

// OutputConfig holds where results are written
type OutputConfig struct {
	ImagePath   string `mapstructure:"image_path"`
	ImageFormat string `mapstructure:"image_format"`
	ImageScale  int    `mapstructure:"image_scale"`
	ResultsCSV  string `mapstructure:"results_csv"`
	PrintBoard  bool   `mapstructure:"print_board"`
}

// SweepConfig holds random sweep settings
type SweepConfig struct {
	Runs     int     `mapstructure:"runs"`
	Seed     int64   `mapstructure:"seed"`
	Density  float64 `mapstructure:"density"`
	Opponent string  `mapstructure:"opponent"`
}

// ViewerConfig holds window settings for the live viewer
type ViewerConfig struct {
	Width              int    `mapstructure:"width"`
	Height             int    `mapstructure:"height"`
	Title              string `mapstructure:"title"`
	Scale              int    `mapstructure:"scale"`
	TicksPerGeneration int    `mapstructure:"ticks_per_generation"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Simulation defaults
	v.SetDefault("simulation.tile_size", 8)
	v.SetDefault("simulation.generations", 100)
	v.SetDefault("simulation.workers", 0) // 0 means GOMAXPROCS
	v.SetDefault("simulation.parallel_threshold", 4)
	v.SetDefault("simulation.storage", "contiguous")
	v.SetDefault("simulation.max_period", 0) // 0 means unbounded

	// Pattern defaults
	v.SetDefault("patterns.a", "lwss")
	v.SetDefault("patterns.b", "empty")
	v.SetDefault("patterns.mirror_input", false)
	v.SetDefault("patterns.settle", false)
	v.SetDefault("patterns.density", 0.3)

	// Output defaults
	v.SetDefault("output.image_path", "")
	v.SetDefault("output.image_format", "")
	v.SetDefault("output.image_scale", 1)
	v.SetDefault("output.results_csv", "")
	v.SetDefault("output.print_board", false)

	// Sweep defaults
	v.SetDefault("sweep.runs", 20)
	v.SetDefault("sweep.seed", 1)
	v.SetDefault("sweep.density", 0.3)
	v.SetDefault("sweep.opponent", "lwss")

	// Viewer defaults
	v.SetDefault("viewer.width", 960)
	v.SetDefault("viewer.height", 320)
	v.SetDefault("viewer.title", "Life Struggle")
	v.SetDefault("viewer.scale", 4)
	v.SetDefault("viewer.ticks_per_generation", 6)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
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
		v.AddConfigPath("/etc/life-struggle")
	}

	v.SetEnvPrefix("LIFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// A missing file falls back to defaults.
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

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return Validate(cfg)
}

// Set allows runtime config updates, e.g. from command-line flags
func Set(key string, value interface{}) {
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.OnConfigChange(func(e fsnotify.Event) {
		_ = v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
	v.WatchConfig()
}

var (
	validStorages = map[string]bool{"contiguous": true, "sparse": true}
	validFormats  = map[string]bool{"": true, "png": true, "bmp": true, "tiff": true}
	validLevels   = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
)

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Simulation.TileSize <= 0 {
		return fmt.Errorf("simulation.tile_size must be positive")
	}
	if c.Simulation.Generations < 0 {
		return fmt.Errorf("simulation.generations must be non-negative")
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation.workers must be non-negative")
	}
	if c.Simulation.ParallelThreshold < 0 {
		return fmt.Errorf("simulation.parallel_threshold must be non-negative")
	}
	if !validStorages[c.Simulation.Storage] {
		return fmt.Errorf("simulation.storage must be contiguous or sparse, got %q", c.Simulation.Storage)
	}
	if c.Simulation.MaxPeriod < 0 {
		return fmt.Errorf("simulation.max_period must be non-negative")
	}

	if c.Patterns.A == "" || c.Patterns.B == "" {
		return fmt.Errorf("patterns.a and patterns.b must be set")
	}
	if c.Patterns.Density < 0 || c.Patterns.Density > 1 {
		return fmt.Errorf("patterns.density must be between 0 and 1")
	}

	if !validFormats[c.Output.ImageFormat] {
		return fmt.Errorf("output.image_format must be png, bmp or tiff, got %q", c.Output.ImageFormat)
	}
	if c.Output.ImageScale <= 0 {
		return fmt.Errorf("output.image_scale must be positive")
	}

	if c.Sweep.Runs <= 0 {
		return fmt.Errorf("sweep.runs must be positive")
	}
	if c.Sweep.Density < 0 || c.Sweep.Density > 1 {
		return fmt.Errorf("sweep.density must be between 0 and 1")
	}
	if c.Sweep.Opponent == "" {
		return fmt.Errorf("sweep.opponent must be set")
	}

	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return fmt.Errorf("viewer window dimensions must be positive")
	}
	if c.Viewer.Scale <= 0 {
		return fmt.Errorf("viewer.scale must be positive")
	}
	if c.Viewer.TicksPerGeneration <= 0 {
		return fmt.Errorf("viewer.ticks_per_generation must be positive")
	}

	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}
