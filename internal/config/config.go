package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Storage  StorageConfig  `mapstructure:"storage"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	// Keys maps an action name to the key strings that trigger it,
	// replacing the built-in bindings for that action.
	Keys map[string][]string `mapstructure:"keys"`
}

// DataConfig locates the two CSV files.
type DataConfig struct {
	CategoriesPath string `mapstructure:"categories_path"`
	PurchasesPath  string `mapstructure:"purchases_path"`
}

// StorageConfig holds the optional sqlite mirror. An empty path disables it.
type StorageConfig struct {
	MirrorPath string `mapstructure:"mirror_path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Timezone       string        `mapstructure:"timezone"`
	HintTimeout    time.Duration `mapstructure:"hint_timeout"`
	SubtotalPrefix string        `mapstructure:"subtotal_prefix"`
}

// LogConfig holds logging settings. An empty path discards log output.
type LogConfig struct {
	Path   string `mapstructure:"path"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ScheduleConfig holds the cron spec of the weekly rollover.
type ScheduleConfig struct {
	Rollover string `mapstructure:"rollover"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	data := filepath.Join(os.Getenv("HOME"), ".local", "share", "pyrite")
	return Config{
		Data: DataConfig{
			CategoriesPath: filepath.Join(data, "categories.csv"),
			PurchasesPath:  filepath.Join(data, "spending_data.csv"),
		},
		UI: UIConfig{
			Timezone:       "Pacific/Auckland",
			HintTimeout:    3 * time.Second,
			SubtotalPrefix: "Food: ",
		},
		Log: LogConfig{
			Path:   filepath.Join(data, "pyrite.log"),
			Level:  "info",
			Format: "json",
		},
		Schedule: ScheduleConfig{Rollover: "0 0 * * MON"},
	}
}

// Path returns the config file location: $PYRITE_CONFIG, or
// ~/.config/pyrite/config.toml.
func Path() string {
	if p := os.Getenv("PYRITE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "pyrite", "config.toml")
}

// Load reads configuration from the default file and env. Env var overrides
// use prefix PYRITE_.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads configuration from path and env. A missing file is not an
// error; a file that fails to parse is.
func LoadFrom(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("PYRITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.HintTimeout < 0 {
		return Config{}, fmt.Errorf("ui.hint_timeout must not be negative, got %s", c.UI.HintTimeout)
	}
	return c, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("data.categories_path", c.Data.CategoriesPath)
	v.SetDefault("data.purchases_path", c.Data.PurchasesPath)
	v.SetDefault("storage.mirror_path", c.Storage.MirrorPath)
	v.SetDefault("ui.timezone", c.UI.Timezone)
	v.SetDefault("ui.hint_timeout", c.UI.HintTimeout)
	v.SetDefault("ui.subtotal_prefix", c.UI.SubtotalPrefix)
	v.SetDefault("log.path", c.Log.Path)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("schedule.rollover", c.Schedule.Rollover)
}

// Save writes cfg to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("data.categories_path", cfg.Data.CategoriesPath)
	v.Set("data.purchases_path", cfg.Data.PurchasesPath)
	v.Set("storage.mirror_path", cfg.Storage.MirrorPath)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.hint_timeout", cfg.UI.HintTimeout.String())
	v.Set("ui.subtotal_prefix", cfg.UI.SubtotalPrefix)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("schedule.rollover", cfg.Schedule.Rollover)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
