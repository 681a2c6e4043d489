package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigEnv names an explicit config file.
const ConfigEnv = "TYPESET_CONFIG"

// Config holds application configuration.
type Config struct {
	Article   ArticleConfig
	UI        UIConfig
	Tmux      TmuxConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

// ArticleConfig selects the document to read.
type ArticleConfig struct {
	Path  string
	Watch bool
}

// UIConfig holds terminal settings.
type UIConfig struct {
	Mouse      bool
	PanelWidth int `mapstructure:"panel_width"`
}

// TmuxConfig controls pane styling.
type TmuxConfig struct {
	SyncPaneStyle bool `mapstructure:"sync_pane_style"`
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	File string
}

// TelemetryConfig holds OTLP export settings. An empty endpoint disables export.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
	Insecure     bool
}

// DefaultPath is the config file used when neither a path nor TYPESET_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "typeset", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix TYPESET_
// (e.g. TYPESET_UI_MOUSE=false). path, when non-empty, names the config file and
// must exist; otherwise $TYPESET_CONFIG or the default location is read if present.
func Load(path string) (Config, error) {
	v := viper.New()

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "typeset"
	}

	// default values
	v.SetDefault("article.path", "")
	v.SetDefault("article.watch", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.panel_width", 46)
	v.SetDefault("tmux.sync_pane_style", false)
	v.SetDefault("log.file", "")
	v.SetDefault("telemetry.otlp_endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	v.SetDefault("telemetry.service_name", serviceName)
	v.SetDefault("telemetry.insecure", true)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TYPESET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
