package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

func (l LogLevel) ToSlog() slog.Level {
	switch LogLevel(strings.ToUpper(string(l))) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type LogFormat string

const (
	LogFormatPlaintext LogFormat = "plaintext"
	LogFormatJSON      LogFormat = "json"
)

type AppEnv string

const (
	AppEnvDev        AppEnv = "dev"
	AppEnvProduction AppEnv = "production"
)

type Config struct {
	App      AppConfig
	Sentry   SentryConfig
	Database DatabaseConfig
	Log      LogConfig
	Seed     SeedConfig
}

type AppConfig struct {
	Debug           bool
	Port            uint32
	Host            string
	URL             string
	Name            string
	ShutdownTimeout int32 // in seconds
	Env             AppEnv
	Version         string
	RequestTimeout  uint32 // in seconds
}

type SentryConfig struct {
	Enabled    bool
	DSN        string
	SampleRate float64
	TracesRate float64
}

type DatabaseConfig struct {
	// An empty URL runs the application on the in-memory store.
	URL      string
	Schema   string
	MaxConns int32
}

type LogConfig struct {
	Format  LogFormat
	Level   LogLevel
	Verbose bool
}

type SeedConfig struct {
	Enabled bool
}

// defaults are registered on the reader, which also makes the keys known to AutomaticEnv.
var defaults = map[string]any{
	"app_debug":           false,
	"app_port":            8080,
	"app_host":            "localhost",
	"app_url":             "",
	"app_name":            "customers",
	"app_shutdowntimeout": 5,
	"app_env":             string(AppEnvProduction),
	"app_version":         "dev",
	"app_requesttimeout":  30,
	"sentry_enabled":      false,
	"sentry_dsn":          "",
	"sentry_samplerate":   1.0,
	"sentry_tracesrate":   0.0,
	"database_url":        "",
	"database_schema":     "public",
	"database_maxconns":   0,
	"log_format":          string(LogFormatJSON),
	"log_level":           string(LogLevelInfo),
	"log_verbose":         false,
	"seed_enabled":        true,
}

func (c Config) BaseURL() string {
	url := c.App.URL
	// If no url was specified, build one from the host and port values
	if len(c.App.URL) == 0 {
		url = fmt.Sprintf("http://%v:%v", c.App.Host, c.App.Port)
	}
	return url
}

// Address the server listens on.
func (c Config) ListenAddress() string {
	return fmt.Sprintf("%v:%v", c.App.Host, c.App.Port)
}

// UsesDatabase returns whether a postgres database has been configured.
func (c Config) UsesDatabase() bool {
	return len(c.Database.URL) > 0
}

func (c *Config) IsTest() bool {
	return flag.Lookup("test.v") != nil || strings.HasSuffix(os.Args[0], ".test") ||
		strings.Contains(os.Args[0], "/_test/")
}

// Load the configuration file from the specified filesystem.
// You can specify additional .env files to load, by default this only checks for ".env" in the
// current working directory.
// A missing config.toml is not an error, all settings then come from the defaults and the environment.
func Load(configFS fs.FS, dotenvFiles ...string) (*Config, error) {
	reader := viper.NewWithOptions(viper.KeyDelimiter("_"))
	reader.SetConfigType("toml")
	for key, value := range defaults {
		reader.SetDefault(key, value)
	}

	file, err := configFS.Open("config.toml")
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("No config.toml found, continuing with defaults...")
	} else if err != nil {
		return nil, fmt.Errorf("could not open config.toml in the configFS: %w", err)
	} else {
		defer file.Close()
		if err = reader.ReadConfig(file); err != nil {
			return nil, fmt.Errorf("could not load the app configuration: %w", err)
		}
	}

	// Environment override
	err = godotenv.Load(dotenvFiles...)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("No .env file found, continuing...")
	} else if err != nil {
		return nil, fmt.Errorf(".env file found, but could not load it: %w", err)
	}
	reader.AutomaticEnv()

	var config Config
	if err := reader.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("invalid config format: %w", err)
	}

	if config.App.Debug && !config.IsTest() {
		slog.Warn("APP_DEBUG is turned on, do not run this mode in production!")
	}

	return &config, nil
}
