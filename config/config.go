package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	SQLite SQLiteConfig

	// Integrations
	GoogleCalendar GoogleCalendarConfig

	// Scheduling behavior
	Scheduling SchedulingConfig
	Digest     DigestConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type SQLiteConfig struct {
	Path string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type SchedulingConfig struct {
	Timezone          string
	WorkingHoursStart int
	WorkingHoursEnd   int
	HorizonDays       int
}

type DigestConfig struct {
	Enabled bool
	Spec    string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RPS = viper.GetFloat64("rate_limit.rps")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Storage
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	if dbPath := viper.GetString("sqlite_path"); dbPath != "" {
		cfg.SQLite.Path = dbPath
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Scheduling
	cfg.Scheduling.Timezone = viper.GetString("scheduling.timezone")
	cfg.Scheduling.WorkingHoursStart = viper.GetInt("scheduling.working_hours_start")
	cfg.Scheduling.WorkingHoursEnd = viper.GetInt("scheduling.working_hours_end")
	cfg.Scheduling.HorizonDays = viper.GetInt("scheduling.horizon_days")
	if cfg.Scheduling.WorkingHoursEnd <= cfg.Scheduling.WorkingHoursStart {
		return nil, fmt.Errorf("scheduling.working_hours_end (%d) must be after working_hours_start (%d)",
			cfg.Scheduling.WorkingHoursEnd, cfg.Scheduling.WorkingHoursStart)
	}

	// Digest
	cfg.Digest.Enabled = viper.GetBool("digest.enabled")
	cfg.Digest.Spec = viper.GetString("digest.spec")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.rps", 10)
	viper.SetDefault("rate_limit.burst", 20)
	viper.SetDefault("sqlite.path", "data/synctracker.db")
	viper.SetDefault("scheduling.timezone", "UTC")
	viper.SetDefault("scheduling.working_hours_start", 9)
	viper.SetDefault("scheduling.working_hours_end", 17)
	viper.SetDefault("scheduling.horizon_days", 14)
	viper.SetDefault("digest.enabled", true)
	viper.SetDefault("digest.spec", "0 7 * * *")
}
