package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig
	Redis    RedisConfig

	// Calendars
	GoogleCalendar GoogleCalendarConfig
	CalDAV         CalDAVConfig

	// Booking
	Owner     OwnerConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig

	// Messaging
	Kafka KafkaConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// RedisConfig is optional; without an address rate limiting stays in-process.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GoogleCalendarConfig is optional; without credentials bookings are stored
// locally and no calendar event is created.
type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

// CalDAVConfig is an optional extra busy source.
type CalDAVConfig struct {
	Endpoint     string
	Username     string
	Password     string
	CalendarPath string
	CalendarName string
}

func (c CalDAVConfig) Enabled() bool {
	return c.Endpoint != ""
}

type OwnerConfig struct {
	Name  string
	Email string
	// ClosedBlocks adds the complement of working hours as busy intervals.
	ClosedBlocks bool
}

type AdminConfig struct {
	Token string
}

type RateLimitConfig struct {
	PerMin   int
	Window   time.Duration
	FailOpen bool
}

// KafkaConfig is optional. Brokers is a comma separated host:port list.
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
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
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	cfg.Postgres.MinConns = viper.GetInt32("postgres.min_conns")
	cfg.Postgres.MaxConnLifetime = viper.GetDuration("postgres.max_conn_lifetime")
	cfg.Postgres.MaxConnIdleTime = viper.GetDuration("postgres.max_conn_idle_time")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Calendars
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.CalDAV.Endpoint = viper.GetString("caldav.endpoint")
	cfg.CalDAV.Username = viper.GetString("caldav.username")
	cfg.CalDAV.Password = expandEnvVar(viper.GetString("caldav.password"))
	cfg.CalDAV.CalendarPath = viper.GetString("caldav.calendar_path")
	cfg.CalDAV.CalendarName = viper.GetString("caldav.calendar_name")

	// Booking
	cfg.Owner.Name = viper.GetString("owner.name")
	cfg.Owner.Email = viper.GetString("owner.email")
	cfg.Owner.ClosedBlocks = viper.GetBool("owner.closed_blocks")

	cfg.Admin.Token = expandEnvVar(viper.GetString("admin.token"))
	if adminToken := viper.GetString("admin_token"); adminToken != "" {
		cfg.Admin.Token = adminToken
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Window = viper.GetDuration("rate_limit.window")
	cfg.RateLimit.FailOpen = viper.GetBool("rate_limit.fail_open")

	// Messaging
	cfg.Kafka.Brokers = viper.GetString("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	if c.Admin.Token == "" {
		return errors.New("admin.token is required")
	}
	if c.GoogleCalendar.Enabled() && c.Owner.Email == "" {
		return errors.New("owner.email is required when google_calendar is configured")
	}
	if strings.TrimSpace(c.Kafka.Brokers) != "" && c.Kafka.Topic == "" {
		return errors.New("kafka.topic is required when kafka.brokers is set")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.min_conns", 1)
	viper.SetDefault("postgres.max_conn_lifetime", "1h")
	viper.SetDefault("postgres.max_conn_idle_time", "30m")

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("rate_limit.per_min", 10)
	viper.SetDefault("rate_limit.window", "1m")
	viper.SetDefault("rate_limit.fail_open", true)

	viper.SetDefault("kafka.topic", "bookme.bookings")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
