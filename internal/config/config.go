package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port               string
	Environment        string
	BaseURL            string
	CORSAllowedOrigins []string
}

type DatabaseConfig struct {
	// URL takes precedence over the individual connection parts
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns   int
	MaxIdleConns   int
	ConnectRetries uint64
	RunMigrations  bool
}

type LogConfig struct {
	Level  string
	Format string
}

// New returns a viper instance with every supported key bound to its
// environment variable and default value.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("port", "3000")
	v.SetDefault("environment", "development")
	v.SetDefault("base_url", "")
	v.SetDefault("cors_allowed_origins", "*")

	v.SetDefault("database_url", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "pms")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_max_open_conns", 25)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_connect_retries", 5)
	v.SetDefault("run_migrations", true)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.AutomaticEnv()
	// APP_PORT is what older deployments export
	_ = v.BindEnv("port", "PORT", "APP_PORT")

	return v
}

// Load reads an optional .env file and builds the configuration from v.
// A nil v means "use New()".
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	if v == nil {
		v = New()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               v.GetString("port"),
			Environment:        v.GetString("environment"),
			BaseURL:            v.GetString("base_url"),
			CORSAllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
		},
		Database: DatabaseConfig{
			URL:            v.GetString("database_url"),
			Host:           v.GetString("db_host"),
			Port:           v.GetInt("db_port"),
			User:           v.GetString("db_user"),
			Password:       v.GetString("db_password"),
			Name:           v.GetString("db_name"),
			SSLMode:        v.GetString("db_sslmode"),
			MaxOpenConns:   v.GetInt("db_max_open_conns"),
			MaxIdleConns:   v.GetInt("db_max_idle_conns"),
			ConnectRetries: v.GetUint64("db_connect_retries"),
			RunMigrations:  v.GetBool("run_migrations"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Server.Port == "" {
		result = multierror.Append(result, fmt.Errorf("PORT is required"))
	} else if _, err := strconv.ParseUint(c.Server.Port, 10, 16); err != nil {
		result = multierror.Append(result, fmt.Errorf("PORT must be a number between 0 and 65535, got %q", c.Server.Port))
	}

	for _, origin := range c.Server.CORSAllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			result = multierror.Append(result, fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must start with http:// or https://", origin))
		}
	}

	if c.Database.URL != "" {
		if _, err := url.Parse(c.Database.URL); err != nil {
			result = multierror.Append(result, fmt.Errorf("DATABASE_URL is not a valid URL: %w", err))
		}
	} else if c.Database.Host == "" {
		result = multierror.Append(result, fmt.Errorf("DATABASE_URL or DB_HOST is required"))
	}

	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		result = multierror.Append(result, fmt.Errorf("DB_MAX_OPEN_CONNS and DB_MAX_IDLE_CONNS must not be negative"))
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		result = multierror.Append(result, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Log.Format))
	}

	return result.ErrorOrNil()
}

// DSN returns the lib/pq connection string. It uses the URL form so empty
// values and values with spaces survive.
func (d DatabaseConfig) DSN() string {
	return d.connURL()
}

// MigrateURL returns the URL form golang-migrate expects.
func (d DatabaseConfig) MigrateURL() string {
	return d.connURL()
}

func (d DatabaseConfig) connURL() string {
	if d.URL != "" {
		return d.URL
	}
	user := url.User(d.User)
	if d.Password != "" {
		user = url.UserPassword(d.User, d.Password)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
