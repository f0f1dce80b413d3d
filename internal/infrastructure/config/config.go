package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/artsoul-app/artsoul/internal/shared/config"
)

// DefaultJWTSecret is the placeholder signing key used when none is configured.
const DefaultJWTSecret = "change-me-in-production"

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	OAuth     sharedConfig.OAuthConfig     `mapstructure:"oauth"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Catalog   sharedConfig.CatalogConfig   `mapstructure:"catalog"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"rate_limit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// legacyEnv maps config keys to the unprefixed variable names older
// deployments set. The ARTSOUL_ prefixed name always wins.
var legacyEnv = map[string]string{
	"server.port":                   "PORT",
	"server.frontend_url":           "FRONTEND_URL",
	"server.allowed_origins":        "ALLOWED_ORIGINS",
	"auth.jwt.secret":               "JWT_SECRET",
	"database.dsn":                  "DB_URI",
	"oauth.google.client_id":        "GOOGLE_CLIENT_ID",
	"oauth.google.client_secret":    "GOOGLE_CLIENT_SECRET",
	"oauth.google.redirect_url":     "CALLBACK_URL",
	"email.smtp_user":               "EMAIL_USER",
	"email.smtp_password":           "EMAIL_PASS",
	"catalog.igdb.client_id":        "IGDB_CLIENT_ID",
	"catalog.igdb.client_secret":    "IGDB_CLIENT_SECRET",
	"catalog.spotify.client_id":     "SPOTIFY_CLIENT_ID",
	"catalog.spotify.client_secret": "SPOTIFY_CLIENT_SECRET",
}

// Load reads configs/config.yaml when present, then the environment.
// A missing config file is not an error; every key has a default.
func Load(env string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("ARTSOUL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Server.AllowedOrigins = splitList(config.Server.AllowedOrigins)
	config.OAuth.AllowedRedirects = splitList(config.OAuth.AllowedRedirects)

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// InsecureJWTSecret reports whether credentials would be signed with the
// placeholder key outside debug mode.
func (c *Config) InsecureJWTSecret() bool {
	return c.Auth.JWT.Secret == DefaultJWTSecret && c.Server.Mode != "debug"
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func bindLegacyEnv(v *viper.Viper) error {
	for key, legacy := range legacyEnv {
		prefixed := "ARTSOUL_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return fmt.Errorf("failed to bind %s: %w", legacy, err)
		}
	}
	return nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:3000")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.frontend_url", "")

	// Database defaults
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "artsoul_dev")
	v.SetDefault("database.sqlite_path", "artsoul.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.transactions", true)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.source_for_all", false)

	// Auth defaults
	v.SetDefault("auth.password.bcrypt_cost", 10)
	v.SetDefault("auth.jwt.secret", DefaultJWTSecret)
	v.SetDefault("auth.jwt.exp_days", 365)
	v.SetDefault("auth.reset_expires_minutes", 30)

	// OAuth defaults (empty by default, must be configured)
	v.SetDefault("oauth.google.client_id", "")
	v.SetDefault("oauth.google.client_secret", "")
	v.SetDefault("oauth.google.redirect_url", "http://localhost:3000/identity/google/callback")
	v.SetDefault("oauth.allowed_redirects", []string{})
	v.SetDefault("oauth.deliver_session_code", false)
	v.SetDefault("oauth.timeout_seconds", 10)

	// Email defaults
	v.SetDefault("email.smtp_host", "smtp.gmail.com")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@artsoul.app")
	v.SetDefault("email.from_name", "ArtSoul")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Catalog upstream defaults
	v.SetDefault("catalog.igdb.client_id", "")
	v.SetDefault("catalog.igdb.client_secret", "")
	v.SetDefault("catalog.igdb.token_url", "https://id.twitch.tv/oauth2/token")
	v.SetDefault("catalog.igdb.base_url", "https://api.igdb.com/v4")
	v.SetDefault("catalog.spotify.client_id", "")
	v.SetDefault("catalog.spotify.client_secret", "")
	v.SetDefault("catalog.spotify.token_url", "https://accounts.spotify.com/api/token")
	v.SetDefault("catalog.spotify.base_url", "https://api.spotify.com/v1")
	v.SetDefault("catalog.timeout_seconds", 10)

	// Rate limit defaults
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 20)
	v.SetDefault("rate_limit.window_seconds", 60)
}
