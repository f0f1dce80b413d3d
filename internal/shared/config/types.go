package config

import (
	"fmt"
	"strings"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	FrontendURL    string   `mapstructure:"frontend_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether internal error details must be hidden from clients.
func (s *ServerConfig) IsProduction() bool {
	return s.Mode == "release" || s.Mode == "production"
}

// Origins returns the configured CORS origins plus the frontend URL.
func (s *ServerConfig) Origins() []string {
	origins := make([]string, 0, len(s.AllowedOrigins)+1)
	for _, o := range s.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if s.FrontendURL != "" {
		origins = append(origins, strings.TrimRight(s.FrontendURL, "/"))
	}
	return origins
}

type DatabaseConfig struct {
	// Driver is "mysql" or "sqlite".
	Driver          string `mapstructure:"driver"`
	DSN             string `mapstructure:"dsn"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	// Transactions toggles multi-statement units of work. Some deployments
	// (replica-less proxies, statement-based poolers) cannot hold them open.
	Transactions bool `mapstructure:"transactions"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	if d.Driver == "sqlite" {
		return d.SQLitePath
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	// SourceForAll attaches caller location to every level instead of warn and error only.
	SourceForAll bool `mapstructure:"source_for_all"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret  string `mapstructure:"secret"`
	ExpDays int    `mapstructure:"exp_days"`
}

type AuthConfig struct {
	Password            PasswordConfig `mapstructure:"password"`
	JWT                 JWTConfig      `mapstructure:"jwt"`
	ResetExpiresMinutes int            `mapstructure:"reset_expires_minutes"`
}

type GoogleOAuthConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

func (g *GoogleOAuthConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

type OAuthConfig struct {
	Google GoogleOAuthConfig `mapstructure:"google"`
	// AllowedRedirects restricts return addresses by scheme, host and path prefix. Empty allows any.
	AllowedRedirects []string `mapstructure:"allowed_redirects"`
	// DeliverSessionCode hands out a one-time code instead of the credential on redirects.
	DeliverSessionCode bool `mapstructure:"deliver_session_code"`
	TimeoutSeconds     int  `mapstructure:"timeout_seconds"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.SMTPUser != "" && e.SMTPPassword != ""
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type UpstreamClientConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	TokenURL     string `mapstructure:"token_url"`
	BaseURL      string `mapstructure:"base_url"`
}

func (u *UpstreamClientConfig) Enabled() bool {
	return u.ClientID != "" && u.ClientSecret != ""
}

type CatalogConfig struct {
	IGDB           UpstreamClientConfig `mapstructure:"igdb"`
	Spotify        UpstreamClientConfig `mapstructure:"spotify"`
	TimeoutSeconds int                  `mapstructure:"timeout_seconds"`
}

type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Requests      int  `mapstructure:"requests"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}
