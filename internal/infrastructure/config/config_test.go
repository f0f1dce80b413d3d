package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Auth.Password.BcryptCost)
	assert.Equal(t, 365, cfg.Auth.JWT.ExpDays)
	assert.True(t, cfg.Database.Transactions)
	assert.False(t, cfg.OAuth.Google.Enabled())
	assert.Same(t, cfg, Get())
}

func TestLoadLegacyEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "legacy-secret")
	t.Setenv("PORT", "8081")
	t.Setenv("GOOGLE_CLIENT_ID", "client")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "legacy-secret", cfg.Auth.JWT.Secret)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.True(t, cfg.OAuth.Google.Enabled())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestPrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Setenv("JWT_SECRET", "legacy-secret")
	t.Setenv("ARTSOUL_AUTH_JWT_SECRET", "prefixed-secret")

	cfg, err := Load("production")
	require.NoError(t, err)

	assert.Equal(t, "prefixed-secret", cfg.Auth.JWT.Secret)
	assert.True(t, cfg.Server.IsProduction())
}

func TestInsecureJWTSecret(t *testing.T) {
	cfg, err := Load("release")
	require.NoError(t, err)
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWT.Secret)
	assert.True(t, cfg.InsecureJWTSecret())

	cfg, err = Load("debug")
	require.NoError(t, err)
	assert.False(t, cfg.InsecureJWTSecret())

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err = Load("release")
	require.NoError(t, err)
	assert.False(t, cfg.InsecureJWTSecret())
}
