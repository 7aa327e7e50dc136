package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverMemory, cfg.DBDriver)
	assert.Equal(t, AuthDevelopment, cfg.AuthMode)
	assert.Equal(t, "mask", cfg.LookupErrors)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoad_InfersDriverAndAuthFromEnv(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://u:p@localhost/petclinic")
	t.Setenv("JWT_SIGNING_KEY", "secret")
	t.Setenv("ENV", "production")

	cfg, err := load("")
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, AuthJWT, cfg.AuthMode)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nLOOKUP_ERRORS=propagate\n"), 0o600))

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "propagate", cfg.LookupErrors)
}

func TestLoad_EnvFileMissingOrMalformed(t *testing.T) {
	dir := t.TempDir()

	cfg, err := load(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)

	path := filepath.Join(dir, "broken.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nthis line is not a pair\n"), 0o600))
	_, err = load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.env")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:          "development",
			DBDriver:     DriverMemory,
			AuthMode:     AuthDevelopment,
			LookupErrors: "mask",
			CacheSize:    4,
		}
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"postgres without dsn", func(c *Config) { c.DBDriver = DriverPostgres }},
		{"unknown driver", func(c *Config) { c.DBDriver = "oracle" }},
		{"dev auth outside dev", func(c *Config) { c.Env = "production" }},
		{"jwt without key", func(c *Config) { c.AuthMode = AuthJWT }},
		{"remote without url", func(c *Config) { c.AuthMode = AuthRemote }},
		{"bad lookup policy", func(c *Config) { c.LookupErrors = "ignore" }},
		{"zero cache", func(c *Config) { c.CacheSize = 0 }},
	}

	require.NoError(t, base().Validate())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
