package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Load()
	require.NotNil(t, c)

	assert.Equal(t, "crediya-auth", c.AppName)
	assert.Equal(t, "development", c.Env)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, int32(10), c.DBMaxConns)
	assert.Equal(t, int32(2), c.DBMinConns)
	assert.Equal(t, time.Hour, c.DBMaxConnLife)
	assert.Equal(t, "localhost:6379", c.RedisAddr)
	assert.Equal(t, "db/migrations", c.MigrationsDir)
	assert.Equal(t, "emails", c.RabbitMQEmailQueue)
	assert.True(t, c.MailSendEnabled)
	assert.False(t, c.HTTPLogEnabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MAX_CONN_LIFETIME", "30m")
	t.Setenv("MAIL_SEND_ENABLED", "false")

	c := Load()
	assert.Equal(t, "db.internal", c.DBHost)
	assert.Equal(t, int32(25), c.DBMaxConns)
	assert.Equal(t, 30*time.Minute, c.DBMaxConnLife)
	assert.False(t, c.MailSendEnabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("MAIL_SEND_ENABLED", "yes please")
	t.Setenv("DB_MAX_CONN_LIFETIME", "soon")

	c := Load()
	assert.Equal(t, int32(10), c.DBMaxConns)
	assert.True(t, c.MailSendEnabled)
	assert.Equal(t, time.Hour, c.DBMaxConnLife)
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "crediya")
	t.Setenv("DB_SSLMODE", "require")

	c := Load()
	assert.Equal(t, "postgres://app:s3cret@db:5433/crediya?sslmode=require", c.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com , https://b.example.com ,")
	c := Load()
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, c.CORSOrigins())

	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	c = Load()
	assert.Empty(t, c.CORSOrigins())
}
