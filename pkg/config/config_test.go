package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 20*1024*1024, cfg.HTTP.BodyLimit())
	assert.Nil(t, cfg.Ingest.ExcludedStores, "nil usa la lista negra por defecto")
	assert.True(t, cfg.Ingest.RejectOnErrors)
	assert.Equal(t, 10, cfg.Ingest.MaxReportedErrors)
	assert.Equal(t, []string{"admin", "analyst"}, cfg.Ingest.UploaderRoles)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("INGEST_EXCLUDED_STORES", "COMODIN, OUTLET ,,")
	t.Setenv("INGEST_REJECT_ON_ERRORS", "false")
	t.Setenv("INGEST_MAX_REPORTED_ERRORS", "25")
	t.Setenv("INGEST_UPLOADER_ROLES", "admin")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, []string{"COMODIN", "OUTLET"}, cfg.Ingest.ExcludedStores)
	assert.False(t, cfg.Ingest.RejectOnErrors)
	assert.Equal(t, 25, cfg.Ingest.MaxReportedErrors)
	assert.Equal(t, []string{"admin"}, cfg.Ingest.UploaderRoles)
}

func TestLoad_ListaVaciaDesactivaExclusiones(t *testing.T) {
	v := viper.New()
	v.Set("INGEST_EXCLUDED_STORES", "")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.NotNil(t, cfg.Ingest.ExcludedStores)
	assert.Empty(t, cfg.Ingest.ExcludedStores)
}

func TestLoad_BodyLimitInvalido(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_BODY_LIMIT_MB", "0")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss:word", DBName: "retail", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%3Aword@db:5432/retail?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
