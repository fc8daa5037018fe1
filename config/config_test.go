package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DEV_DB_USER", "travel")
	t.Setenv("DEV_DB_NAME", "travel")
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8083", cfg.Port)
	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.Contains(t, cfg.DatabaseURL, "user=travel")
	assert.Contains(t, cfg.DatabaseURL, "sslmode=disable")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadPrefersDatabaseURL(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/travel")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/travel", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoadRejectsUnknownEnv(t *testing.T) {
	t.Setenv("ENV", "staging")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadBcryptCost(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("BCRYPT_COST", "high")

	_, err := Load()
	assert.Error(t, err)
}
