package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Port)
	assert.Equal(t, "http://192.168.18.18:5000", cfg.MatchServiceURL)
	assert.Equal(t, 10*time.Second, cfg.MatchServiceTimeout)
	assert.Equal(t, "findit", cfg.MongoDatabase)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.False(t, cfg.PhotoStoreEnabled())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MATCH_SERVICE_URL", "http://matcher:5000/")
	t.Setenv("MATCH_SERVICE_TIMEOUT", "3s")
	t.Setenv("PHOTO_STORE_ENDPOINT", "localhost:9000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "http://matcher:5000", cfg.MatchServiceURL)
	assert.Equal(t, 3*time.Second, cfg.MatchServiceTimeout)
	assert.True(t, cfg.PhotoStoreEnabled())
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MONGODB_DATABASE=findit_test\nJWT_SECRET=from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "findit_test", cfg.MongoDatabase)
	assert.Equal(t, "from-file", cfg.JWTSecret)
}
