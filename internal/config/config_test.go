package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "admin", cfg.AdminAccount)
	assert.Equal(t, "123456", cfg.AdminPIN)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.GeocoderTimeout)
	assert.Equal(t, 1.0, cfg.GeocoderRatePerSec)
}

func TestLoadConfig_MongoRequiresURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGO_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URL")
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_Lists(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,,")
	t.Setenv("ADMIN_API_KEYS", " key1 ,key2")
	t.Setenv("GEOCODER_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"key1", "key2"}, cfg.AdminAPIKeys)
	assert.Equal(t, 3*time.Second, cfg.GeocoderTimeout)
}
