package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/brewery/internal/config"
)

type testConfig struct {
	Log   config.Log
	HTTP  config.HTTP
	Store config.Store
	Mongo config.Mongo
	Seed  config.Seed
	Auth  config.Auth
}

func TestNew(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		cfg, err := config.New[testConfig](filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
		assert.Equal(t, uint32(8080), cfg.HTTP.Port)
		assert.Equal(t, []string{"https://*", "http://*"}, cfg.HTTP.CorsAllowedOrigins)
		assert.Equal(t, config.StoreDriverMongo, cfg.Store.Driver)
		assert.Equal(t, 30*time.Second, cfg.Mongo.Timeout)
		assert.True(t, cfg.Seed.Enabled)
		assert.False(t, cfg.Auth.Enabled())
	})

	t.Run("Should read env file and environment", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("STORE_DRIVER=memory\nLOG_FORMAT=text\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("STORE_DRIVER")
			os.Unsetenv("LOG_FORMAT")
		})
		t.Setenv("HTTP_PORT", "9090")

		cfg, err := config.New[testConfig](envFile)
		require.NoError(t, err)

		assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
		assert.Equal(t, config.LogFormatText, cfg.Log.Format)
		assert.Equal(t, uint32(9090), cfg.HTTP.Port)
	})

	t.Run("Should reject unknown store driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "cassandra")

		_, err := config.New[testConfig](filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}

func TestEnumSettings(t *testing.T) {
	tests := []struct {
		text    string
		want    config.StoreDriver
		wantErr bool
	}{
		{text: "mongo", want: config.StoreDriverMongo},
		{text: "MongoDB", want: config.StoreDriverMongo},
		{text: "postgresql", want: config.StoreDriverPostgres},
		{text: " memory ", want: config.StoreDriverMemory},
		{text: "redis", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var d config.StoreDriver
			err := d.UnmarshalText([]byte(tt.text))
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown store driver")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}

	var f config.LogFormat
	require.NoError(t, f.UnmarshalText([]byte("text")))
	assert.Equal(t, config.LogFormatText, f)
	assert.Error(t, f.UnmarshalText([]byte("yaml")))
}
