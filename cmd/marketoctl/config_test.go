package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing required variables", func(t *testing.T) {
		t.Setenv("MARKETO_IDENTITY_URL", "")
		t.Setenv("MARKETO_CLIENT_ID", "")
		t.Setenv("MARKETO_CLIENT_SECRET", "secret")

		_, err := LoadConfig()
		require.Error(t, err)
		require.Contains(t, err.Error(), "MARKETO_IDENTITY_URL")
		require.Contains(t, err.Error(), "MARKETO_CLIENT_ID")
		require.NotContains(t, err.Error(), "MARKETO_CLIENT_SECRET")
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Setenv("MARKETO_IDENTITY_URL", "https://123-abc-456.mktorest.example.com")
		t.Setenv("MARKETO_CLIENT_ID", "id")
		t.Setenv("MARKETO_CLIENT_SECRET", "secret")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, "json", cfg.LogFormat)
		require.Empty(t, cfg.RestURL)
	})

	t.Run("overrides respected", func(t *testing.T) {
		t.Setenv("MARKETO_IDENTITY_URL", "https://identity.example.com")
		t.Setenv("MARKETO_CLIENT_ID", "id")
		t.Setenv("MARKETO_CLIENT_SECRET", "secret")
		t.Setenv("MARKETO_REST_URL", "https://rest.example.com")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "https://rest.example.com", cfg.RestURL)
		require.Equal(t, "debug", cfg.LogLevel)
	})
}
