package config_test

import (
	"testing"

	"github.com/fleetgate/fleetgate/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	c, err := config.New()
	require.NoError(t, err)

	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, "Fleet Gateway", c.GetAppName())
	require.Equal(t, "http://localhost:8080", c.GetAppURL())
	require.Equal(t, "https://auth.tesla.com/oauth2/v3/authorize", c.GetAuthURL())
	require.Equal(t, "https://auth.tesla.com/oauth2/v3/token", c.GetTokenURL())
	require.Equal(t, "https://fleet-api.prd.na.vn.cloud.tesla.com", c.GetFleetAPIURL())
	require.Equal(t, ".well-known/appspecific/com.tesla.3p.public-key.pem", c.GetPublicKeyPath())
}

func TestNewEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TESLA_CLIENT_ID", "client-123")
	t.Setenv("APP_URL", "https://example.ngrok.app")

	c, err := config.New()
	require.NoError(t, err)

	require.Equal(t, ":9090", c.GetPort())
	require.Equal(t, "client-123", c.GetClientID())
	require.Equal(t, "https://example.ngrok.app", c.GetAppURL())
}

func TestGetPortAlreadyPrefixed(t *testing.T) {
	t.Setenv("PORT", ":7070")

	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, ":7070", c.GetPort())
}
