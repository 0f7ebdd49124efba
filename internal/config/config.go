package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config interface {
	EnvConfig
	OAuthConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetPublicKeyPath() string
	GetStaticDir() string
}

type OAuthConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetAppURL() string
	GetAuthURL() string
	GetTokenURL() string
	GetFleetAPIURL() string
}

func New() (Config, error) {
	var vars EnvVars
	if err := env.Parse(&vars); err != nil {
		return nil, fmt.Errorf("config.New: %w", err)
	}
	return vars, nil
}
