package config

import "fmt"

// EnvVars holds all environment-driven settings. Defaults match the
// single-process development deployment (app reachable on localhost:8080,
// Tesla production endpoints).
type EnvVars struct {
	Port          string `env:"PORT" envDefault:"8080"`
	AppName       string `env:"APP_NAME" envDefault:"Fleet Gateway"`
	Env           string `env:"ENV" envDefault:"DEV"`
	ClientID      string `env:"TESLA_CLIENT_ID"`
	ClientSecret  string `env:"TESLA_CLIENT_SECRET"`
	AppURL        string `env:"APP_URL" envDefault:"http://localhost:8080"`
	AuthURL       string `env:"TESLA_AUTH_URL" envDefault:"https://auth.tesla.com/oauth2/v3/authorize"`
	TokenURL      string `env:"TESLA_TOKEN_URL" envDefault:"https://auth.tesla.com/oauth2/v3/token"`
	FleetAPIURL   string `env:"TESLA_FLEET_API" envDefault:"https://fleet-api.prd.na.vn.cloud.tesla.com"`
	PublicKeyPath string `env:"PUBLIC_KEY_PATH" envDefault:".well-known/appspecific/com.tesla.3p.public-key.pem"`
	StaticDir     string `env:"STATIC_DIR" envDefault:"dist/client"`
}

var _ Config = EnvVars{}

func (e EnvVars) GetPort() string {
	port := e.Port
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	return e.Env
}

func (e EnvVars) GetPublicKeyPath() string {
	return e.PublicKeyPath
}

func (e EnvVars) GetStaticDir() string {
	return e.StaticDir
}

func (e EnvVars) GetClientID() string {
	return e.ClientID
}

func (e EnvVars) GetClientSecret() string {
	return e.ClientSecret
}

// GetAppURL returns the externally reachable base URL of this service.
// The OAuth redirect URI is always derived from it, never from an
// incoming Host header.
func (e EnvVars) GetAppURL() string {
	return e.AppURL
}

func (e EnvVars) GetAuthURL() string {
	return e.AuthURL
}

func (e EnvVars) GetTokenURL() string {
	return e.TokenURL
}

func (e EnvVars) GetFleetAPIURL() string {
	return e.FleetAPIURL
}
