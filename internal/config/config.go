package config

import (
	"os"
	"strconv"
	"time"

	"fpdemo/internal/domain"
)

// Config is built once at startup and passed into constructors; there are no
// global lookups.
type Config struct {
	HTTPAddr string

	PublicAPIKey           string
	Region                 string
	RegionDomain           string
	ExtendedResponseFormat bool
	LocationPermission     bool
	OfflineMode            bool

	SmartSignalsBaseURL string
	SmartSignalsOrigin  string

	HTTPTimeoutSeconds int

	SettingsFile string
	PostgresDSN  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	VaultAddr        string
	VaultToken       string
	VaultSecretsPath string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:               addr,
		PublicAPIKey:           os.Getenv("PUBLIC_API_KEY"),
		Region:                 envDefault("REGION", "global"),
		RegionDomain:           os.Getenv("REGION_DOMAIN"),
		ExtendedResponseFormat: envBoolDefault("EXTENDED_RESPONSE_FORMAT", true),
		LocationPermission:     envBoolDefault("LOCATION_PERMISSION", false),
		OfflineMode:            envBoolDefault("OFFLINE_MODE", false),
		SmartSignalsBaseURL:    os.Getenv("SMART_SIGNALS_BASE_URL"),
		SmartSignalsOrigin:     os.Getenv("SMART_SIGNALS_ORIGIN"),
		HTTPTimeoutSeconds:     envIntDefault("HTTP_TIMEOUT_SECONDS", 10),
		SettingsFile:           envDefault("SETTINGS_FILE", "fpdemo-settings.json"),
		PostgresDSN:            os.Getenv("POSTGRES_DSN"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                envIntDefault("REDIS_DB", 0),
		VaultAddr:              os.Getenv("VAULT_ADDR"),
		VaultToken:             os.Getenv("VAULT_TOKEN"),
		VaultSecretsPath:       envDefault("VAULT_SECRETS_PATH", "secret/data/fpdemo"),
	}
}

// IdentificationRegion resolves the configured default region used when no
// user credentials override it.
func (c Config) IdentificationRegion() domain.Region {
	switch c.Region {
	case "eu":
		return domain.EURegion()
	case "ap":
		return domain.APRegion()
	case "custom":
		return domain.CustomRegion(c.RegionDomain)
	default:
		return domain.GlobalRegion()
	}
}

func (c Config) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

func envDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func envBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "Yes":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "No":
		return false
	default:
		return def
	}
}
