package main

import (
	"log"

	"fpdemo/internal/config"
	"fpdemo/internal/infra/fpapi"
	httpinfra "fpdemo/internal/infra/http"
	"fpdemo/internal/infra/settings"
	"fpdemo/internal/infra/settings/filestore"
	"fpdemo/internal/infra/settings/gormstore"
	"fpdemo/internal/infra/settings/memstore"
	"fpdemo/internal/infra/settings/redisstore"
	"fpdemo/internal/infra/settings/vaultstore"
	"fpdemo/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.FromEnv()

	container, err := buildSettings(cfg)
	if err != nil {
		log.Fatalf("failed to init settings: %v", err)
	}

	transport := fpapi.NewTransport(cfg.HTTPTimeout())
	resolver := fpapi.NewEndpointResolver(cfg.SmartSignalsBaseURL, cfg.SmartSignalsOrigin)
	signals := fpapi.NewSignalsClient(transport, resolver, container)

	var identification usecase.IdentificationClient
	if cfg.OfflineMode || cfg.PublicAPIKey == "" {
		log.Printf("no public API key configured; using the offline identification stub")
		identification = fpapi.NewStubIdentificationClient()
	} else {
		identification = fpapi.NewIdentificationClient(transport, fpapi.IdentificationConfig{
			PublicKey:               cfg.PublicAPIKey,
			Region:                  cfg.IdentificationRegion(),
			ExtendedResponseFormat:  cfg.ExtendedResponseFormat,
			AllowLocationCollection: cfg.LocationPermission,
		})
	}

	fingerprint := usecase.NewDeviceFingerprint(identification, signals, container)

	srv := httpinfra.NewServer(cfg, fingerprint, container)
	log.Printf("fpdemo listening on %s", cfg.HTTPAddr)
	if err := srv.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// buildSettings picks backing stores from the configured backends: Vault for
// the secure store when available, Postgres or Redis for the general store,
// with a JSON file fallback serving both roles for standalone runs.
func buildSettings(cfg config.Config) (*settings.Container, error) {
	var general settings.BackingStore
	switch {
	case cfg.PostgresDSN != "":
		store, err := gormstore.New(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		general = store
	case cfg.RedisAddr != "":
		store, err := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		general = store
	case cfg.SettingsFile != "":
		store, err := filestore.New(cfg.SettingsFile)
		if err != nil {
			return nil, err
		}
		general = store
	default:
		general = memstore.New()
	}

	var secure settings.BackingStore
	if cfg.VaultAddr != "" && cfg.VaultToken != "" {
		store, err := vaultstore.New(cfg.VaultAddr, cfg.VaultToken, cfg.VaultSecretsPath)
		if err != nil {
			return nil, err
		}
		secure = store
	} else {
		// Without a secrets backend, credentials land in the same local
		// store as everything else.
		secure = general
	}

	return settings.NewContainer(secure, general), nil
}
