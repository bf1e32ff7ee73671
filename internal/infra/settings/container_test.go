package settings_test

import (
	"context"
	"testing"

	"fpdemo/internal/domain"
	"fpdemo/internal/infra/settings"
	"fpdemo/internal/infra/settings/memstore"
)

func newContainer() (*settings.Container, *memstore.Store, *memstore.Store) {
	secure := memstore.New()
	general := memstore.New()
	return settings.NewContainer(secure, general), secure, general
}

func TestContainer_CredentialsGoToSecureStore(t *testing.T) {
	ctx := context.Background()
	container, secure, general := newContainer()

	cfg := domain.ApiKeysConfig{
		PublicKey: "pk",
		SecretKey: "sk",
		Region:    domain.EURegion(),
	}
	if err := container.SetAPIKeysConfig(ctx, cfg); err != nil {
		t.Fatalf("store config: %v", err)
	}
	if err := container.SetAPIKeysEnabled(ctx, true); err != nil {
		t.Fatalf("store flag: %v", err)
	}

	if !secure.ContainsData(ctx, string(settings.KeyAPIKeys)) {
		t.Fatalf("credentials missing from the secure store")
	}
	if general.ContainsData(ctx, string(settings.KeyAPIKeys)) {
		t.Fatalf("credentials leaked into the general store")
	}
	if !general.ContainsData(ctx, string(settings.KeyAPIKeysEnabled)) {
		t.Fatalf("enabled flag missing from the general store")
	}

	loaded, err := container.APIKeysConfig(ctx)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if loaded.SecretKey != "sk" || loaded.Region.Kind != domain.RegionEU {
		t.Fatalf("round trip lost data: %+v", loaded)
	}
}

func TestContainer_AbsentValuesReadAsZero(t *testing.T) {
	ctx := context.Background()
	container, _, _ := newContainer()

	count, err := container.FingerprintCount(ctx)
	if err != nil || count != 0 {
		t.Fatalf("expected count 0 on fresh store, got %d, %v", count, err)
	}
	ts, err := container.HideSignUpTimestamp(ctx)
	if err != nil || ts != 0 {
		t.Fatalf("expected timestamp 0 on fresh store, got %f, %v", ts, err)
	}
	enabled, err := container.APIKeysEnabled(ctx)
	if err != nil || enabled {
		t.Fatalf("expected flag false on fresh store, got %v, %v", enabled, err)
	}
}

func TestContainer_ActiveAPIKeys(t *testing.T) {
	ctx := context.Background()
	cfg := domain.ApiKeysConfig{PublicKey: "pk", SecretKey: "sk", Region: domain.GlobalRegion()}

	t.Run("disabled flag hides stored credentials", func(t *testing.T) {
		container, _, _ := newContainer()
		if err := container.SetAPIKeysConfig(ctx, cfg); err != nil {
			t.Fatalf("store config: %v", err)
		}
		if _, ok := container.ActiveAPIKeys(ctx); ok {
			t.Fatalf("expected inactive while flag is off")
		}
	})

	t.Run("enabled flag without config stays inactive", func(t *testing.T) {
		container, _, _ := newContainer()
		if err := container.SetAPIKeysEnabled(ctx, true); err != nil {
			t.Fatalf("store flag: %v", err)
		}
		if _, ok := container.ActiveAPIKeys(ctx); ok {
			t.Fatalf("expected inactive without a stored config")
		}
	})

	t.Run("enabled flag with config is active", func(t *testing.T) {
		container, _, _ := newContainer()
		if err := container.SetAPIKeysConfig(ctx, cfg); err != nil {
			t.Fatalf("store config: %v", err)
		}
		if err := container.SetAPIKeysEnabled(ctx, true); err != nil {
			t.Fatalf("store flag: %v", err)
		}
		active, ok := container.ActiveAPIKeys(ctx)
		if !ok {
			t.Fatalf("expected active credentials")
		}
		if active.SecretKey != "sk" {
			t.Fatalf("unexpected credentials %+v", active)
		}
	})
}

func TestContainer_Clear(t *testing.T) {
	ctx := context.Background()
	container, _, _ := newContainer()

	if err := container.SetFingerprintCount(ctx, 4); err != nil {
		t.Fatalf("store count: %v", err)
	}
	if err := container.SetAPIKeysConfig(ctx, domain.ApiKeysConfig{PublicKey: "pk"}); err != nil {
		t.Fatalf("store config: %v", err)
	}

	if err := container.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if container.ContainsValue(ctx, settings.KeyFingerprintCount) {
		t.Fatalf("counter survived clear")
	}
	if container.ContainsValue(ctx, settings.KeyAPIKeys) {
		t.Fatalf("credentials survived clear")
	}
}
