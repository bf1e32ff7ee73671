package settings

import (
	"context"
	"errors"
	"log"

	"fpdemo/internal/domain"
)

// Typed accessors. Counter and timestamp reads treat an absent value as the
// zero state so a fresh install behaves like "never used".

func (c *Container) APIKeysEnabled(ctx context.Context) (bool, error) {
	var enabled bool
	if err := c.LoadValue(ctx, KeyAPIKeysEnabled, &enabled); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return false, nil
		}
		return false, err
	}
	return enabled, nil
}

func (c *Container) SetAPIKeysEnabled(ctx context.Context, enabled bool) error {
	return c.StoreValue(ctx, KeyAPIKeysEnabled, enabled)
}

func (c *Container) APIKeysConfig(ctx context.Context) (domain.ApiKeysConfig, error) {
	var cfg domain.ApiKeysConfig
	if err := c.LoadValue(ctx, KeyAPIKeys, &cfg); err != nil {
		return domain.ApiKeysConfig{}, err
	}
	return cfg, nil
}

func (c *Container) SetAPIKeysConfig(ctx context.Context, cfg domain.ApiKeysConfig) error {
	return c.StoreValue(ctx, KeyAPIKeys, cfg)
}

func (c *Container) RemoveAPIKeysConfig(ctx context.Context) error {
	return c.RemoveValue(ctx, KeyAPIKeys)
}

func (c *Container) FingerprintCount(ctx context.Context) (int, error) {
	var count int
	if err := c.LoadValue(ctx, KeyFingerprintCount, &count); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

func (c *Container) SetFingerprintCount(ctx context.Context, count int) error {
	return c.StoreValue(ctx, KeyFingerprintCount, count)
}

func (c *Container) HideSignUpTimestamp(ctx context.Context) (float64, error) {
	var ts float64
	if err := c.LoadValue(ctx, KeyHideSignUpTimestamp, &ts); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return ts, nil
}

func (c *Container) SetHideSignUpTimestamp(ctx context.Context, ts float64) error {
	return c.StoreValue(ctx, KeyHideSignUpTimestamp, ts)
}

// ActiveAPIKeys reports the user credentials when the override is enabled and
// a config is stored. A store failure is logged and treated as "no override"
// so the demo endpoints remain usable.
func (c *Container) ActiveAPIKeys(ctx context.Context) (domain.ApiKeysConfig, bool) {
	enabled, err := c.APIKeysEnabled(ctx)
	if err != nil {
		log.Printf("settings: read api keys enabled flag: %v", err)
		return domain.ApiKeysConfig{}, false
	}
	if !enabled {
		return domain.ApiKeysConfig{}, false
	}
	cfg, err := c.APIKeysConfig(ctx)
	if err != nil {
		if !errors.Is(err, ErrValueNotFound) {
			log.Printf("settings: read api keys config: %v", err)
		}
		return domain.ApiKeysConfig{}, false
	}
	return cfg, true
}
