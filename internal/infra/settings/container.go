package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Key is a persisted setting identifier. Raw values match the original demo
// so existing installs keep their state.
type Key string

const (
	KeyAPIKeys             Key = "settings.requests.api_keys"
	KeyAPIKeysEnabled      Key = "settings.requests.api_keys.enabled"
	KeyFingerprintCount    Key = "settings.actions.fingerprint.count"
	KeyHideSignUpTimestamp Key = "settings.actions.hide_sign_up.timestamp"
)

func allKeys() []Key {
	return []Key{KeyAPIKeys, KeyAPIKeysEnabled, KeyFingerprintCount, KeyHideSignUpTimestamp}
}

// ErrValueNotFound distinguishes "value absent" from a store failure.
var ErrValueNotFound = errors.New("settings: value not found")

// BackingStore is a raw key-value storage capability. Implementations must
// return ErrValueNotFound (possibly wrapped) for absent keys.
type BackingStore interface {
	WriteData(ctx context.Context, key string, data []byte) error
	ReadData(ctx context.Context, key string) ([]byte, error)
	RemoveData(ctx context.Context, key string) error
	ContainsData(ctx context.Context, key string) bool
}

// Container stores typed settings over two backing stores: credentials go to
// the secure store, everything else to the general store.
type Container struct {
	secure  BackingStore
	general BackingStore
}

func NewContainer(secure, general BackingStore) *Container {
	return &Container{secure: secure, general: general}
}

func (c *Container) storeForKey(key Key) BackingStore {
	if key == KeyAPIKeys {
		return c.secure
	}
	return c.general
}

func (c *Container) StoreValue(ctx context.Context, key Key, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}
	return c.storeForKey(key).WriteData(ctx, string(key), data)
}

func (c *Container) LoadValue(ctx context.Context, key Key, out any) error {
	data, err := c.storeForKey(key).ReadData(ctx, string(key))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode setting %s: %w", key, err)
	}
	return nil
}

func (c *Container) RemoveValue(ctx context.Context, key Key) error {
	return c.storeForKey(key).RemoveData(ctx, string(key))
}

func (c *Container) ContainsValue(ctx context.Context, key Key) bool {
	return c.storeForKey(key).ContainsData(ctx, string(key))
}

// Clear removes every known setting from both stores.
func (c *Container) Clear(ctx context.Context) error {
	var firstErr error
	for _, key := range allKeys() {
		if err := c.RemoveValue(ctx, key); err != nil && !errors.Is(err, ErrValueNotFound) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
