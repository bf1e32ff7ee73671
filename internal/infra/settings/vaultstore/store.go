package vaultstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fpdemo/internal/infra/settings"
)

// Store keeps secure settings (the API keys config) in Vault KV v2, the
// demo's stand-in for the mobile keychain. A 404 maps to ErrValueNotFound so
// "absent" stays distinguishable from a store failure.
type Store struct {
	addr       string
	token      string
	mountPath  string
	httpClient *http.Client
}

func New(addr, token, mountPath string) (*Store, error) {
	if addr == "" || token == "" {
		return nil, errors.New("vaultstore: addr and token are required")
	}
	if mountPath == "" {
		mountPath = "secret/data/fpdemo"
	}
	return &Store{
		addr:       strings.TrimRight(addr, "/"),
		token:      token,
		mountPath:  strings.Trim(mountPath, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (s *Store) url(key string) string {
	return s.addr + "/v1/" + s.mountPath + "/" + key
}

func (s *Store) WriteData(ctx context.Context, key string, data []byte) error {
	payload, err := json.Marshal(map[string]any{
		"data": map[string]string{"value": string(data)},
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.url(key), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("X-Vault-Token", s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("vaultstore: write failed: status %d", resp.StatusCode)
	}
	return nil
}

func (s *Store) ReadData(ctx context.Context, key string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url(key), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Vault-Token", s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, settings.ErrValueNotFound
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vaultstore: read failed: status %d", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			Data struct {
				Value string `json:"value"`
			} `json:"data"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data.Data.Value == "" {
		return nil, settings.ErrValueNotFound
	}
	return []byte(envelope.Data.Data.Value), nil
}

func (s *Store) RemoveData(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.url(key), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Vault-Token", s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("vaultstore: delete failed: status %d", resp.StatusCode)
	}
	return nil
}

func (s *Store) ContainsData(ctx context.Context, key string) bool {
	_, err := s.ReadData(ctx, key)
	return err == nil
}

var _ settings.BackingStore = (*Store)(nil)
