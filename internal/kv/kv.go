// Package kv is the string-keyed JSON-valued persistence port behind the
// prayer cache, active method, saved location, and Qur'an bookmark.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a typed get/set/delete surface over string keys. Implementations
// are a Redis client in production and an in-memory map in tests.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// GetJSON reads key and unmarshals its value into dest. A missing key
// surfaces as ErrNotFound; a corrupt value is deleted and also reported as
// ErrNotFound so callers treat it as a plain miss.
func GetJSON(ctx context.Context, s Store, key string, dest any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		_ = s.Delete(ctx, key)
		return ErrNotFound
	}
	return nil
}

// SetJSON marshals value and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv: marshal %s: %w", key, err)
	}
	return s.Set(ctx, key, string(raw))
}
