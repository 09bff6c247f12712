// Package prayer serves a same-day cached prayer-time set per account, or
// fetches a fresh one from the Al Adhan API.
package prayer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alfarizi/ramadhan-companion/internal/aladhan"
	"github.com/alfarizi/ramadhan-companion/internal/kv"
	"github.com/alfarizi/ramadhan-companion/internal/model"
	"github.com/alfarizi/ramadhan-companion/internal/ramadhan"
)

// CacheEnvelope wraps a day's timings with everything the validity check
// needs: the date they were fetched for, the coordinate, and the method.
type CacheEnvelope struct {
	Date      string        `json:"date"` // YYYY-MM-DD
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Method    int           `json:"method"`
	Timings   model.Timings `json:"timings"`
}

// Service owns the prayer-times cache and the active calculation method.
// The clock is injectable so tests can cross midnight.
type Service struct {
	kv     kv.Store
	client *aladhan.Client
	now    func() time.Time
}

func NewService(store kv.Store, client *aladhan.Client) *Service {
	return &Service{kv: store, client: client, now: time.Now}
}

// WithClock overrides the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func cacheKey(accountID int) string  { return fmt.Sprintf("prayer:cache:%d", accountID) }
func methodKey(accountID int) string { return fmt.Sprintf("prayer:method:%d", accountID) }

// Fetch returns today's timings for the coordinate under the account's
// active method. A valid cache entry is served without touching the network;
// anything else is evicted and refetched once, with no retry.
func (s *Service) Fetch(ctx context.Context, accountID int, lat, lng float64) (model.Timings, bool, error) {
	method := s.Method(ctx, accountID)
	today := ramadhan.DateKey(s.now())

	var env CacheEnvelope
	err := kv.GetJSON(ctx, s.kv, cacheKey(accountID), &env)
	if err == nil {
		if s.valid(env, today, lat, lng, method) {
			return env.Timings, true, nil
		}
		// Stale, mismatched, or incomplete: evict before refetching.
		if derr := s.kv.Delete(ctx, cacheKey(accountID)); derr != nil {
			log.Warn().Err(derr).Int("account", accountID).Msg("failed to evict prayer cache")
		}
	} else if !errors.Is(err, kv.ErrNotFound) {
		return nil, false, err
	}

	timings, err := s.client.Timings(ctx, s.now(), lat, lng, method)
	if err != nil {
		return nil, false, err
	}

	env = CacheEnvelope{
		Date:      today,
		Latitude:  lat,
		Longitude: lng,
		Method:    method,
		Timings:   timings,
	}
	if err := kv.SetJSON(ctx, s.kv, cacheKey(accountID), env); err != nil {
		log.Warn().Err(err).Int("account", accountID).Msg("failed to persist prayer cache")
	}

	return timings, false, nil
}

// valid is the cache validity predicate: same day, same coordinate, same
// method, and all five mandatory timing keys present.
func (s *Service) valid(env CacheEnvelope, today string, lat, lng float64, method int) bool {
	if env.Date != today || env.Latitude != lat || env.Longitude != lng || env.Method != method {
		return false
	}
	for _, key := range model.MandatoryPrayers {
		if env.Timings[key] == "" {
			return false
		}
	}
	return true
}

// Method returns the account's active calculation method, defaulting to
// Kemenag when none was saved or the saved value is unreadable.
func (s *Service) Method(ctx context.Context, accountID int) int {
	raw, err := s.kv.Get(ctx, methodKey(accountID))
	if err != nil {
		return model.DefaultMethodID
	}
	id, err := strconv.Atoi(raw)
	if err != nil || !model.ValidMethodID(id) {
		return model.DefaultMethodID
	}
	return id
}

// ChangeMethod evicts the cached timings before saving the new method, since
// cached results are method-specific.
func (s *Service) ChangeMethod(ctx context.Context, accountID, methodID int) error {
	if !model.ValidMethodID(methodID) {
		return fmt.Errorf("unknown calculation method %d", methodID)
	}
	if err := s.kv.Delete(ctx, cacheKey(accountID)); err != nil {
		return err
	}
	return s.kv.Set(ctx, methodKey(accountID), strconv.Itoa(methodID))
}
