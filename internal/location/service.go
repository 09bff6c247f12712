// Package location persists each account's saved position, enriching it with
// a best-effort reverse-geocoded place name.
package location

import (
	"context"
	"fmt"
	"time"

	"github.com/alfarizi/ramadhan-companion/internal/geocode"
	"github.com/alfarizi/ramadhan-companion/internal/kv"
	"github.com/alfarizi/ramadhan-companion/internal/model"
)

// Service stores one Location per account, overwritten wholesale on save.
type Service struct {
	kv       kv.Store
	geocoder *geocode.Client
	now      func() time.Time
}

func NewService(store kv.Store, geocoder *geocode.Client) *Service {
	return &Service{kv: store, geocoder: geocoder, now: time.Now}
}

func key(accountID int) string { return fmt.Sprintf("location:%d", accountID) }

// Save overwrites the account's location. The reverse geocode is best-effort:
// on failure city and country stay nil and the caller shows raw coordinates.
func (s *Service) Save(ctx context.Context, accountID int, lat, lng float64) (model.Location, error) {
	city, country := s.geocoder.Reverse(ctx, lat, lng)
	loc := model.Location{
		Latitude:   lat,
		Longitude:  lng,
		City:       city,
		Country:    country,
		CapturedAt: s.now(),
	}
	if err := kv.SetJSON(ctx, s.kv, key(accountID), loc); err != nil {
		return model.Location{}, err
	}
	return loc, nil
}

// Get returns the saved location, or kv.ErrNotFound when none was saved.
func (s *Service) Get(ctx context.Context, accountID int) (model.Location, error) {
	var loc model.Location
	if err := kv.GetJSON(ctx, s.kv, key(accountID), &loc); err != nil {
		return model.Location{}, err
	}
	return loc, nil
}
