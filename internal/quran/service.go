package quran

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

// Service resolves surahs store-first, filling from the API on a miss.
type Service struct {
	store  SurahStore
	client *Client
}

func NewService(store SurahStore, client *Client) *Service {
	return &Service{store: store, client: client}
}

// GetSurah returns the surah and whether it came from the offline store.
// A cached surah must contain at least one verse to count as a hit. On a
// miss nothing partial is ever persisted: the fetch either completes and is
// stored whole, or the error is returned as-is.
func (s *Service) GetSurah(ctx context.Context, number int) (*model.Surah, bool, error) {
	if number < 1 || number > len(SurahIndex) {
		return nil, false, fmt.Errorf("surah number %d out of range", number)
	}

	cached, err := s.store.Get(ctx, number)
	if err == nil && len(cached.Ayahs) > 0 {
		return cached, true, nil
	}
	if err != nil && !errors.Is(err, ErrNotCached) {
		log.Warn().Err(err).Int("surah", number).Msg("surah store read failed, falling back to api")
	}

	surah, err := s.client.FetchSurah(ctx, number)
	if err != nil {
		return nil, false, err
	}

	if err := s.store.Put(ctx, surah); err != nil {
		// Serving the fetched text still works; only offline reuse is lost.
		log.Warn().Err(err).Int("surah", number).Msg("failed to cache surah")
	}

	return surah, false, nil
}

// ListCached enumerates the surah numbers present in the offline store.
func (s *Service) ListCached(ctx context.Context) ([]int, error) {
	return s.store.ListNumbers(ctx)
}
