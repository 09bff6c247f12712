package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alfarizi/ramadhan-companion/internal/db"
	"github.com/alfarizi/ramadhan-companion/internal/fasting"
	"github.com/alfarizi/ramadhan-companion/internal/location"
	"github.com/alfarizi/ramadhan-companion/internal/prayer"
)

// PhaseMessage is the payload published when an account crosses into a new
// phase of the fasting day.
type PhaseMessage struct {
	AccountID int    `json:"account_id"`
	Phase     string `json:"phase"`
	Label     string `json:"label"`
	At        string `json:"at"`
}

// Worker scans all accounts once a minute and publishes a message whenever
// an account's phase changed since the last scan. Accounts without a saved
// location are skipped.
type Worker struct {
	publisher Publisher
	store     db.Store
	locations *location.Service
	prayers   *prayer.Service
	interval  time.Duration
	now       func() time.Time

	lastPhase map[int]string
}

func NewWorker(publisher Publisher, store db.Store, locations *location.Service, prayers *prayer.Service) *Worker {
	return &Worker{
		publisher: publisher,
		store:     store,
		locations: locations,
		prayers:   prayers,
		interval:  time.Minute,
		now:       time.Now,
		lastPhase: make(map[int]string),
	}
}

func topic(accountID int) string {
	return fmt.Sprintf("ramadhan/%d/phase", accountID)
}

// Run ticks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", w.interval).Msg("reminder worker started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reminder worker stopped")
			return
		case <-ticker.C:
			w.Scan(ctx)
		}
	}
}

// Scan runs one pass over all accounts.
func (w *Worker) Scan(ctx context.Context) {
	ids, err := w.store.ListAccountIDs()
	if err != nil {
		log.Error().Err(err).Msg("reminder worker: could not list accounts")
		return
	}

	for _, id := range ids {
		if err := w.scanAccount(ctx, id); err != nil {
			log.Warn().Err(err).Int("account_id", id).Msg("reminder worker: account skipped")
		}
	}
}

func (w *Worker) scanAccount(ctx context.Context, accountID int) error {
	loc, err := w.locations.Get(ctx, accountID)
	if err != nil {
		// No saved location means nothing to remind about.
		return nil
	}

	timings, _, err := w.prayers.Fetch(ctx, accountID, loc.Latitude, loc.Longitude)
	if err != nil {
		return err
	}

	now := w.now()
	status := fasting.ClassifyPhase(timings, now)

	previous, seen := w.lastPhase[accountID]
	w.lastPhase[accountID] = status.Phase
	if !seen || previous == status.Phase {
		return nil
	}

	payload, err := json.Marshal(PhaseMessage{
		AccountID: accountID,
		Phase:     status.Phase,
		Label:     status.Label,
		At:        now.Format("15:04"),
	})
	if err != nil {
		return err
	}

	if err := w.publisher.Publish(topic(accountID), payload); err != nil {
		return err
	}

	log.Info().Int("account_id", accountID).Str("phase", status.Phase).Msg("phase reminder published")
	return nil
}
