package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfarizi/ramadhan-companion/internal/aladhan"
	"github.com/alfarizi/ramadhan-companion/internal/db"
	"github.com/alfarizi/ramadhan-companion/internal/geocode"
	"github.com/alfarizi/ramadhan-companion/internal/kv"
	"github.com/alfarizi/ramadhan-companion/internal/location"
	"github.com/alfarizi/ramadhan-companion/internal/model"
	"github.com/alfarizi/ramadhan-companion/internal/prayer"
)

type recordingPublisher struct {
	topics   []string
	payloads [][]byte
}

func (r *recordingPublisher) Publish(topic string, payload []byte) error {
	r.topics = append(r.topics, topic)
	r.payloads = append(r.payloads, payload)
	return nil
}

func seedWorker(t *testing.T, clock *time.Time) (*Worker, *recordingPublisher) {
	t.Helper()

	store := db.NewMemoryStore()
	id, err := store.CreateAccount("ahmad@example.com", "hash", nil)
	require.NoError(t, err)
	require.Equal(t, 1, id)

	mem := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, kv.SetJSON(ctx, mem, "location:1", model.Location{
		Latitude:  -6.2,
		Longitude: 106.8,
	}))
	require.NoError(t, kv.SetJSON(ctx, mem, "prayer:cache:1", prayer.CacheEnvelope{
		Date:      clock.Format("2006-01-02"),
		Latitude:  -6.2,
		Longitude: 106.8,
		Method:    model.DefaultMethodID,
		Timings: model.Timings{
			"Imsak":   "04:05",
			"Fajr":    "04:15",
			"Dhuhr":   "12:00",
			"Asr":     "15:15",
			"Maghrib": "18:05",
			"Isha":    "19:15",
		},
	}))

	// The cache is valid for the clock's date, so the client is never called.
	client := aladhan.NewClient()
	client.BaseURL = "http://127.0.0.1:0"

	prayers := prayer.NewService(mem, client).WithClock(func() time.Time { return *clock })
	locations := location.NewService(mem, geocode.NewClient())

	pub := &recordingPublisher{}
	w := NewWorker(pub, store, locations, prayers)
	w.now = func() time.Time { return *clock }
	return w, pub
}

func TestScanPublishesOnPhaseTransition(t *testing.T) {
	clock := time.Date(2026, time.February, 20, 3, 0, 0, 0, time.Local)
	w, pub := seedWorker(t, &clock)
	ctx := context.Background()

	// First scan only establishes the baseline phase.
	w.Scan(ctx)
	assert.Empty(t, pub.topics)

	// Still sahur a minute later, nothing to say.
	clock = time.Date(2026, time.February, 20, 3, 1, 0, 0, time.Local)
	w.Scan(ctx)
	assert.Empty(t, pub.topics)

	// Crossing into imsak publishes once.
	clock = time.Date(2026, time.February, 20, 4, 6, 0, 0, time.Local)
	w.Scan(ctx)
	require.Len(t, pub.topics, 1)
	assert.Equal(t, "ramadhan/1/phase", pub.topics[0])

	var msg PhaseMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, 1, msg.AccountID)
	assert.Equal(t, "imsak", msg.Phase)
	assert.Equal(t, "Waktu Imsak!", msg.Label)
	assert.Equal(t, "04:06", msg.At)

	// No repeat while the phase holds.
	clock = time.Date(2026, time.February, 20, 4, 10, 0, 0, time.Local)
	w.Scan(ctx)
	assert.Len(t, pub.topics, 1)
}

func TestScanSkipsAccountsWithoutLocation(t *testing.T) {
	store := db.NewMemoryStore()
	_, err := store.CreateAccount("fatimah@example.com", "hash", nil)
	require.NoError(t, err)

	mem := kv.NewMemory()
	clock := time.Date(2026, time.February, 20, 3, 0, 0, 0, time.Local)
	prayers := prayer.NewService(mem, aladhan.NewClient()).WithClock(func() time.Time { return clock })

	pub := &recordingPublisher{}
	w := NewWorker(pub, store, location.NewService(mem, geocode.NewClient()), prayers)
	w.now = func() time.Time { return clock }
	ctx := context.Background()

	// No saved location for this account, so a full day of scans stays quiet.
	for hour := 0; hour < 24; hour++ {
		clock = time.Date(2026, time.February, 20, hour, 0, 0, 0, time.Local)
		w.Scan(ctx)
	}
	assert.Empty(t, pub.topics)
}
