package quran

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

func fakeAPI(t *testing.T, arabicVerses, translatedVerses int, fail bool) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail && strings.Contains(r.URL.Path, translationEdition) {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		count := arabicVerses
		prefix := "ayat"
		if strings.Contains(r.URL.Path, translationEdition) {
			count = translatedVerses
			prefix = "arti"
		}
		var verses []string
		for i := 1; i <= count; i++ {
			verses = append(verses, fmt.Sprintf(`{"numberInSurah":%d,"text":"%s %d"}`, i, prefix, i))
		}
		fmt.Fprintf(w, `{"code":200,"data":{"number":112,"name":"الإخلاص","englishName":"Al-Ikhlas","ayahs":[%s]}}`,
			strings.Join(verses, ","))
	}))
	t.Cleanup(srv.Close)

	c := NewClient()
	c.BaseURL = srv.URL
	return c
}

func TestGetSurahFetchesAndCaches(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, fakeAPI(t, 4, 4, false))

	surah, fromCache, err := svc.GetSurah(context.Background(), 112)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, "Al-Ikhlas", surah.EnglishName)
	require.Len(t, surah.Ayahs, 4)
	assert.Equal(t, "ayat 1", surah.Ayahs[0].Arabic)
	assert.Equal(t, "arti 1", surah.Ayahs[0].Translation)

	// Second read must come from the store.
	_, fromCache, err = svc.GetSurah(context.Background(), 112)
	require.NoError(t, err)
	assert.True(t, fromCache)
}

func TestGetSurahLenientVerseAlignment(t *testing.T) {
	svc := NewService(NewMemoryStore(), fakeAPI(t, 4, 2, false))

	surah, _, err := svc.GetSurah(context.Background(), 112)
	require.NoError(t, err)
	require.Len(t, surah.Ayahs, 4)
	assert.Equal(t, "arti 2", surah.Ayahs[1].Translation)
	assert.Equal(t, "", surah.Ayahs[2].Translation)
	assert.Equal(t, "", surah.Ayahs[3].Translation)
}

func TestGetSurahFailedFetchCachesNothing(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, fakeAPI(t, 4, 4, true))

	_, _, err := svc.GetSurah(context.Background(), 112)
	require.Error(t, err)

	numbers, err := store.ListNumbers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, numbers)
}

func TestGetSurahEmptyCachedEntryRefetches(t *testing.T) {
	store := NewMemoryStore()
	// A verse-less record does not count as cached.
	require.NoError(t, store.Put(context.Background(), &model.Surah{Number: 112}))

	svc := NewService(store, fakeAPI(t, 4, 4, false))
	surah, fromCache, err := svc.GetSurah(context.Background(), 112)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Len(t, surah.Ayahs, 4)
}

func TestGetSurahOutOfRange(t *testing.T) {
	svc := NewService(NewMemoryStore(), fakeAPI(t, 1, 1, false))
	_, _, err := svc.GetSurah(context.Background(), 115)
	assert.Error(t, err)
	_, _, err = svc.GetSurah(context.Background(), 0)
	assert.Error(t, err)
}

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotCached)

	in := &model.Surah{Number: 1, Name: "الفاتحة", EnglishName: "Al-Fatihah",
		Ayahs: []model.Ayah{{Number: 1, Arabic: "...", Translation: "..."}}}
	require.NoError(t, store.Put(ctx, in))

	out, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	numbers, err := store.ListNumbers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, numbers)
}

func TestSurahIndexComplete(t *testing.T) {
	require.Len(t, SurahIndex, 114)
	assert.Equal(t, "Al-Fatihah", SurahIndex[0].Name)
	assert.Equal(t, "An-Nas", SurahIndex[113].Name)
	for i, s := range SurahIndex {
		assert.Equal(t, i+1, s.Number)
	}
}
