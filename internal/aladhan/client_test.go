package aladhan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate() time.Time {
	return time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)
}

func TestTimings(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"code":200,"status":"OK","data":{"timings":{
			"Fajr":"04:38","Dhuhr":"12:08","Asr":"15:20","Maghrib":"18:14","Isha":"19:24","Imsak":"04:28"}}}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	timings, err := c.Timings(context.Background(), testDate(), -6.2, 106.8, 20)
	require.NoError(t, err)
	assert.Equal(t, "/timings/20-02-2026", gotPath)
	assert.Contains(t, gotQuery, "method=20")
	assert.Equal(t, "04:38", timings["Fajr"])
	assert.Equal(t, "18:14", timings["Maghrib"])
}

func TestTimingsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Timings(context.Background(), testDate(), -6.2, 106.8, 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to retrieve prayer times")
}

func TestTimingsAPIErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":400,"status":"Bad Request","data":{}}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Timings(context.Background(), testDate(), -6.2, 106.8, 20)
	require.Error(t, err)
}

func TestGregorianToHijri(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gToH/20-02-2026", r.URL.Path)
		w.Write([]byte(`{"code":200,"data":{"hijri":{"day":"2","month":{"en":"Ramadan"},"year":"1447"}}}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	h, err := c.GregorianToHijri(context.Background(), testDate())
	require.NoError(t, err)
	assert.Equal(t, "2 Ramadan 1447 H", h.Display())
}
