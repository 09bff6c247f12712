package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "id", r.Header.Get("Accept-Language"))
		w.Write([]byte(`{"address":{"city":"Jakarta","country":"Indonesia"}}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	city, country := c.Reverse(context.Background(), -6.2, 106.8)
	if assert.NotNil(t, city) {
		assert.Equal(t, "Jakarta", *city)
	}
	if assert.NotNil(t, country) {
		assert.Equal(t, "Indonesia", *country)
	}
}

func TestReverseFallsBackThroughLocalityFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{"village":"Cibodas","state":"Jawa Barat","country":"Indonesia"}}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	city, _ := c.Reverse(context.Background(), -6.7, 107.0)
	if assert.NotNil(t, city) {
		assert.Equal(t, "Cibodas", *city)
	}
}

func TestReverseFailureYieldsNils(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	city, country := c.Reverse(context.Background(), 0, 0)
	assert.Nil(t, city)
	assert.Nil(t, country)
}
