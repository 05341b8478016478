package geocoding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lifelink/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *NominatimClient {
	log := logrus.New()
	return NewNominatimClient(config.GeocoderConfig{
		BaseURL:   baseURL,
		UserAgent: "lifelink-test",
		Timeout:   2 * time.Second,
	}, log)
}

func TestNominatimGeocodeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "lifelink-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "Accra, Ghana", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "5.6037", "lon": "-0.1870"}]`))
	}))
	defer server.Close()

	coords, err := newTestClient(server.URL).Geocode(context.Background(), "Accra, Ghana")

	require.NoError(t, err)
	assert.InDelta(t, 5.6037, coords.Lat, 1e-9)
	assert.InDelta(t, -0.1870, coords.Lon, 1e-9)
}

func TestNominatimGeocodeNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Geocode(context.Background(), "nowhere in particular")

	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestNominatimGeocodeProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Geocode(context.Background(), "Accra")

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestNominatimGeocodeNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before the call, so the request fails

	_, err := newTestClient(server.URL).Geocode(context.Background(), "Accra")

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestNominatimGeocodeMalformedCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat": "not-a-number", "lon": "0"}]`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Geocode(context.Background(), "Accra")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
}
