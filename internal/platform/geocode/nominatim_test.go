package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waypost/waypost-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *NominatimClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewNominatimClient(config.GeocodeConfig{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	}, nil)
}

func TestNominatimResolve(t *testing.T) {
	t.Parallel()

	t.Run("resolves address to coordinates", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "221B Baker Street, London", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.NotEmpty(t, r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"lat":"51.5237038","lon":"-0.1585531"}]`))
		})

		location, err := client.Resolve(context.Background(), "221B Baker Street, London")
		require.NoError(t, err)
		assert.InDelta(t, 51.5237038, location.Lat, 1e-9)
		assert.InDelta(t, -0.1585531, location.Lng, 1e-9)
	})

	t.Run("empty result maps to ErrAddressNotFound", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := client.Resolve(context.Background(), "nowhere at all")
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})

	t.Run("provider error maps to ErrGeocodeFailed", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.Resolve(context.Background(), "221B Baker Street")
		assert.ErrorIs(t, err, ErrGeocodeFailed)
	})

	t.Run("malformed body maps to ErrGeocodeFailed", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"a list"}`))
		})

		_, err := client.Resolve(context.Background(), "221B Baker Street")
		assert.ErrorIs(t, err, ErrGeocodeFailed)
	})

	t.Run("non-numeric coordinates map to ErrGeocodeFailed", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"lat":"fifty-one","lon":"-0.15"}]`))
		})

		_, err := client.Resolve(context.Background(), "221B Baker Street")
		assert.ErrorIs(t, err, ErrGeocodeFailed)
	})

	t.Run("unreachable provider maps to ErrGeocodeFailed", func(t *testing.T) {
		t.Parallel()
		client := NewNominatimClient(config.GeocodeConfig{
			BaseURL:        "http://127.0.0.1:1",
			TimeoutSeconds: 1,
		}, nil)

		_, err := client.Resolve(context.Background(), "221B Baker Street")
		assert.ErrorIs(t, err, ErrGeocodeFailed)
	})
}
