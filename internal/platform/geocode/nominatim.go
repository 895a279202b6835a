package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/waypost/waypost-api/internal/config"
	"github.com/waypost/waypost-api/internal/domain"
	"github.com/waypost/waypost-api/internal/platform/logger"
)

// HTTP client timeouts for the geocoding provider.
const (
	dialTimeout           = 10 * time.Second
	tlsHandshakeTimeout   = 10 * time.Second
	responseHeaderTimeout = 15 * time.Second
)

// userAgent identifies the application to the provider, which Nominatim's
// usage policy requires.
const userAgent = "waypost-api/1.0"

// NominatimClient is a Geocoder backed by a Nominatim-compatible search
// endpoint (the public OpenStreetMap instance by default).
type NominatimClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure NominatimClient implements the Geocoder interface
var _ Geocoder = (*NominatimClient)(nil)

// NewNominatimClient creates a geocoding client from configuration.
func NewNominatimClient(cfg config.GeocodeConfig, log *slog.Logger) *NominatimClient {
	if log == nil {
		log = slog.Default()
	}

	return &NominatimClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   dialTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   tlsHandshakeTimeout,
				ResponseHeaderTimeout: responseHeaderTimeout,
				MaxIdleConns:          10,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		logger: log.With(slog.String("component", "geocoder")),
	}
}

// searchResult is the subset of the Nominatim search response we consume.
// Nominatim serializes coordinates as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve implements the Geocoder interface.
// Returns ErrAddressNotFound when the provider has no match for the address
// and ErrGeocodeFailed for transport or provider errors.
func (c *NominatimClient) Resolve(ctx context.Context, address string) (domain.Location, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	endpoint := c.baseURL + "/search?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: %v", ErrGeocodeFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("geocoding request failed", slog.String("error", err.Error()))
		return domain.Location{}, fmt.Errorf("%w: %v", ErrGeocodeFailed, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Error("failed to close response body", slog.String("error", err.Error()))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		log.Error("geocoding provider returned error status",
			slog.Int("status", resp.StatusCode))
		return domain.Location{}, fmt.Errorf("%w: provider status %d", ErrGeocodeFailed, resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Error("failed to decode geocoding response", slog.String("error", err.Error()))
		return domain.Location{}, fmt.Errorf("%w: %v", ErrGeocodeFailed, err)
	}

	if len(results) == 0 {
		log.Debug("no geocoding result for address")
		return domain.Location{}, ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: invalid latitude %q", ErrGeocodeFailed, results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: invalid longitude %q", ErrGeocodeFailed, results[0].Lon)
	}

	location := domain.Location{Lat: lat, Lng: lng}
	if !location.Valid() {
		return domain.Location{}, fmt.Errorf("%w: coordinates out of range", ErrGeocodeFailed)
	}

	log.Debug("address resolved",
		slog.Float64("lat", location.Lat),
		slog.Float64("lng", location.Lng))
	return location, nil
}
