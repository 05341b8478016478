package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"lifelink/config"

	"github.com/sirupsen/logrus"
)

// NominatimClient resolves locations against the OpenStreetMap Nominatim
// search API
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewNominatimClient(cfg config.GeocoderConfig, log *logrus.Logger) *NominatimClient {
	return &NominatimClient{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// nominatimResult is the subset of the Nominatim search response we use.
// Nominatim returns coordinates as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *NominatimClient) Geocode(ctx context.Context, location string) (*Coordinates, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(location))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("Geocoding request failed for %q: %+v", location, err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warnf("Geocoding provider returned status %d for %q", resp.StatusCode, location)
		return nil, fmt.Errorf("%w: provider status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.log.Warnf("Failed to decode geocoding response for %q: %+v", location, err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if len(results) == 0 {
		return nil, ErrLocationNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed latitude %q", ErrServiceUnavailable, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed longitude %q", ErrServiceUnavailable, results[0].Lon)
	}

	return &Coordinates{Lat: lat, Lon: lon}, nil
}
