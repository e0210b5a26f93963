// Package geocoding resolves venue addresses through the OpenStreetMap
// Nominatim search API.
package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"attendance/internal/domain/entity"
	"attendance/internal/domain/geo"
	"attendance/internal/errors"
	"attendance/internal/util/clock"

	"golang.org/x/time/rate"
)

// ResultCache stores successful lookups keyed by address.
type ResultCache interface {
	Get(ctx context.Context, address string) (entity.Coordinates, bool, error)
	Set(ctx context.Context, address string, coords entity.Coordinates) error
}

// Options configures a NominatimGeocoder
type Options struct {
	BaseURL     string
	UserAgent   string
	MinInterval time.Duration
	Timeout     time.Duration
}

// NominatimGeocoder implements service.Geocoder. All outbound requests made
// through one instance are spaced at least MinInterval apart.
type NominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	clock      clock.Clock
	cache      ResultCache
	logger     *slog.Logger
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimGeocoder creates a geocoder. cache may be nil.
func NewNominatimGeocoder(opts Options, clk clock.Clock, cache ResultCache, logger *slog.Logger) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(rate.Every(opts.MinInterval), 1),
		clock:      clk,
		cache:      cache,
		logger:     logger.With(slog.String("component", "geocoder")),
	}
}

// Geocode returns the first Nominatim match for address. Failures are logged
// and reported as a miss.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (entity.Coordinates, bool) {
	address = strings.TrimSpace(address)
	if address == "" {
		return entity.Coordinates{}, false
	}

	if coords, ok := g.lookupCache(ctx, address); ok {
		return coords, true
	}

	if err := g.waitForSlot(ctx); err != nil {
		g.logger.WarnContext(ctx, "Geocoding aborted while waiting for rate limit",
			slog.String("address", address),
			slog.Any("error", err),
		)

		return entity.Coordinates{}, false
	}

	coords, err := g.search(ctx, address)
	if err != nil {
		g.logger.WarnContext(ctx, "Geocoding failed",
			slog.String("address", address),
			slog.Any("error", err),
		)

		return entity.Coordinates{}, false
	}

	g.storeCache(ctx, address, coords)

	return coords, true
}

func (g *NominatimGeocoder) waitForSlot(ctx context.Context) error {
	now := g.clock.Now()

	reservation := g.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return errors.New("geocoding rate limiter rejected reservation")
	}

	delay := reservation.DelayFrom(now)
	if delay <= 0 {
		return nil
	}

	if err := g.clock.Sleep(ctx, delay); err != nil {
		reservation.CancelAt(g.clock.Now())

		return errors.Wrap(err, "wait for geocoding slot")
	}

	return nil
}

func (g *NominatimGeocoder) search(ctx context.Context, address string) (entity.Coordinates, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "build geocoding request")
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "send geocoding request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return entity.Coordinates{}, errors.Errorf("geocoding returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "decode geocoding response")
	}

	if len(places) == 0 {
		return entity.Coordinates{}, errors.New("no geocoding result")
	}

	return parsePlace(places[0])
}

func parsePlace(place nominatimPlace) (entity.Coordinates, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(place.Lat), 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrapf(err, "parse latitude %q", place.Lat)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(place.Lon), 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrapf(err, "parse longitude %q", place.Lon)
	}

	if !geo.ValidCoordinate(lat, lng) {
		return entity.Coordinates{}, errors.Errorf("coordinates out of range: %f,%f", lat, lng)
	}

	return entity.Coordinates{Lat: lat, Lng: lng}, nil
}

func (g *NominatimGeocoder) lookupCache(ctx context.Context, address string) (entity.Coordinates, bool) {
	if g.cache == nil {
		return entity.Coordinates{}, false
	}

	coords, ok, err := g.cache.Get(ctx, address)
	if err != nil {
		g.logger.DebugContext(ctx, "Geocode cache read failed", slog.Any("error", err))

		return entity.Coordinates{}, false
	}

	return coords, ok
}

func (g *NominatimGeocoder) storeCache(ctx context.Context, address string, coords entity.Coordinates) {
	if g.cache == nil {
		return
	}

	if err := g.cache.Set(ctx, address, coords); err != nil {
		g.logger.DebugContext(ctx, "Geocode cache write failed", slog.Any("error", err))
	}
}
