package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"attendance/internal/domain/entity"
	"attendance/internal/errors"
	"attendance/internal/util/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserAgent = "AttendanceTests/1.0 (tests@example.com)"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordedRequest struct {
	at        time.Time
	query     string
	format    string
	limit     string
	userAgent string
}

type fakeNominatim struct {
	mu       sync.Mutex
	clock    *clock.Fake
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeNominatim) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		at:        f.clock.Now(),
		query:     r.URL.Query().Get("q"),
		format:    r.URL.Query().Get("format"),
		limit:     r.URL.Query().Get("limit"),
		userAgent: r.Header.Get("User-Agent"),
	})
	status, body := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (f *fakeNominatim) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]recordedRequest(nil), f.requests...)
}

type memoryResultCache struct {
	mu      sync.Mutex
	entries map[string]entity.Coordinates
	failGet bool
	failSet bool
}

func (c *memoryResultCache) Get(_ context.Context, address string) (entity.Coordinates, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failGet {
		return entity.Coordinates{}, false, errors.New("cache down")
	}
	coords, ok := c.entries[address]

	return coords, ok, nil
}

func (c *memoryResultCache) Set(_ context.Context, address string, coords entity.Coordinates) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failSet {
		return errors.New("cache down")
	}
	if c.entries == nil {
		c.entries = make(map[string]entity.Coordinates)
	}
	c.entries[address] = coords

	return nil
}

func newTestGeocoder(t *testing.T, server *fakeNominatim, cache ResultCache) *NominatimGeocoder {
	t.Helper()

	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)

	return NewNominatimGeocoder(Options{
		BaseURL:     ts.URL,
		UserAgent:   testUserAgent,
		MinInterval: time.Second,
		Timeout:     5 * time.Second,
	}, server.clock, cache, newDiscardLogger())
}

func TestNominatimGeocoder_Geocode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantOK  bool
		wantLat float64
		wantLng float64
	}{
		{
			name:    "first result is used",
			body:    `[{"lat":"37.8687","lon":"-122.2594","display_name":"Bancroft"},{"lat":"1","lon":"1"}]`,
			wantOK:  true,
			wantLat: 37.8687,
			wantLng: -122.2594,
		},
		{name: "empty result", body: `[]`},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
		{name: "malformed body", body: `{not json`},
		{name: "unparseable latitude", body: `[{"lat":"north","lon":"1.0"}]`},
		{name: "out of range", body: `[{"lat":"123.0","lon":"1.0"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := &fakeNominatim{clock: clock.NewFake(time.Unix(1_700_000_000, 0)), status: tt.status, body: tt.body}
			geocoder := newTestGeocoder(t, server, nil)

			coords, ok := geocoder.Geocode(context.Background(), "2495 Bancroft Way, Berkeley")

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantLat, coords.Lat, 1e-9)
				assert.InDelta(t, tt.wantLng, coords.Lng, 1e-9)
			}

			requests := server.recorded()
			require.Len(t, requests, 1)
			assert.Equal(t, "2495 Bancroft Way, Berkeley", requests[0].query)
			assert.Equal(t, "json", requests[0].format)
			assert.Equal(t, "1", requests[0].limit)
			assert.Equal(t, testUserAgent, requests[0].userAgent)
		})
	}
}

func TestNominatimGeocoder_BlankAddressSkipsRequest(t *testing.T) {
	t.Parallel()

	server := &fakeNominatim{clock: clock.NewFake(time.Unix(0, 0)), body: `[]`}
	geocoder := newTestGeocoder(t, server, nil)

	_, ok := geocoder.Geocode(context.Background(), "   ")

	assert.False(t, ok)
	assert.Empty(t, server.recorded())
}

func TestNominatimGeocoder_SpacesRequestsOneSecondApart(t *testing.T) {
	t.Parallel()

	fake := clock.NewFake(time.Unix(1_700_000_000, 0))
	server := &fakeNominatim{clock: fake, body: `[{"lat":"10","lon":"20"}]`}
	geocoder := newTestGeocoder(t, server, nil)

	for _, address := range []string{"a st", "b st", "c st", "d st"} {
		_, ok := geocoder.Geocode(context.Background(), address)
		require.True(t, ok)
	}

	requests := server.recorded()
	require.Len(t, requests, 4)
	for i := 1; i < len(requests); i++ {
		gap := requests[i].at.Sub(requests[i-1].at)
		assert.GreaterOrEqual(t, gap, time.Second, "gap between request %d and %d", i-1, i)
	}
	assert.Len(t, fake.Sleeps(), 3)
}

func TestNominatimGeocoder_NoWaitAfterIdleInterval(t *testing.T) {
	t.Parallel()

	fake := clock.NewFake(time.Unix(1_700_000_000, 0))
	server := &fakeNominatim{clock: fake, body: `[{"lat":"10","lon":"20"}]`}
	geocoder := newTestGeocoder(t, server, nil)

	_, ok := geocoder.Geocode(context.Background(), "a st")
	require.True(t, ok)

	fake.Advance(5 * time.Second)
	_, ok = geocoder.Geocode(context.Background(), "b st")
	require.True(t, ok)

	assert.Empty(t, fake.Sleeps())
}

func TestNominatimGeocoder_CancelledWhileWaiting(t *testing.T) {
	t.Parallel()

	fake := clock.NewFake(time.Unix(1_700_000_000, 0))
	server := &fakeNominatim{clock: fake, body: `[{"lat":"10","lon":"20"}]`}
	geocoder := newTestGeocoder(t, server, nil)

	_, ok := geocoder.Geocode(context.Background(), "a st")
	require.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok = geocoder.Geocode(ctx, "b st")

	assert.False(t, ok)
	assert.Len(t, server.recorded(), 1)
}

func TestNominatimGeocoder_UsesResultCache(t *testing.T) {
	t.Parallel()

	server := &fakeNominatim{clock: clock.NewFake(time.Unix(0, 0)), body: `[{"lat":"10","lon":"20"}]`}
	cache := &memoryResultCache{}
	geocoder := newTestGeocoder(t, server, cache)

	first, ok := geocoder.Geocode(context.Background(), "a st")
	require.True(t, ok)
	second, ok := geocoder.Geocode(context.Background(), "a st")
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Len(t, server.recorded(), 1)
}

func TestNominatimGeocoder_CacheFailuresFallBackToNetwork(t *testing.T) {
	t.Parallel()

	server := &fakeNominatim{clock: clock.NewFake(time.Unix(0, 0)), body: `[{"lat":"10","lon":"20"}]`}
	geocoder := newTestGeocoder(t, server, &memoryResultCache{failGet: true, failSet: true})

	coords, ok := geocoder.Geocode(context.Background(), "a st")

	require.True(t, ok)
	assert.Equal(t, entity.Coordinates{Lat: 10, Lng: 20}, coords)
	assert.Len(t, server.recorded(), 1)
}
