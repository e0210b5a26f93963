// Package position provides device position and permission sources for the
// geotracker binary.
package position

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"attendance/internal/domain/entity"
	"attendance/internal/errors"
	"attendance/internal/monitor"
	"attendance/internal/util/clock"
)

// Waypoint is a position the device reaches Offset after the replay starts.
type Waypoint struct {
	Offset time.Duration
	Coords entity.Coordinates
}

// ReplaySource plays back a recorded track. Each request returns the last
// waypoint whose offset has elapsed on the clock.
type ReplaySource struct {
	waypoints []Waypoint
	clock     clock.Clock

	mu      sync.Mutex
	started time.Time
}

// NewReplaySource creates a replay of waypoints, ordered by offset. The replay
// starts at the first position request.
func NewReplaySource(waypoints []Waypoint, clk clock.Clock) (*ReplaySource, error) {
	if len(waypoints) == 0 {
		return nil, errors.New("replay track has no waypoints")
	}

	sorted := make([]Waypoint, len(waypoints))
	copy(sorted, waypoints)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	return &ReplaySource{waypoints: sorted, clock: clk}, nil
}

// LoadReplayFile reads a CSV track of offset_seconds,lat,lng rows. A header
// row and blank lines are skipped.
func LoadReplayFile(path string, clk clock.Clock) (*ReplaySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open track %s", path)
	}
	defer f.Close()

	waypoints, err := ParseWaypoints(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse track %s", path)
	}

	return NewReplaySource(waypoints, clk)
}

// ParseWaypoints reads offset_seconds,lat,lng rows.
func ParseWaypoints(r io.Reader) ([]Waypoint, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var waypoints []Waypoint
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}

		offset, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			if row == 1 {
				continue
			}

			return nil, errors.Errorf("row %d: invalid offset %q", row, record[0])
		}

		lat, latErr := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		lng, lngErr := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		coords := entity.Coordinates{Lat: lat, Lng: lng}
		if latErr != nil || lngErr != nil || !coords.Valid() || offset < 0 {
			return nil, errors.Errorf("row %d: invalid waypoint", row)
		}

		waypoints = append(waypoints, Waypoint{
			Offset: time.Duration(offset * float64(time.Second)),
			Coords: coords,
		})
	}

	return waypoints, nil
}

// CurrentPosition implements monitor.PositionSource.
func (s *ReplaySource) CurrentPosition(ctx context.Context, _ monitor.SampleOptions) (entity.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinates{}, errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.started.IsZero() {
		s.started = now
	}
	elapsed := now.Sub(s.started)

	current := s.waypoints[0]
	for _, wp := range s.waypoints[1:] {
		if wp.Offset > elapsed {
			break
		}
		current = wp
	}

	return current.Coords, nil
}
