package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantLat float64
		wantLng float64
	}{
		{name: "berkeley", input: "37.8719,-122.2585", wantOK: true, wantLat: 37.8719, wantLng: -122.2585},
		{name: "integers", input: "10,20", wantOK: true, wantLat: 10, wantLng: 20},
		{name: "surrounding whitespace", input: "  -33.5,151.25 ", wantOK: true, wantLat: -33.5, wantLng: 151.25},
		{name: "space after comma", input: "37.8719, -122.2585", wantOK: false},
		{name: "latitude out of range", input: "91.0,10.0", wantOK: false},
		{name: "longitude out of range", input: "10.0,181.0", wantOK: false},
		{name: "street address", input: "2495 Bancroft Way, Berkeley", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "single number", input: "37.8719", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			point, ok := ParseLiteral(tt.input)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.InDelta(t, tt.wantLat, point.Lat(), 1e-9)
				assert.InDelta(t, tt.wantLng, point.Lon(), 1e-9)
			}
		})
	}
}
