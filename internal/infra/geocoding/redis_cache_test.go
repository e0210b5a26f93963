package geocoding

import (
	"testing"

	"attendance/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatesEncoding(t *testing.T) {
	t.Parallel()

	coords := entity.Coordinates{Lat: 37.8719, Lng: -122.2585}

	encoded := encodeCoordinates(coords)
	assert.Equal(t, "37.8719,-122.2585", encoded)

	decoded, ok := decodeCoordinates(encoded)
	assert.True(t, ok)
	assert.Equal(t, coords, decoded)

	_, ok = decodeCoordinates("garbage")
	assert.False(t, ok)
}

func TestGeocodeKeyNormalisesAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, geocodeKey("1 Main St"), geocodeKey("  1 main   st "))
	assert.Equal(t, "attendance:geocode:1 main st", geocodeKey("1 Main St"))
}
