package geo

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

var literalPattern = regexp.MustCompile(`^-?\d+\.?\d*,-?\d+\.?\d*$`)

// ParseLiteral parses a "lat,lng" string such as "37.8719,-122.2585".
// It reports false for anything else, including out-of-range pairs.
func ParseLiteral(text string) (orb.Point, bool) {
	text = strings.TrimSpace(text)
	if !literalPattern.MatchString(text) {
		return orb.Point{}, false
	}

	latText, lngText, _ := strings.Cut(text, ",")

	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return orb.Point{}, false
	}

	lng, err := strconv.ParseFloat(lngText, 64)
	if err != nil {
		return orb.Point{}, false
	}

	if !ValidCoordinate(lat, lng) {
		return orb.Point{}, false
	}

	return orb.Point{lng, lat}, true
}
