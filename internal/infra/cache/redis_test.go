package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "attendance", Key())
	assert.Equal(t, "attendance:geocode:1 main st", Key("geocode", "1 main st"))
}
