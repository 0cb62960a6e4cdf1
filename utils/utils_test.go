package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(5, Max(5, 2))
	assert.Equal(float32(0.2), Min(float32(0.2), 1))
}

func TestUtils_Abs(t *testing.T) {
	assert.Equal(t, 150, Abs(-150))
	assert.Equal(t, 150, Abs(150))
	assert.Equal(t, 0, Abs(0))
	assert.Equal(t, 1.5, Abs(-1.5))
}

func TestUtils_Clamp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, Clamp(-10, 0, 900))
	assert.Equal(900, Clamp(1200, 0, 900))
	assert.Equal(150, Clamp(150, 0, 900))
	// The lower bound wins on an inverted interval.
	assert.Equal(0, Clamp(50, 0, -100))
}

func TestUtils_DecorateText(t *testing.T) {
	s := DecorateText("tap", ErrorMessage)
	assert.True(t, strings.HasPrefix(s, ErrorColor))
	assert.True(t, strings.HasSuffix(s, DefaultColor))

	assert.Equal(t, "tap", DecorateText("tap", MessageType(42)))
}

func TestUtils_FormatDuration(t *testing.T) {
	assert.Equal(t, "500ms", FormatDuration(500*time.Millisecond))
	assert.Equal(t, "2.50s", FormatDuration(2500*time.Millisecond))
}
