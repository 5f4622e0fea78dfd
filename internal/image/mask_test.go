package imagepkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleMaskMatchesSize(t *testing.T) {
	for _, sz := range [][2]int{{350, 350}, {700, 700}, {350, 262}, {1, 1}} {
		m := circleMask(sz[0], sz[1])
		assert.Equal(t, sz[0], m.Bounds().Dx())
		assert.Equal(t, sz[1], m.Bounds().Dy())
	}
}

func TestCircleMaskShape(t *testing.T) {
	m := circleMask(100, 100)
	assert.Equal(t, uint8(0xff), m.AlphaAt(50, 50).A, "centre")
	assert.Equal(t, uint8(0xff), m.AlphaAt(0, 50).A, "left edge")
	assert.Equal(t, uint8(0xff), m.AlphaAt(99, 50).A, "right edge")
	assert.Equal(t, uint8(0), m.AlphaAt(0, 0).A, "corner")
	assert.Equal(t, uint8(0), m.AlphaAt(99, 99).A, "corner")
	assert.Equal(t, uint8(0), m.AlphaAt(10, 10).A)
}

func TestCircleMaskEmpty(t *testing.T) {
	assert.True(t, circleMask(0, 0).Bounds().Empty())
}
