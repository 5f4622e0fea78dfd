package imagepkg

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func TestResolveFacesFallback(t *testing.T) {
	fa, err := resolveFaces("imprint-test-missing-font.ttf", 90, 30)
	require.NoError(t, err)
	defer fa.faces.Close()
	assert.ErrorIs(t, fa.err, ErrFontResolution)

	// Fallback sizes are fixed, whatever was requested.
	f, err := opentype.Parse(goregular.TTF)
	require.NoError(t, err)
	want, err := newFaces(f, fallbackNameSize, fallbackRoleSize)
	require.NoError(t, err)
	defer want.Close()
	assert.Equal(t, want.name.Metrics(), fa.faces.name.Metrics())
	assert.Equal(t, want.role.Metrics(), fa.faces.role.Metrics())
}

// goRegularFile writes the Go Regular font to disk so it resolves by path.
func goRegularFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	return path
}

func TestResolveFacesNamedFont(t *testing.T) {
	fa, err := resolveFaces(goRegularFile(t), 90, 30)
	require.NoError(t, err)
	defer fa.faces.Close()
	assert.NoError(t, fa.err)

	f, err := opentype.Parse(goregular.TTF)
	require.NoError(t, err)
	want, err := newFaces(f, 90, 30)
	require.NoError(t, err)
	defer want.Close()
	assert.Equal(t, want.name.Metrics(), fa.faces.name.Metrics())
	assert.Equal(t, want.role.Metrics(), fa.faces.role.Metrics())
}

func TestComposeUsesRequestedFontSize(t *testing.T) {
	c := testComposer(t, image.NewNRGBA(image.Rect(0, 0, 800, 700)))
	c.FontName = goRegularFile(t)

	width := func(size int) int {
		l := DefaultLayout()
		l.NameFontSize = size
		res := compose(t, c, solid(100, 100, red), TextFields{Name: "Ada"}, l)
		assert.Empty(t, res.Warnings, "size %d", size)
		minX, maxX, ok := whiteColumns(res.Image, 440, 531)
		require.True(t, ok, "size %d", size)
		return maxX - minX + 1
	}
	small, large := width(20), width(100)
	assert.Greater(t, large, 3*small)
}
