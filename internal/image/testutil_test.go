package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// writeTemplate stores img as a PNG template in a temp dir.
func writeTemplate(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, img), 0o644))
	return path
}

// testComposer uses a font name that never resolves so output does not
// depend on what is installed on the machine.
func testComposer(t *testing.T, tmpl image.Image) *Composer {
	return &Composer{
		TemplatePath: writeTemplate(t, tmpl),
		FontName:     "imprint-test-missing-font.ttf",
	}
}

func isRed(c color.NRGBA) bool {
	return c.R > 200 && c.G < 60 && c.B < 60 && c.A > 200
}

func isWhite(c color.NRGBA) bool {
	return c.R > 200 && c.G > 200 && c.B > 200 && c.A > 200
}

func isBlue(c color.NRGBA) bool {
	return c.B > 200 && c.R < 60 && c.G < 60 && c.A > 200
}
