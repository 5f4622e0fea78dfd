package imagepkg

import (
	"bytes"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultFilenamePrefix is prepended to downloaded poster names.
const DefaultFilenamePrefix = "YPG_Conference"

// EncodePNG returns the poster as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename suggests a download name, e.g. "YPG_Conference_Ada_Lovelace.png".
func Filename(prefix, name string) string {
	if prefix == "" {
		prefix = DefaultFilenamePrefix
	}
	return prefix + "_" + strings.ReplaceAll(name, " ", "_") + ".png"
}
