package imagepkg

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader returns a PNG that declares w x h pixels but carries only the
// signature and IHDR chunk.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA
	binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestDecodePhotoRejectsHugeDimensions(t *testing.T) {
	img, err := DecodePhoto(bytes.NewReader(pngHeader(12000, 12000)))
	assert.Nil(t, img)
	assert.ErrorIs(t, err, ErrPhotoDecode)
	assert.ErrorContains(t, err, "12000x12000")
}

func TestDecodePhotoAcceptsNormalPhoto(t *testing.T) {
	img, err := DecodePhoto(bytes.NewReader(pngBytes(t, solid(80, 60, red))))
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestComposeRejectsHugePhoto(t *testing.T) {
	c := testComposer(t, solid(100, 100, blue))
	res, err := c.Compose(bytes.NewReader(pngHeader(10000, 6000)), TextFields{}, DefaultLayout())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrPhotoDecode)
}

func TestFetchPhotoRejectsScheme(t *testing.T) {
	for _, u := range []string{"file:///etc/passwd", "ftp://example.com/x.png", "httpx://example.com/x.png", "::"} {
		_, err := FetchPhoto(u)
		assert.Error(t, err, u)
	}
}
