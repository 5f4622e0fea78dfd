package imagepkg

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// QRBadge places a QR code in the bottom-right corner of the poster.
// A zero value (empty Text) disables it.
type QRBadge struct {
	Text   string
	Size   int
	Margin int
}

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return q.PNG(size)
}

// GenerateQRImage returns a QR code as an image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}

func pasteQR(canvas *image.NRGBA, b QRBadge) (*image.NRGBA, error) {
	if b.Text == "" || b.Size <= 0 {
		return canvas, nil
	}
	q, err := GenerateQRImage(b.Text, b.Size)
	if err != nil {
		return nil, fmt.Errorf("qr badge: %w", err)
	}
	if qb := q.Bounds(); qb.Dx() != b.Size {
		q = imaging.Resize(q, b.Size, b.Size, imaging.NearestNeighbor)
	}
	bounds := canvas.Bounds()
	pos := image.Pt(bounds.Dx()-b.Size-b.Margin, bounds.Dy()-b.Size-b.Margin)
	return imaging.Paste(canvas, q, pos), nil
}
