package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Poster geometry, in template pixels.
const (
	referenceSize  = 500 // photo is normalized to this square before rotating
	basePhotoWidth = 350 // photo width at scale 1
	photoAnchorY   = 300 // vertical centre of the photo
	nameBaselineY  = 530
	roleBaselineY  = 570
)

// TextFields is the text drawn under the photo. Name is upper-cased.
type TextFields struct {
	Name string
	Role string
}

// Layout positions the photo and sizes the text. Ranges are enforced by the
// caller; Compose uses the values as given.
type Layout struct {
	Scale        float64
	OffsetX      int
	OffsetY      int
	Rotation     int // degrees, counter-clockwise
	NameFontSize int
	RoleFontSize int
}

// DefaultLayout matches the initial position of the editor controls.
func DefaultLayout() Layout {
	return Layout{Scale: 1, NameFontSize: 60, RoleFontSize: 40}
}

// Result is a rendered poster plus any non-fatal problems met on the way.
type Result struct {
	Image    *image.NRGBA
	Warnings []error
}

// Composer renders posters from a template on disk. A Composer holds no
// per-request state and can be shared between goroutines.
type Composer struct {
	TemplatePath string
	FontName     string
	QR           QRBadge
	Logger       *log.Logger
}

func (c *Composer) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// LoadTemplate decodes the poster template at path.
func LoadTemplate(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, path, err)
	}
	return imaging.Clone(img), nil
}

// MaxPhotoPixels bounds width x height of an uploaded photo.
const MaxPhotoPixels = 50_000_000

// DecodePhoto decodes an uploaded photo and applies its EXIF orientation.
// Photos larger than MaxPhotoPixels are rejected before any pixel is decoded.
func DecodePhoto(r io.Reader) (*image.NRGBA, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPhotoDecode, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPhotoDecode, err)
	}
	if px := int64(cfg.Width) * int64(cfg.Height); px > MaxPhotoPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrPhotoDecode, cfg.Width, cfg.Height, MaxPhotoPixels)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPhotoDecode, err)
	}
	return imaging.Clone(img), nil
}

// Compose renders a poster: the photo cropped to a circle beneath the
// template, with name and role drawn on top.
func (c *Composer) Compose(photo io.Reader, text TextFields, layout Layout) (*Result, error) {
	tmpl, err := LoadTemplate(c.TemplatePath)
	if err != nil {
		return nil, err
	}
	src, err := DecodePhoto(photo)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	canvas := image.NewNRGBA(tmpl.Bounds())

	p := preparePhoto(src, layout)
	mask := circleMask(p.Bounds().Dx(), p.Bounds().Dy())
	origin := photoOrigin(canvas.Bounds().Dx(), p.Bounds().Dx(), p.Bounds().Dy(), layout)
	draw.DrawMask(canvas, p.Bounds().Add(origin), p, image.Point{}, mask, image.Point{}, draw.Src)

	draw.Draw(canvas, canvas.Bounds(), tmpl, tmpl.Bounds().Min, draw.Over)

	fa, err := resolveFaces(c.FontName, layout.NameFontSize, layout.RoleFontSize)
	if err != nil {
		return nil, err
	}
	defer fa.faces.Close()
	if fa.err != nil {
		c.logger().Warn("using default font", "font", c.FontName, "err", fa.err)
		res.Warnings = append(res.Warnings, fa.err)
	}
	cx := canvas.Bounds().Dx() / 2
	drawCentered(canvas, fa.faces.name, strings.ToUpper(text.Name), cx, nameBaselineY)
	drawCentered(canvas, fa.faces.role, text.Role, cx, roleBaselineY)

	canvas, err = pasteQR(canvas, c.QR)
	if err != nil {
		return nil, err
	}

	c.logger().Debug("composed poster",
		"size", canvas.Bounds().Size(),
		"photo", p.Bounds().Size(),
		"origin", origin)
	res.Image = canvas
	return res, nil
}

// preparePhoto runs the geometric pipeline: normalize, rotate, scale.
func preparePhoto(src *image.NRGBA, layout Layout) *image.NRGBA {
	p := imaging.Resize(src, referenceSize, referenceSize, imaging.Lanczos)
	if layout.Rotation%360 != 0 {
		// imaging.Rotate turns counter-clockwise and grows the bounds to fit.
		p = imaging.Rotate(p, float64(layout.Rotation), color.Transparent)
	}
	w, h := targetSize(p.Bounds().Dx(), p.Bounds().Dy(), layout.Scale)
	return imaging.Resize(p, w, h, imaging.Lanczos)
}

// targetSize scales the base width and keeps the aspect of w x h.
func targetSize(w, h int, scale float64) (int, int) {
	tw := int(basePhotoWidth * scale)
	th := int(float64(tw) * (float64(h) / float64(w)))
	return tw, th
}

func photoOrigin(canvasW, w, h int, layout Layout) image.Point {
	return image.Pt(
		canvasW/2-w/2+layout.OffsetX,
		photoAnchorY-h/2+layout.OffsetY,
	)
}

// drawCentered draws s with its baseline at y, horizontally centred on x.
func drawCentered(dst draw.Image, face font.Face, s string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}
	w := d.MeasureString(s)
	d.Dot = fixed.Point26_6{X: fixed.I(x) - w/2, Y: fixed.I(y)}
	d.DrawString(s)
}
