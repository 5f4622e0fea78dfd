package imagepkg

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontName is looked up among the system fonts when no font is configured.
const DefaultFontName = "arial.ttf"

// Sizes used with the built-in font, regardless of what was requested.
const (
	fallbackNameSize = 60
	fallbackRoleSize = 40
)

type faces struct {
	name font.Face
	role font.Face
}

func (f faces) Close() {
	f.name.Close()
	f.role.Close()
}

// fontAttempt is the outcome of resolving the requested font. When err is
// set, faces holds the fallback and err is the warning to surface.
type fontAttempt struct {
	faces faces
	err   error
}

// resolveFaces tries the named font and falls back to Go Regular. The
// returned error is only set when even the built-in font cannot be loaded.
func resolveFaces(name string, nameSize, roleSize int) (fontAttempt, error) {
	if name == "" {
		name = DefaultFontName
	}
	f, err := loadNamedFont(name)
	if err == nil {
		var fs faces
		if fs, err = newFaces(f, nameSize, roleSize); err == nil {
			return fontAttempt{faces: fs}, nil
		}
	}

	fallback, ferr := opentype.Parse(goregular.TTF)
	if ferr != nil {
		return fontAttempt{}, fmt.Errorf("parse default font: %w", ferr)
	}
	fs, ferr := newFaces(fallback, fallbackNameSize, fallbackRoleSize)
	if ferr != nil {
		return fontAttempt{}, ferr
	}
	return fontAttempt{faces: fs, err: fmt.Errorf("%w: %v", ErrFontResolution, err)}, nil
}

func loadNamedFont(name string) (*opentype.Font, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

func newFaces(f *opentype.Font, nameSize, roleSize int) (faces, error) {
	nameFace, err := newFace(f, nameSize)
	if err != nil {
		return faces{}, err
	}
	roleFace, err := newFace(f, roleSize)
	if err != nil {
		nameFace.Close()
		return faces{}, err
	}
	return faces{name: nameFace, role: roleFace}, nil
}

// Sizes are pixels: at 72 DPI one point is one pixel.
func newFace(f *opentype.Font, size int) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
