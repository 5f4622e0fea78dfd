package imagepkg

import "errors"

var (
	// ErrTemplateNotFound is returned when the poster template is missing or
	// cannot be decoded. Composition stops and nothing is produced.
	ErrTemplateNotFound = errors.New("poster template not found")

	// ErrPhotoDecode is returned when the uploaded photo bytes are not an image.
	ErrPhotoDecode = errors.New("photo could not be decoded")

	// ErrFontResolution is reported as a warning when the requested font is
	// unavailable and the built-in font was used instead.
	ErrFontResolution = errors.New("font not found, using default")
)
