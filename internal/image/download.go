package imagepkg

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/youruser/imprint/internal/util"
)

// FetchPhoto downloads photo bytes from an http or https URL. The bytes are
// not decoded here; Compose reports undecodable data as ErrPhotoDecode.
func FetchPhoto(rawURL string) (*bytes.Reader, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("photo url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("photo url: scheme %q not allowed, use http or https", u.Scheme)
	}
	body, err := util.GetBytes(u.String())
	if err != nil {
		return nil, fmt.Errorf("fetch photo: %w", err)
	}
	return bytes.NewReader(body), nil
}
