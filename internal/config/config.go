// Package config loads imprint.toml. A missing file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	imagepkg "github.com/youruser/imprint/internal/image"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "imprint.toml"

type QR struct {
	Text   string `toml:"text"`
	Size   int    `toml:"size"`
	Margin int    `toml:"margin"`
}

type Config struct {
	Port           string `toml:"port"`
	TemplatePath   string `toml:"template_path"`
	FontName       string `toml:"font_name"`
	FilenamePrefix string `toml:"filename_prefix"`
	QR             QR     `toml:"qr"`
}

func Default() Config {
	return Config{
		Port:           "8080",
		TemplatePath:   "YPG_Conference_Template.png",
		FontName:       imagepkg.DefaultFontName,
		FilenamePrefix: imagepkg.DefaultFilenamePrefix,
		QR:             QR{Size: 120, Margin: 24},
	}
}

// Load reads path over the defaults. Only DefaultPath may be missing; any
// other path must exist. The PORT environment variable, when set, wins over
// the file.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	case err != nil:
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	default:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	return cfg, nil
}

// Composer builds a poster composer from the config.
func (c Config) Composer() *imagepkg.Composer {
	return &imagepkg.Composer{
		TemplatePath: c.TemplatePath,
		FontName:     c.FontName,
		QR: imagepkg.QRBadge{
			Text:   c.QR.Text,
			Size:   c.QR.Size,
			Margin: c.QR.Margin,
		},
	}
}
