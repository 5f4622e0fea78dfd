package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	imagepkg "github.com/youruser/imprint/internal/image"
	"github.com/youruser/imprint/internal/util"
)

type renderOptions struct {
	photo  string
	name   string
	role   string
	out    string
	layout imagepkg.Layout
}

// validateLayout applies the same ranges as the editor controls.
func validateLayout(l imagepkg.Layout) error {
	switch {
	case l.Scale < 0.5 || l.Scale > 4:
		return fmt.Errorf("scale %v out of range 0.5..4", l.Scale)
	case l.OffsetX < -400 || l.OffsetX > 400:
		return fmt.Errorf("offset-x %d out of range -400..400", l.OffsetX)
	case l.OffsetY < -400 || l.OffsetY > 400:
		return fmt.Errorf("offset-y %d out of range -400..400", l.OffsetY)
	case l.Rotation < 0 || l.Rotation > 360:
		return fmt.Errorf("rotation %d out of range 0..360", l.Rotation)
	case l.NameFontSize < 20 || l.NameFontSize > 150:
		return fmt.Errorf("name-size %d out of range 20..150", l.NameFontSize)
	case l.RoleFontSize < 15 || l.RoleFontSize > 100:
		return fmt.Errorf("role-size %d out of range 15..100", l.RoleFontSize)
	}
	return nil
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{layout: imagepkg.DefaultLayout()}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a poster to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if err := validateLayout(opts.layout); err != nil {
				return err
			}
			cfg, err := root.load()
			if err != nil {
				return err
			}

			f, err := os.Open(opts.photo)
			if err != nil {
				return err
			}
			defer f.Close()

			composer := cfg.Composer()
			composer.Logger = logger
			res, err := composer.Compose(f, imagepkg.TextFields{Name: opts.name, Role: opts.role}, opts.layout)
			if err != nil {
				return err
			}
			b, err := imagepkg.EncodePNG(res.Image)
			if err != nil {
				return err
			}

			if err := util.EnsureDir(opts.out); err != nil {
				return err
			}
			path := filepath.Join(opts.out, imagepkg.Filename(cfg.FilenamePrefix, opts.name))
			if err := os.WriteFile(path, b, 0o644); err != nil {
				return err
			}
			logger.Info("wrote poster", "path", path, "warnings", len(res.Warnings))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&opts.photo, "photo", "", "headshot image file")
	fl.StringVar(&opts.name, "name", "", "name, printed upper-case")
	fl.StringVar(&opts.role, "role", "", "role printed under the name")
	fl.StringVarP(&opts.out, "out", "o", ".", "output directory")
	fl.Float64Var(&opts.layout.Scale, "scale", opts.layout.Scale, "photo zoom (0.5-4)")
	fl.IntVar(&opts.layout.OffsetX, "offset-x", 0, "move photo left/right in pixels")
	fl.IntVar(&opts.layout.OffsetY, "offset-y", 0, "move photo up/down in pixels")
	fl.IntVar(&opts.layout.Rotation, "rotation", 0, "rotate photo counter-clockwise, degrees")
	fl.IntVar(&opts.layout.NameFontSize, "name-size", opts.layout.NameFontSize, "name font size")
	fl.IntVar(&opts.layout.RoleFontSize, "role-size", opts.layout.RoleFontSize, "role font size")
	cobra.CheckErr(cmd.MarkFlagRequired("photo"))
	cobra.CheckErr(cmd.MarkFlagRequired("name"))
	return cmd
}
