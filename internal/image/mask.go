package imagepkg

import "image"

// circleMask returns a w x h stencil with the inscribed ellipse opaque and
// everything else fully transparent. No anti-aliasing.
func circleMask(w, h int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return m
	}
	rx, ry := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		dy := (float64(y) + 0.5 - ry) / ry
		row := m.Pix[y*m.Stride : y*m.Stride+w]
		for x := range row {
			dx := (float64(x) + 0.5 - rx) / rx
			if dx*dx+dy*dy <= 1 {
				row[x] = 0xff
			}
		}
	}
	return m
}
