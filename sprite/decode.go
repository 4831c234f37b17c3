package sprite

import (
	"image"
	"image/color"
)

// At returns the palette index of the pixel at (x, y).
func (s *Sprite) At(x, y int) uint8 {
	var (
		ppb   = s.depth.pixels()
		shift = 8 - int(s.depth) - x%ppb*int(s.depth)
		mask  = uint8(1<<s.depth - 1)
	)

	return s.data[y*s.stride()+x/ppb] >> shift & mask
}

// Image reconstructs the indexed image the sprite encodes. The palette is
// supplied by the caller as it is not part of the encoded form.
func (s *Sprite) Image(p color.Palette) *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, s.width, s.height), p)

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			m.SetColorIndex(x, y, s.At(x, y))
		}
	}

	return m
}
