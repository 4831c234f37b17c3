/*
Package sprite implements an encoder and decoder for WASM-4 sprite data.

A sprite stores one palette index per pixel at either one or two bits per
pixel, chosen from the size of the source palette: up to two colors pack at
one bit per pixel, up to four at two bits. Larger palettes cannot be
represented.

Pixels pack most significant bits first and every row starts on a fresh
byte, with any unused low-order bits in the final byte of a row left zero.
The packed data is therefore exactly height*ceil(width*depth/8) bytes and
is paired with the BLIT_1BPP or BLIT_2BPP flag value that tells the console
how to read it back.
*/
package sprite

import "fmt"

// Depth is the number of bits encoding one pixel.
type Depth int

const (
	Depth1BPP Depth = 1
	Depth2BPP Depth = 2
)

const (
	blit1BPP = 0
	blit2BPP = 1
)

// DepthFor returns the smallest depth able to encode every index of a
// palette with the given number of colors.
func DepthFor(colors int) (Depth, error) {
	switch {
	case colors <= 2:
		return Depth1BPP, nil
	case colors <= 4:
		return Depth2BPP, nil
	default:
		return 0, &PaletteSizeError{Colors: colors}
	}
}

// Flags returns the blit flag value identifying the depth to the console.
func (d Depth) Flags() uint32 {
	if d == Depth2BPP {
		return blit2BPP
	}
	return blit1BPP
}

// String returns the name of the matching blit flag constant.
func (d Depth) String() string {
	if d == Depth2BPP {
		return "BLIT_2BPP"
	}
	return "BLIT_1BPP"
}

// pixels per byte at this depth
func (d Depth) pixels() int {
	return 8 / int(d)
}

// PaletteSizeError reports a palette with more colors than the deepest
// supported depth can encode.
type PaletteSizeError struct {
	Colors int
}

func (e *PaletteSizeError) Error() string {
	return fmt.Sprintf("sprite: palette has %d colors, at most 4 can be encoded", e.Colors)
}

// Sprite is an encoded image. It is immutable once created.
type Sprite struct {
	width, height int
	depth         Depth
	data          []byte
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.height
}

// Depth returns the number of bits encoding one pixel.
func (s *Sprite) Depth() Depth {
	return s.depth
}

// Flags returns the blit flag value matching the sprite depth.
func (s *Sprite) Flags() uint32 {
	return s.depth.Flags()
}

// Data returns the packed pixel data.
func (s *Sprite) Data() []byte {
	return s.data
}

// bytes per packed row
func (s *Sprite) stride() int {
	ppb := s.depth.pixels()
	return (s.width + ppb - 1) / ppb
}
