package sprite

import (
	"errors"
	"fmt"
	"image"
)

// ErrNotIndexed is returned when an image does not use indexed color.
var ErrNotIndexed = errors.New("sprite: image is not indexed color")

// PixelRangeError reports a pixel whose palette index cannot be encoded at
// the chosen depth.
type PixelRangeError struct {
	X, Y  int
	Index uint8
	Depth Depth
}

func (e *PixelRangeError) Error() string {
	return fmt.Sprintf("sprite: pixel (%d,%d) has palette index %d which cannot be encoded at %d bits per pixel", e.X, e.Y, e.Index, int(e.Depth))
}

// New encodes m, which must be an indexed-color image. The depth is chosen
// from the palette size alone so that any index the palette could produce
// will fit, not from the indices the image happens to use.
func New(m image.Image) (*Sprite, error) {
	pm, ok := m.(*image.Paletted)
	if !ok {
		return nil, ErrNotIndexed
	}

	depth, err := DepthFor(len(pm.Palette))
	if err != nil {
		return nil, err
	}

	e := encoder{m: pm, depth: depth}

	return e.encode()
}

type encoder struct {
	m     *image.Paletted
	depth Depth
}

func (e *encoder) encode() (*Sprite, error) {
	var (
		b = e.m.Bounds()
		s = &Sprite{
			width:  b.Dx(),
			height: b.Dy(),
			depth:  e.depth,
		}
		stride = s.stride()
		ppb    = e.depth.pixels()
		max    = uint8(1<<e.depth - 1)
	)

	s.data = make([]byte, s.height*stride)

	for y := 0; y < s.height; y++ {
		row := s.data[y*stride : (y+1)*stride]
		for x := 0; x < s.width; x++ {
			index := e.m.ColorIndexAt(b.Min.X+x, b.Min.Y+y)
			if index > max {
				return nil, &PixelRangeError{X: x, Y: y, Index: index, Depth: e.depth}
			}
			row[x/ppb] |= index << (8 - int(e.depth) - x%ppb*int(e.depth))
		}
	}

	return s, nil
}
