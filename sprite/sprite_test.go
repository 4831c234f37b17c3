package sprite

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaletted(w, h, colors int, pix []uint8) *image.Paletted {
	p := make(color.Palette, colors)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i * 60)}
	}

	m := image.NewPaletted(image.Rect(0, 0, w, h), p)
	copy(m.Pix, pix)

	return m
}

func TestDepthFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		colors int
		depth  Depth
		err    bool
	}{
		{0, Depth1BPP, false},
		{1, Depth1BPP, false},
		{2, Depth1BPP, false},
		{3, Depth2BPP, false},
		{4, Depth2BPP, false},
		{5, 0, true},
		{256, 0, true},
	}

	for _, tt := range tests {
		d, err := DepthFor(tt.colors)
		if tt.err {
			var perr *PaletteSizeError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.colors, perr.Colors)
		} else {
			require.NoError(t, err)
			assert.Equal(t, tt.depth, d)
		}
	}
}

func TestDepth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0), Depth1BPP.Flags())
	assert.Equal(t, uint32(1), Depth2BPP.Flags())
	assert.Equal(t, "BLIT_1BPP", Depth1BPP.String())
	assert.Equal(t, "BLIT_2BPP", Depth2BPP.String())
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		w, h   int
		colors int
		pix    []uint8
		depth  Depth
		flags  uint32
		data   []byte
	}{
		{
			name:   "one bit per pixel",
			w:      2,
			h:      2,
			colors: 2,
			pix:    []uint8{0, 1, 1, 0},
			depth:  Depth1BPP,
			flags:  0,
			data:   []byte{0x40, 0x80},
		},
		{
			name:   "one bit per pixel full byte",
			w:      8,
			h:      1,
			colors: 2,
			pix:    []uint8{1, 1, 0, 0, 1, 0, 1, 0},
			depth:  Depth1BPP,
			flags:  0,
			data:   []byte{0xca},
		},
		{
			name:   "one bit per pixel padded rows",
			w:      3,
			h:      2,
			colors: 2,
			pix:    []uint8{1, 0, 1, 0, 1, 1},
			depth:  Depth1BPP,
			flags:  0,
			data:   []byte{0xa0, 0x60},
		},
		{
			name:   "two bits per pixel padded rows",
			w:      5,
			h:      2,
			colors: 4,
			pix:    []uint8{0, 1, 2, 3, 0, 3, 2, 1, 0, 1},
			depth:  Depth2BPP,
			flags:  1,
			data:   []byte{0x1b, 0x00, 0xe4, 0x40},
		},
		{
			name:   "three colors still need two bits",
			w:      4,
			h:      1,
			colors: 3,
			pix:    []uint8{2, 1, 0, 2},
			depth:  Depth2BPP,
			flags:  1,
			data:   []byte{0x92},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := New(newPaletted(tt.w, tt.h, tt.colors, tt.pix))
			require.NoError(t, err)

			assert.Equal(t, tt.w, s.Width())
			assert.Equal(t, tt.h, s.Height())
			assert.Equal(t, tt.depth, s.Depth())
			assert.Equal(t, tt.flags, s.Flags())
			assert.Equal(t, tt.data, s.Data())
		})
	}
}

// The packed size must only ever depend on the dimensions and the depth,
// with each row padded to a whole byte.
func TestDataLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		w, h   int
		colors int
		length int
	}{
		{1, 1, 2, 1},
		{8, 3, 2, 3},
		{9, 2, 2, 4},
		{17, 5, 2, 15},
		{3, 3, 3, 3},
		{4, 1, 4, 1},
		{5, 2, 4, 4},
		{320, 32, 2, 1280},
	}

	for _, tt := range tests {
		s, err := New(newPaletted(tt.w, tt.h, tt.colors, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.length, len(s.Data()))
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, colors := range []int{2, 4} {
		for _, size := range []image.Point{{1, 1}, {3, 3}, {8, 2}, {9, 2}, {20, 7}} {
			m := newPaletted(size.X, size.Y, colors, nil)
			for y := 0; y < size.Y; y++ {
				for x := 0; x < size.X; x++ {
					m.SetColorIndex(x, y, uint8((x*7+y*3)%colors))
				}
			}

			s, err := New(m)
			require.NoError(t, err)

			d := s.Image(m.Palette)
			for y := 0; y < size.Y; y++ {
				for x := 0; x < size.X; x++ {
					assert.Equal(t, m.ColorIndexAt(x, y), s.At(x, y))
					assert.Equal(t, m.ColorIndexAt(x, y), d.ColorIndexAt(x, y))
				}
			}
		}
	}
}

// Images don't have to have their top-left corner at (0, 0).
func TestOffsetBounds(t *testing.T) {
	t.Parallel()

	p := color.Palette{color.Black, color.White}

	m := image.NewPaletted(image.Rect(2, 3, 4, 5), p)
	m.SetColorIndex(3, 3, 1)
	m.SetColorIndex(2, 4, 1)

	s, err := New(m)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Width())
	assert.Equal(t, 2, s.Height())
	assert.Equal(t, []byte{0x40, 0x80}, s.Data())
}

func TestNotIndexed(t *testing.T) {
	t.Parallel()

	_, err := New(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	assert.ErrorIs(t, err, ErrNotIndexed)
}

func TestIndexOutOfRange(t *testing.T) {
	t.Parallel()

	// Two colors selects one bit per pixel, the stray index 2 cannot fit
	m := newPaletted(2, 2, 2, []uint8{0, 1, 2, 0})

	_, err := New(m)

	var perr *PixelRangeError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 0, perr.X)
	assert.Equal(t, 1, perr.Y)
	assert.Equal(t, uint8(2), perr.Index)
	assert.Equal(t, Depth1BPP, perr.Depth)
}

func TestPaletteTooLarge(t *testing.T) {
	t.Parallel()

	_, err := New(newPaletted(1, 1, 5, nil))

	var perr *PaletteSizeError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 5, perr.Colors)
	assert.False(t, errors.Is(err, ErrNotIndexed))
}
