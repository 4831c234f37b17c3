package rust

import (
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/w4sprite"
	"github.com/bodgit/w4sprite/sprite"
)

const indent = "    "

// Encoder renders module trees as Rust source. The zero value writes
// hexadecimal bytes and escapes keywords as raw identifiers.
type Encoder struct {
	Format   ByteFormat
	Keywords KeywordPolicy
}

// Encode writes m to w. The nameless root renders its children at the top
// level, every other module becomes a pub mod block.
func (e *Encoder) Encode(w io.Writer, m *w4sprite.Module) error {
	return e.encodeChildren(w, m, 0)
}

// EncodeSprite writes the constants for a single sprite to w, as used for
// one-shot conversions that bypass the module tree.
func (e *Encoder) EncodeSprite(w io.Writer, name string, s *sprite.Sprite) error {
	return e.encodeSprite(w, name, s, 0)
}

func (e *Encoder) encodeChildren(w io.Writer, m *w4sprite.Module, level int) error {
	for _, n := range m.Children() {
		switch n := n.(type) {
		case *w4sprite.Module:
			if err := e.encodeModule(w, n, level); err != nil {
				return err
			}
		case *w4sprite.Leaf:
			if err := e.encodeSprite(w, n.Identifier(), n.Sprite(), level); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Encoder) encodeModule(w io.Writer, m *w4sprite.Module, level int) error {
	p := strings.Repeat(indent, level)

	if _, err := fmt.Fprintf(w, "%spub mod %s {\n", p, e.escape(m.Name())); err != nil {
		return err
	}

	if err := e.encodeChildren(w, m, level+1); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s}\n\n", p)

	return err
}

func (e *Encoder) encodeSprite(w io.Writer, name string, s *sprite.Sprite, level int) error {
	p := strings.Repeat(indent, level)

	if _, err := fmt.Fprintf(w, "%spub const %s_WIDTH: u32 = %d;\n", p, name, s.Width()); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%spub const %s_HEIGHT: u32 = %d;\n", p, name, s.Height()); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%spub const %s_FLAGS: u32 = %d; // %s\n", p, name, s.Flags(), s.Depth()); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%spub const %s: [u8; %d] = [", p, name, len(s.Data())); err != nil {
		return err
	}

	for i, b := range s.Data() {
		sep := ", "
		if i == 0 {
			sep = ""
		}

		var err error
		if e.Format == Binary {
			_, err = fmt.Fprintf(w, "%s0b%08b", sep, b)
		} else {
			_, err = fmt.Fprintf(w, "%s0x%02x", sep, b)
		}
		if err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "];\n\n")

	return err
}
