/*
Package rust renders sprite module trees as Rust source code.

The output is a tree of pub mod blocks mirroring the module tree, declaring
four constants per sprite: the width and height in pixels, the blit flags
the WASM-4 framebuffer calls expect, and the packed sprite data itself as a
fixed-size byte array. Module names that collide with a Rust keyword are
escaped, either as raw identifiers or with an underscore suffix.
*/
package rust

import "fmt"

// ByteFormat selects how sprite data bytes are written.
type ByteFormat int

const (
	// Hex writes bytes as 0x00 literals.
	Hex ByteFormat = iota
	// Binary writes bytes as 0b00000000 literals which, at one bit per
	// pixel, read almost like the image itself.
	Binary
)

// ParseByteFormat returns the ByteFormat named by s.
func ParseByteFormat(s string) (ByteFormat, error) {
	switch s {
	case "hex":
		return Hex, nil
	case "binary", "bin":
		return Binary, nil
	default:
		return 0, fmt.Errorf("rust: unknown byte format %q", s)
	}
}

// KeywordPolicy selects how module names colliding with a Rust keyword are
// escaped.
type KeywordPolicy int

const (
	// RawIdent renders a colliding name as a raw identifier, r#name. The
	// few keywords that cannot be raw identifiers fall back to Suffix.
	RawIdent KeywordPolicy = iota
	// Suffix appends an underscore to a colliding name.
	Suffix
)

// ParseKeywordPolicy returns the KeywordPolicy named by s.
func ParseKeywordPolicy(s string) (KeywordPolicy, error) {
	switch s {
	case "raw":
		return RawIdent, nil
	case "suffix":
		return Suffix, nil
	default:
		return 0, fmt.Errorf("rust: unknown keyword policy %q", s)
	}
}

// Strict and reserved keywords of the 2018 edition. Module names are
// already lower case so the comparison is direct.
var keywords = map[string]bool{
	"abstract": true, "as": true, "async": true, "await": true,
	"become": true, "box": true, "break": true, "const": true,
	"continue": true, "crate": true, "do": true, "dyn": true,
	"else": true, "enum": true, "extern": true, "false": true,
	"final": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true,
	"macro": true, "match": true, "mod": true, "move": true,
	"mut": true, "override": true, "priv": true, "pub": true,
	"ref": true, "return": true, "self": true, "static": true,
	"struct": true, "super": true, "trait": true, "true": true,
	"try": true, "type": true, "typeof": true, "unsafe": true,
	"unsized": true, "use": true, "virtual": true, "where": true,
	"while": true, "yield": true,
}

// Keywords that cannot appear as raw identifiers.
var noRaw = map[string]bool{
	"crate": true,
	"self":  true,
	"super": true,
}

func (e *Encoder) escape(name string) string {
	if !keywords[name] {
		return name
	}
	if e.Keywords == RawIdent && !noRaw[name] {
		return "r#" + name
	}
	return name + "_"
}
