/*
Package ident maps arbitrary file and directory names to tokens that are
valid identifiers in generated source code.

Two conventions are produced from the same sanitization: namespace names
fold to lower case and constant names to upper case. Every character
outside [A-Za-z0-9_] is replaced with an underscore and a leading digit
gains an underscore prefix, so sanitizing an already sanitized name is a
no-op. Detecting names that collide once sanitized is the caller's job.
*/
package ident

import (
	"errors"
	"strings"
)

// ErrEmpty is returned when there is no name to sanitize.
var ErrEmpty = errors.New("ident: empty identifier")

// Namespace returns the namespace-case form of name, as used for module
// names derived from directories.
func Namespace(name string) (string, error) {
	s, err := sanitize(name)
	if err != nil {
		return "", err
	}
	return strings.ToLower(s), nil
}

// Constant returns the constant-case form of name, as used for declared
// constant prefixes derived from file stems.
func Constant(name string) (string, error) {
	s, err := sanitize(name)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(s), nil
}

func sanitize(name string) (string, error) {
	if name == "" {
		return "", ErrEmpty
	}

	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, name)

	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}

	return s, nil
}
