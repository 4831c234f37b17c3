package w4sprite

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bodgit/w4sprite/sprite"
)

// DuplicateError reports two sibling entries whose names sanitize to the
// same identifier.
type DuplicateError struct {
	Dir string
	Key string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("w4sprite: duplicate identifier %q in %s", e.Key, e.Dir)
}

// Node is one entry of a module tree, either a *Module or a *Leaf.
type Node interface {
	// key is the sanitized lower case name nodes sort and collide on.
	key() string
}

// Module is a namespace holding sprites and nested modules, derived from
// one directory of the scanned tree. The root module has no name. Children
// stay sorted by their sanitized names so emission order never depends on
// how the filesystem enumerates entries.
type Module struct {
	name     string
	children []Node
}

// Name returns the sanitized module name, empty for the root.
func (m *Module) Name() string {
	return m.name
}

// Children returns the child nodes in emission order.
func (m *Module) Children() []Node {
	return m.children
}

func (m *Module) key() string {
	return m.name
}

// add inserts n in order. Modules and sprites share one name space per
// module and collide case-insensitively, which the lower case keys already
// guarantee.
func (m *Module) add(dir string, n Node) error {
	i := sort.Search(len(m.children), func(i int) bool {
		return m.children[i].key() >= n.key()
	})

	if i < len(m.children) && m.children[i].key() == n.key() {
		return &DuplicateError{Dir: dir, Key: n.key()}
	}

	m.children = append(m.children, nil)
	copy(m.children[i+1:], m.children[i:])
	m.children[i] = n

	return nil
}

// Walk visits every node below m depth-first in emission order.
func (m *Module) Walk(fn func(Node)) {
	for _, n := range m.children {
		fn(n)
		if sub, ok := n.(*Module); ok {
			sub.Walk(fn)
		}
	}
}

// SourcePaths returns the source image path of every sprite in emission
// order, the watch list a build script turns into rerun rules.
func (m *Module) SourcePaths() []string {
	var paths []string

	m.Walk(func(n Node) {
		if l, ok := n.(*Leaf); ok {
			paths = append(paths, l.path)
		}
	})

	return paths
}

// Flatten returns a new tree with every sprite hoisted into the root
// module. Hoisting can introduce collisions between sprites that distinct
// directories kept apart, reported just like sibling collisions.
func (m *Module) Flatten() (*Module, error) {
	flat := &Module{}

	var ferr error
	m.Walk(func(n Node) {
		if ferr != nil {
			return
		}
		if l, ok := n.(*Leaf); ok {
			ferr = flat.add(filepath.Dir(l.path), l)
		}
	})
	if ferr != nil {
		return nil, ferr
	}

	return flat, nil
}

// Leaf is one converted sprite.
type Leaf struct {
	name   string
	ident  string
	path   string
	sprite *sprite.Sprite
}

// Identifier returns the constant-case prefix of the generated constants.
func (l *Leaf) Identifier() string {
	return l.ident
}

// SourcePath returns the path of the image the sprite was converted from.
func (l *Leaf) SourcePath() string {
	return l.path
}

// Sprite returns the encoded sprite.
func (l *Leaf) Sprite() *sprite.Sprite {
	return l.sprite
}

func (l *Leaf) key() string {
	return l.name
}
