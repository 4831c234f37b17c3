package w4sprite

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Register the image formats sprites are converted from
	_ "image/gif"
	_ "image/png"

	"github.com/bodgit/w4sprite/ident"
	"github.com/bodgit/w4sprite/sprite"
	"golang.org/x/sync/errgroup"
)

// Extensions recognized as sprite sources. Anything else is skipped.
var imageExts = map[string]bool{
	".gif": true,
	".png": true,
}

// ReadSprite decodes the image at path and packs it as a sprite.
func ReadSprite(path string) (*sprite.Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("w4sprite: decode %s: %w", path, err)
	}

	s, err := sprite.New(m)
	if err != nil {
		return nil, fmt.Errorf("w4sprite: %s: %w", path, err)
	}

	return s, nil
}

// Build scans the directory tree rooted at dir and converts every image in
// it, returning the nameless root module. The first error aborts the whole
// build.
func (g *Generator) Build(ctx context.Context, dir string) (*Module, error) {
	root := &Module{}

	leaves, err := g.scan(dir, root)
	if err != nil {
		return nil, err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)

	for _, l := range leaves {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s, err := ReadSprite(l.path)
			if err != nil {
				return err
			}
			l.sprite = s

			g.logger.Debug("converted image",
				"path", l.path,
				"identifier", l.ident,
				"width", s.Width(),
				"height", s.Height(),
				"flags", s.Flags(),
				"bytes", len(s.Data()))

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return root, nil
}

// scan builds the namespace skeleton below dir, returning the leaves that
// still need their images converted. Files that are not recognized images
// are ignored and directories that turn out to hold no sprites at all are
// left out of the tree entirely.
func (g *Generator) scan(dir string, parent *Module) ([]*Leaf, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var leaves []*Leaf

	for _, entry := range entries {
		name := entry.Name()

		// Ignore any hidden files or directories, otherwise we end up
		// fighting with things like Spotlight, etc.
		if name[0] == '.' {
			continue
		}

		path := filepath.Join(dir, name)

		if entry.IsDir() {
			key, err := ident.Namespace(name)
			if err != nil {
				return nil, fmt.Errorf("w4sprite: %s: %w", path, err)
			}

			sub := &Module{name: key}

			children, err := g.scan(path, sub)
			if err != nil {
				return nil, err
			}

			if len(children) == 0 {
				g.logger.Debug("no sprites", "path", path)
				continue
			}

			if err := parent.add(dir, sub); err != nil {
				return nil, err
			}

			leaves = append(leaves, children...)

			continue
		}

		if !imageExts[strings.ToLower(filepath.Ext(name))] {
			g.logger.Debug("skipping", "path", path)
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))

		id, err := ident.Constant(stem)
		if err != nil {
			return nil, fmt.Errorf("w4sprite: %s: %w", path, err)
		}

		key, err := ident.Namespace(stem)
		if err != nil {
			return nil, fmt.Errorf("w4sprite: %s: %w", path, err)
		}

		l := &Leaf{name: key, ident: id, path: path}

		if err := parent.add(dir, l); err != nil {
			return nil, err
		}

		leaves = append(leaves, l)
	}

	return leaves, nil
}
