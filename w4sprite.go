/*
Package w4sprite converts directory trees of indexed-color images into
WASM-4 sprite data and the Rust source code declaring it.

Each directory becomes a module named after it and each image becomes a set
of constants named after its file stem, so the generated namespaces mirror
the layout of the asset tree. Scanning the tree is serial so that name
collisions are reported deterministically; decoding and packing the images
happens concurrently afterwards.
*/
package w4sprite

import (
	"log/slog"
	"runtime"
)

// Generator converts an asset directory into a module tree.
type Generator struct {
	logger  *slog.Logger
	workers int
}

// New returns a Generator logging to logger, which may be nil to discard
// logs. Up to workers images are decoded and packed at once; values below
// one select one worker per CPU.
func New(logger *slog.Logger, workers int) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	return &Generator{
		logger:  logger,
		workers: workers,
	}
}
