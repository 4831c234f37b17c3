package rust

import (
	"fmt"
	"io"
)

// CargoInstructions writes one cargo:rerun-if-changed line per path, the
// directives a build.rs script prints so cargo regenerates sprites when a
// source image changes.
func CargoInstructions(w io.Writer, paths []string) error {
	for _, path := range paths {
		if _, err := fmt.Fprintf(w, "cargo:rerun-if-changed=%s\n", path); err != nil {
			return err
		}
	}

	return nil
}
