package clargs

import "io"

// State is passed to the exec function of [ParseAndRun].
type State struct {
	// Args contains the non-key arguments left after parsing.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}
