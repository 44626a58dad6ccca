// Package cli parses the benchmark's command line.
package cli

import (
	"fmt"
	"io"
)

// ExitError is an error with a specific process exit code attached.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string { return e.Message }

const usage = `hp35-benchmark - reproduce the HP35 dihedral-PCA clustering benchmark.

The benchmark checks the host toolchain, builds the external analysis tools,
downloads the HP35 trajectory, and runs the dPCA+/clustering stage chain in a
fresh ./hp35-benchmark working directory.

Usage:
  hp35-benchmark [options]

Options:
  -h    Show this help and exit.
  -v    Increase verbosity. May be repeated: -v streams tool output and
        enables debug logs, -v -v additionally makes the clustering tool
        itself verbose.
`

// Parse handles args. It returns the verbosity counter and whether the
// caller should exit cleanly without running the benchmark. Anything other
// than -h and -v is rejected with an ExitError carrying exit code 1.
func Parse(args []string, out io.Writer) (verbosity int, shouldExit bool, err error) {
	for _, arg := range args {
		switch arg {
		case "-h":
			fmt.Fprint(out, usage)

			return 0, true, nil
		case "-v":
			verbosity++
		default:
			return 0, false, &ExitError{
				Code:    1,
				Message: fmt.Sprintf("unknown argument %q", arg),
			}
		}
	}

	return verbosity, false, nil
}
