// Command hp35-benchmark reproduces the HP35 dihedral-PCA clustering
// benchmark in a fresh working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/moldyn/HP35-Benchmark/internal/benchmark"
	"github.com/moldyn/HP35-Benchmark/internal/cli"
	"github.com/moldyn/HP35-Benchmark/pkg/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 on success, the failing step's exit
// status otherwise.
func run(args []string, stdout, stderr io.Writer) int {
	verbosity, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)

		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		return 1
	}
	if shouldExit {
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bench := benchmark.New(benchmark.Config{
		Verbosity: verbosity,
		Stdout:    stdout,
		Stderr:    stderr,
	})

	if err := bench.Run(ctx); err != nil {
		fmt.Fprintln(stderr, err)

		return pipeline.Status(err, 1)
	}

	return 0
}
