// Package command executes the external tools the benchmark drives and
// reports their exit status.
package command

import (
	"context"
	"io"
	"log/slog"
	"os/exec"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/moldyn/HP35-Benchmark/pkg/pipeline"
)

// Runner spawns external commands. Stdout and Stderr receive the streamed
// command output; a nil writer discards the stream.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Log    *slog.Logger
}

// Run executes name with args and waits for it to exit. A failed command is
// reported as a *pipeline.StatusError carrying its exit status.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrapf(err, "unable to open stdout pipe for %s", name)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return errors.Wrapf(err, "unable to open stderr pipe for %s", name)
	}

	r.logger().Debug("running command", "name", name, "args", args)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "unable to start %s", name)
	}

	// Both streams must be drained before Wait closes the pipes.
	grp := errgroup.Group{}
	grp.Go(func() error {
		_, copyErr := io.Copy(writerOrDiscard(r.Stdout), stdout)

		return copyErr
	})
	grp.Go(func() error {
		_, copyErr := io.Copy(writerOrDiscard(r.Stderr), stderr)

		return copyErr
	})

	copyErr := grp.Wait()
	waitErr := cmd.Wait()
	if waitErr != nil {
		status := 1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) && exitErr.ExitCode() > 0 {
			status = exitErr.ExitCode()
		}

		return &pipeline.StatusError{
			Status: status,
			Err:    errors.Wrapf(waitErr, "%s failed", name),
		}
	}
	if copyErr != nil {
		return errors.Wrapf(copyErr, "unable to drain %s output", name)
	}

	return nil
}

// Output executes name with args and returns its standard output. It is
// meant for short version queries.
func (r *Runner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	out, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, "unable to query %s", name)
	}

	return string(out), nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Log == nil {
		return slog.Default()
	}

	return r.Log
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}
