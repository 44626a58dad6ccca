package command_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moldyn/HP35-Benchmark/internal/command"
	"github.com/moldyn/HP35-Benchmark/pkg/pipeline"
)

func TestRunPropagatesExitStatus(t *testing.T) {
	t.Parallel()

	runner := &command.Runner{}
	err := runner.Run(context.Background(), "sh", "-c", "exit 7")
	require.Error(t, err)
	assert.Equal(t, 7, pipeline.Status(err, 1))
}

func TestRunStreamsOutput(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	runner := &command.Runner{Stdout: &stdout, Stderr: &stderr}
	err := runner.Run(context.Background(), "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestRunMissingCommand(t *testing.T) {
	t.Parallel()

	runner := &command.Runner{}
	err := runner.Run(context.Background(), "definitely-not-a-command-on-path")
	require.Error(t, err)
	// No exit status exists for a command that never started.
	assert.Equal(t, 1, pipeline.Status(err, 1))
}

func TestOutput(t *testing.T) {
	t.Parallel()

	runner := &command.Runner{}
	out, err := runner.Output(context.Background(), "sh", "-c", "echo release 9.2")
	require.NoError(t, err)
	assert.Equal(t, "release 9.2\n", out)
}
