package trajectory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moldyn/HP35-Benchmark/internal/trajectory"
)

func TestRelabelByPopulation(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	src := filepath.Join(tmp, "microstatesFinal")
	// State 2 has 3 frames, state 3 has 2, state 1 has 1.
	require.NoError(t, os.WriteFile(src, []byte("3\n3\n1\n2\n2\n2\n"), 0o644))

	dst, err := trajectory.RelabelByPopulation(src, trajectory.SortedSuffix)
	require.NoError(t, err)
	assert.Equal(t, src+"Sorted", dst)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "2\n2\n3\n1\n1\n1\n", string(got))
}

func TestRelabelByPopulationTies(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	src := filepath.Join(tmp, "microstatesFinal")
	// Equal populations keep the lower original label first.
	require.NoError(t, os.WriteFile(src, []byte("5\n4\n5\n4\n"), 0o644))

	dst, err := trajectory.RelabelByPopulation(src, trajectory.SortedSuffix)
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n2\n1\n", string(got))
}

func TestRelabelByPopulationEmptyInput(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	src := filepath.Join(tmp, "microstatesFinal")
	require.NoError(t, os.WriteFile(src, []byte("\n"), 0o644))

	_, err := trajectory.RelabelByPopulation(src, trajectory.SortedSuffix)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no state labels")
}

func TestRelabelByPopulationBadLabel(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	src := filepath.Join(tmp, "microstatesFinal")
	require.NoError(t, os.WriteFile(src, []byte("1\nnot-a-label\n"), 0o644))

	_, err := trajectory.RelabelByPopulation(src, trajectory.SortedSuffix)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
