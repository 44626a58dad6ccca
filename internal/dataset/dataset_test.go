package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moldyn/HP35-Benchmark/internal/dataset"
)

func writeArchive(t *testing.T, path, content string) {
	t.Helper()

	file, err := os.Create(path)
	require.NoError(t, err)

	zwr := gzip.NewWriter(file)
	_, err = zwr.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zwr.Close())
	require.NoError(t, file.Close())
}

func TestDecompressKeepsArchive(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	src := filepath.Join(tmp, "hp35.dihs.gz")
	dst := filepath.Join(tmp, "hp35.dihs")
	writeArchive(t, src, "-2.1 1.3\n-2.0 1.2\n")

	require.NoError(t, dataset.Decompress(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "-2.1 1.3\n-2.0 1.2\n", string(content))
	// The compressed original stays in place.
	assert.FileExists(t, src)
}

func TestDecompressMissingArchive(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	err := dataset.Decompress(filepath.Join(tmp, "missing.gz"), filepath.Join(tmp, "out"))
	assert.Error(t, err)
}

func TestDecompressCorruptArchive(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	src := filepath.Join(tmp, "broken.gz")
	require.NoError(t, os.WriteFile(src, []byte("not gzip data"), 0o644))

	err := dataset.Decompress(src, filepath.Join(tmp, "out"))
	assert.Error(t, err)
}
