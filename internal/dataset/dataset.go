// Package dataset prepares the benchmark trajectory archive for analysis.
package dataset

import (
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Decompress inflates the gzip archive src into dst. The archive itself is
// kept so reruns do not have to download it again.
func Decompress(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", src)
	}
	defer in.Close()

	zrd, err := gzip.NewReader(in)
	if err != nil {
		return errors.Wrapf(err, "unable to read archive %s", src)
	}
	defer zrd.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", dst)
	}

	if _, err := io.Copy(out, zrd); err != nil {
		out.Close()

		return errors.Wrapf(err, "unable to decompress %s", src)
	}

	return errors.Wrapf(out.Close(), "unable to close %s", dst)
}
