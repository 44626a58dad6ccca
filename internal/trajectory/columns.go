// Package trajectory implements the native post-processing between the
// external analysis stages: component selection on the projected trajectory
// and population-rank relabeling of the microstate trajectory.
package trajectory

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ProjectionColumns are the dPCA+ components kept for clustering, 1-based.
var ProjectionColumns = []int{1, 2, 3, 4, 5, 7}

const maxLineSize = 1024 * 1024

// SelectColumns copies the given 1-based columns of the whitespace-delimited
// file src into dst, in the given order, one space-separated row per input
// row. Blank lines are skipped.
func SelectColumns(src, dst string, cols []int) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", dst)
	}

	wrt := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, maxLineSize), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		for i, col := range cols {
			if col < 1 || col > len(fields) {
				out.Close()

				return errors.Errorf("line %d of %s has %d columns, need column %d", lineNo, src, len(fields), col)
			}
			if i > 0 {
				wrt.WriteByte(' ')
			}
			wrt.WriteString(fields[col-1])
		}
		wrt.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		out.Close()

		return errors.Wrapf(err, "unable to read %s", src)
	}

	if err := wrt.Flush(); err != nil {
		out.Close()

		return errors.Wrapf(err, "unable to write %s", dst)
	}

	return errors.Wrapf(out.Close(), "unable to close %s", dst)
}
