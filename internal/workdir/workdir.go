// Package workdir manages the benchmark working directory as a scoped
// resource. The tree is created fresh for a run and removed, after an
// interactive confirmation, when the run fails.
package workdir

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Dir is the working directory of a single benchmark run.
type Dir struct {
	Path string

	in  *bufio.Reader
	out io.Writer
}

// New returns a Dir rooted at path. Confirmation prompts are written to out
// and answered from in.
func New(path string, in io.Reader, out io.Writer) *Dir {
	return &Dir{
		Path: path,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Create makes the working directory and the given subdirectories. A
// directory left over from an earlier run must be removed first; the removal
// is prompt-gated and declining aborts the run.
func (d *Dir) Create(subdirs ...string) error {
	_, err := os.Stat(d.Path)
	switch {
	case err == nil:
		ok, promptErr := d.confirm(fmt.Sprintf("%s exists from a previous run, remove it?", d.Path))
		if promptErr != nil {
			return promptErr
		}
		if !ok {
			return errors.Errorf("working directory %s already exists", d.Path)
		}
		if err := os.RemoveAll(d.Path); err != nil {
			return errors.Wrapf(err, "unable to remove %s", d.Path)
		}
	case !os.IsNotExist(err):
		return errors.Wrapf(err, "unable to stat %s", d.Path)
	}

	for _, sub := range append([]string{""}, subdirs...) {
		path := filepath.Join(d.Path, sub)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return errors.Wrapf(err, "unable to create %s", path)
		}
	}

	return nil
}

// Join resolves a path inside the working directory.
func (d *Dir) Join(elems ...string) string {
	return filepath.Join(append([]string{d.Path}, elems...)...)
}

// Discard removes the working directory after a failed run. The removal is
// confirmed first; declining keeps the tree for inspection.
func (d *Dir) Discard() error {
	if _, err := os.Stat(d.Path); os.IsNotExist(err) {
		return nil
	}

	ok, err := d.confirm(fmt.Sprintf("remove the partial working directory %s?", d.Path))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(d.out, "keeping %s\n", d.Path)

		return nil
	}

	if err := os.RemoveAll(d.Path); err != nil {
		return errors.Wrapf(err, "unable to remove %s", d.Path)
	}

	return nil
}

// confirm asks a yes/no question. An empty answer or a closed input stream
// counts as no.
func (d *Dir) confirm(question string) (bool, error) {
	fmt.Fprintf(d.out, "%s [y/N] ", question)

	line, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, "unable to read confirmation")
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes", nil
}
