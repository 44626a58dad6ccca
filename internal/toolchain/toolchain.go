// Package toolchain verifies the host build prerequisites and selects the
// host compiler matching the installed CUDA release.
package toolchain

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
)

// Required lists the commands the benchmark expects on PATH.
var Required = []string{"g++", "nvcc", "git", "python3", "cmake"}

// Host compilers matching the CUDA releases the clustering tool supports.
const (
	HostCompilerCUDA9 = "/usr/bin/g++-6"
	HostCompilerCUDA8 = "/usr/bin/g++-5"

	// CUDA releases from 9.0 on require the newer host compiler.
	compilerCutover = "v9.0"
)

// Prober runs version queries against the host toolchain.
type Prober interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// CheckRequirements resolves every required command with look, typically
// exec.LookPath.
func CheckRequirements(look func(name string) (string, error)) error {
	for _, name := range Required {
		if _, err := look(name); err != nil {
			return errors.Wrapf(err, "required command %q not found", name)
		}
	}

	return nil
}

// CUDARelease extracts the release number, for example "9.2", from the
// output of `nvcc --version`.
func CUDARelease(out string) (string, error) {
	// nvcc prints a line of the form
	// "Cuda compilation tools, release 9.2, V9.2.148".
	for _, line := range strings.Split(out, "\n") {
		idx := strings.Index(line, "release ")
		if idx < 0 {
			continue
		}

		release := line[idx+len("release "):]
		if cut := strings.IndexAny(release, ", \t"); cut >= 0 {
			release = release[:cut]
		}
		if release != "" {
			return release, nil
		}
	}

	return "", errors.Errorf("no release number in nvcc output %q", strings.TrimSpace(out))
}

// SelectHostCompiler maps a CUDA release to the host compiler used to build
// the clustering tool. The comparison is semantic, not textual, so "10.0"
// sorts above "9.2".
func SelectHostCompiler(cudaRelease string) (string, error) {
	v := "v" + strings.TrimPrefix(cudaRelease, "v")
	if !semver.IsValid(v) {
		return "", errors.Errorf("unrecognized CUDA release %q", cudaRelease)
	}

	if semver.Compare(v, compilerCutover) >= 0 {
		return HostCompilerCUDA9, nil
	}

	return HostCompilerCUDA8, nil
}

// DetectHostCompiler probes nvcc and returns the host compiler to build the
// clustering tool with.
func DetectHostCompiler(ctx context.Context, prober Prober) (string, error) {
	out, err := prober.Output(ctx, "nvcc", "--version")
	if err != nil {
		return "", errors.Wrap(err, "unable to query nvcc version")
	}

	release, err := CUDARelease(out)
	if err != nil {
		return "", err
	}

	return SelectHostCompiler(release)
}
