// Package benchmark assembles the HP35 reproduction pipeline: host checks,
// tool builds, dataset download, and the dPCA+/clustering stage chain.
package benchmark

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// DefaultWorkDir is created below the current directory.
const DefaultWorkDir = "hp35-benchmark"

// Config carries the configuration of one benchmark run.
type Config struct {
	// WorkDir is the root working directory created for this run.
	WorkDir string
	// Verbosity is the -v counter. At 1 the external tools' output is
	// streamed and debug logs are enabled; at 2 the clustering tool itself
	// runs verbose.
	Verbosity int
	// Stdout receives progress headers and the final output path.
	Stdout io.Writer
	// Stderr receives logs and streamed tool output.
	Stderr io.Writer
	// PromptIn answers the destructive-cleanup confirmations.
	PromptIn io.Reader
	// LookPath resolves prerequisite commands; defaults to exec.LookPath.
	LookPath func(name string) (string, error)
	// Log defaults to a text handler on Stderr at a level derived from
	// Verbosity.
	Log *slog.Logger
}

// withDefaults returns a copy of c with every zero-value field filled in.
func (c *Config) withDefaults() *Config {
	cfg := *c
	if cfg.WorkDir == "" {
		cfg.WorkDir = DefaultWorkDir
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.PromptIn == nil {
		cfg.PromptIn = os.Stdin
	}
	if cfg.LookPath == nil {
		cfg.LookPath = exec.LookPath
	}
	if cfg.Log == nil {
		level := slog.LevelInfo
		if cfg.Verbosity >= 1 {
			level = slog.LevelDebug
		}
		cfg.Log = slog.New(slog.NewTextHandler(cfg.Stderr, &slog.HandlerOptions{Level: level}))
	}

	return &cfg
}
