package pipeline

import (
	"context"

	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/model"
)

// RunFn is the work performed by a single step.
type RunFn func(ctx context.Context) error

// Step is one named unit of work inside a stage.
type Step struct {
	Details *model.StepInfo
	run     RunFn
}

// NewStep creates a step that executes run.
func NewStep(name string, run RunFn) *Step {
	return &Step{
		Details: &model.StepInfo{Name: name},
		run:     run,
	}
}
