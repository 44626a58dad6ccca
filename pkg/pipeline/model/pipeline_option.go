package model

import "time"

// PipelineOption defines the lifecycle hooks of a pipeline option.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error
	// PrepareStep runs when a step is registered, before the pipeline starts.
	PrepareStep(parentStep, step *StepInfo) error
	// OnStepStart runs right before a step executes.
	OnStepStart(step *StepInfo) error
	// OnStepDone runs after a step finished, with the error it returned, if any.
	OnStepDone(step *StepInfo, elapsed time.Duration, stepErr error) error
	// Finish runs after the pipeline is finished, on success and on failure.
	Finish() error
}
