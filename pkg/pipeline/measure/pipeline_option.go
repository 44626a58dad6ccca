package measure

import (
	"time"

	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error { return nil }

func (pm *pipelineMeasure) PrepareStep(parentStep, step *model.StepInfo) error {
	pm.AddMetric(step.Name)

	return nil
}

func (pm *pipelineMeasure) OnStepStart(step *model.StepInfo) error { return nil }

func (pm *pipelineMeasure) OnStepDone(step *model.StepInfo, elapsed time.Duration, stepErr error) error {
	pm.AddMetric(step.Name).SetDuration(elapsed)

	return nil
}

func (pm *pipelineMeasure) Finish() error { return nil }

// PipelineMeasure records the wall-clock duration of every step on msr.
func PipelineMeasure(msr Measure) model.PipelineOption {
	return &pipelineMeasure{msr}
}
