package benchmark

import (
	"fmt"
	"io"
	"time"

	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/model"
)

// progress prints a header whenever the run enters a new stage, and a
// warning when a step fails.
type progress struct {
	out   io.Writer
	stage string
}

func newProgress(out io.Writer) *progress {
	return &progress{out: out}
}

func (p *progress) New() error { return nil }

func (p *progress) PrepareStep(parentStep, step *model.StepInfo) error { return nil }

func (p *progress) OnStepStart(step *model.StepInfo) error {
	if step.Stage != p.stage {
		p.stage = step.Stage
		fmt.Fprintf(p.out, "\n=== %s ===\n", step.Stage)
	}

	return nil
}

func (p *progress) OnStepDone(step *model.StepInfo, elapsed time.Duration, stepErr error) error {
	if stepErr != nil {
		fmt.Fprintf(p.out, "step %q failed after %s\n", step.Name, elapsed)
	}

	return nil
}

func (p *progress) Finish() error { return nil }

var _ model.PipelineOption = (*progress)(nil)
