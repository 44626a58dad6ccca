package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/model"
)

// Pipeline is an ordered list of steps executed sequentially.
type Pipeline struct {
	ctx   context.Context
	opts  []model.PipelineOption
	steps []*Step
	last  *model.StepInfo
}

// New creates a new pipeline.
func New(ctx context.Context, opts ...model.PipelineOption) (*Pipeline, error) {
	pipe := &Pipeline{
		ctx:  ctx,
		opts: opts,
		last: model.StartStep,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// AddStage appends steps under a common stage label. Steps run in the order
// they were added, after every step of the preceding stages.
func (p *Pipeline) AddStage(stage string, steps ...*Step) error {
	if p == nil {
		return ErrPipelineMustBeSet
	}

	for _, step := range steps {
		if step == nil {
			return ErrStepMustBeSet
		}
		if step.run == nil {
			return ErrRunFnMustBeSet
		}

		step.Details.Stage = stage
		for _, opt := range p.opts {
			err := opt.PrepareStep(p.last, step.Details)
			if err != nil {
				return errors.Wrapf(err, "unable to prepare step %s", step.Details.Name)
			}
		}

		p.steps = append(p.steps, step)
		p.last = step.Details
	}

	return nil
}

// Run executes every step in order and stops on the first failure. The
// option Finish hooks run on success and on failure alike.
func (p *Pipeline) Run() error {
	var runErr error
	for _, step := range p.steps {
		runErr = p.runStep(step)
		if runErr != nil {
			break
		}
	}

	finishErr := p.finishRun()
	if runErr != nil {
		return runErr
	}

	return finishErr
}

func (p *Pipeline) runStep(step *Step) error {
	for _, opt := range p.opts {
		err := opt.OnStepStart(step.Details)
		if err != nil {
			return errors.Wrapf(err, "unable to start step %s", step.Details.Name)
		}
	}

	start := time.Now()
	err := step.run(p.ctx)
	elapsed := time.Since(start)

	for _, opt := range p.opts {
		hookErr := opt.OnStepDone(step.Details, elapsed, err)
		if hookErr != nil && err == nil {
			err = errors.Wrap(hookErr, "pipeline option")
		}
	}
	if err != nil {
		return errors.Wrap(err, step.Details.Name)
	}

	return nil
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
