package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moldyn/HP35-Benchmark/pkg/pipeline"
	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/model"
)

type spyOption struct {
	newCalls     int
	prepared     []string
	started      []string
	done         []string
	doneErrs     []error
	finishCalls  int
	prepareError error
}

func (s *spyOption) New() error {
	s.newCalls++

	return nil
}

func (s *spyOption) PrepareStep(parentStep, step *model.StepInfo) error {
	s.prepared = append(s.prepared, step.Name)

	return s.prepareError
}

func (s *spyOption) OnStepStart(step *model.StepInfo) error {
	s.started = append(s.started, step.Name)

	return nil
}

func (s *spyOption) OnStepDone(step *model.StepInfo, elapsed time.Duration, stepErr error) error {
	s.done = append(s.done, step.Name)
	s.doneErrs = append(s.doneErrs, stepErr)

	return nil
}

func (s *spyOption) Finish() error {
	s.finishCalls++

	return nil
}

func TestOptionLifecycle(t *testing.T) {
	t.Parallel()

	var got []string

	spy := &spyOption{}
	pipe, err := pipeline.New(context.Background(), spy)
	require.NoError(t, err)
	require.NoError(t, pipe.AddStage("stage",
		recordingStep("step 1", &got, nil),
		recordingStep("step 2", &got, nil),
	))

	err = pipe.Run()
	require.NoError(t, err)

	assert.Equal(t, 1, spy.newCalls)
	assert.Equal(t, []string{"step 1", "step 2"}, spy.prepared)
	assert.Equal(t, []string{"step 1", "step 2"}, spy.started)
	assert.Equal(t, []string{"step 1", "step 2"}, spy.done)
	assert.Equal(t, 1, spy.finishCalls)
}

func TestOptionFinishRunsOnFailure(t *testing.T) {
	t.Parallel()

	var got []string

	spy := &spyOption{}
	pipe, err := pipeline.New(context.Background(), spy)
	require.NoError(t, err)
	require.NoError(t, pipe.AddStage("stage",
		recordingStep("step 1", &got, assert.AnError),
		recordingStep("step 2", &got, nil),
	))

	err = pipe.Run()
	require.Error(t, err)

	assert.Equal(t, 1, spy.finishCalls)
	assert.Equal(t, []string{"step 1"}, spy.done)
	require.Len(t, spy.doneErrs, 1)
	assert.ErrorIs(t, spy.doneErrs[0], assert.AnError)
}

func TestOptionPrepareStepError(t *testing.T) {
	t.Parallel()

	var got []string

	spy := &spyOption{prepareError: assert.AnError}
	pipe, err := pipeline.New(context.Background(), spy)
	require.NoError(t, err)
	err = pipe.AddStage("stage", recordingStep("step 1", &got, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
