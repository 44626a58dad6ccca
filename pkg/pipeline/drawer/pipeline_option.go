package drawer

import (
	"time"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/measure"
	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/model"
)

const maxRGB = 240

type pipelineDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
	lastStep  *model.StepInfo
}

// PipelineDrawer renders the stage graph, annotated with a duration heatmap
// from msr, once the pipeline finishes.
func PipelineDrawer(drw Drawer, msr measure.Measure) model.PipelineOption {
	return &pipelineDrawer{Drawer: drw, m: msr, startTime: time.Now()}
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStep(model.StartStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = pd.AddStep(model.EndStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	err := pd.AddStep(step.Name)
	if err != nil {
		return err
	}
	err = pd.AddLink(parentStep.Name, step.Name)
	if err != nil {
		return err
	}
	pd.lastStep = step

	return nil
}

func (pd *pipelineDrawer) OnStepStart(step *model.StepInfo) error { return nil }

func (pd *pipelineDrawer) OnStepDone(step *model.StepInfo, elapsed time.Duration, stepErr error) error {
	return nil
}

func (pd *pipelineDrawer) Finish() error {
	if pd.lastStep != nil {
		err := pd.AddLink(pd.lastStep.Name, model.EndStep.Name)
		if err != nil {
			return errors.Wrap(err, "unable to link last step to end")
		}
	}

	err := pd.SetAttribute(model.EndStep.Name, "xlabel", time.Since(pd.startTime).String())
	if err != nil {
		return errors.Wrap(err, "unable to set total time")
	}

	if pd.m != nil {
		err = pd.addMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// addMeasure labels every timed step with its duration and colours it on a
// blue-to-red scale, red being the slowest step of the run.
func (pd *pipelineDrawer) addMeasure(msr measure.Measure) error {
	var minD, maxD time.Duration
	first := true

	for _, mt := range msr.AllMetrics() {
		d := mt.Duration()
		if d == 0 {
			continue
		}
		if first || d < minD {
			minD = d
		}
		if first || d > maxD {
			maxD = d
		}
		first = false
	}
	if first {
		return nil
	}

	for name, mt := range msr.AllMetrics() {
		d := mt.Duration()
		if d == 0 {
			continue
		}

		err := pd.SetAttribute(name, "xlabel", d.String())
		if err != nil {
			return err
		}

		fraction := 1.0
		if maxD > minD {
			fraction = float64(d-minD) / float64(maxD-minD)
		}
		red := uint8(maxRGB * fraction)
		blue := uint8(maxRGB - maxRGB*fraction)

		col, err := colors.RGB(red, 0, blue) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		err = pd.SetAttribute(name, "color", col.ToHEX().String())
		if err != nil {
			return err
		}
	}

	return nil
}
