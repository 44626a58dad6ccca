package measure_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moldyn/HP35-Benchmark/pkg/pipeline"
	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/measure"
)

func TestAddMetricIsIdempotent(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	first := msr.AddMetric("step")
	second := msr.AddMetric("step")
	assert.Same(t, first, second)
	assert.Len(t, msr.AllMetrics(), 1)
}

func TestPipelineMeasureRecordsDurations(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	pipe, err := pipeline.New(context.Background(), measure.PipelineMeasure(msr))
	require.NoError(t, err)
	require.NoError(t, pipe.AddStage("stage",
		pipeline.NewStep("slow step", func(ctx context.Context) error {
			time.Sleep(2 * time.Millisecond)

			return nil
		}),
	))

	err = pipe.Run()
	require.NoError(t, err)

	metrics := msr.AllMetrics()
	require.Contains(t, metrics, "slow step")
	assert.Greater(t, metrics["slow step"].Duration(), time.Duration(0))
}
