package drawer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moldyn/HP35-Benchmark/pkg/pipeline"
	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/drawer"
	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/measure"
)

func TestPipelineDrawer(t *testing.T) {
	t.Parallel()

	dotFile := filepath.Join(t.TempDir(), "pipeline.gv")

	msr := measure.NewDefaultMeasure()
	pipe, err := pipeline.New(context.Background(),
		measure.PipelineMeasure(msr),
		drawer.PipelineDrawer(drawer.NewDOTDrawer(dotFile), msr),
	)
	require.NoError(t, err)

	sleep := func(ctx context.Context) error {
		time.Sleep(2 * time.Millisecond)

		return nil
	}
	require.NoError(t, pipe.AddStage("stage",
		pipeline.NewStep("first step", sleep),
		pipeline.NewStep("second step", sleep),
	))

	err = pipe.Run()
	require.NoError(t, err)

	content, err := os.ReadFile(dotFile)
	require.NoError(t, err)

	got := string(content)
	assert.Contains(t, got, "strict digraph")
	assert.Contains(t, got, `"start" -> "first step"`)
	assert.Contains(t, got, `"first step" -> "second step"`)
	assert.Contains(t, got, `"second step" -> "end"`)
	assert.Contains(t, got, "color=")
}

func TestDOTDrawerDuplicateStep(t *testing.T) {
	t.Parallel()

	drw := drawer.NewDOTDrawer(filepath.Join(t.TempDir(), "dup.gv"))
	require.NoError(t, drw.AddStep("step"))
	assert.Error(t, drw.AddStep("step"))
}
