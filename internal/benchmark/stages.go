package benchmark

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/moldyn/HP35-Benchmark/internal/command"
	"github.com/moldyn/HP35-Benchmark/internal/dataset"
	"github.com/moldyn/HP35-Benchmark/internal/toolchain"
	"github.com/moldyn/HP35-Benchmark/internal/trajectory"
	"github.com/moldyn/HP35-Benchmark/internal/workdir"
	"github.com/moldyn/HP35-Benchmark/pkg/pipeline"
	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/drawer"
	"github.com/moldyn/HP35-Benchmark/pkg/pipeline/measure"
)

// commandRunner is the slice of command.Runner the stages use.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// Benchmark drives one full run of the HP35 pipeline.
type Benchmark struct {
	cfg    *Config
	runner commandRunner
	dir    *workdir.Dir

	// hostCompiler is detected from the CUDA release before the clustering
	// tool is configured.
	hostCompiler string
}

// New prepares a benchmark run from cfg.
func New(cfg Config) *Benchmark {
	c := cfg.withDefaults()

	runner := &command.Runner{Log: c.Log}
	if c.Verbosity >= 1 {
		runner.Stdout = c.Stderr
		runner.Stderr = c.Stderr
	}

	return &Benchmark{
		cfg:    c,
		runner: runner,
		dir:    workdir.New(c.WorkDir, c.PromptIn, c.Stdout),
	}
}

// Run executes the full stage chain. On failure the working directory is
// offered for removal and the error, carrying the failing step's exit
// status, is returned.
func (b *Benchmark) Run(ctx context.Context) error {
	msr := measure.NewDefaultMeasure()

	pipe, err := pipeline.New(ctx,
		newProgress(b.cfg.Stdout),
		measure.PipelineMeasure(msr),
		drawer.PipelineDrawer(drawer.NewDOTDrawer(b.dir.Join(graphFile)), msr),
	)
	if err != nil {
		return err
	}

	if err := b.addStages(pipe); err != nil {
		return err
	}

	if err := pipe.Run(); err != nil {
		fmt.Fprintf(b.cfg.Stdout, "benchmark aborted: %v\n", err)
		if cleanupErr := b.dir.Discard(); cleanupErr != nil {
			b.cfg.Log.Warn("unable to clean up working directory", "error", cleanupErr)
		}

		return err
	}

	fmt.Fprintf(b.cfg.Stdout, "microstate trajectory written to %s\n", FinalOutput(b.dir.Path))

	return nil
}

func (b *Benchmark) addStages(pipe *pipeline.Pipeline) error {
	pip := b.dir.Join(dirVenv, "bin", "pip")

	stages := []struct {
		name  string
		steps []*pipeline.Step
	}{
		{"check requirements", []*pipeline.Step{
			pipeline.NewStep("resolve required commands", func(context.Context) error {
				return toolchain.CheckRequirements(b.cfg.LookPath)
			}),
		}},
		{"isolated runtime", []*pipeline.Step{
			pipeline.NewStep("create working directory", func(context.Context) error {
				return b.dir.Create(dirDPCA, dirCluster)
			}),
			b.step("create virtual environment", "python3", "-m", "venv", b.dir.Join(dirVenv)),
			b.step("upgrade pip", pip, "install", "--upgrade", "pip"),
			b.step("install python packages", pip, "install", "numpy", "scipy"),
		}},
		{"build FastPCA", []*pipeline.Step{
			b.step("clone FastPCA", "git", "clone", fastPCARepo, b.dir.Join(dirFastPCA)),
			b.step("configure FastPCA", "cmake", "-S", b.dir.Join(dirFastPCA), "-B", b.buildDir(dirFastPCA)),
			b.step("compile FastPCA", "cmake", "--build", b.buildDir(dirFastPCA)),
		}},
		{"build Clustering", []*pipeline.Step{
			b.step("clone Clustering", "git", "clone", clusteringRepo, b.dir.Join(dirClustering)),
			pipeline.NewStep("select host compiler", func(ctx context.Context) error {
				compiler, err := toolchain.DetectHostCompiler(ctx, b.runner)
				if err != nil {
					return err
				}
				b.hostCompiler = compiler
				b.cfg.Log.Debug("host compiler selected", "compiler", compiler)

				return nil
			}),
			// The compiler flag depends on the step above, so the argument
			// list is assembled at run time.
			pipeline.NewStep("configure Clustering", func(ctx context.Context) error {
				return b.runner.Run(ctx, "cmake",
					"-S", b.dir.Join(dirClustering),
					"-B", b.buildDir(dirClustering),
					"-DCMAKE_CXX_COMPILER="+b.hostCompiler,
					"-DUSE_CUDA=ON",
				)
			}),
			b.step("compile Clustering", "cmake", "--build", b.buildDir(dirClustering)),
		}},
		{"fetch dataset", []*pipeline.Step{
			b.step("clone HP35-DESRES", "git", "clone", datasetRepo, b.dir.Join(dirDataset)),
			pipeline.NewStep("decompress trajectory", func(context.Context) error {
				return dataset.Decompress(
					b.dir.Join(dirDataset, fileArchive),
					b.dir.Join(dirDataset, fileDihedrals),
				)
			}),
		}},
		{"dimensionality reduction", []*pipeline.Step{
			b.step("project dihedrals", b.dir.Join(dirFastPCA, "build", "fastpca"),
				"-f", b.dir.Join(dirDataset, fileDihedrals),
				"-P",
				"-o", b.dpca(fileProj),
				"-c", b.dpca(fileCov),
				"-v", b.dpca(fileVec),
				"-s", b.dpca(fileStats),
			),
			pipeline.NewStep("select components", func(context.Context) error {
				return trajectory.SelectColumns(b.dpca(fileProj), b.dpca(fileProjSel), trajectory.ProjectionColumns)
			}),
		}},
		{"clustering", []*pipeline.Step{
			b.clusterStep("estimate free energy", "density",
				"-f", b.dpca(fileProjSel),
				"-r", clusterRadius,
				"-d", b.cluster(fileFreeEnergy),
				"-p", b.cluster(filePop),
				"-b", b.cluster(fileNeighbors),
			),
			b.clusterStep("screen density thresholds", "density",
				"-f", b.dpca(fileProjSel),
				"-r", clusterRadius,
				"-D", b.cluster(fileFreeEnergy),
				"-B", b.cluster(fileNeighbors),
				"-T", "0.1", "12.0", "0.1",
				"-o", b.cluster(fileClust),
			),
			b.clusterStep("build network", "network",
				"--minpop", networkMinPop,
				"-b", b.cluster(fileClust),
				"-o", b.cluster(fileNetwork),
			),
			b.clusterStep("assign microstates", "density",
				"-f", b.dpca(fileProjSel),
				"-r", clusterRadius,
				"-D", b.cluster(fileFreeEnergy),
				"-B", b.cluster(fileNeighbors),
				"-i", b.cluster(fileEndNodes),
				"-o", b.cluster(fileMicrostates),
			),
			b.clusterStep("remove noise", "noise",
				"-s", b.cluster(fileMicrostates),
				"-b", b.cluster(fileClust),
				"-o", b.cluster(fileNoise),
			),
			b.clusterStep("core states", "coring",
				"-s", b.cluster(fileNoise),
				"-w", coringWindow,
				"-o", b.cluster(fileCored),
			),
		}},
		{"relabel states", []*pipeline.Step{
			pipeline.NewStep("relabel by population", func(context.Context) error {
				sorted, err := trajectory.RelabelByPopulation(b.cluster(fileCored), trajectory.SortedSuffix)
				if err != nil {
					return err
				}

				return copyFile(sorted, b.cluster(fileMicrostates))
			}),
		}},
	}

	for _, stage := range stages {
		if err := pipe.AddStage(stage.name, stage.steps...); err != nil {
			return err
		}
	}

	return nil
}

// step wraps a fixed command invocation into a pipeline step.
func (b *Benchmark) step(name, cmd string, args ...string) *pipeline.Step {
	return pipeline.NewStep(name, func(ctx context.Context) error {
		return b.runner.Run(ctx, cmd, args...)
	})
}

// clusterStep invokes the clustering tool, verbose from -v -v on.
func (b *Benchmark) clusterStep(name string, args ...string) *pipeline.Step {
	if b.cfg.Verbosity >= 2 {
		args = append(args, "-v")
	}

	return b.step(name, b.dir.Join(dirClustering, "build", "clustering"), args...)
}

func (b *Benchmark) buildDir(tool string) string { return b.dir.Join(tool, "build") }

func (b *Benchmark) dpca(name string) string { return b.dir.Join(dirDPCA, name) }

func (b *Benchmark) cluster(name string) string { return b.dir.Join(dirCluster, name) }

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()

		return errors.Wrapf(err, "unable to copy %s to %s", src, dst)
	}

	return errors.Wrapf(out.Close(), "unable to close %s", dst)
}
