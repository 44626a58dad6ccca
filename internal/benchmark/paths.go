package benchmark

import "path/filepath"

// Remote sources of the external tools and the benchmark dataset.
const (
	fastPCARepo    = "https://github.com/moldyn/FastPCA"
	clusteringRepo = "https://github.com/moldyn/Clustering"
	datasetRepo    = "https://github.com/moldyn/HP35-DESRES"
)

// Fixed working-directory layout. Each stage is confined to one subtree and
// the file names below are the contract between consecutive stages.
const (
	dirVenv       = "venv"
	dirFastPCA    = "FastPCA"
	dirClustering = "Clustering"
	dirDataset    = "HP35-DESRES"
	dirDPCA       = "dpca"
	dirCluster    = "clustering"

	fileArchive   = "hp35.dihs.gz"
	fileDihedrals = "hp35.dihs"

	fileProj    = "proj"
	fileProjSel = "proj.sel"
	fileCov     = "cov"
	fileVec     = "vec"
	fileStats   = "stats"

	fileFreeEnergy = "fe"
	filePop        = "pop"
	fileNeighbors  = "nn"
	fileClust      = "clust"
	fileNetwork    = "network"
	fileEndNodes   = "network_end_node_traj.dat"

	fileMicrostates = "microstates"
	fileNoise       = "microstatesNoise"
	fileCored       = "microstatesFinal"

	graphFile = "pipeline.gv"
)

const (
	// clusterRadius is the density estimation radius shared by every
	// clustering call.
	clusterRadius = "0.3"
	// coringWindow is the dynamical-coring window width in frames.
	coringWindow = "25"
	// networkMinPop is the minimum node population kept in the network.
	networkMinPop = "12"
)

// FinalOutput is the path of the microstate trajectory reported on success.
func FinalOutput(workDir string) string {
	return filepath.Join(workDir, dirCluster, fileMicrostates)
}
