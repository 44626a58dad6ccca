package model

// StepInfo describes a single step of a pipeline.
type StepInfo struct {
	// Stage groups consecutive steps under one progress header.
	Stage string
	Name  string
}

var (
	// StartStep marks the entry point of every pipeline graph.
	StartStep = &StepInfo{Name: "start"}
	// EndStep marks the exit point of every pipeline graph.
	EndStep = &StepInfo{Name: "end"}
)
