package drawer

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddStep adds a step to the pipeline graph.
	AddStep(stepName string) error
	// AddLink adds a link between parent and child steps.
	AddLink(parentStepName, childStepName string) error
	// SetAttribute sets a rendering attribute on a step.
	SetAttribute(stepName, key, value string) error
	// Draw creates a file with the pipeline graph.
	Draw() error
}
