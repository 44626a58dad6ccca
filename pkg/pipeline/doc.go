// Package pipeline runs an ordered list of named steps strictly one at a
// time, stopping on the first failure. Options observe the run through
// lifecycle hooks, for example to record step timings or to draw the stage
// graph.
package pipeline
