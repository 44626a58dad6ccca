// Package model provides the data structures shared between the pipeline
// package and its options: the step descriptions and the option lifecycle.
package model
