// Command state-rename renumbers the state labels of a microstate
// trajectory by population rank. The result is written next to the input
// with a "Sorted" suffix.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/moldyn/HP35-Benchmark/internal/trajectory"
)

func main() {
	file := flag.String("f", "", "state trajectory to relabel")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "state-rename: -f <file> is required")
		flag.Usage()
		os.Exit(1)
	}

	dst, err := trajectory.RelabelByPopulation(*file, trajectory.SortedSuffix)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(dst)
}
