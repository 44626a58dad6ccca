package trajectory

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SortedSuffix is appended to the input file name by RelabelByPopulation.
const SortedSuffix = "Sorted"

// RelabelByPopulation renumbers the state labels in src so that label 1 is
// the most populated state, 2 the second most, and so on. Ties keep the
// lower original label first. The result is written next to src with suffix
// appended to the file name; the path of the new file is returned.
func RelabelByPopulation(src, suffix string) (string, error) {
	labels, err := readLabels(src)
	if err != nil {
		return "", err
	}
	if len(labels) == 0 {
		return "", errors.Errorf("no state labels in %s", src)
	}

	counts := make(map[int]int)
	for _, label := range labels {
		counts[label]++
	}

	states := make([]int, 0, len(counts))
	for state := range counts {
		states = append(states, state)
	}
	sort.Slice(states, func(i, j int) bool {
		if counts[states[i]] != counts[states[j]] {
			return counts[states[i]] > counts[states[j]]
		}

		return states[i] < states[j]
	})

	rank := make(map[int]int, len(states))
	for i, state := range states {
		rank[state] = i + 1
	}

	dst := src + suffix
	out, err := os.Create(dst)
	if err != nil {
		return "", errors.Wrapf(err, "unable to create %s", dst)
	}

	wrt := bufio.NewWriter(out)
	for _, label := range labels {
		fmt.Fprintln(wrt, rank[label])
	}
	if err := wrt.Flush(); err != nil {
		out.Close()

		return "", errors.Wrapf(err, "unable to write %s", dst)
	}
	if err := out.Close(); err != nil {
		return "", errors.Wrapf(err, "unable to close %s", dst)
	}

	return dst, nil
}

// readLabels reads one state label per line, taking the first field of every
// non-blank line.
func readLabels(src string) ([]int, error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", src)
	}
	defer in.Close()

	var labels []int

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, maxLineSize), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		label, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "bad state label on line %d of %s", lineNo, src)
		}
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", src)
	}

	return labels, nil
}
