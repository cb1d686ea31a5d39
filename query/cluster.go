package query

import (
	"context"
	"strings"
)

// cluster links every term to its most similar other term when their
// similarity exceeds ClusterThreshold and returns one space-joined sub-query
// per connected group, in order of first appearance.
func (p *Processor) cluster(ctx context.Context, terms []string) []string {
	parent := make([]int, len(terms))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	for i := range terms {
		best, bestSim := -1, 0.0
		for j := range terms {
			if i == j {
				continue
			}
			sim := 1 - p.words.Distance(ctx, terms[i], terms[j])
			if best < 0 || sim > bestSim {
				best, bestSim = j, sim
			}
		}
		if best >= 0 && bestSim > ClusterThreshold {
			parent[find(best)] = find(i)
		}
	}

	var (
		order  []int
		groups = make(map[int][]string)
	)
	for i, term := range terms {
		root := find(i)
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], term)
	}

	subQueries := make([]string, len(order))
	for i, root := range order {
		subQueries[i] = strings.Join(groups[root], " ")
	}
	return subQueries
}
