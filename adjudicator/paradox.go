package adjudicator

// convoyComponent is the DFS closure, through Deps, of a single unresolved
// convoy order: every other unresolved convoy order reachable by following
// dependency edges through unresolved orders of any kind. Two convoys end up in the same component whenever
// resolving one requires knowing about the other, directly or indirectly —
// which is exactly the structure a convoy-disruption paradox creates (a
// convoyed attacker cuts the support that would otherwise prove the convoy
// path, while the convoy path is what the support's tap-check depends on).
func convoyComponent(m *Map, s *MapState, orders Orders, status map[Province]bool, start Province, unresolvedConvoys map[Province]struct{}) map[Province]struct{} {
	component := map[Province]struct{}{start: {}}
	visited := map[Province]struct{}{start: {}}
	stack := []Province{start}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for dep := range orders[node].Deps(m, s, orders, node) {
			if _, already := visited[dep]; already {
				continue
			}
			if _, done := status[dep]; done {
				continue
			}
			if _, hasOrder := orders[dep]; !hasOrder {
				continue
			}
			visited[dep] = struct{}{}
			stack = append(stack, dep)
			if _, isUnresolvedConvoy := unresolvedConvoys[dep]; isUnresolvedConvoy {
				component[dep] = struct{}{}
			}
		}
	}
	return component
}

// breakConvoyParadoxes finds every dependency component of unresolved
// convoy orders, and resolves false every convoy belonging to a
// smallest-by-convoy-count component (SPEC_FULL.md §4.9). This is the
// Szykman-style disruption rule: the smallest tangle is presumed to be the
// one a real adjudicator would break first, and ties break together. It
// reports whether it made any progress.
func breakConvoyParadoxes(m *Map, s *MapState, orders Orders, status map[Province]bool) bool {
	unresolvedConvoys := make(map[Province]struct{})
	for prov, order := range orders {
		if _, done := status[prov]; done {
			continue
		}
		if _, ok := order.(Convoy); ok {
			unresolvedConvoys[prov] = struct{}{}
		}
	}
	if len(unresolvedConvoys) == 0 {
		return false
	}

	seen := make(map[Province]struct{})
	var components []map[Province]struct{}
	for prov := range unresolvedConvoys {
		if _, already := seen[prov]; already {
			continue
		}
		comp := convoyComponent(m, s, orders, status, prov, unresolvedConvoys)
		for p := range comp {
			seen[p] = struct{}{}
		}
		components = append(components, comp)
	}

	minSize := -1
	for _, comp := range components {
		if minSize == -1 || len(comp) < minSize {
			minSize = len(comp)
		}
	}

	progressed := false
	for _, comp := range components {
		if len(comp) != minSize {
			continue
		}
		for p := range comp {
			status[p] = false
			progressed = true
		}
	}
	return progressed
}
