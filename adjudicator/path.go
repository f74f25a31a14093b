package adjudicator

// isDirectPath reports whether the move order at src can reach its
// destination without a convoy: army-to-army adjacency, or fleet-to-fleet
// adjacency with a valid landing coast.
func isDirectPath(m *Map, s *MapState, orders Orders, src Province) bool {
	mv, ok := orders[src].(Move)
	if !ok {
		invariantf(src, "isDirectPath: order is not a move")
	}
	unit, ok := s.Units[src]
	if !ok {
		invariantf(src, "isDirectPath: no unit at source of move order")
	}
	if _, onMap := m.Provinces[mv.Dest.Province]; !onMap {
		invariantf(src, "isDirectPath: destination %s is not on the map", mv.Dest.Province)
	}

	if unit.Kind == ArmyUnit {
		return m.ArmyAdjacent(src, mv.Dest.Province)
	}

	if !m.ValidDestCoast(mv.Dest.Province, mv.Dest.Coast) {
		return false
	}
	return m.FleetAdjacent(FleetLoc{src, unit.Coast}, FleetLoc{mv.Dest.Province, mv.Dest.Coast})
}

// isPathAlong is a depth-first search, along fleet adjacency (coast
// ignored), from src to dest, restricted to hopping through the given
// convoying provinces. The visited-length check enforces that at least one
// convoy must sit between src and dest: a direct fleet hop from src to dest
// doesn't count as a convoy path, even if one happens to exist.
func isPathAlong(m *Map, src, dest Province, convoys []Province) bool {
	visited := make(map[Province]struct{})
	stack := []Province{src}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(visited) != 0 && m.SeaConnected(node, dest) {
			return true
		}

		for _, cv := range convoys {
			if _, seen := visited[cv]; seen || cv == node {
				continue
			}
			if m.SeaConnected(node, cv) {
				stack = append(stack, cv)
			}
		}

		visited[node] = struct{}{}
	}
	return false
}

// isConvoyPath reports, three-valued, whether the move order at src has a
// convoy path to its destination. Fleets are never convoyed, and a move
// into a sea province is never convoyed (a fleet already occupies it or it
// is empty and directly reachable by fleet only).
func isConvoyPath(m *Map, s *MapState, orders Orders, status Status, src Province) *bool {
	mv, ok := orders[src].(Move)
	if !ok {
		invariantf(src, "isConvoyPath: order is not a move")
	}
	unit, ok := s.Units[src]
	if !ok {
		invariantf(src, "isConvoyPath: no unit at source of move order")
	}
	if unit.Kind == FleetUnit {
		return boolPtr(false)
	}
	if m.IsSea(mv.Dest.Province) {
		return boolPtr(false)
	}

	var possible, definite []Province
	for provIt, orderIt := range orders {
		cv, ok := orderIt.(Convoy)
		if !ok || cv.Src != src || cv.Dest != mv.Dest.Province {
			continue
		}
		v, known := status.Lookup(provIt)
		switch {
		case known && v:
			possible = append(possible, provIt)
			definite = append(definite, provIt)
		case !known:
			possible = append(possible, provIt)
		}
	}

	if isPathAlong(m, src, mv.Dest.Province, definite) {
		return boolPtr(true)
	}
	if isPathAlong(m, src, mv.Dest.Province, possible) {
		return nil
	}
	return boolPtr(false)
}

// isPath reports whether the move order at src can reach its destination by
// any means: directly, or by convoy.
func isPath(m *Map, s *MapState, orders Orders, status Status, src Province) *bool {
	if isDirectPath(m, s, orders, src) {
		return boolPtr(true)
	}
	return isConvoyPath(m, s, orders, status, src)
}

// isHeadToHead reports, three-valued, whether the move at src is in a
// head-to-head battle with the move at its destination: both move to each
// other's province, and neither has a possible convoy path (a convoyed move
// never head-to-heads, even against a unit trying to swap in directly).
func isHeadToHead(m *Map, s *MapState, orders Orders, status Status, src Province) *bool {
	mv, ok := orders[src].(Move)
	if !ok {
		invariantf(src, "isHeadToHead: order is not a move")
	}
	destProv := mv.Dest.Province

	destOrder, ok := orders[destProv]
	if !ok || !moveTo(destOrder, src) {
		return boolPtr(false)
	}

	cp1 := isConvoyPath(m, s, orders, status, src)
	cp2 := isConvoyPath(m, s, orders, status, destProv)

	switch {
	case isTrue(cp1) || isTrue(cp2):
		return boolPtr(false)
	case cp1 == nil || cp2 == nil:
		return nil
	default:
		return boolPtr(true)
	}
}
