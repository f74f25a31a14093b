package adjudicator

// cycleAt walks the chain of moves starting at start, following each
// mover's destination, and reports the provinces in a closed cycle of
// movers that all definitely displace one another — the classic "three
// armies swap places" scenario the DATC calls a cycle. It uses the full
// accumulated status (not a per-order restricted view): cycle detection
// reasons about the whole graph at once, unlike ordinary order resolution.
func cycleAt(m *Map, s *MapState, orders Orders, status Status, start Province) (map[Province]struct{}, bool) {
	cycle := make(map[Province]struct{})

	current := start
	for {
		order, hasOrder := orders[current]
		mv, isMove := order.(Move)
		if !hasOrder || !isMove {
			return nil, false
		}
		if v, known := status.Lookup(current); known && !v {
			return nil, false
		}
		if !isTrue(isPath(m, s, orders, status, current)) {
			return nil, false
		}

		cycle[current] = struct{}{}

		// This mover's own prevent/defend strength, as the strength it
		// needs to beat every other would-be occupant of its destination
		// with certainty — see SPEC_FULL.md §4.8.
		attackStrength := computeDefendStrength(m, s, orders, status, current)

		definitelyWins := true
		for prov2, order2 := range orders {
			if prov2 == current {
				continue
			}
			if !moveTo(order2, mv.Dest.Province) {
				continue
			}
			strength := computePreventStrength(m, s, orders, status, prov2)
			if attackStrength.Min <= strength.Max {
				definitelyWins = false
				break
			}
		}
		if !definitelyWins {
			return nil, false
		}

		if mv.Dest.Province == start {
			break
		}
		if _, already := cycle[mv.Dest.Province]; already {
			return nil, false
		}
		current = mv.Dest.Province
	}

	return cycle, true
}

// breakCycles looks for closed movement cycles among the still-unresolved
// orders and resolves every member true. It reports whether it made any
// progress, so the driver knows whether to keep iterating the plain
// fixed point before reaching for the convoy-paradox breaker.
func breakCycles(m *Map, s *MapState, orders Orders, status map[Province]bool) bool {
	progressed := false
	for {
		numResolved := len(status)

		for prov, order := range orders {
			if _, done := status[prov]; done {
				continue
			}
			if _, isMove := order.(Move); !isMove {
				continue
			}

			cycle, ok := cycleAt(m, s, orders, status, prov)
			if !ok {
				continue
			}
			for p := range cycle {
				status[p] = true
			}
			progressed = true
			break
		}

		if len(status) == numResolved {
			break
		}
	}
	return progressed
}
