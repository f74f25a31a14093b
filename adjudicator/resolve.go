package adjudicator

// Adjudicate resolves a movement phase: given the board and a full set of
// orders (one per occupied province — see invariant I1), it returns the
// subset of provinces whose order resolved, mapped to true (succeeds) or
// false (fails). A province absent from the result was never resolved; that
// happens only if the order graph has a malformed cycle the cycle- and
// convoy-paradox breakers below can't make progress on, which does not
// occur for any well-formed DATC input.
//
// Each pass walks every still-unresolved order, builds a Status restricted
// to exactly what that order's Deps named, and asks it to resolve against
// that restricted view. Restricting the view (rather than handing every
// order the full, growing order_status) is what keeps the fixed point
// sound: an order's resolution at pass N can only depend on what it
// declared a dependency on, so whether earlier passes resolved unrelated
// orders first or last never changes the outcome (property P2 in
// SPEC_FULL.md's testable-properties section).
func Adjudicate(m *Map, s *MapState, orders Orders) map[Province]bool {
	status := make(map[Province]bool)

	for {
		numResolved := len(status)

		for prov, order := range orders {
			if _, done := status[prov]; done {
				continue
			}

			deps := order.Deps(m, s, orders, prov)
			view := make(Status, len(deps))
			for depProv := range deps {
				if v, ok := status[depProv]; ok {
					view[depProv] = v
				}
			}

			if verdict := order.Resolve(m, s, orders, prov, view); verdict != nil {
				status[prov] = *verdict
			}
		}

		if len(status) == len(orders) {
			break
		}
		if len(status) != numResolved {
			// Progress was made without needing a paradox breaker; keep
			// iterating the plain fixed point before reaching for one.
			continue
		}

		if breakCycles(m, s, orders, status) {
			continue
		}
		if breakConvoyParadoxes(m, s, orders, status) {
			continue
		}

		// No more progress is possible by any means this package knows.
		break
	}

	return status
}
