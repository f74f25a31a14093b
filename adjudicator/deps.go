package adjudicator

// DepsForHold and HoldSucceeds are the shared building block behind both
// Hold and Convoy: "succeeds iff not dislodged". A unit at thisProv is
// dislodged by any Move order into thisProv that resolves true.
func DepsForHold(orders Orders, thisProv Province) map[Province]struct{} {
	var deps map[Province]struct{}
	for src2, order2 := range orders {
		if moveTo(order2, thisProv) {
			deps = addDep(deps, src2)
		}
	}
	return deps
}

// HoldSucceeds reports whether the unit at thisProv survives: true unless
// some mover into thisProv is known to succeed, nil if any unresolved mover
// into thisProv could still succeed.
func HoldSucceeds(orders Orders, status Status, thisProv Province) *bool {
	possible := false
	for src2, order2 := range orders {
		if !moveTo(order2, thisProv) {
			continue
		}
		v, known := status.Lookup(src2)
		switch {
		case known && v:
			return boolPtr(false)
		case !known:
			possible = true
		}
	}
	if possible {
		return nil
	}
	return boolPtr(true)
}

// DepsForTap and IsUntapped are the shared building block behind
// SupportHold and SupportMove: a support order succeeds iff the supporting
// unit is not "tapped" — attacked by a foreign unit with a possible path
// into the supporter's own province. A Convoy dragging such an attacker
// counts too, since its resolution can flip whether the attacker has a
// path at all.
func DepsForTap(s *MapState, orders Orders, thisProv Province) map[Province]struct{} {
	var deps map[Province]struct{}
	for provIt, orderIt := range orders {
		if moveTo(orderIt, thisProv) {
			deps = addDep(deps, provIt)
		}
		if cv, ok := orderIt.(Convoy); ok {
			if cv.Dest == thisProv && moveTo(orders[cv.Src], cv.Dest) {
				deps = addDep(deps, provIt)
			}
		}
	}
	return deps
}

// IsUntapped reports whether the support order at thisProv survives being
// cut. exception, when non-empty, is the province the support's own move is
// aimed at helping (SupportMove only): an attack from that exact province is
// exempt from the "possible path" leniency and is judged purely on whether
// its own move resolved true, matching the DATC rule that support is not
// cut by the unit it is directly opposing.
func IsUntapped(m *Map, s *MapState, orders Orders, status Status, thisProv, exception Province) *bool {
	possiblyTapped := false
	for provIt, orderIt := range orders {
		if !moveTo(orderIt, thisProv) {
			continue
		}
		if s.Units[provIt].Nationality == s.Units[thisProv].Nationality {
			continue
		}

		if exception != "" && provIt == exception {
			v, known := status.Lookup(provIt)
			switch {
			case known && v:
				return boolPtr(false)
			case !known:
				possiblyTapped = true
			}
			continue
		}

		switch pv := isPath(m, s, orders, status, provIt); {
		case isTrue(pv):
			return boolPtr(false)
		case pv == nil:
			possiblyTapped = true
		}
	}

	if possiblyTapped {
		return nil
	}
	return boolPtr(true)
}
