package adjudicator

// Bounds is an inclusive [Min, Max] range on a strength value, used
// throughout this package to represent "a number that isn't fully known
// yet": Min and Max coincide once every contributing order has resolved.
type Bounds struct {
	Min, Max uint32
}

// computeHoldStrength computes the hold strength of the unit at target: how
// hard it is to dislodge by simply overpowering it in place. An empty
// province has hold strength 0. A unit ordered to move has hold strength
// [0,1] (0 if its move is known to succeed, since supports don't help a
// unit that's leaving; 1 if its move is known to fail; [0,1] while
// unresolved). A static unit has strength 1 plus its resolved/possible
// SupportHold orders.
func computeHoldStrength(s *MapState, orders Orders, status Status, target Province) Bounds {
	if _, ok := s.Units[target]; !ok {
		return Bounds{0, 0}
	}

	if _, isMove := orders[target].(Move); isMove {
		v, known := status.Lookup(target)
		switch {
		case known && v:
			return Bounds{0, 0}
		case known && !v:
			return Bounds{1, 1}
		default:
			return Bounds{0, 1}
		}
	}

	b := Bounds{1, 1}
	for provIt, orderIt := range orders {
		sh, ok := orderIt.(SupportHold)
		if !ok || sh.Target != target {
			continue
		}
		v, known := status.Lookup(provIt)
		if known && v {
			b.Min++
			b.Max++
		} else if !known {
			b.Max++
		}
	}
	return b
}

// computeDefendStrength computes the strength a move order at src defends
// its destination with, for use as the opposing unit's strength in a
// head-to-head battle. It's 1 plus resolved/possible SupportMove orders
// backing the same move, or [0,0] if the move has no path at all.
func computeDefendStrength(m *Map, s *MapState, orders Orders, status Status, src Province) Bounds {
	pv := isPath(m, s, orders, status, src)
	if isFalse(pv) {
		return Bounds{0, 0}
	}
	possiblyNoPath := pv == nil

	mv := orders[src].(Move)
	destProv := mv.Dest.Province

	b := Bounds{1, 1}
	for prov2, order2 := range orders {
		if !isSupportTo(order2, src, destProv) {
			continue
		}
		v, known := status.Lookup(prov2)
		if known && v {
			b.Min++
			b.Max++
		} else if !known {
			b.Max++
		}
	}

	if possiblyNoPath {
		b.Min = 0
	}
	return b
}

// computePreventStrength computes the strength with which the move order at
// src keeps anyone else from occupying its destination. It's the defend
// strength, with the min zeroed out (and, if the destination is itself
// moving back into src and that return move is known true, both bounds
// zeroed) when src is in a head-to-head battle that it might not win.
func computePreventStrength(m *Map, s *MapState, orders Orders, status Status, src Province) Bounds {
	b := computeDefendStrength(m, s, orders, status, src)

	mv := orders[src].(Move)
	destProv := mv.Dest.Province

	switch hth := isHeadToHead(m, s, orders, status, src); {
	case isFalse(hth):
		// plain move: prevent strength equals defend strength
	case hth == nil:
		v, known := status.Lookup(destProv)
		if !(known && !v) {
			b.Min = 0
		}
	case isTrue(hth):
		v, known := status.Lookup(destProv)
		if !(known && !v) {
			b.Min = 0
		}
		if known && v {
			b.Max = 0
		}
	}
	return b
}

// computeAttackStrength computes the strength with which the move order at
// src overcomes whatever sits at (or is about to vacate) its destination.
func computeAttackStrength(m *Map, s *MapState, orders Orders, status Status, src Province) Bounds {
	pv := isPath(m, s, orders, status, src)
	if isFalse(pv) {
		return Bounds{0, 0}
	}
	possiblyNoPath := pv == nil

	mv := orders[src].(Move)
	destProv := mv.Dest.Province

	var destNat string
	destNatKnown := false
	if occ, ok := s.Units[destProv]; ok {
		destNat = occ.Nationality
		destNatKnown = true
	}

	destNatCertain := true
	if destOrder, ok := orders[destProv]; ok {
		if _, isMove := destOrder.(Move); isMove {
			v, known := status.Lookup(destProv)
			switch {
			case !known:
				destNatCertain = false
			case v:
				destNatKnown = false
				destNatCertain = true
			default:
				destNatCertain = true
			}
		}
	}

	srcNat := s.Units[src].Nationality
	if destNatKnown && destNatCertain && destNat == srcNat {
		return Bounds{0, 0}
	}

	b := Bounds{1, 1}
	for prov2, order2 := range orders {
		sm, ok := order2.(SupportMove)
		if !ok || sm.Src != src || sm.Dest != destProv {
			continue
		}
		supporterNat := s.Units[prov2].Nationality
		sameAsDest := destNatKnown && supporterNat == destNat

		v, known := status.Lookup(prov2)
		switch {
		case known && v:
			if !sameAsDest {
				b.Min++
				b.Max++
			} else if !destNatCertain {
				b.Max++
			}
		case !known:
			if !destNatCertain || !sameAsDest {
				b.Max++
			}
		}
	}

	if possiblyNoPath || (destNatKnown && destNat == srcNat) {
		b.Min = 0
	}
	return b
}
