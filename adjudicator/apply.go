package adjudicator

// RetreatOptions describes a dislodged unit and the provinces it may
// legally retreat to: adjacent to its previous position, unoccupied in the
// post-adjudication state, and not contested.
type RetreatOptions struct {
	Unit Unit                  `json:"unit"`
	Dest map[FleetLoc]struct{} `json:"dest"`
}

// ApplyAdjudication derives the next board position from a resolved
// movement phase, plus the set of retreats it created. It does not itself
// resolve retreats or advance the game to the next phase; those are left to
// the caller (SPEC_FULL.md §1 excludes the retreat/build phases from this
// package's scope).
//
// A province counts as contested iff some move into it has non-zero
// minimum prevent strength — even a move that itself failed can contest a
// province, which is why a dislodged unit sometimes has nowhere to retreat.
func ApplyAdjudication(m *Map, s *MapState, orders Orders, status map[Province]bool) (*MapState, map[Province]*RetreatOptions) {
	contested := make(map[Province]struct{})
	for prov, order := range orders {
		mv, ok := order.(Move)
		if !ok {
			continue
		}
		if computePreventStrength(m, s, orders, Status(status), prov).Min != 0 {
			contested[mv.Dest.Province] = struct{}{}
		}
	}

	next := &MapState{
		Units:     make(map[Province]Unit, len(s.Units)),
		Ownership: s.Ownership,
	}

	successfulMove := func(prov Province) (Move, bool) {
		if !status[prov] {
			return Move{}, false
		}
		mv, ok := orders[prov].(Move)
		return mv, ok
	}

	for prov := range status {
		if _, ok := successfulMove(prov); ok {
			continue
		}
		if unit, ok := s.Units[prov]; ok {
			next.Units[prov] = unit
		}
	}

	retreats := make(map[Province]*RetreatOptions)
	for prov := range status {
		mv, ok := successfulMove(prov)
		if !ok {
			continue
		}

		if occupant, wasOccupied := s.Units[mv.Dest.Province]; wasOccupied {
			destMoveSucceeded := false
			if destMv, isMove := orders[mv.Dest.Province].(Move); isMove {
				_ = destMv
				destMoveSucceeded = status[mv.Dest.Province]
			}
			if !destMoveSucceeded {
				retreats[mv.Dest.Province] = &RetreatOptions{
					Unit: occupant,
					Dest: make(map[FleetLoc]struct{}),
				}
			}
		}

		unit := s.Units[prov]
		if unit.Kind == FleetUnit {
			unit.Coast = mv.Dest.Coast
		}
		next.Units[mv.Dest.Province] = unit
	}

	for srcProv, retreat := range retreats {
		switch retreat.Unit.Kind {
		case ArmyUnit:
			for edge := range m.ArmyAdj {
				if edge.From != srcProv {
					continue
				}
				if _, isContested := contested[edge.To]; isContested {
					continue
				}
				if _, occupied := next.Units[edge.To]; occupied {
					continue
				}
				retreat.Dest[FleetLoc{edge.To, NoCoast}] = struct{}{}
			}
		case FleetUnit:
			for edge := range m.FleetAdj {
				if edge.From != (FleetLoc{srcProv, retreat.Unit.Coast}) {
					continue
				}
				if _, isContested := contested[edge.To.Province]; isContested {
					continue
				}
				if _, occupied := next.Units[edge.To.Province]; occupied {
					continue
				}
				retreat.Dest[edge.To] = struct{}{}
			}
		}
	}

	return next, retreats
}
