package adjudicator

// Status is a restricted, read-only view of already-resolved orders,
// keyed by source province. Absence of a key means "unknown" — the third
// value of the three-valued logic this package uses throughout. The driver
// builds a fresh Status per order per pass, containing only the provinces
// that order's Deps named (see resolve.go), which is what makes the
// fixed-point iteration sound: an order can never see more of the world
// than it declared it depends on.
type Status map[Province]bool

// Lookup returns the resolved value for p and whether it is known at all.
func (s Status) Lookup(p Province) (value bool, known bool) {
	value, known = s[p]
	return value, known
}

func boolPtr(b bool) *bool { return &b }

func isTrue(b *bool) bool  { return b != nil && *b }
func isFalse(b *bool) bool { return b != nil && !*b }

// Adjudicator is the interface every order kind implements. It mirrors the
// two operations the fixed-point driver needs: which other orders this one
// depends on (Deps), and, given only the resolution of those dependencies,
// whether it succeeds (Resolve).
//
// Unlike an open class hierarchy, the set of concrete types satisfying this
// interface is closed by convention to what's registered in this package
// plus whatever a caller registers via RegisterOrderType — dispatch is by
// Go type switch, never by reflection-based downcasting.
type Adjudicator interface {
	// Deps returns the set of provinces (by source) whose resolution this
	// order's Resolve may consult, for the order sitting at thisProv.
	Deps(m *Map, s *MapState, orders Orders, thisProv Province) map[Province]struct{}

	// Resolve decides this order's status given only the restricted view
	// status, which contains exactly the entries Deps asked for that have
	// themselves been resolved so far. A nil result means "not yet
	// decidable" — the driver will retry this order on a later pass once
	// more of the graph is known.
	Resolve(m *Map, s *MapState, orders Orders, thisProv Province, status Status) *bool
}

// Orders is a phase's full order set, keyed by the province of the unit
// giving the order. Per invariant I1, callers must supply an order for
// every occupied province — defaulting unordered units to Hold — before
// calling Adjudicate.
type Orders map[Province]Adjudicator

func addDep(deps map[Province]struct{}, p Province) map[Province]struct{} {
	if deps == nil {
		deps = make(map[Province]struct{})
	}
	deps[p] = struct{}{}
	return deps
}

// moveTo reports whether o is a Move order targeting prov.
func moveTo(o Adjudicator, prov Province) bool {
	mv, ok := o.(Move)
	return ok && mv.Dest.Province == prov
}

// Hold is an order for a unit to stay in place. It succeeds unless the unit
// is dislodged by a successful move into its province.
type Hold struct{}

func (Hold) Deps(m *Map, s *MapState, orders Orders, thisProv Province) map[Province]struct{} {
	return DepsForHold(orders, thisProv)
}

func (Hold) Resolve(m *Map, s *MapState, orders Orders, thisProv Province, status Status) *bool {
	return HoldSucceeds(orders, status, thisProv)
}

// Move is an order for a unit to relocate to Dest. It succeeds iff its
// attack strength beats the hold strength of any occupant (or, in a
// head-to-head battle, the occupant's defend strength) and the prevent
// strength of every other unit moving to the same destination.
type Move struct {
	Dest Dest
}

// Dest names a target province and, for a fleet, the coast it lands on.
type Dest struct {
	Province Province
	Coast    Coast
}

// IsTo reports whether this move targets prov (ignoring coast).
func (mv Move) IsTo(prov Province) bool { return mv.Dest.Province == prov }

func (mv Move) Deps(m *Map, s *MapState, orders Orders, thisProv Province) map[Province]struct{} {
	// A self-move (dest == own province) is a degenerate order that always
	// fails; treating it as depending on nothing keeps it resolvable
	// immediately. No code in this package creates such an order; it only
	// appears if a caller supplies one.
	if thisProv == mv.Dest.Province {
		return nil
	}

	var deps map[Province]struct{}
	for src2, order2 := range orders {
		switch sup := order2.(type) {
		case SupportMove:
			if sup.Dest == mv.Dest.Province && moveTo(orders[sup.Src], sup.Dest) {
				deps = addDep(deps, src2)
			}
		case Convoy:
			if (sup.Dest == mv.Dest.Province || sup.Src == mv.Dest.Province) && moveTo(orders[sup.Src], sup.Dest) {
				deps = addDep(deps, src2)
			}
		case SupportHold:
			if sup.Target == mv.Dest.Province {
				if ord, ok := orders[sup.Target]; ok {
					if _, isMove := ord.(Move); !isMove {
						deps = addDep(deps, src2)
					}
				}
			}
		}
	}

	if destOrder, ok := orders[mv.Dest.Province]; ok {
		if _, isMove := destOrder.(Move); isMove {
			deps = addDep(deps, mv.Dest.Province)

			if moveTo(destOrder, thisProv) {
				// Possible head-to-head: the occupant's supporters matter too.
				for src2, order2 := range orders {
					if sm, ok := order2.(SupportMove); ok && sm.Src == mv.Dest.Province && sm.Dest == thisProv {
						deps = addDep(deps, src2)
					}
				}
			}
		}
	}
	return deps
}

func (mv Move) Resolve(m *Map, s *MapState, orders Orders, thisProv Province, status Status) *bool {
	if thisProv == mv.Dest.Province {
		return boolPtr(false)
	}

	attack := computeAttackStrength(m, s, orders, status, thisProv)

	var opposing []Bounds
	if destOrder, ok := orders[mv.Dest.Province]; ok && moveTo(destOrder, thisProv) {
		switch hth := isHeadToHead(m, s, orders, status, thisProv); {
		case isFalse(hth):
			// not a head-to-head battle; nothing to add here
		case hth == nil:
			def := computeDefendStrength(m, s, orders, status, mv.Dest.Province)
			def.Min = 0
			opposing = append(opposing, def)
		case isTrue(hth):
			opposing = append(opposing, computeDefendStrength(m, s, orders, status, mv.Dest.Province))
		}
		opposing = append(opposing, computeHoldStrength(s, orders, status, mv.Dest.Province))
	} else {
		opposing = append(opposing, computeHoldStrength(s, orders, status, mv.Dest.Province))
	}

	for prov2, order2 := range orders {
		if prov2 == thisProv {
			continue
		}
		if moveTo(order2, mv.Dest.Province) {
			opposing = append(opposing, computePreventStrength(m, s, orders, status, prov2))
		}
	}

	beatsAll := true
	for _, b := range opposing {
		if attack.Max <= b.Min {
			return boolPtr(false)
		}
		if attack.Min <= b.Max {
			beatsAll = false
		}
	}
	if beatsAll {
		return boolPtr(true)
	}
	return nil
}

// SupportHold is an order to support another unit holding its ground. The
// target's province is named, not its coast: support does not distinguish
// between a unit's coasts.
type SupportHold struct {
	Target Province
}

func (sh SupportHold) supportValid(m *Map, s *MapState, orders Orders, thisProv Province) bool {
	ord, ok := orders[sh.Target]
	if !ok {
		return false
	}
	if _, isMove := ord.(Move); isMove {
		return false
	}
	return unitCanReach(m, s, thisProv, sh.Target)
}

func (sh SupportHold) Deps(m *Map, s *MapState, orders Orders, thisProv Province) map[Province]struct{} {
	if !sh.supportValid(m, s, orders, thisProv) {
		return nil
	}
	return DepsForTap(s, orders, thisProv)
}

func (sh SupportHold) Resolve(m *Map, s *MapState, orders Orders, thisProv Province, status Status) *bool {
	if !sh.supportValid(m, s, orders, thisProv) {
		return boolPtr(false)
	}
	return IsUntapped(m, s, orders, status, thisProv, "")
}

// SupportMove is an order to support another unit's move to Dest.
type SupportMove struct {
	Src  Province
	Dest Province
}

func isSupportTo(o Adjudicator, src, dest Province) bool {
	sm, ok := o.(SupportMove)
	return ok && sm.Src == src && sm.Dest == dest
}

func (sm SupportMove) supportValid(m *Map, s *MapState, orders Orders, thisProv Province) bool {
	if sm.Src == sm.Dest {
		return false
	}
	srcOrder, ok := orders[sm.Src]
	if !ok || !moveTo(srcOrder, sm.Dest) {
		return false
	}
	return unitCanReach(m, s, thisProv, sm.Dest)
}

func (sm SupportMove) Deps(m *Map, s *MapState, orders Orders, thisProv Province) map[Province]struct{} {
	if !sm.supportValid(m, s, orders, thisProv) {
		return nil
	}
	return DepsForTap(s, orders, thisProv)
}

func (sm SupportMove) Resolve(m *Map, s *MapState, orders Orders, thisProv Province, status Status) *bool {
	if !sm.supportValid(m, s, orders, thisProv) {
		return boolPtr(false)
	}
	return IsUntapped(m, s, orders, status, thisProv, sm.Dest)
}

// Convoy is an order for a fleet to carry an army from Src to Dest. It
// succeeds iff the convoying fleet sits in a sea province and is not
// dislodged.
type Convoy struct {
	Src  Province
	Dest Province
}

func (cv Convoy) Deps(m *Map, s *MapState, orders Orders, thisProv Province) map[Province]struct{} {
	if !m.IsSea(thisProv) {
		return nil
	}
	return DepsForHold(orders, thisProv)
}

func (cv Convoy) Resolve(m *Map, s *MapState, orders Orders, thisProv Province, status Status) *bool {
	if !m.IsSea(thisProv) {
		return boolPtr(false)
	}
	return HoldSucceeds(orders, status, thisProv)
}

func unitCanReach(m *Map, s *MapState, src, dest Province) bool {
	u, ok := s.Units[src]
	if !ok {
		invariantf(src, "unitCanReach: no unit at supporting province")
	}
	if u.Kind == ArmyUnit {
		return m.ArmyAdjacent(src, dest)
	}
	return m.FleetAdjacent(FleetLoc{src, u.Coast}, FleetLoc{dest, NoCoast})
}
