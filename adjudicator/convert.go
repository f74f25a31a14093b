package adjudicator

// Convert is an extension order kind — not one of the five standard shapes
// — included as a worked example of adding a variant without touching this
// package's core switch statements. It models a "core" game-variant
// directive (a unit declaring itself converted in place, as opposed to
// holding, moving, or supporting) whose resolution rule is identical to a
// support order's: it succeeds iff the unit giving it is not tapped by an
// incoming attack. It is built directly on the two reusable helpers this
// package exposes for exactly that purpose, DepsForTap and IsUntapped.
type Convert struct{}

func (Convert) Deps(m *Map, s *MapState, orders Orders, thisProv Province) map[Province]struct{} {
	return DepsForTap(s, orders, thisProv)
}

func (Convert) Resolve(m *Map, s *MapState, orders Orders, thisProv Province, status Status) *bool {
	return IsUntapped(m, s, orders, status, thisProv, "")
}

const TypeConvert OrderType = "convert"

func init() {
	RegisterOrderType(TypeConvert,
		func(OrderMessage) (Adjudicator, error) { return Convert{}, nil },
		func(a Adjudicator) (OrderMessage, bool) {
			_, ok := a.(Convert)
			return OrderMessage{Type: TypeConvert}, ok
		},
	)
}
