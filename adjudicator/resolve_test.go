package adjudicator

import (
	"testing"
)

// smallMap builds a minimal four-province map: two land provinces (a, b)
// connected to each other and to one sea province (s), plus a third
// landlocked province (c) adjacent only to b. Enough topology to exercise
// holds, moves, supports, convoys and cycles without pulling in the full
// standard board.
func smallMap() *Map {
	m := &Map{
		Provinces: map[Province]ProvinceMeta{
			"a": {},
			"b": {},
			"c": {},
			"s": {IsSea: true},
		},
		ArmyAdj: map[ArmyEdge]struct{}{},
		FleetAdj: map[FleetEdge]struct{}{},
	}
	for _, e := range [][2]Province{{"a", "b"}, {"b", "c"}, {"a", "s"}, {"b", "s"}} {
		m.ArmyAdj[ArmyEdge{e[0], e[1]}] = struct{}{}
		m.ArmyAdj[ArmyEdge{e[1], e[0]}] = struct{}{}
	}
	for _, e := range [][2]Province{{"a", "s"}, {"b", "s"}} {
		la, lb := FleetLoc{e[0], NoCoast}, FleetLoc{e[1], NoCoast}
		m.FleetAdj[FleetEdge{la, lb}] = struct{}{}
		m.FleetAdj[FleetEdge{lb, la}] = struct{}{}
	}
	return m
}

func u(nat string) Unit { return Unit{Kind: ArmyUnit, Nationality: nat} }

// P1: a hold with nothing opposing it always succeeds.
func TestP1_UncontestedHoldSucceeds(t *testing.T) {
	m := smallMap()
	s := &MapState{Units: map[Province]Unit{"a": u("x")}}
	orders := Orders{"a": Hold{}}
	result := Adjudicate(m, s, orders)
	if !result["a"] {
		t.Fatal("an uncontested hold must succeed")
	}
}

// P2: resolution is independent of Go map iteration order. Run many times;
// Adjudicate must always reach the same fixed point regardless of which
// order the driver happens to visit provinces in during a pass.
func TestP2_OrderIndependence(t *testing.T) {
	m := smallMap()
	s := &MapState{Units: map[Province]Unit{"a": u("x"), "b": u("y")}}
	orders := Orders{
		"a": Move{Dest: Dest{Province: "b"}},
		"b": Move{Dest: Dest{Province: "a"}},
	}
	var first map[Province]bool
	for i := 0; i < 25; i++ {
		result := Adjudicate(m, s, orders)
		if first == nil {
			first = result
			continue
		}
		if result["a"] != first["a"] || result["b"] != first["b"] {
			t.Fatalf("resolution changed across runs: %+v vs %+v", first, result)
		}
	}
}

// Equal-strength head-to-head bounces.
func TestHeadToHeadBounce(t *testing.T) {
	m := smallMap()
	s := &MapState{Units: map[Province]Unit{"a": u("x"), "b": u("y")}}
	orders := Orders{
		"a": Move{Dest: Dest{Province: "b"}},
		"b": Move{Dest: Dest{Province: "a"}},
	}
	result := Adjudicate(m, s, orders)
	if result["a"] || result["b"] {
		t.Fatal("equal strength head-to-head must bounce both directions")
	}
}

// A supported move beats an unsupported hold.
func TestSupportedMoveBeatsHold(t *testing.T) {
	m := smallMap()
	s := &MapState{Units: map[Province]Unit{
		"a": u("x"),
		"b": u("y"),
		"c": u("x"),
	}}
	orders := Orders{
		"a": Move{Dest: Dest{Province: "b"}},
		"b": Hold{},
		"c": SupportMove{Src: "a", Dest: "b"},
	}
	result := Adjudicate(m, s, orders)
	if !result["a"] {
		t.Fatal("a 2-strength supported attack should beat a bare hold")
	}
	if result["b"] {
		t.Fatal("the holding unit should be dislodged")
	}
}

// A three-unit rotation (a->b, b->c, c->a) with nothing else involved forms
// a closed cycle and all three moves succeed together.
func TestThreeCycleAllSucceed(t *testing.T) {
	m := smallMap()
	m.ArmyAdj[ArmyEdge{"c", "a"}] = struct{}{}
	m.ArmyAdj[ArmyEdge{"a", "c"}] = struct{}{}
	s := &MapState{Units: map[Province]Unit{"a": u("x"), "b": u("y"), "c": u("z")}}
	orders := Orders{
		"a": Move{Dest: Dest{Province: "b"}},
		"b": Move{Dest: Dest{Province: "c"}},
		"c": Move{Dest: Dest{Province: "a"}},
	}
	result := Adjudicate(m, s, orders)
	if !result["a"] || !result["b"] || !result["c"] {
		t.Fatalf("a closed rotation should resolve every move true, got %+v", result)
	}
}

// A move with no direct adjacency and no possible convoy path never
// succeeds, regardless of what else is on the board.
func TestMoveWithNoPathFails(t *testing.T) {
	m := smallMap()
	s := &MapState{Units: map[Province]Unit{"a": u("x")}}
	orders := Orders{
		"a": Move{Dest: Dest{Province: "c"}},
	}
	result := Adjudicate(m, s, orders)
	if result["a"] {
		t.Fatal("a has neither a direct nor a convoy route to c; the move must fail")
	}
}

// InvariantError panics, rather than returning an error value, for a
// programmer-error order (e.g. a move order naming a province with no unit).
func TestInvariantPanicsOnMissingUnit(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for a move order at an empty province")
		}
		if _, ok := r.(*InvariantError); !ok {
			t.Fatalf("expected *InvariantError, got %T", r)
		}
	}()
	m := smallMap()
	s := &MapState{Units: map[Province]Unit{}}
	orders := Orders{"a": Move{Dest: Dest{Province: "b"}}}
	Adjudicate(m, s, orders)
}
