package adjudicator_test

import (
	"encoding/json"
	"testing"

	"github.com/freeeve/dipadj/adjudicator"
	"github.com/freeeve/dipadj/mapdata"
)

// DATC test cases (Diplomacy Adjudicator Test Cases), numbered per
// Kruijswijk's reference list, exercised against the standard board.

func army(nat string) adjudicator.Unit {
	return adjudicator.Unit{Kind: adjudicator.ArmyUnit, Nationality: nat}
}

func fleet(nat string, coast adjudicator.Coast) adjudicator.Unit {
	return adjudicator.Unit{Kind: adjudicator.FleetUnit, Nationality: nat, Coast: coast}
}

func state(units map[adjudicator.Province]adjudicator.Unit) *adjudicator.MapState {
	return &adjudicator.MapState{Units: units}
}

func dest(p string) adjudicator.Dest {
	return adjudicator.Dest{Province: adjudicator.Province(p)}
}

func destCoast(p string, c adjudicator.Coast) adjudicator.Dest {
	return adjudicator.Dest{Province: adjudicator.Province(p), Coast: c}
}

// 6.A.4: A army can't swap places with another army without a convoy.
func TestDATC_6A4_DirectSwapFails(t *testing.T) {
	m := mapdata.Standard()
	s := state(map[adjudicator.Province]adjudicator.Unit{
		"con": army("turkey"),
		"bul": army("austria"),
	})
	orders := adjudicator.Orders{
		"con": adjudicator.Move{Dest: dest("bul")},
		"bul": adjudicator.Move{Dest: dest("con")},
	}
	result := adjudicator.Adjudicate(m, s, orders)
	if result["con"] || result["bul"] {
		t.Fatalf("direct army swap must not succeed, got %+v", result)
	}
}

// 6.A.5: A supported attack (strength 2) dislodges an unsupported hold
// (strength 1).
func TestDATC_6A5_SupportedAttackBeatsHold(t *testing.T) {
	m := mapdata.Standard()
	s := state(map[adjudicator.Province]adjudicator.Unit{
		"ven": army("italy"),
		"tyr": army("austria"),
		"tri": army("austria"),
	})
	orders := adjudicator.Orders{
		"ven": adjudicator.Hold{},
		"tyr": adjudicator.SupportMove{Src: "tri", Dest: "ven"},
		"tri": adjudicator.Move{Dest: dest("ven")},
	}
	result := adjudicator.Adjudicate(m, s, orders)
	if !result["tri"] {
		t.Fatal("supported attack (strength 2) should beat an unsupported hold (strength 1)")
	}
	if result["ven"] {
		t.Fatal("Venice's hold should fail: it is dislodged")
	}
}

// 6.B.1: Fleet move to a split-coast province names only one reachable
// coast; that move should succeed with the coast it specifies.
func TestDATC_6B1_SplitCoastMove(t *testing.T) {
	m := mapdata.Standard()
	s := state(map[adjudicator.Province]adjudicator.Unit{
		"gol": fleet("france", adjudicator.NoCoast),
	})
	orders := adjudicator.Orders{
		"gol": adjudicator.Move{Dest: destCoast("spa", mapdata.SouthCoast)},
	}
	result := adjudicator.Adjudicate(m, s, orders)
	if !result["gol"] {
		t.Fatal("fleet GoL -> Spain(sc) should succeed")
	}
}

// A unit's support cannot be cut by the very unit it is supporting an
// attack against.
func TestDATC_SupportNotCutByTargetOfSupportedAttack(t *testing.T) {
	m := mapdata.Standard()
	s := state(map[adjudicator.Province]adjudicator.Unit{
		"ber": army("germany"),
		"pru": army("germany"),
		"sil": army("russia"),
	})
	orders := adjudicator.Orders{
		"ber": adjudicator.SupportMove{Src: "pru", Dest: "sil"},
		"pru": adjudicator.Move{Dest: dest("sil")},
		"sil": adjudicator.Move{Dest: dest("ber")},
	}
	result := adjudicator.Adjudicate(m, s, orders)
	if !result["pru"] {
		t.Fatal("Prussia -> Silesia should succeed: Berlin's support is not cut by the very unit it attacks")
	}
	if result["sil"] {
		t.Fatal("Silesia -> Berlin should bounce: Berlin is defended (support still counts)")
	}
}

// 6.F.1-style: a convoyed army reaches a non-adjacent coastal destination.
func TestDATC_ConvoySimpleSucceeds(t *testing.T) {
	m := mapdata.Standard()
	s := state(map[adjudicator.Province]adjudicator.Unit{
		"lon": army("england"),
		"eng": fleet("england", adjudicator.NoCoast),
	})
	orders := adjudicator.Orders{
		"lon": adjudicator.Move{Dest: dest("bre")},
		"eng": adjudicator.Convoy{Src: "lon", Dest: "bre"},
	}
	result := adjudicator.Adjudicate(m, s, orders)
	if !result["lon"] {
		t.Fatal("convoyed London -> Brest should succeed with nothing opposing it")
	}
	if !result["eng"] {
		t.Fatal("the convoying fleet's order should resolve true (untapped)")
	}
}

// 6.F.: a convoy is disrupted when its escorting fleet is dislodged.
func TestDATC_ConvoyDisruptedByDislodgedFleet(t *testing.T) {
	m := mapdata.Standard()
	s := state(map[adjudicator.Province]adjudicator.Unit{
		"lon": army("england"),
		"eng": fleet("england", adjudicator.NoCoast),
		"mao": fleet("france", adjudicator.NoCoast),
		"iri": fleet("france", adjudicator.NoCoast),
	})
	orders := adjudicator.Orders{
		"lon": adjudicator.Move{Dest: dest("bre")},
		"eng": adjudicator.Convoy{Src: "lon", Dest: "bre"},
		"mao": adjudicator.Move{Dest: dest("eng")},
		"iri": adjudicator.SupportMove{Src: "mao", Dest: "eng"},
	}
	result := adjudicator.Adjudicate(m, s, orders)
	if result["eng"] {
		t.Fatal("the convoying fleet should be dislodged (2 vs 1)")
	}
	if result["lon"] {
		t.Fatal("London's convoyed move must fail once its only fleet is dislodged")
	}
}

// Head-to-head: two units directly swapping attacks at the same strength
// both bounce.
func TestDATC_HeadToHeadEqualStrengthBounces(t *testing.T) {
	m := mapdata.Standard()
	s := state(map[adjudicator.Province]adjudicator.Unit{
		"ber": army("germany"),
		"kie": army("germany"),
	})
	orders := adjudicator.Orders{
		"ber": adjudicator.Move{Dest: dest("kie")},
		"kie": adjudicator.Move{Dest: dest("ber")},
	}
	result := adjudicator.Adjudicate(m, s, orders)
	if result["ber"] || result["kie"] {
		t.Fatal("equal-strength head-to-head should bounce both ways")
	}
}

// TestJSONRoundTrip exercises the tagged wire format for every standard
// order kind plus the Convert extension.
func TestJSONRoundTrip(t *testing.T) {
	orders := adjudicator.Orders{
		"par": adjudicator.Hold{},
		"bur": adjudicator.Move{Dest: destCoast("mun", adjudicator.NoCoast)},
		"mar": adjudicator.SupportHold{Target: "par"},
		"gas": adjudicator.SupportMove{Src: "bur", Dest: "mun"},
		"eng": adjudicator.Convoy{Src: "lon", Dest: "bre"},
		"pic": adjudicator.Convert{},
	}
	data, err := adjudicator.MarshalOrdersJSON(orders)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded, err := adjudicator.UnmarshalOrdersJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != len(orders) {
		t.Fatalf("round trip lost orders: got %d, want %d", len(decoded), len(orders))
	}
	if _, ok := decoded["eng"].(adjudicator.Convoy); !ok {
		t.Fatal("convoy order did not round-trip to the right concrete type")
	}
	if _, ok := decoded["pic"].(adjudicator.Convert); !ok {
		t.Fatal("convert order did not round-trip to the right concrete type")
	}
}

// ApplyAdjudication should produce retreat options for a dislodged unit,
// excluding a neighbour that is still occupied and including the province
// the attacker vacated.
func TestApplyAdjudicationRetreatOptions(t *testing.T) {
	m := mapdata.Standard()
	s := state(map[adjudicator.Province]adjudicator.Unit{
		"ven": army("italy"),
		"tyr": army("austria"),
		"tri": army("austria"),
	})
	orders := adjudicator.Orders{
		"ven": adjudicator.Hold{},
		"tyr": adjudicator.SupportMove{Src: "tri", Dest: "ven"},
		"tri": adjudicator.Move{Dest: dest("ven")},
	}
	result := adjudicator.Adjudicate(m, s, orders)
	next, retreats := adjudicator.ApplyAdjudication(m, s, orders, result)

	if _, occupied := next.Units["ven"]; !occupied {
		t.Fatal("Venice should be occupied by the victorious Austrian army")
	}
	opts, ok := retreats["ven"]
	if !ok {
		t.Fatal("the dislodged Italian army should have retreat options recorded")
	}
	if opts.Unit.Nationality != "italy" {
		t.Fatalf("retreat options recorded for the wrong unit: %+v", opts.Unit)
	}
	if _, canRetreatToTyr := opts.Dest[adjudicator.FleetLoc{Province: "tyr", Coast: adjudicator.NoCoast}]; canRetreatToTyr {
		t.Fatal("Venice cannot retreat to Tyrolia: still occupied by the Austrian supporter")
	}
	if _, canRetreatToTri := opts.Dest[adjudicator.FleetLoc{Province: "tri", Coast: adjudicator.NoCoast}]; !canRetreatToTri {
		t.Fatal("Venice should be able to retreat to Trieste: vacated by the attacker and uncontested")
	}
}

// The retreat options ApplyAdjudication produces must be JSON-encodable:
// this is exactly the value cmd/adjudicate writes to its output document,
// and its map key is a FleetLoc, a plain struct that encoding/json cannot
// key a map by without a TextMarshaler/TextUnmarshaler pair.
func TestRetreatOptionsJSONRoundTrip(t *testing.T) {
	m := mapdata.Standard()
	s := state(map[adjudicator.Province]adjudicator.Unit{
		"ven": army("italy"),
		"tyr": army("austria"),
		"tri": army("austria"),
	})
	orders := adjudicator.Orders{
		"ven": adjudicator.Hold{},
		"tyr": adjudicator.SupportMove{Src: "tri", Dest: "ven"},
		"tri": adjudicator.Move{Dest: dest("ven")},
	}
	result := adjudicator.Adjudicate(m, s, orders)
	_, retreats := adjudicator.ApplyAdjudication(m, s, orders, result)

	if len(retreats) == 0 {
		t.Fatal("expected at least one retreat to exercise the encoding path")
	}

	data, err := json.Marshal(retreats)
	if err != nil {
		t.Fatalf("marshal retreat options: %v", err)
	}

	var decoded map[adjudicator.Province]*adjudicator.RetreatOptions
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal retreat options: %v", err)
	}

	opts, ok := decoded["ven"]
	if !ok {
		t.Fatal("decoded retreat options missing the dislodged province")
	}
	if _, canRetreatToTri := opts.Dest[adjudicator.FleetLoc{Province: "tri", Coast: adjudicator.NoCoast}]; !canRetreatToTri {
		t.Fatal("round-tripped retreat options lost the Trieste destination")
	}
}
