// Package mapdata provides the compiled-in standard 75-province Diplomacy
// board: every province, its coasts, and the army/fleet adjacency relations
// between them. It is a fixture, not a parser — there is no support for
// reading a map definition from a file; adding a new board means adding a
// new builder function in the style of this one.
package mapdata

import (
	"sync"

	"github.com/freeeve/dipadj/adjudicator"
)

// The three split-coast provinces in the standard map use these coasts;
// every other province uses adjudicator.NoCoast.
const (
	NorthCoast adjudicator.Coast = "nc"
	SouthCoast adjudicator.Coast = "sc"
	EastCoast  adjudicator.Coast = "ec"
)

var (
	standardOnce sync.Once
	standardInst *adjudicator.Map
)

// Standard returns the standard Diplomacy board. The map is built once and
// cached; callers must not mutate the returned value.
func Standard() *adjudicator.Map {
	standardOnce.Do(func() {
		standardInst = buildStandard()
	})
	return standardInst
}

func buildStandard() *adjudicator.Map {
	m := &adjudicator.Map{
		Provinces: make(map[adjudicator.Province]adjudicator.ProvinceMeta, 75),
		ArmyAdj:   make(map[adjudicator.ArmyEdge]struct{}, 170),
		FleetAdj:  make(map[adjudicator.FleetEdge]struct{}, 170),
	}

	prov := func(id string, isSea bool, coasts ...adjudicator.Coast) {
		m.Provinces[adjudicator.Province(id)] = adjudicator.ProvinceMeta{
			Coasts: coasts,
			IsSea:  isSea,
		}
	}

	addArmyAdj := func(a, b string) {
		pa, pb := adjudicator.Province(a), adjudicator.Province(b)
		m.ArmyAdj[adjudicator.ArmyEdge{From: pa, To: pb}] = struct{}{}
		m.ArmyAdj[adjudicator.ArmyEdge{From: pb, To: pa}] = struct{}{}
	}

	addFleetAdj := func(a string, ca adjudicator.Coast, b string, cb adjudicator.Coast) {
		la := adjudicator.FleetLoc{Province: adjudicator.Province(a), Coast: ca}
		lb := adjudicator.FleetLoc{Province: adjudicator.Province(b), Coast: cb}
		m.FleetAdj[adjudicator.FleetEdge{From: la, To: lb}] = struct{}{}
		m.FleetAdj[adjudicator.FleetEdge{From: lb, To: la}] = struct{}{}
	}

	addBothAdj := func(a, b string) {
		addArmyAdj(a, b)
		addFleetAdj(a, adjudicator.NoCoast, b, adjudicator.NoCoast)
	}

	// --- Inland provinces (14) ---
	for _, id := range []string{"boh", "bud", "bur", "gal", "mos", "mun", "par", "ruh", "ser", "sil", "tyr", "ukr", "vie", "war"} {
		prov(id, false)
	}

	// --- Coastal provinces without split coasts (39) ---
	for _, id := range []string{
		"alb", "ank", "apu", "arm", "bel", "ber", "bre", "cly", "con", "den",
		"edi", "fin", "gas", "gre", "hol", "kie", "lon", "lvn", "lvp", "mar",
		"naf", "nap", "nwy", "pic", "pie", "por", "pru", "rom", "rum", "sev",
		"smy", "swe", "syr", "tri", "tun", "tus", "ven", "wal", "yor",
	} {
		prov(id, false)
	}

	// --- Split-coast provinces (3) ---
	prov("bul", false, EastCoast, SouthCoast)
	prov("spa", false, NorthCoast, SouthCoast)
	prov("stp", false, NorthCoast, SouthCoast)

	// --- Sea provinces (19) ---
	for _, id := range []string{
		"adr", "aeg", "bal", "bar", "bla", "bot", "eas", "eng", "gol", "hel",
		"ion", "iri", "mao", "nao", "nrg", "nth", "ska", "tys", "wes",
	} {
		prov(id, true)
	}

	nc := adjudicator.NoCoast

	// ---- Sea-to-sea ----
	addFleetAdj("adr", nc, "ion", nc)
	addFleetAdj("aeg", nc, "eas", nc)
	addFleetAdj("aeg", nc, "ion", nc)
	addFleetAdj("bal", nc, "bot", nc)
	addFleetAdj("eng", nc, "iri", nc)
	addFleetAdj("eng", nc, "mao", nc)
	addFleetAdj("eng", nc, "nth", nc)
	addFleetAdj("gol", nc, "tys", nc)
	addFleetAdj("gol", nc, "wes", nc)
	addFleetAdj("hel", nc, "nth", nc)
	addFleetAdj("ion", nc, "eas", nc)
	addFleetAdj("ion", nc, "tys", nc)
	addFleetAdj("iri", nc, "mao", nc)
	addFleetAdj("iri", nc, "nao", nc)
	addFleetAdj("mao", nc, "nao", nc)
	addFleetAdj("mao", nc, "wes", nc)
	addFleetAdj("nao", nc, "nrg", nc)
	addFleetAdj("nth", nc, "nrg", nc)
	addFleetAdj("nth", nc, "ska", nc)
	addFleetAdj("nrg", nc, "bar", nc)
	addFleetAdj("tys", nc, "wes", nc)

	// ---- Sea-to-coastal ----
	addFleetAdj("adr", nc, "alb", nc)
	addFleetAdj("adr", nc, "apu", nc)
	addFleetAdj("adr", nc, "tri", nc)
	addFleetAdj("adr", nc, "ven", nc)

	addFleetAdj("aeg", nc, "bul", SouthCoast)
	addFleetAdj("aeg", nc, "con", nc)
	addFleetAdj("aeg", nc, "gre", nc)
	addFleetAdj("aeg", nc, "smy", nc)

	addFleetAdj("bal", nc, "ber", nc)
	addFleetAdj("bal", nc, "den", nc)
	addFleetAdj("bal", nc, "kie", nc)
	addFleetAdj("bal", nc, "lvn", nc)
	addFleetAdj("bal", nc, "pru", nc)
	addFleetAdj("bal", nc, "swe", nc)

	addFleetAdj("bar", nc, "nwy", nc)
	addFleetAdj("bar", nc, "stp", NorthCoast)

	addFleetAdj("bla", nc, "ank", nc)
	addFleetAdj("bla", nc, "arm", nc)
	addFleetAdj("bla", nc, "bul", EastCoast)
	addFleetAdj("bla", nc, "con", nc)
	addFleetAdj("bla", nc, "rum", nc)
	addFleetAdj("bla", nc, "sev", nc)

	addFleetAdj("bot", nc, "fin", nc)
	addFleetAdj("bot", nc, "lvn", nc)
	addFleetAdj("bot", nc, "stp", SouthCoast)
	addFleetAdj("bot", nc, "swe", nc)

	addFleetAdj("eas", nc, "smy", nc)
	addFleetAdj("eas", nc, "syr", nc)

	addFleetAdj("eng", nc, "bel", nc)
	addFleetAdj("eng", nc, "bre", nc)
	addFleetAdj("eng", nc, "lon", nc)
	addFleetAdj("eng", nc, "pic", nc)
	addFleetAdj("eng", nc, "wal", nc)

	addFleetAdj("gol", nc, "mar", nc)
	addFleetAdj("gol", nc, "pie", nc)
	addFleetAdj("gol", nc, "spa", SouthCoast)
	addFleetAdj("gol", nc, "tus", nc)

	addFleetAdj("hel", nc, "den", nc)
	addFleetAdj("hel", nc, "hol", nc)
	addFleetAdj("hel", nc, "kie", nc)

	addFleetAdj("ion", nc, "alb", nc)
	addFleetAdj("ion", nc, "apu", nc)
	addFleetAdj("ion", nc, "gre", nc)
	addFleetAdj("ion", nc, "nap", nc)
	addFleetAdj("ion", nc, "tun", nc)

	addFleetAdj("iri", nc, "lvp", nc)
	addFleetAdj("iri", nc, "wal", nc)

	addFleetAdj("mao", nc, "bre", nc)
	addFleetAdj("mao", nc, "gas", nc)
	addFleetAdj("mao", nc, "naf", nc)
	addFleetAdj("mao", nc, "por", nc)
	addFleetAdj("mao", nc, "spa", NorthCoast)
	addFleetAdj("mao", nc, "spa", SouthCoast)

	addFleetAdj("nao", nc, "cly", nc)
	addFleetAdj("nao", nc, "lvp", nc)

	addFleetAdj("nth", nc, "bel", nc)
	addFleetAdj("nth", nc, "den", nc)
	addFleetAdj("nth", nc, "edi", nc)
	addFleetAdj("nth", nc, "hol", nc)
	addFleetAdj("nth", nc, "lon", nc)
	addFleetAdj("nth", nc, "nwy", nc)
	addFleetAdj("nth", nc, "yor", nc)

	addFleetAdj("nrg", nc, "cly", nc)
	addFleetAdj("nrg", nc, "edi", nc)
	addFleetAdj("nrg", nc, "nwy", nc)

	addFleetAdj("ska", nc, "den", nc)
	addFleetAdj("ska", nc, "nwy", nc)
	addFleetAdj("ska", nc, "swe", nc)

	addFleetAdj("tys", nc, "nap", nc)
	addFleetAdj("tys", nc, "rom", nc)
	addFleetAdj("tys", nc, "tun", nc)
	addFleetAdj("tys", nc, "tus", nc)

	addFleetAdj("wes", nc, "naf", nc)
	addFleetAdj("wes", nc, "spa", SouthCoast)
	addFleetAdj("wes", nc, "tun", nc)

	// ---- Inland-to-inland (army only) ----
	for _, e := range [][2]string{
		{"boh", "gal"}, {"boh", "mun"}, {"boh", "sil"}, {"boh", "tyr"}, {"boh", "vie"},
		{"bud", "gal"}, {"bud", "vie"}, {"bur", "mun"}, {"bur", "par"}, {"bur", "ruh"},
		{"gal", "sil"}, {"gal", "ukr"}, {"gal", "vie"}, {"gal", "war"},
		{"mos", "ukr"}, {"mos", "war"}, {"mun", "ruh"}, {"mun", "sil"}, {"mun", "tyr"},
		{"sil", "war"}, {"tyr", "vie"}, {"ukr", "war"},
	} {
		addArmyAdj(e[0], e[1])
	}

	// ---- Inland-to-coastal (army only) ----
	for _, e := range [][2]string{
		{"bud", "rum"}, {"bud", "ser"}, {"bud", "tri"}, {"bur", "bel"}, {"bur", "gas"},
		{"bur", "mar"}, {"bur", "pic"}, {"gal", "rum"}, {"gas", "mar"}, {"mos", "lvn"},
		{"mos", "sev"}, {"mos", "stp"}, {"mun", "ber"}, {"mun", "kie"}, {"par", "bre"},
		{"par", "gas"}, {"par", "pic"}, {"ruh", "bel"}, {"ruh", "hol"}, {"ruh", "kie"},
		{"ser", "alb"}, {"ser", "bul"}, {"ser", "gre"}, {"ser", "rum"}, {"ser", "tri"},
		{"sil", "ber"}, {"sil", "pru"}, {"tyr", "pie"}, {"tyr", "tri"}, {"tyr", "ven"},
		{"ukr", "rum"}, {"ukr", "sev"}, {"vie", "tri"}, {"war", "lvn"}, {"war", "pru"},
	} {
		addArmyAdj(e[0], e[1])
	}

	// ---- Coastal-to-coastal, shared land and sea border (both) ----
	for _, e := range [][2]string{
		{"alb", "gre"}, {"alb", "tri"}, {"ank", "arm"}, {"ank", "con"}, {"apu", "nap"},
		{"apu", "ven"}, {"bel", "hol"}, {"bel", "pic"}, {"ber", "kie"}, {"ber", "pru"},
		{"bre", "gas"}, {"bre", "pic"}, {"cly", "edi"}, {"cly", "lvp"}, {"con", "smy"},
		{"den", "kie"}, {"den", "swe"}, {"edi", "yor"}, {"fin", "swe"}, {"hol", "kie"},
		{"lon", "wal"}, {"lon", "yor"}, {"lvp", "wal"}, {"mar", "pie"}, {"naf", "tun"},
		{"nwy", "swe"}, {"pie", "tus"}, {"pru", "lvn"}, {"rom", "nap"}, {"rom", "tus"},
		{"sev", "arm"}, {"sev", "rum"}, {"smy", "syr"}, {"tri", "ven"},
	} {
		addBothAdj(e[0], e[1])
	}

	// ---- Coastal-to-coastal, land border only, facing different seas (army only) ----
	for _, e := range [][2]string{
		{"ank", "smy"}, {"apu", "rom"}, {"arm", "smy"}, {"arm", "syr"}, {"edi", "lvp"},
		{"fin", "nwy"}, {"lvp", "yor"}, {"pie", "ven"}, {"rom", "ven"}, {"tus", "ven"},
		{"wal", "yor"},
	} {
		addArmyAdj(e[0], e[1])
	}

	// ---- Coastal-to-coastal, sea border only, no shared land (fleet only) ----
	addFleetAdj("con", nc, "bul", EastCoast)
	addFleetAdj("con", nc, "bul", SouthCoast)
	addFleetAdj("gre", nc, "bul", SouthCoast)
	addFleetAdj("rum", nc, "bul", EastCoast)
	addFleetAdj("gas", nc, "spa", NorthCoast)
	addFleetAdj("mar", nc, "spa", SouthCoast)
	addFleetAdj("por", nc, "spa", NorthCoast)
	addFleetAdj("por", nc, "spa", SouthCoast)
	addFleetAdj("fin", nc, "stp", SouthCoast)
	addFleetAdj("lvn", nc, "stp", SouthCoast)
	addFleetAdj("nwy", nc, "stp", NorthCoast)

	// ---- Coastal/split-coast to coastal, land border only, no shared sea (army only) ----
	for _, e := range [][2]string{
		{"con", "bul"}, {"gre", "bul"}, {"rum", "bul"},
		{"gas", "spa"}, {"mar", "spa"}, {"por", "spa"},
		{"fin", "stp"}, {"lvn", "stp"}, {"nwy", "stp"},
	} {
		addArmyAdj(e[0], e[1])
	}

	return m
}
