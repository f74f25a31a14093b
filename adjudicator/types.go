// Package adjudicator resolves a single movement phase of a Diplomacy-style
// game: given a map, a board position, and a set of orders, it decides which
// orders succeed. It follows Kruijswijk's adjudication algorithm (the DATC
// reference semantics) rather than implementing a particular game variant's
// rules engine; it never reads a clock, a network socket, or the
// environment, and it never logs.
package adjudicator

import (
	"fmt"
	"strings"
	"sync"
)

// Province identifies a location on the board by its standard abbreviation
// (e.g. "par", "stp").
type Province string

// Coast narrows a Province to one of its coastlines. Only a handful of
// provinces (Spain, St Petersburg, Bulgaria in the standard map) have more
// than one coast; everywhere else Coast is NoCoast.
type Coast string

// NoCoast marks a location that has no coast, or a unit/order for which
// coast is not meaningful (armies, and any fleet in a single-coast province).
const NoCoast Coast = ""

// FleetLoc names a province together with the coast a fleet sits on or is
// moving to. For single-coast provinces and inland/sea provinces, Coast is
// NoCoast.
type FleetLoc struct {
	Province Province
	Coast    Coast
}

// MarshalText renders a FleetLoc as "province" or, when it has a coast,
// "province/coast" — the only way to make FleetLoc usable as a map key in
// JSON, since encoding/json requires TextMarshaler (or a string/integer
// kind) for map keys and rejects a plain struct key outright.
func (f FleetLoc) MarshalText() ([]byte, error) {
	if f.Coast == NoCoast {
		return []byte(f.Province), nil
	}
	return []byte(string(f.Province) + "/" + string(f.Coast)), nil
}

// UnmarshalText is the inverse of MarshalText.
func (f *FleetLoc) UnmarshalText(text []byte) error {
	s := string(text)
	prov, coast, hasCoast := strings.Cut(s, "/")
	if prov == "" {
		return fmt.Errorf("adjudicator: empty province in FleetLoc %q", s)
	}
	f.Province = Province(prov)
	if hasCoast {
		f.Coast = Coast(coast)
	} else {
		f.Coast = NoCoast
	}
	return nil
}

// ArmyEdge is one directed army-adjacency between two provinces.
type ArmyEdge struct {
	From, To Province
}

// FleetEdge is one directed fleet-adjacency between two coasts.
type FleetEdge struct {
	From, To FleetLoc
}

// ProvinceMeta describes the static properties of a province that the
// adjudicator needs: which coasts it has (empty for inland and most coastal
// provinces) and whether it is a sea province.
type ProvinceMeta struct {
	Coasts []Coast
	IsSea  bool
}

// HasCoast reports whether c is one of p's named coasts.
func (p ProvinceMeta) HasCoast(c Coast) bool {
	for _, pc := range p.Coasts {
		if pc == c {
			return true
		}
	}
	return false
}

// Map is the static board: province metadata plus the army and fleet
// adjacency relations, each a set of ordered pairs. A Map is built once
// (see package mapdata for the standard board) and treated as immutable;
// the coast-agnostic sea-connectivity index behind SeaConnected is built
// lazily on first use, while ArmyAdjacent and FleetAdjacent read the
// adjacency sets directly.
type Map struct {
	Provinces map[Province]ProvinceMeta
	ArmyAdj   map[ArmyEdge]struct{}
	FleetAdj  map[FleetEdge]struct{}

	once     sync.Once
	seaConn  map[Province]map[Province]struct{}
}

func (m *Map) buildCache() {
	m.once.Do(func() {
		m.seaConn = make(map[Province]map[Province]struct{}, len(m.Provinces))
		for e := range m.FleetAdj {
			if m.seaConn[e.From.Province] == nil {
				m.seaConn[e.From.Province] = make(map[Province]struct{})
			}
			m.seaConn[e.From.Province][e.To.Province] = struct{}{}
		}
	})
}

// ArmyAdjacent reports whether an army can move directly from one province
// to another.
func (m *Map) ArmyAdjacent(from, to Province) bool {
	_, ok := m.ArmyAdj[ArmyEdge{from, to}]
	return ok
}

// FleetAdjacent reports whether a fleet can move directly between two
// specific coasts.
func (m *Map) FleetAdjacent(from, to FleetLoc) bool {
	_, ok := m.FleetAdj[FleetEdge{from, to}]
	return ok
}

// SeaConnected reports whether some fleet adjacency links from to to,
// ignoring coast. Convoy chains reason about provinces, not coasts: an army
// embarking, travelling between convoying fleets, or disembarking never
// specifies a coast for either end of the hop.
func (m *Map) SeaConnected(from, to Province) bool {
	m.buildCache()
	_, ok := m.seaConn[from][to]
	return ok
}

// IsSea reports whether p is a sea province.
func (m *Map) IsSea(p Province) bool {
	return m.Provinces[p].IsSea
}

// ValidDestCoast reports whether coast c is a legal landing coast at
// province p: one of p's named coasts, or NoCoast when p has none.
func (m *Map) ValidDestCoast(p Province, c Coast) bool {
	meta, ok := m.Provinces[p]
	if !ok {
		return false
	}
	if len(meta.Coasts) == 0 {
		return c == NoCoast
	}
	return meta.HasCoast(c)
}

// UnitKind distinguishes the two unit types.
type UnitKind int

const (
	ArmyUnit UnitKind = iota
	FleetUnit
)

func (k UnitKind) String() string {
	if k == FleetUnit {
		return "fleet"
	}
	return "army"
}

// MarshalJSON renders a UnitKind the way the rest of this package's wire
// format renders discriminators: a lowercase word, not a bare integer.
func (k UnitKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (k *UnitKind) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"fleet"`:
		*k = FleetUnit
	default:
		*k = ArmyUnit
	}
	return nil
}

// Unit is a single piece on the board. Coast is meaningful only for
// FleetUnit, and only in provinces with more than one coast.
type Unit struct {
	Kind        UnitKind `json:"kind"`
	Nationality string   `json:"nationality"`
	Coast       Coast    `json:"coast,omitempty"`
}

// MapState is the board position: the unit occupying each province, and
// which power currently owns each supply center. Ownership does not affect
// adjudication directly, but ApplyAdjudication carries it forward untouched
// so callers don't have to reassemble it every phase.
type MapState struct {
	Units     map[Province]Unit   `json:"units"`
	Ownership map[Province]string `json:"ownership,omitempty"`
}

// UnitAt returns the unit at p, if any.
func (s *MapState) UnitAt(p Province) (Unit, bool) {
	u, ok := s.Units[p]
	return u, ok
}
