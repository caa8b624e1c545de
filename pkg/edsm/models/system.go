package models

import (
	"encoding/json"
	"errors"

	"go-edsm/pkg/edsm/decode"
)

// Coordinate is a position in the galaxy, in light years from Sol
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// UnmarshalJSON requires all three axes
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	type coordinateAlias Coordinate
	_, err := decode.Into(data, (*coordinateAlias)(c), "x", "y", "z")
	return err
}

// Statistic counts events in a system. Traffic and death reports share it.
type Statistic struct {
	Total int64 `json:"total"`
	Week  int64 `json:"week"`
	Day   int64 `json:"day"`
}

// UnmarshalJSON requires all three counters
func (s *Statistic) UnmarshalJSON(data []byte) error {
	type statisticAlias Statistic
	_, err := decode.Into(data, (*statisticAlias)(s), "total", "week", "day")
	return err
}

// Information describes who governs a system and what it produces. The
// upstream returns it either inline on the system or under "information".
type Information struct {
	Allegiance    *Allegiance `json:"allegiance,omitempty"`
	Government    *Government `json:"government,omitempty"`
	Faction       *string     `json:"faction,omitempty"`
	State         *State      `json:"-"`
	Population    *int64      `json:"population,omitempty"`
	Security      *Security   `json:"security,omitempty"`
	Economy       *Economy    `json:"economy,omitempty"`
	SecondEconomy *Economy    `json:"secondEconomy,omitempty"`
	Reserve       *Reserve    `json:"reserve,omitempty"`
}

// UnmarshalJSON reads the controlling faction's state from "factionState"
// or "state"
func (i *Information) UnmarshalJSON(data []byte) error {
	type informationAlias Information
	var alias informationAlias
	obj, err := decode.Into(data, &alias)
	if err != nil {
		return err
	}
	state, err := decode.Optional[string](obj, "factionState", "state")
	if err != nil {
		return err
	}
	*i = Information(alias)
	if state != nil {
		i.State = &State{Name: *state}
	}
	return nil
}

// MarshalJSON writes the state back under "factionState"
func (i Information) MarshalJSON() ([]byte, error) {
	type informationAlias Information
	payload := struct {
		informationAlias
		FactionState *string `json:"factionState,omitempty"`
	}{informationAlias: informationAlias(i)}
	if i.State != nil {
		payload.FactionState = &i.State.Name
	}
	return json.Marshal(payload)
}

// System is a star system as the upstream describes it. Every endpoint fills a
// different subset, so nearly everything is optional.
type System struct {
	Name string  `json:"name"`
	ID   *int64  `json:"id,omitempty"`
	ID64 *uint64 `json:"id64,omitempty"`

	// Date is when the system was first recorded; dumps carry it
	Date *decode.DateTime `json:"date,omitempty"`

	Coords       *Coordinate `json:"coords,omitempty"`
	CoordsLocked *bool       `json:"coordsLocked,omitempty"`
	// Distance from the reference system; only spatial searches fill it
	Distance *float64 `json:"distance,omitempty"`
	URL      *string  `json:"url,omitempty"`

	Information *Information `json:"information,omitempty"`
	// InformationShape records which layout Information was decoded from
	InformationShape decode.Shape `json:"-"`

	RequirePermit *bool   `json:"requirePermit,omitempty"`
	PermitName    *string `json:"permitName,omitempty"`

	BodyCount *int   `json:"bodyCount,omitempty"`
	Bodies    []Body `json:"bodies,omitempty"`

	Factions           []Faction           `json:"factions,omitempty"`
	ControllingFaction *ControllingFaction `json:"controllingFaction,omitempty"`

	Deaths           *Statistic       `json:"deaths,omitempty"`
	Traffic          *Statistic       `json:"traffic,omitempty"`
	TrafficBreakdown map[string]int64 `json:"breakdown,omitempty"`
}

// UnmarshalJSON decodes a system, probing both layouts of Information. A
// payload with neither layout leaves Information nil.
func (s *System) UnmarshalJSON(data []byte) error {
	type systemAlias System
	var payload struct {
		*systemAlias
		Date        json.RawMessage `json:"date"`
		Information json.RawMessage `json:"information"`
	}
	payload.systemAlias = (*systemAlias)(s)
	obj, err := decode.Into(data, &payload, "name")
	if err != nil {
		return err
	}
	s.Date = nil
	if obj.Has("date") {
		if s.Date, err = decode.Field[*decode.DateTime](obj, "date"); err != nil {
			return err
		}
	}

	info, shape, err := decode.FlatOrNested[Information](data, "information")
	switch {
	case err == nil:
		s.Information = &info
	case errors.Is(err, decode.ErrMissingField):
		s.Information = nil
	default:
		return decode.Wrap("information", err)
	}
	s.InformationShape = shape
	return nil
}

// HasInformation reports whether an Information block was found in either layout
func (s *System) HasInformation() bool {
	return s.Information != nil
}

// BodyCountMatches reports whether BodyCount agrees with len(Bodies). It is
// true when either is absent.
func (s *System) BodyCountMatches() bool {
	if s.BodyCount == nil || s.Bodies == nil {
		return true
	}
	return *s.BodyCount == len(s.Bodies)
}

// Body returns the body with the given upstream id
func (s *System) Body(id int64) (*Body, bool) {
	for i := range s.Bodies {
		if s.Bodies[i].ID == id {
			return &s.Bodies[i], true
		}
	}
	return nil, false
}

// BodyByBodyID returns the body with the given in-system body id, the key
// Parent references use
func (s *System) BodyByBodyID(bodyID int64) (*Body, bool) {
	for i := range s.Bodies {
		if s.Bodies[i].BodyID != nil && *s.Bodies[i].BodyID == bodyID {
			return &s.Bodies[i], true
		}
	}
	return nil, false
}
