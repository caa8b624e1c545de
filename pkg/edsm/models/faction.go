package models

import (
	"encoding/json"
	"math"
	"time"

	"go-edsm/pkg/edsm/decode"
)

// State is a condition a faction is in, such as "Boom" or "War"
type State struct {
	Name string `json:"state"`
}

// TrendingState is a pending or recovering State with its trend
type TrendingState struct {
	State
	Trend int64 `json:"trend"`
}

// History variants for faction time series. Keys are Unix timestamps.
type (
	InfluenceHistory      = decode.History[float64]
	HappinessHistory      = decode.History[string]
	StateHistory          = decode.History[string]
	ActiveStatesHistory   = decode.History[[]State]
	TrendingStatesHistory = decode.History[[]TrendingState]
)

// Faction is a minor faction present in a system. Player and non-player
// factions share this type.
type Faction struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Allegiance Allegiance `json:"allegiance"`
	Government Government `json:"government"`

	Influence        float64           `json:"influence"`
	InfluenceHistory *InfluenceHistory `json:"influenceHistory,omitempty"`

	Happiness        *string           `json:"happiness,omitempty"`
	HappinessHistory *HappinessHistory `json:"happinessHistory,omitempty"`

	State        string        `json:"state"`
	StateHistory *StateHistory `json:"stateHistory,omitempty"`

	ActiveStates        []State              `json:"activeStates"`
	ActiveStatesHistory *ActiveStatesHistory `json:"activeStatesHistory,omitempty"`

	RecoveringStates        []TrendingState        `json:"recoveringStates"`
	RecoveringStatesHistory *TrendingStatesHistory `json:"recoveringStatesHistory,omitempty"`

	PendingStates        []TrendingState        `json:"pendingStates"`
	PendingStatesHistory *TrendingStatesHistory `json:"pendingStatesHistory,omitempty"`

	IsPlayer    bool   `json:"isPlayer"`
	LastUpdated *int64 `json:"lastUpdate,omitempty"`
}

// UnmarshalJSON accepts "factionState" for State and "lastUpdated" for
// LastUpdated, both older spellings
func (f *Faction) UnmarshalJSON(data []byte) error {
	type factionAlias Faction
	var alias factionAlias
	obj, err := decode.Into(data, &alias,
		"id", "name", "allegiance", "government", "influence",
		"activeStates", "recoveringStates", "pendingStates", "isPlayer")
	if err != nil {
		return err
	}

	key, raw, ok := obj.Lookup("state", "factionState")
	if !ok {
		return decode.Missing("state")
	}
	if err := json.Unmarshal(raw, &alias.State); err != nil {
		return decode.Wrap(key, err)
	}

	if alias.LastUpdated == nil {
		if alias.LastUpdated, err = decode.Optional[int64](obj, "lastUpdated"); err != nil {
			return err
		}
	}

	*f = Faction(alias)
	return nil
}

// LastUpdatedAt converts LastUpdated to a time; zero when unknown
func (f *Faction) LastUpdatedAt() time.Time {
	if f.LastUpdated == nil {
		return time.Time{}
	}
	return time.Unix(*f.LastUpdated, 0).UTC()
}

// HasState reports whether name is among the faction's active states
func (f *Faction) HasState(name string) bool {
	for _, s := range f.ActiveStates {
		if s.Name == name {
			return true
		}
	}
	return false
}

// ControllingFaction is the faction that owns a system's primary starport
type ControllingFaction struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Allegiance *Allegiance `json:"allegiance,omitempty"`
	Government *Government `json:"government,omitempty"`
}

// UnmarshalJSON requires the id and name
func (c *ControllingFaction) UnmarshalJSON(data []byte) error {
	type controllingFactionAlias ControllingFaction
	_, err := decode.Into(data, (*controllingFactionAlias)(c), "id", "name")
	return err
}

// TotalInfluence sums the influence of factions. In a populated system the
// upstream reports shares that add up to 1.
func TotalInfluence(factions []Faction) float64 {
	var total float64
	for _, f := range factions {
		total += f.Influence
	}
	return total
}

// RoundTo rounds v to the given number of decimal places
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
