package models

import (
	"encoding/json"
	"testing"

	"go-edsm/pkg/edsm/decode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const starJSON = `{"id":6483,"bodyId":0,"name":"Sol","type":"Star","subType":"G (White-Yellow) Star",
"distanceToArrival":0,"isMainStar":true,"isScoopable":true,"age":4567,"solarMasses":1,
"surfaceTemperature":5778,"rotationalPeriodTidallyLocked":false,"updateTime":"2020-08-18 13:56:55"}`

const planetJSON = `{"id":1734,"bodyId":3,"name":"Earth","type":"Planet","subType":"Earth-like world",
"parents":[{"Planet":2},{"Star":0}],"distanceToArrival":503,"isLandable":false,"earthMasses":1,
"radius":6371.0098,"surfaceTemperature":288,"semiMajorAxis":1.0000010112449,
"rotationalPeriodTidallyLocked":false,"updateTime":"2020-08-18 13:56:55"}`

func TestBody_Star(t *testing.T) {
	var b Body
	require.NoError(t, json.Unmarshal([]byte(starJSON), &b))

	assert.Equal(t, BodyTypeStar, b.Type)
	star, ok := b.Star()
	require.True(t, ok)
	assert.Equal(t, int64(4567), star.Age)
	assert.True(t, star.IsScoopable)

	_, ok = b.Planet()
	assert.False(t, ok)
	assert.Empty(t, b.ParentIDs())
}

func TestBody_Planet(t *testing.T) {
	var b Body
	require.NoError(t, json.Unmarshal([]byte(planetJSON), &b))

	planet, ok := b.Planet()
	require.True(t, ok)
	assert.Equal(t, 6371.0098, planet.Radius)
	assert.False(t, planet.IsLandable)
	require.NotNil(t, b.SemiMajorAxis)
	assert.Equal(t, 1.0000010112449, *b.SemiMajorAxis)
	assert.Equal(t, []Parent{{Kind: ParentPlanet, ID: 2}, {Kind: ParentStar, ID: 0}}, b.Parents)
}

func TestBody_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		field   string
	}{
		{"star without age", `{"id":1,"name":"A","type":"Star","subType":"M","distanceToArrival":0,"surfaceTemperature":1,"rotationalPeriodTidallyLocked":false,"updateTime":"2020-01-01 00:00:00","isMainStar":true,"isScoopable":true}`, "age"},
		{"star without isMainStar", `{"id":1,"name":"A","type":"Star","subType":"M","distanceToArrival":0,"surfaceTemperature":1,"rotationalPeriodTidallyLocked":false,"updateTime":"2020-01-01 00:00:00","age":1,"isScoopable":true}`, "isMainStar"},
		{"star without isScoopable", `{"id":1,"name":"A","type":"Star","subType":"M","distanceToArrival":0,"surfaceTemperature":1,"rotationalPeriodTidallyLocked":false,"updateTime":"2020-01-01 00:00:00","age":1,"isMainStar":true}`, "isScoopable"},
		{"planet without earthMasses", `{"id":1,"name":"A","type":"Planet","subType":"Icy body","distanceToArrival":0,"surfaceTemperature":1,"rotationalPeriodTidallyLocked":false,"updateTime":"2020-01-01 00:00:00","radius":1,"isLandable":true}`, "earthMasses"},
		{"planet with only star fields", `{"id":1,"name":"A","type":"Planet","subType":"Icy body","distanceToArrival":0,"surfaceTemperature":1,"rotationalPeriodTidallyLocked":false,"updateTime":"2020-01-01 00:00:00","age":1,"isMainStar":true,"isScoopable":true}`, "earthMasses"},
		{"body without updateTime", `{"id":1,"name":"A","type":"Planet","subType":"Icy body","distanceToArrival":0,"surfaceTemperature":1,"rotationalPeriodTidallyLocked":false,"earthMasses":1,"radius":1,"isLandable":true}`, "updateTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Body
			err := json.Unmarshal([]byte(tt.payload), &b)
			require.Error(t, err)
			assert.ErrorIs(t, err, decode.ErrMissingField)

			var de *decode.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.field, de.Field)
		})
	}
}

func TestBody_UnknownType(t *testing.T) {
	var b Body
	err := json.Unmarshal([]byte(`{"id":1,"name":"A","type":"Comet","subType":"x","distanceToArrival":0,"surfaceTemperature":1,"rotationalPeriodTidallyLocked":false,"updateTime":"2020-01-01 00:00:00"}`), &b)
	assert.ErrorIs(t, err, decode.ErrInvalidValue)
}

func TestBody_BadUpdateTimeNamesField(t *testing.T) {
	var b Body
	err := json.Unmarshal([]byte(`{"id":1,"name":"A","type":"Star","subType":"M","distanceToArrival":0,"surfaceTemperature":1,"rotationalPeriodTidallyLocked":false,"updateTime":"2020-01-01T00:00:00","age":1,"isMainStar":true,"isScoopable":true}`), &b)
	assert.ErrorIs(t, err, decode.ErrInvalidValue)

	var de *decode.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "updateTime", de.Field)
	assert.Equal(t, "2020-01-01T00:00:00", de.Value)
}

func TestBody_MarshalKeepsDetailsFlat(t *testing.T) {
	var b Body
	require.NoError(t, json.Unmarshal([]byte(planetJSON), &b))

	out, err := json.Marshal(b)
	require.NoError(t, err)

	var back Body
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, b, back)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(out, &flat))
	assert.Contains(t, flat, "earthMasses")
	assert.Equal(t, "2020-08-18 13:56:55", flat["updateTime"])
}

func TestParent(t *testing.T) {
	var p Parent
	require.NoError(t, json.Unmarshal([]byte(`{"Null":5}`), &p))
	assert.Equal(t, Parent{Kind: ParentNull, ID: 5}, p)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Null":5}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"Star":1,"Planet":2}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"Moon":1}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &p))

	err = json.Unmarshal([]byte(`{"Star":null}`), &p)
	assert.ErrorIs(t, err, decode.ErrInvalidValue)
	var de *decode.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Star", de.Field)
}

func TestSystem_InformationShapes(t *testing.T) {
	flat := `{"name":"Sol","allegiance":"Federation","government":"Democracy","state":"None","population":22780919531}`
	nested := `{"name":"Sol","information":{"allegiance":"Federation","government":"Democracy","factionState":"None","population":22780919531}}`

	var a, b System
	require.NoError(t, json.Unmarshal([]byte(flat), &a))
	require.NoError(t, json.Unmarshal([]byte(nested), &b))

	assert.Equal(t, decode.ShapeFlat, a.InformationShape)
	assert.Equal(t, decode.ShapeNested, b.InformationShape)
	assert.Equal(t, *a.Information, *b.Information)
	assert.Equal(t, "None", a.Information.State.Name)
}

func TestSystem_WithoutInformation(t *testing.T) {
	var s System
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Sol","id":27,"deaths":{"total":1,"week":1,"day":0}}`), &s))
	assert.False(t, s.HasInformation())
	assert.Equal(t, decode.ShapeNone, s.InformationShape)
	assert.Equal(t, Statistic{Total: 1, Week: 1, Day: 0}, *s.Deaths)
}

func TestSystem_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		target  error
	}{
		{"missing name", `{"id":27}`, decode.ErrMissingField},
		{"partial coordinates", `{"name":"Sol","coords":{"x":0,"y":0}}`, decode.ErrMissingField},
		{"information as list", `{"name":"Sol","information":["High"]}`, decode.ErrUnrecognizedShape},
		{"statistic missing day", `{"name":"Sol","traffic":{"total":1,"week":1}}`, decode.ErrMissingField},
		{"bad date", `{"name":"Sol","date":"2021-01-01T00:00:00Z"}`, decode.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s System
			err := json.Unmarshal([]byte(tt.payload), &s)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestSystem_Date(t *testing.T) {
	var s System
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Sol","date":"2015-05-12 15:29:33"}`), &s))
	require.NotNil(t, s.Date)
	assert.Equal(t, "2015-05-12 15:29:33", s.Date.String())

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Sol","date":null}`), &s))
	assert.Nil(t, s.Date)

	err := json.Unmarshal([]byte(`{"name":"Sol","date":"bad"}`), &s)
	var de *decode.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "date", de.Field)
	assert.Equal(t, "bad", de.Value)
}

func TestSystem_IgnoresUnknownFields(t *testing.T) {
	var s System
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Sol","primaryStar":{"type":"G"},"stations":[],"somethingNew":true}`), &s))
	assert.Equal(t, "Sol", s.Name)
}

func TestFaction(t *testing.T) {
	payload := `{"id":19438,"name":"Meliae Liberals","allegiance":"Independent","government":"Democracy",
"influence":0.111,"factionState":"Election","activeStates":[{"state":"Election"}],
"recoveringStates":[],"pendingStates":[{"state":"War","trend":1}],"isPlayer":false,"lastUpdated":1609372800,
"influenceHistory":[],"stateHistory":{"1609372800":"Election"}}`

	var f Faction
	require.NoError(t, json.Unmarshal([]byte(payload), &f))
	assert.Equal(t, "Election", f.State)
	assert.True(t, f.HasState("Election"))
	assert.Equal(t, TrendingState{State: State{Name: "War"}, Trend: 1}, f.PendingStates[0])
	require.NotNil(t, f.LastUpdated)
	assert.Equal(t, int64(1609372800), *f.LastUpdated)
	assert.True(t, f.InfluenceHistory.IsEmpty())
	assert.False(t, f.StateHistory.IsEmpty())
	assert.Nil(t, f.HappinessHistory)

	var missing Faction
	err := json.Unmarshal([]byte(`{"id":1,"name":"x","allegiance":"None","government":"None","influence":0,"activeStates":[],"recoveringStates":[],"pendingStates":[],"isPlayer":false}`), &missing)
	var de *decode.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "state", de.Field)
}

func TestControllingFaction(t *testing.T) {
	var c ControllingFaction
	require.NoError(t, json.Unmarshal([]byte(`{"id":560,"name":"Mother Gaia","isPlayer":false}`), &c))
	assert.Equal(t, "Mother Gaia", c.Name)
	assert.Nil(t, c.Allegiance)

	err := json.Unmarshal([]byte(`{"id":560,"allegiance":"Federation"}`), &c)
	assert.ErrorIs(t, err, decode.ErrMissingField)
	var de *decode.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "name", de.Field)
}

func TestTotalInfluence(t *testing.T) {
	factions := []Faction{{Influence: 0.472472}, {Influence: 0.187187}, {Influence: 0.134134}, {Influence: 0.111111}, {Influence: 0.095095}}
	assert.Equal(t, 1.0, RoundTo(TotalInfluence(factions), 2))
	assert.Equal(t, 0.0, TotalInfluence(nil))
}

func TestEnumsKnown(t *testing.T) {
	assert.True(t, AllegiancePilotsFederation.Known())
	assert.False(t, Allegiance("Kingdom").Known())
	assert.True(t, GovernmentPrisonColony.Known())
	assert.True(t, EconomyHighTech.Known())
	assert.True(t, SecurityAnarchy.Known())
	assert.False(t, Reserve("Bountiful").Known())

	var info Information
	require.NoError(t, json.Unmarshal([]byte(`{"allegiance":"Kingdom","economy":"Spice"}`), &info))
	assert.Equal(t, Allegiance("Kingdom"), *info.Allegiance)
}

func TestInformationMarshal(t *testing.T) {
	state := "Boom"
	info := Information{State: &State{Name: state}}
	out, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"factionState":"Boom"}`, string(out))
}
