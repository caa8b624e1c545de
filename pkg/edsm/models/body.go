package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-edsm/pkg/edsm/decode"
)

// BodyType is the discriminant of a body's Details
type BodyType string

const (
	BodyTypeStar   BodyType = "Star"
	BodyTypePlanet BodyType = "Planet"
)

// Body is a star or planet inside a system
type Body struct {
	ID     int64   `json:"id"`
	ID64   *uint64 `json:"id64,omitempty"`
	BodyID *int64  `json:"bodyId,omitempty"`
	Name   string  `json:"name"`

	Type    BodyType `json:"type"`
	Details Details  `json:"-"`
	SubType string   `json:"subType"`

	Parents            []Parent `json:"parents,omitempty"`
	DistanceToArrival  float64  `json:"distanceToArrival"`
	SurfaceTemperature float64  `json:"surfaceTemperature"`

	Orbit

	Belts []Belt `json:"belts,omitempty"`
	Rings []Belt `json:"rings,omitempty"`

	UpdateTime decode.DateTime `json:"updateTime"`
}

// UnmarshalJSON selects the Details variant from the "type" member, which
// sits next to the rest of the body's fields
func (b *Body) UnmarshalJSON(data []byte) error {
	type bodyAlias Body
	var alias bodyAlias
	payload := struct {
		*bodyAlias
		UpdateTime json.RawMessage `json:"updateTime"`
	}{bodyAlias: &alias}
	obj, err := decode.Into(data, &payload,
		"id", "name", "type", "subType", "distanceToArrival",
		"surfaceTemperature", "rotationalPeriodTidallyLocked", "updateTime")
	if err != nil {
		return err
	}
	if alias.UpdateTime, err = decode.Field[decode.DateTime](obj, "updateTime"); err != nil {
		return err
	}

	switch alias.Type {
	case BodyTypeStar:
		star := new(StarDetails)
		if err := json.Unmarshal(data, star); err != nil {
			return err
		}
		alias.Details = star
	case BodyTypePlanet:
		planet := new(PlanetDetails)
		if err := json.Unmarshal(data, planet); err != nil {
			return err
		}
		alias.Details = planet
	default:
		return decode.Invalid("type", string(alias.Type), errors.New("expected Star or Planet"))
	}

	*b = Body(alias)
	return nil
}

// MarshalJSON flattens Details back next to the body's own fields
func (b Body) MarshalJSON() ([]byte, error) {
	type bodyAlias Body
	base, err := json.Marshal(bodyAlias(b))
	if err != nil {
		return nil, err
	}
	if b.Details == nil {
		return base, nil
	}
	details, err := json.Marshal(b.Details)
	if err != nil {
		return nil, err
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(details, &merged); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	return json.Marshal(merged)
}

// Star returns the star details when the body is a star
func (b *Body) Star() (*StarDetails, bool) {
	s, ok := b.Details.(*StarDetails)
	return s, ok
}

// Planet returns the planet details when the body is a planet
func (b *Body) Planet() (*PlanetDetails, bool) {
	p, ok := b.Details.(*PlanetDetails)
	return p, ok
}

// ParentIDs lists the in-system body ids of the body's parents, nearest first
func (b *Body) ParentIDs() []int64 {
	ids := make([]int64, 0, len(b.Parents))
	for _, p := range b.Parents {
		ids = append(ids, p.ID)
	}
	return ids
}

// Orbit holds a body's orbital elements. It is flattened into Body.
type Orbit struct {
	OrbitalPeriod                 *float64 `json:"orbitalPeriod,omitempty"`
	SemiMajorAxis                 *float64 `json:"semiMajorAxis,omitempty"`
	OrbitalEccentricity           *float64 `json:"orbitalEccentricity,omitempty"`
	OrbitalInclination            *float64 `json:"orbitalInclination,omitempty"`
	ArgOfPeriapsis                *float64 `json:"argOfPeriapsis,omitempty"`
	RotationalPeriod              *float64 `json:"rotationalPeriod,omitempty"`
	RotationalPeriodTidallyLocked bool     `json:"rotationalPeriodTidallyLocked"`
	AxialTilt                     *float64 `json:"axialTilt,omitempty"`
}

// Details is either *StarDetails or *PlanetDetails
type Details interface {
	BodyType() BodyType
}

// StarDetails are the fields only stars carry
type StarDetails struct {
	Age               int64    `json:"age"`
	IsMainStar        bool     `json:"isMainStar"`
	IsScoopable       bool     `json:"isScoopable"`
	SolarMasses       *float64 `json:"solarMasses,omitempty"`
	SolarRadius       *float64 `json:"solarRadius,omitempty"`
	SpectralClass     *string  `json:"spectralClass,omitempty"`
	Luminosity        *string  `json:"luminosity,omitempty"`
	AbsoluteMagnitude *float64 `json:"absoluteMagnitude,omitempty"`
}

// BodyType implements Details
func (*StarDetails) BodyType() BodyType { return BodyTypeStar }

// UnmarshalJSON requires age, isMainStar and isScoopable
func (s *StarDetails) UnmarshalJSON(data []byte) error {
	type starAlias StarDetails
	_, err := decode.Into(data, (*starAlias)(s), "age", "isMainStar", "isScoopable")
	return err
}

// PlanetDetails are the fields only planets carry
type PlanetDetails struct {
	EarthMasses           float64            `json:"earthMasses"`
	Radius                float64            `json:"radius"`
	IsLandable            bool               `json:"isLandable"`
	Gravity               *float64           `json:"gravity,omitempty"`
	SurfacePressure       *float64           `json:"surfacePressure,omitempty"`
	VolcanismType         *string            `json:"volcanismType,omitempty"`
	AtmosphereType        *string            `json:"atmosphereType,omitempty"`
	AtmosphereComposition map[string]float64 `json:"atmosphereComposition,omitempty"`
	SolidComposition      map[string]float64 `json:"solidComposition,omitempty"`
	TerraformingState     *string            `json:"terraformingState,omitempty"`
}

// BodyType implements Details
func (*PlanetDetails) BodyType() BodyType { return BodyTypePlanet }

// UnmarshalJSON requires earthMasses, radius and isLandable
func (p *PlanetDetails) UnmarshalJSON(data []byte) error {
	type planetAlias PlanetDetails
	_, err := decode.Into(data, (*planetAlias)(p), "earthMasses", "radius", "isLandable")
	return err
}

// ParentKind says what kind of body a Parent points at
type ParentKind string

const (
	// ParentNull is a barycentre rather than a physical body
	ParentNull   ParentKind = "Null"
	ParentStar   ParentKind = "Star"
	ParentPlanet ParentKind = "Planet"
)

// Parent references a body of gravitational influence by its in-system body id
type Parent struct {
	Kind ParentKind
	ID   int64
}

// UnmarshalJSON reads the single-member form {"Star": 1}
func (p *Parent) UnmarshalJSON(data []byte) error {
	obj, err := decode.ParseObject(data)
	if err != nil {
		return err
	}
	if len(obj) != 1 {
		return decode.Unrecognized("parent", fmt.Errorf("expected one member, got %d", len(obj)))
	}
	for key, raw := range obj {
		kind := ParentKind(key)
		switch kind {
		case ParentNull, ParentStar, ParentPlanet:
		default:
			return decode.Invalid("parent", key, errors.New("expected Null, Star or Planet"))
		}
		var id *int64
		if err := json.Unmarshal(raw, &id); err != nil {
			return decode.Wrap(key, err)
		}
		if id == nil {
			return decode.Invalid(key, "null", errors.New("expected a body id"))
		}
		*p = Parent{Kind: kind, ID: *id}
	}
	return nil
}

// MarshalJSON writes the single-member form
func (p Parent) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int64{string(p.Kind): p.ID})
}

// Belt is an asteroid belt or ring around a body
type Belt struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Mass        float64 `json:"mass"`
	InnerRadius float64 `json:"innerRadius"`
	OuterRadius float64 `json:"outerRadius"`
}

// UnmarshalJSON requires every member
func (b *Belt) UnmarshalJSON(data []byte) error {
	type beltAlias Belt
	_, err := decode.Into(data, (*beltAlias)(b), "name", "type", "mass", "innerRadius", "outerRadius")
	return err
}
