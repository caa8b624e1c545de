package edsm

import (
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// MaxSphereRadius is the largest radius EDSM accepts for a sphere search
const MaxSphereRadius = 100

// MaxCubeSize is the largest cube edge EDSM accepts
const MaxCubeSize = 200

var validate = validator.New()

// SphereOptions narrow a sphere search. Zero values are not sent.
type SphereOptions struct {
	Radius    float64 `validate:"omitempty,gte=0,lte=100"`
	MinRadius float64 `validate:"omitempty,gte=0"`
}

// CubeOptions set the edge length of a cube search. Zero is not sent.
type CubeOptions struct {
	Size float64 `validate:"omitempty,gt=0,lte=200"`
}

type systemQuery struct {
	SystemName string `validate:"required"`
}

type sphereQuery struct {
	SystemName string `validate:"required"`
	SphereOptions
}

type cubeQuery struct {
	SystemName string `validate:"required"`
	CubeOptions
}

func validateQuery(op string, q any) error {
	if err := validate.Struct(q); err != nil {
		return newValidationError(op, err)
	}
	return nil
}

// showFlags asks for every optional section of a search result
func showFlags(v url.Values) url.Values {
	v.Set("showId", "1")
	v.Set("showCoordinates", "1")
	v.Set("showPermit", "1")
	v.Set("showInformation", "1")
	return v
}

func nameQuery(name string) url.Values {
	v := url.Values{}
	v.Set("systemName", name)
	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
