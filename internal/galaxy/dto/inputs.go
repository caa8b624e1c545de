package dto

// SearchSystemsInput represents the input for a name search
type SearchSystemsInput struct {
	Name string `query:"name" maxLength:"100" doc:"Start of the system name to search for" example:"Sol"`
}

// SphereSystemsInput represents the input for a sphere search
type SphereSystemsInput struct {
	Name      string  `query:"name" maxLength:"100" doc:"Reference system at the centre of the sphere" example:"Sol"`
	Radius    float64 `query:"radius" doc:"Sphere radius in light years, at most 100" example:"20"`
	MinRadius float64 `query:"min_radius" doc:"Exclude systems closer than this many light years" example:"5"`
}

// CubeSystemsInput represents the input for a cube search
type CubeSystemsInput struct {
	Name string  `query:"name" maxLength:"100" doc:"Reference system at the centre of the cube" example:"Sol"`
	Size float64 `query:"size" doc:"Edge length of the cube in light years, at most 200" example:"50"`
}

// GetSystemInput represents the input for single-system endpoints
type GetSystemInput struct {
	Name string `path:"name" maxLength:"100" doc:"Exact system name" example:"Sol"`
}

// GetFactionsInput represents the input for the factions endpoint
type GetFactionsInput struct {
	Name    string `path:"name" maxLength:"100" doc:"Exact system name" example:"Meliae"`
	History bool   `query:"history" default:"false" doc:"Include influence, state and happiness history"`
}
