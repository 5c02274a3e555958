package model

import "github.com/google/uuid"

// Point2D represents a planar coordinate in meters. The frame is a local
// projection shared by every entity of a site; X grows toward the right of
// the plan and Y toward the top.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point3D represents a coordinate in meters in the same planar frame as
// Point2D, with Z measured upward from the ground plane.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Ring is an open polygon ring: the last point connects back to the first
// implicitly. Rings with fewer than 3 points describe no area.
type Ring []Point2D

// BoundingBox returns the min and max corners of the ring.
func (r Ring) BoundingBox() (min, max Point2D) {
	if len(r) == 0 {
		return Point2D{}, Point2D{}
	}
	min, max = r[0], r[0]
	for _, p := range r[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Building is an obstructing structure described by its footprint and a
// cadastral height code. The height code encodes floor counts as Roman
// numerals ("II", "III+I", "-I+IV"); see ParseFloorCount.
type Building struct {
	ID           string `json:"id"`
	GroupID      string `json:"group_id"`
	CadastralRef string `json:"cadastral_ref"`
	HeightCode   string `json:"height_code"`
	Footprint    Ring   `json:"footprint"`
}

// NewBuilding creates a building with generated IDs.
func NewBuilding(heightCode string, footprint Ring) Building {
	return Building{
		ID:         uuid.New().String()[:8],
		GroupID:    uuid.New().String()[:8],
		HeightCode: heightCode,
		Footprint:  footprint,
	}
}

// Overhang is an obstacle that blocks all sky above its base, such as a
// balcony or roof eave over the observation point. Each footprint vertex may
// carry its own base height; a zero Z means ground level.
type Overhang struct {
	Footprint []Point3D `json:"footprint"`
}

// AnalysisSettings holds the constants of one shadow analysis run.
type AnalysisSettings struct {
	FloorHeight float64 `json:"floor_height"` // meters per floor
}

// DefaultSettings returns the settings used for a new site.
func DefaultSettings() AnalysisSettings {
	return AnalysisSettings{
		FloorHeight: 3.0,
	}
}

// Site bundles everything needed for one analysis: the observation point,
// the surrounding obstacles and the run settings. Latitude and longitude
// locate the site for the sun-position summary; they play no role in the
// shadow geometry itself.
type Site struct {
	Name      string           `json:"name"`
	Observer  Point3D          `json:"observer"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Buildings []Building       `json:"buildings"`
	Overhangs []Overhang       `json:"overhangs,omitempty"`
	Settings  AnalysisSettings `json:"settings"`
}

// DefaultSite returns an empty site with default settings.
func DefaultSite() Site {
	return Site{
		Name:     "Untitled site",
		Settings: DefaultSettings(),
	}
}
