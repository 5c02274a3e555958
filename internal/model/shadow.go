package model

// WallQuad is the vertical rectangular extrusion of one footprint edge.
// DownLeft/UpLeft share one footprint vertex and DownRight/UpRight the
// other: UpLeft.Z == UpRight.Z (roof line) and DownLeft.Z == DownRight.Z
// (base line).
type WallQuad struct {
	ID           string `json:"id"`
	GroupID      string `json:"group_id"`
	CadastralRef string `json:"cadastral_ref"`

	DownLeft  Point3D `json:"down_left"`
	UpLeft    Point3D `json:"up_left"`
	UpRight   Point3D `json:"up_right"`
	DownRight Point3D `json:"down_right"`
}

// Corners returns the quad corners in downLeft, upLeft, upRight, downRight
// order.
func (q WallQuad) Corners() [4]Point3D {
	return [4]Point3D{q.DownLeft, q.UpLeft, q.UpRight, q.DownRight}
}

// Shadow is the angular region blocked by one wall quad, keyed by the same
// corner names as the quad it came from. Downstream consumers treat a
// shadow purely through its axis-aligned bounding box; the corner polygon
// itself is never evaluated.
type Shadow struct {
	ID           string `json:"id"`
	GroupID      string `json:"group_id"`
	CadastralRef string `json:"cadastral_ref"`

	DownLeft  AngularPoint `json:"down_left"`
	UpLeft    AngularPoint `json:"up_left"`
	UpRight   AngularPoint `json:"up_right"`
	DownRight AngularPoint `json:"down_right"`
}

// Corners returns the shadow corners in downLeft, upLeft, upRight,
// downRight order.
func (s Shadow) Corners() [4]AngularPoint {
	return [4]AngularPoint{s.DownLeft, s.UpLeft, s.UpRight, s.DownRight}
}

// ShadowBox is the axis-aligned angular bounding box of a shadow.
type ShadowBox struct {
	MinAzimut    float64 `json:"min_azimut"`
	MaxAzimut    float64 `json:"max_azimut"`
	MinElevation float64 `json:"min_elevation"`
	MaxElevation float64 `json:"max_elevation"`
}

// Box returns the bounding box over the four shadow corners.
func (s Shadow) Box() ShadowBox {
	c := s.Corners()
	b := ShadowBox{
		MinAzimut:    c[0].Azimut,
		MaxAzimut:    c[0].Azimut,
		MinElevation: c[0].Elevation,
		MaxElevation: c[0].Elevation,
	}
	for _, p := range c[1:] {
		if p.Azimut < b.MinAzimut {
			b.MinAzimut = p.Azimut
		}
		if p.Azimut > b.MaxAzimut {
			b.MaxAzimut = p.Azimut
		}
		if p.Elevation < b.MinElevation {
			b.MinElevation = p.Elevation
		}
		if p.Elevation > b.MaxElevation {
			b.MaxElevation = p.Elevation
		}
	}
	return b
}

// Contains reports whether the direction (azimut, elevation) falls inside
// the box, bounds inclusive.
func (b ShadowBox) Contains(azimut, elevation float64) bool {
	return azimut >= b.MinAzimut && azimut <= b.MaxAzimut &&
		elevation >= b.MinElevation && elevation <= b.MaxElevation
}

// ContainsBox reports whether other lies entirely inside b, with margin of
// tolerance on every bound to absorb float noise.
func (b ShadowBox) ContainsBox(other ShadowBox, margin float64) bool {
	return other.MinAzimut >= b.MinAzimut-margin &&
		other.MaxAzimut <= b.MaxAzimut+margin &&
		other.MinElevation >= b.MinElevation-margin &&
		other.MaxElevation <= b.MaxElevation+margin
}
