package model

import "math"

// Azimuth is a horizontal bearing in degrees as seen from the observer:
// 0° is due south, angles grow toward the west and the range wraps at
// ±180°, which is due north. The wrap line at ±180° is referred to as the
// north meridian throughout the engine.
type Azimuth float64

// NewAzimuth normalizes deg into [-180, 180).
func NewAzimuth(deg float64) Azimuth {
	m := math.Mod(deg+180, 360)
	if m < 0 {
		m += 360
	}
	return Azimuth(m - 180)
}

// Degrees returns the azimuth as a plain float64.
func (a Azimuth) Degrees() float64 {
	return float64(a)
}

// ArcTo returns the signed shortest arc from a to b in degrees, in
// (-180, 180]. Positive means b lies westward of a.
func (a Azimuth) ArcTo(b Azimuth) float64 {
	d := math.Mod(float64(b)-float64(a), 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// AngularPoint is a direction of sky seen from the observer. Elevation is
// clamped to [0, 90] when produced by the projector; azimut follows the
// Azimuth convention. A corner forced onto the far side of the north
// meridian by sign correction may read exactly +180.
type AngularPoint struct {
	Azimut    float64 `json:"azimut"`
	Elevation float64 `json:"elevation"`
}
