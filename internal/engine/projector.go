package engine

import (
	"math"

	"github.com/jmoralesv/sombra/internal/model"
)

const rad2deg = 180 / math.Pi

// Project converts one wall quad into the angular shadow it casts on the
// observer's sky dome. Pure function: corner by corner, the horizontal
// bearing becomes an azimuth in [-180, 180) with 0° due south, and the
// vertical angle becomes an elevation clamped to [0, 90].
func Project(observer model.Point3D, quad model.WallQuad) model.Shadow {
	return model.Shadow{
		ID:           quad.ID,
		GroupID:      quad.GroupID,
		CadastralRef: quad.CadastralRef,
		DownLeft:     projectPoint(observer, quad.DownLeft),
		UpLeft:       projectPoint(observer, quad.UpLeft),
		UpRight:      projectPoint(observer, quad.UpRight),
		DownRight:    projectPoint(observer, quad.DownRight),
	}
}

// projectPoint maps one corner to (azimut, elevation). A corner directly
// above or below the observer has no defined bearing; atan2(0, 0) = 0
// resolves it to the north meridian, which is harmless because its
// elevation clamps to an extreme anyway.
func projectPoint(observer, p model.Point3D) model.AngularPoint {
	dx := p.X - observer.X
	dy := p.Y - observer.Y
	dz := p.Z - observer.Z
	h := math.Hypot(dx, dy)

	azimut := model.NewAzimuth(math.Atan2(dx, dy)*rad2deg + 180).Degrees()

	elevation := math.Atan2(dz, h) * rad2deg
	if elevation < 0 {
		elevation = 0
	} else if elevation > 90 {
		elevation = 90
	}

	return model.AngularPoint{Azimut: azimut, Elevation: elevation}
}
