package engine

import (
	"testing"

	"github.com/jmoralesv/sombra/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestProjectPoint_CardinalDirections(t *testing.T) {
	observer := model.Point3D{}

	south := projectPoint(observer, model.Point3D{X: 0, Y: -10, Z: 0})
	assert.InDelta(t, 0, south.Azimut, 1e-9, "due south is azimuth 0")

	north := projectPoint(observer, model.Point3D{X: 0, Y: 10, Z: 0})
	assert.InDelta(t, -180, north.Azimut, 1e-9, "due north wraps to -180")

	east := projectPoint(observer, model.Point3D{X: 10, Y: 0, Z: 0})
	assert.InDelta(t, -90, east.Azimut, 1e-9)

	west := projectPoint(observer, model.Point3D{X: -10, Y: 0, Z: 0})
	assert.InDelta(t, 90, west.Azimut, 1e-9, "azimuth grows toward the west")
}

func TestProjectPoint_Elevation(t *testing.T) {
	observer := model.Point3D{Z: 1.5}

	level := projectPoint(observer, model.Point3D{X: 0, Y: -10, Z: 1.5})
	assert.InDelta(t, 0, level.Elevation, 1e-9)

	diag := projectPoint(observer, model.Point3D{X: 0, Y: -10, Z: 11.5})
	assert.InDelta(t, 45, diag.Elevation, 1e-9)

	below := projectPoint(observer, model.Point3D{X: 0, Y: -10, Z: -20})
	assert.Equal(t, 0.0, below.Elevation, "below-horizon corners clamp to 0")

	above := projectPoint(observer, model.Point3D{X: 0, Y: 0, Z: 50})
	assert.Equal(t, 90.0, above.Elevation, "a corner straight overhead reads 90")
}

func TestProject_RangesAndProvenance(t *testing.T) {
	observer := model.Point3D{X: 3, Y: -2, Z: 1}
	quad := model.WallQuad{
		ID:           "q1",
		GroupID:      "g1",
		CadastralRef: "ref-1",
		DownLeft:     model.Point3D{X: -7, Y: 4, Z: 0},
		UpLeft:       model.Point3D{X: -7, Y: 4, Z: 12},
		UpRight:      model.Point3D{X: 5, Y: 9, Z: 12},
		DownRight:    model.Point3D{X: 5, Y: 9, Z: 0},
	}
	shadow := Project(observer, quad)
	assert.Equal(t, "q1", shadow.ID)
	assert.Equal(t, "g1", shadow.GroupID)
	assert.Equal(t, "ref-1", shadow.CadastralRef)
	for _, c := range shadow.Corners() {
		assert.GreaterOrEqual(t, c.Azimut, -180.0)
		assert.Less(t, c.Azimut, 180.0)
		assert.GreaterOrEqual(t, c.Elevation, 0.0)
		assert.LessOrEqual(t, c.Elevation, 90.0)
	}
}

func TestProjectPoint_DegenerateAboveObserver(t *testing.T) {
	// atan2(0, 0) resolves the bearing of a corner straight above the
	// observer to the meridian; accepted rather than special-cased.
	observer := model.Point3D{}
	p := projectPoint(observer, model.Point3D{X: 0, Y: 0, Z: 10})
	assert.InDelta(t, -180, p.Azimut, 1e-9)
	assert.Equal(t, 90.0, p.Elevation)
}
