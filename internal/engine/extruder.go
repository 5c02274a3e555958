// Package engine implements the shadow analysis pipeline: footprints are
// extruded into vertical wall quads, each quad is projected into an angular
// shadow relative to the observer (splitting first when it straddles the
// north meridian), and the resulting shadow list is reduced to a minimal
// coverage-equivalent subset.
package engine

import (
	"fmt"

	"github.com/jmoralesv/sombra/internal/model"
)

// OverhangTopZ is the sentinel roof height for overhang walls: an overhang
// blocks every elevation above its base, so its walls extend high enough
// that the projected elevation clamps to 90°.
const OverhangTopZ = 1e6

// OverhangGroupID is the group id assigned to all overhang walls.
const OverhangGroupID = "overhang"

// ExtrudeBuildings turns every building footprint into wall quads. Buildings
// whose height code parses to zero floors are skipped.
func ExtrudeBuildings(buildings []model.Building, floorHeight float64) []model.WallQuad {
	var quads []model.WallQuad
	for _, b := range buildings {
		quads = append(quads, ExtrudeBuilding(b, floorHeight)...)
	}
	return quads
}

// ExtrudeBuilding extrudes one footprint ring into vertical walls, one per
// ring edge including the closing edge. A ring of N points yields N walls.
// Rings with fewer than 3 points and buildings with non-positive height
// yield no walls.
func ExtrudeBuilding(b model.Building, floorHeight float64) []model.WallQuad {
	height := float64(model.ParseFloorCount(b.HeightCode)) * floorHeight
	if height <= 0 {
		return nil
	}
	ring := b.Footprint
	if len(ring) < 3 {
		return nil
	}

	quads := make([]model.WallQuad, 0, len(ring))
	wall := func(i int, p, q model.Point2D) model.WallQuad {
		return model.WallQuad{
			ID:           fmt.Sprintf("%s-%d", b.ID, i),
			GroupID:      b.GroupID,
			CadastralRef: b.CadastralRef,
			DownLeft:     model.Point3D{X: p.X, Y: p.Y, Z: 0},
			UpLeft:       model.Point3D{X: p.X, Y: p.Y, Z: height},
			UpRight:      model.Point3D{X: q.X, Y: q.Y, Z: height},
			DownRight:    model.Point3D{X: q.X, Y: q.Y, Z: 0},
		}
	}
	for i := 0; i+1 < len(ring); i++ {
		quads = append(quads, wall(i, ring[i], ring[i+1]))
	}
	quads = append(quads, wall(len(ring)-1, ring[len(ring)-1], ring[0]))
	return quads
}

// ExtrudeOverhangs turns overhang footprints into infinite-height obstacle
// walls. The base of each wall keeps the vertex's own Z; the top is the
// OverhangTopZ sentinel.
func ExtrudeOverhangs(overhangs []model.Overhang) []model.WallQuad {
	var quads []model.WallQuad
	for i, o := range overhangs {
		ring := o.Footprint
		if len(ring) < 3 {
			continue
		}
		wall := func(j int, p, q model.Point3D) model.WallQuad {
			return model.WallQuad{
				ID:        fmt.Sprintf("%s-%d-%d", OverhangGroupID, i, j),
				GroupID:   OverhangGroupID,
				DownLeft:  model.Point3D{X: p.X, Y: p.Y, Z: p.Z},
				UpLeft:    model.Point3D{X: p.X, Y: p.Y, Z: OverhangTopZ},
				UpRight:   model.Point3D{X: q.X, Y: q.Y, Z: OverhangTopZ},
				DownRight: model.Point3D{X: q.X, Y: q.Y, Z: q.Z},
			}
		}
		for j := 0; j+1 < len(ring); j++ {
			quads = append(quads, wall(j, ring[j], ring[j+1]))
		}
		quads = append(quads, wall(len(ring)-1, ring[len(ring)-1], ring[0]))
	}
	return quads
}
