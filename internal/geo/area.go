package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// SquareMetersPerAcre is the international acre.
const SquareMetersPerAcre = 4046.8564224

// Conversion factors from acres.
const (
	SquareFeetPerAcre  = 43560.0
	AcresPerSquareMile = 640.0
)

// Acres projects the polygon into a local equal-area plane and returns
// its net area (outer ring minus holes) in acres. Degenerate or
// self-intersecting rings are not validated; the result is whatever the
// planar formula yields.
func Acres(poly orb.Polygon) float64 {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return 0
	}

	projected := project.Polygon(poly.Clone(), EqualArea(Centroid(poly[0])))

	return math.Abs(planar.Area(projected)) / SquareMetersPerAcre
}
