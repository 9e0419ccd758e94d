// Package geo handles coordinate projection and area computation.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// Authalic sphere radius for WGS84 in meters. Using the authalic radius
// keeps areas computed on the sphere consistent with the ellipsoid.
const earthRadius = 6371007.181

const degToRad = math.Pi / 180.0

// Centroid returns the vertex average of a ring, used as the projection
// origin. Good enough as a local center; this is not the area centroid.
func Centroid(ring orb.Ring) orb.Point {
	if len(ring) == 0 {
		return orb.Point{}
	}

	var sumLon, sumLat float64
	for _, p := range ring {
		sumLon += p[0]
		sumLat += p[1]
	}

	n := float64(len(ring))
	return orb.Point{sumLon / n, sumLat / n}
}

// EqualArea returns a Lambert azimuthal equal-area projection centered
// on origin. Centering per polygon keeps distortion negligible for
// features of field or parcel scale anywhere on the globe; no single
// global projection preserves area everywhere.
//
// Forward formulas per Snyder, Map Projections: A Working Manual,
// eq. 24-2 .. 24-4, on the authalic sphere.
func EqualArea(origin orb.Point) orb.Projection {
	lon0 := origin[0] * degToRad
	lat0 := origin[1] * degToRad

	sinLat0 := math.Sin(lat0)
	cosLat0 := math.Cos(lat0)

	return func(p orb.Point) orb.Point {
		lon := p[0]*degToRad - lon0
		lat := p[1] * degToRad

		sinLat := math.Sin(lat)
		cosLat := math.Cos(lat)
		cosLon := math.Cos(lon)

		// Undefined only at the antipode of the origin, which a local
		// polygon can not reach.
		k := math.Sqrt(2.0 / (1.0 + sinLat0*sinLat + cosLat0*cosLat*cosLon))

		x := earthRadius * k * cosLat * math.Sin(lon)
		y := earthRadius * k * (cosLat0*sinLat - sinLat0*cosLat*cosLon)

		return orb.Point{x, y}
	}
}
