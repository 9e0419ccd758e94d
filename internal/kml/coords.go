package kml

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ParseCoordinates parses KML coordinate text into a ring of lon/lat
// points. Tuples are whitespace-separated "lon,lat[,alt]" triples; the
// altitude is ignored. Tuples with fewer than two numeric fields are
// skipped.
func ParseCoordinates(text string) orb.Ring {
	var ring orb.Ring

	for _, tuple := range strings.Fields(text) {
		parts := strings.Split(tuple, ",")
		if len(parts) < 2 {
			continue
		}

		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}

		ring = append(ring, orb.Point{lon, lat})
	}

	return ring
}
