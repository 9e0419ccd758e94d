// Package kml handles loading and parsing of KML and KMZ geometry files.
package kml

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/rs/zerolog/log"
)

// Placemark is a polygon-bearing KML feature prepared for measurement.
// A source placemark with a MultiGeometry contributes one Placemark per
// polygon it contains, all sharing the same name.
type Placemark struct {
	Name        string
	Description string
	Polygon     orb.Polygon
}

// Internal DTOs for XML decoding. Matching is on bare local names so
// documents with or without the KML namespace decode the same way.

// container models the Document/Folder nesting that may wrap placemarks
// at any depth. Decoding is custom so placemarks and nested containers
// keep their document order; struct-tag decoding would group them by
// element name and reorder siblings.
type container struct {
	nodes []any // placemarkEl or container, in document order
}

// UnmarshalXML collects Placemark, Document and Folder children in the
// order they appear, skipping everything else.
func (c *container) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "Placemark":
				var pm placemarkEl
				if err := d.DecodeElement(&pm, &t); err != nil {
					return err
				}
				c.nodes = append(c.nodes, pm)

			case "Document", "Folder":
				var sub container
				if err := d.DecodeElement(&sub, &t); err != nil {
					return err
				}
				c.nodes = append(c.nodes, sub)

			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}

		case xml.EndElement:
			return nil
		}
	}
}

type placemarkEl struct {
	Name          string            `xml:"name"`
	Description   string            `xml:"description"`
	Polygons      []polygonEl       `xml:"Polygon"`
	MultiGeometry []multiGeometryEl `xml:"MultiGeometry"`
}

type multiGeometryEl struct {
	Polygons      []polygonEl       `xml:"Polygon"`
	MultiGeometry []multiGeometryEl `xml:"MultiGeometry"`
}

type polygonEl struct {
	OuterBoundaryIs boundaryEl   `xml:"outerBoundaryIs"`
	InnerBoundaryIs []boundaryEl `xml:"innerBoundaryIs"`
}

type boundaryEl struct {
	LinearRing linearRingEl `xml:"LinearRing"`
}

type linearRingEl struct {
	Coordinates string `xml:"coordinates"`
}

// Parse decodes KML bytes and returns every polygon placemark in
// document order. Placemarks without polygon geometry are skipped,
// as are polygons whose outer ring carries no coordinates.
func Parse(data []byte) ([]Placemark, error) {
	var root container
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding KML: %w", err)
	}

	var marks []Placemark
	walk(root, &marks)

	return marks, nil
}

func walk(c container, marks *[]Placemark) {
	for _, node := range c.nodes {
		switch v := node.(type) {
		case placemarkEl:
			collect(v, marks)
		case container:
			walk(v, marks)
		}
	}
}

func collect(pm placemarkEl, marks *[]Placemark) {
	name := strings.TrimSpace(pm.Name)

	for _, poly := range allPolygons(pm) {
		p := buildPolygon(poly)
		if len(p) == 0 {
			log.Warn().Str("name", name).Msg("Polygon has no coordinates, skipping")
			continue
		}

		*marks = append(*marks, Placemark{
			Name:        name,
			Description: pm.Description,
			Polygon:     p,
		})
	}
}

// allPolygons flattens direct and MultiGeometry-nested polygons.
func allPolygons(pm placemarkEl) []polygonEl {
	polys := append([]polygonEl{}, pm.Polygons...)
	for _, mg := range pm.MultiGeometry {
		polys = appendMulti(polys, mg)
	}
	return polys
}

func appendMulti(polys []polygonEl, mg multiGeometryEl) []polygonEl {
	polys = append(polys, mg.Polygons...)
	for _, nested := range mg.MultiGeometry {
		polys = appendMulti(polys, nested)
	}
	return polys
}

// buildPolygon converts a polygon element into an orb.Polygon with the
// outer ring first and one ring per hole. Returns an empty polygon when
// the outer ring has no coordinates.
func buildPolygon(el polygonEl) orb.Polygon {
	outer := ParseCoordinates(el.OuterBoundaryIs.LinearRing.Coordinates)
	if len(outer) == 0 {
		return nil
	}

	poly := orb.Polygon{outer}
	for _, inner := range el.InnerBoundaryIs {
		ring := ParseCoordinates(inner.LinearRing.Coordinates)
		if len(ring) == 0 {
			continue
		}
		poly = append(poly, ring)
	}

	return poly
}
