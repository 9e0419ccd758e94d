package kml

import (
	"regexp"
	"strconv"
	"strings"
)

// Matches declared area annotations like "Area: 5.2 sq mi".
// Captures: 1=value, 2=unit.
var areaRegex = regexp.MustCompile(`(?i)Area:\s*([\d.]+)\s*([a-zA-Z ]+)`)

// DeclaredArea extracts an "Area: <value> <unit>" annotation from a
// placemark description. Some exports carry the surveyed area as text,
// which takes precedence over geometric computation.
func DeclaredArea(description string) (value float64, unit string, ok bool) {
	m := areaRegex.FindStringSubmatch(description)
	if m == nil {
		return 0, "", false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}

	return value, strings.TrimSpace(m[2]), true
}
