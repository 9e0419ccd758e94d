package geo

import (
	"fmt"
	"strings"
)

// AcresFrom converts a declared area value to acres based on its unit
// label, as found in placemark descriptions. Returns an error for units
// not in the table so the caller can fall back to geometric computation.
func AcresFrom(value float64, unit string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "acre", "acres":
		return value, nil
	case "sq mi", "square miles":
		return value * AcresPerSquareMile, nil
	case "hectare", "hectares":
		return value * 2.47105, nil
	case "sq km", "square kilometers", "square kilometres":
		return value * 247.105, nil
	case "sq ft", "square feet", "sqft":
		return value / SquareFeetPerAcre, nil
	case "sq m", "sq meter", "sq metre", "square meters", "square metres":
		return value / SquareMetersPerAcre, nil
	default:
		return 0, fmt.Errorf("unknown area unit %q", unit)
	}
}
