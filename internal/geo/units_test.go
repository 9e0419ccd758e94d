package geo

import (
	"testing"
)

func TestAcresFrom(t *testing.T) {
	tests := []struct {
		unit  string
		value float64
		want  float64
	}{
		{"acres", 40, 40},
		{"Acres", 40, 40},
		{"sq mi", 2, 1280},
		{"square miles", 1, 640},
		{"hectares", 1, 2.47105},
		{"sq km", 1, 247.105},
		{"sq ft", 43560, 1},
		{"sqft", 21780, 0.5},
		{"square meters", 4046.8564224, 1},
		{"sq m", 8093.7128448, 2},
	}

	for _, tc := range tests {
		t.Run(tc.unit, func(t *testing.T) {
			got, err := AcresFrom(tc.value, tc.unit)
			if err != nil {
				t.Fatalf("AcresFrom(%v, %q): %v", tc.value, tc.unit, err)
			}
			approx(t, got, tc.want, 1e-9)
		})
	}
}

func TestAcresFromUnknownUnit(t *testing.T) {
	if _, err := AcresFrom(1, "furlongs"); err == nil {
		t.Fatal("expected error for unknown unit")
	}
}
