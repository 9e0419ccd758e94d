package kml

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load reads KML bytes from a .kml or .kmz file, dispatching on the
// file extension (case-insensitive).
func Load(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading KML file: %w", err)
		}
		return data, nil

	case ".kmz":
		return extractKMZ(path)

	default:
		return nil, fmt.Errorf("unsupported file extension %q (expected .kml or .kmz)", filepath.Ext(path))
	}
}

// extractKMZ opens the file as a zip archive and returns the contents
// of the first .kml entry.
func extractKMZ(path string) ([]byte, error) {
	z, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening KMZ archive: %w", err)
	}
	defer func() { _ = z.Close() }()

	for _, entry := range z.File {
		if !strings.HasSuffix(strings.ToLower(entry.Name), ".kml") {
			continue
		}

		f, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %q in KMZ: %w", entry.Name, err)
		}

		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %q in KMZ: %w", entry.Name, err)
		}

		return data, nil
	}

	return nil, fmt.Errorf("no KML file found inside KMZ archive")
}
