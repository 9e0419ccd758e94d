package kml_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/acreage/internal/kml"

	"github.com/matryer/is"
	gokml "github.com/twpayne/go-kml"
)

// writeKMZ packs kmlData into a zip archive at path, with optional
// extra entries written before the KML payload.
func writeKMZ(t *testing.T, path string, kmlData []byte, extra ...string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating KMZ fixture: %v", err)
	}

	zw := zip.NewWriter(f)
	for _, name := range extra {
		if _, err := zw.Create(name); err != nil {
			t.Fatalf("adding %q to KMZ fixture: %v", name, err)
		}
	}
	if kmlData != nil {
		w, err := zw.Create("doc.kml")
		if err != nil {
			t.Fatalf("adding doc.kml to KMZ fixture: %v", err)
		}
		if _, err := w.Write(kmlData); err != nil {
			t.Fatalf("writing doc.kml to KMZ fixture: %v", err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("closing KMZ fixture: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing KMZ fixture file: %v", err)
	}
}

func TestLoadKML(t *testing.T) {
	is := is.New(t)

	data := encode(t, gokml.Document(polygonPlacemark("Field A", squareCoords(0, 100))))
	path := filepath.Join(t.TempDir(), "fields.kml")
	is.NoErr(os.WriteFile(path, data, 0644))

	got, err := kml.Load(path)
	is.NoErr(err)
	is.Equal(got, data)
}

func TestLoadKMZ(t *testing.T) {
	is := is.New(t)

	data := encode(t, gokml.Document(polygonPlacemark("Field A", squareCoords(0, 100))))
	path := filepath.Join(t.TempDir(), "fields.kmz")
	writeKMZ(t, path, data, "images/overlay.png")

	got, err := kml.Load(path)
	is.NoErr(err)
	is.Equal(got, data)
}

func TestLoadKMZWithoutKML(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "empty.kmz")
	writeKMZ(t, path, nil, "readme.txt")

	_, err := kml.Load(path)
	is.True(err != nil)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "fields.txt")
	is.NoErr(os.WriteFile(path, []byte("not geometry"), 0644))

	_, err := kml.Load(path)
	is.True(err != nil)
}

func TestLoadMissingFile(t *testing.T) {
	is := is.New(t)

	_, err := kml.Load(filepath.Join(t.TempDir(), "absent.kml"))
	is.True(err != nil)
}

func TestLoadExtensionCaseInsensitive(t *testing.T) {
	is := is.New(t)

	data := encode(t, gokml.Document(polygonPlacemark("Field A", squareCoords(0, 100))))
	path := filepath.Join(t.TempDir(), "FIELDS.KML")
	is.NoErr(os.WriteFile(path, data, 0644))

	_, err := kml.Load(path)
	is.NoErr(err)
}
