package location

import (
	"encoding/json"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportGeoJSON(t *testing.T) {
	a := sample("loc_a", now, "admin_path", "commission_path")
	a.DualPathways = true
	a.Description = "Second floor"
	b := sample("loc_b", now, "canteen_path")

	data, err := ExportGeoJSON([]Location{a, b})
	require.NoError(t, err)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]any `json:"properties"`
			Geometry   struct {
				Type        string     `json:"type"`
				Coordinates [2]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	assert.Equal(t, "Point", first.Geometry.Type)
	assert.Equal(t, [2]float64{a.Longitude, a.Latitude}, first.Geometry.Coordinates)
	assert.Equal(t, []any{"admin_path", "commission_path"}, first.Properties["connected_path"])
	assert.Equal(t, true, first.Properties["dual_pathways"])
	assert.Equal(t, "Second floor", first.Properties["description"])

	second := fc.Features[1].Properties
	assert.NotContains(t, second, "dual_pathways")
	assert.NotContains(t, second, "description")
	assert.NotContains(t, second, "images")
}

func TestExportReadsBackAsFeatureCollection(t *testing.T) {
	l := sample("loc_a", now, "main_entrance")
	l.ImageURLs = []string{"https://example.test/a.jpg"}

	data, err := ExportGeoJSON([]Location{l})
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	f := fc.Features[0]
	require.True(t, f.Geometry.IsPoint())
	assert.Equal(t, []float64{l.Longitude, l.Latitude}, f.Geometry.Point)
	assert.Equal(t, "loc_a", f.PropertyMustString("id"))
	assert.Equal(t, "room", f.PropertyMustString("type"))
	assert.Equal(t, []any{"https://example.test/a.jpg"}, f.Properties["images"])
}

func TestExportEmpty(t *testing.T) {
	data, err := ExportGeoJSON(nil)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"features": []`)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "campus_locations_2025-10-18.geojson", ExportFileName(now))
}
