package location

import (
	"encoding/json"
	"fmt"
	"time"

	geojson "github.com/paulmach/go.geojson"
)

// ExportGeoJSON renders locations as an indented FeatureCollection of Point
// features. Optional properties appear only when set.
func ExportGeoJSON(locs []Location) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, l := range locs {
		c := l.Coordinates()
		f := geojson.NewPointFeature([]float64{c.Lon(), c.Lat()})
		f.SetProperty("id", l.ID)
		f.SetProperty("name", l.Name)
		f.SetProperty("building", l.Building)
		f.SetProperty("connected_path", nonNil(l.ConnectedPath))
		f.SetProperty("type", l.Type)
		f.SetProperty("floor", l.Floor)
		f.SetProperty("category", l.Category)
		f.SetProperty("access_type", l.AccessType)
		if l.DualPathways {
			f.SetProperty("dual_pathways", true)
		}
		if l.Description != "" {
			f.SetProperty("description", l.Description)
		}
		if len(l.ImageURLs) > 0 {
			f.SetProperty("images", l.ImageURLs)
		}
		fc.AddFeature(f)
	}
	return json.MarshalIndent(fc, "", "  ")
}

// ExportFileName is the dated default file name for an export.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("campus_locations_%s.geojson", now.Format("2006-01-02"))
}
