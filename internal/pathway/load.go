package pathway

import (
	"fmt"
	"path/filepath"
	"strings"

	"campusmap/internal/geom"
)

// Load builds a registry from a GeoJSON (.geojson, .json) or KML (.kml)
// file of line features. Features without a group are listed under
// "Other".
func Load(path string) (*Registry, error) {
	var (
		lines []geom.LineFeature
		err   error
	)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson", ".json":
		lines, err = geom.LoadGeoJSONLines(path)
	case ".kml":
		lines, err = geom.LoadKMLLines(path)
	default:
		return nil, fmt.Errorf("unsupported pathway file: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load pathways %s: %w", filepath.Base(path), err)
	}
	return FromFeatures(lines)
}

// FromFeatures converts line features into a registry, keeping feature order
// and grouping by the first appearance of each group name.
func FromFeatures(lines []geom.LineFeature) (*Registry, error) {
	pathways := make([]Pathway, 0, len(lines))
	var groups []Group
	idx := map[string]int{}
	for _, lf := range lines {
		pathways = append(pathways, Pathway{ID: lf.ID, Name: lf.Name, Points: lf.Coords})
		g := lf.Group
		if g == "" {
			g = "Other"
		}
		i, ok := idx[g]
		if !ok {
			i = len(groups)
			idx[g] = i
			groups = append(groups, Group{Name: g})
		}
		groups[i].IDs = append(groups[i].IDs, lf.ID)
	}
	return NewRegistry(pathways, groups)
}
