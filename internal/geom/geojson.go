package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrBadCoordinate marks a point that is not a numeric lon/lat pair.
var ErrBadCoordinate = errors.New("malformed coordinate")

// parsePoint reads a [lon, lat, ...] array.
func parsePoint(v any) (LonLat, bool) {
	a, ok := v.([]any)
	if !ok || len(a) < 2 {
		return LonLat{}, false
	}
	lon, lok := a[0].(float64)
	lat, aok := a[1].(float64)
	if !lok || !aok {
		return LonLat{}, false
	}
	return LonLat{lon, lat}, true
}

// LoadGeoJSONLines reads a GeoJSON file and returns its line features.
func LoadGeoJSONLines(path string) ([]LineFeature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return ParseGeoJSONLines(data)
}

// ParseGeoJSONLines extracts LineString and MultiLineString features.
// Feature properties id, name and group are carried over; a MultiLineString
// yields one feature per member with "#n" appended to its id from the second on.
// A point that is not a numeric pair fails the whole parse with ErrBadCoordinate.
func ParseGeoJSONLines(data []byte) ([]LineFeature, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	parseLineString := func(v any) ([]LonLat, error) {
		arr, ok := v.([]any)
		if !ok {
			return nil, errors.New("coordinates are not an array")
		}
		ls := make([]LonLat, 0, len(arr))
		for i, el := range arr {
			pt, ok := parsePoint(el)
			if !ok {
				return nil, fmt.Errorf("%w: point %d", ErrBadCoordinate, i)
			}
			ls = append(ls, pt)
		}
		return ls, nil
	}
	str := func(props map[string]any, key string) string {
		switch v := props[key].(type) {
		case string:
			return v
		case float64:
			return fmt.Sprintf("%g", v)
		}
		return ""
	}

	var out []LineFeature
	walkFeature := func(fm map[string]any, idx int) error {
		g, ok := fm["geometry"].(map[string]any)
		if !ok {
			return nil
		}
		props, _ := fm["properties"].(map[string]any)
		if props == nil {
			props = map[string]any{}
		}
		id := str(props, "id")
		if id == "" {
			if fid, ok := fm["id"].(string); ok {
				id = fid
			}
		}
		if id == "" {
			id = fmt.Sprintf("feature_%d", idx)
		}
		base := LineFeature{ID: id, Name: str(props, "name"), Group: str(props, "group")}
		gt, _ := g["type"].(string)
		switch gt {
		case "LineString":
			ls, err := parseLineString(g["coordinates"])
			if err != nil {
				return fmt.Errorf("feature %s: %w", id, err)
			}
			base.Coords = ls
			out = append(out, base)
		case "MultiLineString":
			parts, ok := g["coordinates"].([]any)
			if !ok {
				return fmt.Errorf("feature %s: coordinates are not an array", id)
			}
			for i, part := range parts {
				ls, err := parseLineString(part)
				if err != nil {
					return fmt.Errorf("feature %s line %d: %w", id, i, err)
				}
				lf := base
				if i > 0 {
					lf.ID = fmt.Sprintf("%s#%d", base.ID, i+1)
				}
				lf.Coords = ls
				out = append(out, lf)
			}
		}
		return nil
	}

	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if err := walkFeature(raw, 0); err != nil {
			return nil, err
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for i, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					if err := walkFeature(fm, i); err != nil {
						return nil, err
					}
				}
			}
		}
	case "":
		return nil, errors.New("invalid geojson: missing type")
	default:
		return nil, errors.New("unsupported geojson type: " + t)
	}
	if len(out) == 0 {
		return nil, errors.New("no line features found")
	}
	return out, nil
}
