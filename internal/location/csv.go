package location

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadCSV reads seed locations from a CSV file.
func LoadCSV(path string) ([]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses locations with a header row. Coordinate columns are
// detected as lat|latitude|y and lon|lng|long|longitude|x (case-insensitive).
// connected_path entries are separated by "+" or ";". Rows with unparseable
// coordinates are skipped.
func ReadCSV(r io.Reader) ([]Location, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	col := map[string]int{}
	idxLat, idxLon := -1, -1
	for i, h := range recs[0] {
		lh := strings.ToLower(strings.TrimSpace(h))
		switch lh {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		default:
			if _, ok := col[lh]; !ok {
				col[lh] = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return nil, errors.New("csv: latitude/longitude columns not found")
	}
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	splitPaths := func(s string) []string {
		return CleanPaths(strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == ';' }))
	}

	var out []Location
	for n, row := range recs[1:] {
		if idxLon >= len(row) || idxLat >= len(row) {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		l := Location{
			ID:            get(row, "id"),
			Name:          get(row, "name"),
			Building:      get(row, "building"),
			ConnectedPath: splitPaths(get(row, "connected_path")),
			Type:          Type(get(row, "type")),
			Floor:         get(row, "floor"),
			Category:      Category(get(row, "category")),
			AccessType:    AccessType(get(row, "access_type")),
			Description:   get(row, "description"),
			Latitude:      lat,
			Longitude:     lon,
		}
		if l.ID == "" {
			l.ID = fmt.Sprintf("csv_%d", n+1)
		}
		if l.Type == "" {
			l.Type = TypeRoom
		}
		if l.Category == "" {
			l.Category = CategoryAcademic
		}
		if l.AccessType == "" {
			l.AccessType = AccessInternal
		}
		if ts := get(row, "created_at"); ts != "" {
			if t, err := time.Parse(time.RFC3339, ts); err == nil {
				l.CreatedAt = t
			}
		}
		l.DualPathways = len(l.ConnectedPath) > 1
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, errors.New("csv: no valid locations parsed")
	}
	return out, nil
}
