package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadKMLLines reads a KML file and returns its LineString placemarks.
func LoadKMLLines(path string) ([]LineFeature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return ParseKMLLines(data)
}

type kmlLineString struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	ID         string         `xml:"id,attr"`
	Name       string         `xml:"name"`
	LineString *kmlLineString `xml:"LineString"`
}

type kmlFolder struct {
	Name       string         `xml:"name"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Folders    []kmlFolder    `xml:"Folder"`
}

type kmlDocument struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Folders    []kmlFolder    `xml:"Folder"`
}

type kmlRoot struct {
	Document   kmlDocument    `xml:"Document"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Folders    []kmlFolder    `xml:"Folder"`
}

// ParseKMLLines extracts Placemark > LineString coordinates. The innermost
// named Folder becomes the feature group. KML coordinates are
// "lon,lat[,alt]"; altitude is ignored and a bad tuple is an error.
func ParseKMLLines(data []byte) ([]LineFeature, error) {
	var doc kmlRoot
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var out []LineFeature
	add := func(pm kmlPlacemark, group string) error {
		if pm.LineString == nil {
			return nil
		}
		id := strings.TrimSpace(pm.ID)
		name := strings.TrimSpace(pm.Name)
		if id == "" {
			id = name
		}
		coords, err := parseKMLCoordinates(pm.LineString.Coordinates)
		if err != nil {
			return fmt.Errorf("placemark %s: %w", id, err)
		}
		out = append(out, LineFeature{ID: id, Name: name, Group: group, Coords: coords})
		return nil
	}
	var walk func(pms []kmlPlacemark, folders []kmlFolder, group string) error
	walk = func(pms []kmlPlacemark, folders []kmlFolder, group string) error {
		for _, pm := range pms {
			if err := add(pm, group); err != nil {
				return err
			}
		}
		for _, f := range folders {
			g := strings.TrimSpace(f.Name)
			if g == "" {
				g = group
			}
			if err := walk(f.Placemarks, f.Folders, g); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(doc.Placemarks, doc.Folders, ""); err != nil {
		return nil, err
	}
	if err := walk(doc.Document.Placemarks, doc.Document.Folders, ""); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errors.New("kml: no line strings found")
	}
	return out, nil
}

// parseKMLCoordinates reads whitespace-separated "lon,lat[,alt]" tuples.
func parseKMLCoordinates(s string) ([]LonLat, error) {
	tuples := strings.Fields(s)
	coords := make([]LonLat, 0, len(tuples))
	for i, tuple := range tuples {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			return nil, fmt.Errorf("%w: point %d %q", ErrBadCoordinate, i, tuple)
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: point %d %q", ErrBadCoordinate, i, tuple)
		}
		coords = append(coords, LonLat{lon, lat})
	}
	return coords, nil
}
