// Package location models campus locations and the stores that persist them.
package location

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"campusmap/internal/geom"
)

type Type string

const (
	TypeRoom       Type = "room"
	TypeOffice     Type = "office"
	TypeDepartment Type = "department"
	TypeFacility   Type = "facility"
	TypeEntrance   Type = "entrance"
)

type Category string

const (
	CategoryAcademic       Category = "academic"
	CategoryAdministrative Category = "administrative"
	CategoryFacility       Category = "facility"
	CategoryService        Category = "service"
	CategoryEntrance       Category = "entrance"
)

type AccessType string

const (
	AccessInternal   AccessType = "internal"
	AccessExternal   AccessType = "external"
	AccessRestricted AccessType = "restricted"
)

var (
	Types      = []Type{TypeRoom, TypeOffice, TypeDepartment, TypeFacility, TypeEntrance}
	Categories = []Category{CategoryAcademic, CategoryAdministrative, CategoryFacility, CategoryService, CategoryEntrance}
	Accesses   = []AccessType{AccessInternal, AccessExternal, AccessRestricted}
)

var (
	ErrNotFound = errors.New("location not found")
	ErrInvalid  = errors.New("invalid location")
)

// ValidationError names the offending field of a rejected location.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid location: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Location is one stored campus place. ConnectedPath holds pathway ids.
type Location struct {
	ID            string
	Name          string
	Building      string
	ConnectedPath []string
	Type          Type
	Floor         string
	Category      Category
	AccessType    AccessType
	DualPathways  bool
	Description   string
	ImageURLs     []string
	Latitude      float64
	Longitude     float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Coordinates returns the location in stored (lon, lat) order.
func (l Location) Coordinates() geom.LonLat {
	return geom.LonLat{l.Longitude, l.Latitude}
}

// Paths returns the non-blank connected pathway ids, trimmed.
func (l Location) Paths() []string {
	return CleanPaths(l.ConnectedPath)
}

// CleanPaths drops empty and whitespace-only entries and trims the rest.
func CleanPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewID returns a fresh location id.
func NewID() string {
	return "loc_" + uuid.NewString()
}

var typeColors = map[Type]string{
	TypeRoom:       "#3C9AFB",
	TypeOffice:     "#0C1635",
	TypeDepartment: "#9B59B6",
	TypeFacility:   "#F39C12",
	TypeEntrance:   "#27AE60",
}

// TypeColor is the marker colour for t.
func TypeColor(t Type) string {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return typeColors[TypeRoom]
}

// Validate checks the fields a store requires.
func (l Location) Validate() error {
	switch {
	case strings.TrimSpace(l.ID) == "":
		return &ValidationError{Field: "id", Reason: "required"}
	case len(l.Paths()) == 0:
		return &ValidationError{Field: "connected_path", Reason: "at least one pathway required"}
	case l.Latitude < -90 || l.Latitude > 90:
		return &ValidationError{Field: "latitude", Reason: "out of range"}
	case l.Longitude < -180 || l.Longitude > 180:
		return &ValidationError{Field: "longitude", Reason: "out of range"}
	}
	return nil
}

// Draft is an in-progress location being composed or edited.
type Draft struct {
	EditingID     string
	Name          string
	Building      string
	Type          Type
	Floor         string
	Category      Category
	AccessType    AccessType
	Description   string
	ConnectedPath []string
	ImageURLs     []string
	HasCoords     bool
	Latitude      float64
	Longitude     float64
	CreatedAt     time.Time
}

// NewDraft returns an empty draft with the form defaults.
func NewDraft() Draft {
	return Draft{
		Type:       TypeRoom,
		Category:   CategoryAcademic,
		AccessType: AccessInternal,
		Floor:      "Ground Floor",
	}
}

// EditDraft loads an existing location into a draft.
func EditDraft(l Location) Draft {
	return Draft{
		EditingID:     l.ID,
		Name:          l.Name,
		Building:      l.Building,
		Type:          l.Type,
		Floor:         l.Floor,
		Category:      l.Category,
		AccessType:    l.AccessType,
		Description:   l.Description,
		ConnectedPath: append([]string(nil), l.ConnectedPath...),
		ImageURLs:     append([]string(nil), l.ImageURLs...),
		HasCoords:     true,
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
		CreatedAt:     l.CreatedAt,
	}
}

// SetCoords places the draft at a point.
func (d *Draft) SetCoords(lat, lon float64) {
	d.HasCoords = true
	d.Latitude = lat
	d.Longitude = lon
}

// TogglePath adds id to the connected paths, or removes it when present.
func (d *Draft) TogglePath(id string) {
	for i, p := range d.ConnectedPath {
		if p == id {
			d.ConnectedPath = append(d.ConnectedPath[:i], d.ConnectedPath[i+1:]...)
			return
		}
	}
	d.ConnectedPath = append(d.ConnectedPath, id)
}

// Build validates the draft and produces a Location with form defaults
// applied.
func (d Draft) Build(now time.Time) (Location, error) {
	if !d.HasCoords {
		return Location{}, &ValidationError{Field: "coordinates", Reason: "select location"}
	}
	paths := CleanPaths(d.ConnectedPath)
	if len(paths) == 0 {
		return Location{}, &ValidationError{Field: "connected_path", Reason: "at least one pathway required"}
	}
	id := d.EditingID
	if id == "" {
		id = NewID()
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = "Unnamed Location"
	}
	building := strings.TrimSpace(d.Building)
	if building == "" {
		building = string(d.Category)
	}
	floor := d.Floor
	if floor == "" {
		floor = "Ground Floor"
	}
	created := d.CreatedAt
	if created.IsZero() {
		created = now
	}
	l := Location{
		ID:            id,
		Name:          name,
		Building:      building,
		ConnectedPath: paths,
		Type:          d.Type,
		Floor:         floor,
		Category:      d.Category,
		AccessType:    d.AccessType,
		DualPathways:  len(paths) > 1,
		Description:   strings.TrimSpace(d.Description),
		ImageURLs:     append([]string(nil), d.ImageURLs...),
		Latitude:      d.Latitude,
		Longitude:     d.Longitude,
		CreatedAt:     created,
		UpdatedAt:     now,
	}
	if err := l.Validate(); err != nil {
		return Location{}, err
	}
	return l, nil
}
