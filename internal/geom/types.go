package geom

// LonLat is a coordinate pair in stored order: longitude first.
type LonLat [2]float64

// LatLon is a coordinate pair in the order rendering surfaces expect.
type LatLon [2]float64

func (p LonLat) Lon() float64 { return p[0] }
func (p LonLat) Lat() float64 { return p[1] }
func (p LatLon) Lat() float64 { return p[0] }
func (p LatLon) Lon() float64 { return p[1] }

// BBox uses X for longitude and Y for latitude.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Empty reports whether the box spans no area on either axis.
func (b BBox) Empty() bool {
	return !(b.MaxX > b.MinX && b.MaxY > b.MinY)
}

// LineFeature is a named line string read from a geometry file.
type LineFeature struct {
	ID     string
	Name   string
	Group  string
	Coords []LonLat
}
