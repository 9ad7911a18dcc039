package geom

// Swap exchanges the two components of every pair, keeping sequence order.
// Swap(Swap(pts)) returns the input values.
func Swap(pts [][2]float64) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p[1], p[0]}
	}
	return out
}

// ToRenderOrder converts stored (lon, lat) pairs into (lat, lon) pairs.
// Every place a coordinate crosses into a rendering surface goes through here.
func ToRenderOrder(pts []LonLat) []LatLon {
	out := make([]LatLon, len(pts))
	for i, p := range pts {
		out[i] = LatLon{p[1], p[0]}
	}
	return out
}

// FromRenderOrder is the inverse of ToRenderOrder.
func FromRenderOrder(pts []LatLon) []LonLat {
	out := make([]LonLat, len(pts))
	for i, p := range pts {
		out[i] = LonLat{p[1], p[0]}
	}
	return out
}

// BoundsOf returns the bounding box of render-order points.
func BoundsOf(pts []LatLon) BBox {
	var bbox BBox
	for i, p := range pts {
		lat, lon := p.Lat(), p.Lon()
		if i == 0 {
			bbox = BBox{MinX: lon, MinY: lat, MaxX: lon, MaxY: lat}
			continue
		}
		if lon < bbox.MinX {
			bbox.MinX = lon
		}
		if lat < bbox.MinY {
			bbox.MinY = lat
		}
		if lon > bbox.MaxX {
			bbox.MaxX = lon
		}
		if lat > bbox.MaxY {
			bbox.MaxY = lat
		}
	}
	return bbox
}

// Pad grows the box by frac of its span on every side. A zero-span axis
// grows by a fixed epsilon so a single point still yields a usable viewport.
func (b BBox) Pad(frac float64) BBox {
	const eps = 1e-4
	dx := (b.MaxX - b.MinX) * frac
	dy := (b.MaxY - b.MinY) * frac
	if dx == 0 {
		dx = eps
	}
	if dy == 0 {
		dy = eps
	}
	return BBox{MinX: b.MinX - dx, MinY: b.MinY - dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy}
}
