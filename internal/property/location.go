package property

import (
	"strconv"
	"strings"
)

// Coordinate bounds accepted by Valid. The upper bound is wider than a true
// latitude range; published datasets were validated against it and it is
// kept so that records classify the same way they always have.
const (
	minCoordinate = -90.0
	maxCoordinate = 180.0
)

// Location is the geographic point of a property. Point is the raw point
// string from the source row, retained verbatim.
type Location struct {
	Lat   *float64
	Lng   *float64
	Point string
}

// NewLocation builds a Location from already-parsed parts.
func NewLocation(lat, lng *float64, point string) Location {
	return Location{Lat: lat, Lng: lng, Point: point}
}

// ValidCoordinate applies the roll's coordinate rule to a single value.
func ValidCoordinate(c *float64) bool {
	if c == nil {
		return false
	}
	v := *c
	return v >= minCoordinate && v <= maxCoordinate && v != -1
}

// Valid reports whether both coordinates pass ValidCoordinate.
func (l Location) Valid() bool {
	return ValidCoordinate(l.Lat) && ValidCoordinate(l.Lng)
}

// Coordinates returns the point when both parts are present, not the -1
// marker, and inside true geographic ranges. Unlike Valid, longitudes west
// of -90 are accepted.
func (l Location) Coordinates() (lat, lng float64, ok bool) {
	if l.Lat == nil || l.Lng == nil || *l.Lat == -1 || *l.Lng == -1 {
		return 0, 0, false
	}
	lat, lng = *l.Lat, *l.Lng
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, false
	}
	return lat, lng, true
}

// Equal compares coordinates and the raw point string.
func (l Location) Equal(o Location) bool {
	return equalFloat(l.Lat, o.Lat) && equalFloat(l.Lng, o.Lng) && l.Point == o.Point
}

func (l Location) String() string {
	var b strings.Builder
	if ValidCoordinate(l.Lat) {
		b.WriteString("(")
		b.WriteString(formatFloat(*l.Lat))
		b.WriteString(", ")
	}
	if ValidCoordinate(l.Lng) {
		b.WriteString(formatFloat(*l.Lng))
		b.WriteString(")")
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
