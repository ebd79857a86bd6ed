// Package banding classifies an assessed value by how far it sits from a
// reference center value, typically the median of the records on screen.
//
// The center is always passed in. Callers that let a user re-center the view
// keep their own current center and hand it to every Classify call.
package banding

import (
	"fmt"
	"strings"
)

// Band is an ordinal position relative to the center. The zero value is Zero.
type Band int

const (
	Zero Band = iota
	Below50
	Below30
	Below15
	Below5
	Below2
	Center
	Above2
	Above5
	Above15
	Above30
	Above30To50
	Above50
)

// rule is one step of the cascade. A value falls into band when it is at or
// below factor*center and no earlier rule matched.
type rule struct {
	band   Band
	factor float64
}

var below = []rule{
	{Below50, 0.50},
	{Below30, 0.70},
	{Below15, 0.85},
	{Below5, 0.95},
	{Below2, 0.98},
}

var above = []rule{
	{Above2, 1.02},
	{Above5, 1.05},
	{Above15, 1.15},
	{Above30, 1.30},
	{Above30To50, 1.50},
}

// Classify places value relative to center. Rules are evaluated in order and
// the first match wins: exact zero, the five below-center bounds, exact
// center, the five above-center bounds, then Above50.
//
// A center of zero collapses every bound to zero, so any non-zero value lands
// in Above50 (or Below50 when negative).
func Classify(value, center int64) Band {
	if value == 0 {
		return Zero
	}
	v, c := float64(value), float64(center)
	for _, r := range below {
		if v <= c*r.factor {
			return r.band
		}
	}
	if value == center {
		return Center
	}
	for _, r := range above {
		if v <= c*r.factor {
			return r.band
		}
	}
	return Above50
}

// Bands lists every band in cascade order.
func Bands() []Band {
	out := make([]Band, 0, int(Above50)+1)
	for b := Zero; b <= Above50; b++ {
		out = append(out, b)
	}
	return out
}

// Factor returns the multiple of the center that bounds b from above. Zero,
// Center and Above50 have no factor.
func (b Band) Factor() (float64, bool) {
	for _, r := range below {
		if r.band == b {
			return r.factor, true
		}
	}
	for _, r := range above {
		if r.band == b {
			return r.factor, true
		}
	}
	if b == Center {
		return 1, true
	}
	return 0, false
}

var labels = [...]string{
	Zero:        "zero",
	Below50:     "-50%",
	Below30:     "-30%",
	Below15:     "-15%",
	Below5:      "-5%",
	Below2:      "-2%",
	Center:      "center",
	Above2:      "+2%",
	Above5:      "+5%",
	Above15:     "+15%",
	Above30:     "+30%",
	Above30To50: "+30%-50%",
	Above50:     "+50%",
}

// Altered Spectral 11 palette; one hex colour per band.
var colors = [...]string{
	Zero:        "#000000",
	Below50:     "#4b2ca3",
	Below30:     "#0077bb",
	Below15:     "#00b891",
	Below5:      "#6ccc63",
	Below2:      "#d9ed4c",
	Center:      "#ffff66",
	Above2:      "#ffcc33",
	Above5:      "#ff8c00",
	Above15:     "#e64a19",
	Above30:     "#c70039",
	Above30To50: "#a1002f",
	Above50:     "#800026",
}

// Valid reports whether b is one of the defined bands.
func (b Band) Valid() bool { return b >= Zero && b <= Above50 }

func (b Band) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Band(%d)", int(b))
	}
	return labels[b]
}

// Color returns the band's hex colour, or "" for an invalid band.
func (b Band) Color() string {
	if !b.Valid() {
		return ""
	}
	return colors[b]
}

// Parse accepts a band label as produced by String, ignoring case and spaces.
func Parse(s string) (Band, error) {
	want := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	for _, b := range Bands() {
		if labels[b] == want {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown band %q", s)
}

// MarshalText encodes the band as its label.
func (b Band) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid band %d", int(b))
	}
	return []byte(labels[b]), nil
}

// UnmarshalText decodes a band label.
func (b *Band) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Threshold is the value range covered by one band for a given center.
type Threshold struct {
	Band  Band     `json:"band" yaml:"band"`
	Upper *float64 `json:"upper,omitempty" yaml:"upper,omitempty"` // nil for Zero and Above50
	Color string   `json:"color" yaml:"color"`
}

// Thresholds returns, in cascade order, each band with the inclusive upper
// bound it covers for center.
func Thresholds(center int64) []Threshold {
	out := make([]Threshold, 0, int(Above50)+1)
	for _, b := range Bands() {
		t := Threshold{Band: b, Color: b.Color()}
		switch b {
		case Zero, Above50:
		case Center:
			c := float64(center)
			t.Upper = &c
		default:
			f, _ := b.Factor()
			u := float64(center) * f
			t.Upper = &u
		}
		out = append(out, t)
	}
	return out
}
