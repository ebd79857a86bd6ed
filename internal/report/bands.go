package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/KaramelBytes/propmap-cli/internal/banding"
)

// BandRow is one band's bound, colour and optional tally.
type BandRow struct {
	Band  banding.Band `json:"band" yaml:"band"`
	Upper *float64     `json:"upper,omitempty" yaml:"upper,omitempty"`
	Color string       `json:"color" yaml:"color"`
	Count *int         `json:"count,omitempty" yaml:"count,omitempty"`
}

// ValueBand is the classification of one ad hoc value.
type ValueBand struct {
	Value int64        `json:"value" yaml:"value"`
	Band  banding.Band `json:"band" yaml:"band"`
	Color string       `json:"color" yaml:"color"`
}

// Bands renders the band table around a center, with an optional
// distribution and optional classified values.
type Bands struct {
	Center int64       `json:"center" yaml:"center"`
	Source string      `json:"source,omitempty" yaml:"source,omitempty"`
	Rows   []BandRow   `json:"bands" yaml:"bands"`
	Values []ValueBand `json:"values,omitempty" yaml:"values,omitempty"`
}

// NewBands builds the table for center. counts may be nil.
func NewBands(center int64, counts map[banding.Band]int) *Bands {
	out := &Bands{Center: center}
	for _, t := range banding.Thresholds(center) {
		row := BandRow{Band: t.Band, Upper: t.Upper, Color: t.Color}
		if counts != nil {
			n := counts[t.Band]
			row.Count = &n
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Classify appends the band of each value.
func (b *Bands) Classify(values ...int64) *Bands {
	for _, v := range values {
		band := banding.Classify(v, b.Center)
		b.Values = append(b.Values, ValueBand{Value: v, Band: band, Color: band.Color()})
	}
	return b
}

func (b *Bands) Markdown() string {
	var s strings.Builder
	s.WriteString("[VALUE BANDS]\n")
	s.WriteString(fmt.Sprintf("Center: %s\n", Money(b.Center)))
	if b.Source != "" {
		s.WriteString(fmt.Sprintf("Source: %s\n", b.Source))
	}
	withCounts := len(b.Rows) > 0 && b.Rows[0].Count != nil
	s.WriteString("\n| Band | Up to | Colour |")
	if withCounts {
		s.WriteString(" Count |")
	}
	s.WriteString("\n| --- | --- | --- |")
	if withCounts {
		s.WriteString(" --- |")
	}
	s.WriteString("\n")
	for _, r := range b.Rows {
		upper := "-"
		if r.Upper != nil {
			upper = Money(int64(math.Round(*r.Upper)))
		}
		s.WriteString(fmt.Sprintf("| %s | %s | %s |", r.Band, upper, r.Color))
		if withCounts {
			s.WriteString(fmt.Sprintf(" %d |", *r.Count))
		}
		s.WriteString("\n")
	}
	if len(b.Values) > 0 {
		s.WriteString("\n[CLASSIFIED VALUES]\n")
		for _, v := range b.Values {
			s.WriteString(fmt.Sprintf("- %s: %s (%s)\n", Money(v.Value), v.Band, v.Color))
		}
	}
	return s.String()
}

// Distinct lists the distinct values of one field.
type Distinct struct {
	Field  string   `json:"field" yaml:"field"`
	Values []string `json:"values" yaml:"values"`
}

func (d *Distinct) Markdown() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[DISTINCT %s]\n", strings.ToUpper(d.Field)))
	for _, v := range d.Values {
		b.WriteString("- ")
		b.WriteString(safeVal(v))
		b.WriteString("\n")
	}
	if len(d.Values) == 0 {
		b.WriteString("(none)\n")
	}
	return b.String()
}
