package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/propmap-cli/internal/banding"
	"github.com/KaramelBytes/propmap-cli/internal/property"
)

// ClassView is one populated assessment class slot.
type ClassView struct {
	Name    string `json:"name" yaml:"name"`
	Percent int    `json:"percent" yaml:"percent"`
}

// PropertyView is the flattened, serialisable form of a record.
type PropertyView struct {
	AccountID      *int          `json:"account_id" yaml:"account_id"`
	Address        string        `json:"address" yaml:"address"`
	Suite          *int          `json:"suite,omitempty" yaml:"suite,omitempty"`
	HouseNumber    *int          `json:"house_number,omitempty" yaml:"house_number,omitempty"`
	StreetName     string        `json:"street_name,omitempty" yaml:"street_name,omitempty"`
	Garage         string        `json:"garage" yaml:"garage"`
	NeighborhoodID *int          `json:"neighborhood_id,omitempty" yaml:"neighborhood_id,omitempty"`
	Neighborhood   string        `json:"neighborhood" yaml:"neighborhood"`
	Ward           string        `json:"ward" yaml:"ward"`
	AssessedValue  *int64        `json:"assessed_value" yaml:"assessed_value"`
	Latitude       *float64      `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude      *float64      `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Point          string        `json:"point,omitempty" yaml:"point,omitempty"`
	Classes        []ClassView   `json:"classes" yaml:"classes"`
	Band           *banding.Band `json:"band,omitempty" yaml:"band,omitempty"`
	Color          string        `json:"color,omitempty" yaml:"color,omitempty"`
}

// NewPropertyView flattens r. Coordinates are omitted unless both are usable.
func NewPropertyView(r *property.Record) PropertyView {
	v := PropertyView{
		AccountID:      r.AccountID,
		Address:        r.Address.String(),
		Suite:          r.Address.Suite,
		HouseNumber:    r.Address.HouseNumber,
		StreetName:     r.Address.StreetName,
		Garage:         r.Garage,
		NeighborhoodID: r.Neighborhood.ID,
		Neighborhood:   r.Neighborhood.Name,
		Ward:           r.Neighborhood.Ward,
		AssessedValue:  r.AssessedValue,
		Point:          r.Location.Point,
		Classes:        []ClassView{},
	}
	if lat, lng, ok := r.Location.Coordinates(); ok {
		v.Latitude, v.Longitude = &lat, &lng
	}
	for _, s := range r.AssessmentClass.Present() {
		v.Classes = append(v.Classes, ClassView{Name: s.Name, Percent: *s.Percent})
	}
	return v
}

// WithBand tags the view with its band around center. Records without a
// value are left untagged.
func (v PropertyView) WithBand(center int64) PropertyView {
	if v.AssessedValue == nil {
		return v
	}
	b := banding.Classify(*v.AssessedValue, center)
	v.Band = &b
	v.Color = b.Color()
	return v
}

func (v PropertyView) value() string {
	if v.AssessedValue == nil {
		return "N/A"
	}
	return Money(*v.AssessedValue)
}

func (v PropertyView) account() string {
	if v.AccountID == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v.AccountID)
}

func (v PropertyView) classes() string {
	parts := make([]string, 0, len(v.Classes))
	for _, c := range v.Classes {
		parts = append(parts, fmt.Sprintf("%s %d%%", c.Name, c.Percent))
	}
	return strings.Join(parts, ", ")
}

// Detail renders a single property.
type Detail struct {
	Property PropertyView `json:"property" yaml:"property"`
}

func (d *Detail) Markdown() string {
	v := d.Property
	var b strings.Builder
	b.WriteString("[PROPERTY]\n")
	b.WriteString(fmt.Sprintf("Account: %s\n", v.account()))
	b.WriteString(fmt.Sprintf("Address: %s\n", safeVal(v.Address)))
	b.WriteString(fmt.Sprintf("Garage: %s\n", orNA(v.Garage)))
	b.WriteString(fmt.Sprintf("Assessed Value: %s\n", v.value()))
	if v.Band != nil {
		b.WriteString(fmt.Sprintf("Band: %s (%s)\n", *v.Band, v.Color))
	}
	b.WriteString("\n[NEIGHBOURHOOD]\n")
	b.WriteString(fmt.Sprintf("Name: %s\n", orNA(v.Neighborhood)))
	b.WriteString(fmt.Sprintf("Ward: %s\n", orNA(v.Ward)))
	if v.NeighborhoodID != nil {
		b.WriteString(fmt.Sprintf("ID: %d\n", *v.NeighborhoodID))
	}
	b.WriteString("\n[ASSESSMENT CLASS]\n")
	if len(v.Classes) == 0 {
		b.WriteString("N/A\n")
	}
	for _, c := range v.Classes {
		b.WriteString(fmt.Sprintf("- %s: %d%%\n", c.Name, c.Percent))
	}
	b.WriteString("\n[LOCATION]\n")
	if v.Latitude == nil {
		b.WriteString("N/A\n")
	} else {
		b.WriteString(fmt.Sprintf("Latitude: %g\n", *v.Latitude))
		b.WriteString(fmt.Sprintf("Longitude: %g\n", *v.Longitude))
	}
	return b.String()
}

// Listing renders a page of properties.
type Listing struct {
	Source     string         `json:"source,omitempty" yaml:"source,omitempty"`
	Criteria   string         `json:"criteria,omitempty" yaml:"criteria,omitempty"`
	Total      int            `json:"total" yaml:"total"`
	Properties []PropertyView `json:"properties" yaml:"properties"`
}

// NewListing builds a listing of at most limit records; limit <= 0 means all.
func NewListing(records []*property.Record, source, criteria string, limit int) *Listing {
	l := &Listing{Source: source, Criteria: criteria, Total: len(records), Properties: []PropertyView{}}
	for i, r := range records {
		if limit > 0 && i >= limit {
			break
		}
		l.Properties = append(l.Properties, NewPropertyView(r))
	}
	return l
}

func (l *Listing) Markdown() string {
	var b strings.Builder
	b.WriteString("[PROPERTIES]\n")
	if l.Source != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", l.Source))
	}
	if l.Criteria != "" {
		b.WriteString(fmt.Sprintf("Criteria: %s\n", l.Criteria))
	}
	if len(l.Properties) < l.Total {
		b.WriteString(fmt.Sprintf("Matches: %d (showing %d)\n", l.Total, len(l.Properties)))
	} else {
		b.WriteString(fmt.Sprintf("Matches: %d\n", l.Total))
	}
	if len(l.Properties) == 0 {
		return b.String()
	}
	b.WriteString("\n| Account | Address | Neighbourhood | Ward | Garage | Assessed Value | Class |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, v := range l.Properties {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s |\n",
			v.account(), safeVal(v.Address), safeVal(orNA(v.Neighborhood)), safeVal(orNA(v.Ward)),
			orNA(v.Garage), v.value(), safeVal(orNA(v.classes()))))
	}
	return b.String()
}
