package loader

import (
	"strconv"
	"strings"

	"github.com/KaramelBytes/propmap-cli/internal/property"
)

// Column positions of the assessment schema. Fields past the last are ignored.
const (
	colAccountID = iota
	colSuite
	colHouseNumber
	colStreetName
	colGarage
	colNeighborhoodID
	colNeighborhoodName
	colWard
	colAssessedValue
	colLatitude
	colLongitude
	colPoint
	colPct1
	colPct2
	colPct3
	colClass1
	colClass2
	colClass3

	// FieldCount is the minimum number of fields in a data row.
	FieldCount
)

// Header is the canonical column order.
var Header = []string{
	"Account Number", "Suite", "House Number", "Street Name", "Garage",
	"Neighbourhood ID", "Neighbourhood", "Ward", "Assessed Value",
	"Latitude", "Longitude", "Point Location",
	"Assessment Class % 1", "Assessment Class % 2", "Assessment Class % 3",
	"Assessment Class 1", "Assessment Class 2", "Assessment Class 3",
}

// ParseRecord maps one row onto a record. Numeric cells that do not parse,
// or that hold the -1 absence marker, become absent.
func ParseRecord(fields []string) (*property.Record, error) {
	if len(fields) < FieldCount {
		return nil, &MalformedRowError{Fields: len(fields)}
	}
	f := func(i int) string { return fields[i] }

	return &property.Record{
		AccountID: parseInt(f(colAccountID)),
		Address:   property.NewAddress(parseInt(f(colSuite)), parseInt(f(colHouseNumber)), f(colStreetName)),
		Garage:    f(colGarage),
		Neighborhood: property.NewNeighborhood(
			parseInt(f(colNeighborhoodID)), f(colNeighborhoodName), f(colWard),
		),
		AssessedValue: parseInt64(f(colAssessedValue)),
		Location:      property.NewLocation(parseFloat(f(colLatitude)), parseFloat(f(colLongitude)), f(colPoint)),
		AssessmentClass: property.NewAssessmentClass(
			[property.MaxClassShares]*int{parseInt(f(colPct1)), parseInt(f(colPct2)), parseInt(f(colPct3))},
			[property.MaxClassShares]string{f(colClass1), f(colClass2), f(colClass3)},
		),
	}, nil
}

// Integer cells are parsed as written; surrounding spaces make them absent.
// Floats tolerate padding.
func parseInt(s string) *int {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil || v == -1 {
		return nil
	}
	return property.Int(int(v))
}

func parseInt64(s string) *int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v == -1 {
		return nil
	}
	return property.Int64(v)
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v == -1 {
		return nil
	}
	return property.Float(v)
}
