// Package property defines the value types of a property-assessment roll.
//
// Records are built once by the loader and shared, never copied, between a
// dataset and every dataset filtered from it. Nothing in this module modifies
// a Record after construction and callers must not either.
//
// Fields the source marks as unknown are nil pointers rather than -1.
package property

import (
	"cmp"
	"strings"
)

// Garage flags as published in the roll.
const (
	GarageYes = "Y"
	GarageNo  = "N"
)

// Record is one row of the assessment roll.
type Record struct {
	AccountID       *int
	Address         Address
	Garage          string
	Neighborhood    Neighborhood
	AssessedValue   *int64
	Location        Location
	AssessmentClass AssessmentClass
}

// Value returns the assessed value and whether it is known.
func (r *Record) Value() (int64, bool) {
	if r == nil || r.AssessedValue == nil {
		return 0, false
	}
	return *r.AssessedValue, true
}

// Account returns the account id and whether it is known.
func (r *Record) Account() (int, bool) {
	if r == nil || r.AccountID == nil {
		return 0, false
	}
	return *r.AccountID, true
}

// HasGarage reports whether the garage flag is "Y", ignoring case.
func (r *Record) HasGarage() bool {
	return strings.EqualFold(strings.TrimSpace(r.Garage), GarageYes)
}

// Compare orders records by assessed value ascending. Records without a
// value sort before every valued record.
func Compare(a, b *Record) int {
	av, aok := a.Value()
	bv, bok := b.Value()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	return cmp.Compare(av, bv)
}
