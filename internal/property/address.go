package property

import (
	"strconv"
	"strings"
)

// Address is a street address as published in the assessment roll.
// Suite and HouseNumber are nil when the source cell was blank or unparseable.
type Address struct {
	Suite       *int
	HouseNumber *int
	StreetName  string
}

// NewAddress builds an Address from already-parsed parts.
func NewAddress(suite, houseNumber *int, streetName string) Address {
	return Address{Suite: suite, HouseNumber: houseNumber, StreetName: streetName}
}

// IsEmpty reports whether neither a house number nor a street name is known.
func (a Address) IsEmpty() bool {
	return a.HouseNumber == nil && a.StreetName == ""
}

// Equal compares all three fields, treating two absent values as equal.
func (a Address) Equal(o Address) bool {
	return equalInt(a.Suite, o.Suite) &&
		equalInt(a.HouseNumber, o.HouseNumber) &&
		a.StreetName == o.StreetName
}

// String renders "<house> <street>", omitting absent parts, or "N/A".
func (a Address) String() string {
	var b strings.Builder
	if a.HouseNumber != nil {
		b.WriteString(strconv.Itoa(*a.HouseNumber))
	}
	if a.StreetName != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(a.StreetName)
	}
	if b.Len() == 0 {
		return "N/A"
	}
	return b.String()
}
