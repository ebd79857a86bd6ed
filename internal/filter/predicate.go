// Package filter builds record predicates for dataset.Filter.
//
// Every criterion is a Predicate; criteria combine with And, Or and Not, so a
// new kind of filter never needs new Dataset methods.
package filter

import (
	"fmt"
	"strings"

	"github.com/umahmood/haversine"

	"github.com/KaramelBytes/propmap-cli/internal/property"
)

// Predicate reports whether a record should be kept.
type Predicate func(*property.Record) bool

// All keeps every record.
func All() Predicate {
	return func(*property.Record) bool { return true }
}

// And keeps records matched by every p. With no predicates it keeps everything.
func And(ps ...Predicate) Predicate {
	return func(r *property.Record) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Or keeps records matched by at least one p. With no predicates it keeps nothing.
func Or(ps ...Predicate) Predicate {
	return func(r *property.Record) bool {
		for _, p := range ps {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(r *property.Record) bool { return !p(r) }
}

// ByNeighborhood matches the neighbourhood name exactly.
func ByNeighborhood(name string) Predicate {
	return func(r *property.Record) bool { return r.Neighborhood.Name == name }
}

// ByWard matches wards containing sub.
func ByWard(sub string) Predicate {
	return func(r *property.Record) bool { return strings.Contains(r.Neighborhood.Ward, sub) }
}

// ByAssessmentClass matches records with class in any of their class slots.
func ByAssessmentClass(class string) Predicate {
	return func(r *property.Record) bool { return r.AssessmentClass.Has(class) }
}

// ByGarage matches records whose garage flag is "Y" (has) or "N" (!has),
// ignoring case. Records with any other flag match neither.
func ByGarage(has bool) Predicate {
	want := property.GarageNo
	if has {
		want = property.GarageYes
	}
	return func(r *property.Record) bool {
		return strings.EqualFold(strings.TrimSpace(r.Garage), want)
	}
}

// Comparator selects how ByValue compares against its threshold.
type Comparator int

const (
	Less Comparator = iota + 1
	Equal
	Greater
)

func (c Comparator) String() string {
	switch c {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("Comparator(%d)", int(c))
	}
}

// ParseComparator accepts less|under|lt, equal|eq and greater|above|over|gt.
func ParseComparator(s string) (Comparator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "less", "under", "lt":
		return Less, nil
	case "equal", "eq":
		return Equal, nil
	case "greater", "above", "over", "gt":
		return Greater, nil
	}
	return 0, fmt.Errorf("unknown comparator %q (use less|equal|greater)", s)
}

// ByValue compares the assessed value with threshold. Records without a
// value never match.
func ByValue(cmp Comparator, threshold int64) Predicate {
	return func(r *property.Record) bool {
		v, ok := r.Value()
		if !ok {
			return false
		}
		switch cmp {
		case Less:
			return v < threshold
		case Equal:
			return v == threshold
		case Greater:
			return v > threshold
		}
		return false
	}
}

// Near matches records within radiusKm of (lat, lng), measured as the
// great-circle distance. Records without a valid location never match.
func Near(lat, lng, radiusKm float64) Predicate {
	origin := haversine.Coord{Lat: lat, Lon: lng}
	return func(r *property.Record) bool {
		plat, plng, ok := r.Location.Coordinates()
		if !ok {
			return false
		}
		_, km := haversine.Distance(origin, haversine.Coord{Lat: plat, Lon: plng})
		return km <= radiusKm
	}
}
