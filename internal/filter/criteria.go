package filter

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Criteria is the form-style description of a filter, as entered on the
// command line or in a query string. Empty fields are ignored.
type Criteria struct {
	Neighborhood    string  `json:"neighborhood,omitempty" yaml:"neighborhood,omitempty" validate:"max=128"`
	Ward            string  `json:"ward,omitempty" yaml:"ward,omitempty" validate:"max=128"`
	AssessmentClass string  `json:"class,omitempty" yaml:"class,omitempty" validate:"max=64"`
	Garage          string  `json:"garage,omitempty" yaml:"garage,omitempty" validate:"omitempty,oneof=all yes no y n"`
	ValueOp         string  `json:"value_op,omitempty" yaml:"value_op,omitempty" validate:"omitempty,oneof=less under lt equal eq greater above over gt"`
	Value           int64   `json:"value,omitempty" yaml:"value,omitempty"`
	NearLat         float64 `json:"near_lat,omitempty" yaml:"near_lat,omitempty" validate:"gte=-90,lte=90"`
	NearLng         float64 `json:"near_lng,omitempty" yaml:"near_lng,omitempty" validate:"gte=-180,lte=180"`
	RadiusKm        float64 `json:"radius_km,omitempty" yaml:"radius_km,omitempty" validate:"gte=0"`
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.Neighborhood == "" && c.Ward == "" && c.AssessmentClass == "" &&
		(c.Garage == "" || strings.EqualFold(c.Garage, "all")) &&
		c.ValueOp == "" && c.RadiusKm == 0
}

// Normalize trims every string field and lower-cases the enumerations.
func (c Criteria) Normalize() Criteria {
	c.Neighborhood = strings.TrimSpace(c.Neighborhood)
	c.Ward = strings.TrimSpace(c.Ward)
	c.AssessmentClass = strings.TrimSpace(c.AssessmentClass)
	c.Garage = strings.ToLower(strings.TrimSpace(c.Garage))
	c.ValueOp = strings.ToLower(strings.TrimSpace(c.ValueOp))
	return c
}

// Validate checks field formats after normalisation.
func (c Criteria) Validate() error {
	if err := validate.Struct(c.Normalize()); err != nil {
		return fmt.Errorf("invalid criteria: %w", err)
	}
	return nil
}

// Build validates c and returns the conjunction of every criterion it sets.
func (c Criteria) Build() (Predicate, error) {
	c = c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var ps []Predicate
	if c.Neighborhood != "" {
		ps = append(ps, ByNeighborhood(c.Neighborhood))
	}
	if c.Ward != "" {
		ps = append(ps, ByWard(c.Ward))
	}
	if c.AssessmentClass != "" {
		ps = append(ps, ByAssessmentClass(c.AssessmentClass))
	}
	switch c.Garage {
	case "yes", "y":
		ps = append(ps, ByGarage(true))
	case "no", "n":
		ps = append(ps, ByGarage(false))
	}
	if c.ValueOp != "" {
		cmp, err := ParseComparator(c.ValueOp)
		if err != nil {
			return nil, err
		}
		ps = append(ps, ByValue(cmp, c.Value))
	}
	if c.RadiusKm > 0 {
		ps = append(ps, Near(c.NearLat, c.NearLng, c.RadiusKm))
	}
	return And(ps...), nil
}

// Describe renders the set criteria compactly, e.g. for report headings.
func (c Criteria) Describe() string {
	c = c.Normalize()
	var parts []string
	if c.Neighborhood != "" {
		parts = append(parts, "neighborhood="+c.Neighborhood)
	}
	if c.Ward != "" {
		parts = append(parts, "ward~"+c.Ward)
	}
	if c.AssessmentClass != "" {
		parts = append(parts, "class="+c.AssessmentClass)
	}
	if c.Garage != "" && c.Garage != "all" {
		parts = append(parts, "garage="+c.Garage)
	}
	if c.ValueOp != "" {
		if cmp, err := ParseComparator(c.ValueOp); err == nil {
			parts = append(parts, fmt.Sprintf("value %s %d", cmp, c.Value))
		}
	}
	if c.RadiusKm > 0 {
		parts = append(parts, fmt.Sprintf("within %gkm of (%g, %g)", c.RadiusKm, c.NearLat, c.NearLng))
	}
	if len(parts) == 0 {
		return "all properties"
	}
	return strings.Join(parts, ", ")
}
