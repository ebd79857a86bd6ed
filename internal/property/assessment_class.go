package property

import (
	"strconv"
	"strings"
)

// MaxClassShares is the number of class slots carried by each record.
const MaxClassShares = 3

// ClassShare is one (class, percentage) slot of an assessment.
type ClassShare struct {
	Name    string
	Percent *int
}

// Present reports whether the slot carries both a class name and a percentage.
func (s ClassShare) Present() bool {
	return s.Name != "" && s.Percent != nil
}

func (s ClassShare) String() string {
	if !s.Present() {
		return ""
	}
	return s.Name + " " + strconv.Itoa(*s.Percent) + "%"
}

// AssessmentClass splits a property's assessment across up to three classes,
// e.g. 70% RESIDENTIAL and 30% COMMERCIAL.
type AssessmentClass struct {
	Shares [MaxClassShares]ClassShare
}

// NewAssessmentClass pairs percentages and class names slot by slot.
func NewAssessmentClass(percents [MaxClassShares]*int, names [MaxClassShares]string) AssessmentClass {
	var a AssessmentClass
	for i := range a.Shares {
		a.Shares[i] = ClassShare{Name: names[i], Percent: percents[i]}
	}
	return a
}

// Present returns the slots that carry both a name and a percentage, in slot order.
func (a AssessmentClass) Present() []ClassShare {
	out := make([]ClassShare, 0, MaxClassShares)
	for _, s := range a.Shares {
		if s.Present() {
			out = append(out, s)
		}
	}
	return out
}

// Names returns the non-empty class names in slot order.
func (a AssessmentClass) Names() []string {
	out := make([]string, 0, MaxClassShares)
	for _, s := range a.Shares {
		if s.Name != "" {
			out = append(out, s.Name)
		}
	}
	return out
}

// Has reports whether any slot is named class.
func (a AssessmentClass) Has(class string) bool {
	if class == "" {
		return false
	}
	for _, s := range a.Shares {
		if s.Name == class {
			return true
		}
	}
	return false
}

// Equal compares every slot, including absent ones.
func (a AssessmentClass) Equal(o AssessmentClass) bool {
	for i := range a.Shares {
		if a.Shares[i].Name != o.Shares[i].Name || !equalInt(a.Shares[i].Percent, o.Shares[i].Percent) {
			return false
		}
	}
	return true
}

// String renders the present slots as "[NAME P%, NAME P%]".
func (a AssessmentClass) String() string {
	parts := make([]string, 0, MaxClassShares)
	for _, s := range a.Present() {
		parts = append(parts, s.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
