// Package dataset holds an ordered, read-only collection of assessment records
// and answers lookup, filtering and statistics queries over it.
package dataset

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/KaramelBytes/propmap-cli/internal/banding"
	"github.com/KaramelBytes/propmap-cli/internal/property"
	"github.com/KaramelBytes/propmap-cli/internal/stats"
)

var (
	// ErrEmptyDataset is returned by statistics when no record has an assessed
	// value. Records without a valuation are skipped, so a dataset with a
	// non-zero Count can still be empty for statistics.
	ErrEmptyDataset = fmt.Errorf("empty dataset: %w", stats.ErrNoValues)
	// ErrNotFound is returned when no record carries the requested account id.
	ErrNotFound = errors.New("account not found")
	// ErrInvalidKey is returned when an account id is not an integer.
	ErrInvalidKey = errors.New("invalid account id")
	// ErrUnknownField is returned by Distinct for an unsupported field name.
	ErrUnknownField = errors.New("unknown field (want neighborhood, ward or class)")
)

// Dataset is an ordered sequence of records plus the source it was loaded
// from. Datasets produced by Filter have no source and share record pointers
// with their parent.
type Dataset struct {
	source  string
	records []*property.Record
}

// New wraps records in file order. The slice is copied; records are not.
func New(records []*property.Record, source string) *Dataset {
	return &Dataset{source: source, records: slices.Clone(records)}
}

// Source returns the originating source identifier, or "" for derived datasets.
func (d *Dataset) Source() string { return d.source }

// Count returns the number of records.
func (d *Dataset) Count() int { return len(d.records) }

// Records returns the records in order. The returned slice may be modified by
// the caller; the records it points to may not.
func (d *Dataset) Records() []*property.Record { return slices.Clone(d.records) }

// Values returns the known assessed values in record order.
func (d *Dataset) Values() []int64 {
	vals := make([]int64, 0, len(d.records))
	for _, r := range d.records {
		if v, ok := r.Value(); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// MinValue returns the smallest assessed value.
func (d *Dataset) MinValue() (int64, error) { return d.stat(stats.Min) }

// MaxValue returns the largest assessed value.
func (d *Dataset) MaxValue() (int64, error) { return d.stat(stats.Max) }

// Range returns MaxValue - MinValue.
func (d *Dataset) Range() (int64, error) { return d.stat(stats.Range) }

// MeanValue returns the truncated integer mean of assessed values.
func (d *Dataset) MeanValue() (int64, error) { return d.stat(stats.Mean) }

// Median returns the median assessed value without reordering the dataset.
func (d *Dataset) Median() (int64, error) { return d.stat(stats.Median) }

// Summary returns every statistic at once.
func (d *Dataset) Summary() (stats.Summary, error) {
	s, err := stats.Summarize(d.Values())
	if err != nil {
		return stats.Summary{}, ErrEmptyDataset
	}
	return s, nil
}

func (d *Dataset) stat(fn func([]int64) (int64, error)) (int64, error) {
	v, err := fn(d.Values())
	if err != nil {
		return 0, ErrEmptyDataset
	}
	return v, nil
}

// FindByAccountID returns the first record whose account id equals key. The
// key must be a bare integer; padding makes it invalid.
func (d *Dataset) FindByAccountID(key string) (*property.Record, error) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, r := range d.records {
		if got, ok := r.Account(); ok && got == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Filter returns a derived dataset with the records keep accepts, in their
// original order. An empty result is a valid dataset.
func (d *Dataset) Filter(keep func(*property.Record) bool) *Dataset {
	out := make([]*property.Record, 0)
	for _, r := range d.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &Dataset{records: out}
}

// Neighborhoods returns the distinct non-empty neighbourhood names, sorted.
func (d *Dataset) Neighborhoods() []string {
	return d.distinct(func(r *property.Record) []string { return []string{r.Neighborhood.Name} })
}

// Wards returns the distinct non-empty ward names, sorted.
func (d *Dataset) Wards() []string {
	return d.distinct(func(r *property.Record) []string { return []string{r.Neighborhood.Ward} })
}

// AssessmentClasses returns the distinct class names across all slots, sorted.
func (d *Dataset) AssessmentClasses() []string {
	return d.distinct(func(r *property.Record) []string { return r.AssessmentClass.Names() })
}

// Distinct returns the distinct values of a named field: neighborhood, ward
// or class. British spellings and plurals are accepted.
func (d *Dataset) Distinct(field string) ([]string, error) {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "neighborhood", "neighbourhood", "neighborhoods", "neighbourhoods":
		return d.Neighborhoods(), nil
	case "ward", "wards":
		return d.Wards(), nil
	case "class", "classes", "assessment_class":
		return d.AssessmentClasses(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func (d *Dataset) distinct(fields func(*property.Record) []string) []string {
	seen := make(map[string]struct{})
	for _, r := range d.records {
		for _, v := range fields(r) {
			if v != "" {
				seen[v] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// BandCounts tallies records with a known value per band around center.
func (d *Dataset) BandCounts(center int64) map[banding.Band]int {
	counts := make(map[banding.Band]int)
	for _, r := range d.records {
		if v, ok := r.Value(); ok {
			counts[banding.Classify(v, center)]++
		}
	}
	return counts
}
