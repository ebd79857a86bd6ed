package report

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KaramelBytes/propmap-cli/internal/dataset"
	"github.com/KaramelBytes/propmap-cli/internal/stats"
)

// Summary describes the assessed values of one dataset.
type Summary struct {
	ID       string         `json:"id" yaml:"id"`
	Source   string         `json:"source,omitempty" yaml:"source,omitempty"`
	Criteria string         `json:"criteria,omitempty" yaml:"criteria,omitempty"`
	Records  int            `json:"records" yaml:"records"`
	Stats    *stats.Summary `json:"stats,omitempty" yaml:"stats,omitempty"`
	Warnings []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewSummary computes statistics for d. A dataset with no assessed values
// yields a summary without stats and a warning rather than an error.
func NewSummary(d *dataset.Dataset, source, criteria string) *Summary {
	s := &Summary{ID: uuid.NewString(), Source: source, Criteria: criteria, Records: d.Count()}
	sum, err := d.Summary()
	if err != nil {
		s.Warnings = append(s.Warnings, "no assessed values; statistics unavailable")
		return s
	}
	s.Stats = &sum
	if missing := d.Count() - sum.Count; missing > 0 {
		s.Warnings = append(s.Warnings, fmt.Sprintf("%d record(s) without an assessed value excluded from statistics", missing))
	}
	return s
}

func (s *Summary) Markdown() string {
	var b strings.Builder
	b.WriteString("[ASSESSMENT SUMMARY]\n")
	if s.Source != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", s.Source))
	}
	if s.Criteria != "" {
		b.WriteString(fmt.Sprintf("Criteria: %s\n", s.Criteria))
	}
	b.WriteString(fmt.Sprintf("Records: %d\n", s.Records))
	if s.Stats != nil {
		b.WriteString("\n[STATISTICS]\n")
		b.WriteString(fmt.Sprintf("- Valued: %d\n", s.Stats.Count))
		b.WriteString(fmt.Sprintf("- Min: %s\n", Money(s.Stats.Min)))
		b.WriteString(fmt.Sprintf("- Max: %s\n", Money(s.Stats.Max)))
		b.WriteString(fmt.Sprintf("- Range: %s\n", Money(s.Stats.Range)))
		b.WriteString(fmt.Sprintf("- Mean: %s\n", Money(s.Stats.Mean)))
		b.WriteString(fmt.Sprintf("- Median: %s\n", Money(s.Stats.Median)))
	}
	if len(s.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range s.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

var printer = message.NewPrinter(language.English)

// Money formats a whole-dollar amount with thousands separators.
func Money(v int64) string {
	if v < 0 {
		return printer.Sprintf("-$%d", -v)
	}
	return printer.Sprintf("$%d", v)
}

// SummarySet groups the summaries of several sources.
type SummarySet struct {
	Summaries []*Summary `json:"summaries" yaml:"summaries"`
}

func (s *SummarySet) Markdown() string {
	parts := make([]string, 0, len(s.Summaries))
	for _, sum := range s.Summaries {
		parts = append(parts, sum.Markdown())
	}
	return strings.Join(parts, "\n")
}
