package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/propmap-cli/internal/banding"
	"github.com/KaramelBytes/propmap-cli/internal/dataset"
	"github.com/KaramelBytes/propmap-cli/internal/property"
)

func sampleRecord() *property.Record {
	return &property.Record{
		AccountID:     property.Int(1066158),
		Address:       property.NewAddress(nil, property.Int(10310), "102 AVENUE NW"),
		Garage:        "Y",
		Neighborhood:  property.NewNeighborhood(property.Int(1090), "DOWNTOWN", "O-day'min Ward"),
		AssessedValue: property.Int64(1234567),
		Location:      property.NewLocation(property.Float(53.5461), property.Float(-1), "POINT (-113.49 53.54)"),
		AssessmentClass: property.NewAssessmentClass(
			[3]*int{property.Int(80), property.Int(20), nil},
			[3]string{"COMMERCIAL", "RESIDENTIAL", "FARMLAND"},
		),
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatMarkdown, "MD": FormatMarkdown, "json": FormatJSON, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0", Money(0))
	assert.Equal(t, "$999", Money(999))
	assert.Equal(t, "$1,234,567", Money(1234567))
	assert.Equal(t, "-$5,000", Money(-5000))
}

func TestSummaryMarkdown(t *testing.T) {
	d := dataset.New([]*property.Record{
		{AssessedValue: property.Int64(100000)},
		{AssessedValue: property.Int64(300000)},
		{},
	}, "props.csv")
	s := NewSummary(d, d.Source(), "")
	require.NotNil(t, s.Stats)
	assert.NotEmpty(t, s.ID)

	md := s.Markdown()
	assert.Contains(t, md, "[ASSESSMENT SUMMARY]")
	assert.Contains(t, md, "Source: props.csv")
	assert.Contains(t, md, "Records: 3")
	assert.Contains(t, md, "- Median: $200,000")
	assert.Contains(t, md, "1 record(s) without an assessed value")
}

func TestSummaryWithoutValues(t *testing.T) {
	s := NewSummary(dataset.New(nil, ""), "", "ward contains X")
	assert.Nil(t, s.Stats)
	md := s.Markdown()
	assert.NotContains(t, md, "[STATISTICS]")
	assert.Contains(t, md, "statistics unavailable")
	assert.Contains(t, md, "Criteria: ward contains X")
}

func TestPropertyView(t *testing.T) {
	v := NewPropertyView(sampleRecord())
	assert.Equal(t, "10310 102 AVENUE NW", v.Address)
	// Longitude carries the -1 marker, so neither part is kept.
	assert.Nil(t, v.Latitude)
	assert.Nil(t, v.Longitude)
	assert.Equal(t, []ClassView{{"COMMERCIAL", 80}, {"RESIDENTIAL", 20}}, v.Classes)

	banded := v.WithBand(1000000)
	require.NotNil(t, banded.Band)
	assert.Equal(t, banding.Above30, *banded.Band)
	assert.Nil(t, v.Band)

	md := (&Detail{Property: banded}).Markdown()
	assert.Contains(t, md, "Account: 1066158")
	assert.Contains(t, md, "Assessed Value: $1,234,567")
	assert.Contains(t, md, "Band: +30% (#c70039)")
	assert.Contains(t, md, "- COMMERCIAL: 80%")
	assert.Contains(t, md, "[LOCATION]\nN/A\n")

	r := sampleRecord()
	r.Location = property.NewLocation(property.Float(53.5461), property.Float(-113.4938), "")
	md = (&Detail{Property: NewPropertyView(r)}).Markdown()
	assert.Contains(t, md, "Latitude: 53.5461\nLongitude: -113.4938\n")
}

func TestListingLimit(t *testing.T) {
	recs := []*property.Record{sampleRecord(), {Address: property.NewAddress(nil, nil, "A|B")}, sampleRecord()}
	l := NewListing(recs, "props.csv", "all properties", 2)
	assert.Equal(t, 3, l.Total)
	require.Len(t, l.Properties, 2)

	md := l.Markdown()
	assert.Contains(t, md, "Matches: 3 (showing 2)")
	assert.Contains(t, md, "| 1066158 | 10310 102 AVENUE NW | DOWNTOWN |")
	assert.Contains(t, md, "| N/A | A/B | N/A | N/A | N/A | N/A | N/A |")

	empty := NewListing(nil, "", "", 0)
	assert.Contains(t, empty.Markdown(), "Matches: 0")
	assert.NotContains(t, empty.Markdown(), "| Account |")
}

func TestBands(t *testing.T) {
	b := NewBands(100000, map[banding.Band]int{banding.Center: 2}).Classify(0, 100000, 250000)
	require.Len(t, b.Rows, len(banding.Bands()))
	md := b.Markdown()
	assert.Contains(t, md, "Center: $100,000")
	assert.Contains(t, md, "| -50% | $50,000 | #4b2ca3 | 0 |")
	assert.Contains(t, md, "| center | $100,000 | #ffff66 | 2 |")
	assert.Contains(t, md, "| +50% | - | #800026 | 0 |")
	assert.Contains(t, md, "- $250,000: +50% (#800026)")

	plain := NewBands(100000, nil).Markdown()
	assert.NotContains(t, plain, "Count")
}

func TestRenderFormats(t *testing.T) {
	doc := &Distinct{Field: "ward", Values: []string{"Métis Ward", "O-day'min Ward"}}

	var md bytes.Buffer
	require.NoError(t, Render(&md, doc, FormatMarkdown))
	assert.True(t, strings.HasPrefix(md.String(), "[DISTINCT WARD]\n- Métis Ward\n"))

	var js bytes.Buffer
	require.NoError(t, Render(&js, doc, FormatJSON))
	var back Distinct
	require.NoError(t, json.Unmarshal(js.Bytes(), &back))
	assert.Equal(t, *doc, back)

	var ym bytes.Buffer
	require.NoError(t, Render(&ym, NewBands(100, nil), FormatYAML))
	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &parsed))
	assert.Equal(t, 100, parsed["center"])
	assert.Contains(t, ym.String(), "band: center")

	assert.Error(t, Render(&md, doc, Format("xml")))
}
