package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/propmap-cli/internal/property"
)

func rec(id int, hood, ward, garage string, value *int64, classes ...string) *property.Record {
	var names [property.MaxClassShares]string
	var pcts [property.MaxClassShares]*int
	for i, c := range classes {
		names[i] = c
		pcts[i] = property.Int(100 / len(classes))
	}
	return &property.Record{
		AccountID:       property.Int(id),
		Garage:          garage,
		Neighborhood:    property.NewNeighborhood(property.Int(1), hood, ward),
		AssessedValue:   value,
		AssessmentClass: property.NewAssessmentClass(pcts, names),
	}
}

func keep(p Predicate, recs []*property.Record) []int {
	var ids []int
	for _, r := range recs {
		if p(r) {
			id, _ := r.Account()
			ids = append(ids, id)
		}
	}
	return ids
}

var sample = []*property.Record{
	rec(1, "DOWNTOWN", "O-day'min Ward", "Y", property.Int64(450000), "RESIDENTIAL"),
	rec(2, "DOWNTOWN", "O-day'min Ward", "N", property.Int64(1200000), "COMMERCIAL"),
	rec(3, "OLIVER", "O-day'min Ward", "y", property.Int64(300000), "RESIDENTIAL", "COMMERCIAL"),
	rec(4, "STRATHCONA", "papastew Ward", "N", nil, "FARMLAND"),
	rec(5, "STRATHCONA", "papastew Ward", "", property.Int64(0), "RESIDENTIAL"),
}

func TestBasicPredicates(t *testing.T) {
	assert.Equal(t, []int{1, 2}, keep(ByNeighborhood("DOWNTOWN"), sample))
	assert.Empty(t, keep(ByNeighborhood("downtown"), sample))
	assert.Equal(t, []int{4, 5}, keep(ByWard("papa"), sample))
	assert.Equal(t, []int{2, 3}, keep(ByAssessmentClass("COMMERCIAL"), sample))
	assert.Equal(t, []int{1, 3}, keep(ByGarage(true), sample))
	assert.Equal(t, []int{2, 4}, keep(ByGarage(false), sample))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, keep(All(), sample))
}

func TestByValue(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, keep(ByValue(Less, 500000), sample))
	assert.Equal(t, []int{3}, keep(ByValue(Equal, 300000), sample))
	assert.Equal(t, []int{1, 2, 3}, keep(ByValue(Greater, 0), sample))
	assert.Empty(t, keep(ByValue(Comparator(0), 0), sample))
}

func TestCombinators(t *testing.T) {
	both := And(ByNeighborhood("DOWNTOWN"), ByValue(Greater, 0))
	assert.Equal(t, []int{1, 2}, keep(both, sample))

	either := Or(ByNeighborhood("OLIVER"), ByAssessmentClass("FARMLAND"))
	assert.Equal(t, []int{3, 4}, keep(either, sample))
	assert.Equal(t, []int{1, 2, 5}, keep(Not(either), sample))

	assert.Len(t, keep(And(), sample), len(sample))
	assert.Empty(t, keep(Or(), sample))
}

func TestComposeOrderIndependent(t *testing.T) {
	a, b := ByNeighborhood("DOWNTOWN"), ByValue(Greater, 500000)
	var stepwise []*property.Record
	for _, r := range sample {
		if a(r) {
			stepwise = append(stepwise, r)
		}
	}
	assert.Equal(t, keep(And(a, b), sample), keep(b, stepwise))
	assert.Equal(t, keep(And(a, b), sample), keep(And(b, a), sample))
}

func TestParseComparator(t *testing.T) {
	for in, want := range map[string]Comparator{
		"less": Less, "Under": Less, " lt ": Less,
		"equal": Equal, "EQ": Equal,
		"greater": Greater, "above": Greater, "over": Greater,
	} {
		got, err := ParseComparator(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseComparator("between")
	assert.Error(t, err)
	assert.Equal(t, "greater", Greater.String())
}

func TestNear(t *testing.T) {
	at := func(lat, lng float64) *property.Record {
		return &property.Record{Location: property.NewLocation(property.Float(lat), property.Float(lng), "")}
	}
	downtown := at(53.5461, -113.4938)
	north := at(53.5561, -113.4938) // about 1.1km away
	nowhere := &property.Record{}

	p := Near(53.5461, -113.4938, 2)
	assert.True(t, p(downtown))
	assert.True(t, p(north))
	assert.False(t, p(nowhere))
	assert.False(t, Near(53.5461, -113.4938, 1)(north))
}

func TestCriteriaBuild(t *testing.T) {
	p, err := Criteria{Neighborhood: " DOWNTOWN ", Garage: "Yes"}.Build()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, keep(p, sample))

	p, err = Criteria{Ward: "O-day", ValueOp: "under", Value: 400000}.Build()
	require.NoError(t, err)
	assert.Equal(t, []int{3}, keep(p, sample))

	p, err = Criteria{Garage: "all"}.Build()
	require.NoError(t, err)
	assert.Len(t, keep(p, sample), len(sample))

	p, err = Criteria{}.Build()
	require.NoError(t, err)
	assert.Len(t, keep(p, sample), len(sample))
}

func TestCriteriaValidation(t *testing.T) {
	tests := []Criteria{
		{Garage: "maybe"},
		{ValueOp: "between"},
		{NearLat: 91, RadiusKm: 1},
		{NearLng: -181, RadiusKm: 1},
		{RadiusKm: -2},
	}
	for _, c := range tests {
		_, err := c.Build()
		assert.Error(t, err, "%+v", c)
	}
}

func TestCriteriaDescribe(t *testing.T) {
	assert.Equal(t, "all properties", Criteria{Garage: "all"}.Describe())
	assert.True(t, Criteria{}.IsZero())
	c := Criteria{Neighborhood: "OLIVER", ValueOp: "above", Value: 100}
	assert.False(t, c.IsZero())
	assert.Equal(t, "neighborhood=OLIVER, value greater 100", c.Describe())
}
