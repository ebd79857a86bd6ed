package property

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressString(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want string
	}{
		{"house and street", NewAddress(nil, Int(10310), "102 AVENUE NW"), "10310 102 AVENUE NW"},
		{"street only", NewAddress(nil, nil, "JASPER AVE"), "JASPER AVE"},
		{"house only", NewAddress(Int(4), Int(12), ""), "12"},
		{"nothing", NewAddress(Int(4), nil, ""), "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestAddressEqual(t *testing.T) {
	a := NewAddress(Int(1), Int(2), "Main St")
	assert.True(t, a.Equal(NewAddress(Int(1), Int(2), "Main St")))
	assert.False(t, a.Equal(NewAddress(nil, Int(2), "Main St")))
	assert.False(t, a.Equal(NewAddress(Int(1), Int(2), "Main Street")))
	assert.True(t, NewAddress(nil, nil, "").Equal(Address{}))
}

func TestLocationValidity(t *testing.T) {
	assert.True(t, NewLocation(Float(53.5), Float(-80.2), "").Valid())
	// Longitudes west of -90 fail the roll's rule.
	assert.False(t, NewLocation(Float(53.5), Float(-113.4), "").Valid())
	// The wide upper bound is intentional.
	assert.True(t, ValidCoordinate(Float(150)))
	assert.False(t, ValidCoordinate(Float(181)))
	assert.False(t, ValidCoordinate(Float(-90.5)))
	assert.False(t, ValidCoordinate(Float(-1)))
	assert.False(t, ValidCoordinate(nil))
	assert.False(t, NewLocation(nil, Float(-113.4), "").Valid())
}

func TestLocationCoordinates(t *testing.T) {
	lat, lng, ok := NewLocation(Float(53.5461), Float(-113.4938), "").Coordinates()
	assert.True(t, ok)
	assert.Equal(t, 53.5461, lat)
	assert.Equal(t, -113.4938, lng)

	// Rejected by the display rule but geographically sound.
	assert.False(t, NewLocation(Float(53.5461), Float(-113.4938), "").Valid())

	for _, l := range []Location{
		NewLocation(Float(150), Float(10), ""),
		NewLocation(Float(53.5), Float(-1), ""),
		NewLocation(nil, Float(10), ""),
		NewLocation(Float(10), Float(-181), ""),
	} {
		_, _, ok := l.Coordinates()
		assert.False(t, ok, l)
	}
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "(53.5, -80.2)", NewLocation(Float(53.5), Float(-80.2), "POINT").String())
	// Only the parts that pass ValidCoordinate are written.
	assert.Equal(t, "(53.5, ", NewLocation(Float(53.5), Float(-113.4), "POINT").String())
	assert.Equal(t, "150)", NewLocation(nil, Float(150), "").String())
	assert.Equal(t, "", NewLocation(nil, Float(-1), "").String())
}

func TestNeighborhood(t *testing.T) {
	n := NewNeighborhood(Int(1090), "DOWNTOWN", "O-day'min Ward")
	assert.Equal(t, "DOWNTOWN (O-day'min Ward)", n.String())
	assert.Equal(t, "DOWNTOWN", NewNeighborhood(nil, "DOWNTOWN", "").String())
	assert.True(t, n.Equal(NewNeighborhood(Int(1090), "DOWNTOWN", "O-day'min Ward")))
	assert.False(t, n.Equal(NewNeighborhood(Int(1091), "DOWNTOWN", "O-day'min Ward")))
}

func TestAssessmentClass(t *testing.T) {
	ac := NewAssessmentClass(
		[MaxClassShares]*int{Int(70), Int(30), nil},
		[MaxClassShares]string{"RESIDENTIAL", "COMMERCIAL", "FARMLAND"},
	)
	assert.Equal(t, "[RESIDENTIAL 70%, COMMERCIAL 30%]", ac.String())
	assert.Len(t, ac.Present(), 2)
	assert.Equal(t, []string{"RESIDENTIAL", "COMMERCIAL", "FARMLAND"}, ac.Names())
	assert.True(t, ac.Has("FARMLAND"))
	assert.False(t, ac.Has("OTHER"))
	assert.False(t, ac.Has(""))

	empty := NewAssessmentClass([MaxClassShares]*int{Int(100), nil, nil}, [MaxClassShares]string{})
	assert.Equal(t, "[]", empty.String())
	assert.False(t, ac.Equal(empty))
	assert.True(t, ac.Equal(ac))
}

func TestRecordAccessors(t *testing.T) {
	r := &Record{AccountID: Int(7), AssessedValue: Int64(250000), Garage: "y"}
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, int64(250000), v)
	id, ok := r.Account()
	assert.True(t, ok)
	assert.Equal(t, 7, id)
	assert.True(t, r.HasGarage())

	var blank Record
	_, ok = blank.Value()
	assert.False(t, ok)
	assert.False(t, blank.HasGarage())
}

func TestCompare(t *testing.T) {
	recs := []*Record{
		{AssessedValue: Int64(300)},
		{},
		{AssessedValue: Int64(100)},
		{AssessedValue: Int64(200)},
	}
	slices.SortStableFunc(recs, Compare)
	assert.Nil(t, recs[0].AssessedValue)
	assert.Equal(t, int64(100), *recs[1].AssessedValue)
	assert.Equal(t, int64(300), *recs[3].AssessedValue)
}
