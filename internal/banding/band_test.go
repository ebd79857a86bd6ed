package banding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCascade(t *testing.T) {
	const c = 100000
	tests := []struct {
		value int64
		want  Band
	}{
		{0, Zero},
		{1, Below50},
		{50000, Below50},
		{50001, Below30},
		{70000, Below30},
		{85000, Below15},
		{95000, Below5},
		{98000, Below2},
		{99999, Above2},
		{100000, Center},
		{102000, Above2},
		{105000, Above5},
		{114999, Above15},
		{115000, Above30}, // 1.15*c is 114999.99999999999 in float64
		{130000, Above30},
		{130001, Above30To50},
		{150000, Above30To50},
		{150001, Above50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.value, c), "value %d", tt.value)
	}
}

func TestClassifyEdges(t *testing.T) {
	for _, c := range []int64{0, 1, 500000, -5} {
		assert.Equal(t, Zero, Classify(0, c), "center %d", c)
	}
	for _, c := range []int64{1, 37, 500000, 2_000_000_000} {
		assert.Equal(t, Center, Classify(c, c), "center %d", c)
	}
	assert.Equal(t, Above50, Classify(1_000_000, 500_000))
	assert.Equal(t, Above30To50, Classify(700_000, 500_000))

	// A zero center pushes every positive value to the last band.
	for _, v := range []int64{1, 100, 999999} {
		assert.Equal(t, Above50, Classify(v, 0))
	}
}

func TestBandsOrder(t *testing.T) {
	bands := Bands()
	require.Len(t, bands, 13)
	assert.Equal(t, Zero, bands[0])
	assert.Equal(t, Center, bands[6])
	assert.Equal(t, Above50, bands[12])
	for _, b := range bands {
		assert.NotEmpty(t, b.Color())
		assert.NotContains(t, b.String(), "Band(")
	}
	assert.Equal(t, "Band(99)", Band(99).String())
	assert.Equal(t, "", Band(-1).Color())
}

func TestParseAndText(t *testing.T) {
	for _, b := range Bands() {
		got, err := Parse(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	got, err := Parse(" CENTER ")
	require.NoError(t, err)
	assert.Equal(t, Center, got)
	_, err = Parse("+40%")
	assert.Error(t, err)

	b, err := json.Marshal(map[string]Band{"band": Above2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"band":"+2%"}`, string(b))

	var decoded struct{ Band Band }
	require.NoError(t, json.Unmarshal([]byte(`{"Band":"-15%"}`), &decoded))
	assert.Equal(t, Below15, decoded.Band)
}

func TestThresholds(t *testing.T) {
	th := Thresholds(200000)
	require.Len(t, th, 13)
	assert.Nil(t, th[0].Upper)
	assert.Nil(t, th[12].Upper)
	require.NotNil(t, th[1].Upper)
	assert.InDelta(t, 100000, *th[1].Upper, 0.001)
	assert.InDelta(t, 200000, *th[6].Upper, 0.001)
	assert.InDelta(t, 300000, *th[11].Upper, 0.001)

	// Every bounded upper limit classifies into its own band.
	for _, x := range th[1:12] {
		assert.Equal(t, x.Band, Classify(int64(*x.Upper), 200000), "band %s", x.Band)
	}
}
