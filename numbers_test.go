package toml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOneNumber(t *testing.T, src string) *Value {
	t.Helper()
	s := NewScanner([]byte(src), "")
	tok := scanNumberToken(s)
	v, err := parseNumberValue(tok, 1, 1, "")
	require.NoError(t, err)
	return v
}

func TestIntegerBases(t *testing.T) {
	cases := map[string]int64{
		"99":          99,
		"-17":         -17,
		"1_000":       1000,
		"0xDEAD_BEEF": 0xDEADBEEF,
		"0o755":       0755,
		"0b1101":      0b1101,
	}
	for src, want := range cases {
		v := parseOneNumber(t, src)
		assert.Equal(t, KindInteger, v.Kind, src)
		assert.Equal(t, want, v.Integer, src)
	}
}

func TestFloats(t *testing.T) {
	v := parseOneNumber(t, "3.14")
	assert.Equal(t, KindFloat, v.Kind)
	assert.InDelta(t, 3.14, v.Float, 1e-9)

	v = parseOneNumber(t, "6.02_214e23")
	assert.Equal(t, KindFloat, v.Kind)
	assert.True(t, v.Scientific)

	v = parseOneNumber(t, "+inf")
	assert.True(t, math.IsInf(v.Float, 1))
}

func TestSignedSpecialFloats(t *testing.T) {
	v := parseOneNumber(t, "inf")
	assert.True(t, math.IsInf(v.Float, 1))

	v = parseOneNumber(t, "-inf")
	assert.True(t, math.IsInf(v.Float, -1))

	v = parseOneNumber(t, "nan")
	assert.True(t, math.IsNaN(v.Float))

	v = parseOneNumber(t, "+nan")
	assert.True(t, math.IsNaN(v.Float))

	v = parseOneNumber(t, "-nan")
	assert.True(t, math.IsNaN(v.Float))
}

func TestLeadingZeroRejected(t *testing.T) {
	s := NewScanner([]byte("0123"), "")
	tok := scanNumberToken(s)
	_, err := parseNumberValue(tok, 1, 1, "")
	require.Error(t, err)
}

func TestMisplacedUnderscoreRejected(t *testing.T) {
	s := NewScanner([]byte("1__0"), "")
	tok := scanNumberToken(s)
	_, err := parseNumberValue(tok, 1, 1, "")
	require.Error(t, err)
}
