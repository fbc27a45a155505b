package tinyprintf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halfbit/tinyprintf/cursor"
)

func TestParseSpecFlagsWidthPrecision(t *testing.T) {
	cur := cursor.New()
	sp, next := parseSpec("%-+08.3d", 0, cur)
	assert.Equal(t, 8, next)
	assert.True(t, sp.has(LeftJustify))
	assert.True(t, sp.has(Plus))
	assert.True(t, sp.has(ZeroPad))
	assert.Equal(t, 8, sp.Width)
	assert.True(t, sp.has(PrecisionGiven))
	assert.Equal(t, 3, sp.Precision)
	assert.Equal(t, KindIntSigned, sp.Kind)
	assert.Equal(t, uint64(10), sp.Base)
}

func TestParseSpecStarWidthAndPrecisionConsumeArgs(t *testing.T) {
	cur := cursor.New(-5, 3)
	sp, _ := parseSpec("%*.*d", 0, cur)
	assert.True(t, sp.has(LeftJustify)) // negative width implies left justify
	assert.Equal(t, 5, sp.Width)
	assert.Equal(t, 3, sp.Precision)
	assert.Equal(t, 0, cur.Len())
}

func TestParseSpecNegativeStarPrecisionIsIgnored(t *testing.T) {
	cur := cursor.New(-1)
	sp, _ := parseSpec("%.*d", 0, cur)
	assert.False(t, sp.has(PrecisionGiven))
}

func TestParseSpecLengthModifiers(t *testing.T) {
	cur := cursor.New()

	sp, _ := parseSpec("%hhd", 0, cur)
	assert.True(t, sp.has(Char))

	sp, _ = parseSpec("%hd", 0, cur)
	assert.True(t, sp.has(Short))

	sp, _ = parseSpec("%lld", 0, cur)
	assert.True(t, sp.has(LongLong))

	sp, _ = parseSpec("%ld", 0, cur)
	assert.True(t, sp.has(Long))
	assert.False(t, sp.has(LongLong))

	sp, _ = parseSpec("%zd", 0, cur)
	assert.True(t, sp.has(SizeT))

	sp, _ = parseSpec("%td", 0, cur)
	assert.True(t, sp.has(Ptrdiff))
}

func TestParseSpecVerbs(t *testing.T) {
	cur := cursor.New()
	tests := []struct {
		verb string
		kind Kind
		base uint64
	}{
		{"%d", KindIntSigned, 10},
		{"%i", KindIntSigned, 10},
		{"%u", KindIntUnsigned, 10},
		{"%o", KindIntUnsigned, 8},
		{"%x", KindIntUnsigned, 16},
		{"%X", KindIntUnsigned, 16},
		{"%b", KindIntUnsigned, 2},
		{"%c", KindChar, 0},
		{"%s", KindString, 0},
		{"%p", KindPointer, 16},
		{"%f", KindFloatFixed, 0},
		{"%e", KindFloatExp, 0},
		{"%g", KindFloatAdapt, 0},
		{"%%", KindPercent, 0},
		{"%n", KindUnknown, 0},
		{"%q", KindUnknown, 0},
	}
	for _, tc := range tests {
		sp, _ := parseSpec(tc.verb, 0, cur)
		assert.Equal(t, tc.kind, sp.Kind, tc.verb)
		if tc.base != 0 {
			assert.Equal(t, tc.base, sp.Base, tc.verb)
		}
	}
}
