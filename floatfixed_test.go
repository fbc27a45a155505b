package tinyprintf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedCarry(t *testing.T) {
	// 4.5 rounds to "4" (half to even) without carry.
	assert.Equal(t, "4", sprintf("%.0f", 4.5))
	// 1.55 lies above the halfway point and rounds up to 2; at precision 0
	// the round-up carries into the integer part.
	assert.Equal(t, "2", sprintf("%.0f", 1.55))
	// 9.5 at precision 0 must round to "10": the fractional round-up
	// carries all the way into the integer part.
	assert.Equal(t, "10", sprintf("%.0f", 9.5))
	// 99.996 at precision 2 carries the hundredths into the integer part.
	assert.Equal(t, "100.00", sprintf("%.2f", 99.996))
}

func TestFixedSignAndFlags(t *testing.T) {
	assert.Equal(t, "-3.500000", sprintf("%f", -3.5))
	assert.Equal(t, "+3.500000", sprintf("%+f", 3.5))
	assert.Equal(t, " 3.500000", sprintf("% f", 3.5))
	assert.Equal(t, "3", sprintf("%.0f", 3.0))
	assert.Equal(t, "3.", sprintf("%#.0f", 3.0))
}

func TestFixedSpecialValues(t *testing.T) {
	assert.Equal(t, "nan", sprintf("%f", math.NaN()))
	assert.Equal(t, "INF", sprintf("%F", math.Inf(1)))
	assert.Equal(t, "-inf", sprintf("%f", math.Inf(-1)))
	assert.Equal(t, "+inf", sprintf("%+f", math.Inf(1)))
}

func TestFixedWidthAndZeroPad(t *testing.T) {
	assert.Equal(t, "0003.500000", sprintf("%011.6f", 3.5))
	assert.Equal(t, "   3.500000", sprintf("%11.6f", 3.5))
	assert.Equal(t, "3.500000   ", sprintf("%-11.6f", 3.5))
}
