package tinyprintf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpBasic(t *testing.T) {
	assert.Equal(t, "1.500000e+00", sprintf("%e", 1.5))
	assert.Equal(t, "1.500000E+00", sprintf("%E", 1.5))
	assert.Equal(t, "-1.500000e+00", sprintf("%e", -1.5))
	assert.Equal(t, "1.234500e+03", sprintf("%e", 1234.5))
	assert.Equal(t, "1.234500e-03", sprintf("%e", 0.0012345))
}

func TestExpMantissaCarry(t *testing.T) {
	// 9.9996 at precision 3 rounds the mantissa up through 10.000, which
	// must renormalize to 1.000 and bump the exponent.
	assert.Equal(t, "1.000e+01", sprintf("%.3e", 9.9996))
}

func TestExpZero(t *testing.T) {
	assert.Equal(t, "0.000000e+00", sprintf("%e", 0.0))
}

func TestAdaptChoosesFixedWithinRange(t *testing.T) {
	assert.Equal(t, "123.456", sprintf("%g", 123.456))
	assert.Equal(t, "100000", sprintf("%g", 100000.0))
}

func TestAdaptChoosesExponentialOutsideRange(t *testing.T) {
	assert.Equal(t, "1e+06", sprintf("%g", 1000000.0))
	assert.Equal(t, "1e-05", sprintf("%g", 0.00001))
}

func TestAdaptHashPreservesTrailingZeros(t *testing.T) {
	assert.Equal(t, "1.50000", sprintf("%#g", 1.5))
	assert.Equal(t, "1.50", sprintf("%#.3g", 1.5))
}

func TestAdaptStripsTrailingZerosByDefault(t *testing.T) {
	assert.Equal(t, "1.5", sprintf("%g", 1.5))
	assert.Equal(t, "2", sprintf("%g", 2.0))
}
