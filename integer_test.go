package tinyprintf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halfbit/tinyprintf/config"
)

func TestIntegerLengthModifiersNarrowDefaultInt(t *testing.T) {
	// With no length modifier, an unsigned conversion narrows to the
	// default (32-bit) int width before rendering.
	assert.Equal(t, "4294967295", sprintf("%u", uint64(0xffffffffffffffff)))
	assert.Equal(t, "255", sprintf("%hhu", uint64(0x1ff)))
	assert.Equal(t, "65535", sprintf("%hu", uint64(0x1ffff)))
	assert.Equal(t, "18446744073709551615", sprintf("%llu", uint64(0xffffffffffffffff)))
}

func TestIntegerBaseConversions(t *testing.T) {
	assert.Equal(t, "377", sprintf("%o", 255))
	assert.Equal(t, "ff", sprintf("%x", 255))
	assert.Equal(t, "FF", sprintf("%X", 255))
	assert.Equal(t, "11111111", sprintf("%b", 255))
}

func TestDisableLongLongFallsBackToThirtyTwoBits(t *testing.T) {
	p := New(config.Config{DisableLongLong: true, MaxFloatPrecision: 9})
	var buf [64]byte
	n := p.Sprintf(buf[:], "%llu", uint64(0xffffffffffffffff))
	assert.Equal(t, "4294967295", string(buf[:n]))
}

func TestDisableFloatEchoesVerbLiterally(t *testing.T) {
	p := New(config.Config{DisableFloat: true, MaxFloatPrecision: 9})
	var buf [64]byte
	n := p.Sprintf(buf[:], "%.2f", 3.5)
	assert.Equal(t, "f", string(buf[:n]))
}

func TestDisableExponentialEmitsEmptyForOutOfRangeFixed(t *testing.T) {
	p := New(config.Config{DisableExponential: true, MaxFloatPrecision: 9})
	var buf [64]byte
	n := p.Sprintf(buf[:], "%f", 1e18)
	assert.Equal(t, "", string(buf[:n]))
}

func TestMaxFloatPrecisionClampsAndZeroFills(t *testing.T) {
	p := New(config.Config{MaxFloatPrecision: 2})
	var buf [64]byte
	n := p.Sprintf(buf[:], "%.5f", 1.256)
	// Real precision stops at 2 digits ("26" after rounding 1.256 -> 1.26),
	// the remaining requested positions are zero-filled.
	assert.Equal(t, "1.26000", string(buf[:n]))
}
