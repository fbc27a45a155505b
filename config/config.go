// Package config holds the compile-time toggles the C reference
// implementation selects with preprocessor defines. Since Go has no
// preprocessor, they are ordinary struct fields threaded through the
// engine at call time, with an optional environment-variable overlay for
// embeddings that want to flip them without a rebuild.
package config

import (
	"fmt"
	"math"

	"github.com/xyproto/env/v2"
)

// Config holds the toggles documented in SPEC_FULL.md §4.9/§6.
type Config struct {
	// DisableFloat turns every float verb (f F e E g G) into an unknown
	// conversion.
	DisableFloat bool

	// DisableExponential disables e/E/g/G; an out-of-range %f emits an
	// empty string instead of falling back to exponential form.
	DisableExponential bool

	// DisableLongLong rejects the ll/j length modifiers, narrowing them
	// to the default 32-bit int width (l keeps the full 64 bits).
	DisableLongLong bool

	// DisablePtrdiffLength rejects the t length modifier, treating it
	// like the default int width.
	DisablePtrdiffLength bool

	// BufferSizeCeiling caps how many bytes Sprintf and Snprintf store
	// into dst, even when the caller asked for more. Bytes past the
	// ceiling are still counted in the return value, and formatting runs
	// to the end of the format string; Printf and Fctprintf do not consult
	// it. MaxInt, or any value <= 0 as in a zero Config, means "no cap".
	BufferSizeCeiling int

	// MaxFloatPrecision caps the precision accepted by the fixed-form
	// float renderer; see the Open Question resolution in SPEC_FULL.md.
	MaxFloatPrecision int
}

// Default returns the configuration the reference implementation ships
// with: nothing disabled, a precision ceiling of 9, no buffer ceiling.
func Default() Config {
	return Config{
		BufferSizeCeiling: math.MaxInt,
		MaxFloatPrecision: 9,
	}
}

// envPrefix is prepended to every variable name FromEnv looks up.
const envPrefix = "TINYPRINTF_"

// FromEnv overlays Default() with TINYPRINTF_* environment variables:
//
//	TINYPRINTF_DISABLE_FLOAT=1
//	TINYPRINTF_DISABLE_EXPONENTIAL=1
//	TINYPRINTF_DISABLE_LONG_LONG=1
//	TINYPRINTF_DISABLE_PTRDIFF_LENGTH=1
//	TINYPRINTF_BUFFER_SIZE_CEILING=4096
//	TINYPRINTF_MAX_FLOAT_PRECISION=12
//
// Missing variables leave the corresponding Default() field untouched. A
// numeric variable that parses but is out of range (a ceiling <= 0, a
// negative precision) is reported as an error; one that does not parse as
// an integer leaves the default in place, as env.Int does. Boolean
// variables parse via env.Bool's permissive true/false/1/0 handling and
// never fail.
func FromEnv() (Config, error) {
	c := Default()

	c.DisableFloat = env.Bool(envPrefix+"DISABLE_FLOAT", c.DisableFloat)
	c.DisableExponential = env.Bool(envPrefix+"DISABLE_EXPONENTIAL", c.DisableExponential)
	c.DisableLongLong = env.Bool(envPrefix+"DISABLE_LONG_LONG", c.DisableLongLong)
	c.DisablePtrdiffLength = env.Bool(envPrefix+"DISABLE_PTRDIFF_LENGTH", c.DisablePtrdiffLength)

	if env.Has(envPrefix + "BUFFER_SIZE_CEILING") {
		n := env.Int(envPrefix+"BUFFER_SIZE_CEILING", c.BufferSizeCeiling)
		if n <= 0 {
			return c, fmt.Errorf("config: %sBUFFER_SIZE_CEILING must be positive, got %d", envPrefix, n)
		}
		c.BufferSizeCeiling = n
	}

	if env.Has(envPrefix + "MAX_FLOAT_PRECISION") {
		n := env.Int(envPrefix+"MAX_FLOAT_PRECISION", c.MaxFloatPrecision)
		if n < 0 {
			return c, fmt.Errorf("config: %sMAX_FLOAT_PRECISION must not be negative, got %d", envPrefix, n)
		}
		c.MaxFloatPrecision = n
	}

	return c, nil
}
