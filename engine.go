package tinyprintf

import (
	"github.com/halfbit/tinyprintf/config"
	"github.com/halfbit/tinyprintf/cursor"
)

// runFormat is C7's engine driver: it walks format once, copying literal
// bytes straight through to s and dispatching every %… conversion it finds
// to the matching renderer. It is the single place that ties the parser
// (C3), the argument cursor (C9) and the renderers (C4/C5/C6) together.
func runFormat(s *Sink, format string, cur *cursor.Cursor, cfg config.Config) {
	i := 0
	n := len(format)
	for i < n {
		if format[i] != '%' {
			s.Emit(format[i])
			i++
			continue
		}

		sp, next := parseSpec(format, i, cur)
		i = next

		switch sp.Kind {
		case KindPercent:
			s.Emit('%')

		case KindUnknown:
			echoRaw(s, sp.verb)

		case KindIntSigned:
			renderSignedInt(s, sp, cur.NextInt64(), cfg)

		case KindIntUnsigned:
			renderUnsignedInt(s, sp, cur.NextUint64(), cfg)

		case KindChar:
			renderChar(s, sp, byte(cur.NextInt64()))

		case KindString:
			renderString(s, sp, cur.NextString())

		case KindPointer:
			renderPointer(s, sp, cur.NextPointer())

		case KindFloatFixed:
			if cfg.DisableFloat {
				echoRaw(s, sp.verb)
				break
			}
			renderFloatFixed(s, sp, cur.NextFloat64(), cfg.MaxFloatPrecision, cfg.DisableExponential)

		case KindFloatExp:
			if cfg.DisableFloat || cfg.DisableExponential {
				echoRaw(s, sp.verb)
				break
			}
			renderFloatExp(s, sp, cur.NextFloat64(), cfg.MaxFloatPrecision)

		case KindFloatAdapt:
			if cfg.DisableFloat || cfg.DisableExponential {
				echoRaw(s, sp.verb)
				break
			}
			renderFloatAdapt(s, sp, cur.NextFloat64(), cfg.MaxFloatPrecision)
		}
	}
}

// echoRaw emits only the specifier byte of a conversion the driver does
// not render, dropping the '%' and any flags, width, precision and length
// modifiers — used for both genuinely unrecognized conversions and verbs
// disabled by Config ("%kmarco" echoes as "kmarco"; "%.2f" with floats
// disabled echoes as "f"). A specification cut off by the end of the
// format has no specifier byte (verb == 0) and emits nothing.
func echoRaw(s *Sink, verb byte) {
	if verb != 0 {
		s.Emit(verb)
	}
}

// maskMagnitude narrows an already-nonnegative magnitude to the bit width
// implied by sp's length modifiers, mirroring the integer-promotion rules
// of the C length modifiers (hh/h narrow, l/ll/j/z/t keep full width, no
// modifier narrows to 32 bits as the default int width). Config can demote
// ll/j and t to the default 32-bit width when that support is turned off.
func maskMagnitude(v uint64, sp Spec, cfg config.Config) uint64 {
	switch {
	case sp.has(Char):
		return v & 0xff
	case sp.has(Short):
		return v & 0xffff
	case sp.has(LongLong) || sp.has(Intmax):
		if cfg.DisableLongLong {
			return v & 0xffffffff
		}
		return v
	case sp.has(Long):
		return v
	case sp.has(SizeT):
		return v
	case sp.has(Ptrdiff):
		if cfg.DisablePtrdiffLength {
			return v & 0xffffffff
		}
		return v
	default:
		return v & 0xffffffff
	}
}

// renderSignedInt extracts sign and magnitude from v, masks the magnitude
// per sp's length modifiers, and renders through s.
func renderSignedInt(s *Sink, sp Spec, v int64, cfg config.Config) {
	negative := v < 0
	var mag uint64
	if negative {
		mag = uint64(-v)
	} else {
		mag = uint64(v)
	}
	mag = maskMagnitude(mag, sp, cfg)
	renderInteger(s, sp, mag, negative)
}

// renderUnsignedInt masks v per sp's length modifiers and renders it as an
// unsigned conversion (u/o/x/X/b) through s.
func renderUnsignedInt(s *Sink, sp Spec, v uint64, cfg config.Config) {
	renderInteger(s, sp, maskMagnitude(v, sp, cfg), false)
}

// renderChar implements %c: a single byte, space-padded to width.
func renderChar(s *Sink, sp Spec, c byte) {
	pad := sp.Width - 1
	if pad < 0 {
		pad = 0
	}
	if !sp.has(LeftJustify) {
		emitRepeat(s, ' ', pad)
	}
	s.Emit(c)
	if sp.has(LeftJustify) {
		emitRepeat(s, ' ', pad)
	}
}

// renderString implements %s: precision truncates to at most Precision
// bytes, width pads the (possibly truncated) result.
func renderString(s *Sink, sp Spec, str string) {
	if sp.has(PrecisionGiven) && sp.Precision < len(str) {
		str = str[:sp.Precision]
	}
	pad := sp.Width - len(str)
	if pad < 0 {
		pad = 0
	}
	if !sp.has(LeftJustify) {
		emitRepeat(s, ' ', pad)
	}
	for i := 0; i < len(str); i++ {
		s.Emit(str[i])
	}
	if sp.has(LeftJustify) {
		emitRepeat(s, ' ', pad)
	}
}

// renderPointer implements %p. Unlike a bare %x, a pointer is always
// rendered as a fixed-width 16-hex-digit value (assuming a 64-bit address
// space) with no "0x" alt-form prefix, so the precision/hash the caller
// may have set on the spec are overridden rather than honored.
func renderPointer(s *Sink, sp Spec, ptr uintptr) {
	sp.Flags |= PrecisionGiven
	sp.Flags &^= Hash
	sp.Precision = 16
	renderInteger(s, sp, uint64(ptr), false)
}
