package tinyprintf

import "math"

// decimalExponent finds the base-10 exponent E and normalized mantissa m of
// a non-negative, finite, nonzero magnitude such that 1 <= m < 10 (E = 0,
// m = 0 for mag == 0). math.Log10/math.Pow10 can land one power of ten off
// at the boundary because of float64 rounding, so the result is nudged back
// into range before it is handed to the caller.
func decimalExponent(mag float64) (int, float64) {
	if mag == 0 {
		return 0, 0
	}
	e := int(math.Floor(math.Log10(mag)))
	m := mag / math.Pow10(e)
	switch {
	case m < 1:
		m *= 10
		e--
	case m >= 10:
		m /= 10
		e++
	}
	return e, m
}

// buildFixedMantissa appends intPart, and a '.'-led run of precision
// fracDigits when precision > 0 or hash is set, to dst.
func buildFixedMantissa(dst []byte, intPart uint64, fracDigits []byte, precision int, hash bool) []byte {
	var scratch [24]byte
	start := appendUint(scratch[:], intPart, 10, lowerDigits)
	dst = append(dst, scratch[start:]...)
	if precision > 0 || hash {
		dst = append(dst, '.')
		dst = append(dst, fracDigits[:precision]...)
	}
	return dst
}

// appendExpSuffix appends "e±NN" (at least two exponent digits) to dst.
func appendExpSuffix(dst []byte, exp int, uppercase bool) []byte {
	verb := byte('e')
	if uppercase {
		verb = 'E'
	}
	dst = append(dst, verb)

	sign := byte('+')
	abs := exp
	if exp < 0 {
		sign = '-'
		abs = -exp
	}
	dst = append(dst, sign)

	var scratch [8]byte
	start := appendUint(scratch[:], uint64(abs), 10, lowerDigits)
	if len(scratch)-start < 2 {
		dst = append(dst, '0')
	}
	return append(dst, scratch[start:]...)
}

// trimTrailingZeros drops trailing fractional zeros (and a bare trailing
// '.') from a buildFixedMantissa result, for the %g/%G default (non-#)
// form. A body with no '.' is returned unchanged.
func trimTrailingZeros(body []byte) []byte {
	dot := -1
	for i, b := range body {
		if b == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		return body
	}
	end := len(body)
	for end > dot+1 && body[end-1] == '0' {
		end--
	}
	if end == dot+1 {
		end = dot
	}
	return body[:end]
}

// emitBody applies sign and width padding around an already-assembled
// numeral (digits, optional '.'+fraction, optional exponent suffix) and
// writes the result through s. Shared by the %e/%E and %g/%G renderers,
// whose trailing-zero trimming has to happen before padding is computed.
func emitBody(s *Sink, sp Spec, negative bool, body []byte) {
	var signByte byte
	switch {
	case negative:
		signByte = '-'
	case sp.has(Plus):
		signByte = '+'
	case sp.has(Space):
		signByte = ' '
	}

	contentLen := len(body)
	if signByte != 0 {
		contentLen++
	}

	zeroPad := sp.has(ZeroPad) && !sp.has(LeftJustify)
	pad := sp.Width - contentLen
	if pad < 0 {
		pad = 0
	}

	if !sp.has(LeftJustify) && !zeroPad {
		emitRepeat(s, ' ', pad)
	}
	if signByte != 0 {
		s.Emit(signByte)
	}
	if !sp.has(LeftJustify) && zeroPad {
		emitRepeat(s, '0', pad)
	}
	for _, b := range body {
		s.Emit(b)
	}
	if sp.has(LeftJustify) {
		emitRepeat(s, ' ', pad)
	}
}

// renderFloatExp implements C6's %e/%E: scientific notation with exactly
// one digit before the point.
func renderFloatExp(s *Sink, sp Spec, v float64, maxPrecision int) {
	if renderFloatSpecial(s, sp, v) {
		return
	}

	precision := 6
	if sp.has(PrecisionGiven) {
		precision = sp.Precision
	}

	negative := math.Signbit(v)
	mag := math.Abs(v)

	exp, mantissa := decimalExponent(mag)
	ip, fracDigits, fracLen := decomposeFixed(mantissa, precision, maxPrecision)
	if ip >= 10 {
		// Rounding pushed the mantissa to 10.0...: renormalize to 1.0
		// and bump the exponent.
		exp++
		ip = 1
		for i := range fracDigits {
			fracDigits[i] = '0'
		}
	}

	var bodyArr [40]byte
	body := buildFixedMantissa(bodyArr[:0], ip, fracDigits[:fracLen], fracLen, sp.has(Hash))
	body = appendExpSuffix(body, exp, sp.has(Uppercase))
	emitBody(s, sp, negative, body)
}

// renderFloatAdapt implements C6's %g/%G: with P significant digits (the
// precision, 0 treated as 1), it uses exponential form when the decimal
// exponent E is below -4 or at least P and fixed form otherwise, with
// trailing fractional zeros stripped unless '#' is given.
func renderFloatAdapt(s *Sink, sp Spec, v float64, maxPrecision int) {
	if renderFloatSpecial(s, sp, v) {
		return
	}

	precision := 6
	if sp.has(PrecisionGiven) {
		precision = sp.Precision
	}
	significant := precision
	if significant == 0 {
		significant = 1
	}

	negative := math.Signbit(v)
	mag := math.Abs(v)
	exp, mantissa := decimalExponent(mag)

	useExp := exp < -4 || exp >= significant

	var bodyArr [40]byte
	var body []byte

	if useExp {
		expPrecision := significant - 1
		ip, fracDigits, fracLen := decomposeFixed(mantissa, expPrecision, maxPrecision)
		if ip >= 10 {
			exp++
			ip = 1
			for i := range fracDigits {
				fracDigits[i] = '0'
			}
		}
		body = buildFixedMantissa(bodyArr[:0], ip, fracDigits[:fracLen], fracLen, sp.has(Hash))
		if !sp.has(Hash) {
			body = trimTrailingZeros(body)
		}
		body = appendExpSuffix(body, exp, sp.has(Uppercase))
	} else {
		fixedPrecision := significant - 1 - exp
		if fixedPrecision < 0 {
			fixedPrecision = 0
		}
		ip, fracDigits, fracLen := decomposeFixed(mag, fixedPrecision, maxPrecision)
		body = buildFixedMantissa(bodyArr[:0], ip, fracDigits[:fracLen], fracLen, sp.has(Hash))
		if !sp.has(Hash) {
			body = trimTrailingZeros(body)
		}
	}

	emitBody(s, sp, negative, body)
}
