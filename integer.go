package tinyprintf

// renderInteger implements C4: it formats the unsigned magnitude value
// (already extracted from the caller's signed or unsigned argument) with
// the flags, width, precision and base carried in sp, and emits the
// result through s. negative indicates a signed conversion whose source
// value was below zero.
func renderInteger(s *Sink, sp Spec, value uint64, negative bool) {
	var scratch [maxIntDigits]byte
	digits := digitsForBase(sp.has(Uppercase))

	noDigitsCase := sp.has(PrecisionGiven) && sp.Precision == 0 && value == 0

	var digitStart int
	var digitsLen int
	if noDigitsCase {
		digitStart = len(scratch)
		digitsLen = 0
	} else {
		digitStart = appendUint(scratch[:], value, sp.Base, digits)
		digitsLen = len(scratch) - digitStart
	}

	precFill := 0
	if sp.has(PrecisionGiven) && sp.Precision > digitsLen {
		precFill = sp.Precision - digitsLen
	}

	// sign prefix
	var signByte byte
	switch {
	case negative:
		signByte = '-'
	case sp.Flags&Plus != 0:
		signByte = '+'
	case sp.Flags&Space != 0:
		signByte = ' '
	}

	// alt-form base prefix
	var altPrefix string
	if !noDigitsCase && sp.has(Hash) {
		switch sp.Base {
		case 8:
			if digitsLen == 0 || scratch[digitStart] != '0' {
				altPrefix = "0"
			}
		case 16:
			if value != 0 {
				if sp.has(Uppercase) {
					altPrefix = "0X"
				} else {
					altPrefix = "0x"
				}
			}
		case 2:
			if value != 0 {
				altPrefix = "0b"
			}
		}
	}

	prefixLen := len(altPrefix)
	if signByte != 0 {
		prefixLen++
	}

	contentLen := prefixLen + precFill + digitsLen
	// the '0' flag is ignored when '-' is present or a precision was given
	zeroPad := sp.has(ZeroPad) && !sp.has(LeftJustify) && !sp.has(PrecisionGiven)

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
	for i := 0; i < len(altPrefix); i++ {
		s.Emit(altPrefix[i])
	}
	if !sp.has(LeftJustify) && zeroPad {
		emitRepeat(s, '0', pad)
	}
	emitRepeat(s, '0', precFill)
	for i := digitStart; i < len(scratch); i++ {
		s.Emit(scratch[i])
	}
	if sp.has(LeftJustify) {
		emitRepeat(s, ' ', pad)
	}
}

// emitRepeat writes n copies of b through s.
func emitRepeat(s *Sink, b byte, n int) {
	for i := 0; i < n; i++ {
		s.Emit(b)
	}
}
