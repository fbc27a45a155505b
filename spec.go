package tinyprintf

import "github.com/halfbit/tinyprintf/cursor"

// Flags is the bit set of modifiers a conversion specification may carry.
type Flags uint16

const (
	LeftJustify Flags = 1 << iota
	Plus
	Space
	Hash
	ZeroPad
	PrecisionGiven
	AdaptExp // set for %g/%G
	Uppercase
	Long
	LongLong
	Char
	Short
	Ptrdiff
	Intmax
	SizeT
)

// Kind classifies a decoded conversion specification.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindIntSigned
	KindIntUnsigned
	KindChar
	KindString
	KindPointer
	KindFloatFixed
	KindFloatExp
	KindFloatAdapt
	KindPercent
)

// Spec is the decoded form of one %… conversion specification, produced
// by parseSpec and consumed by the integer/float renderers.
type Spec struct {
	Flags     Flags
	Width     int
	Precision int
	Base      uint64
	Kind      Kind
	// verb is the raw specifier byte (d, x, f, s, …) — kept around so an
	// Unknown conversion can be echoed back literally by the driver.
	verb byte
}

func (s Spec) has(f Flags) bool { return s.Flags&f != 0 }

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseSpec decodes the conversion specification starting at format[i],
// where format[i] == '%'. It returns the decoded Spec and the index of
// the first byte after the specification. Width/precision '*' fields pull
// an int argument from cur via NextWidthOrPrec, consuming exactly as many
// arguments as the spec declares before the renderer ever runs — matching
// the left-to-right argument consumption order of the C reference.
func parseSpec(format string, i int, cur *cursor.Cursor) (Spec, int) {
	var sp Spec
	n := len(format)
	i++ // skip '%'

	// flags*
flagsLoop:
	for i < n {
		switch format[i] {
		case '-':
			sp.Flags |= LeftJustify
			i++
		case '+':
			sp.Flags |= Plus
			i++
		case ' ':
			sp.Flags |= Space
			i++
		case '#':
			sp.Flags |= Hash
			i++
		case '0':
			sp.Flags |= ZeroPad
			i++
		default:
			break flagsLoop
		}
	}

	// width?
	if i < n && format[i] == '*' {
		w := cur.NextWidthOrPrec()
		if w < 0 {
			sp.Flags |= LeftJustify
			w = -w
		}
		sp.Width = w
		i++
	} else {
		start := i
		for i < n && isDigit(format[i]) {
			i++
		}
		if i > start {
			sp.Width = atoiSlice(format[start:i])
		}
	}

	// ( . precision? )?
	if i < n && format[i] == '.' {
		i++
		sp.Flags |= PrecisionGiven
		if i < n && format[i] == '*' {
			p := cur.NextWidthOrPrec()
			if p < 0 {
				sp.Flags &^= PrecisionGiven
			} else {
				sp.Precision = p
			}
			i++
		} else {
			start := i
			for i < n && isDigit(format[i]) {
				i++
			}
			if i > start {
				sp.Precision = atoiSlice(format[start:i])
			} else {
				sp.Precision = 0
			}
		}
	}

	// length modifiers: hh h l ll j z t
	for i < n {
		switch format[i] {
		case 'h':
			if sp.has(Short) {
				sp.Flags &^= Short
				sp.Flags |= Char
			} else {
				sp.Flags |= Short
			}
			i++
			continue
		case 'l':
			if sp.has(Long) {
				sp.Flags &^= Long
				sp.Flags |= LongLong
			} else {
				sp.Flags |= Long
			}
			i++
			continue
		case 'j':
			sp.Flags |= Intmax
			i++
			continue
		case 'z':
			sp.Flags |= SizeT
			i++
			continue
		case 't':
			sp.Flags |= Ptrdiff
			i++
			continue
		}
		break
	}

	if i >= n {
		sp.Kind = KindUnknown
		return sp, i
	}

	verb := format[i]
	sp.verb = verb
	i++

	switch verb {
	case 'd', 'i':
		sp.Kind = KindIntSigned
		sp.Base = 10
	case 'u':
		sp.Kind = KindIntUnsigned
		sp.Base = 10
	case 'o':
		sp.Kind = KindIntUnsigned
		sp.Base = 8
	case 'x':
		sp.Kind = KindIntUnsigned
		sp.Base = 16
	case 'X':
		sp.Kind = KindIntUnsigned
		sp.Base = 16
		sp.Flags |= Uppercase
	case 'b':
		sp.Kind = KindIntUnsigned
		sp.Base = 2
	case 'c':
		sp.Kind = KindChar
	case 's':
		sp.Kind = KindString
	case 'p':
		sp.Kind = KindPointer
		sp.Base = 16
	case 'f', 'F':
		sp.Kind = KindFloatFixed
		if verb == 'F' {
			sp.Flags |= Uppercase
		}
	case 'e':
		sp.Kind = KindFloatExp
	case 'E':
		sp.Kind = KindFloatExp
		sp.Flags |= Uppercase
	case 'g':
		sp.Kind = KindFloatAdapt
		sp.Flags |= AdaptExp
	case 'G':
		sp.Kind = KindFloatAdapt
		sp.Flags |= AdaptExp | Uppercase
	case '%':
		sp.Kind = KindPercent
	case 'n':
		// %n (bytes-written-so-far output argument) is never honored —
		// treating it as unknown avoids writing through an arbitrary
		// caller pointer, the one deliberate deviation from the C
		// contract, made for memory safety.
		sp.Kind = KindUnknown
	default:
		sp.Kind = KindUnknown
	}

	return sp, i
}

// atoiSlice parses a run of ASCII digits known not to overflow a
// reasonably small width/precision field. It never returns an error: the
// caller has already verified every byte is a digit.
func atoiSlice(b string) int {
	n := 0
	for i := 0; i < len(b); i++ {
		n = n*10 + int(b[i]-'0')
	}
	return n
}
