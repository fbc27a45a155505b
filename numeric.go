package tinyprintf

// Digit alphabets for integer rendering in base 2, 8, 10 and 16.
const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// maxIntDigits bounds the scratch array used by the integer renderer: a
// uint64 in base 2 needs at most 64 digits, plus room for a sign and an
// alt-form prefix.
const maxIntDigits = 64 + 3

// maxFloatDigits bounds the scratch array used by the float renderers: a
// fixed-form render of the largest supported magnitude (just under 1e17)
// at the largest supported precision (config.MaxFloatPrecision, default 9)
// plus sign, decimal point and exponent suffix comfortably fits in 32
// bytes.
const maxFloatDigits = 32

// pow10 holds 10^0 .. 10^18. It backs fractional scaling in the fixed-form
// decomposition (decomposeFixed), which clamps its precision to the table;
// the exponential renderer's exponent search uses math.Log10 instead.
var pow10 = [...]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18,
}

// digitsForBase returns the digit alphabet, honoring the uppercase flag.
// The same 16-digit alphabet serves bases 2, 8, 10 and 16; appendUint
// indexes only its first base entries.
func digitsForBase(uppercase bool) string {
	if uppercase {
		return upperDigits
	}
	return lowerDigits
}

// appendUint renders the unsigned value v in the given base into buf,
// writing least-significant digit first starting at the end of buf, and
// returns the index of the first digit written. buf must be long enough
// for v's digits in base: maxIntDigits covers any uint64 in base 2, and 20
// bytes cover any uint64 in base 10. The digits occupy buf[i:].
func appendUint(buf []byte, v uint64, base uint64, digits string) int {
	i := len(buf)
	if v == 0 {
		i--
		buf[i] = '0'
		return i
	}
	for v >= base {
		i--
		buf[i] = digits[v%base]
		v /= base
	}
	i--
	buf[i] = digits[v]
	return i
}
