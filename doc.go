/*
Package tinyprintf implements a self-contained, allocation-conscious printf
format engine: the integer, floating-point and string conversions of the C
printf family, driven from a format string and a slice of Go arguments
rather than a C va_list.

The zero-allocation path runs through bounded stack scratch buffers (see
maxIntDigits and maxFloatDigits), a single output abstraction (Sink) that
every renderer writes through, and an argument Cursor (package cursor) that
stands in for va_list. Compile-time toggles that the C reference expresses
as preprocessor defines are instead fields on config.Config, with an
optional environment-variable overlay for embeddings that want to flip them
without a rebuild.

Entry points mirror the C library's own adapters:

	tinyprintf.Sprintf(dst, format, args...)
	tinyprintf.Snprintf(dst, n, format, args...)
	tinyprintf.Printf(w, format, args...)
	tinyprintf.Fctprintf(cb, format, args...)

plus Vsnprintf/Vprintf/Vfctprintf variants that accept a pre-built
*cursor.Cursor for callers assembling many format calls against the same
argument list. A Printer bundles a fixed config.Config with all of the
above for callers that need something other than the package defaults.
*/
package tinyprintf
