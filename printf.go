package tinyprintf

import (
	"github.com/halfbit/tinyprintf/config"
	"github.com/halfbit/tinyprintf/cursor"
)

// Putcharer is the Go analogue of the C library's single-byte `_putchar`
// hook: an embedding supplies one to receive Printf's output one byte at a
// time, without tinyprintf ever touching a file descriptor itself.
type Putcharer interface {
	Putchar(b byte)
}

// PutcharerFunc adapts a bare function to Putcharer, the way
// http.HandlerFunc adapts a function to http.Handler.
type PutcharerFunc func(byte)

func (f PutcharerFunc) Putchar(b byte) { f(b) }

// Printer binds a fixed Config to the C8 entry points. It holds no other
// state: a Printer is safe for concurrent use by multiple goroutines
// provided they pass it distinct sinks and cursors, which every method
// here does per call.
type Printer struct {
	cfg config.Config
}

// New returns a Printer bound to cfg.
func New(cfg config.Config) *Printer { return &Printer{cfg: cfg} }

// defaultPrinter backs the package-level convenience functions. Its Config
// is fixed at package init and never mutated, so it does not violate the
// "no shared mutable state" resource-model guarantee.
var defaultPrinter = New(config.Default())

// boundedCapacity folds a caller-requested capacity n (0 meaning "no
// explicit request", as with Sprintf) together with the Config's safety
// ceiling. A non-positive ceiling, as in a zero Config, means no ceiling.
func boundedCapacity(n int, ceiling int) int {
	if ceiling <= 0 {
		ceiling = unbounded
	}
	if n <= 0 || n > ceiling {
		return ceiling
	}
	return n
}

// Sprintf renders format against args into dst, starting at dst[0], and
// stores a terminating NUL if dst has room. It returns the number of bytes
// that would have been written were dst unbounded. Sprintf takes no
// capacity argument: bytes beyond len(dst) are counted but not stored, so
// callers size dst for the full output. Config.BufferSizeCeiling caps how
// many bytes are stored, not how much of the format string is processed.
func (p *Printer) Sprintf(dst []byte, format string, args ...any) int {
	return p.Vsnprintf(dst, boundedCapacity(0, p.cfg.BufferSizeCeiling), format, cursor.New(args...))
}

// Snprintf renders format against args into dst, writing at most n-1 bytes
// plus a terminating NUL, and returns the number of bytes that would have
// been written had dst been unbounded. dst == nil or n == 0 is a valid
// size-probe call that writes nothing.
func (p *Printer) Snprintf(dst []byte, n int, format string, args ...any) int {
	return p.Vsnprintf(dst, n, format, cursor.New(args...))
}

// Vsnprintf is Snprintf taking a pre-built argument cursor instead of a
// fresh variadic slice, for callers assembling many format calls against
// the same argument list.
func (p *Printer) Vsnprintf(dst []byte, n int, format string, cur *cursor.Cursor) int {
	capacity := 0 // n <= 0 is a size probe: nothing is stored
	if n > 0 {
		capacity = boundedCapacity(n, p.cfg.BufferSizeCeiling)
	}
	s := newBoundedSink(dst, capacity)
	runFormat(s, format, cur, p.cfg)
	s.terminate()
	return s.Position()
}

// Printf delivers format's output to w one byte at a time via w.Putchar;
// no NUL is stored. It returns the number of bytes delivered.
func (p *Printer) Printf(w Putcharer, format string, args ...any) int {
	return p.Vprintf(w, format, cursor.New(args...))
}

// Vprintf is Printf taking a pre-built argument cursor.
func (p *Printer) Vprintf(w Putcharer, format string, cur *cursor.Cursor) int {
	s := newCallbackSink(w.Putchar)
	runFormat(s, format, cur, p.cfg)
	return s.Position()
}

// Fctprintf delivers format's output to cb one byte at a time. It is
// Printf's callback-based sibling for callers that would rather pass a
// closure than implement Putcharer.
func (p *Printer) Fctprintf(cb func(byte), format string, args ...any) int {
	return p.Vfctprintf(cb, format, cursor.New(args...))
}

// Vfctprintf is Fctprintf taking a pre-built argument cursor.
func (p *Printer) Vfctprintf(cb func(byte), format string, cur *cursor.Cursor) int {
	s := newCallbackSink(cb)
	runFormat(s, format, cur, p.cfg)
	return s.Position()
}

// Sprintf renders format against args using the default Config (see
// config.Default). See (*Printer).Sprintf.
func Sprintf(dst []byte, format string, args ...any) int {
	return defaultPrinter.Sprintf(dst, format, args...)
}

// Snprintf renders format against args using the default Config. See
// (*Printer).Snprintf.
func Snprintf(dst []byte, n int, format string, args ...any) int {
	return defaultPrinter.Snprintf(dst, n, format, args...)
}

// Vsnprintf renders format against a pre-built cursor using the default
// Config. See (*Printer).Vsnprintf.
func Vsnprintf(dst []byte, n int, format string, cur *cursor.Cursor) int {
	return defaultPrinter.Vsnprintf(dst, n, format, cur)
}

// Printf delivers format's output to w using the default Config. See
// (*Printer).Printf.
func Printf(w Putcharer, format string, args ...any) int {
	return defaultPrinter.Printf(w, format, args...)
}

// Vprintf delivers format's output to w using a pre-built cursor and the
// default Config. See (*Printer).Vprintf.
func Vprintf(w Putcharer, format string, cur *cursor.Cursor) int {
	return defaultPrinter.Vprintf(w, format, cur)
}

// Fctprintf delivers format's output to cb using the default Config. See
// (*Printer).Fctprintf.
func Fctprintf(cb func(byte), format string, args ...any) int {
	return defaultPrinter.Fctprintf(cb, format, args...)
}

// Vfctprintf delivers format's output to cb using a pre-built cursor and
// the default Config. See (*Printer).Vfctprintf.
func Vfctprintf(cb func(byte), format string, cur *cursor.Cursor) int {
	return defaultPrinter.Vfctprintf(cb, format, cur)
}
