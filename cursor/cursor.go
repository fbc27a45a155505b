// Package cursor models the sequential, typed-fetch argument list the
// format engine consumes. It is the Go stand-in for a C va_list: the
// engine never reaches into a caller's variadic slice directly, it only
// ever calls NextX on a *Cursor, so the length-modifier promotion rules
// the format-spec parser decides on live in exactly one place.
package cursor

import "unsafe"

// Cursor walks a slice of arguments in order. A zero Cursor is exhausted
// (every Next method returns its zero value).
type Cursor struct {
	args []any
	pos  int
}

// New wraps args for sequential consumption starting at the first
// element.
func New(args ...any) *Cursor {
	return &Cursor{args: args}
}

// Len reports the number of arguments remaining.
func (c *Cursor) Len() int {
	if c == nil {
		return 0
	}
	return len(c.args) - c.pos
}

func (c *Cursor) next() (any, bool) {
	if c == nil || c.pos >= len(c.args) {
		return nil, false
	}
	v := c.args[c.pos]
	c.pos++
	return v, true
}

// NextInt64 fetches the next argument and widens it to int64 from any of
// Go's integer types (rune included, as int32); any other type, bool among
// them, reads as 0. The engine uses it for the signed %d/%i conversions
// and for %c.
func (c *Cursor) NextInt64() int64 {
	v, ok := c.next()
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case uintptr:
		return int64(n)
	default:
		return 0
	}
}

// NextUint64 fetches the next argument and widens it to uint64, for the
// %u/%o/%x/%b family.
func (c *Cursor) NextUint64() uint64 {
	v, ok := c.next()
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return uint64(n)
	case int8:
		return uint64(n)
	case int16:
		return uint64(n)
	case int32:
		return uint64(n)
	case int64:
		return uint64(n)
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	case uintptr:
		return uint64(n)
	default:
		return 0
	}
}

// NextFloat64 fetches the next argument as a float64, accepting both
// float32 and float64 inputs (the %f/%e/%g family never needs a wider
// float).
func (c *Cursor) NextFloat64() float64 {
	v, ok := c.next()
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

// NextString fetches the next argument as a string for the %s verb.
func (c *Cursor) NextString() string {
	v, ok := c.next()
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// NextPointer fetches the next argument as a pointer for the %p verb,
// rendering as its integer bit pattern.
func (c *Cursor) NextPointer() uintptr {
	v, ok := c.next()
	if !ok {
		return 0
	}
	switch p := v.(type) {
	case unsafe.Pointer:
		return uintptr(p)
	case uintptr:
		return p
	default:
		return 0
	}
}

// NextWidthOrPrec fetches the next argument as an int for a '*' width or
// precision field.
func (c *Cursor) NextWidthOrPrec() int {
	v, ok := c.next()
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case uintptr:
		return int(n)
	default:
		return 0
	}
}
