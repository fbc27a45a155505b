package tinyprintf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufSinkStoresEveryByteUnbounded(t *testing.T) {
	buf := make([]byte, 4)
	s := newBufSink(buf)
	for _, b := range []byte("abcd") {
		s.Emit(b)
	}
	assert.Equal(t, "abcd", string(buf))
	assert.Equal(t, 4, s.Position())
}

func TestBoundedSinkTruncatesButCountsAll(t *testing.T) {
	buf := make([]byte, 3)
	s := newBoundedSink(buf, 3)
	for _, b := range []byte("abcdef") {
		s.Emit(b)
	}
	assert.Equal(t, 6, s.Position())
	assert.Equal(t, "ab", string(buf[:2]))
	s.terminate()
	assert.Equal(t, byte(0), buf[2])
}

func TestCountSinkStoresNothing(t *testing.T) {
	s := newCountSink()
	for _, b := range []byte("hello") {
		s.Emit(b)
	}
	assert.Equal(t, 5, s.Position())
}

func TestCallbackSinkForwardsEveryByte(t *testing.T) {
	var got []byte
	s := newCallbackSink(func(b byte) { got = append(got, b) })
	for _, b := range []byte("xyz") {
		s.Emit(b)
	}
	assert.Equal(t, "xyz", string(got))
	assert.Equal(t, 3, s.Position())
}

func TestTerminateOnZeroCapacityIsNoop(t *testing.T) {
	s := newCountSink()
	assert.NotPanics(t, s.terminate)
}
