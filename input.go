package bcbc

import "sync/atomic"

// Input is the abstract byte source the reader advances over. Every
// operation is total: out-of-range access
// reports absence rather than panicking, in keeping with the no-panic
// discipline the reader depends on throughout.
type Input interface {
	// Len returns the input's length in constant time.
	Len() int
	// ByteAt returns the byte at i, or ok=false if i is out of range.
	ByteAt(i int) (b byte, ok bool)
	// Slice returns the bytes in [start, end), or ok=false if the range is
	// inverted or exceeds Len.
	Slice(start, end int) (b []byte, ok bool)
	// Leak returns the underlying storage backing [start, end), suitable
	// for a caller that wants to retain the bytes past the Input's own
	// lifetime (e.g. a String or Bytes Value payload) without copying.
	Leak(start, end int) (b []byte, ok bool)
}

// SliceInput is an Input borrowing a plain byte slice. It never copies;
// Leak returns a subslice of the same backing array the caller supplied.
type SliceInput struct {
	buf []byte
}

// NewSliceInput wraps buf as an Input. The caller must not mutate buf while
// any Value decoded from it is still reachable, since Leak aliases it.
func NewSliceInput(buf []byte) *SliceInput { return &SliceInput{buf: buf} }

func (s *SliceInput) Len() int { return len(s.buf) }

func (s *SliceInput) ByteAt(i int) (byte, bool) {
	if i < 0 || i >= len(s.buf) {
		return 0, false
	}
	return s.buf[i], true
}

func (s *SliceInput) Slice(start, end int) ([]byte, bool) {
	if start < 0 || end < start || end > len(s.buf) {
		return nil, false
	}
	return s.buf[start:end], true
}

func (s *SliceInput) Leak(start, end int) ([]byte, bool) {
	return s.Slice(start, end)
}

// sharedBuffer is an atomically refcounted byte array, letting several
// SharedInput values alias one underlying allocation the way the original
// implementation's reference-counted `Bytes` input does.
type sharedBuffer struct {
	data []byte
	refs int32
}

func newSharedBuffer(data []byte) *sharedBuffer {
	return &sharedBuffer{data: data, refs: 1}
}

// Retain increments the refcount and returns b itself.
func (b *sharedBuffer) Retain() *sharedBuffer {
	atomic.AddInt32(&b.refs, 1)
	return b
}

// Release decrements the refcount; the caller owns no further obligation
// regardless of the result, since this package performs no pooling of
// sharedBuffer storage (PooledOutput pools Output buffers, not inputs).
func (b *sharedBuffer) Release() int32 {
	return atomic.AddInt32(&b.refs, -1)
}

// SharedInput is an Input over a sharedBuffer, letting callers fan a single
// allocation out to many concurrent decodes through Retain'd handles without
// each performing its own copy. Every handle covers the whole buffer; there
// is no sub-range view.
type SharedInput struct {
	buf *sharedBuffer
}

// NewSharedInput wraps data in a fresh sharedBuffer with one reference.
func NewSharedInput(data []byte) *SharedInput {
	return &SharedInput{buf: newSharedBuffer(data)}
}

// Retain returns a new SharedInput aliasing the same storage, bumping the
// refcount so the backing array outlives either handle alone.
func (s *SharedInput) Retain() *SharedInput {
	return &SharedInput{buf: s.buf.Retain()}
}

// Release drops this handle's reference. SharedInput performs no
// finalization on the last release; the backing array is left for the Go
// garbage collector once every handle and every Leak'd slice drops it.
func (s *SharedInput) Release() { s.buf.Release() }

func (s *SharedInput) Len() int { return len(s.buf.data) }

func (s *SharedInput) ByteAt(i int) (byte, bool) {
	if i < 0 || i >= len(s.buf.data) {
		return 0, false
	}
	return s.buf.data[i], true
}

func (s *SharedInput) Slice(start, end int) ([]byte, bool) {
	if start < 0 || end < start || end > len(s.buf.data) {
		return nil, false
	}
	return s.buf.data[start:end], true
}

func (s *SharedInput) Leak(start, end int) ([]byte, bool) {
	return s.Slice(start, end)
}
