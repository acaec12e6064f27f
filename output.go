package bcbc

import "sync"

// Output is the abstract byte sink the writer appends to . The
// writer makes no assumption about the sink's capacity policy: it only
// appends, then Finalizes once at the end.
type Output interface {
	// WriteByte appends one byte.
	WriteByte(b byte) error
	// Write appends p in full.
	Write(p []byte) (int, error)
	// Finalize returns the sink's accumulated bytes, owned by the caller.
	// The Output must not be reused after Finalize.
	Finalize() []byte
}

// ByteSliceOutput is an Output backed by a plain growable byte slice.
type ByteSliceOutput struct {
	buf []byte
}

// NewByteSliceOutput returns an Output starting from an empty buffer with
// capacity hint cap.
func NewByteSliceOutput(cap int) *ByteSliceOutput {
	return &ByteSliceOutput{buf: make([]byte, 0, cap)}
}

func (o *ByteSliceOutput) WriteByte(b byte) error {
	o.buf = append(o.buf, b)
	return nil
}

func (o *ByteSliceOutput) Write(p []byte) (int, error) {
	o.buf = append(o.buf, p...)
	return len(p), nil
}

func (o *ByteSliceOutput) Finalize() []byte { return o.buf }

// pooledBufferSize is the capacity new pool entries are allocated with; a
// PooledOutput beyond this size just grows its slice normally, same as
// ByteSliceOutput.
const pooledBufferSize = 256

var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, pooledBufferSize)
		return &buf
	},
}

// PooledOutput is an Output whose backing array is drawn from a sync.Pool,
// for callers that encode many Values in a tight loop and want to amortize
// allocation . No
// third-party buffer-pool library appears anywhere in the retrieved
// example pack, so this is hand-rolled over the stdlib sync.Pool rather
// than imported (see DESIGN.md).
type PooledOutput struct {
	buf *[]byte
}

// NewPooledOutput draws a buffer from the shared pool.
func NewPooledOutput() *PooledOutput {
	buf := bufferPool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return &PooledOutput{buf: buf}
}

func (o *PooledOutput) WriteByte(b byte) error {
	*o.buf = append(*o.buf, b)
	return nil
}

func (o *PooledOutput) Write(p []byte) (int, error) {
	*o.buf = append(*o.buf, p...)
	return len(p), nil
}

// Finalize copies the accumulated bytes out and returns the backing array
// to the pool. The returned slice is the caller's own, safe to retain
// after the pool recycles o's storage.
func (o *PooledOutput) Finalize() []byte {
	out := make([]byte, len(*o.buf))
	copy(out, *o.buf)
	bufferPool.Put(o.buf)
	o.buf = nil
	return out
}
