package lzss

import (
	"bytes"

	"github.com/icza/bitio"
)

// boundedWriter commits bytes into a caller-owned slice and refuses to grow
// it. Running out of room means the worst-case bound was miscomputed.
type boundedWriter struct {
	buf []byte
	n   int // bytes committed
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	c := copy(w.buf[w.n:], p)
	w.n += c
	if c < len(p) {
		return c, ErrOutOfBounds
	}
	return c, nil
}

func (w *boundedWriter) WriteByte(b byte) error {
	if w.n >= len(w.buf) {
		return ErrOutOfBounds
	}
	w.buf[w.n] = b
	w.n++
	return nil
}

// bitWriter packs bits into a fixed buffer, most significant bit first.
type bitWriter struct {
	out *boundedWriter
	w   *bitio.Writer
}

func newBitWriter(buf []byte) *bitWriter {
	out := &boundedWriter{buf: buf}
	return &bitWriter{out: out, w: bitio.NewWriter(out)}
}

func (w *bitWriter) writeBit(b bool) error {
	return w.w.WriteBool(b)
}

func (w *bitWriter) writeBits(v uint32, n uint8) error {
	return w.w.WriteBits(uint64(v), n)
}

// writeVarint writes n as a VLQ: 7 payload bits per byte, least-significant
// chunk first, continuation flag in the top bit.
func (w *bitWriter) writeVarint(n uint32) error {
	for n > 0x7f {
		if err := w.w.WriteBits(uint64(0x80|n&0x7f), 8); err != nil {
			return err
		}
		n >>= 7
	}
	return w.w.WriteBits(uint64(n), 8)
}

// flush commits a pending partial byte, zero bits padding the low end, and
// returns the total number of bytes committed.
func (w *bitWriter) flush() (int, error) {
	if err := w.w.Close(); err != nil {
		return 0, err
	}
	return w.out.n, nil
}

// bitReader consumes bits from a byte slice, most significant bit first.
// Exhausting the slice mid-read reports ErrOutOfBounds: the stream is
// truncated or corrupt.
type bitReader struct {
	r *bitio.Reader
}

func newBitReader(buf []byte) *bitReader {
	return &bitReader{r: bitio.NewReader(bytes.NewReader(buf))}
}

func (r *bitReader) readBit() (bool, error) {
	b, err := r.r.ReadBool()
	if err != nil {
		return false, ErrOutOfBounds
	}
	return b, nil
}

func (r *bitReader) readBits(n uint8) (uint32, error) {
	v, err := r.r.ReadBits(n)
	if err != nil {
		return 0, ErrOutOfBounds
	}
	return uint32(v), nil
}

// readVarint reads a VLQ written by writeVarint. The loop also stops once the
// accumulated shift passes 32 bits, so a stream whose continuation flags
// never clear cannot read forever.
func (r *bitReader) readVarint() (uint32, error) {
	var v uint32
	var shift uint
	for {
		b, err := r.readBits(8)
		if err != nil {
			return 0, err
		}
		v |= (b & 0x7f) << shift
		shift += 7
		if b&0x80 == 0 || shift > 32 {
			return v, nil
		}
	}
}
