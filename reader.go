package adc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// byteSource is what the decoder needs from its input: bulk reads for
// literal payloads and single-byte reads for chunk headers.
type byteSource interface {
	io.Reader
	io.ByteReader
}

// Reader decompresses an ADC stream incrementally. It implements io.Reader:
// Read fills the caller's buffer with decompressed bytes and returns io.EOF
// once the compressed stream is cleanly exhausted. Memory stays bounded by
// the 64 KiB sliding window regardless of output length.
//
// A Reader must not be used from multiple goroutines without external
// synchronization: the window and chunk state mutate on every call.
type Reader struct {
	src byteSource
	win slidingWindow

	cur     chunk // active chunk, valid when active is true
	active  bool
	eof     bool
	err     error // sticky decode error; the stream is not resynchronizable
	written int64 // total decompressed bytes produced, for error context
}

// NewReader returns a decoder reading compressed data from r.
// If r does not implement io.ByteReader it is wrapped in a bufio.Reader,
// which may read ahead of the compressed stream's end.
func NewReader(r io.Reader) *Reader {
	src, ok := r.(byteSource)
	if !ok {
		src = bufio.NewReader(r)
	}

	return &Reader{src: src}
}

// Read produces up to len(p) decompressed bytes. It never produces across a
// chunk boundary, so short reads are routine; clean end of the compressed
// stream is reported as (0, io.EOF) on this and every later call. A decode
// error (ErrTruncatedInput, ErrInvalidOffset) is fatal and sticky.
func (d *Reader) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}

	if !d.active {
		if d.eof {
			return 0, io.EOF
		}

		c, ok, err := nextChunk(d.src)
		if err != nil {
			d.err = err
			return 0, err
		}
		if !ok {
			d.eof = true
			return 0, io.EOF
		}

		d.cur = c
		d.active = true
	}

	n := d.cur.size
	if n > len(p) {
		n = len(p)
	}

	if d.cur.typ == plainChunk {
		if _, err := io.ReadFull(d.src, p[:n]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				err = fmt.Errorf("%w: literal payload", ErrTruncatedInput)
			}
			d.err = err

			return 0, err
		}

		d.win.extend(p[:n])
	} else {
		// The window only grows while this chunk is produced, so checking the
		// offset once up front covers every byte: nothing is written on failure.
		if d.cur.offset >= d.win.size {
			d.err = fmt.Errorf("%w: offset=%d produced=%d", ErrInvalidOffset, d.cur.offset, d.written)
			return 0, d.err
		}

		// Push each byte before producing the next one so self-overlapping
		// runs (offset smaller than remaining length) replicate correctly.
		for i := 0; i < n; i++ {
			b, _ := d.win.get(d.cur.offset)
			p[i] = b
			d.win.push(b)
		}
	}

	d.written += int64(n)
	if d.cur.size -= n; d.cur.size == 0 {
		d.active = false
	}

	return n, nil
}

// sliceReader reads from a byte slice and tracks its position.
type sliceReader struct {
	data []byte // the byte slice to read from
	pos  int    // current position in the byte slice
}

// Read copies bytes from the slice.
func (r *sliceReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n

	return n, nil
}

// ReadByte reads a byte from the slice.
func (r *sliceReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// countingReader reads from a byte reader and counts the number of bytes read.
type countingReader struct {
	base  io.ByteReader // the byte reader to read from
	count int64         // the number of bytes read
}

// Read satisfies io.Reader one byte at a time so the count stays exact.
func (r *countingReader) Read(p []byte) (int, error) {
	for i := range p {
		b, err := r.ReadByte()
		if err != nil {
			if i > 0 && errors.Is(err, io.EOF) {
				return i, nil
			}

			return i, err
		}
		p[i] = b
	}

	return len(p), nil
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}
