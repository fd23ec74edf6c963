package adc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Decompress decompresses the whole ADC stream in src into a new buffer of
// capacity outLen. The result may be shorter than outLen; if the stream
// holds more than outLen bytes of output, ErrBufferTooSmall is returned.
func Decompress(src []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	d := NewReader(&sliceReader{data: src})
	out := make([]byte, outLen)
	pos := 0

	for pos < outLen {
		n, err := d.Read(out[pos:])
		if errors.Is(err, io.EOF) {
			return out[:pos], nil
		}
		if err != nil {
			return nil, err
		}

		pos += n
	}

	// Buffer full: the stream must be exhausted now.
	var probe [1]byte
	if _, err := d.Read(probe[:]); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("%w: output exceeds %d bytes", ErrBufferTooSmall, outLen)
	}

	return out, nil
}

// DecompressBlock decompresses exactly outLen bytes from the beginning of src.
// It returns the decompressed bytes and the number of consumed input bytes;
// trailing bytes after the block are ignored. If the stream ends before
// outLen bytes are produced, ErrBufferTooSmall is returned.
func DecompressBlock(src []byte, outLen int) ([]byte, int, error) {
	reader := &sliceReader{data: src}
	out, err := decompressExact(NewReader(reader), outLen)
	if err != nil {
		return nil, reader.pos, err
	}

	return out, reader.pos, nil
}

// DecompressFromReader decompresses exactly outLen bytes from r and returns
// consumed input bytes. Decoding stops as soon as outLen bytes are produced,
// so back-to-back blocks whose sizes are known can be read in sequence.
func DecompressFromReader(r io.Reader, outLen int) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingReader{base: byteReader}
	out, err := decompressExact(NewReader(countingReader), outLen)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// decompressExact drains d until exactly outLen bytes are produced.
func decompressExact(d *Reader, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	out := make([]byte, outLen)
	pos := 0

	for pos < outLen {
		n, err := d.Read(out[pos:])
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: stream ended at %d of %d bytes", ErrBufferTooSmall, pos, outLen)
		}
		if err != nil {
			return nil, err
		}

		pos += n
	}

	return out, nil
}
