package adc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// chunkType distinguishes the three ADC chunk kinds.
type chunkType int

const (
	plainChunk     chunkType = iota // literal bytes follow the header in the stream
	twoByteChunk                    // run with 10-bit offset
	threeByteChunk                  // run with 16-bit big-endian offset
)

// chunk is one decoded chunk header. size counts output bytes the chunk still
// owes; offset is the backward distance for run chunks (0 = previous byte).
type chunk struct {
	typ    chunkType
	size   int
	offset int
}

// nextChunk reads and decodes one chunk header from r.
// Clean EOF before the first header byte returns ok=false with no error;
// EOF inside a multi-byte header returns ErrTruncatedInput.
func nextChunk(r io.ByteReader) (c chunk, ok bool, err error) {
	b, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return chunk{}, false, nil
		}

		return chunk{}, false, err
	}

	switch {
	case b&plainFlag != 0:
		c = chunk{typ: plainChunk, size: int(b&^plainFlag) + 1}

	case b&threeByteFlag != 0:
		var off [2]byte
		for i := range off {
			if off[i], err = r.ReadByte(); err != nil {
				if errors.Is(err, io.EOF) {
					return chunk{}, false, fmt.Errorf("%w: three-byte run header", ErrTruncatedInput)
				}

				return chunk{}, false, err
			}
		}

		c = chunk{
			typ:    threeByteChunk,
			size:   int(b&sizeMask) + 4,
			offset: int(binary.BigEndian.Uint16(off[:])),
		}

	default:
		b2, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return chunk{}, false, fmt.Errorf("%w: two-byte run header", ErrTruncatedInput)
			}

			return chunk{}, false, err
		}

		c = chunk{
			typ:    twoByteChunk,
			size:   int((b&sizeMask)>>2) + 3,
			offset: int(b&twoByteOffHi)<<8 | int(b2),
		}
	}

	return c, true, nil
}
