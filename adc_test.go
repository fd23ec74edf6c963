package adc

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// Canonical stream exercising all three chunk kinds:
// plain "FE ED FA CE", two-byte run (len 3, off 0), three-byte run (len 4, off 6).
var (
	canonicalStream = []byte{0x83, 0xFE, 0xED, 0xFA, 0xCE, 0x00, 0x00, 0x40, 0x00, 0x06}
	canonicalOutput = []byte{0xFE, 0xED, 0xFA, 0xCE, 0xCE, 0xCE, 0xCE, 0xFE, 0xED, 0xFA, 0xCE}
)

// appendPlain appends literal data as plain chunks (split at PlainMaxSize).
func appendPlain(dst, lit []byte) []byte {
	for len(lit) > 0 {
		n := len(lit)
		if n > PlainMaxSize {
			n = PlainMaxSize
		}
		dst = append(dst, 0x80|byte(n-1))
		dst = append(dst, lit[:n]...)
		lit = lit[n:]
	}

	return dst
}

// appendTwoByteRun appends a two-byte run chunk (length 3..18, offset 0..1023).
func appendTwoByteRun(dst []byte, length, offset int) []byte {
	return append(dst, byte((length-3)<<2)|byte(offset>>8), byte(offset))
}

// appendThreeByteRun appends a three-byte run chunk (length 4..67, offset 0..65535).
func appendThreeByteRun(dst []byte, length, offset int) []byte {
	return append(dst, 0x40|byte(length-4), byte(offset>>8), byte(offset))
}

func TestDecompressCanonicalStream(t *testing.T) {
	out, err := Decompress(canonicalStream, len(canonicalOutput))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, canonicalOutput) {
		t.Fatalf("got % x want % x", out, canonicalOutput)
	}
}

func TestDecompressShorterThanOutLen(t *testing.T) {
	// outLen is an upper bound: a shorter stream is not an error.
	out, err := Decompress(canonicalStream, len(canonicalOutput)+32)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, canonicalOutput) {
		t.Fatalf("got %d bytes, want %d", len(out), len(canonicalOutput))
	}
}

func TestDecompressBufferTooSmall(t *testing.T) {
	_, err := Decompress(canonicalStream, len(canonicalOutput)-1)
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("want ErrBufferTooSmall, got %v", err)
	}
}

func TestDecompressEmptyInput(t *testing.T) {
	out, err := Decompress(nil, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("want 0 bytes, got %d", len(out))
	}
}

func TestDecompressNegativeOutLen(t *testing.T) {
	if _, err := Decompress(canonicalStream, -1); !errors.Is(err, ErrNegativeOutLen) {
		t.Fatalf("want ErrNegativeOutLen, got %v", err)
	}
	if _, _, err := DecompressBlock(canonicalStream, -1); !errors.Is(err, ErrNegativeOutLen) {
		t.Fatalf("want ErrNegativeOutLen (block), got %v", err)
	}
}

func TestDecompressBlockIgnoresTrailingBytes(t *testing.T) {
	payload := append(append([]byte{}, canonicalStream...), "tail"...)

	out, consumed, err := DecompressBlock(payload, len(canonicalOutput))
	if err != nil {
		t.Fatal(err)
	}
	if consumed != len(canonicalStream) {
		t.Fatalf("consumed=%d want=%d", consumed, len(canonicalStream))
	}
	if !bytes.Equal(out, canonicalOutput) {
		t.Fatalf("got % x", out)
	}
}

func TestDecompressBlockShortStream(t *testing.T) {
	_, consumed, err := DecompressBlock(canonicalStream, len(canonicalOutput)+1)
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("want ErrBufferTooSmall, got %v", err)
	}
	if consumed != len(canonicalStream) {
		t.Fatalf("consumed=%d want=%d", consumed, len(canonicalStream))
	}
}

func TestDecompressFromReaderConsumed(t *testing.T) {
	payload := append(append([]byte{}, canonicalStream...), 0xDE, 0xAD)

	out, consumed, err := DecompressFromReader(bytes.NewReader(payload), len(canonicalOutput))
	if err != nil {
		t.Fatal(err)
	}
	if consumed != int64(len(canonicalStream)) {
		t.Fatalf("consumed=%d want=%d", consumed, len(canonicalStream))
	}
	if !bytes.Equal(out, canonicalOutput) {
		t.Fatalf("got % x", out)
	}
}

// onlyReader hides ReadByte so the bufio fallback path is taken.
type onlyReader struct {
	r io.Reader
}

func (o onlyReader) Read(p []byte) (int, error) { return o.r.Read(p) }

func TestDecompressFromReaderPlainReader(t *testing.T) {
	out, _, err := DecompressFromReader(onlyReader{bytes.NewReader(canonicalStream)}, len(canonicalOutput))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, canonicalOutput) {
		t.Fatalf("got % x", out)
	}
}

func TestDecompressFromReaderNilReader(t *testing.T) {
	if _, _, err := DecompressFromReader(nil, 8); !errors.Is(err, ErrNilReader) {
		t.Fatalf("want ErrNilReader, got %v", err)
	}
}

func TestDecompressCorruptTrailingChunk(t *testing.T) {
	// Valid stream followed by a truncated header: Decompress must surface
	// the corruption instead of reporting success or a size mismatch.
	payload := append(append([]byte{}, canonicalStream...), 0x40, 0x00)

	_, err := Decompress(payload, len(canonicalOutput))
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("want ErrTruncatedInput, got %v", err)
	}
}
