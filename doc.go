/*
Package adc implements ADC (Apple Data Compression) decompression.

ADC is a byte-oriented run-length scheme used inside Apple disk images (UDIF
DMG block type COMPRESS_ADC). A stream is a sequence of self-describing
chunks; the header byte's two high bits pick the chunk kind:

	bit7=1          plain: (b0&0x7F)+1 literal bytes follow in the stream
	bit7=0, bit6=1  three-byte run: length (b0&0x3F)+4, 16-bit big-endian offset in bytes 1-2
	bit7=0, bit6=0  two-byte run: length ((b0&0x3F)>>2)+3, offset ((b0&0x3)<<8)|b1

Run offsets are backward distances from the byte being produced (0 = the
previous byte), so runs may overlap themselves (RLE). The maximum offset is
65535; decoding keeps a 64 KiB sliding window of produced history and never
buffers more, whatever the output size. There is no encoder: the format is
decode-only here, as in Apple's tooling.

Use NewReader(r) for streaming decompression through the io.Reader contract.
Use Decompress(src, outLen) to decode a whole stream into at most outLen bytes.
Use DecompressBlock(src, outLen) to decode one block and get consumed input bytes.
Use DecompressFromReader(r, outLen) to decode one block from a stream without reading to EOF.

# Examples

Stream decompression:

	d := adc.NewReader(f)
	if _, err := io.Copy(dst, d); err != nil {
		return err
	}

Decompress a whole in-memory stream (output size known from the container):

	out, err := adc.Decompress(encoded, expectedLen)
	if err != nil {
		return err
	}

Decode one compressed block from a larger stream and continue after it:

	out, consumed, err := adc.DecompressBlock(data, expectedLen)
	if err != nil {
		return err
	}
	data = data[consumed:]

Errors tell corruption apart from size mismatches: ErrTruncatedInput and
ErrInvalidOffset mean the stream is damaged, ErrBufferTooSmall means outLen
and the stream disagree, and a clean end of input is io.EOF from Reader.Read.
*/
package adc
