package adc

// ADC format constants.
const (
	MaxOffset  = 0xFFFF        // Maximum encodable back-reference distance (16-bit, three-byte run).
	WindowSize = MaxOffset + 1 // Sliding window size: smallest history that serves any valid offset.

	PlainMaxSize     = 128 // Plain chunk payload length (encoded as 1..128).
	TwoByteMaxSize   = 18  // Two-byte run length (encoded as 3..18); offset up to 10 bits.
	ThreeByteMaxSize = 67  // Three-byte run length (encoded as 4..67); offset up to 16 bits.
)

// Header byte layout: bit 7 set = plain; else bit 6 set = three-byte run; else two-byte run.
const (
	plainFlag     = 0x80 // plain chunk marker
	threeByteFlag = 0x40 // three-byte run marker
	sizeMask      = 0x3F // run size bits of the header byte
	twoByteOffHi  = 0x03 // high 2 bits of a two-byte run offset
)
