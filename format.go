package px

// PX container format constants.
const (
	MagicPKDPX = "PKDPX" // Variant with a u32 decompressed-length field.
	MagicAT4PX = "AT4PX" // Variant with a u16 decompressed-length field.

	MagicLen = 5 // Both magics are 5 bytes.

	// Header lengths used in the final consumed-byte accounting check:
	// magic (5) + container length (2) + control flags (9) + decompressed length.
	HeaderLenPKDPX = 20 // 4-byte decompressed-length field.
	HeaderLenAT4PX = 18 // 2-byte decompressed-length field.

	ControlFlagCount = 9 // Control-flag table entries (marker nibbles).

	FlagBits = 8    // Bits per command byte (one per data unit: literal or encoded).
	Window   = 4096 // Back-reference window (offsets are relative to -4096).
	MaxCopy  = 18   // Maximum back-reference copy length (encoded as 3..18).

	PadByte     = 0xAA // Trailer fill emitted by the naive encoder.
	PadBoundary = 16   // Containers are padded to a multiple of 16 bytes.

	literalCommand = 0xFF // Command byte meaning "next 8 bytes are literals".

	// maxContainerLen is the largest value the u16 container-length field can hold.
	maxContainerLen = 0xFFFF
)
