package px

import (
	"bytes"
	"fmt"
	"io"
)

// Decompress decodes a PX container (PKDPX or AT4PX, auto-detected from the
// magic) and returns the decompressed bytes. The reader is rewound to the
// start first; it must support seeking so consumed payload bytes can be
// checked against the container-length field.
func Decompress(r io.ReadSeeker) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var magic [MagicLen]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}

	containerLen, err := readU16(r)
	if err != nil {
		return nil, err
	}

	var flags controlFlags
	if _, err := io.ReadFull(r, flags[:]); err != nil {
		return nil, err
	}

	var (
		outLen    uint32
		headerLen int64
	)
	switch string(magic[:]) {
	case MagicPKDPX:
		outLen, err = readU32(r)
		headerLen = HeaderLenPKDPX
	case MagicAT4PX:
		var v uint16
		v, err = readU16(r)
		outLen = uint32(v)
		headerLen = HeaderLenAT4PX
	default:
		return nil, InvalidMagicError(magic)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("magic", string(magic[:])).
		Uint16("container_length", containerLen).
		Uint32("decompressed_length", outLen).
		Msg("decompressing px container")

	// Confine decoding reads to the compressed payload: everything after the
	// header, up to the end of the stream.
	payloadStart, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	payload, err := newSubReadSeeker(r, payloadStart, end-payloadStart)
	if err != nil {
		return nil, err
	}

	return decompressPayload(payload, &flags, outLen, containerLen, headerLen)
}

// DecompressBytes decodes a PX container from a byte slice.
func DecompressBytes(src []byte) ([]byte, error) {
	return Decompress(bytes.NewReader(src))
}

// decompressPayload runs the command-byte decode loop over the payload view
// and returns the reconstructed buffer of exactly outLen bytes.
//
// Each command byte is consumed MSB-first; a 1 bit copies one literal byte,
// a 0 bit reads a mode byte whose upper nibble selects between nybble-pair
// synthesis (nibble found in the control-flag table) and an LZ back-reference
// (not found). Output growth is capped at outLen after every appended byte,
// abandoning the rest of the current command byte or copy run.
func decompressPayload(r io.ReadSeeker, flags *controlFlags, outLen uint32, containerLen uint16, headerLen int64) ([]byte, error) {
	declared := int(outLen)
	out := make([]byte, 0, declared)

main:
	for {
		cmd, err := readU8(r)
		if err != nil {
			return nil, err
		}
		log.Trace().Uint8("command", cmd).Int("output", len(out)).Msg("command byte")

		for bit := 0; bit < FlagBits; bit++ {
			b, err := readU8(r)
			if err != nil {
				return nil, err
			}

			if getBit(cmd, bit) {
				out = append(out, b)
			} else {
				nbHigh := b >> 4
				nbLow := b & 0x0F

				if idx, ok := flags.find(nbHigh); ok {
					b1, b2 := nibblePair(idx, nbLow)
					out = append(out, b1)
					if len(out) < declared {
						out = append(out, b2)
					}
				} else {
					ext, err := readU8(r)
					if err != nil {
						return nil, err
					}

					// Relative offset is always in [-4096, -1]: a true
					// back-reference into already-decoded output.
					offsetRel := -Window + int(nbLow)<<8 + int(ext)
					src := len(out) + offsetRel
					length := int(nbHigh) + 3
					log.Trace().
						Int("offset", offsetRel).
						Int("length", length).
						Int("output", len(out)).
						Msg("back-reference")

					// Byte-at-a-time so each appended byte is visible to the
					// next read: source and destination may overlap when the
					// offset is smaller than the copy length.
					for k := 0; k < length && len(out) < declared; k++ {
						if src+k < 0 || src+k >= len(out) {
							return nil, fmt.Errorf("%w: index %d, output %d", ErrLookBehindUnderrun, src+k, len(out))
						}
						out = append(out, out[src+k])
					}
				}
			}

			if len(out) >= declared {
				break main
			}
		}
	}

	consumed, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int64("consumed", consumed+headerLen).
		Uint16("container_length", containerLen).
		Int("output", len(out)).
		Msg("decode loop finished")

	if int64(containerLen) != consumed+headerLen {
		return nil, fmt.Errorf("%w: container_length=%d consumed=%d", ErrInvalidDecompressedLength, containerLen, consumed+headerLen)
	}

	return out, nil
}
