package px

import (
	"encoding/binary"
	"io"
)

// CompressNaiveBytes wraps src into a PKDPX container without compressing:
// an all-literal bitstream (0xFF command byte before every 8 literals), an
// all-zero control-flag table, 0xAA padding to a 16-byte boundary, and the
// container-length field patched in after the fact. Output always decodes
// back to src but is slightly larger than it.
func CompressNaiveBytes(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	// Header + one command byte per 8 literals + padding; slight overestimate.
	out := make([]byte, 0, HeaderLenPKDPX+len(src)+(len(src)+7)/8+PadBoundary)

	out = append(out, MagicPKDPX...)
	out = append(out, 0, 0) // container length, patched below
	out = append(out, make([]byte, ControlFlagCount)...)

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(src))) // #nosec G115 -- longer input fails the container-length check below
	out = append(out, lenBuf[:]...)

	for i, b := range src {
		if i%FlagBits == 0 {
			out = append(out, literalCommand)
		}
		out = append(out, b)
	}

	// The length field records the pre-padding size; padding is trailer only.
	containerLen := len(out)
	for len(out)%PadBoundary != 0 {
		out = append(out, PadByte)
	}

	if containerLen > maxContainerLen {
		return nil, FileTooLongError(containerLen)
	}

	binary.LittleEndian.PutUint16(out[MagicLen:MagicLen+2], uint16(containerLen)) // #nosec G115 -- checked above

	log.Debug().
		Int("input", len(src)).
		Int("container_length", containerLen).
		Int("padded", len(out)).
		Msg("built naive px container")

	return out, nil
}

// CompressNaive reads the whole stream from the start and wraps it with
// CompressNaiveBytes. No encoding logic of its own.
func CompressNaive(r io.ReadSeeker) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return CompressNaiveBytes(src)
}
