package px

import (
	"encoding/binary"
	"io"
)

// getBit extracts bit id from b, with id 0 being the most significant bit.
// Command bytes are consumed MSB-first.
func getBit(b byte, id int) bool {
	return (b>>(7-id))&1 == 1
}

// readU8 reads one byte from r.
func readU8(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return buf[0], nil
}

// readU16 reads a little-endian uint16 from r.
func readU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(buf[:]), nil
}

// readU32 reads a little-endian uint32 from r.
func readU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(buf[:]), nil
}
