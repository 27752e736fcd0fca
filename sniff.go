package px

import (
	"bytes"
	"io"
)

// Sniff reports whether r holds a PX container (PKDPX or AT4PX), judging by
// the magic only: no structural validation is done, so another format sharing
// a magic would pass. Streams shorter than 4 bytes are never PX. The reader
// position is not restored.
func Sniff(r io.ReadSeeker) (bool, error) {
	if r == nil {
		return false, ErrNilReader
	}

	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return false, err
	}
	if size < 4 {
		return false, nil
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false, err
	}

	var magic [MagicLen]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return false, err
	}

	m := string(magic[:])

	return m == MagicPKDPX || m == MagicAT4PX, nil
}

// SniffBytes reports whether src holds a PX container.
func SniffBytes(src []byte) (bool, error) {
	return Sniff(bytes.NewReader(src))
}
