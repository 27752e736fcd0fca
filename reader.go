package px

import (
	"errors"
	"io"
)

// errSeekBeforeStart is returned by subReadSeeker.Seek for a negative target.
var errSeekBeforeStart = errors.New("seek before start of sub-range")

// subReadSeeker exposes a sub-range [off, off+n) of a seekable byte source as
// its own io.ReadSeeker: position 0 maps to off in the base reader and reads
// never cross off+n. Decoding uses it to confine reads to the compressed
// payload and to account consumed payload bytes via Seek(0, io.SeekCurrent).
type subReadSeeker struct {
	base io.ReadSeeker // The underlying byte source.
	off  int64         // Start of the sub-range in the base reader.
	n    int64         // Length of the sub-range.
	pos  int64         // Current position within the sub-range.
}

// newSubReadSeeker positions base at off and returns a view of [off, off+n).
func newSubReadSeeker(base io.ReadSeeker, off, n int64) (*subReadSeeker, error) {
	if _, err := base.Seek(off, io.SeekStart); err != nil {
		return nil, err
	}

	return &subReadSeeker{base: base, off: off, n: n}, nil
}

// Read reads from the base reader, truncated to the sub-range.
func (s *subReadSeeker) Read(p []byte) (int, error) {
	if s.pos >= s.n {
		return 0, io.EOF
	}

	if remaining := s.n - s.pos; int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := s.base.Read(p)
	s.pos += int64(n)

	return n, err
}

// Seek sets the position within the sub-range and moves the base reader to
// the corresponding absolute position. Seeking past the end is allowed, as
// with any io.Seeker; subsequent reads return io.EOF.
func (s *subReadSeeker) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = s.n + offset
	default:
		return 0, errors.New("invalid seek whence")
	}

	if abs < 0 {
		return 0, errSeekBeforeStart
	}

	if _, err := s.base.Seek(s.off+abs, io.SeekStart); err != nil {
		return 0, err
	}

	s.pos = abs

	return abs, nil
}
