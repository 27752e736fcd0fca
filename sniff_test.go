package px

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSniffNaiveOutput(t *testing.T) {
	enc, err := CompressNaiveBytes([]byte("probe me"))
	require.NoError(t, err)

	ok, err := SniffBytes(enc)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSniffMagicOnly(t *testing.T) {
	// Only the magic is inspected; the rest can be anything.
	for _, magic := range []string{MagicPKDPX, MagicAT4PX} {
		ok, err := SniffBytes(append([]byte(magic), 0xDE, 0xAD, 0xBE, 0xEF))
		require.NoError(t, err)
		require.True(t, ok, magic)
	}

	ok, err := SniffBytes([]byte("HELLO world"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSniffShortStream(t *testing.T) {
	// Under 4 bytes is never PX, without error.
	ok, err := SniffBytes([]byte("PKD"))
	require.NoError(t, err)
	require.False(t, ok)

	// Exactly 4 bytes passes the length gate but fails the 5-byte read.
	_, err = SniffBytes([]byte("PKDP"))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSniffNilReader(t *testing.T) {
	_, err := Sniff(nil)
	require.ErrorIs(t, err, ErrNilReader)
}

func TestSniffDoesNotRestorePosition(t *testing.T) {
	r := bytes.NewReader(append([]byte(MagicPKDPX), 1, 2, 3))

	ok, err := Sniff(r)
	require.NoError(t, err)
	require.True(t, ok)

	pos, err := r.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	require.Equal(t, int64(MagicLen), pos)
}
