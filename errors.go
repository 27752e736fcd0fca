// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/px

package px

import (
	"errors"
	"fmt"
)

// Package errors. Use errors.New for static messages; errors that must carry
// the offending value are typed so callers can retrieve it with errors.As.
var (
	ErrInvalidDecompressedLength = errors.New("container length does not match consumed payload")
	ErrLookBehindUnderrun        = errors.New("back-reference points outside decoded output")
	ErrNilReader                 = errors.New("reader is nil")
	ErrEmptyInput                = errors.New("input is empty")
)

// InvalidMagicError is returned when the first 5 bytes match neither PKDPX
// nor AT4PX. The value holds the offending magic bytes.
type InvalidMagicError [MagicLen]byte

func (e InvalidMagicError) Error() string {
	return fmt.Sprintf("invalid header magic % x: want %s or %s", e[:], MagicPKDPX, MagicAT4PX)
}

// FileTooLongError is returned by the naive encoder when the pre-padding
// container length does not fit the u16 length field. The value is the
// offending length in bytes.
type FileTooLongError int

func (e FileTooLongError) Error() string {
	return fmt.Sprintf("input too long to compress: container is %d bytes, max %d", int(e), maxContainerLen)
}
