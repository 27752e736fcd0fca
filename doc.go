/*
Package px implements the PX family of compressed containers (PKDPX and AT4PX).

Container: 5-byte magic, u16 container length (total size including header),
9-byte control-flag table, then the decompressed length — u32 for PKDPX
(20-byte header) or u16 for AT4PX (18-byte header) — followed by the payload.
All integers are little-endian.

Payload: one command byte per 8 data units, bits consumed MSB-first.
Bit 1 = literal (1 byte copied to output). Bit 0 = mode byte: if its upper
nibble appears in the control-flag table, two bytes are synthesized from the
lower nibble (index-dependent nibble arithmetic); otherwise it starts an LZ
back-reference with a second raw byte — offset -4096 + low_nibble*256 + byte
(always negative, window 4096), length high_nibble + 3 (3..18), copied
byte-by-byte so overlapping self-references repeat correctly.

Decoding stops once the declared decompressed length is reached, then checks
that container_length equals consumed payload plus header length.

Use Decompress(r) / DecompressBytes(src) for a full decode (variant is
auto-detected from the magic).
Use Sniff(r) / SniffBytes(src) to probe the magic only.
Use CompressNaive(r) / CompressNaiveBytes(src) to build an all-literal PKDPX
container (valid, but no compression is attempted).
Use SetLogger to get per-container debug and per-command trace output.

# Examples

Decompress a container from a byte slice:

	out, err := px.DecompressBytes(data)
	if err != nil {
		return err
	}

Probe and decode from a stream:

	ok, err := px.Sniff(f)
	if err != nil {
		return err
	}
	if ok {
		out, err := px.Decompress(f)
		if err != nil {
			return err
		}
		_ = out
	}

Round-trip with the naive encoder:

	enc, err := px.CompressNaiveBytes(data)
	if err != nil {
		return err
	}
	dec, err := px.DecompressBytes(enc)
	if err != nil {
		return err
	}
	// dec equals data

Inspect a failed decode:

	var magic px.InvalidMagicError
	if errors.As(err, &magic) {
		fmt.Printf("not a px container: % x\n", magic[:])
	}
*/
package px
