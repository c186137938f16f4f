// Package huffman implements the canonical Huffman code HPACK uses to
// compress header octet strings (RFC 7541 Appendix B). It is the "external
// collaborator" the hpack encoder treats as a pure function: Encode never
// reads encoder or table state, and Decode exists only so the rest of this
// module can round-trip its own output in tests and in hpackctl.
package huffman

import (
	"errors"

	"github.com/valyala/bytebufferpool"
)

// ErrInvalidCode is returned by Decode when the input bit stream does not
// resolve to a valid RFC 7541 Huffman codeword.
var ErrInvalidCode = errors.New("huffman: invalid code encountered")

// ErrEOSInStream is returned by Decode when the encoded data contains the
// end-of-string symbol as an actual decoded character rather than as
// trailing padding.
var ErrEOSInStream = errors.New("huffman: EOS symbol found in compressed data")

// EncodedLen returns the number of bytes Encode would append for src,
// without actually encoding it. Useful for callers that want to reserve
// space up front.
func EncodedLen(src []byte) int {
	bits := 0
	for _, b := range src {
		bits += int(codes[b].nbits)
	}
	return (bits + 7) / 8
}

// Encode appends the Huffman encoding of src to dst. It never reads
// anything but codes and src: it is a pure function over its arguments.
func Encode(dst *bytebufferpool.ByteBuffer, src []byte) {
	var current uint64
	var nbits uint

	for _, b := range src {
		c := codes[b]
		current = (current << uint(c.nbits)) | uint64(c.bits)
		nbits += uint(c.nbits)

		for nbits >= 8 {
			nbits -= 8
			dst.WriteByte(byte(current >> nbits))
		}
	}

	if nbits > 0 {
		// Pad the final partial byte with the high-order bits of the EOS
		// code, per RFC 7541 Section 5.2.
		eos := codes[eosSymbol]
		current = (current << uint(8-nbits)) | uint64(eos.bits)>>(uint(eos.nbits)-(8-nbits))
		dst.WriteByte(byte(current))
	}
}

// Decode reverses Encode. It is intentionally unhardened beyond rejecting
// malformed bit streams: this decoder exists for round-tripping this
// module's own output in tests and in hpackctl, not as a
// production-grade adversarial-input decoder.
func Decode(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src)*2)

	node := root
	bitsSinceLeaf := 0
	allOnesSinceLeaf := true

	for _, b := range src {
		for bit := 7; bit >= 0; bit-- {
			set := (b>>uint(bit))&1 == 1
			if set {
				node = node.one
			} else {
				node = node.zero
				allOnesSinceLeaf = false
			}
			if node == nil {
				return nil, ErrInvalidCode
			}
			bitsSinceLeaf++

			if node.isLeaf {
				if node.symbol == eosSymbol {
					return nil, ErrEOSInStream
				}
				out = append(out, byte(node.symbol))
				node = root
				bitsSinceLeaf = 0
				allOnesSinceLeaf = true
			}
		}
	}

	// Any bits left over must be a strict prefix of the EOS code: all
	// ones, and fewer than 8 of them (a full byte of padding means the
	// encoder produced an extra, spurious byte).
	if node != root && (!allOnesSinceLeaf || bitsSinceLeaf >= 8) {
		return nil, ErrInvalidCode
	}

	return out, nil
}
