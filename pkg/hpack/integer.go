package hpack

import (
	"errors"

	"github.com/valyala/bytebufferpool"
)

// errIntegerTooLong guards the test/tooling decoder against unbounded
// continuation sequences; it is not reachable from this package's own
// encoder output.
var errIntegerTooLong = errors.New("hpack: integer continuation too long")

// maxIntegerValue is the largest value this codec will encode (RFC 7541
// Section 5.1's 2^28-1 ceiling for a five-byte continuation). Anything
// larger is a programmer error: the caller handed the encoder a header
// list no conforming HTTP/2 peer could have generated.
const maxIntegerValue = 0x0FFFFFFF

// fitsInOneByte reports whether v can be written entirely within the
// prefix, i.e. without any continuation bytes.
func fitsInOneByte(v, prefixBits int) bool {
	return v < (1<<uint(prefixBits))-1
}

// encodeInteger writes v under an N-bit-prefix integer encoding (RFC 7541
// Section 5.1). base must already have its low prefixBits bits clear.
func encodeInteger(dst *bytebufferpool.ByteBuffer, v, prefixBits int, base byte) {
	if v > maxIntegerValue {
		panic("hpack: integer value exceeds encodable range")
	}

	max := (1 << uint(prefixBits)) - 1
	if v < max {
		dst.WriteByte(base | byte(v))
		return
	}

	dst.WriteByte(base | byte(max))
	v -= max
	for v >= 128 {
		dst.WriteByte(byte(v%128) | 0x80)
		v /= 128
	}
	dst.WriteByte(byte(v))
}

// maxIntegerContinuationBytes bounds decodeInteger's continuation loop so a
// malformed block cannot spin forever; five 7-bit groups is enough to cover
// every value encodeInteger can ever produce (28 bits of payload).
const maxIntegerContinuationBytes = 5

// decodeInteger reads an N-bit-prefix integer starting at src[0]. It
// returns the decoded value and the number of bytes consumed.
func decodeInteger(src []byte, prefixBits int) (value, consumed int, err error) {
	if len(src) == 0 {
		return 0, 0, ErrInvalidInteger
	}

	mask := (1 << uint(prefixBits)) - 1
	n := int(src[0]) & mask
	if n < mask {
		return n, 1, nil
	}

	shift := uint(0)
	idx := 1
	for {
		if idx >= len(src) {
			return 0, 0, ErrInvalidInteger
		}
		if idx-1 >= maxIntegerContinuationBytes {
			return 0, 0, errIntegerTooLong
		}
		b := src[idx]
		n += int(b&0x7f) << shift
		idx++
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	if n > maxIntegerValue {
		return 0, 0, ErrInvalidInteger
	}
	return n, idx, nil
}
