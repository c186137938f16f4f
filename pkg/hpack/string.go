package hpack

import (
	"github.com/valyala/bytebufferpool"

	"github.com/yourusername/hpackenc/internal/huffman"
)

// encodeString writes a Huffman-coded octet string (RFC 7541 Section 5.2):
// a 7-bit-prefix length with the Huffman flag set, followed by the coded
// bytes. The Huffman output length is data-dependent and only known after
// encoding, so this reserves a one-byte placeholder, encodes in place, and
// patches the head afterwards.
func encodeString(dst *bytebufferpool.ByteBuffer, s []byte) {
	if len(s) == 0 {
		dst.WriteByte(0)
		return
	}

	p := len(dst.B)
	dst.WriteByte(0) // placeholder for the length head
	huffman.Encode(dst, s)
	h := len(dst.B) - p - 1

	if fitsInOneByte(h, 7) {
		dst.B[p] = 0x80 | byte(h)
		return
	}

	scratch := bytebufferpool.Get()
	encodeInteger(scratch, h, 7, 0x80)
	head := scratch.B
	l := len(head)

	// Make room for the (l-1) extra head bytes, then slide the already
	// written Huffman payload right by that much. Go's copy is safe on
	// overlapping slices, so this is a single pass in each direction.
	dst.B = append(dst.B, make([]byte, l-1)...)
	copy(dst.B[p+l:p+l+h], dst.B[p+1:p+1+h])
	copy(dst.B[p:p+l], head)

	bytebufferpool.Put(scratch)
}

// decodeString is the counterpart used by the test/tooling Decoder. Unlike
// encodeString it accepts both the Huffman-coded and plain-octet forms, as
// RFC 7541 Section 5.2 requires of any conforming decoder.
func decodeString(src []byte) (value []byte, consumed int, err error) {
	if len(src) == 0 {
		return nil, 0, ErrInvalidString
	}

	isHuffman := src[0]&0x80 != 0
	length, n, err := decodeInteger(src, 7)
	if err != nil {
		return nil, 0, err
	}
	if n+length > len(src) {
		return nil, 0, ErrInvalidString
	}

	raw := src[n : n+length]
	if !isHuffman {
		out := make([]byte, length)
		copy(out, raw)
		return out, n + length, nil
	}

	decoded, err := huffman.Decode(raw)
	if err != nil {
		return nil, 0, err
	}
	return decoded, n + length, nil
}
