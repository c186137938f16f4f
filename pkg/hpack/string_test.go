package hpack

import (
	"bytes"
	"strings"
	"testing"

	"github.com/valyala/bytebufferpool"
)

func TestEncodeStringEmpty(t *testing.T) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	encodeString(buf, nil)
	if !bytes.Equal(buf.B, []byte{0x00}) {
		t.Errorf("encodeString(nil) = %v, want [0x00]", buf.B)
	}
}

func TestEncodeDecodeStringRoundTrip(t *testing.T) {
	inputs := []string{
		"www.example.com",
		"no-cache",
		"custom-key",
		"custom-value",
		"302",
		"a",
		"",
		"a value with spaces and punctuation!",
	}

	for _, in := range inputs {
		buf := bytebufferpool.Get()
		encodeString(buf, []byte(in))

		got, n, err := decodeString(buf.B)
		if err != nil {
			t.Fatalf("decodeString(encodeString(%q)) error: %v", in, err)
		}
		if n != len(buf.B) {
			t.Errorf("%q: consumed %d, want %d", in, n, len(buf.B))
		}
		if string(got) != in {
			t.Errorf("%q: round trip produced %q", in, got)
		}

		bytebufferpool.Put(buf)
	}
}

func TestEncodeStringAlwaysSetsHuffmanFlag(t *testing.T) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	encodeString(buf, []byte("www.example.com"))
	if buf.B[0]&0x80 == 0 {
		t.Errorf("expected Huffman flag set in length head, got %08b", buf.B[0])
	}
}

func TestDecodeStringPlainLiteral(t *testing.T) {
	// 7-bit-prefix length 5, Huffman bit clear, then the raw bytes "hello".
	src := append([]byte{0x05}, []byte("hello")...)
	got, n, err := decodeString(src)
	if err != nil {
		t.Fatalf("decodeString error: %v", err)
	}
	if n != len(src) || string(got) != "hello" {
		t.Errorf("decodeString(plain) = %q, %d, want hello, %d", got, n, len(src))
	}
}

// TestEncodeDecodeStringRoundTripMultiByteLength forces the Huffman output
// past 126 bytes, so the 7-bit length prefix no longer fits in its single
// placeholder byte and encodeString must grow the length head and slide the
// already-written payload right to make room (string.go's else branch).
// Every RFC 7541 Appendix B code is at least 5 bits wide, so 300 repeated
// characters always Huffman-encode to at least 300*5/8 = 187 bytes,
// comfortably past the 126-byte one-byte-prefix ceiling regardless of which
// character is chosen.
func TestEncodeDecodeStringRoundTripMultiByteLength(t *testing.T) {
	in := strings.Repeat("a", 300) + strings.Repeat("Z9!", 40)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	encodeString(buf, []byte(in))

	if buf.B[0]&0x80 == 0 {
		t.Fatalf("expected Huffman flag set in length head, got %08b", buf.B[0])
	}
	if buf.B[0]&0x7f != 0x7f {
		t.Fatalf("expected a multi-byte length prefix (first byte's low 7 bits all set), got %08b", buf.B[0])
	}

	got, n, err := decodeString(buf.B)
	if err != nil {
		t.Fatalf("decodeString error: %v", err)
	}
	if n != len(buf.B) {
		t.Errorf("consumed %d, want %d", n, len(buf.B))
	}
	if string(got) != in {
		t.Errorf("round trip produced a value of length %d, want %d", len(got), len(in))
	}
}

func TestDecodeStringTruncated(t *testing.T) {
	_, _, err := decodeString([]byte{0x05, 'h', 'i'})
	if err == nil {
		t.Fatalf("expected error decoding truncated string")
	}
}
