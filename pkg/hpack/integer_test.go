package hpack

import (
	"testing"

	"github.com/valyala/bytebufferpool"
)

func TestEncodeIntegerRFCExamples(t *testing.T) {
	tests := []struct {
		v          int
		prefixBits int
		base       byte
		want       []byte
	}{
		{10, 5, 0x00, []byte{10}},
		{1337, 5, 0x00, []byte{31, 154, 10}},
		{42, 8, 0x00, []byte{42}},
	}

	for _, tt := range tests {
		buf := bytebufferpool.Get()
		encodeInteger(buf, tt.v, tt.prefixBits, tt.base)
		if !bytesEqual(buf.B, tt.want) {
			t.Errorf("encodeInteger(%d, %d) = %v, want %v", tt.v, tt.prefixBits, buf.B, tt.want)
		}
		bytebufferpool.Put(buf)
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 10, 30, 31, 127, 128, 1337, 16383, 16384, maxIntegerValue} {
		for _, prefix := range []int{4, 5, 6, 7, 8} {
			buf := bytebufferpool.Get()
			encodeInteger(buf, v, prefix, 0)
			got, n, err := decodeInteger(buf.B, prefix)
			if err != nil {
				t.Fatalf("decodeInteger(encodeInteger(%d, %d)) error: %v", v, prefix, err)
			}
			if got != v {
				t.Errorf("round trip v=%d prefix=%d got %d", v, prefix, got)
			}
			if n != len(buf.B) {
				t.Errorf("round trip v=%d prefix=%d consumed %d, want %d", v, prefix, n, len(buf.B))
			}
			bytebufferpool.Put(buf)
		}
	}
}

func TestEncodeIntegerPanicsOverRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for value exceeding maxIntegerValue")
		}
	}()
	buf := bytebufferpool.Get()
	encodeInteger(buf, maxIntegerValue+1, 7, 0)
}

func TestDecodeIntegerTruncated(t *testing.T) {
	_, _, err := decodeInteger([]byte{0xff}, 5)
	if err == nil {
		t.Fatalf("expected error decoding truncated continuation")
	}
}

func TestDecodeIntegerTooLong(t *testing.T) {
	src := []byte{0x1f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	_, _, err := decodeInteger(src, 5)
	if err != errIntegerTooLong {
		t.Fatalf("decodeInteger long continuation = %v, want errIntegerTooLong", err)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
