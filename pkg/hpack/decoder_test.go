package hpack

import (
	"testing"

	"github.com/valyala/bytebufferpool"
)

func TestDecoderHandlesSizeUpdateFrame(t *testing.T) {
	enc := NewDefault()
	enc.UpdateMaxSize(256)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	enc.Encode([]Header{Field("custom-key", "custom-value")}, buf)

	dec := NewDecoder(DefaultMaxDynamicTableSize)
	got, err := dec.Decode(buf.B)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Decode returned %d headers, want 1", len(got))
	}
	if dec.table.MaxSize() != 256 {
		t.Errorf("decoder table MaxSize() = %d, want 256", dec.table.MaxSize())
	}
}

func TestDecoderRejectsUnknownIndex(t *testing.T) {
	dec := NewDecoder(DefaultMaxDynamicTableSize)
	_, err := dec.Decode([]byte{0xff, 0x00}) // index far beyond any live entry
	if err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
}

func TestDecoderRejectsZeroIndexedField(t *testing.T) {
	dec := NewDecoder(DefaultMaxDynamicTableSize)
	_, err := dec.Decode([]byte{0x80}) // indexed field, index 0 is invalid
	if err == nil {
		t.Fatalf("expected error for index 0")
	}
}

func TestDecoderNeverIndexedMarksSensitive(t *testing.T) {
	enc := NewDefault()
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	enc.Encode([]Header{SensitiveField("authorization", "Bearer xyz")}, buf)

	dec := NewDecoder(DefaultMaxDynamicTableSize)
	got, err := dec.Decode(buf.B)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(got) != 1 || !got[0].Value.Sensitive {
		t.Fatalf("Decode = %+v, want a single sensitive header", got)
	}
}

func TestDecoderLiteralWithoutIndexingDoesNotInsert(t *testing.T) {
	enc := NewDefault()
	enc.SetNeverIndexPredicate(func(name HeaderName, value string) bool { return true })

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	enc.Encode([]Header{Field("x-trace-id", "abc123")}, buf)

	dec := NewDecoder(DefaultMaxDynamicTableSize)
	if _, err := dec.Decode(buf.B); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if dec.table.Size() != 0 {
		t.Errorf("literal-without-indexing must not populate the table, size = %d", dec.table.Size())
	}
}
