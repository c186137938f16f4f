package hpack

import "testing"

func TestGetStaticEntry(t *testing.T) {
	tests := []struct {
		index int
		want  staticEntry
	}{
		{1, staticEntry{":authority", ""}},
		{2, staticEntry{":method", "GET"}},
		{3, staticEntry{":method", "POST"}},
		{8, staticEntry{":status", "200"}},
		{61, staticEntry{"www-authenticate", ""}},
	}

	for _, tt := range tests {
		got := getStaticEntry(tt.index)
		if got != tt.want {
			t.Errorf("getStaticEntry(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestFindStatic(t *testing.T) {
	tests := []struct {
		name      HeaderName
		value     string
		wantIndex int
		wantExact bool
	}{
		{":method", "GET", 2, true},
		{":method", "POST", 3, true},
		{":method", "DELETE", 2, false},
		{":status", "200", 8, true},
		{":status", "418", 8, false},
		{"custom-header", "value", 0, false},
	}

	for _, tt := range tests {
		gotIndex, gotExact := findStatic(tt.name, tt.value)
		if gotIndex != tt.wantIndex || gotExact != tt.wantExact {
			t.Errorf("findStatic(%q, %q) = (%d, %v), want (%d, %v)",
				tt.name, tt.value, gotIndex, gotExact, tt.wantIndex, tt.wantExact)
		}
	}
}

func TestStaticTableSize(t *testing.T) {
	if staticTableSize != 61 {
		t.Fatalf("staticTableSize = %d, want 61", staticTableSize)
	}
}
