package hpack

import "testing"

func TestDecideExactMatchIndexes(t *testing.T) {
	tbl := newTable(4096)
	o := decide(tbl, Method("GET"), defaultNeverIndex)
	if o.kind != outcomeIndexed || o.index != 2 {
		t.Fatalf("decide(:method GET) = %+v, want outcomeIndexed index 2", o)
	}
}

func TestDecideNameOnlyInsertsValue(t *testing.T) {
	tbl := newTable(4096)
	o := decide(tbl, Path("/sample/path"), defaultNeverIndex)
	if o.kind != outcomeInsertedValue {
		t.Fatalf("decide(:path /sample/path) = %+v, want outcomeInsertedValue", o)
	}
	if tbl.Size() == 0 {
		t.Fatalf("expected insertion into dynamic table")
	}
}

func TestDecideNoMatchInserts(t *testing.T) {
	tbl := newTable(4096)
	o := decide(tbl, Field("custom-key", "custom-value"), defaultNeverIndex)
	if o.kind != outcomeInserted {
		t.Fatalf("decide(custom-key) = %+v, want outcomeInserted", o)
	}
}

func TestDecideSensitiveNeverIndexes(t *testing.T) {
	tbl := newTable(4096)
	o := decide(tbl, SensitiveField("authorization", "Bearer secret"), defaultNeverIndex)
	if o.kind != outcomeName || o.index != 23 || !o.sensitive {
		t.Fatalf("decide(sensitive) = %+v, want outcomeName index 23 (static authorization) sensitive", o)
	}
	if tbl.Size() != 0 {
		t.Errorf("sensitive header must not be inserted, table size = %d", tbl.Size())
	}
}

func TestDecideSensitiveWithKnownNameEmitsNameForm(t *testing.T) {
	tbl := newTable(4096)
	tbl.Insert("x-session", "old-value")

	o := decide(tbl, SensitiveField("x-session", "new-secret"), defaultNeverIndex)
	if o.kind != outcomeName || !o.sensitive {
		t.Fatalf("decide(sensitive, known name) = %+v, want outcomeName sensitive", o)
	}
}

func TestDecideNeverIndexContentLength(t *testing.T) {
	tbl := newTable(4096)
	o := decide(tbl, Field("content-length", "1024"), defaultNeverIndex)
	if o.kind != outcomeName || o.index != 28 || o.sensitive {
		t.Fatalf("decide(content-length) = %+v, want outcomeName index 28 (static content-length) not sensitive", o)
	}
	if tbl.Size() != 0 {
		t.Errorf("content-length must never be inserted, table size = %d", tbl.Size())
	}
}

func TestDecideUndersizedEntryNotIndexed(t *testing.T) {
	tbl := newTable(10) // too small for any real entry
	o := decide(tbl, Field("custom-key", "a much too long value to fit"), defaultNeverIndex)
	if o.kind != outcomeNotIndexed {
		t.Fatalf("decide(oversized) = %+v, want outcomeNotIndexed", o)
	}
}

func TestDecideCustomNeverIndexPredicate(t *testing.T) {
	tbl := newTable(4096)
	always := func(name HeaderName, value string) bool { return true }

	o := decide(tbl, Field("x-anything", "value"), always)
	if o.kind != outcomeNotIndexed {
		t.Fatalf("decide with always-never-index predicate = %+v, want outcomeNotIndexed", o)
	}
}
