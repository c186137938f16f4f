package hpack

// outcomeKind tags how a single header was resolved by the indexing
// policy (RFC 7541 Section 6).
type outcomeKind int

const (
	outcomeIndexed outcomeKind = iota
	outcomeInsertedValue
	outcomeInserted
	outcomeName
	outcomeNotIndexed
)

// outcome carries everything the encoder driver needs to serialize a
// decided header onto the wire; it never itself touches the destination
// buffer so the policy stays a pure function of (header, table).
type outcome struct {
	kind      outcomeKind
	index     int // meaningful for outcomeIndexed, outcomeInsertedValue, outcomeName
	sensitive bool
	header    Header // original header, for name/value payload bytes
}

// NeverIndexPredicate decides whether a header name's value should always
// be carried as a non-indexed literal, independent of the sensitive flag.
// RFC 7541 leaves this as policy; an Encoder built by New uses
// defaultNeverIndex.
type NeverIndexPredicate func(name HeaderName, value string) bool

// defaultNeverIndex carries the minimum never-index set: headers whose
// values are either highly variable (making indexing useless) or
// sensitive by convention even when not marked so explicitly by the
// caller.
func defaultNeverIndex(name HeaderName, value string) bool {
	switch name {
	case "content-length", "date", "authorization", "set-cookie":
		return true
	case "cookie":
		return len(value) < 20
	default:
		return false
	}
}

// decide implements RFC 7541's indexing decision tree. It may mutate t
// (insertion, which may cascade eviction).
func decide(t *table, h Header, neverIndex NeverIndexPredicate) outcome {
	name, value := h.Name, h.Value.S

	// Rule 1: sensitive values never index.
	if h.Value.Sensitive {
		if idx, _, ok := t.FindName(name); ok {
			return outcome{kind: outcomeName, index: idx, sensitive: true, header: h}
		}
		return outcome{kind: outcomeNotIndexed, sensitive: true, header: h}
	}

	// Rule 2: policy-designated never-indexed names.
	if neverIndex != nil && neverIndex(name, value) {
		if idx, _, ok := t.FindName(name); ok {
			return outcome{kind: outcomeName, index: idx, header: h}
		}
		return outcome{kind: outcomeNotIndexed, header: h}
	}

	// Rule 3: exact (name, value) match.
	if idx, ok := t.FindFull(name, value); ok {
		return outcome{kind: outcomeIndexed, index: idx, header: h}
	}

	// Rules 4-5: name-only match.
	if idx, _, ok := t.FindName(name); ok {
		if t.Fits(name, value) {
			t.Insert(name, value)
			return outcome{kind: outcomeInsertedValue, index: idx, header: h}
		}
		return outcome{kind: outcomeName, index: idx, header: h}
	}

	// Rules 6-7: no match at all.
	if t.Fits(name, value) {
		t.Insert(name, value)
		return outcome{kind: outcomeInserted, header: h}
	}
	return outcome{kind: outcomeNotIndexed, header: h}
}
