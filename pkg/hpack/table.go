package hpack

// table is the composite index space RFC 7541 Section 2.3.3 describes:
// indices 1..staticTableSize address the static table, staticTableSize+1..
// address the dynamic table. Implementations may store the two halves
// separately (we do, as dynamicTable) but must unify indices at every
// public boundary — this type is that boundary.
type table struct {
	dynamic *dynamicTable

	// capacityLimit is the peer-advertised ceiling (SETTINGS_HEADER_TABLE_SIZE)
	// no Resize may exceed, for the lifetime of the table, not just at
	// construction. Zero means unlimited.
	capacityLimit int
}

func newTable(maxSize int) *table {
	return &table{dynamic: newDynamicTable(maxSize)}
}

func (t *table) MaxSize() int       { return t.dynamic.MaxSize() }
func (t *table) Len() int           { return staticTableSize + t.dynamic.Len() }
func (t *table) Size() int          { return t.dynamic.Size() }
func (t *table) CapacityLimit() int { return t.capacityLimit }

// SetCapacityLimit fixes the ceiling every later Resize is clamped against,
// re-clamping the current size immediately if it is already above limit.
func (t *table) SetCapacityLimit(limit int) {
	t.capacityLimit = limit
	if limit > 0 && t.dynamic.MaxSize() > limit {
		t.dynamic.Resize(limit)
	}
}

// Resize applies a new dynamic table size, evicting oldest-first as
// necessary (RFC 7541 Section 4.3). maxSize is clamped to capacityLimit
// first, so nothing can grow the table past a negotiated ceiling through
// this call alone.
func (t *table) Resize(maxSize int) {
	if t.capacityLimit > 0 && maxSize > t.capacityLimit {
		maxSize = t.capacityLimit
	}
	t.dynamic.Resize(maxSize)
}

// FindFull looks for an exact (name, value) match across both halves.
// Static entries are checked first so a tie always prefers the smaller,
// canonical index.
func (t *table) FindFull(name HeaderName, value string) (index int, ok bool) {
	if idx, exact := findStatic(name, value); exact {
		return idx, true
	}
	if idx, ok := t.dynamic.FindExact(name, value); ok {
		return idx + staticTableSize, true
	}
	return 0, false
}

// FindName looks for any entry with the given name, static or dynamic.
// When both halves have a candidate the smaller (static) index wins,
// matching FindFull's tie-break.
func (t *table) FindName(name HeaderName) (index int, inStatic bool, ok bool) {
	if idx, ok := staticByName[name]; ok {
		return idx, true, true
	}
	if idx, ok := t.dynamic.FindName(name); ok {
		return idx + staticTableSize, false, true
	}
	return 0, false, false
}

// Fits reports whether (name, value) could be inserted without permanently
// exceeding maxSize, independent of what is currently stored.
func (t *table) Fits(name HeaderName, value string) bool {
	return entrySize(name, value) <= t.dynamic.MaxSize()
}

// Insert adds (name, value) to the dynamic table, evicting oldest entries
// as needed. Returns false if the pair could not be made to fit even after
// a full drain. The drain happens before this returns, so a caller-held
// index captured prior to the call may now refer to an evicted slot: that
// index is interpreted against the table state at encode time, not after.
func (t *table) Insert(name HeaderName, value string) bool {
	return t.dynamic.Add(name, value)
}

// Get resolves an absolute 1-based index to its (name, value) pair, for the
// bundled test/tooling decoder.
func (t *table) Get(index int) (HeaderName, string, bool) {
	if index < 1 {
		return "", "", false
	}
	if index <= staticTableSize {
		e := getStaticEntry(index)
		return e.Name, e.Value, true
	}
	e, ok := t.dynamic.Get(index - staticTableSize)
	return e.Name, e.Value, ok
}
