package hpack

// Dynamic Table - RFC 7541 Section 2.3.
//
// A FIFO of header fields, newest first. Entries are added at the head and
// evicted from the tail once the table exceeds its size budget. Dynamic
// indices start at 1 here (the table.go composite view adds the
// staticTableSize offset); index 1 is always the most recently inserted
// entry still present.

type tableEntry struct {
	Name  HeaderName
	Value string
}

// dynamicTable is a circular buffer of entries, extended with the name
// and (name,value) lookup indexes RFC 7541 Section 4.3 describes. Each
// inserted entry is
// tagged with a monotonically increasing generation; an entry's current
// 1-based dynamic index is always nextGen-generation, so the lookup maps
// never need to be rewritten on eviction or insertion — they are pruned
// lazily against the current [oldestGen, nextGen) window instead.
type dynamicTable struct {
	entries []tableEntry
	head    int // buffer slot of the newest entry
	count   int
	size    int // current total entry size in octets
	maxSize int

	nextGen uint64 // generation that will be assigned to the next insert

	nameIndex      map[HeaderName][]uint64 // name -> generations, ascending, lazily pruned
	nameValueIndex map[string]uint64       // "name\x00value" -> most recent generation
}

func newDynamicTable(maxSize int) *dynamicTable {
	capacity := maxSize / 64
	if capacity < 16 {
		capacity = 16
	}
	return &dynamicTable{
		entries:        make([]tableEntry, capacity),
		maxSize:        maxSize,
		nameIndex:      make(map[HeaderName][]uint64),
		nameValueIndex: make(map[string]uint64),
	}
}

func (dt *dynamicTable) oldestGen() uint64 {
	return dt.nextGen - uint64(dt.count)
}

// indexOf converts a generation into the entry's current 1-based dynamic
// index. Callers must only pass generations known to still be live.
func (dt *dynamicTable) indexOf(gen uint64) int {
	return int(dt.nextGen - gen)
}

func (dt *dynamicTable) Len() int       { return dt.count }
func (dt *dynamicTable) Size() int      { return dt.size }
func (dt *dynamicTable) MaxSize() int   { return dt.maxSize }

// Get retrieves an entry by 1-based dynamic index (1 = newest).
func (dt *dynamicTable) Get(index int) (tableEntry, bool) {
	if index < 1 || index > dt.count {
		return tableEntry{}, false
	}
	pos := (dt.head + index - 1) % len(dt.entries)
	return dt.entries[pos], true
}

// FindExact returns the index of a live (name, value) pair, if any.
func (dt *dynamicTable) FindExact(name HeaderName, value string) (int, bool) {
	gen, ok := dt.nameValueIndex[string(name)+"\x00"+value]
	if !ok || gen < dt.oldestGen() {
		return 0, false
	}
	return dt.indexOf(gen), true
}

// FindName returns the index of the most recently inserted live entry with
// the given name, if any.
func (dt *dynamicTable) FindName(name HeaderName) (int, bool) {
	gens := dt.nameIndex[name]
	cutoff := dt.oldestGen()
	for len(gens) > 0 && gens[len(gens)-1] < cutoff {
		gens = gens[:len(gens)-1]
	}
	if len(gens) == 0 {
		delete(dt.nameIndex, name)
		return 0, false
	}
	dt.nameIndex[name] = gens
	return dt.indexOf(gens[len(gens)-1]), true
}

// Add evicts oldest entries until (name, value) fits, then inserts it.
// Returns false (no insertion performed) if the entry is larger than
// maxSize even with the table fully drained.
func (dt *dynamicTable) Add(name HeaderName, value string) bool {
	need := entrySize(name, value)
	dt.evictUntilFits(need)
	if need > dt.maxSize {
		return false
	}

	if dt.count == len(dt.entries) {
		dt.grow()
	}

	dt.head = (dt.head - 1 + len(dt.entries)) % len(dt.entries)
	dt.entries[dt.head] = tableEntry{Name: name, Value: value}
	dt.count++
	dt.size += need

	gen := dt.nextGen
	dt.nextGen++
	dt.nameIndex[name] = append(dt.nameIndex[name], gen)
	dt.nameValueIndex[string(name)+"\x00"+value] = gen

	return true
}

// Resize sets maxSize and evicts oldest-first until the table fits under
// it. Resizing to 0 clears the table.
func (dt *dynamicTable) Resize(maxSize int) {
	dt.maxSize = maxSize
	dt.evictUntilFits(0)
}

func (dt *dynamicTable) evictUntilFits(incoming int) {
	for dt.count > 0 && dt.size+incoming > dt.maxSize {
		dt.evictOldest()
	}
}

func (dt *dynamicTable) evictOldest() {
	tail := (dt.head + dt.count - 1) % len(dt.entries)
	e := dt.entries[tail]
	dt.size -= entrySize(e.Name, e.Value)
	dt.count--
	dt.entries[tail] = tableEntry{}
}

func (dt *dynamicTable) grow() {
	newEntries := make([]tableEntry, len(dt.entries)*2)
	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		newEntries[i] = dt.entries[pos]
	}
	dt.entries = newEntries
	dt.head = 0
}
