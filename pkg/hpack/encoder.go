package hpack

import (
	"github.com/valyala/bytebufferpool"
)

// pendingKind tags the encoder's staged dynamic-table size update.
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingOne
	pendingTwo
)

// pendingSizeUpdate is the only explicit state machine the encoder
// carries, coalescing successive UpdateMaxSize calls per RFC 7541
// Section 6.3 until the next Encode flushes them onto the wire.
type pendingSizeUpdate struct {
	kind     pendingKind
	min, max int // min is meaningful only for pendingTwo
}

// apply folds a new UpdateMaxSize(v) call into the pending state, given the
// table's current max size.
func (p pendingSizeUpdate) apply(v, current int) pendingSizeUpdate {
	switch p.kind {
	case pendingNone:
		if v == current {
			return p
		}
		return pendingSizeUpdate{kind: pendingOne, max: v}

	case pendingOne:
		x := p.max
		if v <= x {
			return pendingSizeUpdate{kind: pendingOne, max: v}
		}
		if x > current {
			return pendingSizeUpdate{kind: pendingOne, max: v}
		}
		return pendingSizeUpdate{kind: pendingTwo, min: x, max: v}

	case pendingTwo:
		if v < p.min {
			return pendingSizeUpdate{kind: pendingOne, max: v}
		}
		return pendingSizeUpdate{kind: pendingTwo, min: p.min, max: v}
	}
	return p
}

// Encoder turns header lists into HPACK-compressed blocks (RFC 7541). It
// owns a composite static+dynamic table and a pending size update; a single
// Encoder is not safe for concurrent use; a batch Encode call is the
// unit of atomicity.
type Encoder struct {
	table      *table
	pending    pendingSizeUpdate
	neverIndex NeverIndexPredicate
}

// New constructs an Encoder with the given initial dynamic table size and
// an optional peer capacity limit (0 means unlimited).
func New(maxSize, capacityLimit int) *Encoder {
	cfg := Config{MaxDynamicTableSize: maxSize, CapacityLimit: capacityLimit}
	cfg.Validate()

	t := newTable(cfg.MaxDynamicTableSize)
	t.SetCapacityLimit(cfg.CapacityLimit)

	return &Encoder{
		table:      t,
		neverIndex: defaultNeverIndex,
	}
}

// NewDefault returns an Encoder with a 4096-octet dynamic table and no
// capacity limit.
func NewDefault() *Encoder {
	return New(DefaultMaxDynamicTableSize, 0)
}

// SetNeverIndexPredicate overrides the default never-index policy. Passing
// nil restores defaultNeverIndex.
func (e *Encoder) SetNeverIndexPredicate(p NeverIndexPredicate) {
	if p == nil {
		p = defaultNeverIndex
	}
	e.neverIndex = p
}

// UpdateMaxSize stages a dynamic table size change, coalesced with any
// update already pending. A value above the table's capacity limit is
// clamped down first, so that limit holds after every call, not only at
// construction. It takes effect on the next Encode call.
func (e *Encoder) UpdateMaxSize(v int) {
	if limit := e.table.CapacityLimit(); limit > 0 && v > limit {
		v = limit
	}
	e.pending = e.pending.apply(v, e.table.MaxSize())
}

// Encode serializes headers onto dst in order, applying any staged size
// update first. It always reports nil: the error return is reserved for
// future wire constraints this encoder does not yet enforce.
func (e *Encoder) Encode(headers []Header, dst *bytebufferpool.ByteBuffer) error {
	e.flushPending(dst)

	for _, h := range headers {
		o := decide(e.table, h, e.neverIndex)
		e.write(dst, o)
	}
	return nil
}

func (e *Encoder) flushPending(dst *bytebufferpool.ByteBuffer) {
	switch e.pending.kind {
	case pendingOne:
		e.table.Resize(e.pending.max)
		encodeInteger(dst, e.pending.max, 5, 0x20)
	case pendingTwo:
		e.table.Resize(e.pending.min)
		encodeInteger(dst, e.pending.min, 5, 0x20)
		e.table.Resize(e.pending.max)
		encodeInteger(dst, e.pending.max, 5, 0x20)
	}
	e.pending = pendingSizeUpdate{}
}

// write serializes a single decided outcome per RFC 7541 Section 6.
func (e *Encoder) write(dst *bytebufferpool.ByteBuffer, o outcome) {
	if o.header.Value.Sensitive &&
		(o.kind == outcomeIndexed || o.kind == outcomeInserted || o.kind == outcomeInsertedValue) {
		panic("hpack: indexing policy produced an indexed form for a sensitive header")
	}

	switch o.kind {
	case outcomeIndexed:
		encodeInteger(dst, o.index, 7, 0x80)

	case outcomeInsertedValue:
		encodeInteger(dst, o.index, 6, 0x40)
		encodeString(dst, []byte(o.header.Value.S))

	case outcomeInserted:
		dst.WriteByte(0x40)
		encodeString(dst, []byte(o.header.Name))
		encodeString(dst, []byte(o.header.Value.S))

	case outcomeName:
		base := byte(0x00)
		if o.sensitive {
			base = 0x10
		}
		encodeInteger(dst, o.index, 4, base)
		encodeString(dst, []byte(o.header.Value.S))

	case outcomeNotIndexed:
		base := byte(0x00)
		if o.sensitive {
			base = 0x10
		}
		dst.WriteByte(base)
		encodeString(dst, []byte(o.header.Name))
		encodeString(dst, []byte(o.header.Value.S))
	}
}
