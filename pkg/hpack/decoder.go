package hpack

// Decoder is a minimal counterpart to Encoder, bundled so encoder output
// can be round-tripped in tests and by the hpackctl decode command. It is not hardened against adversarial input the way a
// transport-facing decoder would need to be: truncated or malformed blocks
// return an error, but there is no protocol-level resource accounting
// (RFC 7541 Section 7's security considerations are the encoder's
// responsibility outside this module's scope).
type Decoder struct {
	table *table
}

// NewDecoder constructs a Decoder whose dynamic table tracks the same
// maxSize an Encoder would use, so that indices the encoder emitted stay
// resolvable as size updates are replayed from the block itself.
func NewDecoder(maxSize int) *Decoder {
	return &Decoder{table: newTable(maxSize)}
}

// Decode parses a complete HPACK block into the header list it represents,
// in wire order.
func (d *Decoder) Decode(block []byte) ([]Header, error) {
	var out []Header
	i := 0

	for i < len(block) {
		b := block[i]

		switch {
		case b&0x80 != 0: // indexed header field
			idx, n, err := decodeInteger(block[i:], 7)
			if err != nil {
				return nil, &DecoderError{Offset: i, Err: err}
			}
			i += n
			if idx == 0 {
				return nil, &DecoderError{Offset: i, Err: ErrZeroIndex}
			}
			name, value, ok := d.table.Get(idx)
			if !ok {
				return nil, &DecoderError{Offset: i, Err: ErrUnknownIndex}
			}
			out = append(out, Header{Name: name, Value: HeaderValue{S: value}})

		case b&0xc0 == 0x40: // literal with incremental indexing
			h, n, err := d.readLiteral(block[i:], 6)
			if err != nil {
				return nil, &DecoderError{Offset: i, Err: err}
			}
			i += n
			d.table.Insert(h.Name, h.Value.S)
			out = append(out, h)

		case b&0xe0 == 0x20: // dynamic table size update
			v, n, err := decodeInteger(block[i:], 5)
			if err != nil {
				return nil, &DecoderError{Offset: i, Err: err}
			}
			i += n
			d.table.Resize(v)
			continue

		case b&0xf0 == 0x10: // literal never indexed
			h, n, err := d.readLiteral(block[i:], 4)
			if err != nil {
				return nil, &DecoderError{Offset: i, Err: err}
			}
			i += n
			h.Value.Sensitive = true
			out = append(out, h)

		case b&0xf0 == 0x00: // literal without indexing
			h, n, err := d.readLiteral(block[i:], 4)
			if err != nil {
				return nil, &DecoderError{Offset: i, Err: err}
			}
			i += n
			out = append(out, h)

		default:
			return nil, &DecoderError{Offset: i, Err: ErrInvalidInteger}
		}
	}

	return out, nil
}

// readLiteral decodes one literal representation (incremental, never-
// indexed, or without-indexing all share this shape): an index or embedded
// name under the given prefix width, followed by a value string. It
// returns the header and the number of bytes consumed.
func (d *Decoder) readLiteral(src []byte, prefixBits int) (Header, int, error) {
	idx, n, err := decodeInteger(src, prefixBits)
	if err != nil {
		return Header{}, 0, err
	}

	var name HeaderName
	if idx == 0 {
		raw, m, err := decodeString(src[n:])
		if err != nil {
			return Header{}, 0, err
		}
		name = HeaderName(raw)
		n += m
	} else {
		nm, _, ok := d.table.Get(idx)
		if !ok {
			return Header{}, 0, ErrUnknownIndex
		}
		name = nm
	}

	value, m, err := decodeString(src[n:])
	if err != nil {
		return Header{}, 0, err
	}
	n += m

	return Header{Name: name, Value: HeaderValue{S: string(value)}}, n, nil
}
