package hpack

import (
	"errors"
	"strconv"
)

// Sentinel errors returned by the wire codec and the bundled test/tooling
// Decoder. The encoder's own output never triggers these; they exist to
// reject malformed input fed to Decode.
var (
	ErrInvalidInteger = errors.New("hpack: invalid integer encoding")
	ErrInvalidString  = errors.New("hpack: invalid string literal")
	ErrUnknownIndex   = errors.New("hpack: reference to unknown index")
	ErrZeroIndex      = errors.New("hpack: index zero is not addressable")
)

// EncoderError reports a failure in Encode, naming the header that could
// not be serialized.
type EncoderError struct {
	Header Header
	Err    error
}

func (e *EncoderError) Error() string {
	return "hpack: encoding " + string(e.Header.Name) + ": " + e.Err.Error()
}

func (e *EncoderError) Unwrap() error { return e.Err }

// DecoderError reports a failure in Decode, naming the byte offset at which
// the block became unparseable.
type DecoderError struct {
	Offset int
	Err    error
}

func (e *DecoderError) Error() string {
	return "hpack: decoding at offset " + strconv.Itoa(e.Offset) + ": " + e.Err.Error()
}

func (e *DecoderError) Unwrap() error { return e.Err }
