package avp

import "io"

// Value is the wire contract every AVP data type implements: encode/decode
// exact value bytes (padding is the framing layer's job, never the value
// codec's), report the unpadded byte length, and identify/print itself.
type Value interface {
	Encode(w io.Writer) error
	Decode(r io.Reader, length uint32) error
	Length() uint32
	Type() DataType
	String() string
}
