package avp

import "io"

// Identity is a DiameterIdentity: a UTF8String under the hood, with its own
// DataType tag so the dictionary can distinguish it from a generic
// UTF8String AVP.
type Identity struct {
	inner UTF8String
}

func NewIdentity(s string) *Identity { return &Identity{inner: UTF8String{Data: s}} }

func (v *Identity) Type() DataType             { return IdentityType }
func (v *Identity) Length() uint32             { return v.inner.Length() }
func (v *Identity) String() string             { return v.inner.String() }
func (v *Identity) Encode(w io.Writer) error   { return v.inner.Encode(w) }
func (v *Identity) Decode(r io.Reader, n uint32) error {
	return v.inner.Decode(r, n)
}
func (v *Identity) Value() string { return v.inner.Data }

// DiameterURI is an OctetString carrying a "aaa://..." URI, preserving
// OctetString's display rule but tagged distinctly for dictionary dispatch.
type DiameterURI struct {
	inner OctetString
}

func NewDiameterURI(s string) *DiameterURI {
	return &DiameterURI{inner: OctetString{Data: []byte(s)}}
}

func (v *DiameterURI) Type() DataType           { return DiameterURIType }
func (v *DiameterURI) Length() uint32           { return v.inner.Length() }
func (v *DiameterURI) Encode(w io.Writer) error { return v.inner.Encode(w) }
func (v *DiameterURI) Decode(r io.Reader, n uint32) error {
	return v.inner.Decode(r, n)
}
func (v *DiameterURI) String() string { return v.inner.String() }
func (v *DiameterURI) Value() string  { return string(v.inner.Data) }
