// Package avp implements the Diameter AVP wire format: per-type value
// codecs (RFC 6733 §4.2/4.3) and the AVP header framing (code, flags,
// length, optional vendor-id) that wraps them.
package avp

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/diametrix/diameter/diamerr"
	"github.com/diametrix/diameter/internal/wire"
	"golang.org/x/exp/constraints"
)

// AVP header flag bits (RFC 6733 §4.1).
const (
	FlagVendor    uint8 = 0x80
	FlagMandatory uint8 = 0x40
	FlagProtected uint8 = 0x20
)

// Header lengths in bytes, with and without the optional vendor-id field.
const (
	HeaderLen       = 8
	HeaderLenVendor = 12
)

// AVP is one decoded or constructed Attribute-Value Pair: header fields plus
// its typed Value and the padding byte count needed to reach the next
// 4-octet boundary.
type AVP struct {
	Code     uint32
	Flags    uint8
	VendorID uint32
	Length   uint32 // header + value length, excluding padding
	Padding  int
	Value    Value
}

// New builds an AVP around value, computing its header length, total Length
// (header + value, matching the wire field which excludes padding), and
// Padding. A non-zero vendorID sets the V flag automatically.
func New(code uint32, vendorID uint32, flags uint8, value Value) *AVP {
	if vendorID != 0 {
		flags |= FlagVendor
	}
	headerLen := HeaderLen
	if flags&FlagVendor != 0 {
		headerLen = HeaderLenVendor
	}
	valueLen := value.Length()
	return &AVP{
		Code:     code,
		Flags:    flags,
		VendorID: vendorID,
		Length:   uint32(headerLen) + valueLen,
		Padding:  wire.Padding(int(valueLen)),
		Value:    value,
	}
}

// NewNumeric is a generic convenience constructor over the six fixed-width
// numeric AVP types, mirroring the original codebase's single generic
// constructor dispatching on the Go value's concrete type rather than a
// caller-supplied DataType.
func NewNumeric[T constraints.Integer | constraints.Float](code, vendorID uint32, flags uint8, v T) (*AVP, error) {
	var val Value
	switch x := any(v).(type) {
	case int32:
		val = &Integer32{Data: x}
	case int64:
		val = &Integer64{Data: x}
	case uint32:
		val = &Unsigned32{Data: x}
	case uint64:
		val = &Unsigned64{Data: x}
	case float32:
		val = &Float32{Data: x}
	case float64:
		val = &Float64{Data: x}
	default:
		return nil, fmt.Errorf("avp: unsupported numeric type %T for AVP %d", v, code)
	}
	return New(code, vendorID, flags, val), nil
}

func (a *AVP) IsVendor() bool    { return a.Flags&FlagVendor != 0 }
func (a *AVP) IsMandatory() bool { return a.Flags&FlagMandatory != 0 }
func (a *AVP) IsProtected() bool { return a.Flags&FlagProtected != 0 }

func (a *AVP) HeaderLength() int {
	if a.IsVendor() {
		return HeaderLenVendor
	}
	return HeaderLen
}

// Encode writes the AVP header, value bytes, and zero padding to w.
func (a *AVP) Encode(w io.Writer) error {
	header := make([]byte, a.HeaderLength())
	binary.BigEndian.PutUint32(header[0:4], a.Code)
	header[4] = a.Flags
	wire.PutUint24(header[5:8], a.Length)
	if a.IsVendor() {
		binary.BigEndian.PutUint32(header[8:12], a.VendorID)
	}
	if _, err := w.Write(header); err != nil {
		return diamerr.NewEncodeError("AVP header", err)
	}
	if err := a.Value.Encode(w); err != nil {
		return diamerr.NewEncodeError(fmt.Sprintf("AVP %d value", a.Code), err)
	}
	if a.Padding > 0 {
		if _, err := w.Write(make([]byte, a.Padding)); err != nil {
			return diamerr.NewEncodeError("AVP padding", err)
		}
	}
	return nil
}

// Decode reads one AVP (header, value, padding) from r, resolving its value
// type through resolver. It returns the AVP and the total number of bytes
// consumed from r (Length + padding), for the caller's offset bookkeeping.
func Decode(r io.Reader, resolver Resolver) (*AVP, int64, error) {
	header := make([]byte, HeaderLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, 0, err
	}
	code := binary.BigEndian.Uint32(header[0:4])
	flags := header[4]
	length := wire.Uint24(header[5:8])

	headerLen := HeaderLen
	var vendorID uint32
	if flags&FlagVendor != 0 {
		headerLen = HeaderLenVendor
		vbuf := make([]byte, 4)
		if _, err := io.ReadFull(r, vbuf); err != nil {
			return nil, 0, err
		}
		vendorID = binary.BigEndian.Uint32(vbuf)
	}

	if length < uint32(headerLen) {
		return nil, 0, diamerr.NewDecodeError("AVP header", diamerr.ErrShortAVPHeader)
	}
	valueLen := length - uint32(headerLen)

	dt, ok := resolver.AVPType(code, vendorID)
	if !ok || dt == Unknown {
		return nil, 0, &diamerr.UnknownAVPCodeError{Code: code, VendorID: vendorID}
	}

	padding := wire.Padding(int(valueLen))

	var value Value
	if dt == GroupedType {
		g := &Grouped{}
		if err := g.DecodeChildren(r, valueLen, resolver); err != nil {
			return nil, 0, diamerr.NewDecodeError(fmt.Sprintf("AVP %d grouped children", code), err)
		}
		value = g
	} else {
		value = NewValue(dt)
		if err := value.Decode(r, valueLen); err != nil {
			return nil, 0, diamerr.NewDecodeError(fmt.Sprintf("AVP %d value", code), err)
		}
	}

	if padding > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(padding)); err != nil {
			return nil, 0, err
		}
	}

	avp := &AVP{
		Code:     code,
		Flags:    flags,
		VendorID: vendorID,
		Length:   length,
		Padding:  padding,
		Value:    value,
	}
	return avp, int64(length) + int64(padding), nil
}

// --- Typed accessors, convenience shims over Value, not part of the wire
// contract. Each returns the zero value and false when the AVP does not
// hold that concrete type.

func (a *AVP) Address() (*Address, bool)         { v, ok := a.Value.(*Address); return v, ok }
func (a *AVP) AddressIPv4() (*AddressIPv4, bool) { v, ok := a.Value.(*AddressIPv4); return v, ok }
func (a *AVP) AddressIPv6() (*AddressIPv6, bool) { v, ok := a.Value.(*AddressIPv6); return v, ok }
func (a *AVP) Identity() (*Identity, bool)       { v, ok := a.Value.(*Identity); return v, ok }
func (a *AVP) DiameterURI() (*DiameterURI, bool) { v, ok := a.Value.(*DiameterURI); return v, ok }
func (a *AVP) Enumerated() (int32, bool) {
	v, ok := a.Value.(*Enumerated)
	if !ok {
		return 0, false
	}
	return v.Data, true
}
func (a *AVP) Float32() (float32, bool) {
	v, ok := a.Value.(*Float32)
	if !ok {
		return 0, false
	}
	return v.Data, true
}
func (a *AVP) Float64() (float64, bool) {
	v, ok := a.Value.(*Float64)
	if !ok {
		return 0, false
	}
	return v.Data, true
}
func (a *AVP) Grouped() (*Grouped, bool) { v, ok := a.Value.(*Grouped); return v, ok }
func (a *AVP) Integer32() (int32, bool) {
	v, ok := a.Value.(*Integer32)
	if !ok {
		return 0, false
	}
	return v.Data, true
}
func (a *AVP) Integer64() (int64, bool) {
	v, ok := a.Value.(*Integer64)
	if !ok {
		return 0, false
	}
	return v.Data, true
}
func (a *AVP) OctetString() (*OctetString, bool) { v, ok := a.Value.(*OctetString); return v, ok }
func (a *AVP) Time() (*Time, bool)               { v, ok := a.Value.(*Time); return v, ok }
func (a *AVP) Unsigned32() (uint32, bool) {
	v, ok := a.Value.(*Unsigned32)
	if !ok {
		return 0, false
	}
	return v.Data, true
}
func (a *AVP) Unsigned64() (uint64, bool) {
	v, ok := a.Value.(*Unsigned64)
	if !ok {
		return 0, false
	}
	return v.Data, true
}
func (a *AVP) UTF8String() (*UTF8String, bool) { v, ok := a.Value.(*UTF8String); return v, ok }

// flagGlyphs renders the V/M/P flag column, e.g. "VMP", "-M-".
func (a *AVP) flagGlyphs() string {
	g := func(set bool, c string) string {
		if set {
			return c
		}
		return "-"
	}
	return g(a.IsVendor(), "V") + g(a.IsMandatory(), "M") + g(a.IsProtected(), "P")
}

// NameResolver looks up an AVP's display name by (code, vendor-id); it is
// satisfied by *dictionary.Dictionary's AVPName method.
type NameResolver func(code, vendorID uint32) (string, bool)

// Display renders one human-readable line per AVP (and, recursively, each
// Grouped child indented two spaces per depth), resolving each AVP's name
// through resolve ("Unknown" when resolve is nil or finds nothing).
func (a *AVP) Display(resolve NameResolver, depth int) string {
	name := "Unknown"
	if resolve != nil {
		if n, ok := resolve(a.Code, a.VendorID); ok {
			name = n
		}
	}
	indent := strings.Repeat("  ", depth)
	var b strings.Builder
	fmt.Fprintf(&b, "%s%-40s %8d %5d %s %-16s %s",
		indent, name, a.VendorID, a.Code, a.flagGlyphs(), a.Value.Type().String(), a.Value.String())
	if g, ok := a.Grouped(); ok {
		for _, child := range g.Children {
			b.WriteByte('\n')
			b.WriteString(child.Display(resolve, depth+1))
		}
	}
	return b.String()
}

func (a *AVP) String() string {
	return a.Display(nil, 0)
}
