package avp

import (
	"errors"
	"io"

	"github.com/diametrix/diameter/diamerr"
)

// Grouped is an AVP whose value is itself an ordered sequence of fully
// formed AVPs. Decoding a Grouped value needs dictionary access to resolve
// each child's type, which the plain Value interface does not carry, so
// decoding goes through DecodeChildren (invoked by the AVP-level Decode
// once it has resolved this AVP's type as Grouped) rather than through
// Decode.
type Grouped struct {
	Children []*AVP
}

func (v *Grouped) Type() DataType { return GroupedType }

func (v *Grouped) Length() uint32 {
	var total uint32
	for _, c := range v.Children {
		total += c.Length + uint32(c.Padding)
	}
	return total
}

func (v *Grouped) String() string {
	return "Grouped"
}

func (v *Grouped) Encode(w io.Writer) error {
	for _, c := range v.Children {
		if err := c.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode exists only to satisfy the Value interface; Grouped AVPs are
// always decoded through DecodeChildren, which has dictionary access.
func (v *Grouped) Decode(r io.Reader, length uint32) error {
	return errors.New("avp: Grouped.Decode called directly; use DecodeChildren")
}

// DecodeChildren reads exactly length bytes of child AVPs from r, resolving
// each one's type through resolver.
func (v *Grouped) DecodeChildren(r io.Reader, length uint32, resolver Resolver) error {
	remaining := int64(length)
	for remaining > 0 {
		child, consumed, err := Decode(r, resolver)
		if err != nil {
			return err
		}
		if consumed > remaining {
			return diamerr.ErrGroupedLengthShort
		}
		v.Children = append(v.Children, child)
		remaining -= consumed
	}
	if remaining != 0 {
		return diamerr.ErrGroupedLengthShort
	}
	return nil
}

// Add appends a fully-formed child AVP.
func (v *Grouped) Add(child *AVP) {
	v.Children = append(v.Children, child)
}
