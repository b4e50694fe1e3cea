package avp

import (
	"fmt"
	"io"
	"net"

	"github.com/diametrix/diameter/diamerr"
)

const (
	addressFamilyIPv4 = 1
	addressFamilyIPv6 = 2
	addressFamilyE164 = 8
)

// Address is the discriminated-union Address AVP type: a 2-byte IANA address
// family tag followed by family-specific payload (RFC 6733 §4.3.1 / IANA
// Address Family Numbers, restricted to the three families this codec
// supports).
type Address struct {
	Family  uint16
	IP      net.IP // set when Family is IPv4 or IPv6
	E164    string // set when Family is E.164
}

func NewAddressIPv4(ip net.IP) *Address {
	return &Address{Family: addressFamilyIPv4, IP: ip.To4()}
}

func NewAddressIPv6(ip net.IP) *Address {
	return &Address{Family: addressFamilyIPv6, IP: ip.To16()}
}

func NewAddressE164(digits string) *Address {
	return &Address{Family: addressFamilyE164, E164: digits}
}

func (v *Address) Type() DataType { return AddressType }

func (v *Address) Length() uint32 {
	switch v.Family {
	case addressFamilyIPv4:
		return 6
	case addressFamilyIPv6:
		return 18
	case addressFamilyE164:
		return uint32(2 + len(v.E164))
	default:
		return 2
	}
}

func (v *Address) String() string {
	switch v.Family {
	case addressFamilyIPv4, addressFamilyIPv6:
		return v.IP.String()
	case addressFamilyE164:
		return v.E164
	default:
		return fmt.Sprintf("Address{unknown family %d}", v.Family)
	}
}

func (v *Address) Encode(w io.Writer) error {
	tag := []byte{byte(v.Family >> 8), byte(v.Family)}
	if _, err := w.Write(tag); err != nil {
		return err
	}
	switch v.Family {
	case addressFamilyIPv4:
		_, err := w.Write(v.IP.To4())
		return err
	case addressFamilyIPv6:
		_, err := w.Write(v.IP.To16())
		return err
	case addressFamilyE164:
		_, err := io.WriteString(w, v.E164)
		return err
	default:
		return diamerr.ErrUnknownAddressFam
	}
}

func (v *Address) Decode(r io.Reader, length uint32) error {
	if length < 2 {
		return diamerr.NewDecodeError("Address", fmt.Errorf("length %d shorter than family tag", length))
	}
	tag := make([]byte, 2)
	if _, err := io.ReadFull(r, tag); err != nil {
		return err
	}
	v.Family = uint16(tag[0])<<8 | uint16(tag[1])
	payloadLen := length - 2

	switch v.Family {
	case addressFamilyIPv4:
		if length != 6 {
			return diamerr.ErrInvalidAddressLen
		}
		buf := make([]byte, 4)
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
		v.IP = net.IP(buf)
	case addressFamilyIPv6:
		if length != 18 {
			return diamerr.ErrInvalidAddressLen
		}
		buf := make([]byte, 16)
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
		v.IP = net.IP(buf)
	case addressFamilyE164:
		if payloadLen > 15 {
			return diamerr.ErrInvalidAddressLen
		}
		buf := make([]byte, payloadLen)
		if payloadLen > 0 {
			if _, err := io.ReadFull(r, buf); err != nil {
				return err
			}
		}
		v.E164 = string(buf)
	default:
		// Drain the payload so the caller's byte accounting stays correct
		// even though the family is not one this codec understands.
		if _, err := io.CopyN(io.Discard, r, int64(payloadLen)); err != nil {
			return err
		}
		return diamerr.ErrUnknownAddressFam
	}
	return nil
}

// AddressIPv4 is a raw 4-byte IPv4 address with no family tag, used when the
// dictionary declares the AVP as the concrete "IPv4" data type rather than
// the discriminated "Address" type.
type AddressIPv4 struct{ IP net.IP }

func (v *AddressIPv4) Type() DataType { return AddressIPv4Type }
func (v *AddressIPv4) Length() uint32 { return 4 }
func (v *AddressIPv4) String() string { return v.IP.String() }

func (v *AddressIPv4) Encode(w io.Writer) error {
	_, err := w.Write(v.IP.To4())
	return err
}

func (v *AddressIPv4) Decode(r io.Reader, length uint32) error {
	if length != 4 {
		return diamerr.ErrInvalidAddressLen
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	v.IP = net.IP(buf)
	return nil
}

// AddressIPv6 is a raw 16-byte IPv6 address with no family tag.
type AddressIPv6 struct{ IP net.IP }

func (v *AddressIPv6) Type() DataType { return AddressIPv6Type }
func (v *AddressIPv6) Length() uint32 { return 16 }
func (v *AddressIPv6) String() string { return v.IP.String() }

func (v *AddressIPv6) Encode(w io.Writer) error {
	_, err := w.Write(v.IP.To16())
	return err
}

func (v *AddressIPv6) Decode(r io.Reader, length uint32) error {
	if length != 16 {
		return diamerr.ErrInvalidAddressLen
	}
	buf := make([]byte, 16)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	v.IP = net.IP(buf)
	return nil
}
