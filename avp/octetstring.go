package avp

import (
	"fmt"
	"io"
	"strings"
)

// OctetString is an opaque byte string. Its display form is space-separated
// hex pairs, matching the dictionary's "OctetString" data type.
type OctetString struct{ Data []byte }

func (v *OctetString) Type() DataType { return OctetStringType }
func (v *OctetString) Length() uint32 { return uint32(len(v.Data)) }

func (v *OctetString) Encode(w io.Writer) error {
	_, err := w.Write(v.Data)
	return err
}

func (v *OctetString) Decode(r io.Reader, length uint32) error {
	buf := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
	}
	v.Data = buf
	return nil
}

func (v *OctetString) String() string {
	parts := make([]string, len(v.Data))
	for i, b := range v.Data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
