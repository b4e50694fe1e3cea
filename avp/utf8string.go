package avp

import (
	"io"
	"unicode/utf8"

	"github.com/diametrix/diameter/diamerr"
)

// UTF8String holds text validated as well-formed UTF-8 on decode.
type UTF8String struct{ Data string }

func (v *UTF8String) Type() DataType { return UTF8StringType }
func (v *UTF8String) Length() uint32 { return uint32(len(v.Data)) }
func (v *UTF8String) String() string { return v.Data }

func (v *UTF8String) Encode(w io.Writer) error {
	_, err := io.WriteString(w, v.Data)
	return err
}

func (v *UTF8String) Decode(r io.Reader, length uint32) error {
	buf := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
	}
	if !utf8.Valid(buf) {
		return diamerr.ErrInvalidUTF8
	}
	v.Data = string(buf)
	return nil
}
