package avp

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/diametrix/diameter/diamerr"
)

// Integer32 is a signed 32-bit big-endian value.
type Integer32 struct{ Data int32 }

func (v *Integer32) Type() DataType   { return Integer32Type }
func (v *Integer32) Length() uint32   { return 4 }
func (v *Integer32) String() string   { return fmt.Sprintf("%d", v.Data) }
func (v *Integer32) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, v.Data)
}
func (v *Integer32) Decode(r io.Reader, length uint32) error {
	if length != 4 {
		return diamerr.NewDecodeError("Integer32", fmt.Errorf("want 4 bytes, got %d", length))
	}
	return binary.Read(r, binary.BigEndian, &v.Data)
}

// Integer64 is a signed 64-bit big-endian value.
type Integer64 struct{ Data int64 }

func (v *Integer64) Type() DataType { return Integer64Type }
func (v *Integer64) Length() uint32 { return 8 }
func (v *Integer64) String() string { return fmt.Sprintf("%d", v.Data) }
func (v *Integer64) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, v.Data)
}
func (v *Integer64) Decode(r io.Reader, length uint32) error {
	if length != 8 {
		return diamerr.NewDecodeError("Integer64", fmt.Errorf("want 8 bytes, got %d", length))
	}
	return binary.Read(r, binary.BigEndian, &v.Data)
}

// Unsigned32 is an unsigned 32-bit big-endian value.
type Unsigned32 struct{ Data uint32 }

func (v *Unsigned32) Type() DataType { return Unsigned32Type }
func (v *Unsigned32) Length() uint32 { return 4 }
func (v *Unsigned32) String() string { return fmt.Sprintf("%d", v.Data) }
func (v *Unsigned32) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, v.Data)
}
func (v *Unsigned32) Decode(r io.Reader, length uint32) error {
	if length != 4 {
		return diamerr.NewDecodeError("Unsigned32", fmt.Errorf("want 4 bytes, got %d", length))
	}
	return binary.Read(r, binary.BigEndian, &v.Data)
}

// Unsigned64 is an unsigned 64-bit big-endian value.
type Unsigned64 struct{ Data uint64 }

func (v *Unsigned64) Type() DataType { return Unsigned64Type }
func (v *Unsigned64) Length() uint32 { return 8 }
func (v *Unsigned64) String() string { return fmt.Sprintf("%d", v.Data) }
func (v *Unsigned64) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, v.Data)
}
func (v *Unsigned64) Decode(r io.Reader, length uint32) error {
	if length != 8 {
		return diamerr.NewDecodeError("Unsigned64", fmt.Errorf("want 8 bytes, got %d", length))
	}
	return binary.Read(r, binary.BigEndian, &v.Data)
}

// Enumerated is wire-identical to Unsigned32 but carries distinct display
// semantics (a named constant from an application-specific enumeration).
type Enumerated struct{ Data int32 }

func (v *Enumerated) Type() DataType { return EnumeratedType }
func (v *Enumerated) Length() uint32 { return 4 }
func (v *Enumerated) String() string { return fmt.Sprintf("%d", v.Data) }
func (v *Enumerated) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, v.Data)
}
func (v *Enumerated) Decode(r io.Reader, length uint32) error {
	if length != 4 {
		return diamerr.NewDecodeError("Enumerated", fmt.Errorf("want 4 bytes, got %d", length))
	}
	return binary.Read(r, binary.BigEndian, &v.Data)
}

// Float32 is an IEEE-754 single precision big-endian value.
type Float32 struct{ Data float32 }

func (v *Float32) Type() DataType { return Float32Type }
func (v *Float32) Length() uint32 { return 4 }
func (v *Float32) String() string { return fmt.Sprintf("%g", v.Data) }
func (v *Float32) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, math.Float32bits(v.Data))
}
func (v *Float32) Decode(r io.Reader, length uint32) error {
	if length != 4 {
		return diamerr.NewDecodeError("Float32", fmt.Errorf("want 4 bytes, got %d", length))
	}
	var bits uint32
	if err := binary.Read(r, binary.BigEndian, &bits); err != nil {
		return err
	}
	v.Data = math.Float32frombits(bits)
	return nil
}

// Float64 is an IEEE-754 double precision big-endian value.
type Float64 struct{ Data float64 }

func (v *Float64) Type() DataType { return Float64Type }
func (v *Float64) Length() uint32 { return 8 }
func (v *Float64) String() string { return fmt.Sprintf("%g", v.Data) }
func (v *Float64) Encode(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, math.Float64bits(v.Data))
}
func (v *Float64) Decode(r io.Reader, length uint32) error {
	if length != 8 {
		return diamerr.NewDecodeError("Float64", fmt.Errorf("want 8 bytes, got %d", length))
	}
	var bits uint64
	if err := binary.Read(r, binary.BigEndian, &bits); err != nil {
		return err
	}
	v.Data = math.Float64frombits(bits)
	return nil
}
