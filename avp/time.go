package avp

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/diametrix/diameter/diamerr"
)

// ntpEpochOffset is the number of seconds between the Diameter/NTP epoch
// (1900-01-01 00:00:00 UTC) and the Unix epoch (1970-01-01 00:00:00 UTC).
const ntpEpochOffset = 2208988800

// Time is a Diameter Time AVP: seconds since the NTP epoch, wire-encoded as
// a big-endian u32.
type Time struct{ Data time.Time }

func NewTime(t time.Time) *Time { return &Time{Data: t.UTC()} }

func (v *Time) Type() DataType { return TimeType }
func (v *Time) Length() uint32 { return 4 }
func (v *Time) String() string { return v.Data.Format(time.RFC3339) }

func (v *Time) Encode(w io.Writer) error {
	seconds := v.Data.Unix() + ntpEpochOffset
	if seconds < 0 || seconds > int64(^uint32(0)) {
		return diamerr.ErrTimeOverflow
	}
	return binary.Write(w, binary.BigEndian, uint32(seconds))
}

func (v *Time) Decode(r io.Reader, length uint32) error {
	if length != 4 {
		return diamerr.NewDecodeError("Time", diamerr.ErrShortAVPHeader)
	}
	var seconds uint32
	if err := binary.Read(r, binary.BigEndian, &seconds); err != nil {
		return err
	}
	v.Data = time.Unix(int64(seconds)-ntpEpochOffset, 0).UTC()
	return nil
}
