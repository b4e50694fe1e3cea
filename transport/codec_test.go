package transport

import (
	"bytes"
	"testing"

	"github.com/diametrix/diameter/avp"
	"github.com/diametrix/diameter/diameter"
)

type stubDict struct{}

func (stubDict) AVPType(code, vendorID uint32) (avp.DataType, bool) {
	if code == 1 {
		return avp.OctetStringType, true
	}
	return avp.Unknown, false
}
func (stubDict) AVPName(code, vendorID uint32) (string, bool) { return "", false }
func (stubDict) AVPByName(name string) (uint32, uint32, bool, bool) {
	return 0, 0, false, false
}

func TestReadFrameRoundTrip(t *testing.T) {
	dict := stubDict{}
	msg := diameter.New(diameter.CommandDeviceWatchdog, diameter.ApplicationCommon, diameter.FlagRequest, 1, 2, dict)
	msg.Add(avp.New(1, 0, 0, &avp.OctetString{Data: []byte("payload")}))
	raw, err := msg.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	frame, err := ReadFrame(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(frame, raw) {
		t.Fatalf("frame = % X, want % X", frame, raw)
	}

	decoded, err := diameter.Decode(frame, dict)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Header.HopByHopID != 1 {
		t.Fatalf("HopByHopID = %d, want 1", decoded.Header.HopByHopID)
	}
}

func TestFrameSizeCeiling(t *testing.T) {
	orig := MaxFrameSize
	MaxFrameSize = 32
	defer func() { MaxFrameSize = orig }()

	header := make([]byte, 4)
	header[0] = 1
	header[3] = 33 // length 33, one over the 32-byte ceiling
	if _, err := ReadFrame(bytes.NewReader(append(header, make([]byte, 40)...))); err == nil {
		t.Fatal("expected frame-too-large error")
	}

	header2 := make([]byte, 4)
	header2[0] = 1
	header2[3] = 32
	if _, err := ReadFrame(bytes.NewReader(append(header2, make([]byte, 40)...))); err != nil {
		t.Fatalf("expected frame at ceiling to be accepted: %v", err)
	}
}
