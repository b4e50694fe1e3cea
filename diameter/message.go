// Package diameter implements Diameter message framing (RFC 6733 §3): the
// 20-byte header plus an ordered AVP list, with length accounting that
// mirrors the AVP package's padding-aware framing.
package diameter

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/diametrix/diameter/avp"
	"github.com/diametrix/diameter/diamerr"
	"github.com/diametrix/diameter/internal/wire"
)

const HeaderSize = 20
const Version uint8 = 1

// Dictionary is the lookup surface a Message needs: resolve an AVP's wire
// type for decode, its display name for printing, and its (code, vendor-id,
// mandatory-default) triple for name-based construction. *dictionary.Dictionary
// satisfies this.
type Dictionary interface {
	avp.Resolver
	AVPName(code, vendorID uint32) (string, bool)
	AVPByName(name string) (code, vendorID uint32, mandatory bool, ok bool)
}

// Header is the fixed 20-byte Diameter message header.
type Header struct {
	Version       uint8
	Length        uint32 // u24 on the wire; total message bytes including header
	Flags         uint8
	CommandCode   uint32 // u24 on the wire
	ApplicationID uint32
	HopByHopID    uint32
	EndToEndID    uint32
}

func (h *Header) IsRequest() bool       { return h.Flags&FlagRequest != 0 }
func (h *Header) IsProxyable() bool     { return h.Flags&FlagProxyable != 0 }
func (h *Header) IsError() bool         { return h.Flags&FlagError != 0 }
func (h *Header) IsRetransmitted() bool { return h.Flags&FlagRetransmitted != 0 }

func (h *Header) Encode(w io.Writer) error {
	buf := make([]byte, HeaderSize)
	buf[0] = h.Version
	wire.PutUint24(buf[1:4], h.Length)
	buf[4] = h.Flags
	wire.PutUint24(buf[5:8], h.CommandCode)
	binary.BigEndian.PutUint32(buf[8:12], h.ApplicationID)
	binary.BigEndian.PutUint32(buf[12:16], h.HopByHopID)
	binary.BigEndian.PutUint32(buf[16:20], h.EndToEndID)
	_, err := w.Write(buf)
	return err
}

func DecodeHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderSize {
		return nil, diamerr.ErrShortHeader
	}
	h := &Header{
		Version:       buf[0],
		Length:        wire.Uint24(buf[1:4]),
		Flags:         buf[4],
		CommandCode:   wire.Uint24(buf[5:8]),
		ApplicationID: binary.BigEndian.Uint32(buf[8:12]),
		HopByHopID:    binary.BigEndian.Uint32(buf[12:16]),
		EndToEndID:    binary.BigEndian.Uint32(buf[16:20]),
	}
	if h.Version != Version {
		return nil, diamerr.ErrInvalidVersion
	}
	return h, nil
}

func (h *Header) flagString() string {
	s := ""
	if h.IsRequest() {
		s += "Request"
	} else {
		s += "Answer"
	}
	if h.IsError() {
		s += " Error"
	}
	if h.IsProxyable() {
		s += " Proxyable"
	}
	if h.IsRetransmitted() {
		s += " Retransmit"
	}
	return s
}

func (h *Header) String() string {
	return fmt.Sprintf("%d %s(%d) %s(%d) %s %d, %d",
		h.Version, CommandName(h.CommandCode), h.CommandCode,
		ApplicationName(h.ApplicationID), h.ApplicationID,
		h.flagString(), h.HopByHopID, h.EndToEndID)
}

// Message is a full Diameter message: header plus an ordered AVP list, plus
// the dictionary handle used to build or decode it.
type Message struct {
	Header *Header
	AVPs   []*avp.AVP
	Dict   Dictionary
}

// New constructs an empty message with a 20-byte header (Length == 20).
func New(commandCode, applicationID uint32, flags uint8, hopByHopID, endToEndID uint32, dict Dictionary) *Message {
	return &Message{
		Header: &Header{
			Version:       Version,
			Length:        HeaderSize,
			Flags:         flags,
			CommandCode:   commandCode,
			ApplicationID: applicationID,
			HopByHopID:    hopByHopID,
			EndToEndID:    endToEndID,
		},
		Dict: dict,
	}
}

// Add appends a fully-formed AVP, extending the header's Length by the
// AVP's on-wire footprint (Length + Padding).
func (m *Message) Add(a *avp.AVP) {
	m.AVPs = append(m.AVPs, a)
	m.Header.Length += a.Length + uint32(a.Padding)
}

// AddByName resolves name against the message's dictionary and appends a
// new AVP built from value, using the dictionary's recorded M-flag default.
// The message is left unmutated if the name is not found.
func (m *Message) AddByName(name string, value avp.Value) error {
	code, vendorID, mandatory, ok := m.Dict.AVPByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", diamerr.ErrUnknownAVPName, name)
	}
	var flags uint8
	if mandatory {
		flags |= avp.FlagMandatory
	}
	m.Add(avp.New(code, vendorID, flags, value))
	return nil
}

// GetAVP returns the first top-level AVP with the given code, or nil.
func (m *Message) GetAVP(code uint32) *avp.AVP {
	for _, a := range m.AVPs {
		if a.Code == code {
			return a
		}
	}
	return nil
}

// Encode serializes the header and every AVP in insertion order.
func (m *Message) Encode(w io.Writer) error {
	if err := m.Header.Encode(w); err != nil {
		return diamerr.NewEncodeError("message header", err)
	}
	for _, a := range m.AVPs {
		if err := a.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Bytes encodes the message into a freshly allocated buffer.
func (m *Message) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a complete message from buf using dict to resolve AVP
// types. buf must contain exactly one frame (see the transport package for
// splitting a byte stream into frames).
func Decode(buf []byte, dict Dictionary) (*Message, error) {
	header, err := DecodeHeader(buf)
	if err != nil {
		return nil, diamerr.NewDecodeError("message header", err)
	}
	if !IsRecognizedCommand(header.CommandCode) {
		return nil, diamerr.NewDecodeError("message header",
			fmt.Errorf("%w: %d", diamerr.ErrUnknownCommandCode, header.CommandCode))
	}
	if !IsRecognizedApplication(header.ApplicationID) {
		return nil, diamerr.NewDecodeError("message header",
			fmt.Errorf("%w: %d", diamerr.ErrUnknownApplication, header.ApplicationID))
	}

	msg := &Message{Header: header, Dict: dict}

	r := bytes.NewReader(buf[HeaderSize:])
	offset := uint32(HeaderSize)
	for offset < header.Length {
		a, consumed, err := avp.Decode(r, dict)
		if err != nil {
			return nil, diamerr.NewDecodeError("message AVPs", err)
		}
		msg.AVPs = append(msg.AVPs, a)
		offset += uint32(consumed)
	}
	if offset != header.Length {
		return nil, diamerr.NewDecodeError("message AVPs", diamerr.ErrLengthMismatch)
	}
	return msg, nil
}

func (m *Message) String() string {
	var b bytes.Buffer
	b.WriteString(m.Header.String())
	b.WriteByte('\n')
	for _, a := range m.AVPs {
		var resolve avp.NameResolver
		if m.Dict != nil {
			resolve = m.Dict.AVPName
		}
		b.WriteString(a.Display(resolve, 1))
		b.WriteByte('\n')
	}
	return b.String()
}
