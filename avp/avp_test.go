package avp

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/go-test/deep"
)

// testResolver is a tiny fixed (code, vendor-id) -> DataType map used to
// drive AVP decode tests without depending on the dictionary package.
type testResolver map[[2]uint32]DataType

func (r testResolver) AVPType(code, vendorID uint32) (DataType, bool) {
	t, ok := r[[2]uint32{code, vendorID}]
	return t, ok
}

func newTestResolver() testResolver {
	return testResolver{
		{415, 0}: Unsigned32Type, // CC-Request-Number
		{30, 0}:  UTF8StringType, // Called-Station-Id
		{873, 10415}: GroupedType,     // Service-Information
		{874, 10415}: GroupedType,     // PS-Information
	}
}

func TestCCRTwoAVPsDecode(t *testing.T) {
	// CC-Request-Number = Unsigned32(1200), mandatory flag set.
	ccRequestNumber := []byte{
		0x00, 0x00, 0x01, 0x9F, 0x40, 0x00, 0x00, 0x0C,
		0x00, 0x00, 0x04, 0xB0,
	}
	// Called-Station-Id = UTF8String("foobar1234"), no flags, 2 bytes padding.
	calledStationID := []byte{
		0x00, 0x00, 0x00, 0x1E, 0x00, 0x00, 0x00, 0x12,
		0x66, 0x6F, 0x6F, 0x62, 0x61, 0x72, 0x31, 0x32, 0x33, 0x34, 0x00, 0x00,
	}
	stream := append(append([]byte{}, ccRequestNumber...), calledStationID...)

	resolver := newTestResolver()
	r := bytes.NewReader(stream)

	a1, consumed1, err := Decode(r, resolver)
	if err != nil {
		t.Fatalf("decode AVP 415: %v", err)
	}
	if consumed1 != int64(len(ccRequestNumber)) {
		t.Fatalf("consumed %d, want %d", consumed1, len(ccRequestNumber))
	}
	if !a1.IsMandatory() {
		t.Fatal("CC-Request-Number should have M flag set")
	}
	if v, ok := a1.Unsigned32(); !ok || v != 1200 {
		t.Fatalf("CC-Request-Number = %v, want 1200", v)
	}

	a2, consumed2, err := Decode(r, resolver)
	if err != nil {
		t.Fatalf("decode AVP 30: %v", err)
	}
	if consumed2 != int64(len(calledStationID)) {
		t.Fatalf("consumed %d, want %d", consumed2, len(calledStationID))
	}
	if a2.IsMandatory() || a2.IsVendor() || a2.IsProtected() {
		t.Fatal("Called-Station-Id should carry no flags")
	}
	if s, ok := a2.UTF8String(); !ok || s.Data != "foobar1234" {
		t.Fatalf("Called-Station-Id = %q, want foobar1234", s.Data)
	}

	// Re-encode and compare byte-for-byte.
	var buf bytes.Buffer
	if err := a1.Encode(&buf); err != nil {
		t.Fatalf("encode AVP 415: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), ccRequestNumber) {
		t.Fatalf("re-encoded AVP 415 = % X, want % X", buf.Bytes(), ccRequestNumber)
	}
	buf.Reset()
	if err := a2.Encode(&buf); err != nil {
		t.Fatalf("encode AVP 30: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), calledStationID) {
		t.Fatalf("re-encoded AVP 30 = % X, want % X", buf.Bytes(), calledStationID)
	}
}

func TestGroupedNesting(t *testing.T) {
	resolver := newTestResolver()

	calledStationID := New(30, 0, 0, &UTF8String{Data: "10999"})
	psInformation := New(874, 10415, FlagMandatory, &Grouped{Children: []*AVP{calledStationID}})
	serviceInformation := New(873, 10415, FlagMandatory, &Grouped{Children: []*AVP{psInformation}})

	var buf bytes.Buffer
	if err := serviceInformation.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, consumed, err := Decode(bytes.NewReader(buf.Bytes()), resolver)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if consumed != int64(buf.Len()) {
		t.Fatalf("consumed %d, want %d", consumed, buf.Len())
	}

	g, ok := decoded.Grouped()
	if !ok || len(g.Children) != 1 {
		t.Fatalf("expected one PS-Information child, got %+v", g)
	}
	inner, ok := g.Children[0].Grouped()
	if !ok || len(inner.Children) != 1 {
		t.Fatalf("expected one Called-Station-Id grandchild")
	}
	s, ok := inner.Children[0].UTF8String()
	if !ok || s.Data != "10999" {
		t.Fatalf("innermost value = %v, want 10999", s)
	}

	display := decoded.Display(nil, 0)
	if want := "\n    Unknown"; !bytes.Contains([]byte(display), []byte(want)) {
		t.Fatalf("expected depth-2 indentation (4 spaces) in display output:\n%s", display)
	}
}

func TestAddressIPv4(t *testing.T) {
	a := NewAddressIPv4(net.ParseIP("127.0.0.1"))
	var buf bytes.Buffer
	if err := a.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x00, 0x01, 0x7F, 0x00, 0x00, 0x01}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", buf.Bytes(), want)
	}

	var decoded Address
	if err := decoded.Decode(bytes.NewReader(buf.Bytes()), uint32(len(want))); err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(decoded.IP.To4(), a.IP.To4()); diff != nil {
		t.Fatalf("round trip mismatch: %v", diff)
	}

	var bad Address
	if err := bad.Decode(bytes.NewReader(append(want, 0x00)), uint32(len(want)+1)); err == nil {
		t.Fatal("expected decode error for wrong IPv4 address length")
	}
}

func TestAddressIPv6(t *testing.T) {
	ip := net.ParseIP("::1")
	a := NewAddressIPv6(ip)
	var buf bytes.Buffer
	if err := a.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 18 {
		t.Fatalf("length = %d, want 18", buf.Len())
	}
	if buf.Bytes()[0] != 0x00 || buf.Bytes()[1] != 0x02 {
		t.Fatalf("family tag = % X, want 00 02", buf.Bytes()[0:2])
	}

	var decoded Address
	if err := decoded.Decode(bytes.NewReader(buf.Bytes()), 18); err != nil {
		t.Fatal(err)
	}
	if !decoded.IP.Equal(ip) {
		t.Fatalf("decoded IP = %v, want %v", decoded.IP, ip)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	cases := []time.Time{
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 6, 15, 12, 30, 0, 0, time.UTC),
		time.Date(2036, 2, 6, 0, 0, 0, 0, time.UTC),
	}
	for _, tc := range cases {
		tv := NewTime(tc)
		var buf bytes.Buffer
		if err := tv.Encode(&buf); err != nil {
			t.Fatalf("encode %v: %v", tc, err)
		}
		var decoded Time
		if err := decoded.Decode(bytes.NewReader(buf.Bytes()), 4); err != nil {
			t.Fatalf("decode %v: %v", tc, err)
		}
		if !decoded.Data.Equal(tc) {
			t.Fatalf("round trip %v -> %v", tc, decoded.Data)
		}
	}

	overflow := NewTime(time.Date(2037, 1, 1, 0, 0, 0, 0, time.UTC))
	var buf bytes.Buffer
	if err := overflow.Encode(&buf); err == nil {
		t.Fatal("expected overflow error for post-2036 time")
	}
}

func TestPaddingLaw(t *testing.T) {
	for length := 0; length < 8; length++ {
		want := (4 - (length % 4)) % 4
		if got := int((&OctetString{Data: make([]byte, length)}).Length()) % 4; got != 0 {
			_ = want // padding is computed by wire.Padding, verified via New below
		}
		a := New(1, 0, 0, &OctetString{Data: make([]byte, length)})
		if a.Padding != want {
			t.Fatalf("length %d: padding = %d, want %d", length, a.Padding, want)
		}
		if (int(a.Length)+a.Padding)%4 != 0 {
			t.Fatalf("length %d: framed size %d not a multiple of 4", length, int(a.Length)+a.Padding)
		}
	}
}

func TestNewNumericRoundTrip(t *testing.T) {
	resolver := testResolver{
		{268, 0}: Unsigned32Type, // Result-Code
		{1, 0}:   Integer32Type,
	}

	resultCode, err := NewNumeric(268, 0, FlagMandatory, uint32(2001))
	if err != nil {
		t.Fatalf("NewNumeric(uint32): %v", err)
	}
	var buf bytes.Buffer
	if err := resultCode.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, consumed, err := Decode(bytes.NewReader(buf.Bytes()), resolver)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if consumed != int64(buf.Len()) {
		t.Fatalf("consumed %d, want %d", consumed, buf.Len())
	}
	if v, ok := decoded.Unsigned32(); !ok || v != 2001 {
		t.Fatalf("Result-Code = %v, want 2001", v)
	}

	signed, err := NewNumeric(1, 0, 0, int32(-7))
	if err != nil {
		t.Fatalf("NewNumeric(int32): %v", err)
	}
	if v, ok := signed.Integer32(); !ok || v != -7 {
		t.Fatalf("Integer32 = %v, want -7", v)
	}

	if _, err := NewNumeric(1, 0, 0, int8(3)); err == nil {
		t.Fatal("expected error for unsupported numeric type")
	}
}

func TestUnknownAVPRejected(t *testing.T) {
	resolver := testResolver{}
	stream := []byte{
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x08,
	}
	_, _, err := Decode(bytes.NewReader(stream), resolver)
	if err == nil {
		t.Fatal("expected unknown AVP code error")
	}
}

func TestZeroLengthOctetString(t *testing.T) {
	a := New(1, 0, 0, &OctetString{})
	if a.Padding != 0 {
		t.Fatalf("padding = %d, want 0", a.Padding)
	}
	var buf bytes.Buffer
	if err := a.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != HeaderLen {
		t.Fatalf("encoded length = %d, want %d", buf.Len(), HeaderLen)
	}
}
