package avp

// DataType identifies which of the fifteen primitive Diameter AVP value
// encodings (plus Grouped) a dictionary entry resolves to. Unknown is the
// sentinel returned for (code, vendor-id) pairs absent from the dictionary;
// it is never a valid decoded AVP value.
type DataType int

const (
	Unknown DataType = iota
	AddressType
	AddressIPv4Type
	AddressIPv6Type
	IdentityType
	DiameterURIType
	EnumeratedType
	Float32Type
	Float64Type
	GroupedType
	Integer32Type
	Integer64Type
	OctetStringType
	TimeType
	Unsigned32Type
	Unsigned64Type
	UTF8StringType
)

var typeNames = map[DataType]string{
	Unknown:         "Unknown",
	AddressType:     "Address",
	AddressIPv4Type: "AddressIPv4",
	AddressIPv6Type: "AddressIPv6",
	IdentityType:    "Identity",
	DiameterURIType: "DiameterURI",
	EnumeratedType:  "Enumerated",
	Float32Type:     "Float32",
	Float64Type:     "Float64",
	GroupedType:     "Grouped",
	Integer32Type:   "Integer32",
	Integer64Type:   "Integer64",
	OctetStringType: "OctetString",
	TimeType:        "Time",
	Unsigned32Type:  "Unsigned32",
	Unsigned64Type:  "Unsigned64",
	UTF8StringType:  "UTF8String",
}

func (t DataType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// DataTypeByName maps the dictionary XML/YAML "data type" strings onto a
// DataType, per the closed vocabulary in the dictionary schema. Unrecognized
// names map to Unknown.
func DataTypeByName(name string) DataType {
	switch name {
	case "Address":
		return AddressType
	case "IPv4":
		return AddressIPv4Type
	case "IPv6":
		return AddressIPv6Type
	case "DiameterIdentity":
		return IdentityType
	case "DiameterURI":
		return DiameterURIType
	case "Enumerated":
		return EnumeratedType
	case "Float32":
		return Float32Type
	case "Float64":
		return Float64Type
	case "Grouped":
		return GroupedType
	case "Integer32":
		return Integer32Type
	case "Integer64":
		return Integer64Type
	case "OctetString":
		return OctetStringType
	case "Time":
		return TimeType
	case "Unsigned32":
		return Unsigned32Type
	case "Unsigned64":
		return Unsigned64Type
	case "UTF8String":
		return UTF8StringType
	default:
		return Unknown
	}
}

// Resolver is the minimal dictionary surface the AVP decoder needs: resolve
// an AVP's wire (code, vendor-id) pair to the value type used to decode it.
// *dictionary.Dictionary satisfies this; kept as a narrow interface here so
// the avp package never imports the dictionary package.
type Resolver interface {
	AVPType(code, vendorID uint32) (DataType, bool)
}

// NewValue constructs the zero value for a DataType, ready for Decode.
func NewValue(t DataType) Value {
	switch t {
	case AddressType:
		return &Address{}
	case AddressIPv4Type:
		return &AddressIPv4{}
	case AddressIPv6Type:
		return &AddressIPv6{}
	case IdentityType:
		return &Identity{}
	case DiameterURIType:
		return &DiameterURI{}
	case EnumeratedType:
		return &Enumerated{}
	case Float32Type:
		return &Float32{}
	case Float64Type:
		return &Float64{}
	case GroupedType:
		return &Grouped{}
	case Integer32Type:
		return &Integer32{}
	case Integer64Type:
		return &Integer64{}
	case OctetStringType:
		return &OctetString{}
	case TimeType:
		return &Time{}
	case Unsigned32Type:
		return &Unsigned32{}
	case Unsigned64Type:
		return &Unsigned64{}
	case UTF8StringType:
		return &UTF8String{}
	default:
		return nil
	}
}
