// Package wire holds the big-endian integer helpers shared by the message
// and AVP framing layers, including the 24-bit ("u24") fields that appear in
// both the Diameter message header and the AVP header.
package wire

// PutUint24 writes the low 24 bits of v into buf (which must have len >= 3)
// as three big-endian bytes.
func PutUint24(buf []byte, v uint32) {
	buf[0] = byte(v >> 16)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v)
}

// Uint24 reads a 3-byte big-endian unsigned integer.
func Uint24(buf []byte) uint32 {
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2])
}

// Padding returns the number of zero bytes needed to round length up to the
// next multiple of 4.
func Padding(length int) int {
	return (4 - (length % 4)) % 4
}
