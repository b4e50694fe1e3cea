// Package transport implements the Diameter wire codec: framing a single
// message on a byte stream with a length prefix and a hard size ceiling.
package transport

import (
	"io"

	"github.com/diametrix/diameter/diamerr"
	"github.com/diametrix/diameter/internal/wire"
)

// MaxFrameSize is the hard ceiling on a single Diameter frame's encoded
// size. Exposed as a package variable (rather than a hardcoded literal) so
// embedding applications can raise or lower it; defaults to 1 MiB.
var MaxFrameSize uint32 = 1 << 20

// ReadFrame reads one length-prefixed Diameter message frame from r. It
// peeks the 4-byte version+u24-length prefix, enforces MaxFrameSize, then
// reads the remainder of the frame into a single buffer ready for
// diameter.Decode. An io.EOF or io.ErrUnexpectedEOF on the prefix read
// signals a clean disconnect; callers should treat it as such rather than
// as a protocol error.
func ReadFrame(r io.Reader) ([]byte, error) {
	prefix := make([]byte, 4)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, err
	}
	length := wire.Uint24(prefix[1:4])
	if length > MaxFrameSize {
		return nil, diamerr.ErrFrameTooLarge
	}
	if length < 4 {
		return nil, diamerr.ErrFrameTooShort
	}
	buf := make([]byte, length)
	copy(buf, prefix)
	if _, err := io.ReadFull(r, buf[4:]); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteFrame writes an already-encoded message frame to w in a single call,
// so the bytes of one frame are never interleaved with another on the wire.
func WriteFrame(w io.Writer, frame []byte) error {
	_, err := w.Write(frame)
	return err
}
