// Package client implements the Diameter client transport: connect once,
// then multiplex many concurrent request/response exchanges over that one
// connection by hop-by-hop id.
package client

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diametrix/diameter/diameter"
	"github.com/diametrix/diameter/diamerr"
	"github.com/diametrix/diameter/transport"
)

// OptionsFunc configures a Client, following the functional-options pattern
// used throughout this module.
type OptionsFunc func(*options)

type options struct {
	tlsConfig   *tls.Config
	dialTimeout time.Duration
	dict        diameter.Dictionary
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		dialTimeout: 10 * time.Second,
		logger:      slog.Default(),
	}
}

// WithTLSConfig wraps the TCP connection with TLS using cfg once Connect
// dials. A nil config (the default) means plain TCP.
func WithTLSConfig(cfg *tls.Config) OptionsFunc {
	return func(o *options) { o.tlsConfig = cfg }
}

// WithDialTimeout bounds how long Connect waits for the TCP handshake.
func WithDialTimeout(d time.Duration) OptionsFunc {
	return func(o *options) { o.dialTimeout = d }
}

// WithDictionary sets the dictionary used to decode every response frame.
func WithDictionary(dict diameter.Dictionary) OptionsFunc {
	return func(o *options) { o.dict = dict }
}

// WithLogger overrides the default slog logger.
func WithLogger(logger *slog.Logger) OptionsFunc {
	return func(o *options) { o.logger = logger }
}

// Client is a single long-lived connection to one Diameter peer, with a
// hop-by-hop-id keyed map of single-shot response slots shared between the
// sender (SendMessage) and the reader loop (Run).
type Client struct {
	options
	addr string

	conn    net.Conn
	writeMu sync.Mutex

	slotsMu sync.Mutex
	slots   map[uint32]chan *diameter.Message

	seq uint32
}

// New creates a Client targeting addr; call Connect before SendMessage/Run.
func New(addr string, opts ...OptionsFunc) *Client {
	o := defaultOptions()
	for _, f := range opts {
		f(&o)
	}
	return &Client{
		options: o,
		addr:    addr,
		slots:   make(map[uint32]chan *diameter.Message),
	}
}

// Connect performs the TCP (and TLS, if configured) handshake.
func (c *Client) Connect(ctx context.Context) error {
	dialer := net.Dialer{Timeout: c.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		c.logger.Error("diameter client: connect failed", "addr", c.addr, "err", err)
		return err
	}
	if c.tlsConfig != nil {
		conn = tls.Client(conn, c.tlsConfig)
	}
	c.conn = conn
	c.logger.Info("diameter client: connected", "addr", c.addr)
	return nil
}

// NextHopByHopID returns a fresh, monotonically increasing hop-by-hop id
// for convenience; callers are free to generate ids by other means.
func (c *Client) NextHopByHopID() uint32 {
	return atomic.AddUint32(&c.seq, 1)
}

// SendMessage registers a response slot under msg's hop-by-hop id, writes
// the encoded frame under the writer mutex, and returns the channel the
// caller should receive the matching response from. Reusing a hop-by-hop id
// already in flight silently overwrites the earlier slot — the caller is
// responsible for id uniqueness.
func (c *Client) SendMessage(msg *diameter.Message) (<-chan *diameter.Message, error) {
	if c.conn == nil {
		return nil, diamerr.ErrNotConnected
	}
	slot := make(chan *diameter.Message, 1)
	c.slotsMu.Lock()
	c.slots[msg.Header.HopByHopID] = slot
	c.slotsMu.Unlock()

	raw, err := msg.Bytes()
	if err != nil {
		return nil, err
	}

	c.writeMu.Lock()
	err = transport.WriteFrame(c.conn, raw)
	c.writeMu.Unlock()
	if err != nil {
		return nil, &diamerr.ClientError{Msg: "write frame: " + err.Error()}
	}
	return slot, nil
}

// Run drives the reader loop: decode frames and deliver each to the slot
// matching its hop-by-hop id, until the connection closes, a frame cannot
// be read, or a frame fails to decode. A clean EOF returns nil; any other
// error is returned to the caller.
func (c *Client) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frame, err := transport.ReadFrame(c.conn)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				c.logger.Info("diameter client: connection closed", "addr", c.addr)
				return nil
			}
			return err
		}

		msg, err := diameter.Decode(frame, c.dict)
		if err != nil {
			c.logger.Error("diameter client: decode failed", "addr", c.addr, "err", err)
			return err
		}

		c.slotsMu.Lock()
		slot, ok := c.slots[msg.Header.HopByHopID]
		if ok {
			delete(c.slots, msg.Header.HopByHopID)
		}
		c.slotsMu.Unlock()

		if !ok {
			c.logger.Warn("diameter client: no pending request for hop-by-hop id", "id", msg.Header.HopByHopID)
			continue
		}
		slot <- msg
	}
}

// Close closes the underlying connection; any response slots still pending
// simply become unreachable once Run returns.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
