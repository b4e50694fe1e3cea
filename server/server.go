// Package server implements the Diameter server transport: accept
// connections and, for each one, decode a request, hand it to a user
// handler, and write back the handler's answer — sequentially per
// connection, concurrently across connections.
package server

import (
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/diametrix/diameter/diameter"
	"github.com/diametrix/diameter/transport"
)

// Handler answers one decoded request with a response message, or an error
// if the connection should be dropped.
type Handler func(*diameter.Message) (*diameter.Message, error)

// OptionsFunc configures a Server, following the functional-options pattern
// used throughout this module.
type OptionsFunc func(*options)

type options struct {
	addr        string
	tlsConfig   *tls.Config
	dict        diameter.Dictionary
	logger      *slog.Logger
	connTimeout time.Duration
}

func defaultOptions() options {
	return options{
		addr:   "0.0.0.0:3868",
		logger: slog.Default(),
	}
}

// WithServerAddr overrides the default listen address ("0.0.0.0:3868").
func WithServerAddr(addr string) OptionsFunc {
	return func(o *options) { o.addr = addr }
}

// WithTLSConfig makes the server accept TLS connections instead of plain TCP.
func WithTLSConfig(cfg *tls.Config) OptionsFunc {
	return func(o *options) { o.tlsConfig = cfg }
}

// WithDictionary sets the dictionary used to decode incoming requests.
func WithDictionary(dict diameter.Dictionary) OptionsFunc {
	return func(o *options) { o.dict = dict }
}

// WithLogger overrides the default slog logger.
func WithLogger(logger *slog.Logger) OptionsFunc {
	return func(o *options) { o.logger = logger }
}

// WithConnectionTimeout sets a read deadline refreshed before each frame
// read; zero (the default) disables the deadline.
func WithConnectionTimeout(d time.Duration) OptionsFunc {
	return func(o *options) { o.connTimeout = d }
}

// Server accepts Diameter connections and dispatches each request on them
// to handler. It does not implement the capabilities-exchange or
// watchdog peer state machine — that is left to the handler, which sees
// raw decoded messages including CER/DWR like any other request.
type Server struct {
	options
	handler Handler
}

// New creates a Server that answers every request with handler.
func New(handler Handler, opts ...OptionsFunc) *Server {
	o := defaultOptions()
	for _, f := range opts {
		f(&o)
	}
	return &Server{options: o, handler: handler}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// ListenAndServe listens on s.Addr and serves connections until Accept
// fails (typically because the listener was closed).
func (s *Server) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	defer listener.Close()
	return s.Serve(listener)
}

// Serve accepts connections off listener, spawning one goroutine per
// connection. Callers that need to control the listener directly (e.g. to
// pick an ephemeral port in tests) can construct it themselves and call
// Serve instead of ListenAndServe.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("diameter server: listening", "addr", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}
		if s.tlsConfig != nil {
			conn = tls.Server(conn, s.tlsConfig)
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	remote := conn.RemoteAddr()
	s.logger.Info("diameter server: connection accepted", "remote", remote)

	for {
		if s.connTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(s.connTimeout))
		}

		frame, err := transport.ReadFrame(conn)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				s.logger.Info("diameter server: connection closed", "remote", remote)
				return
			}
			s.logger.Error("diameter server: frame read failed", "remote", remote, "err", err)
			return
		}

		req, err := diameter.Decode(frame, s.dict)
		if err != nil {
			s.logger.Error("diameter server: decode failed", "remote", remote, "err", err)
			return
		}

		resp, err := s.handler(req)
		if err != nil {
			s.logger.Error("diameter server: handler failed", "remote", remote, "err", err)
			return
		}

		raw, err := resp.Bytes()
		if err != nil {
			s.logger.Error("diameter server: encode failed", "remote", remote, "err", err)
			return
		}
		if err := transport.WriteFrame(conn, raw); err != nil {
			s.logger.Error("diameter server: write failed", "remote", remote, "err", err)
			return
		}
	}
}
