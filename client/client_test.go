package client

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/diametrix/diameter/avp"
	"github.com/diametrix/diameter/diameter"
)

type stubDict struct{}

func (stubDict) AVPType(code, vendorID uint32) (avp.DataType, bool) {
	return avp.UTF8StringType, true
}
func (stubDict) AVPName(code, vendorID uint32) (string, bool) { return "", false }
func (stubDict) AVPByName(name string) (uint32, uint32, bool, bool) {
	return 0, 0, false, false
}

// newTestClient wires a Client directly to one end of a net.Pipe, bypassing
// Connect's real dialer so the reader loop can be exercised without a
// listening socket.
func newTestClient(conn net.Conn) *Client {
	c := New("test", WithDictionary(stubDict{}))
	c.conn = conn
	return c
}

func answer(t *testing.T, peer net.Conn, hopByHopID uint32) {
	t.Helper()
	msg := diameter.New(diameter.CommandDeviceWatchdog, diameter.ApplicationCommon, 0, hopByHopID, hopByHopID, stubDict{})
	raw, err := msg.Bytes()
	if err != nil {
		t.Fatalf("encode answer: %v", err)
	}
	if _, err := peer.Write(raw); err != nil {
		t.Fatalf("write answer: %v", err)
	}
}

func TestClientMultiplexOutOfOrderResponses(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	defer serverSide.Close()

	c := newTestClient(clientSide)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	req := func(id uint32) *diameter.Message {
		return diameter.New(diameter.CommandDeviceWatchdog, diameter.ApplicationCommon, diameter.FlagRequest, id, id, stubDict{})
	}

	// net.Pipe is unbuffered, so each SendMessage write blocks until the
	// server side reads it: drain the three request frames concurrently.
	drained := make(chan error, 1)
	go func() {
		for i := 0; i < 3; i++ {
			buf := make([]byte, 20)
			if _, err := serverSide.Read(buf); err != nil {
				drained <- err
				return
			}
		}
		drained <- nil
	}()

	slot1, err := c.SendMessage(req(1))
	if err != nil {
		t.Fatalf("send 1: %v", err)
	}
	slot2, err := c.SendMessage(req(2))
	if err != nil {
		t.Fatalf("send 2: %v", err)
	}
	slot3, err := c.SendMessage(req(3))
	if err != nil {
		t.Fatalf("send 3: %v", err)
	}

	// Once all three requests are read, answer out of order: 2, 3, 1.
	if err := <-drained; err != nil {
		t.Fatalf("read requests: %v", err)
	}
	answer(t, serverSide, 2)
	answer(t, serverSide, 3)
	answer(t, serverSide, 1)

	wait := func(name string, ch <-chan *diameter.Message, want uint32) {
		select {
		case msg := <-ch:
			if msg.Header.HopByHopID != want {
				t.Fatalf("%s: HopByHopID = %d, want %d", name, msg.Header.HopByHopID, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("%s: timed out waiting for response", name)
		}
	}
	wait("slot2", slot2, 2)
	wait("slot3", slot3, 3)
	wait("slot1", slot1, 1)
}

func TestSendMessageWithoutConnect(t *testing.T) {
	c := New("unused")
	_, err := c.SendMessage(diameter.New(diameter.CommandDeviceWatchdog, diameter.ApplicationCommon, 0, 1, 1, stubDict{}))
	if err == nil {
		t.Fatal("expected error sending before Connect")
	}
}

func TestClientRunStopsOnEOF(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	c := newTestClient(clientSide)

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	serverSide.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v, want nil on clean close", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after peer close")
	}
}

func TestEncodedRequestFrameIsWellFormed(t *testing.T) {
	msg := diameter.New(diameter.CommandDeviceWatchdog, diameter.ApplicationCommon, diameter.FlagRequest, 7, 7, stubDict{})
	raw, err := msg.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != diameter.HeaderSize {
		t.Fatalf("len = %d, want %d", len(raw), diameter.HeaderSize)
	}
	if !bytes.Equal(raw[:1], []byte{diameter.Version}) {
		t.Fatalf("version byte = %v", raw[:1])
	}
}
