package historian

import (
	"bufio"
	"encoding/json"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const aliceStatus = `{"connection": {"connected_to_beatsaber": true, "current_player": "alice", "in_game": false}, "current_game": null, "last_game": null}`

// startServer runs a one-connection-at-a-time fake historian on a
// fresh unix socket and returns the socket path.
func startServer(t *testing.T, handle func(net.Conn)) string {
	t.Helper()
	sock := filepath.Join(t.TempDir(), "historian.sock")
	ln, err := net.Listen("unix", sock)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			handle(conn)
		}
	}()
	return sock
}

func waitEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("event channel closed early")
		}
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for an event")
		return Event{}
	}
}

func TestDialMissingSocket(t *testing.T) {
	if _, err := Dial(filepath.Join(t.TempDir(), "absent.sock")); err == nil {
		t.Fatal("Dial on a missing socket succeeded")
	}
}

func TestClientReceivesStatus(t *testing.T) {
	sock := startServer(t, func(conn net.Conn) {
		defer conn.Close()
		line, err := bufio.NewReader(conn).ReadString('\n')
		if err != nil {
			t.Errorf("server read: %v", err)
			return
		}
		if !strings.Contains(line, `"status"`) {
			t.Errorf("first client line = %q, want a status command", line)
		}
		conn.Write([]byte(`{"msgtype": "response", "success": true, "data": ` + aliceStatus + `}` + "\n"))
		conn.Write([]byte(`{"msgtype": "event", "status": ` + aliceStatus + `}` + "\n"))
		// Hold the connection open until the client goes away.
		bufio.NewReader(conn).ReadString('\n')
	})

	client, err := Dial(sock)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	if ev := waitEvent(t, client.Events()); ev.State != ConnectedWaiting {
		t.Fatalf("first event state = %v, want ConnectedWaiting", ev.State)
	}

	ev := waitEvent(t, client.Events())
	if ev.State != ConnectedReady {
		t.Fatalf("second event state = %v, want ConnectedReady", ev.State)
	}
	if ev.Status == nil {
		t.Fatal("ConnectedReady event without a status snapshot")
	}
	if got := ev.Status.Connection.Player("nobody"); got != "alice" {
		t.Errorf("current player = %q, want alice", got)
	}
	if !ev.Status.Connection.ConnectedToBeatSaber {
		t.Error("snapshot lost connected_to_beatsaber")
	}

	// The pushed event message arrives the same way.
	if ev := waitEvent(t, client.Events()); ev.State != ConnectedReady {
		t.Fatalf("third event state = %v, want ConnectedReady", ev.State)
	}
}

func TestClientReconnects(t *testing.T) {
	sock := startServer(t, func(conn net.Conn) {
		bufio.NewReader(conn).ReadString('\n')
		conn.Write([]byte(`{"msgtype": "response", "success": true, "data": ` + aliceStatus + `}` + "\n"))
		conn.Close()
	})

	client, err := Dial(sock, WithRetryInterval(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	want := []State{ConnectedWaiting, ConnectedReady, Unconnected, ConnectedWaiting, ConnectedReady}
	for i, state := range want {
		if ev := waitEvent(t, client.Events()); ev.State != state {
			t.Fatalf("event %d state = %v, want %v", i, ev.State, state)
		}
	}
}

func TestClientClose(t *testing.T) {
	sock := startServer(t, func(conn net.Conn) {
		defer conn.Close()
		// Never respond; hold the connection until the client drops it.
		r := bufio.NewReader(conn)
		for {
			if _, err := r.ReadString('\n'); err != nil {
				return
			}
		}
	})

	client, err := Dial(sock)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	waitEvent(t, client.Events()) // ConnectedWaiting

	if err := client.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	// The channel drains and closes after Close.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-client.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event channel never closed after Close")
		}
	}
}

func TestDecodeStatus(t *testing.T) {
	var snapshot Status
	if err := json.Unmarshal([]byte(aliceStatus), &snapshot); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	if got := decodeStatus(message{MsgType: "event", Status: &snapshot}); got == nil {
		t.Error("event message dropped its status")
	}
	if got := decodeStatus(message{MsgType: "response", Success: true, Data: json.RawMessage(aliceStatus)}); got == nil {
		t.Error("successful response dropped its status")
	}
	if got := decodeStatus(message{MsgType: "response", Success: false, Data: json.RawMessage(`"No such command: \"x\""`)}); got != nil {
		t.Error("failed response produced a status")
	}
	if got := decodeStatus(message{MsgType: "banner"}); got != nil {
		t.Error("unknown message type produced a status")
	}
}

func TestStateStrings(t *testing.T) {
	cases := map[State]string{
		Unconnected:      "unconnected",
		ConnectedWaiting: "connected-waiting",
		ConnectedReady:   "connected-ready",
		State(42):        "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}
