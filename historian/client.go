package historian

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sabertrack/hud"
)

const (
	defaultRetryInterval = 2 * time.Second
	defaultEventBuffer   = 16

	// Status lines carry full game payloads.
	maxLineBytes = 1 << 20
)

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	retryInterval time.Duration
	eventBuffer   int
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		retryInterval: defaultRetryInterval,
		eventBuffer:   defaultEventBuffer,
	}
}

// WithRetryInterval sets the delay between reconnection attempts after
// the historian connection drops.
func WithRetryInterval(d time.Duration) Option {
	return func(o *clientOptions) {
		if d > 0 {
			o.retryInterval = d
		}
	}
}

// WithEventBuffer sets the capacity of the Events channel.
func WithEventBuffer(n int) Option {
	return func(o *clientOptions) {
		if n >= 0 {
			o.eventBuffer = n
		}
	}
}

// Client maintains the unix-socket connection to the historian and
// republishes its messages as Events. After a successful Dial the
// client reconnects on its own until Close is called.
type Client struct {
	socketPath string
	retry      time.Duration
	events     chan Event
	cancel     context.CancelFunc
	group      *errgroup.Group

	mu     sync.Mutex
	conn   net.Conn
	closed bool
}

// Dial connects to the historian's unix socket and starts the receive
// loop. The initial connection is made synchronously so callers get an
// immediate error for a bad socket path; later drops are handled by
// background reconnection.
func Dial(socketPath string, opts ...Option) (*Client, error) {
	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("historian: dial %s: %w", socketPath, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)

	c := &Client{
		socketPath: socketPath,
		retry:      options.retryInterval,
		events:     make(chan Event, options.eventBuffer),
		cancel:     cancel,
		group:      group,
		conn:       conn,
	}
	group.Go(func() error {
		c.run(ctx, conn)
		return nil
	})
	return c, nil
}

// Events returns the channel the client publishes on. The channel is
// closed after Close. Events are values; consumers may retain them.
func (c *Client) Events() <-chan Event { return c.events }

// Close tears down the connection and stops the background goroutines.
// It is safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	conn := c.conn
	c.mu.Unlock()

	c.cancel()
	if conn != nil {
		conn.Close()
	}
	return c.group.Wait()
}

// run serves the current connection and redials when it drops.
func (c *Client) run(ctx context.Context, conn net.Conn) {
	defer close(c.events)
	for {
		err := c.serve(ctx, conn)
		if ctx.Err() != nil {
			return
		}
		hud.Logger().Warn("historian connection lost", slog.Any("error", err))
		if !c.emit(ctx, Event{State: Unconnected}) {
			return
		}

		conn = nil
		for conn == nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.retry):
			}
			next, err := net.Dial("unix", c.socketPath)
			if err != nil {
				hud.Logger().Debug("historian redial failed", slog.Any("error", err))
				continue
			}
			conn = next
		}
		if !c.adopt(conn) {
			conn.Close()
			return
		}
	}
}

// adopt installs a freshly dialed connection so Close can reach it.
func (c *Client) adopt(conn net.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.conn = conn
	return true
}

// serve requests a status snapshot and decodes messages until the
// connection fails.
func (c *Client) serve(ctx context.Context, conn net.Conn) error {
	if !c.emit(ctx, Event{State: ConnectedWaiting}) {
		return ctx.Err()
	}
	if _, err := io.WriteString(conn, "{\"cmd\": \"status\"}\n"); err != nil {
		return err
	}

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		var msg message
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			hud.Logger().Warn("historian sent an undecodable line", slog.Any("error", err))
			continue
		}
		status := decodeStatus(msg)
		if status == nil {
			continue
		}
		if !c.emit(ctx, Event{State: ConnectedReady, Status: status}) {
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return io.EOF
}

// decodeStatus extracts a status snapshot from a wire message, or nil
// when the message carries none.
func decodeStatus(msg message) *Status {
	switch msg.MsgType {
	case "event":
		return msg.Status
	case "response":
		if !msg.Success || len(msg.Data) == 0 {
			return nil
		}
		var status Status
		if err := json.Unmarshal(msg.Data, &status); err != nil {
			// Failed commands carry a plain string in data.
			hud.Logger().Debug("historian response without a status payload",
				slog.Any("error", err))
			return nil
		}
		return &status
	default:
		return nil
	}
}

func (c *Client) emit(ctx context.Context, ev Event) bool {
	select {
	case c.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
