package transport

import (
	"bufio"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rigol-kit/rigol-go/pkg/log"
	"github.com/rigol-kit/rigol-go/pkg/scpi"
)

const (
	// DefaultPort is the LXI raw-socket port DS1000Z scopes listen on.
	DefaultPort = 5555

	// DefaultTimeout is the per-round-trip deadline when none is set.
	DefaultTimeout = 5 * time.Second

	// Terminator ends every command and every response.
	Terminator = '\n'
)

// Option configures a TCPTransport.
type Option func(*TCPTransport)

// WithTimeout sets the deadline applied to each write and each read.
// Zero disables deadlines.
func WithTimeout(d time.Duration) Option {
	return func(t *TCPTransport) { t.timeout = d }
}

// WithLogger sets the traffic logger. Pass nil to disable logging.
func WithLogger(l log.Logger) Option {
	return func(t *TCPTransport) {
		if l != nil {
			t.logger = l
		}
	}
}

// TCPTransport implements Transport over an LXI raw socket.
// It serializes round trips internally so a stray concurrent caller
// cannot interleave a command into another caller's query/read pair,
// but callers should still treat the link as single-user.
type TCPTransport struct {
	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
	closed bool

	timeout time.Duration
	logger  log.Logger

	// connID stamps traffic events for this session.
	connID string
	remote string
}

// Dial connects to an instrument at addr. If addr carries no port, the
// LXI raw-socket default 5555 is appended. Connection failures wrap
// scpi.ErrCommunication.
func Dial(addr string, opts ...Option) (*TCPTransport, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, strconv.Itoa(DefaultPort))
	}

	conn, err := net.DialTimeout("tcp", addr, DefaultTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", scpi.ErrCommunication, addr, err)
	}
	return New(conn, opts...), nil
}

// New wraps an established connection. Useful for tests (net.Pipe) and
// for callers that manage their own dialing.
func New(conn net.Conn, opts ...Option) *TCPTransport {
	t := &TCPTransport{
		conn:    conn,
		reader:  bufio.NewReader(conn),
		timeout: DefaultTimeout,
		logger:  log.NoopLogger{},
		connID:  uuid.NewString(),
	}
	if conn.RemoteAddr() != nil {
		t.remote = conn.RemoteAddr().String()
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ConnectionID returns the UUID stamped on this session's log events.
func (t *TCPTransport) ConnectionID() string { return t.connID }

// Write sends a command with no expected response.
func (t *TCPTransport) Write(cmd string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.send(cmd, log.KindCommand)
}

// Query sends a command and reads one terminated response line.
func (t *TCPTransport) Query(cmd string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.send(cmd, log.KindQuery); err != nil {
		return "", err
	}

	if t.timeout > 0 {
		if err := t.conn.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
			return "", t.fail(fmt.Errorf("%w: set deadline: %v", scpi.ErrCommunication, err))
		}
	}

	line, err := t.reader.ReadString(Terminator)
	if err != nil {
		return "", t.fail(fmt.Errorf("%w: read response to %q: %v", scpi.ErrCommunication, cmd, err))
	}

	resp := strings.TrimRight(line, "\r\n")
	t.event(log.DirectionIn, log.KindResponse, resp, "")
	return resp, nil
}

// Close closes the connection. Safe to call multiple times.
func (t *TCPTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	if err := t.conn.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", scpi.ErrCommunication, err)
	}
	return nil
}

// send writes one terminated command. Caller holds t.mu.
func (t *TCPTransport) send(cmd string, kind log.Kind) error {
	if t.closed {
		return t.fail(fmt.Errorf("%w: transport closed", scpi.ErrCommunication))
	}

	if t.timeout > 0 {
		if err := t.conn.SetWriteDeadline(time.Now().Add(t.timeout)); err != nil {
			return t.fail(fmt.Errorf("%w: set deadline: %v", scpi.ErrCommunication, err))
		}
	}

	if _, err := t.conn.Write([]byte(cmd + string(Terminator))); err != nil {
		return t.fail(fmt.Errorf("%w: write %q: %v", scpi.ErrCommunication, cmd, err))
	}

	t.event(log.DirectionOut, kind, cmd, "")
	return nil
}

// fail records an error event and returns err unchanged.
func (t *TCPTransport) fail(err error) error {
	t.event(log.DirectionOut, log.KindError, "", err.Error())
	return err
}

func (t *TCPTransport) event(dir log.Direction, kind log.Kind, payload, errText string) {
	t.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: t.connID,
		Direction:    dir,
		Kind:         kind,
		Payload:      payload,
		RemoteAddr:   t.remote,
		Err:          errText,
	})
}
