package transport

import (
	"bufio"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigol-kit/rigol-go/pkg/log"
	"github.com/rigol-kit/rigol-go/pkg/scpi"
)

// fakeInstrument answers queries on the far end of a pipe.
// Commands ending in "?" get a canned response; others are swallowed.
func fakeInstrument(t *testing.T, conn net.Conn, responses map[string]string) {
	t.Helper()
	go func() {
		r := bufio.NewReader(conn)
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			cmd := strings.TrimRight(line, "\r\n")
			if !strings.HasSuffix(cmd, "?") {
				continue
			}
			resp, ok := responses[cmd]
			if !ok {
				resp = "9.91E37"
			}
			if _, err := conn.Write([]byte(resp + "\n")); err != nil {
				return
			}
		}
	}()
}

func TestQueryStripsTerminator(t *testing.T) {
	client, server := net.Pipe()
	fakeInstrument(t, server, map[string]string{
		"*IDN?": "RIGOL TECHNOLOGIES,DS1054Z,DS1ZA0000001,00.04.04\r",
	})

	tr := New(client)
	defer tr.Close()

	got, err := tr.Query("*IDN?")
	require.NoError(t, err)
	assert.Equal(t, "RIGOL TECHNOLOGIES,DS1054Z,DS1ZA0000001,00.04.04", got)
}

func TestWriteAppendsTerminator(t *testing.T) {
	client, server := net.Pipe()
	received := make(chan string, 1)
	go func() {
		line, err := bufio.NewReader(server).ReadString('\n')
		if err == nil {
			received <- line
		}
	}()

	tr := New(client)
	defer tr.Close()

	require.NoError(t, tr.Write(":RUN"))
	select {
	case line := <-received:
		assert.Equal(t, ":RUN\n", line)
	case <-time.After(time.Second):
		t.Fatal("command never arrived")
	}
}

func TestQueryTimeoutIsCommunicationError(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()
	// The far end reads but never answers.
	go func() {
		_, _ = bufio.NewReader(server).ReadString('\n')
		select {}
	}()

	tr := New(client, WithTimeout(50*time.Millisecond))
	defer tr.Close()

	_, err := tr.Query(":TRIG:STAT?")
	assert.True(t, errors.Is(err, scpi.ErrCommunication), "error = %v", err)
}

func TestWriteAfterClose(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	tr := New(client)
	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close(), "Close must be idempotent")

	err := tr.Write(":STOP")
	assert.True(t, errors.Is(err, scpi.ErrCommunication), "error = %v", err)
}

func TestTrafficLogging(t *testing.T) {
	client, server := net.Pipe()
	fakeInstrument(t, server, map[string]string{":CHAN1:DISP?": "1"})

	var rec recorder
	tr := New(client, WithLogger(&rec))
	defer tr.Close()

	require.NoError(t, tr.Write(":CHAN1:DISP 1"))
	_, err := tr.Query(":CHAN1:DISP?")
	require.NoError(t, err)

	events := rec.take()
	require.Len(t, events, 3)

	assert.Equal(t, log.KindCommand, events[0].Kind)
	assert.Equal(t, ":CHAN1:DISP 1", events[0].Payload)
	assert.Equal(t, log.DirectionOut, events[0].Direction)

	assert.Equal(t, log.KindQuery, events[1].Kind)
	assert.Equal(t, log.KindResponse, events[2].Kind)
	assert.Equal(t, "1", events[2].Payload)
	assert.Equal(t, log.DirectionIn, events[2].Direction)

	// Every event in the session carries the same connection ID.
	for _, e := range events {
		assert.Equal(t, tr.ConnectionID(), e.ConnectionID)
	}
}

// recorder is a log.Logger capturing events for assertions.
type recorder struct {
	events []log.Event
}

func (r *recorder) Log(e log.Event)   { r.events = append(r.events, e) }
func (r *recorder) take() []log.Event { return r.events }
