// Package scpitest provides a scriptable transport double for testing
// instrument bindings without a connected oscilloscope.
package scpitest

import (
	"fmt"
	"sync"

	"github.com/rigol-kit/rigol-go/pkg/scpi"
)

// Transport records every command it receives and answers queries from
// a table of stubbed responses. The zero value is not usable; construct
// with New.
type Transport struct {
	mu        sync.Mutex
	responses map[string]string
	writes    []string
	queries   []string
	failure   error
	closed    bool
}

// New returns an empty transport double.
func New() *Transport {
	return &Transport{responses: make(map[string]string)}
}

// Stub registers the response returned for an exact query string,
// including the trailing question mark.
func (t *Transport) Stub(query, response string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses[query] = response
}

// FailWith makes every subsequent Write and Query fail with err.
// Pass nil to clear.
func (t *Transport) FailWith(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failure = err
}

// Write records the command.
func (t *Transport) Write(cmd string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.failure != nil {
		return t.failure
	}
	t.writes = append(t.writes, cmd)
	return nil
}

// Query records the query and returns the stubbed response. A query
// with no stub fails, so tests catch bindings issuing unexpected
// commands.
func (t *Transport) Query(cmd string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.failure != nil {
		return "", t.failure
	}
	t.queries = append(t.queries, cmd)
	resp, ok := t.responses[cmd]
	if !ok {
		return "", fmt.Errorf("%w: no stub for query %q", scpi.ErrCommunication, cmd)
	}
	return resp, nil
}

// Close marks the transport closed.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (t *Transport) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Writes returns the recorded write commands in order.
func (t *Transport) Writes() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.writes...)
}

// Queries returns the recorded queries in order.
func (t *Transport) Queries() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.queries...)
}

// Calls returns the total number of writes and queries.
func (t *Transport) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.writes) + len(t.queries)
}
