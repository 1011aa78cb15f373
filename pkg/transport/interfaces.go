package transport

// Transport is the collaborator the property-binding core issues
// commands through. Implementations own the underlying communication
// resource; the core never opens, configures or closes it beyond
// calling Close on teardown.
//
// Both methods block for the full round trip. I/O failures (timeout,
// disconnect) wrap scpi.ErrCommunication.
type Transport interface {
	// Write sends a command with no expected response.
	Write(cmd string) error

	// Query sends a command, reads the instrument's text response and
	// returns it with the trailing terminator stripped.
	Query(cmd string) (string, error)

	// Close releases the underlying communication resource.
	Close() error
}

// Compile-time interface satisfaction check.
var _ Transport = (*TCPTransport)(nil)
