package discovery

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	// ServiceTypeSCPIRaw is the DNS-SD service type of the raw SCPI
	// socket.
	ServiceTypeSCPIRaw = "_scpi-raw._tcp"

	// ServiceTypeLXI is the DNS-SD service type of the LXI web
	// interface.
	ServiceTypeLXI = "_lxi._tcp"

	// Domain is the mDNS domain.
	Domain = "local."

	// BrowseTimeout is the default timeout for one-shot lookups.
	BrowseTimeout = 10 * time.Second
)

// ErrNotFound is returned when a lookup finishes without a match.
var ErrNotFound = errors.New("no matching instrument found")

// Service describes one discovered instrument endpoint.
type Service struct {
	// InstanceName is the DNS-SD instance name, typically the
	// instrument's model and serial.
	InstanceName string

	// Host is the advertised hostname.
	Host string

	// Port is the SCPI socket port.
	Port uint16

	// Addresses are the resolved IP addresses, IPv4 first.
	Addresses []string

	// Manufacturer, Model, Serial and Firmware come from the TXT
	// record and may be empty when the instrument does not announce
	// them.
	Manufacturer string
	Model        string
	Serial       string
	Firmware     string
}

// Addr returns a host:port dial target using the first resolved
// address, falling back to the advertised hostname.
func (s *Service) Addr() string {
	host := s.Host
	if len(s.Addresses) > 0 {
		host = s.Addresses[0]
	}
	return net.JoinHostPort(host, strconv.Itoa(int(s.Port)))
}

// parseTXT splits DNS-SD TXT strings into a key/value map. Keys are
// compared case-insensitively; entries without '=' are ignored.
func parseTXT(txt []string) map[string]string {
	out := make(map[string]string, len(txt))
	for _, t := range txt {
		key, value, ok := strings.Cut(t, "=")
		if !ok || key == "" {
			continue
		}
		out[strings.ToLower(key)] = value
	}
	return out
}
