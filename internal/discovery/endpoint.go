package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Endpoint is an auth API server found on the local network.
type Endpoint struct {
	// Name is the mDNS instance name (e.g., "authdeck-mockapi")
	Name string

	// Host is the mDNS hostname (e.g., "devbox.local.")
	Host string

	// IP is the address to connect to, IPv4 when one was advertised
	IP string

	// Port is the HTTP port
	Port int

	// Metadata holds the TXT records, e.g. "version" and "path"
	Metadata map[string]string

	// DiscoveredAt is when the endpoint was seen
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the endpoint
func (e *Endpoint) String() string {
	return fmt.Sprintf("%s (%s) at %s", e.Name, e.Host, net.JoinHostPort(e.IP, strconv.Itoa(e.Port)))
}

// BaseURL returns the API root for the endpoint. IPv6 addresses are bracketed.
func (e *Endpoint) BaseURL() string {
	return "http://" + net.JoinHostPort(e.IP, strconv.Itoa(e.Port))
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (e *Endpoint) GetMetadata(key string) string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata[key]
}
