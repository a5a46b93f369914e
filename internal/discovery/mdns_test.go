package discovery

import (
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func newEntry(instance, host string, port int, v4, v6 []net.IP, txt []string) *zeroconf.ServiceEntry {
	e := zeroconf.NewServiceEntry(instance, ServiceType, ServiceDomain)
	e.HostName = host
	e.Port = port
	e.AddrIPv4 = v4
	e.AddrIPv6 = v6
	e.Text = txt
	return e
}

func TestParseServiceEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantIP   string
		wantPort int
	}{
		{
			name:     "IPv4 endpoint",
			entry:    newEntry("mockapi", "devbox.local.", 3000, []net.IP{net.ParseIP("192.168.1.20")}, nil, nil),
			wantIP:   "192.168.1.20",
			wantPort: 3000,
		},
		{
			name:     "no port defaults",
			entry:    newEntry("mockapi", "devbox.local.", 0, []net.IP{net.ParseIP("10.0.0.5")}, nil, nil),
			wantIP:   "10.0.0.5",
			wantPort: DefaultPort,
		},
		{
			name:     "IPv6 only",
			entry:    newEntry("mockapi", "devbox.local.", 8080, nil, []net.IP{net.ParseIP("fe80::1")}, nil),
			wantIP:   "fe80::1",
			wantPort: 8080,
		},
		{
			name:     "prefers IPv4",
			entry:    newEntry("mockapi", "devbox.local.", 3000, []net.IP{net.ParseIP("192.168.1.50")}, []net.IP{net.ParseIP("fe80::2")}, nil),
			wantIP:   "192.168.1.50",
			wantPort: 3000,
		},
		{
			name:    "no address",
			entry:   newEntry("mockapi", "devbox.local.", 3000, nil, nil, nil),
			wantNil: true,
		},
		{
			name:    "no instance name",
			entry:   newEntry("", "devbox.local.", 3000, []net.IP{net.ParseIP("192.168.1.1")}, nil, nil),
			wantNil: true,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := parseServiceEntry(tt.entry)

			if tt.wantNil {
				if ep != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", ep)
				}
				return
			}
			if ep == nil {
				t.Fatal("parseServiceEntry() = nil, want endpoint")
			}
			if ep.IP != tt.wantIP {
				t.Errorf("IP = %v, want %v", ep.IP, tt.wantIP)
			}
			if ep.Port != tt.wantPort {
				t.Errorf("Port = %v, want %v", ep.Port, tt.wantPort)
			}
			if ep.Name != tt.entry.Instance || ep.Host != tt.entry.HostName {
				t.Errorf("Name/Host = %q/%q", ep.Name, ep.Host)
			}
			if time.Since(ep.DiscoveredAt) > time.Second {
				t.Errorf("DiscoveredAt is not recent: %v", ep.DiscoveredAt)
			}
		})
	}
}

func TestParseTXT(t *testing.T) {
	got := parseTXT([]string{"version=1.2.0", "path=/api", "flag", "eq=a=b"})

	want := map[string]string{
		"version": "1.2.0",
		"path":    "/api",
		"flag":    "",
		"eq":      "a=b",
	}
	if len(got) != len(want) {
		t.Fatalf("parseTXT() has %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("metadata[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestNewScanner(t *testing.T) {
	scanner := NewScanner()
	if scanner.Timeout != DefaultScanTimeout {
		t.Errorf("Timeout = %v, want %v", scanner.Timeout, DefaultScanTimeout)
	}
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		ep      *Endpoint
		wantURL string
	}{
		{"ipv4", &Endpoint{Name: "a", IP: "192.168.1.20", Port: 3000}, "http://192.168.1.20:3000"},
		{"ipv6", &Endpoint{Name: "b", IP: "fe80::1", Port: 8080}, "http://[fe80::1]:8080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ep.BaseURL(); got != tt.wantURL {
				t.Errorf("BaseURL() = %q, want %q", got, tt.wantURL)
			}
		})
	}

	ep := &Endpoint{Name: "mockapi", Host: "devbox.local.", IP: "10.0.0.1", Port: 3000}
	if got, want := ep.String(), "mockapi (devbox.local.) at 10.0.0.1:3000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if ep.GetMetadata("version") != "" {
		t.Error("GetMetadata on nil metadata should be empty")
	}
	ep.Metadata = map[string]string{"version": "1"}
	if ep.GetMetadata("version") != "1" {
		t.Error("GetMetadata(version) should be 1")
	}
}
