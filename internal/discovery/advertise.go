package discovery

import (
	"fmt"

	"github.com/grandcat/zeroconf"
)

// Advertiser announces an API server under ServiceType until Shutdown.
type Advertiser struct {
	server *zeroconf.Server
}

// Advertise registers instance on port with the given TXT metadata.
func Advertise(instance string, port int, metadata map[string]string) (*Advertiser, error) {
	txt := make([]string, 0, len(metadata))
	for k, v := range metadata {
		txt = append(txt, k+"="+v)
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	return &Advertiser{server: server}, nil
}

// Shutdown withdraws the advertisement.
func (a *Advertiser) Shutdown() {
	if a != nil && a.server != nil {
		a.server.Shutdown()
	}
}
