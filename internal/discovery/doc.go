// Package discovery finds development auth API servers on the local network
// over multicast DNS.
//
// Servers advertise themselves with the "_authdeck._tcp" service type (the
// bundled mock API does so when started with --advertise). Scan collects every
// advertisement seen before its timeout; First returns as soon as one answers.
//
// # Usage Example
//
//	endpoints, err := discovery.Scan(ctx, 3*time.Second)
//	if err != nil {
//	    return err
//	}
//	for _, ep := range endpoints {
//	    fmt.Println(ep.Name, ep.BaseURL())
//	}
//
// # Network Requirements
//
//   - Requires multicast support on the network interface
//   - Servers must be on the same local network segment
//   - Firewall must allow mDNS (UDP port 5353)
package discovery
