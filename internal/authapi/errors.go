package authapi

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates a request timeout (only with SetTimeout)
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates nothing is listening at the base URL
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeParse indicates the response body was not JSON
	ErrTypeParse
	// ErrTypeRequest indicates the request itself could not be built
	ErrTypeRequest
)

// NetworkErrorSubtype provides more specific network error classification
type NetworkErrorSubtype int

const (
	NetworkErrorGeneral NetworkErrorSubtype = iota
	NetworkErrorTimeout
	NetworkErrorConnectionRefused
	NetworkErrorDNS
	NetworkErrorHostUnreachable
	NetworkErrorNetworkUnreachable
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeRequest:
		return "Request Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// APIError is a transport or parsing failure talking to the authentication
// API. Server rejections (non-2xx with a JSON body) are not errors; they come
// back as a Response.
type APIError struct {
	Type           ErrorType           // Category of error
	Message        string              // Human-readable error message
	StatusCode     int                 // HTTP status code, when a response arrived
	Err            error               // Underlying error (if any)
	NetworkSubtype NetworkErrorSubtype // More specific network error type
	Endpoint       string              // Request URL
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *APIError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes an error and returns a more specific error type
func ClassifyNetworkError(err error, endpoint string) *APIError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &APIError{
			Type:           ErrTypeTimeout,
			Message:        "Request timed out",
			Err:            err,
			NetworkSubtype: NetworkErrorTimeout,
			Endpoint:       endpoint,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &APIError{
			Type:           ErrTypeDNS,
			Message:        fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:            err,
			NetworkSubtype: NetworkErrorDNS,
			Endpoint:       endpoint,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch {
		case errors.Is(opErr.Err, syscall.ECONNREFUSED):
			return &APIError{
				Type:           ErrTypeConnectionRefused,
				Message:        "Server refused connection",
				Err:            err,
				NetworkSubtype: NetworkErrorConnectionRefused,
				Endpoint:       endpoint,
			}
		case errors.Is(opErr.Err, syscall.EHOSTUNREACH):
			return &APIError{
				Type:           ErrTypeNetwork,
				Message:        "Host unreachable",
				Err:            err,
				NetworkSubtype: NetworkErrorHostUnreachable,
				Endpoint:       endpoint,
			}
		case errors.Is(opErr.Err, syscall.ENETUNREACH):
			return &APIError{
				Type:           ErrTypeNetwork,
				Message:        "Network unreachable",
				Err:            err,
				NetworkSubtype: NetworkErrorNetworkUnreachable,
				Endpoint:       endpoint,
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return ClassifyNetworkError(urlErr.Err, endpoint)
	}

	return &APIError{
		Type:           ErrTypeNetwork,
		Message:        "Network error occurred",
		Err:            err,
		NetworkSubtype: NetworkErrorGeneral,
		Endpoint:       endpoint,
	}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, endpoint string, err error) *APIError {
	classified := ClassifyNetworkError(err, endpoint)
	if classified != nil {
		classified.Message = message
		return classified
	}
	return &APIError{
		Type:     ErrTypeNetwork,
		Message:  message,
		Endpoint: endpoint,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, endpoint string, statusCode int, err error) *APIError {
	return &APIError{
		Type:       ErrTypeParse,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Endpoint:   endpoint,
	}
}

// NewRequestError creates an error for a request that could not be built
func NewRequestError(message string, endpoint string, err error) *APIError {
	return &APIError{
		Type:     ErrTypeRequest,
		Message:  message,
		Err:      err,
		Endpoint: endpoint,
	}
}

func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsNetworkError checks if an error is a network error (including timeout, connection refused, DNS)
func IsNetworkError(err error) bool {
	if apiErr, ok := asAPIError(err); ok {
		switch apiErr.Type {
		case ErrTypeNetwork, ErrTypeTimeout, ErrTypeConnectionRefused, ErrTypeDNS:
			return true
		}
	}
	return false
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	if apiErr, ok := asAPIError(err); ok {
		return apiErr.Type == ErrTypeParse
	}
	return false
}

// IsTransportError reports whether err is any APIError. The UI collapses all
// of them into one generic message.
func IsTransportError(err error) bool {
	_, ok := asAPIError(err)
	return ok
}

// GetShortErrorMessage returns a concise diagnostic for logs and headless
// output. The interactive UI never shows it.
func GetShortErrorMessage(err error) string {
	apiErr, ok := asAPIError(err)
	if !ok {
		return err.Error()
	}

	switch apiErr.Type {
	case ErrTypeTimeout:
		return "Server not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Connection refused - is the API server running?"
	case ErrTypeDNS:
		return "Cannot resolve API hostname"
	case ErrTypeNetwork:
		switch apiErr.NetworkSubtype {
		case NetworkErrorHostUnreachable:
			return "API host unreachable - check network connection"
		case NetworkErrorNetworkUnreachable:
			return "Network unreachable - check connection"
		default:
			return "Network error - check connection"
		}
	case ErrTypeParse:
		if apiErr.StatusCode != 0 {
			return fmt.Sprintf("Server sent a non-JSON response (HTTP %d)", apiErr.StatusCode)
		}
		return "Server sent a non-JSON response"
	default:
		return apiErr.Message
	}
}

// GetTroubleshootingHints returns bullet points for headless failure output.
func GetTroubleshootingHints(err error) []string {
	apiErr, ok := asAPIError(err)
	if !ok {
		return nil
	}

	switch apiErr.Type {
	case ErrTypeConnectionRefused:
		return []string{
			"Check that the API server is running",
			"Verify the base URL and port (--api)",
			"Start a local stand-in with authdeck-mockapi",
		}
	case ErrTypeDNS:
		return []string{
			"Use an IP address instead of a hostname",
			"Check your network DNS settings",
		}
	case ErrTypeTimeout:
		return []string{
			"The server did not respond in time",
			"Try increasing --timeout or set it to 0 to disable",
		}
	case ErrTypeParse:
		return []string{
			"The base URL may point at something other than the auth API",
			"Check for a proxy or captive portal returning HTML",
		}
	default:
		return []string{
			"Check your network connection",
			"Run 'authdeck scan' to find development servers on the LAN",
		}
	}
}
