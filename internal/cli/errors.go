package cli

import (
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/giantswarm/dbterra/internal/client"
)

// ConnectionErrorType categorizes the type of connection error.
type ConnectionErrorType int

const (
	// ConnectionErrorUnknown indicates an unclassified connection error.
	ConnectionErrorUnknown ConnectionErrorType = iota
	// ConnectionErrorTLS indicates a TLS/certificate verification error.
	ConnectionErrorTLS
	// ConnectionErrorNetwork indicates a network connectivity error (e.g., refused, unreachable).
	ConnectionErrorNetwork
	// ConnectionErrorTimeout indicates a connection timeout.
	ConnectionErrorTimeout
	// ConnectionErrorDNS indicates a DNS resolution failure.
	ConnectionErrorDNS
)

// String returns a human-readable name for the connection error type.
func (t ConnectionErrorType) String() string {
	switch t {
	case ConnectionErrorTLS:
		return "TLS certificate error"
	case ConnectionErrorNetwork:
		return "Network error"
	case ConnectionErrorTimeout:
		return "Connection timeout"
	case ConnectionErrorDNS:
		return "DNS resolution error"
	default:
		return "Connection error"
	}
}

// ConnectionError indicates that the dbt Cloud API could not be reached.
type ConnectionError struct {
	// Endpoint is the base URL that could not be reached.
	Endpoint string
	// Type categorizes the connection error.
	Type ConnectionErrorType
	// Reason is the underlying error.
	Reason error
}

// Error returns the failure with a hint on what to check.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s reaching %s: %v\n%s", e.Type, e.Endpoint, e.Reason, e.Hint())
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Reason
}

// Hint suggests what to check for this kind of failure.
func (e *ConnectionError) Hint() string {
	switch e.Type {
	case ConnectionErrorDNS:
		return "Check DBT_CLOUD_BASE_URL; the host name could not be resolved."
	case ConnectionErrorTLS:
		return "The server certificate was rejected. Check DBT_CLOUD_BASE_URL and any proxy in between."
	case ConnectionErrorTimeout:
		return "dbt Cloud did not answer in time. Retry, or check your network."
	case ConnectionErrorNetwork:
		return "Check your network connection and DBT_CLOUD_BASE_URL."
	default:
		return "Run again with --debug for details."
	}
}

// ExplainRemoteError turns transport failures in err into a ConnectionError
// for endpoint. API errors and errors that are not about connectivity are
// returned as they are.
func ExplainRemoteError(err error, endpoint string) error {
	if err == nil {
		return nil
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return err
	}

	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	return ClassifyConnectionError(err, endpoint)
}

// ClassifyConnectionError analyzes an error and returns a ConnectionError with the appropriate type.
// If the error is nil, returns nil.
func ClassifyConnectionError(err error, endpoint string) *ConnectionError {
	if err == nil {
		return nil
	}

	connErr := &ConnectionError{
		Endpoint: endpoint,
		Type:     ConnectionErrorUnknown,
		Reason:   err,
	}

	var dnsErr *net.DNSError
	switch {
	case isTLSError(err):
		connErr.Type = ConnectionErrorTLS
	case errors.As(err, &dnsErr):
		connErr.Type = ConnectionErrorDNS
	case isTimeoutError(err):
		connErr.Type = ConnectionErrorTimeout
	case isNetworkError(err.Error()):
		connErr.Type = ConnectionErrorNetwork
	}

	return connErr
}

// isTLSError checks if the error is related to TLS/certificate issues.
func isTLSError(err error) bool {
	var certErr *x509.CertificateInvalidError
	var hostErr *x509.HostnameError
	var unknownAuthErr *x509.UnknownAuthorityError
	var systemRootsErr *x509.SystemRootsError

	if errors.As(err, &certErr) || errors.As(err, &hostErr) ||
		errors.As(err, &unknownAuthErr) || errors.As(err, &systemRootsErr) {
		return true
	}

	errStr := err.Error()
	for _, keyword := range []string{"x509:", "certificate", "tls:", "TLS handshake"} {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// isTimeoutError checks if the error is a timeout.
func isTimeoutError(err error) bool {
	// net.Error is an interface, so unwrap by hand.
	for e := err; e != nil; {
		if ne, ok := e.(net.Error); ok && ne.Timeout() {
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}

	errStr := err.Error()
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

// isNetworkError checks if the error string indicates a network connectivity issue.
func isNetworkError(errStr string) bool {
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no route to host",
		"dial tcp",
		"connect:",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}
