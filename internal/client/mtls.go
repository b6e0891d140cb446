package client

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/net/http2"
)

// MTLSConfigError accumulates everything wrong with the mTLS credential
// setup, so an operator can fix all of it in one pass.
type MTLSConfigError struct {
	Details []string
}

// Error implements the error interface.
func (e *MTLSConfigError) Error() string {
	return "mTLS configuration invalid: " + strings.Join(e.Details, "; ")
}

// NewMTLSTransport builds an HTTP/2-capable transport that presents the
// client certificate at certPath/keyPath and trusts the CA bundle at
// caPath. All missing-path and missing-file findings are collected before
// returning.
func NewMTLSTransport(certPath, keyPath, caPath string) (http.RoundTripper, error) {
	var details []string

	checkPath := func(label, path string) {
		if path == "" {
			details = append(details, label+" environment variable is missing.")
			return
		}
		if _, err := os.Stat(path); err != nil {
			details = append(details, fmt.Sprintf("%s file not found at path: %s", label, path))
		}
	}
	checkPath("CERT_PATH", certPath)
	checkPath("KEY_PATH", keyPath)
	checkPath("CA_PATH", caPath)

	if len(details) > 0 {
		return nil, &MTLSConfigError{Details: details}
	}

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, &MTLSConfigError{Details: []string{"could not load client certificate and key: " + err.Error()}}
	}

	caPEM, err := os.ReadFile(caPath)
	if err != nil {
		return nil, &MTLSConfigError{Details: []string{"could not read CA file: " + err.Error()}}
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, &MTLSConfigError{Details: []string{"CA file contains no usable certificates: " + caPath}}
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			RootCAs:      pool,
			MinVersion:   tls.VersionTLS12,
		},
	}
	if err := http2.ConfigureTransport(transport); err != nil {
		return nil, fmt.Errorf("enabling HTTP/2 on mTLS transport: %w", err)
	}
	return transport, nil
}
