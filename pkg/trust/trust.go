// Package trust builds TLS client configurations for the secure channel
// upgrade. Defaults are constructed explicitly at the call site that needs
// them; there is no hidden process-wide trust state.
package trust

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// Default returns the standard trust configuration: system roots, modern
// protocol floor.
func Default() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
}

// Insecure returns a configuration that skips certificate validation.
// Only suitable for testing against self-signed endpoints.
func Insecure() *tls.Config {
	cfg := Default()
	cfg.InsecureSkipVerify = true
	return cfg
}

// WithCA returns a configuration that trusts exactly the CA certificates
// in the given PEM data instead of the system roots.
func WithCA(pemData []byte) (*tls.Config, error) {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pemData) {
		return nil, fmt.Errorf("no usable CA certificates in PEM data")
	}

	cfg := Default()
	cfg.RootCAs = pool
	return cfg, nil
}

// WithCAFile is WithCA reading the PEM data from a file.
func WithCAFile(path string) (*tls.Config, error) {
	pemData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s): %w", path, err)
	}

	cfg, err := WithCA(pemData)
	if err != nil {
		return nil, fmt.Errorf("load CA from %s: %w", path, err)
	}
	return cfg, nil
}
