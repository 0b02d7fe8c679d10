package client

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
)

// Stage identifies which step of a connection attempt failed.
type Stage int

const (
	// StageRequest: the caller input could not be turned into a valid
	// request descriptor. No I/O has happened.
	StageRequest Stage = iota + 1
	// StageResolve: no endpoint could be derived, typically because the
	// scheme is unrecognized and no explicit port was given. No I/O has
	// happened.
	StageResolve
	// StageDial: the transport dial or the post-connect tuning failed.
	StageDial
	// StageSecure: TLS negotiation or certificate validation failed. Only
	// reachable past a successful dial.
	StageSecure
	// StageHandshake: the WebSocket upgrade was rejected or malformed.
	// Only reachable past a successful (and, for wss, encrypted) channel.
	StageHandshake
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageRequest:
		return "request"
	case StageResolve:
		return "resolve"
	case StageDial:
		return "dial"
	case StageSecure:
		return "secure"
	case StageHandshake:
		return "handshake"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Error is the single error value a failed connection attempt produces.
// It tags the underlying failure with the stage it happened in, so callers
// can tell "could not reach the host" apart from "reached the host but
// could not negotiate".
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsStage reports whether err is a connection error that failed in the
// given stage.
func IsStage(err error, s Stage) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Stage == s
}

func stageErr(s Stage, err error) *Error {
	return &Error{Stage: s, Err: err}
}

// delegateErr splits failures of the combined upgrade-and-handshake call
// into the secure and handshake stages. The delegate reports both through
// one call, so the split goes by error type: TLS record and certificate
// validation failures are secure-channel errors, everything else is a
// handshake failure.
func delegateErr(err error) *Error {
	var recordErr tls.RecordHeaderError
	var verifyErr *tls.CertificateVerificationError
	var authErr x509.UnknownAuthorityError
	var hostErr x509.HostnameError
	var certErr x509.CertificateInvalidError

	if errors.As(err, &recordErr) ||
		errors.As(err, &verifyErr) ||
		errors.As(err, &authErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &certErr) {
		return stageErr(StageSecure, err)
	}

	return stageErr(StageHandshake, err)
}
