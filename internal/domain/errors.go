package domain

import "errors"

// MalformedRequestError covers inbound payloads the relay cannot act on:
// missing or unparseable JSON, absent fields, unusable symbols.
type MalformedRequestError struct {
	Reason string
	Err    error
}

func (e *MalformedRequestError) Error() string {
	return "malformed request: " + e.Reason
}

func (e *MalformedRequestError) Unwrap() error {
	return e.Err
}

// UnknownSignalError is returned when the alert's signal is outside the
// accepted {BUY_SIGNAL, EXIT_SIGNAL} set. No order is placed.
type UnknownSignalError struct {
	Signal string
}

func (e *UnknownSignalError) Error() string {
	return "unknown signal \"" + e.Signal + "\""
}

// ExchangeError is a local failure talking to the exchange: request signing
// or transport. Non-2xx exchange replies are not wrapped in this error; they
// pass through to the caller as-is.
type ExchangeError struct {
	Op  string // "sign", "submit"
	Err error
}

func (e *ExchangeError) Error() string {
	return "exchange " + e.Op + ": " + e.Err.Error()
}

func (e *ExchangeError) Unwrap() error {
	return e.Err
}

// IsBadRequest reports whether err is the caller's fault (400-class).
func IsBadRequest(err error) bool {
	var mr *MalformedRequestError
	var us *UnknownSignalError
	return errors.As(err, &mr) || errors.As(err, &us)
}

// IsExchange reports whether err originated on the outbound exchange leg.
func IsExchange(err error) bool {
	var ee *ExchangeError
	return errors.As(err, &ee)
}

var (
	// ErrInvalidSymbol is returned when a symbol cannot be translated to a
	// product id.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrConfigNotFound is returned when the configuration file is missing.
	ErrConfigNotFound = errors.New("configuration not found")
)
