package errors

import "errors"

// Transport errors indicate the request never produced a usable response.
var (
	// ErrTransport indicates a network or connection failure.
	ErrTransport = errors.New("request could not be delivered")

	// ErrTimeout indicates the request exceeded the client's fixed deadline.
	// Timeout errors returned by the client also match ErrTransport.
	ErrTimeout = errors.New("request timed out")

	// ErrResponseParse indicates the server's response body was not valid JSON.
	ErrResponseParse = errors.New("response body is not valid JSON")
)

// Cryptographic errors indicate failures preparing an encrypted request body.
// These are never retried: encryption is deterministic given fixed input.
var (
	// ErrEncryption indicates a block could not be encrypted.
	ErrEncryption = errors.New("request encryption failed")

	// ErrInvalidPublicKey indicates the embedded vendor key could not be parsed.
	ErrInvalidPublicKey = errors.New("embedded public key is invalid")
)

// CLI-layer errors. The core never raises these; they exist so commands can
// turn a missing credential record or a logical server rejection into a
// non-zero exit.
var (
	// ErrNotLoggedIn indicates no credential record is stored locally.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrAPIRejected indicates the server answered with result != "success".
	ErrAPIRejected = errors.New("server rejected the request")
)
