// Package errors provides typed error values for the xbrew client.
//
// Using sentinel errors allows callers to handle specific failure kinds
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Transport errors: the request never produced a usable response
//     (ErrTransport, ErrTimeout, ErrResponseParse)
//   - Crypto errors: the encrypted request body could not be built
//     (ErrEncryption, ErrInvalidPublicKey)
//   - CLI errors: user-facing conditions surfaced by commands
//     (ErrNotLoggedIn, ErrAPIRejected)
//
// Note that an API-level rejection (a response with result != "success") is
// NOT an error in the core packages: operations return the full response so
// callers can inspect it. Only the CLI layer converts that into
// ErrAPIRejected to exit non-zero.
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %v", errors.ErrEncryption, err)
package errors
