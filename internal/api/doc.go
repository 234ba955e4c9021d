// Package api implements the four operations of the xBloom recipe cloud:
// login, fetching a shared recipe, creating a recipe, and listing the
// member's recipes.
//
// # Call Shape
//
// Every operation is a thin composition over the same parts:
//
//	operation → envelope builder → codec.EncodeForm → single POST → JSON response
//
// The public recipe-detail endpoint skips the codec and posts plain JSON
// with a fixed Referer header. Authenticated endpoints post the base64
// string from the codec as the raw request body.
//
// # Outcomes
//
// Transport failures, timeouts, response-parse failures, and encryption
// failures are Go errors wrapping the sentinels in internal/errors. A
// logical rejection — a response whose result field is not "success" — is
// not an error: the full Response is returned for the caller to inspect, and
// the credential store is left untouched.
package api
