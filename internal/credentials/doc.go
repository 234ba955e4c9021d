// Package credentials persists the identity obtained from a successful
// login: the member identifier, the opaque session token, and the account
// email.
//
// The record is stored as JSON ({member_id, token, email}) with mode 0600.
// Its absence means "not logged in". There is no client-side expiry logic;
// a stale token is simply rejected by the server as a normal API-level
// failure.
//
// The Store interface exists so the API operations can be tested against an
// in-memory implementation.
package credentials
