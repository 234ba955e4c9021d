// Package configs manages user-level configuration for xbrew.
//
// Configuration lives under the OS config directory:
//
//   - <config-dir>/xbrew/config.toml — TOML user config (install UUID,
//     default machine-model filter)
//   - <config-dir>/xbrew/credentials.json — credential record written by
//     `xbrew auth login` (owned by the credentials package)
//
// The install UUID is auto-generated on first use; it only appears in local
// diagnostics output and is never sent to the server.
//
// # Environment Overrides
//
// For development servers, two variables (loadable from a .env file) adjust
// the transport:
//
//	XBREW_BASE_URL         alternative API origin
//	XBREW_TIMEOUT_SECONDS  per-request ceiling, default 15
package configs
