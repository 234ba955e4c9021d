package api

// Wire-protocol constants. These are part of the contract the server checks
// byte-for-byte; AppKey in particular is a constant baked into the vendor
// app, not a credential — the real authorization boundary is the
// memberId/token pair.
const (
	InterfaceVersion       = 20240918
	LegacyInterfaceVersion = 19700101
	AppKey                 = "testskey"

	phoneType    = "Android"
	clientType   = 2
	languageType = 1
)

// Envelope is the field mapping sent as a call's payload before encoding.
type Envelope map[string]any

// BaseEnvelope assembles the field set every authenticated call starts from.
// When no explicit token is given, the currently stored credential record's
// token is used (empty string when none is stored).
func (c *Client) BaseEnvelope(memberID int, token string) Envelope {
	if token == "" && c.Store != nil {
		if record, err := c.Store.Load(); err == nil && record != nil {
			token = record.Token
		}
	}
	return Envelope{
		"interfaceVersion": InterfaceVersion,
		"skey":             AppKey,
		"phoneType":        phoneType,
		"memberId":         memberID,
		"clientType":       clientType,
		"languageType":     languageType,
		"token":            token,
	}
}

// Merge adds call-specific fields to the envelope in place and returns it.
// A key the caller explicitly re-specifies overrides the base value; nil or
// empty extras are no-ops.
func (e Envelope) Merge(extra map[string]any) Envelope {
	for key, value := range extra {
		e[key] = value
	}
	return e
}
