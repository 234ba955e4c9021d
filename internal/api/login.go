package api

import (
	"encoding/json"
	"fmt"

	"github.com/rimu-dev/xbrew/internal/credentials"
)

const loginEndpoint = "tMemberLogin.thtml"

// Login authenticates with email and password over the encrypted login
// endpoint. On a successful response the credential record
// (member.tableId, token, member.email) is persisted, overwriting any prior
// record. The full response is returned either way: an API-level rejection
// is data for the caller to inspect, never an error, and never touches the
// store.
func (c *Client) Login(email, password string) (Response, error) {
	form := map[string]any{
		"interfaceVersion": InterfaceVersion,
		"skey":             AppKey,
		"phoneType":        phoneType,
		"clientType":       clientType,
		"languageType":     languageType,
		"email":            email,
		"password":         password,
		"jpushId":          "",
	}

	resp, err := c.postEncrypted(loginEndpoint, form)
	if err != nil {
		return nil, err
	}

	if resp.IsSuccess() && c.Store != nil {
		member := resp.Member()
		record := credentials.Record{
			MemberID: asInt(member["tableId"]),
			Token:    resp.Token(),
			Email:    asString(member["email"], email),
		}
		if err := c.Store.Save(record); err != nil {
			return resp, fmt.Errorf("login succeeded but saving credentials failed: %w", err)
		}
	}
	return resp, nil
}

// asInt coerces the numeric shapes JSON decoding can produce.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	return 0
}

func asString(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
