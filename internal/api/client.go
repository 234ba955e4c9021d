package api

import (
	"net/http"

	"github.com/rimu-dev/xbrew/internal/configs"
	"github.com/rimu-dev/xbrew/internal/credentials"
)

// Client talks to the recipe cloud. Operations are synchronous single-shot
// calls: one POST, one response, no retries, no connection state between
// calls.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Store      credentials.Store
}

// NewClient builds a client against the configured origin with the fixed
// request timeout. The store supplies the token for authenticated envelopes
// and receives the credential record on login success.
func NewClient(store credentials.Store) *Client {
	return &Client{
		BaseURL:    configs.BaseURL(),
		HTTPClient: &http.Client{Timeout: configs.RequestTimeout()},
		Store:      store,
	}
}
