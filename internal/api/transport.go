package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rimu-dev/xbrew/internal/codec"
	xerrors "github.com/rimu-dev/xbrew/internal/errors"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	acceptJSON      = "application/json, text/plain, */*"

	// shareReferer is required by the server on the public recipe endpoint.
	shareReferer = "https://share-h5.xbloom.com/"
)

// post issues a single POST to baseURL+endpoint and decodes the JSON
// response. For encrypted endpoints the payload is the raw base64 string
// verbatim; for plain endpoints it is a JSON document and the share Referer
// header is added. There is no retry logic here — callers own retry policy,
// and nothing in this client retries.
func (c *Client) post(endpoint string, payload []byte, encrypted bool) (Response, error) {
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrTransport, err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", acceptJSON)
	if !encrypted {
		req.Header.Set("Referer", shareReferer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			// Timeouts are a kind of transport failure, so callers can match
			// either sentinel.
			return nil, fmt.Errorf("%w: %w: POST %s: %v", xerrors.ErrTransport, xerrors.ErrTimeout, endpoint, err)
		}
		return nil, fmt.Errorf("%w: POST %s: %v", xerrors.ErrTransport, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response from %s: %v", xerrors.ErrTransport, endpoint, err)
	}

	var decoded Response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: response from %s: %v", xerrors.ErrResponseParse, endpoint, err)
	}
	return decoded, nil
}

// postEncrypted encodes the form through the block cipher codec and posts
// the resulting base64 string as the raw body.
func (c *Client) postEncrypted(endpoint string, form map[string]any) (Response, error) {
	body, err := codec.EncodeForm(form)
	if err != nil {
		return nil, err
	}
	return c.post(endpoint, []byte(body), true)
}

// postPlain posts the form as a plain JSON body (public endpoints only).
func (c *Client) postPlain(endpoint string, form map[string]any) (Response, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize form: %w", err)
	}
	return c.post(endpoint, body, false)
}
