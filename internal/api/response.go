package api

// Response is the decoded JSON body of an API call. The server signals the
// logical outcome in the `result` field regardless of HTTP status, so a
// Response is returned even for rejected requests — only transport, parse,
// and encryption failures become Go errors.
type Response map[string]any

// Result returns the `result` field, empty when absent or not a string.
func (r Response) Result() string {
	s, _ := r["result"].(string)
	return s
}

// IsSuccess reports whether the server accepted the request logically.
func (r Response) IsSuccess() bool {
	return r.Result() == "success"
}

// Info returns the human-readable reason the server attached, typically set
// on failures.
func (r Response) Info() string {
	s, _ := r["info"].(string)
	return s
}

// Token returns the session token issued by a login response.
func (r Response) Token() string {
	s, _ := r["token"].(string)
	return s
}

// Member returns the `member` object of a login response, nil when absent.
func (r Response) Member() map[string]any {
	m, _ := r["member"].(map[string]any)
	return m
}
