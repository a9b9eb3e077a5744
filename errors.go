package pulseway

import "fmt"

// APIError represents a failed request to the Pulseway API.
//
// StatusCode carries the real HTTP status when the server responded;
// StatusCode 0 is reserved for transport failures that never produced a
// response (connection refused, timeout, DNS). For HTTP failures the raw
// response body is preserved under the "response" details key.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string]any
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("pulseway api error (status %d, request_id: %s): %s", e.StatusCode, e.RequestID, e.Message)
	}
	return fmt.Sprintf("pulseway api error (status %d): %s", e.StatusCode, e.Message)
}

// IsTransport reports whether the error never reached the server.
func (e *APIError) IsTransport() bool {
	return e.StatusCode == 0
}
