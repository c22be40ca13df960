package completion

import "fmt"

// UpstreamError is returned when the completion endpoint answers with a
// non-200 status. It carries the status code and the raw response body.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion API error %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError is returned when a 200 response is missing the
// fields the chat-completion schema promises.
type MalformedResponseError struct {
	Missing string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed completion response: missing %s", e.Missing)
}
