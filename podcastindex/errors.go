package podcastindex

import (
	"fmt"
	"time"
)

// maxBodySnippet bounds how much of an error response body is retained
// on a TransportError.
const maxBodySnippet = 512

// EncodingError reports a query option whose value type the encoder
// does not support. It is returned before any network activity.
type EncodingError struct {
	Key   string
	Value any
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unsupported query option type %T for %q", e.Value, e.Key)
}

// SigningError reports an unusable clock reading passed to the signer.
type SigningError struct {
	Clock time.Time
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("cannot sign request: invalid clock reading %v", e.Clock)
}

// TransportError reports a non-success HTTP status from the API. Body
// holds up to maxBodySnippet bytes of the response for diagnosis.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}

// ParseError reports a response body that could not be decoded as JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// APIError reports a well-formed envelope whose status field signals
// failure (the API uses HTTP 200 with status "false" for some errors).
type APIError struct {
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return "API returned error status"
	}
	return fmt.Sprintf("API error: %s", e.Description)
}

func truncateBody(b []byte) string {
	if len(b) > maxBodySnippet {
		return string(b[:maxBodySnippet])
	}
	return string(b)
}
