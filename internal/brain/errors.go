// Package brain talks to the Brain note service over its REST API and
// renders its JSON responses as text suitable for tool output.
package brain

import "fmt"

// APIError reports a non-2xx response from the Brain API. The raw response
// body is carried verbatim so callers see exactly what the service said.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("brain api error %d: %s", e.Status, e.Body)
}

// TransportError reports a network-level failure (DNS, connection refused,
// timeout) before any HTTP status was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("brain api network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ConfigError reports invalid use of the client, such as an unsupported HTTP
// method. It signals a programming error, not a runtime condition.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "brain client misuse: " + e.Reason
}
