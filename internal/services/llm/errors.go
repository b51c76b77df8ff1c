package llm

import "fmt"

// ConfigurationError indicates the service was constructed with invalid
// settings, such as a missing API key.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamResponseError indicates the provider answered successfully but
// the payload was missing the expected content.
type UpstreamResponseError struct {
	Message string
}

func (e *UpstreamResponseError) Error() string {
	return e.Message
}

// UpstreamCallError wraps a transport or provider failure with the
// operation that was being performed.
type UpstreamCallError struct {
	Operation string
	Err       error
}

func (e *UpstreamCallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *UpstreamCallError) Unwrap() error {
	return e.Err
}
