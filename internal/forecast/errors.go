package forecast

import "fmt"

// ValidationError reports malformed caller input. It is fatal to the current
// request and never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// TransportError reports a network failure, timeout or unparseable response
// body. Retry policy is the caller's concern.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("forecast service %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError reports a failure the upstream service stated explicitly,
// either via a non-2xx status or a success:false body. The upstream message
// is forwarded verbatim.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("forecast service error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("forecast service error: %s", e.Message)
}

// SchemaError reports an upstream payload that claimed success but violates
// the expected shape. Surfaced loudly, never defaulted over.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("forecast response schema violation: %s", e.Message)
}
