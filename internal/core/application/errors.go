package application

import "fmt"

// BackendError is an error returned by the wallet backend, surfaced to the
// caller verbatim.
type BackendError struct {
	Kind   string
	Reason string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}
