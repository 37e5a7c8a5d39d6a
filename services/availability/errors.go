package availability

import "fmt"

// StoreUnavailableError wraps a catalogue or booking store I/O failure.
// Callers may retry; the service itself never does.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("availability store unavailable: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
