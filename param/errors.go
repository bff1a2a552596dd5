package param

import "fmt"

// MissingBinaryError reports a binary that does not exist or cannot be read.
type MissingBinaryError struct {
	Path string
	Err  error
}

func (e *MissingBinaryError) Error() string {
	return fmt.Sprintf("binary %q cannot be read: %v", e.Path, e.Err)
}

func (e *MissingBinaryError) Unwrap() error {
	return e.Err
}

// InvalidParameterError reports a parameter value that is not accepted.
type InvalidParameterError struct {
	Name   string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid --%s %q: %s", e.Name, e.Value, e.Reason)
}

func invalid(name, value string, err error) error {
	return &InvalidParameterError{Name: name, Value: value, Reason: err.Error()}
}
