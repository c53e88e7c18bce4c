package engine

import "fmt"

// ValidationError reports a missing or inactive category, or malformed
// required inputs.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports that no emission factor matched the selection
// criteria.
type NotFoundError struct {
	Msg string
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ExternalServiceError reports that an external collaborator (the distance
// lookup) exhausted every strategy.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("external service %s failed: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// CalculationError reports a generic computation failure, such as a
// non-finite result.
type CalculationError struct {
	Msg string
}

func (e *CalculationError) Error() string { return e.Msg }
