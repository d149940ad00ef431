package services

import "fmt"

// MissingProfileFieldError means a required scalar was absent from the
// profile when building an analysis request. Not recoverable here; the
// caller prompts the user to finish their profile.
type MissingProfileFieldError struct {
	Field string
}

func (e *MissingProfileFieldError) Error() string {
	return fmt.Sprintf("missing required profile field: %s", e.Field)
}

// InvalidResponseFormatError means the external reply did not match the
// expected shape. Retrying is the caller's call, never done here.
type InvalidResponseFormatError struct {
	Reason string
}

func (e *InvalidResponseFormatError) Error() string {
	return fmt.Sprintf("invalid response format: %s", e.Reason)
}

// ServerError surfaces a non-2xx transport status verbatim.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned status code: %d", e.StatusCode)
}
