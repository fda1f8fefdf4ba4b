package usecase

import (
	"errors"
	"fmt"

	"room-booking/pkg/apiclient"
	"room-booking/pkg/utils"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("cannot do that on the current screen")
	ErrNoSession         = errors.New("no stored session")
	ErrNotMounted        = errors.New("booking screen is not mounted")
	ErrRoomNotFound      = errors.New("room not found")
	ErrUnknownField      = errors.New("unknown form field")
	ErrEmptyCatalog      = errors.New("no rooms available")
	ErrLoginRejected     = errors.New("login rejected")
	ErrNoAccessToken     = errors.New("no access token received")
)

// ValidationError carries the per-field messages of a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", utils.FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransportError is a failed remote call: a network failure (Status 0) or a
// non-2xx answer.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func newTransportError(op string, err error) *TransportError {
	te := &TransportError{Op: op, Err: err}
	if se, ok := apiclient.IsStatusError(err); ok {
		te.Status = se.Code
	}
	return te
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: remote returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNetwork reports whether the request never got an HTTP answer.
func (e *TransportError) IsNetwork() bool {
	return e.Status == 0
}
