package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError is returned before any remote call is made.
type ValidationError struct {
	Fields map[string]string
	Msg    string
	// Err is an optional sentinel callers can match with errors.Is.
	Err error
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func NewFieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Msg
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	msg := strings.Join(parts, ", ")
	if e.Msg != "" {
		msg = e.Msg + ": " + msg
	}
	return msg
}

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// RemoteError wraps a failure of the database or the object store.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func Remote(op string, err error) error {
	if err == nil {
		return nil
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return err
	}
	return &RemoteError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
