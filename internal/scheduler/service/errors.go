package service

import (
	"errors"
	"strings"
)

var (
	ErrPersonNotFound = errors.New("person not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrUnknownRoom    = errors.New("room does not belong to this home")
	ErrUnknownPerson  = errors.New("attendee does not belong to this home")
)

// ValidationError carries every failed check of a draft. The draft itself is
// untouched and can be corrected and resubmitted.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "\n")
}

// PersistenceError means the store could not save the event. Nothing was
// written and no notification went out.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "could not save event: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// DispatchError means push delivery failed after the event was saved. It is
// only ever logged and reported to the completion callback.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return "could not send notifications: " + e.Err.Error()
}

func (e *DispatchError) Unwrap() error { return e.Err }
