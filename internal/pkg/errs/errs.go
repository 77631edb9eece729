package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
// Each typed error below unwraps to exactly one sentinel.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")

	ErrInvalidTransition = errors.New("invalid transition")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrSlotNotOccupied   = errors.New("slot is not occupied")
	ErrNoActiveContainer = errors.New("no active container")
	ErrIncompleteEIR     = errors.New("incomplete EIR")
)

// sanitize collapses newlines so multi-line values cannot break log lines.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates a required value was not provided.
// The caller must fix the input; retrying the same request will not succeed.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("value is required: %s", sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a provided value failed validation rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("value is invalid: %s", sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending value and its bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %s is %s, min value is %v, max value is %v",
		sanitize(fmt.Sprintf("%v", e.Value)), sanitize(e.ParamName), e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %v (cause: %s)",
			sanitize(e.ParamName), e.ID, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("object not found: %v", e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates a lifecycle event is not valid from the
// container's current state. It usually means the caller acted on stale
// state and should re-fetch the record before retrying.
type InvalidTransitionError struct {
	Event        string
	CurrentState string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the rejected event.
func NewInvalidTransitionError(event, currentState string) *InvalidTransitionError {
	return &InvalidTransitionError{Event: event, CurrentState: currentState}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: event %s is not allowed from state %s",
		sanitize(e.Event), sanitize(e.CurrentState))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CapacityExceededError indicates the yard has no free slot left.
// This is an operational condition surfaced to the operator, not retried.
type CapacityExceededError struct {
	Capacity int
}

// NewCapacityExceededError creates a CapacityExceededError for a yard of the given capacity.
func NewCapacityExceededError(capacity int) *CapacityExceededError {
	return &CapacityExceededError{Capacity: capacity}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: all %d yard slots are occupied", e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// NotOccupiedError indicates a release was attempted on an already empty slot.
type NotOccupiedError struct {
	SlotIndex int
}

// NewNotOccupiedError creates a NotOccupiedError for the given slot index.
func NewNotOccupiedError(slotIndex int) *NotOccupiedError {
	return &NotOccupiedError{SlotIndex: slotIndex}
}

func (e *NotOccupiedError) Error() string {
	return fmt.Sprintf("slot is not occupied: %d", e.SlotIndex)
}

func (e *NotOccupiedError) Unwrap() error {
	return ErrSlotNotOccupied
}

// NoActiveContainerError indicates a gate exit was registered for a container
// number that has no record currently bound to a yard slot.
type NoActiveContainerError struct {
	ContainerNumber string
}

// NewNoActiveContainerError creates a NoActiveContainerError for the given container number.
func NewNoActiveContainerError(containerNumber string) *NoActiveContainerError {
	return &NoActiveContainerError{ContainerNumber: containerNumber}
}

func (e *NoActiveContainerError) Error() string {
	return fmt.Sprintf("no active container: %s", sanitize(e.ContainerNumber))
}

func (e *NoActiveContainerError) Unwrap() error {
	return ErrNoActiveContainer
}

// IncompleteEIRError indicates an interchange receipt submission is missing
// a required field (external condition or seal number).
type IncompleteEIRError struct {
	ParamName string
}

// NewIncompleteEIRError creates an IncompleteEIRError for the missing field.
func NewIncompleteEIRError(paramName string) *IncompleteEIRError {
	return &IncompleteEIRError{ParamName: paramName}
}

func (e *IncompleteEIRError) Error() string {
	return fmt.Sprintf("incomplete EIR: %s is required", sanitize(e.ParamName))
}

func (e *IncompleteEIRError) Unwrap() error {
	return ErrIncompleteEIR
}
