package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidState        = errors.New("invalid state")
	ErrCourierUnavailable  = errors.New("courier is unavailable")
	ErrOrderNotDeliverable = errors.New("order is not deliverable")
)

// sanitize strips newlines from values before they end up in log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ObjectNotFoundError reports that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
	}
	return withCause(
		sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, e.ID)),
		e.Cause,
	)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(
		sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)),
		e.Cause,
	)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError reports a status change that is not present in the
// entity's transition table.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func NewInvalidTransitionErrorWithCause(entity, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	return withCause(
		sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)),
		e.Cause,
	)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidStateError reports an operation attempted against an aggregate whose
// current state forbids it, typically a terminal or cancelled one.
type InvalidStateError struct {
	Entity string
	State  string
	Cause  error
}

func NewInvalidStateError(entity, state string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, State: state}
}

func NewInvalidStateErrorWithCause(entity, state string, cause error) *InvalidStateError {
	return &InvalidStateError{Entity: entity, State: state, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s is %s", ErrInvalidState, e.Entity, e.State)), e.Cause)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// CourierUnavailableError reports a lost courier reservation: the courier is
// busy or was claimed by a concurrent assignment.
type CourierUnavailableError struct {
	ID    any
	Cause error
}

func NewCourierUnavailableError(id any) *CourierUnavailableError {
	return &CourierUnavailableError{ID: id}
}

func NewCourierUnavailableErrorWithCause(id any, cause error) *CourierUnavailableError {
	return &CourierUnavailableError{ID: id, Cause: cause}
}

func (e *CourierUnavailableError) Error() string {
	return withCause(sanitize(fmt.Sprintf("%s: %s", ErrCourierUnavailable, e.ID)), e.Cause)
}

func (e *CourierUnavailableError) Unwrap() error {
	return ErrCourierUnavailable
}

// OrderNotDeliverableError reports a delivery operation against an order whose
// type is not DELIVERY.
type OrderNotDeliverableError struct {
	ID        any
	OrderType string
	Cause     error
}

func NewOrderNotDeliverableError(id any, orderType string) *OrderNotDeliverableError {
	return &OrderNotDeliverableError{ID: id, OrderType: orderType}
}

func (e *OrderNotDeliverableError) Error() string {
	return withCause(
		sanitize(fmt.Sprintf("%s: %s is %s", ErrOrderNotDeliverable, e.ID, e.OrderType)),
		e.Cause,
	)
}

func (e *OrderNotDeliverableError) Unwrap() error {
	return ErrOrderNotDeliverable
}
