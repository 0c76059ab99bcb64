package calc

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a calculation failure
type Kind string

const (
	KindMissingParameters Kind = "MissingParameters"
	KindInvalidKind       Kind = "InvalidKind"
	KindValidation        Kind = "ValidationError"
	KindDomain            Kind = "DomainError"
)

// Error is a failed calculation
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

// Sentinels for errors.Is; only the kind is compared.
var (
	ErrMissingParameters = &Error{Kind: KindMissingParameters}
	ErrInvalidKind       = &Error{Kind: KindInvalidKind}
	ErrValidation        = &Error{Kind: KindValidation}
	ErrDomain            = &Error{Kind: KindDomain}
)

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

// Is matches any *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Missing reports absent required inputs
func Missing(op string, fields ...string) error {
	return &Error{
		Kind: KindMissingParameters,
		Op:   op,
		Msg:  "missing parameters: " + strings.Join(fields, ", "),
	}
}

// UnknownKind reports an unrecognised formula selector
func UnknownKind(op, kind string, valid ...string) error {
	msg := fmt.Sprintf("unknown kind %q", kind)
	if len(valid) > 0 {
		msg += " (expected one of " + strings.Join(valid, ", ") + ")"
	}
	return &Error{Kind: KindInvalidKind, Op: op, Msg: msg}
}

// Invalid reports an input outside its accepted range
func Invalid(op, format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Undefined reports a mathematically undefined result
func Undefined(op, format string, args ...interface{}) error {
	return &Error{Kind: KindDomain, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a calculation error, or "" for anything else
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
