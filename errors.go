package parambuilder

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorType int

const (
	ErrorArgumentRequired ErrorType = iota
	ErrorInvalidState
	ErrorConversion
	ErrorArgumentInvalid
	ErrorMalformedURI
)

func (t ErrorType) String() string {
	switch t {
	case ErrorArgumentRequired:
		return "argument required"
	case ErrorInvalidState:
		return "invalid state"
	case ErrorConversion:
		return "conversion"
	case ErrorArgumentInvalid:
		return "argument invalid"
	case ErrorMalformedURI:
		return "malformed uri"
	}
	return fmt.Sprintf("ErrorType(%d)", int(t))
}

// Error represents the basic error for all errors produced
type Error interface {
	error
	Type() ErrorType
	// Name is the name of the argument, field or parameter key the error relates to
	Name() string
	Cause() error
	Unwrap() error
	Frame() *Frame
	TestFormat() string
}

// ErrNullValue is the cause of conversion errors for values with no text representation
var ErrNullValue = errors.New("null value has no text representation")

type paramError struct {
	typ   ErrorType
	msg   string
	name  string
	cause error
	frame *Frame
}

var _ Error = (*paramError)(nil)

//go:noinline
func newError(typ ErrorType, name string, msg string) error {
	return &paramError{
		typ:   typ,
		msg:   msg,
		name:  name,
		frame: newFrame(1),
	}
}

//go:noinline
func wrapError(typ ErrorType, name string, cause error, msg string) error {
	if cause == nil {
		return nil
	}
	if msg == "" {
		msg = cause.Error()
	}
	return &paramError{
		typ:   typ,
		msg:   msg,
		name:  name,
		cause: cause,
		frame: newFrame(1),
	}
}

func (e *paramError) Error() string {
	if e.cause != nil && e.msg != e.cause.Error() {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *paramError) Type() ErrorType {
	return e.typ
}

func (e *paramError) Name() string {
	return e.name
}

func (e *paramError) Cause() error {
	return e.cause
}

func (e *paramError) Unwrap() error {
	return e.cause
}

func (e *paramError) Frame() *Frame {
	return e.frame
}

func (e *paramError) TestFormat() string {
	var b strings.Builder
	b.WriteString(e.msg)
	b.WriteString(fmt.Sprintf("\n\tType:     \t%s", e.typ))
	if e.name != "" {
		b.WriteString(fmt.Sprintf("\n\tName:     \t%q", e.name))
	}
	if e.cause != nil {
		b.WriteString(fmt.Sprintf("\n\tCause:    \t%s", e.cause.Error()))
	}
	if e.frame != nil {
		b.WriteString(fmt.Sprintf("\n\tFrame:    \t%s:%d", e.frame.File, e.frame.Line))
	}
	return b.String()
}

// IsType reports whether any error in err's chain is an Error of the given type
func IsType(err error, typ ErrorType) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Type() == typ
	}
	return false
}
