package numf

import "fmt"

// ErrorCode identifies why a token could not be parsed. ErrorCode implements error so it can be
// used as a target for [errors.Is]:
//
//	if errors.Is(err, numf.ErrInvalidDigit) { ... }
type ErrorCode int

const (
	ErrInvalidDigit ErrorCode = iota + 1
	ErrEmptyInput
	ErrUnknownBasePrefix
)

func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidDigit:
		return "invalid digit"
	case ErrEmptyInput:
		return "empty input"
	case ErrUnknownBasePrefix:
		return "unknown base prefix"
	default:
		return "unknown error"
	}
}

func (c ErrorCode) Error() string { return c.String() }

// Error is returned by [Parse] for tokens that cannot be decoded.
type Error struct {
	Code ErrorCode
	// Token is the input as given, before prefix and underscore removal.
	Token string

	detail string
}

func newError(code ErrorCode, token, format string, args ...any) *Error {
	return &Error{
		Code:   code,
		Token:  token,
		detail: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Code.String()
	if e.detail != "" {
		msg += ": " + e.detail
	}
	if e.Token == "" {
		return msg
	}
	return fmt.Sprintf("%q: %s", e.Token, msg)
}

// Is reports whether target is the same [ErrorCode] as e.
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}
