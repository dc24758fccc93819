package service

import "fmt"

// Kind labels a service failure with its HTTP-facing class.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindNotFound
)

// Error is a labelled service failure. The api layer maps the Kind onto a
// status code and serializes the message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func badRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}
