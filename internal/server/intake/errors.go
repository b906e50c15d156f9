package intake

import "errors"

// Rule sentinels. Every rejection is an *Error wrapping exactly one of them.
var (
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrEmptyPayload         = errors.New("empty payload")
	ErrMissingIV            = errors.New("missing encryption iv")
	ErrMalformedIV          = errors.New("malformed encryption iv")
	ErrMalformedAuthTag     = errors.New("malformed encryption auth tag")
)

// Error is a client-caused rejection. Message is safe to return to the
// caller as is.
type Error struct {
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func reject(field string, sentinel error, message string) *Error {
	return &Error{Field: field, Message: message, Err: sentinel}
}
