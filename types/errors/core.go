package errors

import "fmt"

// ErrorKind classifies failures raised by the recommendation core itself,
// independent of any HTTP context (the core is a library, not a handler).
// Callers map a Kind onto ErrorType when they sit behind HTTP.
type ErrorKind string

const (
	KindInput              ErrorKind = "INPUT"
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindAuth                ErrorKind = "AUTH"
	KindTransientExternal   ErrorKind = "TRANSIENT_EXTERNAL"
	KindDataIntegrity       ErrorKind = "DATA_INTEGRITY"
	KindInternal            ErrorKind = "INTERNAL"
)

// KindToErrorType maps a core ErrorKind onto the HTTP-facing ErrorType.
var KindToErrorType = map[ErrorKind]ErrorType{
	KindInput:            ErrorTypeBadRequest,
	KindNotFound:         ErrorTypeNotFound,
	KindAuth:             ErrorTypeUnauthorized,
	KindTransientExternal: ErrorTypeServiceUnavailable,
	KindDataIntegrity:    ErrorTypeConflict,
	KindInternal:         ErrorTypeInternalError,
}

// CoreError is the error type every core entry point returns on failure.
// Retryable is true for TransientExternalError per spec §7; background
// jobs use it to decide whether to re-enqueue.
type CoreError struct {
	Kind      ErrorKind
	Message   string
	Retryable bool
	Err       error
}

func (e *CoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CoreError) Unwrap() error {
	return e.Err
}

func NewInputError(msg string) *CoreError {
	return &CoreError{Kind: KindInput, Message: msg}
}

func NewNotFoundError(msg string) *CoreError {
	return &CoreError{Kind: KindNotFound, Message: msg}
}

func NewAuthError(msg string, err error) *CoreError {
	return &CoreError{Kind: KindAuth, Message: msg, Err: err}
}

func NewTransientExternalError(msg string, err error) *CoreError {
	return &CoreError{Kind: KindTransientExternal, Message: msg, Retryable: true, Err: err}
}

func NewDataIntegrityError(msg string, err error) *CoreError {
	return &CoreError{Kind: KindDataIntegrity, Message: msg, Err: err}
}

func NewInternalError(msg string, err error) *CoreError {
	return &CoreError{Kind: KindInternal, Message: msg, Err: err}
}

// IsKind reports whether err (or something it wraps) is a CoreError of kind k.
func IsKind(err error, k ErrorKind) bool {
	ce, ok := err.(*CoreError)
	return ok && ce.Kind == k
}
