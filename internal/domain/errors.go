package domain

import (
	"fmt"
)

// ErrorKind classifies a failure so the web layer can map it to a status
// code and screens can decide whether the action is locally recoverable.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"    // bad user input, detected before any store call
	KindStoreRead    ErrorKind = "store_read"    // backend read failed, prior state preserved
	KindStoreWrite   ErrorKind = "store_write"   // backend write failed, prior state preserved
	KindAuthRequired ErrorKind = "auth_required" // no authenticated identity
	KindNotFound     ErrorKind = "not_found"
	KindUpload       ErrorKind = "upload" // binary object upload failed
	KindDecode       ErrorKind = "decode" // malformed document from the store
	KindNoChanges    ErrorKind = "no_changes"
)

// Error is the typed error carried across service boundaries. Field is set
// for validation failures so forms can attach the message to an input.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func ValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func StoreReadError(message string, cause error) *Error {
	return &Error{Kind: KindStoreRead, Message: message, Cause: cause}
}

func StoreWriteError(message string, cause error) *Error {
	return &Error{Kind: KindStoreWrite, Message: message, Cause: cause}
}

func AuthRequiredError(message string) *Error {
	return &Error{Kind: KindAuthRequired, Message: message}
}

func NotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func UploadError(message string, cause error) *Error {
	return &Error{Kind: KindUpload, Message: message, Cause: cause}
}

func DecodeError(message string, cause error) *Error {
	return &Error{Kind: KindDecode, Message: message, Cause: cause}
}

// ErrNoChanges marks a profile update where nothing differed from the
// stored record. It is an outcome, not a failure.
var ErrNoChanges = &Error{Kind: KindNoChanges, Message: "no changes"}

// KindOf extracts the error kind, defaulting to store_write for untyped
// errors surfaced from lower layers.
func KindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindStoreWrite
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
