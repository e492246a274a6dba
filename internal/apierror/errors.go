// Package apierror defines the client-facing error taxonomy. Business rule
// failures are returned as *APIError; anything else is reported to clients
// as a generic server error.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups errors by how they are reported.
type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindAuth       Kind = "AuthError"
	KindConflict   Kind = "ConflictError"
	KindNotFound   Kind = "NotFoundError"
	KindTransport  Kind = "TransportError"
)

// Machine-readable error codes sent alongside the message.
const (
	CodeMissingFields      = "MISSING_FIELDS"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeAlreadyRegistered  = "ALREADY_REGISTERED"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeNoOTPPending       = "NO_OTP_PENDING"
	CodeCodeMismatch       = "CODE_MISMATCH"
	CodeExpired            = "EXPIRED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailNotVerified   = "EMAIL_NOT_VERIFIED"
	CodeInvalidAssertion   = "INVALID_ASSERTION"
	CodeMissingToken       = "MISSING_TOKEN"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeTitleTooLong       = "TITLE_TOO_LONG"
	CodeNoteNotFound       = "NOTE_NOT_FOUND"
	CodeExportNotFound     = "EXPORT_NOT_FOUND"
	CodeInternal           = "INTERNAL"
)

// ServerErrorMessage is the only message clients see for unexpected failures.
const ServerErrorMessage = "Server error"

// APIError is a failure that can be shown to the client as is.
type APIError struct {
	Kind    Kind
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches any *APIError carrying the same code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// From returns the *APIError in err's chain, or a TransportError wrapping err.
func From(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewErrInternalServerError(err)
}

// CodeOf returns the code of the *APIError in err's chain, or "".
func CodeOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

func newErr(kind Kind, status int, code, message string, err error) *APIError {
	return &APIError{Kind: kind, Status: status, Code: code, Message: message, Err: err}
}

func NewErrMissingFields(message string) *APIError {
	return newErr(KindValidation, http.StatusBadRequest, CodeMissingFields, message, nil)
}

func NewErrWeakPassword(minLength int) *APIError {
	return newErr(KindValidation, http.StatusBadRequest, CodeWeakPassword,
		fmt.Sprintf("Password must be at least %d characters", minLength), nil)
}

func NewErrAlreadyRegistered() *APIError {
	return newErr(KindConflict, http.StatusBadRequest, CodeAlreadyRegistered, "User already exists", nil)
}

func NewErrUserNotFound() *APIError {
	return newErr(KindNotFound, http.StatusBadRequest, CodeUserNotFound, "User not found", nil)
}

func NewErrNoOTPPending() *APIError {
	return newErr(KindAuth, http.StatusBadRequest, CodeNoOTPPending, "Invalid OTP", nil)
}

func NewErrCodeMismatch() *APIError {
	return newErr(KindAuth, http.StatusBadRequest, CodeCodeMismatch, "Invalid OTP", nil)
}

func NewErrOTPExpired() *APIError {
	return newErr(KindAuth, http.StatusBadRequest, CodeExpired, "OTP has expired", nil)
}

func NewErrInvalidCredentials() *APIError {
	return newErr(KindAuth, http.StatusBadRequest, CodeInvalidCredentials, "Invalid credentials", nil)
}

// NewErrPasswordLoginUnavailable is returned for accounts created through an
// external identity provider that never set a password.
func NewErrPasswordLoginUnavailable() *APIError {
	return newErr(KindAuth, http.StatusBadRequest, CodeInvalidCredentials, "Please login with Google", nil)
}

func NewErrEmailNotVerified() *APIError {
	return newErr(KindAuth, http.StatusBadRequest, CodeEmailNotVerified, "Please verify your email first", nil)
}

func NewErrInvalidAssertion(err error) *APIError {
	return newErr(KindAuth, http.StatusBadRequest, CodeInvalidAssertion, "Invalid Google token", err)
}

func NewErrMissingToken() *APIError {
	return newErr(KindAuth, http.StatusUnauthorized, CodeMissingToken, "Access denied. No token provided.", nil)
}

func NewErrInvalidToken(err error) *APIError {
	return newErr(KindAuth, http.StatusUnauthorized, CodeInvalidToken, "Invalid token.", err)
}

func NewErrInvalidNote(message string) *APIError {
	return newErr(KindValidation, http.StatusBadRequest, CodeMissingFields, message, nil)
}

func NewErrTitleTooLong(maxLength int) *APIError {
	return newErr(KindValidation, http.StatusBadRequest, CodeTitleTooLong,
		fmt.Sprintf("Title must be less than %d characters", maxLength), nil)
}

func NewErrNoteNotFound() *APIError {
	return newErr(KindNotFound, http.StatusNotFound, CodeNoteNotFound, "Note not found", nil)
}

func NewErrExportNotFound() *APIError {
	return newErr(KindNotFound, http.StatusNotFound, CodeExportNotFound, "Export not found", nil)
}

func NewErrInternalServerError(err error) *APIError {
	return newErr(KindTransport, http.StatusInternalServerError, CodeInternal, ServerErrorMessage, err)
}

// Response is the JSON body written for a failed request.
type Response struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Response hides the wrapped error from the client.
func (e *APIError) Response() Response {
	return Response{Message: e.Message, Code: e.Code}
}
