package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthRequired           ErrorCode = "AUTH-001"
	ErrCodeAuthInvalidCredentials ErrorCode = "AUTH-002"
	ErrCodeAuthSessionExpired     ErrorCode = "AUTH-003"
	ErrCodeAuthPermissionDenied   ErrorCode = "AUTH-004"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionStorageRead    ErrorCode = "SESSION-001"
	ErrCodeSessionStorageWrite   ErrorCode = "SESSION-002"
	ErrCodeSessionRecordCorrupt  ErrorCode = "SESSION-003"
	ErrCodeSessionNotInitialized ErrorCode = "SESSION-004"

	// API errors (API-001 to API-099)
	ErrCodeAPIRequest     ErrorCode = "API-001"
	ErrCodeAPIResponse    ErrorCode = "API-002"
	ErrCodeAPIUnavailable ErrorCode = "API-003"
	ErrCodeAPINotFound    ErrorCode = "API-004"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigNotFound ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG-002"

	// Input errors (INPUT-001 to INPUT-099)
	ErrCodeInputRequired ErrorCode = "INPUT-001"
	ErrCodeInputInvalid  ErrorCode = "INPUT-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileReadFailed  ErrorCode = "IO-001"
	ErrCodeFileWriteFailed ErrorCode = "IO-002"
	ErrCodeDirectoryFailed ErrorCode = "IO-003"
)

// VendalinkError represents an enhanced error with code, suggestions, and documentation
type VendalinkError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *VendalinkError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *VendalinkError) Unwrap() error {
	return e.Cause
}

// New creates a new VendalinkError
func New(code ErrorCode, message string) *VendalinkError {
	return &VendalinkError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new VendalinkError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *VendalinkError {
	return &VendalinkError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *VendalinkError) WithSuggestion(suggestion string) *VendalinkError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *VendalinkError) WithSuggestions(suggestions ...string) *VendalinkError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *VendalinkError) WithDocs(url string) *VendalinkError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewAuthRequiredError creates an error for commands that need a logged-in session
func NewAuthRequiredError() *VendalinkError {
	return New(ErrCodeAuthRequired, "you are not logged in").
		WithSuggestion("Run 'vendalink auth login' to authenticate").
		WithSuggestion("Run 'vendalink auth status' to inspect the current session")
}

// NewInvalidCredentialsError creates an error for a rejected login attempt
func NewInvalidCredentialsError(cause error) *VendalinkError {
	return Wrap(ErrCodeAuthInvalidCredentials, "login failed: invalid email or password", cause).
		WithSuggestion("Check the email address and password and try again").
		WithSuggestion("Use 'vendalink auth forgot-password' if you lost your password")
}

// NewSessionExpiredError creates an error for a token the backend no longer accepts
func NewSessionExpiredError() *VendalinkError {
	return New(ErrCodeAuthSessionExpired, "your session has expired or was revoked").
		WithSuggestion("Run 'vendalink auth login' to start a new session")
}

// NewPermissionDeniedError creates an error for a role without mutation rights
func NewPermissionDeniedError(action string) *VendalinkError {
	return New(ErrCodeAuthPermissionDenied, fmt.Sprintf("your role does not allow this action: %s", action)).
		WithSuggestion("Ask an administrator to perform this change or to upgrade your role")
}

// NewAPIUnavailableError creates an error for transport-level failures
func NewAPIUnavailableError(cause error) *VendalinkError {
	return Wrap(ErrCodeAPIUnavailable, "could not reach the CRM API", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify the API base URL with 'vendalink config show'")
}

// NewInputRequiredError creates a required input error
func NewInputRequiredError(field string) *VendalinkError {
	return New(ErrCodeInputRequired, fmt.Sprintf("required value is missing: %s", field)).
		WithSuggestion(fmt.Sprintf("Provide --%s or run the command interactively", field))
}
