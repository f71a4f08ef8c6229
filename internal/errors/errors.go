// Package errors provides structured error types for claw.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for claw operations.
const (
	// Config errors
	CodeConfigParse        = "CONFIG_001" // Config file could not be parsed
	CodeConfigInvalidValue = "CONFIG_002" // Invalid value
	CodeConfigUnknownKey   = "CONFIG_003" // Unknown key for `config set`

	// Auth errors
	CodeAuthNotLoggedIn = "AUTH_001" // No token stored
	CodeAuthTokenStore  = "AUTH_002" // Token could not be persisted
	CodeAuthBadToken    = "AUTH_003" // Token could not be decoded

	// Input errors
	CodeInputMissing  = "INPUT_001" // Required argument missing
	CodeInputInvalid  = "INPUT_002" // Argument has an invalid value
	CodeInputTooLong  = "INPUT_003" // Argument exceeds a length limit
	CodeInputNoStdin  = "INPUT_004" // "-" given but stdin is a terminal
	CodeInputNotFound = "INPUT_005" // Referenced entity not found (category, comment, ...)
	CodeInputAborted  = "INPUT_006" // Confirmation declined or unavailable

	// API errors
	CodeAPIStatus       = "API_001" // Non-2xx response
	CodeAPITransport    = "API_002" // Request never got a response
	CodeAPIBodyTooLarge = "API_003" // Request body exceeds the client cap
	CodeAPIDecode       = "API_004" // Response body was not the expected JSON

	// Skill errors
	CodeSkillManifestMissing = "SKILL_001" // SKILL.md not found
	CodeSkillManifestInvalid = "SKILL_002" // SKILL.md frontmatter invalid or incomplete
	CodeSkillBundleInvalid   = "SKILL_003" // Server returned an unusable bundle

	// IO errors
	CodeIOReadError  = "IO_001" // Read error
	CodeIOWriteError = "IO_002" // Write error
)

// ClawError is the structured error type for claw operations.
type ClawError struct {
	Code    string         `json:"code"`              // Error code (e.g., "INPUT_001")
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Context (flag, path, ...)
	Cause   error          `json:"-"`                 // Wrapped error (not serialized)
}

// Error implements the error interface.
func (e *ClawError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *ClawError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *ClawError) WithDetail(key string, value any) *ClawError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new ClawError.
func New(code, message string) *ClawError {
	return &ClawError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new ClawError with formatted message.
func Newf(code, format string, args ...any) *ClawError {
	return &ClawError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with a ClawError.
func Wrap(code, message string, err error) *ClawError {
	return &ClawError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted ClawError.
func Wrapf(code string, err error, format string, args ...any) *ClawError {
	return &ClawError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// --- Input Errors ---

// MissingArgument reports a required flag or argument that was not supplied.
func MissingArgument(message, usage string) *ClawError {
	return New(CodeInputMissing, message).
		WithDetail("usage", usage)
}

// InvalidArgument reports a flag whose value cannot be used.
func InvalidArgument(flag string, value any, reason string) *ClawError {
	return Newf(CodeInputInvalid, "invalid value for %s: %s", flag, reason).
		WithDetail("flag", flag).
		WithDetail("value", value)
}

// TooLong reports a value that exceeds a character limit.
func TooLong(what string, got, max int) *ClawError {
	return Newf(CodeInputTooLong, "%s too long: %d chars (max %d)", what, got, max).
		WithDetail("length", got).
		WithDetail("max", max)
}

// NotFound reports a referenced entity that does not exist.
func NotFound(format string, args ...any) *ClawError {
	return Newf(CodeInputNotFound, format, args...)
}

// --- Auth Errors ---

// NotLoggedIn is returned when a command needs a token and none is stored.
func NotLoggedIn() *ClawError {
	return New(CodeAuthNotLoggedIn, "not logged in. Run 'claw login --token <token>' or 'claw register'")
}

// --- Skill Errors ---

// SkillManifestMissing reports a directory without SKILL.md.
func SkillManifestMissing(dir string) *ClawError {
	return Newf(CodeSkillManifestMissing, "SKILL.md not found in %s", dir).
		WithDetail("dir", dir)
}

// SkillManifestInvalid reports unusable SKILL.md frontmatter.
func SkillManifestInvalid(reason string) *ClawError {
	return Newf(CodeSkillManifestInvalid, "SKILL.md %s", reason)
}

// --- IO Errors ---

// IOReadError creates an error for read failures.
func IOReadError(path string, err error) *ClawError {
	return Wrap(CodeIOReadError, "failed to read file", err).
		WithDetail("path", path)
}

// IOWriteError creates an error for write failures.
func IOWriteError(path string, err error) *ClawError {
	return Wrap(CodeIOWriteError, "failed to write file", err).
		WithDetail("path", path)
}

// HasCode checks if an error is a ClawError with the given code.
// It handles wrapped errors by unwrapping to find a ClawError.
func HasCode(err error, code string) bool {
	var cerr *ClawError
	if errors.As(err, &cerr) {
		return cerr.Code == code
	}
	return false
}

// Code returns the error code if err is a ClawError, empty string otherwise.
// It handles wrapped errors by unwrapping to find a ClawError.
func Code(err error) string {
	var cerr *ClawError
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return ""
}

// Usage returns the usage hint attached to an input error, if any.
func Usage(err error) string {
	var cerr *ClawError
	if errors.As(err, &cerr) {
		if u, ok := cerr.Details["usage"].(string); ok {
			return u
		}
	}
	return ""
}

// Message returns the text shown to a terminal user: the message of the
// outermost ClawError (plus its cause), or err.Error() for anything else.
func Message(err error) string {
	var cerr *ClawError
	if errors.As(err, &cerr) {
		if cerr.Cause != nil {
			return fmt.Sprintf("%s: %v", cerr.Message, cerr.Cause)
		}
		return cerr.Message
	}
	return err.Error()
}
