package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodePersistence  ErrorCode = "PERSISTENCE_ERROR"

	// Completion endpoint errors
	CodeUpstreamUnavailable   ErrorCode = "UPSTREAM_UNAVAILABLE"
	CodeEmptyUpstreamResponse ErrorCode = "EMPTY_UPSTREAM_RESPONSE"
	CodeUpstreamError         ErrorCode = "UPSTREAM_ERROR"

	// Response extraction errors
	CodeMalformedEnvelope    ErrorCode = "MALFORMED_ENVELOPE"
	CodeMissingChoices       ErrorCode = "MISSING_CHOICES"
	CodeMissingContent       ErrorCode = "MISSING_CONTENT"
	CodeNoJSONArrayFound     ErrorCode = "NO_JSON_ARRAY_FOUND"
	CodeCandidateDecodeError ErrorCode = "CANDIDATE_DECODE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrorCodeOf returns the code of err if it is a *DomainError, or CodeInternal.
func ErrorCodeOf(err error) ErrorCode {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	return CodeInternal
}

// Helper constructors for the error taxonomy

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewQuizNotFoundError(quizID int64) *DomainError {
	return NewError(CodeNotFound, fmt.Sprintf("Quiz not found with ID: %d", quizID), nil)
}

func NewPersistenceError(message string, cause error) *DomainError {
	return NewError(CodePersistence, message, cause)
}

func NewUpstreamUnavailableError(cause error) *DomainError {
	return NewError(CodeUpstreamUnavailable, "Completion endpoint unavailable", cause)
}

func NewEmptyUpstreamResponseError() *DomainError {
	return NewError(CodeEmptyUpstreamResponse, "Completion endpoint returned an empty response", nil)
}

func NewUpstreamError(message string) *DomainError {
	if message == "" {
		message = "Unknown error"
	}
	return NewError(CodeUpstreamError, message, nil)
}

func NewMalformedEnvelopeError(cause error) *DomainError {
	return NewError(CodeMalformedEnvelope, "Completion response envelope could not be decoded", cause)
}

func NewMissingChoicesError() *DomainError {
	return NewError(CodeMissingChoices, "Completion response contained no choices", nil)
}

func NewMissingContentError() *DomainError {
	return NewError(CodeMissingContent, "Completion response choice carried no message content", nil)
}

func NewNoJSONArrayFoundError() *DomainError {
	return NewError(CodeNoJSONArrayFound, "No JSON array found in the model response", nil)
}

func NewCandidateDecodeError(cause error) *DomainError {
	return NewError(CodeCandidateDecodeError, "Model response could not be decoded into candidates", cause)
}
