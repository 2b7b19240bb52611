package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a business-rule conflict (duplicate, capacity, state)
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrRuleNotFound        = &NotFoundError{Entity: "rule"}
	ErrRuleBreakNotFound   = &NotFoundError{Entity: "rule break"}
	ErrPaymentNotFound     = &NotFoundError{Entity: "payment"}
	ErrExpenseNotFound     = &NotFoundError{Entity: "expense"}
	ErrJoinRequestNotFound = &NotFoundError{Entity: "join request"}
	ErrMemberNotFound      = &NotFoundError{Entity: "team member"}
)

// Business Rule Conflicts
var (
	ErrAlreadyTeamOwner    = &ConflictError{Message: "user already owns a team"}
	ErrAlreadyMember       = &ConflictError{Message: "user is already a member of this team"}
	ErrJoinRequestPending  = &ConflictError{Message: "a pending join request already exists for this team"}
	ErrJoinRequestResolved = &ConflictError{Message: "join request has already been resolved"}
	ErrTeamFull            = &ConflictError{Message: "team has reached its member capacity"}
)

// Authorization Errors
var (
	ErrForbidden       = &AuthorizationError{Message: "insufficient role for this operation"}
	ErrJoinDisabled    = &AuthorizationError{Message: "joining this team is currently disabled"}
	ErrUnauthenticated = &AuthenticationError{Message: "authentication required"}
)

// Authentication Errors
var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidState    = errors.New("invalid oauth state")
	ErrUnknownProvider = errors.New("unknown auth provider")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
