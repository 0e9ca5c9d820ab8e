/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"time"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create an entity that already exists
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConditionFailed is returned when a conditional update fails
	ErrConditionFailed = errors.New("condition check failed")

	// ErrActivationTimeout is returned when a table never reaches ACTIVE
	// within the configured polling budget
	ErrActivationTimeout = errors.New("table activation timed out")

	// ErrInitializationFailed is returned when table provisioning fails at startup
	ErrInitializationFailed = errors.New("table initialization failed")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConditionFailedError represents a failed conditional operation
type ConditionFailedError struct {
	Operation string
	Condition string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition check failed for %s operation: %s", e.Operation, e.Condition)
}

func (e *ConditionFailedError) Is(target error) bool {
	return target == ErrConditionFailed
}

// ActivationTimeoutError is returned when a table stays in a provisioning
// state past the full polling budget (Attempts checks, Interval apart).
type ActivationTimeoutError struct {
	Table    string
	Attempts int
	Interval time.Duration
}

func (e *ActivationTimeoutError) Error() string {
	return fmt.Sprintf("table %q did not become active after %d attempts (%s apart)",
		e.Table, e.Attempts, e.Interval)
}

func (e *ActivationTimeoutError) Is(target error) bool {
	return target == ErrActivationTimeout
}

// InitializationError wraps the failure that prevented a table from being
// created or verified during startup. It carries the table name and the
// root cause so startup diagnostics can name the offending table.
type InitializationError struct {
	Table string
	Err   error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("failed to initialize table %q: %v", e.Table, e.Err)
}

func (e *InitializationError) Is(target error) bool {
	return target == ErrInitializationFailed
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConditionFailedError creates a new ConditionFailedError
func NewConditionFailedError(operation, condition string) error {
	return &ConditionFailedError{Operation: operation, Condition: condition}
}

// NewActivationTimeoutError creates a new ActivationTimeoutError
func NewActivationTimeoutError(table string, attempts int, interval time.Duration) error {
	return &ActivationTimeoutError{Table: table, Attempts: attempts, Interval: interval}
}

// NewInitializationError creates a new InitializationError wrapping the root cause
func NewInitializationError(table string, err error) error {
	return &InitializationError{Table: table, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConditionFailed checks if an error is a condition failed error
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}

// IsActivationTimeout checks if an error is a table activation timeout
func IsActivationTimeout(err error) bool {
	return errors.Is(err, ErrActivationTimeout)
}

// IsInitializationFailed checks if an error is a table initialization failure
func IsInitializationFailed(err error) bool {
	return errors.Is(err, ErrInitializationFailed)
}
