package chisel

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// NotFoundError reports that an anchor, header, heading, style or search
// target could not be resolved in the document.
type NotFoundError struct {
	Kind   string // "anchor", "header", "heading", "style", "target paragraph", ...
	Query  string
	Detail string
}

func (e *NotFoundError) Error() string {
	var msg string
	if e.Query != "" {
		msg = fmt.Sprintf("%s '%s' not found", e.Kind, e.Query)
	} else {
		msg = fmt.Sprintf("%s not found", e.Kind)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(kind, query string) error {
	return &NotFoundError{Kind: kind, Query: query}
}

// RangeError reports index bounds that do not fit the document's current
// element count. Message names the offending parameter and the actual bounds.
type RangeError struct {
	Param   string
	Value   int
	Message string
}

func (e *RangeError) Error() string {
	return e.Message
}

// NewRangeError creates a new range error for the given parameter
func NewRangeError(param string, value int, format string, args ...interface{}) error {
	return &RangeError{
		Param:   param,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}

// FileError represents an error accessing or persisting the document file
type FileError struct {
	Op    string
	Path  string
	Cause error
}

func (e *FileError) Error() string {
	if errors.Is(e.Cause, fs.ErrNotExist) {
		return fmt.Sprintf("document '%s' does not exist", e.Path)
	}
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("file error during %s of '%s': %v", e.Op, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("file error during %s of '%s'", e.Op, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("file error during %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("file error during %s", e.Op)
}

func (e *FileError) Unwrap() error {
	return e.Cause
}

// NewFileError creates a new file error
func NewFileError(op, path string, cause error) error {
	return &FileError{
		Op:    op,
		Path:  path,
		Cause: cause,
	}
}

// OperationError wraps an unexpected lower-level fault caught at an
// operation boundary, so callers always receive a descriptive failure
// instead of a raw fault.
type OperationError struct {
	Op    string
	Path  string
	Cause error
}

func (e *OperationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("failed to %s", e.Op)
}

func (e *OperationError) Unwrap() error {
	return e.Cause
}

// NewOperationError creates a new operation error
func NewOperationError(op, path string, cause error) error {
	return &OperationError{
		Op:    op,
		Path:  path,
		Cause: cause,
	}
}

// ValidationIssue represents a single validation problem
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError represents multiple validation issues
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}

	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation error: %s - %s", e.Issues[0].Field, e.Issues[0].Message)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d validation issues:", len(e.Issues)))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

// RecoverError converts a panic recovery value to an error
func RecoverError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return fmt.Errorf("panic recovered: %w", v)
	case string:
		return fmt.Errorf("panic recovered: %s", v)
	default:
		return fmt.Errorf("panic recovered: %v", v)
	}
}

// IsNotFoundError checks if an error is a not-found error
func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsRangeError checks if an error is a range error
func IsRangeError(err error) bool {
	var e *RangeError
	return errors.As(err, &e)
}

// IsFileError checks if an error is a file error
func IsFileError(err error) bool {
	var e *FileError
	return errors.As(err, &e)
}

// IsMissingFileError checks if an error reports a document that does not exist
func IsMissingFileError(err error) bool {
	var e *FileError
	if !errors.As(err, &e) {
		return false
	}
	return errors.Is(e.Cause, fs.ErrNotExist)
}

// IsOperationError checks if an error is an operation error
func IsOperationError(err error) bool {
	var e *OperationError
	return errors.As(err, &e)
}
