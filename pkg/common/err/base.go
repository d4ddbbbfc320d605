package err

import (
	"errors"
	"strings"
)

// Error is the base error type shared by every gitlet package.
//
// Package-specific errors wrap *Error and add their own fields. Two errors
// compare equal under errors.Is when they carry the same non-empty Code, so
// callers can branch on the taxonomy without knowing the concrete type.
type Error struct {
	// Package names the originating package ("graph", "merge", "remote", ...).
	Package string

	// Code is the taxonomy category (CodeNotFound, CodePrecondition, ...).
	Code string

	// Op is the operation that failed ("checkout", "push", "resolve").
	Op string

	// Message is the one-line text shown to the user. It is printed verbatim
	// by the command layer, so it must read as a complete sentence.
	Message string

	// Err is the wrapped cause, nil for leaf errors.
	Err error
}

// Error formats as: [package][code] op: message: cause
func (e *Error) Error() string {
	var parts []string

	var prefix strings.Builder
	if e.Package != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Package)
		prefix.WriteString("]")
	}
	if e.Code != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Code)
		prefix.WriteString("]")
	}
	if prefix.Len() > 0 {
		parts = append(parts, prefix.String())
	}
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	result := strings.Join(parts, ": ")
	if e.Err != nil {
		if result != "" {
			result += ": " + e.Err.Error()
		} else {
			result = e.Err.Error()
		}
	}
	return result
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on code so errors.Is(err, &Error{Code: CodeNotFound}) works
// across package boundaries.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// New creates a base error.
func New(pkg, code, op, message string, err error) *Error {
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Wrap wraps err with package and operation context. Returns nil if err is nil.
func Wrap(err error, pkg, op string) error {
	if err == nil {
		return nil
	}
	return &Error{Package: pkg, Op: op, Err: err}
}

// WrapWithCode wraps err and assigns it a code. Returns nil if err is nil.
func WrapWithCode(err error, pkg, code, op string) error {
	if err == nil {
		return nil
	}
	return &Error{Package: pkg, Code: code, Op: op, Err: err}
}

// Error codes. The first five form the user-facing taxonomy; the rest are
// plumbing failures that never carry a user message.
const (
	// CodeNotFound: a referenced commit, branch, remote, or file does not exist.
	CodeNotFound = "NOT_FOUND"

	// CodeInvalidInput: the operands are wrong in count, shape, or content.
	CodeInvalidInput = "INVALID_INPUT"

	// CodePrecondition: the repository state forbids the operation.
	CodePrecondition = "PRECONDITION_FAILED"

	// CodeUntracked: an untracked working file would be overwritten or deleted.
	CodeUntracked = "UNTRACKED_CONFLICT"

	// CodeMergeConflict: a merge produced conflicted files. Reported, not fatal.
	CodeMergeConflict = "MERGE_CONFLICT"

	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeInvalidFormat = "INVALID_FORMAT"
	CodeInternal      = "INTERNAL"
)

// IsCode reports whether any error in err's chain carries code.
func IsCode(err error, code string) bool {
	var e *Error
	for err != nil {
		if errors.As(err, &e) {
			if e.Code == code {
				return true
			}
			err = e.Err
			continue
		}
		return false
	}
	return false
}

// GetCode returns the code of the outermost coded error in err's chain.
func GetCode(err error) string {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return ""
		}
		if e.Code != "" {
			return e.Code
		}
		err = e.Err
	}
	return ""
}

// UserMessage returns the first non-empty Message in err's chain. When no
// layer supplied one, the plain error text is returned.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	cur := err
	for cur != nil {
		if !errors.As(cur, &e) {
			break
		}
		if e.Message != "" {
			return e.Message
		}
		cur = e.Err
	}
	return err.Error()
}
