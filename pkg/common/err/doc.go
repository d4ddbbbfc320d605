// Package err provides the coded error type shared across gitlet.
//
// # Taxonomy
//
// Every failure a user can trigger falls into one category:
//
//	CodeNotFound      commit, branch, remote, or file missing
//	CodeInvalidInput  wrong operand count or shape
//	CodePrecondition  repository state forbids the operation
//	CodeUntracked     an untracked file would be clobbered
//
// A merge with conflicts is not a failure. The merge engine reports it
// through its result value and the command layer prints the message.
//
// # Package errors
//
// Packages wrap *Error in their own types and declare a pkgName constant:
//
//	type NotFoundError struct {
//	    baseError *err.Error
//	    Name      string
//	}
//
//	func (e *NotFoundError) Error() string { return e.baseError.Error() }
//	func (e *NotFoundError) Unwrap() error { return e.baseError }
//
// The command layer prints err.UserMessage(e) and exits with status 0.
package err
