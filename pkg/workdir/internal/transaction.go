package internal

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidOperation is returned when an operation is malformed.
var ErrInvalidOperation = errors.New("invalid operation")

// Transaction applies a batch of operations all-or-nothing: every touched
// file is backed up first and restored if any operation fails.
type Transaction struct {
	fileOps *FileOps
}

// NewTransaction creates a Transaction over fileOps.
func NewTransaction(fileOps *FileOps) *Transaction {
	return &Transaction{fileOps: fileOps}
}

// Execute applies ops in order and returns how many were applied.
func (t *Transaction) Execute(ctx context.Context, ops []Operation) (int, error) {
	if len(ops) == 0 {
		return 0, nil
	}
	if err := validateOperations(ops); err != nil {
		return 0, err
	}

	backups := make([]*Backup, 0, len(ops))
	for _, op := range ops {
		b, err := t.fileOps.CreateBackup(op.Path)
		if err != nil {
			return 0, err
		}
		backups = append(backups, b)
	}

	for i, op := range ops {
		select {
		case <-ctx.Done():
			t.rollback(backups)
			return i, ctx.Err()
		default:
		}

		if err := t.fileOps.ApplyOperation(op); err != nil {
			msg := fmt.Sprintf("failed at %s %s after %d operations", op.Action, op.Path, i)
			if !t.rollback(backups) {
				msg += " (rollback failed, working tree may be inconsistent)"
			}
			return i, fmt.Errorf("%s: %w", msg, err)
		}
	}
	return len(ops), nil
}

func validateOperations(ops []Operation) error {
	seen := make(map[string]bool, len(ops))
	for i, op := range ops {
		if op.Path == "" {
			return fmt.Errorf("%w: operation %d has empty path", ErrInvalidOperation, i)
		}
		if op.Action != ActionDelete && op.Blob == "" {
			return fmt.Errorf("%w: operation %d (%s) missing blob", ErrInvalidOperation, i, op.Action)
		}
		if seen[op.Path] {
			return fmt.Errorf("%w: duplicate operation on %s", ErrInvalidOperation, op.Path)
		}
		seen[op.Path] = true
	}
	return nil
}

// rollback restores backups newest first and reports whether all succeeded.
func (t *Transaction) rollback(backups []*Backup) bool {
	ok := true
	for i := len(backups) - 1; i >= 0; i-- {
		if err := t.fileOps.RestoreBackup(backups[i]); err != nil {
			ok = false
		}
	}
	return ok
}
