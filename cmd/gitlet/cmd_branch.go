package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/gitlet/cmd/ui"
	"github.com/utkarsh5026/gitlet/pkg/merge"
)

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout (-- <file> | <commit> -- <file> | <branch>)",
		Short: "Restore a file or switch branches",
		Long: `Restore a file or switch branches.

Examples:
  # Restore a file as it is in the head commit
  gitlet checkout -- wug.txt

  # Restore a file as it is in an earlier commit (ids may be abbreviated)
  gitlet checkout a0da1ea5 -- wug.txt

  # Switch to another branch
  gitlet checkout other`,
		Args: operands(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			return inRepo(func(ctx context.Context, s *session, args []string) error {
				switch {
				case dash == 0 && len(args) == 1:
					return s.branches.CheckoutFile(ctx, "", args[0])
				case dash == 1 && len(args) == 2:
					return s.branches.CheckoutFile(ctx, args[0], args[1])
				case dash == -1 && len(args) == 1:
					return s.branches.Checkout(ctx, args[0])
				}
				return incorrectOperands(fmt.Errorf("checkout %v (dash at %d)", args, dash))
			})(cmd, args)
		},
	}
}

func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch [name]",
		Short: "Create a branch at head, or list branches",
		Long: `Create a branch pointing at the head commit. The current branch does
not change. With no name, lists every branch and its tip.`,
		Args: operands(0, 1),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			if len(args) == 1 {
				_, err := s.branches.Create(ctx, args[0])
				return err
			}

			branches, err := s.branches.List(ctx)
			if err != nil {
				return err
			}
			rows := make([]ui.BranchRow, 0, len(branches))
			for _, b := range branches {
				rows = append(rows, ui.BranchRow{
					Name:    b.Name,
					Hash:    b.Hash.String(),
					Current: b.IsCurrentBranch,
					Message: b.LastCommitMessage,
				})
			}
			return ui.WriteBranchTable(s.out, rows)
		}),
	}
}

func newRmBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-branch <name>",
		Short: "Delete a branch pointer",
		Args:  exactOperands(1),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			return s.branches.Delete(ctx, args[0])
		}),
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <commit>",
		Short: "Check out a commit and move the current branch to it",
		Args:  exactOperands(1),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			_, err := s.branches.Reset(ctx, args[0])
			return err
		}),
	}
}

// printMergeResult reports the outcome lines merge and pull share.
func (s *session) printMergeResult(r *merge.Result) {
	switch {
	case r.Kind == merge.FastForward:
		s.println(merge.MsgFastForwarded)
	case r.HasConflicts():
		s.println(ui.WarningMessage(merge.MsgConflict))
	}
}

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <branch>",
		Short: "Merge a branch into the current branch",
		Long: `Merge the given branch into the current branch using the split point
as the common base. Conflicting files are written with conflict markers and
included in the merge commit.`,
		Args: exactOperands(1),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			result, err := s.merger.Merge(ctx, args[0])
			if err != nil {
				return err
			}
			s.printMergeResult(result)
			return nil
		}),
	}
}
