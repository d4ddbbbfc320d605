package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: "Stage a file for the next commit",
		Long: `Stage the current contents of a file for the next commit.
Adding a file whose contents match the head commit unstages it instead, and
a pending removal of the file is cancelled.`,
		Args: exactOperands(1),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			return s.area.Add(ctx, args[0])
		}),
	}
}

func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit <message>",
		Short: "Record the staged changes as a new commit",
		Args:  operands(0, 1),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			message := ""
			if len(args) == 1 {
				message = args[0]
			}
			_, err := s.area.Commit(ctx, message)
			return err
		}),
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file>",
		Short: "Unstage a file, or stage its removal and delete it",
		Args:  exactOperands(1),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			return s.area.Remove(ctx, args[0])
		}),
	}
}
