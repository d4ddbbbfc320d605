package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newAddRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-remote <name> <path-to-.gitlet>",
		Short: "Register another repository under a name",
		Long: `Register another repository under a name. The location is the path of
its .gitlet directory; forward slashes are converted for the host system and
relative paths are taken from the working tree root.`,
		Args: exactOperands(2),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			return s.remotes.Add(args[0], filepath.FromSlash(args[1]))
		}),
	}
}

func newRmRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-remote <name>",
		Short: "Forget a registered remote",
		Args:  exactOperands(1),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			return s.remotes.Remove(args[0])
		}),
	}
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <remote> <branch>",
		Short: "Copy local history to a remote branch",
		Args:  exactOperands(2),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			_, err := s.remotes.Push(ctx, args[0], args[1])
			return err
		}),
	}
}

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <remote> <branch>",
		Short: "Copy a remote branch into <remote>/<branch>",
		Args:  exactOperands(2),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			_, err := s.remotes.Fetch(ctx, args[0], args[1])
			return err
		}),
	}
}

func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull <remote> <branch>",
		Short: "Fetch a remote branch and merge it into the current branch",
		Args:  exactOperands(2),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			_, result, err := s.remotes.Pull(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			s.printMergeResult(result)
			return nil
		}),
	}
}
