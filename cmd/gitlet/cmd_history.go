package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/gitlet/cmd/ui"
	"github.com/utkarsh5026/gitlet/pkg/commitmanager"
)

func toLogEntries(history []commitmanager.Entry) []ui.LogEntry {
	out := make([]ui.LogEntry, 0, len(history))
	for _, e := range history {
		entry := ui.LogEntry{
			Hash:    e.Hash.String(),
			Date:    e.Commit.Timestamp,
			Message: e.Commit.Message,
		}
		if e.Commit.IsMergeCommit() {
			entry.Parent = e.Commit.Parent.String()
			entry.Parent2 = e.Commit.Parent2.String()
		}
		out = append(out, entry)
	}
	return out
}

func (s *session) printLog(history []commitmanager.Entry, table bool) error {
	entries := toLogEntries(history)
	if table || s.cfg.LogFormat() == "table" {
		return ui.WriteLogTable(s.out, entries)
	}
	for _, e := range entries {
		fmt.Fprint(s.out, ui.FormatLogEntry(e))
	}
	return nil
}

func newLogCmd() *cobra.Command {
	var useTable bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the history of the current branch",
		Long: `Show the commits from head back to the initial commit, following
first parents only. Merge commits list both parents.`,
		Args: exactOperands(0),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			history, err := s.commits.FirstParentHistory(ctx, s.repo.Head())
			if err != nil {
				return err
			}
			return s.printLog(history, useTable)
		}),
	}

	cmd.Flags().BoolVarP(&useTable, "table", "t", false, "Display commits in table format")
	return cmd
}

func newGlobalLogCmd() *cobra.Command {
	var useTable bool

	cmd := &cobra.Command{
		Use:   "global-log",
		Short: "Show every commit ever made, newest first",
		Args:  exactOperands(0),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			all, err := s.commits.AllCommits(ctx)
			if err != nil {
				return err
			}
			return s.printLog(all, useTable)
		}),
	}

	cmd.Flags().BoolVarP(&useTable, "table", "t", false, "Display commits in table format")
	return cmd
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <message>",
		Short: "Print the ids of all commits with the given message",
		Args:  exactOperands(1),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			ids, err := s.commits.FindByMessage(ctx, args[0])
			if err != nil {
				return err
			}
			for _, id := range ids {
				s.println(id.String())
			}
			return nil
		}),
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show branches, staged files and working tree changes",
		Args:  exactOperands(0),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			st, err := s.wd.Status(ctx)
			if err != nil {
				return err
			}

			view := ui.StatusView{
				Branches:  st.Branches,
				Current:   st.Branch,
				Staged:    st.Staged,
				Removed:   st.Removed,
				Untracked: st.Untracked,
			}
			for _, c := range st.Unstaged {
				view.Unstaged = append(view.Unstaged, fmt.Sprintf("%s (%s)", c.Path, c.Kind))
			}
			fmt.Fprint(s.out, ui.FormatStatus(view))
			return nil
		}),
	}
}
