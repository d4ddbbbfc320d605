package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gerr "github.com/utkarsh5026/gitlet/pkg/common/err"
	"github.com/utkarsh5026/gitlet/pkg/config"
	"github.com/utkarsh5026/gitlet/pkg/repository/sourcerepo"
)

const MsgNoConfigValue = "No value set for that key."

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new Gitlet repository in the current directory",
		Long: `Create a new Gitlet repository in the current directory.
The repository starts with one commit, "initial commit", and a single branch
named after init.defaultbranch (master unless configured).`,
		Args: exactOperands(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := repoOptions()
			if err != nil {
				return err
			}
			path, err := workingDir()
			if err != nil {
				return err
			}
			_, err = sourcerepo.Initialize(cmd.Context(), path, opts...)
			return err
		},
	}
}

func newConfigCmd() *cobra.Command {
	var list, user, unset bool

	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get and set configuration values",
		Long: `Get and set configuration values.

Examples:
  # Show the effective value of a key
  gitlet config init.defaultbranch

  # Set a repository-level value
  gitlet config transfer.workers 8

  # Set a value for every repository of this user
  gitlet config --user color.ui never

  # List every effective value and where it came from
  gitlet config --list`,
		Args: operands(0, 2),
		RunE: inRepo(func(ctx context.Context, s *session, args []string) error {
			cfg := s.repo.Config()
			level := config.RepositoryLevel
			if user {
				level = config.UserLevel
			}

			switch {
			case list:
				for _, e := range cfg.List() {
					s.println(fmt.Sprintf("%s=%s\t(%s)", e.Key, e.Value, e.Level))
				}
				return nil
			case unset:
				if len(args) != 1 {
					return incorrectOperands(fmt.Errorf("--unset takes a key"))
				}
				return cfg.Unset(args[0], level)
			case len(args) == 1:
				e := cfg.Get(args[0])
				if e == nil {
					return gerr.New(cliPkg, gerr.CodeNotFound, "config", MsgNoConfigValue,
						fmt.Errorf("key %q", strings.ToLower(args[0])))
				}
				s.println(e.Value)
				return nil
			case len(args) == 2:
				return cfg.Set(args[0], args[1], level)
			}
			return incorrectOperands(fmt.Errorf("config needs a key"))
		}),
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List all effective values")
	cmd.Flags().BoolVar(&user, "user", false, "Write to the user configuration instead of the repository")
	cmd.Flags().BoolVar(&unset, "unset", false, "Remove a key")

	return cmd
}
