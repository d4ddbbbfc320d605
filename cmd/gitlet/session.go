package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/utkarsh5026/gitlet/cmd/ui"
	"github.com/utkarsh5026/gitlet/pkg/commitmanager"
	gerr "github.com/utkarsh5026/gitlet/pkg/common/err"
	"github.com/utkarsh5026/gitlet/pkg/config"
	"github.com/utkarsh5026/gitlet/pkg/merge"
	"github.com/utkarsh5026/gitlet/pkg/refs/branch"
	"github.com/utkarsh5026/gitlet/pkg/remote"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
	"github.com/utkarsh5026/gitlet/pkg/repository/sourcerepo"
	"github.com/utkarsh5026/gitlet/pkg/staging"
	"github.com/utkarsh5026/gitlet/pkg/workdir"
)

const cliPkg = "cli"

const (
	MsgNoCommand         = "Please enter a command."
	MsgUnknownCommand    = "No command with that name exists."
	MsgIncorrectOperands = "Incorrect operands."
)

var (
	errNoCommand      = gerr.New(cliPkg, gerr.CodeInvalidInput, "dispatch", MsgNoCommand, nil)
	errUnknownCommand = gerr.New(cliPkg, gerr.CodeInvalidInput, "dispatch", MsgUnknownCommand, nil)
)

func incorrectOperands(cause error) error {
	return gerr.New(cliPkg, gerr.CodeInvalidInput, "args", MsgIncorrectOperands, cause)
}

// operands accepts between lo and hi positional arguments.
func operands(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			return incorrectOperands(fmt.Errorf("%s takes %d to %d operands, got %d", cmd.Name(), lo, hi, len(args)))
		}
		return nil
	}
}

func exactOperands(n int) cobra.PositionalArgs { return operands(n, n) }

// session is everything a command needs from one opened repository.
type session struct {
	repo     *sourcerepo.SourceRepository
	cfg      *config.TypedConfig
	commits  *commitmanager.Manager
	area     *staging.Area
	wd       *workdir.Manager
	branches *branch.Manager
	merger   *merge.Engine
	remotes  *remote.Manager
	out      io.Writer
}

func repoOptions() ([]sourcerepo.Option, error) {
	var opts []sourcerepo.Option
	if userConfigPath != "" {
		opts = append(opts, sourcerepo.WithUserConfig(scpath.AbsolutePath(userConfigPath)))
	}
	if len(configOverrides) > 0 {
		values := make(map[string]string, len(configOverrides))
		for _, kv := range configOverrides {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				return nil, incorrectOperands(fmt.Errorf("--config expects key=value, got %q", kv))
			}
			values[strings.ToLower(k)] = v
		}
		opts = append(opts, sourcerepo.WithOverrides(values))
	}
	return opts, nil
}

func workingDir() (scpath.RepositoryPath, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", err
	}
	return scpath.NewRepositoryPath(abs)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// openSession finds the repository containing the working directory and
// wires the managers around it.
func openSession(ctx context.Context, out io.Writer) (*session, error) {
	opts, err := repoOptions()
	if err != nil {
		return nil, err
	}
	cwd, err := workingDir()
	if err != nil {
		return nil, err
	}
	repo, err := sourcerepo.FindRepository(ctx, cwd, opts...)
	if err != nil {
		return nil, err
	}

	cfg := config.NewTypedConfig(repo.Config())
	ui.SetColor(cfg.ColorEnabled(isTerminal(out)))

	commits := commitmanager.NewManager(repo.ObjectStore())
	area := staging.NewArea(repo, commits)
	wd := workdir.NewManager(repo, commits)
	branches := branch.NewManager(repo, commits, wd)
	merger := merge.NewEngine(repo, commits, area, wd, branches)
	remotes := remote.NewManager(repo, commits, branches, merger,
		remote.WithWorkers(cfg.TransferWorkers()),
		remote.WithRepositoryOptions(opts...),
	)

	return &session{
		repo:     repo,
		cfg:      cfg,
		commits:  commits,
		area:     area,
		wd:       wd,
		branches: branches,
		merger:   merger,
		remotes:  remotes,
		out:      out,
	}, nil
}

func (s *session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// inRepo adapts fn into a RunE that opens the repository first and saves
// its state only when fn succeeds.
func inRepo(fn func(ctx context.Context, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := fn(ctx, s, args); err != nil {
			return err
		}
		return s.repo.Save()
	}
}
