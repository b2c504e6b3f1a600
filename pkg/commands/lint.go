package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/commands/internal/options"
	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/lint"
	"github.com/wuxler/imgref/pkg/reference"
	"github.com/wuxler/imgref/pkg/util/xcache"
	"github.com/wuxler/imgref/pkg/xlog"
)

// NewLintCommand returns a command with default values.
func NewLintCommand() *LintCommand {
	return &LintCommand{
		Reference: options.NewReference(false),
		Fs:        afero.NewOsFs(),
		Jobs:      lint.DefaultJobs,
	}
}

// LintCommand validates reference list files.
type LintCommand struct {
	Reference *options.Reference
	// Fs is the filesystem files are read from.
	Fs afero.Fs
	// Jobs is the number of lines resolved concurrently.
	Jobs int64
	// NoCache resolves repeated lines again instead of memoizing them.
	NoCache bool
	// Duplicates also reports references listed more than once.
	Duplicates bool
}

// ToCLI transforms to a *cli.Command.
func (c *LintCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "lint",
		Usage: "Validate files listing one reference per line",
		UsageText: `imgref lint [OPTIONS] FILE

# Lint a list of images, blank lines and "#" comments are skipped
$ imgref lint --normalize images.txt
`,
		ArgsUsage: "FILE",
		Flags:     c.Flags(),
		Before: cli.BeforeFunc(cmdhelper.ActionFuncChain(
			cmdhelper.ExactArgs(1),
			c.Reference.Validate,
		)),
		Action: c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *LintCommand) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "jobs",
			Aliases:     []string{"j"},
			Usage:       "number of lines resolved concurrently",
			Value:       c.Jobs,
			Destination: &c.Jobs,
			Validator: func(n int64) error {
				if n < 1 {
					return fmt.Errorf("jobs must be positive, got %d", n)
				}
				return nil
			},
		},
		&cli.BoolFlag{
			Name:        "no-cache",
			Usage:       "resolve repeated lines again instead of reusing the first result",
			Destination: &c.NoCache,
		},
		&cli.BoolFlag{
			Name:        "duplicates",
			Usage:       "also report references listed more than once",
			Destination: &c.Duplicates,
		},
	}
	return append(flags, c.Reference.Flags()...)
}

// Run is the main function for the current command.
func (c *LintCommand) Run(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	ctx = xlog.WithContext(ctx, "file", path)

	f, err := c.Fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errdefs.NewE(errdefs.ErrNotFound, err)
		}
		return err
	}
	defer f.Close()

	cache := xcache.NewDiscard[lint.Result]()
	if !c.NoCache {
		cache = xcache.NewMemory[lint.Result]()
	}
	linter := lint.New(c.Reference.Resolver(),
		lint.WithJobs(int(c.Jobs)),
		lint.WithCache(cache),
	)
	report, err := linter.Lint(ctx, f)
	if err != nil {
		return err
	}

	for _, issue := range report.Issues {
		cmdhelper.Fprintf(cmd.Root().Writer, "%s:%d: %v", path, issue.Line, issue.Err)
	}
	if c.Duplicates {
		for _, dup := range report.Duplicates {
			lines := lo.Map(dup.Lines, func(n int, _ int) string { return fmt.Sprint(n) })
			cmdhelper.Fprintf(cmd.Root().Writer, "%s:%s: duplicate reference %s", path, strings.Join(lines, ","), dup.Reference)
		}
	}
	xlog.C(ctx).Info("lint finished",
		"checked", report.Checked,
		"invalid", len(report.Issues),
		"elapsed", report.Elapsed.String(),
	)

	if !report.OK() {
		xlog.C(ctx).Debug("invalid inputs", "inputs", report.Inputs())
		return fmt.Errorf("%s: %d of %d references are invalid: %w",
			path, len(report.Issues), report.Checked, reference.ErrInvalidReference)
	}
	return nil
}
