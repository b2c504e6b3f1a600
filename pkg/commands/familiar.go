package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/reference"
)

// NewFamiliarCommand returns a command with default values.
func NewFamiliarCommand() *FamiliarCommand {
	return &FamiliarCommand{}
}

// FamiliarCommand prints references in their familiar form.
type FamiliarCommand struct {
	// NameOnly drops the tag and digest.
	NameOnly bool
	// Match keeps only references matching the shell pattern.
	Match string
}

// ToCLI transforms to a *cli.Command.
func (c *FamiliarCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "familiar",
		Usage: "Print references in the short form shown by the docker cli",
		UsageText: `imgref familiar [OPTIONS] REFERENCE...

# Shorten a fully qualified reference
$ imgref familiar docker.io/library/ubuntu:22.04

# Print only references under a namespace
$ imgref familiar --match 'myorg/*' myorg/app redis
`,
		ArgsUsage: "REFERENCE...",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.MinimumNArgs(1)),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *FamiliarCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "name-only",
			Usage:       "print the familiar repository name without tag or digest",
			Destination: &c.NameOnly,
		},
		&cli.StringFlag{
			Name:        "match",
			Aliases:     []string{"m"},
			Usage:       "only print references whose familiar form matches the shell pattern",
			Destination: &c.Match,
		},
	}
}

// Run is the main function for the current command.
func (c *FamiliarCommand) Run(_ context.Context, cmd *cli.Command) error {
	var errs []error
	for _, arg := range cmd.Args().Slice() {
		named, err := reference.ParseNormalizedNamed(arg)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", arg, err))
			continue
		}
		if c.Match != "" {
			matched, err := reference.FamiliarMatch(c.Match, named)
			if err != nil {
				return fmt.Errorf("invalid pattern %q: %w", c.Match, err)
			}
			if !matched {
				continue
			}
		}
		if c.NameOnly {
			cmdhelper.Fprintf(cmd.Root().Writer, "%s", named.FamiliarName())
			continue
		}
		cmdhelper.Fprintf(cmd.Root().Writer, "%s", reference.FamiliarString(named))
	}
	return errors.Join(errs...)
}
