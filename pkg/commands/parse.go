package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/commands/internal/options"
	"github.com/wuxler/imgref/pkg/reference"
	"github.com/wuxler/imgref/pkg/xlog"
)

// NewParseCommand returns a command with default values.
func NewParseCommand() *ParseCommand {
	return &ParseCommand{
		Reference: options.NewReference(true),
		Format:    cmdhelper.FormatText,
	}
}

// ParseCommand parses references and prints their components.
type ParseCommand struct {
	Reference *options.Reference
	Format    string
}

// ParseResult is the decomposition of one parsed reference.
type ParseResult struct {
	Input     string          `json:"input" yaml:"input"`
	Reference reference.Field `json:"reference" yaml:"reference"`
	Kind      string          `json:"kind" yaml:"kind"`
	Name      string          `json:"name,omitempty" yaml:"name,omitempty"`
	Domain    string          `json:"domain,omitempty" yaml:"domain,omitempty"`
	Path      string          `json:"path,omitempty" yaml:"path,omitempty"`
	Tag       string          `json:"tag,omitempty" yaml:"tag,omitempty"`
	Digest    string          `json:"digest,omitempty" yaml:"digest,omitempty"`
	Familiar  string          `json:"familiar,omitempty" yaml:"familiar,omitempty"`
}

// NewParseResult decomposes ref parsed from input.
func NewParseResult(input string, ref reference.Reference) ParseResult {
	result := ParseResult{
		Input:     input,
		Reference: reference.AsField(ref),
		Kind:      ref.Kind().String(),
		Name:      ref.Name(),
		Tag:       ref.Tag(),
		Digest:    ref.Digest().String(),
		Familiar:  reference.FamiliarString(ref),
	}
	if named, ok := ref.(reference.Named); ok {
		result.Domain = named.Domain()
		result.Path = named.Path()
	}
	return result
}

// ToCLI transforms to a *cli.Command.
func (c *ParseCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Parse references and print their components",
		UsageText: `imgref parse [OPTIONS] REFERENCE...

# Parse a reference as written
$ imgref parse localhost:5000/app:v1

# Normalize a familiar name and print JSON
$ imgref parse --normalize --format json ubuntu
`,
		ArgsUsage: "REFERENCE...",
		Flags:     c.Flags(),
		Before: cli.BeforeFunc(cmdhelper.ActionFuncChain(
			cmdhelper.MinimumNArgs(1),
			c.Reference.Validate,
		)),
		Action: c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *ParseCommand) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       `output format, oneof ["text", "json", "yaml"]`,
			Value:       c.Format,
			Destination: &c.Format,
			Validator:   cmdhelper.ValidateFormat,
		},
	}
	return append(flags, c.Reference.Flags()...)
}

// Run is the main function for the current command.
func (c *ParseCommand) Run(ctx context.Context, cmd *cli.Command) error {
	resolver := c.Reference.Resolver()
	logger := xlog.C(ctx).With("mode", c.Reference.Mode())

	var (
		results = make([]ParseResult, 0, cmd.Args().Len())
		errs    []error
	)
	for _, arg := range cmd.Args().Slice() {
		ref, err := resolver.Resolve(ctx, arg)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", arg, err))
			continue
		}
		logger.Debug("parsed reference", "input", arg, "kind", ref.Kind().String())
		results = append(results, NewParseResult(arg, ref))
	}

	if err := cmdhelper.Encode(cmd.Root().Writer, c.Format, results, func(w io.Writer) error {
		for _, r := range results {
			writeParseResult(w, r)
		}
		return nil
	}); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func writeParseResult(w io.Writer, r ParseResult) {
	cmdhelper.Fprintf(w, "%s", r.Reference.Reference())
	cmdhelper.Fprintf(w, "  Kind     : %s", r.Kind)
	fields := []struct{ label, value string }{
		{"Domain   ", r.Domain},
		{"Path     ", r.Path},
		{"Tag      ", r.Tag},
		{"Digest   ", r.Digest},
		{"Familiar ", r.Familiar},
	}
	for _, f := range fields {
		if f.value != "" {
			cmdhelper.Fprintf(w, "  %s: %s", f.label, f.value)
		}
	}
}
