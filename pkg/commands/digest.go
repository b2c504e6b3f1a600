package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/opencontainers/go-digest"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/reference"
)

// NewDigestCommand returns a command with default values.
func NewDigestCommand() *DigestCommand {
	return &DigestCommand{}
}

// DigestCommand validates content digests.
type DigestCommand struct {
	// ListAlgorithms prints the supported algorithms and exits.
	ListAlgorithms bool
}

// ToCLI transforms to a *cli.Command.
func (c *DigestCommand) ToCLI() *cli.Command {
	algorithms := lo.Map(reference.SupportedAlgorithms(), func(alg digest.Algorithm, _ int) string {
		return alg.String()
	})
	return &cli.Command{
		Name:  "digest",
		Usage: "Validate digests, one of " + strings.Join(algorithms, ", "),
		UsageText: `imgref digest DIGEST...

# Validate a sha256 digest
$ imgref digest sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855
`,
		ArgsUsage: "DIGEST...",
		Flags:     c.Flags(),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *DigestCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "list-algorithms",
			Aliases:     []string{"l"},
			Usage:       "list the supported digest algorithms",
			Destination: &c.ListAlgorithms,
		},
	}
}

// Run is the main function for the current command.
func (c *DigestCommand) Run(ctx context.Context, cmd *cli.Command) error {
	if c.ListAlgorithms {
		for _, alg := range reference.SupportedAlgorithms() {
			cmdhelper.Fprintf(cmd.Root().Writer, "%s\t%d", alg, alg.Size()*2)
		}
		return nil
	}
	if err := cmdhelper.MinimumNArgs(1)(ctx, cmd); err != nil {
		return err
	}

	var errs []error
	for _, arg := range cmd.Args().Slice() {
		if err := reference.ValidateDigest(arg); err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", arg, err))
			continue
		}
		dgst := digest.Digest(arg)
		cmdhelper.Fprintf(cmd.Root().Writer, "%s\t%s", dgst.Algorithm(), dgst.Encoded())
	}
	return errors.Join(errs...)
}
