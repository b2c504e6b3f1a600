package options

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/lint"
	"github.com/wuxler/imgref/pkg/reference"
)

// ReferenceFlagCategory is the category of the reference parsing flags.
const ReferenceFlagCategory = "[Reference]"

// Parse modes.
const (
	ModeParse     = "parse"
	ModeNormalize = "normalize"
	ModeCanonical = "canonical"
	ModeAny       = "any"
)

// NewReference returns a *Reference with default values. allowAny adds the
// "--any" flag.
func NewReference(allowAny bool) *Reference {
	return &Reference{allowAny: allowAny}
}

// Reference selects how raw references are parsed.
type Reference struct {
	// Normalize parses with reference.ParseNormalizedNamed.
	Normalize bool
	// Canonical parses with reference.ParseNamed.
	Canonical bool
	// Any parses with reference.ParseAnyReference.
	Any bool

	allowAny bool
}

// Flags returns the []cli.Flag related to current options.
func (o *Reference) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        ModeNormalize,
			Aliases:     []string{"n"},
			Usage:       `normalize familiar names, "ubuntu" becomes "docker.io/library/ubuntu"`,
			Destination: &o.Normalize,
			Category:    ReferenceFlagCategory,
		},
		&cli.BoolFlag{
			Name:        ModeCanonical,
			Aliases:     []string{"c"},
			Usage:       "require references to be fully qualified",
			Destination: &o.Canonical,
			Category:    ReferenceFlagCategory,
		},
	}
	if o.allowAny {
		flags = append(flags, &cli.BoolFlag{
			Name:        ModeAny,
			Usage:       "also accept digests and 64-character hexadecimal identifiers",
			Destination: &o.Any,
			Category:    ReferenceFlagCategory,
		})
	}
	return flags
}

// Validate returns an error if more than one mode is selected.
func (o *Reference) Validate(ctx context.Context, cmd *cli.Command) error {
	return cmdhelper.ExclusiveFlags(ModeNormalize, ModeCanonical, ModeAny)(ctx, cmd)
}

// Mode returns the selected parse mode.
func (o *Reference) Mode() string {
	switch {
	case o.Any:
		return ModeAny
	case o.Canonical:
		return ModeCanonical
	case o.Normalize:
		return ModeNormalize
	}
	return ModeParse
}

// Resolver returns the resolver of the selected mode.
func (o *Reference) Resolver() lint.Resolver {
	switch o.Mode() {
	case ModeAny:
		return lint.ParseFunc(reference.ParseAnyReference)
	case ModeCanonical:
		return lint.ParseFunc(reference.ParseNamed)
	case ModeNormalize:
		return lint.ParseFunc(reference.ParseNormalizedNamed)
	}
	return lint.ParseFunc(reference.Parse)
}
