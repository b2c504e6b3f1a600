// Package commands implements the imgref command line.
package commands

import (
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/appinfo"
	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/commands/internal/options"
)

// AppName is the name of the root command.
const AppName = "imgref"

// NewRootCommand returns the root command with default values.
func NewRootCommand() *RootCommand {
	return &RootCommand{
		Common: options.NewCommon(),
		Fs:     afero.NewOsFs(),
	}
}

// RootCommand is the imgref root command.
type RootCommand struct {
	Common *options.Common
	// Fs is the filesystem lint reads files from.
	Fs afero.Fs
}

// ToCLI transforms to a *cli.Command.
func (c *RootCommand) ToCLI() *cli.Command {
	lint := NewLintCommand()
	lint.Fs = c.Fs

	return &cli.Command{
		Name:                  AppName,
		Usage:                 "Parse, normalize and validate container image references",
		Version:               appinfo.Get(AppName).Short(),
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		HideHelpCommand:       true,
		Flags:                 c.Common.Flags(),
		Before:                cli.BeforeFunc(cmdhelper.ActionFunc(c.Common.ConfigureLogger)),
		Commands: []*cli.Command{
			NewParseCommand().ToCLI(),
			NewFamiliarCommand().ToCLI(),
			NewDigestCommand().ToCLI(),
			lint.ToCLI(),
			NewVersionCommand().ToCLI(),
		},
	}
}
