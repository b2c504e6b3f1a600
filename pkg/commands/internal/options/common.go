package options

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/xlog"
)

const (
	// GlobalFlagCategory is the category of the global flags.
	GlobalFlagCategory = "[Global]"

	// EnvLogLevel overrides the --log-level flag.
	EnvLogLevel = "IMGREF_LOG_LEVEL"
	// EnvLogFile overrides the --log-file flag.
	EnvLogFile = "IMGREF_LOG_FILE"
)

// NewCommon returns a *Common with default values.
func NewCommon() *Common {
	return &Common{
		LogLevel: "info",
	}
}

// Common are options that are common to all commands.
type Common struct {
	// Debug is a shortcut of "--log-level=debug".
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`
	// LogLevel is the minimum level of log records.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	// LogFile is the path of the rotated JSON log file.
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *Common) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Usage:       `enable debug logs, same as "--log-level=debug"`,
			Destination: &o.Debug,
			Category:    GlobalFlagCategory,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       `log level, oneof ["debug", "info", "warn", "error"]`,
			Sources:     cli.EnvVars(EnvLogLevel),
			Value:       o.LogLevel,
			Destination: &o.LogLevel,
			Category:    GlobalFlagCategory,
			Validator: func(s string) error {
				_, err := xlog.ParseLevel(s)
				return err
			},
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "also write JSON logs to the file, rotated by size",
			Sources:     cli.EnvVars(EnvLogFile),
			Value:       o.LogFile,
			Destination: &o.LogFile,
			Category:    GlobalFlagCategory,
			TakesFile:   true,
		},
	}
}

// LoggerConfig returns the xlog config built from the options.
func (o *Common) LoggerConfig(cmd *cli.Command) (xlog.Config, error) {
	c := xlog.NewConfig()
	c.StdWriter = cmd.Root().ErrWriter
	c.Path = o.LogFile

	lvl, err := xlog.ParseLevel(o.LogLevel)
	if err != nil {
		return c, err
	}
	if o.Debug {
		lvl = xlog.LevelDebug
		c.AddSource = true
	}
	c.Level = lvl
	return c, nil
}

// ConfigureLogger installs the default logger. It is meant to be the root
// command Before hook.
func (o *Common) ConfigureLogger(ctx context.Context, cmd *cli.Command) error {
	c, err := o.LoggerConfig(cmd)
	if err != nil {
		return err
	}
	xlog.SetDefault(xlog.New(c))
	xlog.C(ctx).Debug("logger configured", "level", c.Level.String(), "file", c.Path)
	return nil
}
