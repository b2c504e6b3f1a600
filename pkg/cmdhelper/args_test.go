package cmdhelper_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
)

func runWithBefore(t *testing.T, before cmdhelper.ActionFunc, args ...string) error {
	t.Helper()
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "normalize"},
			&cli.BoolFlag{Name: "canonical"},
		},
		Before: cli.BeforeFunc(before),
		Action: func(context.Context, *cli.Command) error { return nil },
	}
	return cmd.Run(context.Background(), append([]string{"test"}, args...))
}

func TestArgs(t *testing.T) {
	require.NoError(t, runWithBefore(t, cmdhelper.ExactArgs(1), "ubuntu"))
	assert.EqualError(t, runWithBefore(t, cmdhelper.ExactArgs(1)), "accepts 1 arg(s), received 0")

	require.NoError(t, runWithBefore(t, cmdhelper.MinimumNArgs(1), "ubuntu", "redis"))
	assert.EqualError(t, runWithBefore(t, cmdhelper.MinimumNArgs(2), "ubuntu"), "accepts at least 2 arg(s), received 1")

	require.NoError(t, runWithBefore(t, cmdhelper.NoArgs()))
	assert.Error(t, runWithBefore(t, cmdhelper.NoArgs(), "ubuntu"))
}

func TestExclusiveFlags(t *testing.T) {
	check := cmdhelper.ActionFuncChain(
		cmdhelper.MinimumNArgs(1),
		cmdhelper.ExclusiveFlags("normalize", "canonical"),
	)
	require.NoError(t, runWithBefore(t, check, "--normalize", "ubuntu"))
	assert.EqualError(t, runWithBefore(t, check, "--normalize", "--canonical", "ubuntu"),
		"flags [--normalize --canonical] are mutually exclusive")
	assert.Error(t, runWithBefore(t, check, "--normalize"))
}
