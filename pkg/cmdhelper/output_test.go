package cmdhelper_test

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/errdefs"
)

type sample struct {
	Name string `json:"name" yaml:"name"`
	Tag  string `json:"tag,omitempty" yaml:"tag,omitempty"`
}

func TestEncode(t *testing.T) {
	data := []sample{{Name: "docker.io/library/redis", Tag: "7"}}
	text := func(w io.Writer) error {
		_, err := fmt.Fprintln(w, "redis:7")
		return err
	}

	testcases := []struct {
		format string
		want   string
	}{
		{format: "text", want: "redis:7\n"},
		{format: "", want: "redis:7\n"},
		{format: "json", want: "[\n  {\n    \"name\": \"docker.io/library/redis\",\n    \"tag\": \"7\"\n  }\n]\n"},
		{format: "YAML", want: "- name: docker.io/library/redis\n  tag: \"7\"\n"},
	}

	for _, tc := range testcases {
		t.Run(tc.format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, cmdhelper.Encode(buf, tc.format, data, text))
			assert.Equal(t, tc.want, buf.String())
		})
	}

	err := cmdhelper.Encode(&bytes.Buffer{}, "xml", data, text)
	assert.ErrorIs(t, err, errdefs.ErrUnsupported)
}

func TestPrettifyJSON(t *testing.T) {
	got, err := cmdhelper.PrettifyJSON(`{"name":"ubuntu"}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"ubuntu\"\n}", string(got))

	_, err = cmdhelper.PrettifyJSON([]byte(`{`))
	assert.Error(t, err)
}

func TestFprintf(t *testing.T) {
	buf := &bytes.Buffer{}
	cmdhelper.Fprintf(buf, "%s", "a")
	cmdhelper.Fprintf(buf, "b\n")
	assert.Equal(t, "a\nb\n", buf.String())
}
