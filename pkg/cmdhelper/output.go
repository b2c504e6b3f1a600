package cmdhelper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wuxler/imgref/pkg/errdefs"
)

// Output formats accepted by Encode.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Fprintf is a wrapper around fmt.Fprintf to suppress the error check.
func Fprintf(w io.Writer, format string, args ...any) {
	if format == "" || format[len(format)-1] != '\n' {
		format += "\n"
	}
	_, _ = fmt.Fprintf(w, format, args...)
}

// PrettifyJSON is a helper function to prettify data to json bytes with indents.
func PrettifyJSON(data any) ([]byte, error) {
	switch v := data.(type) {
	case []byte:
		return prettifyJSONBytes(v)
	case string:
		return prettifyJSONBytes([]byte(v))
	default:
		return json.MarshalIndent(data, "", "  ")
	}
}

func prettifyJSONBytes(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to prettify: %w", err)
	}
	return buf.Bytes(), nil
}

// ValidateFormat returns an error if format is not one of the output formats.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatText, FormatJSON, FormatYAML, "yml":
		return nil
	}
	return errdefs.Newf(errdefs.ErrUnsupported, "output format %q, oneof [%q, %q, %q]",
		format, FormatText, FormatJSON, FormatYAML)
}

// Encode writes data to w as indented json or yaml. For the text format
// the text function is called instead.
func Encode(w io.Writer, format string, data any, text func(io.Writer) error) error {
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		p, err := PrettifyJSON(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", p)
		return err
	case FormatText, "":
		return text(w)
	}
	return ValidateFormat(format)
}
