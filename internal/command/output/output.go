package output

import (
	"encoding/json"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"
)

const (
	// FormatText renders human readable text.
	FormatText = "text"
	// FormatJSON renders indented JSON.
	FormatJSON = "json"
	// FormatYAML renders YAML.
	FormatYAML = "yaml"
)

// Render writes v to w in the requested format. Text rendering is the
// caller's, supplied as a function; the structured formats marshal v.
func Render(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	switch format {
	case FormatText, "":
		return text(w)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding json output: %w", err)
		}

		return nil
	case FormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding yaml output: %w", err)
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing yaml output: %w", err)
		}

		return nil
	default:
		return newUnknownFormat(format)
	}
}

type unknownFormatError struct {
	format string
}

// Error returns the error message.
func (e unknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q", e.format)
}

func newUnknownFormat(format string) error {
	return unknownFormatError{format: format}
}
