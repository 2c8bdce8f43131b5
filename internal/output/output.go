package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatYAML and FormatJSON are the structured modes: the value is
	// serialized verbatim for machine consumption.
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	// FormatText is the rendered mode: commands that own a renderer print
	// deterministic human-readable text instead of a serialized value.
	FormatText Format = "text"
)

// OutputFormat is the current output format, set by the root command's
// --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Structured reports whether the current format serializes values rather
// than rendering text.
func Structured() bool {
	return OutputFormat != FormatText
}

// Print serializes v to stdout in the current structured format. Commands
// in text mode render their own output and should not reach here; a value
// printed under FormatText falls back to YAML so nothing is ever dropped.
func Print(v interface{}) error {
	return Fprint(os.Stdout, v)
}

// Fprint serializes v to w in the current structured format.
func Fprint(w io.Writer, v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return encodeJSON(w, v, PrettyOutput)
	case FormatYAML, FormatText:
		return encodeYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintText writes pre-rendered text to stdout, ensuring a trailing newline.
func PrintText(s string) {
	fmt.Print(s)
	if len(s) > 0 && s[len(s)-1] != '\n' {
		fmt.Println()
	}
}

func encodeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
