package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suykerbuyk/reba/internal/reba"
)

// Format selects how results are printed.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Formats lists the accepted output formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// ParseFormat accepts a format name, including the aliases "yml" and "md".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, yaml or markdown)", s)
	}
}

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(v)
	case FormatYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(v); err != nil {
			return err
		}
		return e.Close()
	default:
		return fmt.Errorf("format %s is not an encoding", f)
	}
}

// Assessment writes one assessment in format f.
func Assessment(w io.Writer, f Format, a reba.Assessment) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, Text(a))
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(a))
		return err
	default:
		return Encode(w, f, a)
	}
}

// Assessments writes several assessments. Text and markdown are separated by
// a blank line; json and yaml get one list. A single assessment is written
// as by Assessment.
func Assessments(w io.Writer, f Format, as []reba.Assessment) error {
	if len(as) == 1 {
		return Assessment(w, f, as[0])
	}
	switch f {
	case FormatText, FormatMarkdown:
		for i, a := range as {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := Assessment(w, f, a); err != nil {
				return err
			}
		}
		return nil
	default:
		return Encode(w, f, as)
	}
}
