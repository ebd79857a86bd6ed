// Package report renders query results as Markdown, JSON or YAML.
package report

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/propmap-cli/internal/utils"
)

// Format selects an output encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatMarkdown, FormatJSON, FormatYAML}

// ParseFormat accepts a format name; "" and "md" mean Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want markdown, json or yaml)", s)
}

// Document is anything that can be rendered.
type Document interface {
	Markdown() string
}

// Render writes doc to w in the given format.
func Render(w io.Writer, doc Document, f Format) error {
	var out []byte
	switch f {
	case FormatMarkdown, "":
		out = []byte(doc.Markdown())
	case FormatJSON:
		b, err := utils.PrettyJSON(doc)
		if err != nil {
			return err
		}
		out = append(b, '\n')
	case FormatYAML:
		b, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		out = b
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
