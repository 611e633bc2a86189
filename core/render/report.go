package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"traitscope/core/models"
)

// Format selects the wire shape of a rendered diff report.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown report format %q (valid: text, json, yaml)", s)
}

// Report renders a diff in the requested format. The text form comes
// from the embedded template; json and yaml marshal the report model
// directly.
func (e *Engine) Report(report *models.DiffReport, format Format) (string, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return "", fmt.Errorf("failed to encode report as json: %w", err)
		}
		return buf.String(), nil
	case FormatYAML:
		out, err := yaml.Marshal(report)
		if err != nil {
			return "", fmt.Errorf("failed to encode report as yaml: %w", err)
		}
		return string(out), nil
	default:
		return e.render("report.txt.tmpl", report)
	}
}
