package render

import (
	"strings"

	"traitscope/core/logger"
	"traitscope/core/models"
)

type canonicalData struct {
	Source string
	Marker string
	Header []string
	Blocks []string
	Footer string
}

// Canonical reassembles a normalized trait block into the generated
// document: a provenance header, the marker attribute line, the trait
// declaration, the members separated by single blank lines, and the
// closing brace.
func (e *Engine) Canonical(block *models.TraitBlock, normalized []string) (string, error) {
	data := canonicalData{
		Source: block.Source,
		Marker: block.Marker,
	}

	headerEnd := 0
	for i, line := range normalized {
		headerEnd = i
		if strings.Contains(line, "{") {
			break
		}
	}
	data.Header = normalized[:headerEnd+1]

	last := len(normalized) - 1
	if last > headerEnd {
		data.Footer = normalized[last]
		data.Blocks = groupMembers(normalized[headerEnd+1 : last])
	}

	logger.Debug("Canonical document for %s has %d member groups", block.Source, len(data.Blocks))
	return e.render("canonical.rs.tmpl", data)
}

// groupMembers splits body lines into member groups. Blank lines are
// dropped; a group closes at a line ending in a semicolon or a closing
// brace, so a collapsed doc line stays attached to the declaration it
// documents and a wrapped parameter list stays together.
func groupMembers(body []string) []string {
	var blocks []string
	var group []string

	flush := func() {
		if len(group) > 0 {
			blocks = append(blocks, strings.Join(group, "\n"))
			group = nil
		}
	}

	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		group = append(group, line)
		if strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "}") {
			flush()
		}
	}
	flush()

	return blocks
}
