package extractor

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"traitscope/core/lexer"
	"traitscope/core/logger"
	"traitscope/core/models"
)

// DefaultMarker is the attribute token that identifies the service trait.
const DefaultMarker = "#[tarpc::service]"

// ErrNoServiceBlock is returned when a source file holds no marked trait
// block: the marker never appears, no trait declaration follows it, or
// the trait braces never balance.
var ErrNoServiceBlock = errors.New("no service block found")

var traitPattern = regexp.MustCompile(`\btrait\b`)

type state int

const (
	seekingMarker state = iota
	seekingTrait
	capturing
	done
)

type Extractor struct {
	Marker string
}

func New(marker string) *Extractor {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Extractor{Marker: marker}
}

// Extract captures the first marked trait block in the document, from the
// trait declaration line through the line whose closing brace returns the
// depth to zero. Scanning stops at that point; later blocks are never
// considered.
func (e *Extractor) Extract(doc *models.SourceDocument) (*models.TraitBlock, error) {
	scanner := lexer.NewScanner()
	st := seekingMarker
	depth := 0
	sawOpen := false
	var captured []string

	for i, raw := range doc.Lines {
		line := scanner.Scan(raw)

		switch st {
		case seekingMarker:
			if strings.Contains(line.Code, e.Marker) {
				logger.Debug("Marker %s found at %s:%d", e.Marker, doc.Path, i+1)
				st = seekingTrait
			}
		case seekingTrait:
			if traitPattern.MatchString(line.Code) {
				logger.Debug("Trait declaration found at %s:%d", doc.Path, i+1)
				st = capturing
			}
		}

		if st != capturing {
			continue
		}

		captured = append(captured, raw)
		if line.Opens > 0 {
			sawOpen = true
		}
		depth += line.Opens - line.Closes
		if sawOpen && depth == 0 {
			st = done
			break
		}
	}

	switch st {
	case done:
		logger.Debug("Captured %d line trait block from %s", len(captured), doc.Path)
		return &models.TraitBlock{Source: doc.Path, Marker: e.Marker, Lines: captured}, nil
	case seekingMarker:
		return nil, fmt.Errorf("%w in %s: marker %s never seen", ErrNoServiceBlock, doc.Path, e.Marker)
	case seekingTrait:
		return nil, fmt.Errorf("%w in %s: no trait declaration after marker", ErrNoServiceBlock, doc.Path)
	default:
		return nil, fmt.Errorf("%w in %s: trait braces never balance", ErrNoServiceBlock, doc.Path)
	}
}

// ExtractFile reads the file at path and extracts its trait block.
func (e *Extractor) ExtractFile(path string) (*models.TraitBlock, error) {
	doc, err := models.LoadSource(path)
	if err != nil {
		return nil, err
	}
	return e.Extract(doc)
}
