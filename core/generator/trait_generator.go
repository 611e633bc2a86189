package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"traitscope/core/cache"
	"traitscope/core/extractor"
	"traitscope/core/lexer"
	"traitscope/core/logger"
	"traitscope/core/render"
)

// TraitGenerator drives the extraction pipeline for one source file and
// keeps a canonical trait document on disk in step with it.
type TraitGenerator struct {
	SourcePath string
	OutputPath string
	engine     *render.Engine
	extractor  *extractor.Extractor
}

func NewTraitGenerator(sourcePath, outputPath, marker string) (*TraitGenerator, error) {
	engine, err := render.NewEngine()
	if err != nil {
		return nil, err
	}

	if outputPath == "" {
		outputPath = DefaultOutputPath(sourcePath)
	}

	return &TraitGenerator{
		SourcePath: sourcePath,
		OutputPath: outputPath,
		engine:     engine,
		extractor:  extractor.New(marker),
	}, nil
}

// DefaultOutputPath derives the canonical document path for a source
// file: rpc_api.rs becomes rpc_api.canonical.rs next to it.
func DefaultOutputPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	return strings.TrimSuffix(sourcePath, ext) + ".canonical" + ext
}

// Generate regenerates the canonical document when the source content
// changed since the last run or the output is missing.
func (tg *TraitGenerator) Generate() error {
	if !tg.needsRegeneration() {
		logger.Debug("Skipping unchanged source: %s", tg.SourcePath)
		return nil
	}
	return tg.generate()
}

func (tg *TraitGenerator) generate() error {
	block, err := tg.extractor.ExtractFile(tg.SourcePath)
	if err != nil {
		return err
	}

	normalized := lexer.Normalize(block.Lines)
	out, err := tg.engine.Canonical(block, normalized)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(tg.OutputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(tg.OutputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write canonical document %s: %w", tg.OutputPath, err)
	}

	logger.Info("Generated %s from %s", tg.OutputPath, tg.SourcePath)
	return nil
}

func (tg *TraitGenerator) needsRegeneration() bool {
	changed, err := cache.GetCache().HasContentChanged(tg.SourcePath)
	if err != nil {
		logger.Debug("Cache check failed for %s: %v", tg.SourcePath, err)
		return true
	}
	if changed {
		return true
	}

	if _, err := os.Stat(tg.OutputPath); os.IsNotExist(err) {
		return true
	}

	return false
}
