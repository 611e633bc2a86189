package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"traitscope/core/extractor"
	"traitscope/core/generator"
	"traitscope/core/lexer"
	"traitscope/core/logger"
	"traitscope/core/render"
)

var extractMarker string
var extractOutput string

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Canonicalize the service trait from a Rust source file",
	Long: `Locates the marked service trait in the given source file, strips
non-documentation comments, collapses doc comment runs, and prints the
reconstructed trait as a generated document on stdout. With --output the
document is written to a file instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		logger.Debug("Extract called for %s", path)

		if extractOutput != "" {
			tg, err := generator.NewTraitGenerator(path, extractOutput, extractMarker)
			if err != nil {
				return err
			}
			return tg.Generate()
		}

		block, err := extractor.New(extractMarker).ExtractFile(path)
		if err != nil {
			return err
		}

		engine, err := render.NewEngine()
		if err != nil {
			return err
		}

		doc, err := engine.Canonical(block, lexer.Normalize(block.Lines))
		if err != nil {
			return err
		}

		fmt.Print(doc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractMarker, "marker", extractor.DefaultMarker, "Attribute token that marks the service trait")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Write the canonical document to this file instead of stdout")
}
