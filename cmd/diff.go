package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"traitscope/core/diff"
	"traitscope/core/extractor"
	"traitscope/core/lexer"
	"traitscope/core/logger"
	"traitscope/core/models"
	"traitscope/core/render"
	"traitscope/core/signature"
)

var diffMarker string
var diffFormat string
var diffExitCode bool

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <file1> <file2>",
	Short: "Compare service trait methods between two Rust source files",
	Long: `Extracts the method signature table of the marked service trait from
both files and reports which methods are added or missing, modified, or
removed. A file without a service block contributes an empty table, so
every method of the other file shows up as a difference.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(diffFormat)
		if err != nil {
			return err
		}

		table1, err := loadTable(args[0])
		if err != nil {
			return err
		}
		table2, err := loadTable(args[1])
		if err != nil {
			return err
		}

		report := diff.Compare(table1, table2, args[0], args[1])

		engine, err := render.NewEngine()
		if err != nil {
			return err
		}
		out, err := engine.Report(report, format)
		if err != nil {
			return err
		}

		fmt.Print(out)

		if diffExitCode && !report.Empty() {
			logger.Sync()
			os.Exit(2)
		}
		return nil
	},
}

// loadTable builds the signature table for one input file. A missing or
// unreadable file is fatal; a file without a service block degrades to
// an empty table.
func loadTable(path string) (*models.SignatureTable, error) {
	doc, err := models.LoadSource(path)
	if err != nil {
		return nil, err
	}

	block, err := extractor.New(diffMarker).Extract(doc)
	if err != nil {
		if errors.Is(err, extractor.ErrNoServiceBlock) {
			logger.Warn("%v, treating as an empty interface", err)
			return models.NewSignatureTable(), nil
		}
		return nil, err
	}

	return signature.Table(lexer.Normalize(block.Lines), path), nil
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().StringVar(&diffMarker, "marker", extractor.DefaultMarker, "Attribute token that marks the service trait")
	diffCmd.Flags().StringVarP(&diffFormat, "format", "f", "text", "Report format: text, json, or yaml")
	diffCmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "Exit with status 2 when the interfaces differ")
}
