/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"traitscope/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "traitscope",
	Short: "Extract and compare RPC trait declarations from Rust sources.",
	Long: `Traitscope locates the tarpc service trait in a Rust source file and
turns it into something reviewable: a canonicalized single-trait
document, or a structural diff of the method signatures between two
versions of the interface.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		if logfile != "" {
			if err := logger.AddLogFile(logfile); err != nil {
				logger.Error("Failed to open log file %s: %v", logfile, err)
			}
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

var logfile string
var verbose bool

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Sync()
		fmt.Fprintf(os.Stdout, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
