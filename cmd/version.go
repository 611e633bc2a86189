/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"traitscope/core/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of traitscope",
	Long:  `Displays the version of traitscope.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("traitscope %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
