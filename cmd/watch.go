package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"traitscope/core/extractor"
	"traitscope/core/generator"
	"traitscope/core/logger"
	"traitscope/core/watcher"
)

var watchMarker string
var watchOutput string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Regenerate the canonical trait document on every change",
	Long: `Watches a Rust source file and regenerates its canonical service
trait document whenever the content changes. Without --output the
document lands next to the source as <name>.canonical.<ext>.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		tg, err := generator.NewTraitGenerator(path, watchOutput, watchMarker)
		if err != nil {
			return err
		}

		fw, err := watcher.NewFileWatcher(path)
		if err != nil {
			return err
		}

		fw.FileWatcher.AddOnStartFunc(func() error {
			logger.Info("Watching %s, writing %s", path, tg.OutputPath)
			return tg.Generate()
		})
		fw.FileWatcher.AddOnChangeFunc(tg.Generate)
		fw.FileWatcher.AddOnCloseFunc(func() error {
			logger.Info("Stopped watching %s", path)
			return nil
		})

		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			if err := fw.Close(); err != nil {
				logger.Error("Failed to close watcher: %v", err)
			}
			logger.Sync()
			os.Exit(0)
		}()

		return fw.Watch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchMarker, "marker", extractor.DefaultMarker, "Attribute token that marks the service trait")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Canonical document path (default <source>.canonical.<ext>)")
}
