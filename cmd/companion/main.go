package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/english-companion/internal/logger"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "companion",
		Short:         "Operate the English companion API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newMigrateCommand(),
		newSeedCommand(),
		newHealthCommand(),
		newLessonsCommand(),
		newProgressCommand(),
	)
	return rootCommand
}

// newLogger logs to stderr so command output stays parseable.
func newLogger() (*logger.Logger, error) {
	level := "info"
	if debugMode {
		level = "debug"
	}
	return logger.New("development", level)
}
