package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/boolnet/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "boolnet",
	Short: "Boolnet generates and analyses asynchronous Boolean networks",
	Long: `Boolnet builds transition graphs with a prescribed structural shape,
samples bounded-dependency update functions, and converts between the three
network representations: transitions, functions, and truth tables.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log verbosity (debug, info, warn, error)")
}

// newLogger builds the command logger from the persistent log-level flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(level))
}
