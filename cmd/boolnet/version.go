package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/boolnet"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of boolnet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("boolnet version %s\n", strings.TrimSpace(boolnet.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
