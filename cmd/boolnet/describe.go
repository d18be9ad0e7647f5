package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/boolnet/internal/analysis"
	"github.com/aretw0/boolnet/internal/presentation/report"
	"github.com/aretw0/boolnet/internal/presentation/tui"
	"github.com/aretw0/boolnet/pkg/netio"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <transitions-file>",
	Short: "Summarize the structure of a network",
	Long: `Reads a transitions document and reports its structural profile: state and
transition counts, parentless states, strongly connected components, and the
attractor size distribution.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDescribe(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().Bool("plain", false, "Print raw markdown without terminal styling")
}

func runDescribe(cmd *cobra.Command, path string) error {
	plain, _ := cmd.Flags().GetBool("plain")

	ts, err := netio.LoadTransitions(path)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	md := report.Network(name, analysis.Summarize(ts))

	if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return nil
	}

	render := tui.NewRenderer()
	styled, err := render(md)
	if err != nil {
		fmt.Print(md)
		return nil
	}
	fmt.Print(styled)
	return nil
}
