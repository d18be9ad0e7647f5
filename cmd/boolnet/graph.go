package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/boolnet"
	"github.com/aretw0/boolnet/internal/presentation/graph"
	"github.com/aretw0/boolnet/pkg/netio"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <transitions-file>",
	Short: "Export the transition graph visualization",
	Long: `Reads a transitions document and outputs a Mermaid diagram (graph TD) of
the state space, highlighting parentless and attractor states.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ts, err := netio.LoadTransitions(args[0])
		if err != nil {
			fmt.Printf("Error loading transitions: %v\n", err)
			os.Exit(1)
		}

		// Generate and print Mermaid graph
		output := graph.GenerateMermaid(ts, boolnet.Analyze(ts))
		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
