package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/boolnet"
	"github.com/aretw0/boolnet/pkg/domain"
	"github.com/aretw0/boolnet/pkg/netio"
)

// truthTableCmd represents the truth-table command
var truthTableCmd = &cobra.Command{
	Use:   "truth-table <file>",
	Short: "Build the complete truth table of a network",
	Long: `Reads a transitions or functions document and produces the per-variable
truth table covering every state. The input kind is detected from the
document's top-level binding.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTruthTable(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(truthTableCmd)

	truthTableCmd.Flags().StringP("out", "o", "", "Output file (.yaml or .json); stdout when omitted")
}

func runTruthTable(cmd *cobra.Command, path string) error {
	out, _ := cmd.Flags().GetString("out")

	kind, err := netio.DetectKind(path)
	if err != nil {
		return err
	}

	var tt domain.TruthTable
	switch kind {
	case netio.KindTransitions:
		ts, err := netio.LoadTransitions(path)
		if err != nil {
			return err
		}
		tt, err = boolnet.TransitionsToTruthTable(ts)
		if err != nil {
			return err
		}
	case netio.KindFunctions:
		fs, err := netio.LoadFunctions(path)
		if err != nil {
			return err
		}
		tt, err = boolnet.FunctionsToTruthTable(fs)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%s already holds a truth table", path)
	}

	if out == "" {
		data, err := netio.EncodeTruthTable(tt)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
	return netio.SaveTruthTable(out, tt)
}
