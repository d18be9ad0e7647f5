package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/boolnet"
	"github.com/aretw0/boolnet/pkg/netio"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <truth-table-file>",
	Short: "Recover update functions from a truth table",
	Long: `Reads a truth table document and emits the canonical sum-of-minterms
update function for each variable. Combine with the simplify command to get
minimal expressions.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExtract(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("out", "o", "", "Output file (.yaml or .json); stdout when omitted")
}

func runExtract(cmd *cobra.Command, path string) error {
	out, _ := cmd.Flags().GetString("out")

	tt, err := netio.LoadTruthTable(path)
	if err != nil {
		return err
	}
	fs, err := boolnet.ExtractFunctions(tt)
	if err != nil {
		return err
	}

	if out == "" {
		data, err := netio.EncodeFunctions(fs)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
	return netio.SaveFunctions(out, fs)
}
