package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/boolnet"
	"github.com/aretw0/boolnet/pkg/netio"
)

// simplifyCmd represents the simplify command
var simplifyCmd = &cobra.Command{
	Use:   "simplify <functions-file>",
	Short: "Minimize update functions",
	Long: `Reads a functions document and rewrites each expression as a minimal
sum-of-products via Quine-McCluskey minimization. The result is logically
equivalent to the input.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSimplify(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(simplifyCmd)

	simplifyCmd.Flags().StringP("out", "o", "", "Output file (.yaml or .json); stdout when omitted")
}

func runSimplify(cmd *cobra.Command, path string) error {
	out, _ := cmd.Flags().GetString("out")

	fs, err := netio.LoadFunctions(path)
	if err != nil {
		return err
	}
	simplified, err := boolnet.SimplifyFunctions(fs)
	if err != nil {
		return err
	}

	if out == "" {
		data, err := netio.EncodeFunctions(simplified)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
	return netio.SaveFunctions(out, simplified)
}
