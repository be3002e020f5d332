package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/shell"
)

func newEvaluateCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "evaluate PASSWORD",
		Short: "Rate the strength of a password.",
		Long: "Rates a password as Weak, Moderate, Strong or Very Strong from its length\n" +
			"and how many of the four character classes it uses.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := service.NewGeneratorService(0).Evaluate(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			label := shell.StrengthColor(resp.Strength).Sprint(resp.Strength)
			if verbose {
				fmt.Fprintf(out, "%s (length %d, %d character classes)\n", label, resp.Length, resp.Diversity)
				return nil
			}
			fmt.Fprintln(out, label)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show length and class count")
	return cmd
}
