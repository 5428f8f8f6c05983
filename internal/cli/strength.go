package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/crypto"
)

func newStrengthCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "strength <password>",
		Short: "Rate the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points := crypto.Points(args[0])
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Password Strength: %s (%d/5)\n", crypto.RatingFor(points), points)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Password Strength: %s\n", crypto.RatingFor(points))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the 0-5 score")
	return cmd
}
