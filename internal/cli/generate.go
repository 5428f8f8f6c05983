package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/crypto"
)

var errCountRange = errors.New("count must be between 1 and 100")

type generateFlags struct {
	length int
	count  int
	copy   bool
	sel    crypto.Selection
}

func newGenerateCmd(deps Deps) *cobra.Command {
	f := generateFlags{sel: crypto.DefaultSelection()}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Long: `Generate random passwords from the selected character classes.

Uppercase, lowercase and numbers are enabled by default; symbols are not.
Disable a class with --upper=false, --lower=false or --numbers=false.

Examples:
  passgen generate                       # 8 characters, letters and digits
  passgen generate -l 20 --symbols       # 20 characters, all classes
  passgen generate --count 5             # five passwords
  passgen generate -l 16 --copy          # copy the password to the clipboard`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, deps, f)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.length, "length", "l", crypto.DefaultLength, fmt.Sprintf("password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	fl.IntVarP(&f.count, "count", "n", 1, "number of passwords to generate")
	fl.BoolVarP(&f.copy, "copy", "c", false, "copy the last password to the clipboard")
	fl.BoolVar(&f.sel.Uppercase, "upper", f.sel.Uppercase, "include uppercase letters")
	fl.BoolVar(&f.sel.Lowercase, "lower", f.sel.Lowercase, "include lowercase letters")
	fl.BoolVar(&f.sel.Numbers, "numbers", f.sel.Numbers, "include numbers")
	fl.BoolVar(&f.sel.Symbols, "symbols", f.sel.Symbols, "include symbols")

	return cmd
}

func runGenerate(cmd *cobra.Command, deps Deps, f generateFlags) error {
	if f.sel.Empty() {
		return fmt.Errorf("please select at least one character type: %w", crypto.ErrSelectionEmpty)
	}
	if f.length < crypto.MinLength || f.length > crypto.MaxLength {
		return crypto.ErrInvalidLength
	}
	if f.count < 1 || f.count > 100 {
		return errCountRange
	}

	out := cmd.OutOrStdout()
	var last string
	for i := 0; i < f.count; i++ {
		password, err := deps.Generator.Generate(f.length, f.sel)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\tPassword Strength: %s\n", password, crypto.Score(password))
		last = password
	}

	if f.copy {
		if err := deps.Clipboard.Copy(last); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Could not copy to clipboard: %v\n", err)
			return nil
		}
		fmt.Fprintln(out, "Password copied to clipboard!")
	}
	return nil
}
