// Package cli implements the passgen command line tool.
package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/crypto"
)

// Deps are the collaborators the commands use. Zero values select the production ones.
type Deps struct {
	Generator *crypto.Generator
	Clipboard *clipboard.Clipboard
}

func (d Deps) withDefaults() Deps {
	if d.Generator == nil {
		d.Generator = crypto.NewGenerator(nil)
	}
	if d.Clipboard == nil {
		d.Clipboard = clipboard.New(nil)
	}
	return d
}

// NewRootCmd builds the passgen command tree writing to out.
func NewRootCmd(deps Deps, out io.Writer) *cobra.Command {
	deps = deps.withDefaults()

	root := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate random passwords and rate their strength",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	root.AddCommand(
		newGenerateCmd(deps),
		newStrengthCmd(),
		newHashKeyCmd(),
	)
	return root
}
