package main

import (
	"fmt"
	"os"

	"github.com/vaultpass/passgen/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(cli.Deps{}, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
