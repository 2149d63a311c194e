package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/termsay/cmd/termsay"
)

func main() {
	rootCmd := termsay.NewRootCmd()

	err := doc.GenMan(rootCmd, termsay.ManHeader(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
