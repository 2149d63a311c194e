package main

import (
	"os"

	"github.com/arthur-debert/termsay/cmd/termsay"
	"github.com/arthur-debert/termsay/pkg/config"
	"github.com/arthur-debert/termsay/pkg/ui"
)

func main() {
	rootCmd := termsay.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Errors that stop the command are always printed, even with --quiet
		cfg, loadErr := config.Load(config.LoadOptions{})
		if loadErr != nil {
			cfg = config.Default()
		}
		_ = ui.New(cfg).Error("Error:", err)
		os.Exit(1)
	}
}
