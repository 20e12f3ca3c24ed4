// Package main is the entry point for the word2pdf desktop converter.
// Running without a subcommand opens the GUI shell; the convert subcommand
// drives one headless conversion.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"word2pdf/internal/app"
	"word2pdf/internal/config"
	"word2pdf/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile   string
	loadedCfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "word2pdf",
	Short: "Convert Word documents to PDF using an installed office suite",
	Long: `word2pdf converts Word documents (DOC, DOCX, ODT) to PDF by driving an
installed office suite in headless mode. There is no internal conversion
engine; document parsing, rendering, and PDF encoding are delegated entirely
to the external application.

Run without arguments to open the graphical shell, or use the convert
subcommand for a single headless conversion.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		loadedCfg = cfg
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewDiagnosticLogger(loadedCfg.DiagnosticLog, logger.ParseLevel(loadedCfg.LogLevel))

		application, err := app.NewApplication(loadedCfg, log)
		if err != nil {
			return err
		}
		return application.Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./word2pdf.yaml or ~/.config/word2pdf/word2pdf.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
