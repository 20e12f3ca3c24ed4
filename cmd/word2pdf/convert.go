package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"word2pdf/internal/convert"
	"word2pdf/internal/logger"
)

var (
	convertInput   string
	convertOutput  string
	convertQuality string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one document to PDF without the GUI",
	Long: `Convert runs a single conversion through the same driver the GUI uses.
The output path defaults to the input path with a .pdf extension. Quality
tiers: Minimum (smallest file), Standard, Maximum (highest fidelity);
unrecognized values fall back to Standard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output := convertOutput
		if output == "" {
			ext := filepath.Ext(convertInput)
			output = strings.TrimSuffix(convertInput, ext) + ".pdf"
		}

		log := logger.NewConsoleLogger(logger.ParseLevel(loadedCfg.LogLevel))

		launcher, err := convert.NewOfficeLauncher(loadedCfg.EngineBinary, log)
		if err != nil {
			return err
		}
		driver := convert.NewDriver(launcher, log, loadedCfg.ConvertTimeout)

		outcome := driver.Convert(cmd.Context(), convert.Request{
			InputPath:  convertInput,
			OutputPath: output,
			Quality:    convert.ParseQuality(convertQuality),
		})
		if !outcome.Succeeded {
			return fmt.Errorf("%s: %s", outcome.Kind, outcome.ErrorDetail)
		}

		fmt.Printf("PDF written to %s\n", output)
		return nil
	},
	Args: func(cmd *cobra.Command, args []string) error {
		if convertInput == "" {
			return errors.New("--input is required")
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Word document to convert")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "destination PDF path (default: input with .pdf extension)")
	convertCmd.Flags().StringVarP(&convertQuality, "quality", "q", "Standard", "quality tier: Minimum, Standard, or Maximum")

	rootCmd.AddCommand(convertCmd)
}
