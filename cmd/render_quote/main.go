package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/terraenergy/prospect-quote-api/internal/services"
	"github.com/terraenergy/prospect-quote-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "render_quote",
	Short: "Render a prospect quote PDF from a JSON payload",
	Long: `Runs the quote pipeline locally without the database or S3.

The payload is normalized and validated exactly as the API does. The CFE
tariff is taken from --tariff instead of the tariff catalog; without it the
tariff_type in the payload is printed as given.

Examples:
  render_quote --input quote.json --output quote.pdf
  render_quote --input quote.json --output quote.pdf --tariff DAC --assets ./assets`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		env := "test"
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			env = "development"
		}
		logger.Setup(env)
	},
	RunE: runRender,
}

func init() {
	f := rootCmd.Flags()
	f.StringP("input", "i", "", "quote payload JSON file (- for stdin)")
	f.StringP("output", "o", "", "destination PDF file")
	f.String("tariff", "", "CFE tariff code to print (e.g. DAC, 1C)")
	f.String("assets", "./assets", "directory with logo.png, panels.png and dots.png")
	f.BoolP("verbose", "v", false, "log pipeline details")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	tariff, _ := cmd.Flags().GetString("tariff")
	assets, _ := cmd.Flags().GetString("assets")

	var in io.Reader = cmd.InOrStdin()
	if inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return eris.Wrapf(err, "open input %s", inputPath)
		}
		defer f.Close()
		in = f
	}

	renderer, err := services.NewQuoteRenderer(assets)
	if err != nil {
		return eris.Wrap(err, "load artwork")
	}

	pdf, err := renderQuote(cmd.Context(), in, renderer, tariffLookup(tariff))
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, pdf, 0644); err != nil {
		return eris.Wrapf(err, "write %s", outputPath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cotización guardada en %s (%d bytes)\n", outputPath, len(pdf))
	return nil
}

// tariffLookup answers with the flag value, or leaves the payload's tariff untouched.
func tariffLookup(code string) services.TariffLookup {
	if code != "" {
		return services.StaticTariff(code)
	}
	return services.TariffLookupFunc(func(ctx context.Context, id int) (*services.TariffDescriptor, error) {
		return &services.TariffDescriptor{}, nil
	})
}

func renderQuote(ctx context.Context, in io.Reader, renderer services.DocumentRenderer, lookup services.TariffLookup) ([]byte, error) {
	var raw any
	dec := json.NewDecoder(in)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, eris.Wrap(err, "decode payload")
	}

	quote := services.Normalize(raw)
	if err := services.ValidateCompleteness(quote); err != nil {
		return nil, err
	}

	quote, err := services.Enrich(ctx, quote, lookup)
	if err != nil {
		return nil, err
	}
	logger.Debug("Rendering quote", "terralink_id", quote.TerralinkID, "tariff", quote.CfeInfo.TariffType)

	pdf, err := renderer.Render(quote)
	if err != nil {
		return nil, eris.Wrap(err, "render")
	}
	return pdf, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
