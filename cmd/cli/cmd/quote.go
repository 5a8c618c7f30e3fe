// Package cmd - quote command
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"shipda-tariff/adapters/storage"
	"shipda-tariff/core/engine"
	"shipda-tariff/core/numeric"
	"shipda-tariff/core/output"
	"shipda-tariff/internal/config"
	"shipda-tariff/internal/logging"
)

var (
	quotePort     string
	quoteTerminal string
	quoteBerths   []string
	quoteDWT      string
	quoteFX       string
	quoteFormat   string
	quoteSave     bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote auto-priced PDA cost lines for a vessel call",
	Long: `Compute the auto-priced cost lines (pilotage, towage, light dues)
for a vessel call from the configured tariff schedule.

Numeric flags accept Brazilian formatting: --dwt "15.000" reads as 15000.

Examples:
  shipda-tariff quote --berth 106 --dwt 15000
  shipda-tariff quote --berth 099 --berth 104 --dwt "55.000,5"
  shipda-tariff quote --berth 106 --dwt 15000 --fx 5,10 --format json --save`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&quotePort, "port", "", "port of call (defaults to the reference port)")
	quoteCmd.Flags().StringVar(&quoteTerminal, "terminal", "", "terminal (defaults to the reference terminal)")
	quoteCmd.Flags().StringArrayVarP(&quoteBerths, "berth", "b", nil, "berth identifier (repeatable)")
	quoteCmd.Flags().StringVar(&quoteDWT, "dwt", "", "vessel deadweight tonnage")
	quoteCmd.Flags().StringVar(&quoteFX, "fx", "", "BRL/USD exchange rate for USD hints")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().BoolVar(&quoteSave, "save", false, "persist the quote to the quote store")
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	port := quotePort
	if port == "" {
		port = cfg.Reference.Port
	}
	terminal := quoteTerminal
	if terminal == "" {
		terminal = cfg.Reference.Terminal
	}

	eng := engine.New(engineConfig(cfg))
	result := eng.CalculatePrices(engine.Input{
		Port:         port,
		Terminal:     terminal,
		Berths:       quoteBerths,
		DWT:          quoteDWT,
		ExchangeRate: quoteFX,
	})

	hints := make(map[engine.CostField]string)
	if cfg.Output.ShowHints {
		for _, field := range engine.TrackedFields {
			if hint := eng.HintText(field); hint != "" {
				hints[field] = hint
			}
		}
	}

	quote := &output.Quote{
		Port:        port,
		Terminal:    terminal,
		Berths:      quoteBerths,
		DWT:         numeric.FromValue(quoteDWT),
		Currency:    cfg.Output.Currency,
		Result:      result,
		Hints:       hints,
		GeneratedAt: time.Now().UTC(),
	}

	if quoteSave {
		store, err := storage.NewFileQuoteStore(cfg.Quotes.Directory)
		if err != nil {
			return err
		}
		if err := store.Save(ctx, quote); err != nil {
			return err
		}
		logging.Info("quote saved")
		fmt.Fprintf(os.Stderr, "Saved quote %s\n", quote.ID)
	}

	format := quoteFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	return output.NewFormatter(format).Render(os.Stdout, quote)
}

func engineConfig(cfg *config.Config) engine.Config {
	ec := engine.DefaultConfig()
	if cfg.Reference.Port != "" {
		ec.ReferencePort = cfg.Reference.Port
	}
	if cfg.Reference.Terminal != "" {
		ec.ReferenceTerminal = cfg.Reference.Terminal
	}
	return ec
}
