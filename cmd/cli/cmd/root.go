// Package cmd provides the CLI commands for shipda-tariff.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shipda-tariff/internal/config"
	"shipda-tariff/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shipda-tariff",
	Short: "Quote port tariff cost lines for vessel calls",
	Long: `shipda-tariff quotes the auto-priced cost lines of a Proforma
Disbursement Account (pilotage, towage, light dues) from the configured
port tariff schedule, and manages the port/terminal/berth reference
directory.

Examples:
  shipda-tariff quote --port Itaqui --terminal Itaqui --berth 106 --dwt 15000
  shipda-tariff quote --dwt "15.000" --berth 099 --berth 104 --format json
  shipda-tariff directory merge updated-directory.json`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.shipda-tariff.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(directoryCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shipda-tariff version 0.1.0")
	},
}

// configCmd shows the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		fmt.Printf("Reference port:     %s\n", cfg.Reference.Port)
		fmt.Printf("Reference terminal: %s\n", cfg.Reference.Terminal)
		fmt.Printf("Directory path:     %s\n", cfg.Reference.DirectoryPath)
		if cfg.Reference.DirectoryURL != "" {
			fmt.Printf("Directory URL:      %s\n", cfg.Reference.DirectoryURL)
		}
		fmt.Printf("Quotes directory:   %s\n", cfg.Quotes.Directory)
		fmt.Printf("Default format:     %s\n", cfg.Output.DefaultFormat)
		fmt.Printf("Currency:           %s\n", cfg.Output.Currency)
		return nil
	},
}
