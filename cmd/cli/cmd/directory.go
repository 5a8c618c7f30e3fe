// Package cmd - directory commands
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shipda-tariff/adapters/storage"
	"shipda-tariff/core/directory"
	"shipda-tariff/internal/config"
	"shipda-tariff/internal/logging"
)

// directoryCmd groups the reference-directory commands
var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Manage the port/terminal/berth reference directory",
}

// directoryShowCmd prints the cached directory
var directoryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current port directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		store := directory.NewStore()

		dir, warnings := storage.LoadDirectory(ctx, directorySource(config.Get()))
		store.Populate(dir)
		for _, w := range warnings {
			fmt.Printf("warning: %s\n", w)
		}

		ports := store.Ports()
		if len(ports) == 0 {
			fmt.Println("Port directory is empty.")
			return nil
		}
		for _, port := range ports {
			fmt.Println(port)
			for _, terminal := range store.Terminals(port) {
				berths := store.Berths(port, terminal)
				fmt.Printf("  %s: %s\n", terminal, strings.Join(berths, ", "))
			}
		}
		return nil
	},
}

// directoryMergeCmd folds an uploaded document into the directory
var directoryMergeCmd = &cobra.Command{
	Use:   "merge [file]",
	Short: "Merge an updated reference document into the port directory",
	Long: `Merge an uploaded port directory document into the existing one.

Ports, terminals and berths deduplicate by normalized identity
(case, accents, whitespace, leading zeros on numeric berths); the
first-seen literal spelling is retained. Merging the same document
twice is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg := config.Get()

		existing, warnings := storage.LoadDirectory(ctx, directorySource(cfg))
		for _, w := range warnings {
			fmt.Printf("warning: %s\n", w)
		}

		incoming, err := (&storage.FileSource{Path: args[0]}).Fetch(ctx)
		if err != nil {
			return err
		}

		merged := directory.Merge(existing, incoming)
		if err := storage.SaveDirectory(cfg.Reference.DirectoryPath, merged); err != nil {
			return err
		}

		logging.Info("port directory merged",
			zap.String("incoming", args[0]),
			zap.Int("ports", len(merged)))
		fmt.Printf("Merged %d incoming port(s); directory now holds %d port(s).\n", len(incoming), len(merged))
		return nil
	},
}

func directorySource(cfg *config.Config) storage.DirectorySource {
	if cfg.Reference.DirectoryURL != "" {
		return &storage.HTTPSource{URL: cfg.Reference.DirectoryURL}
	}
	return &storage.FileSource{Path: cfg.Reference.DirectoryPath}
}

func init() {
	directoryCmd.AddCommand(directoryShowCmd)
	directoryCmd.AddCommand(directoryMergeCmd)
}
