package main

import (
	"os"

	"shipda-tariff/cmd/cli/cmd"
	"shipda-tariff/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
