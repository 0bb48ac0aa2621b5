package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/visa-extractor/internal/config"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "visa-extractor",
	Short: "Extract PostFinance Visa statement transactions into SQLite",
	Long: `Visa Extractor turns PostFinance Visa PDF statements into structured,
searchable transaction records. The ingest command parses statements and
stores them de-duplicated in a local SQLite database; the query command
reports over the stored transactions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	cfgFile string
	dbFlag  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().StringVarP(&dbFlag, "database", "d", "", "SQLite database file (default $VISA_DB_PATH or visa.db)")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(queryCmd)
}

// loadConfig resolves the effective configuration: file/env/defaults
// from the config package, with the --database flag on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dbFlag != "" {
		cfg.Database = dbFlag
	}
	return cfg, nil
}
