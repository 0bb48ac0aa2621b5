package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/visa-extractor/internal/store"
	"github.com/example/visa-extractor/internal/writer"
)

var (
	queryYear  string
	queryMonth string
	queryCSV   bool
	queryJSON  bool
)

var queryCmd = &cobra.Command{
	Use:   "query [search]",
	Short: "Report stored transactions",
	Long: `Query reports transactions from the database. The optional search term
matches the merchant as a case-insensitive substring; --year and
--month narrow by purchase date. Filters combine with AND, and no
filters at all returns everything, newest first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		search := ""
		if len(args) > 0 {
			search = args[0]
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runQuery(cfg.Database, store.Filter{
			Search: search,
			Year:   queryYear,
			Month:  queryMonth,
		})
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryYear, "year", "", "filter by year (e.g. 2024)")
	queryCmd.Flags().StringVar(&queryMonth, "month", "", "filter by month (e.g. 2024-01)")
	queryCmd.Flags().BoolVar(&queryCSV, "csv", false, "output as CSV")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output as JSON")
}

func runQuery(dbPath string, filter store.Filter) error {
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("database not found: %s", dbPath)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	rows, err := st.Search(filter)
	if err != nil {
		return err
	}

	switch {
	case queryCSV:
		return writer.CSV(os.Stdout, rows)
	case queryJSON:
		return writer.JSON(os.Stdout, rows)
	default:
		fmt.Println(writer.Table(rows))
		return nil
	}
}
