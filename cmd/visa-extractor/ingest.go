package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/example/visa-extractor/internal/extractor"
	"github.com/example/visa-extractor/internal/logger"
	"github.com/example/visa-extractor/internal/parser"
	"github.com/example/visa-extractor/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [path]",
	Short: "Parse PDF statements and store their transactions",
	Long: `Ingest parses one PDF statement file, or every *.pdf in a directory
(non-recursive), and inserts the extracted transactions into the
database. Rows already present are skipped, so re-running an import is
safe.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := "."
		if len(args) > 0 {
			input = args[0]
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runIngest(cfg.Database, cfg.Currencies, input)
	},
}

func runIngest(dbPath string, currencies []string, input string) error {
	log := logger.New()

	files, err := collectPDFs(input)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF files found in %s", input)
	}

	fmt.Printf("Database: %s\n", dbPath)
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Init(); err != nil {
		return err
	}

	p := parser.New(currencies, log)

	fmt.Printf("Processing %d PDF file(s)...\n", len(files))
	totalImported := 0
	totalSkipped := 0

	for _, file := range files {
		pages, err := extractor.ExtractPages(file)
		if err != nil {
			return fmt.Errorf("extract %s: %w", file, err)
		}

		list := p.Parse(pages, filepath.Base(file))
		imported, skipped, err := st.InsertBatch(list.Transactions)
		if err != nil {
			return fmt.Errorf("import %s: %w", file, err)
		}
		totalImported += imported
		totalSkipped += skipped

		status := fmt.Sprintf("  %s: %d imported", filepath.Base(file), imported)
		if skipped > 0 {
			status += fmt.Sprintf(", %d skipped", skipped)
		}
		status += fmt.Sprintf(" (%.2f CHF)", list.NetTotal())
		fmt.Println(status)
	}

	fmt.Printf("\nTotal: %d transactions imported, %d skipped\n", totalImported, totalSkipped)
	return printSummary(st)
}

// collectPDFs resolves the input path to the statement files to
// process: the file itself, or a sorted non-recursive *.pdf glob of the
// directory.
func collectPDFs(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("%s not found", input)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	files, err := filepath.Glob(filepath.Join(input, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", input, err)
	}
	sort.Strings(files)
	return files, nil
}

func printSummary(st *store.Store) error {
	sum, err := st.Summarize()
	if err != nil {
		return err
	}
	fmt.Println("\nDatabase summary:")
	fmt.Printf("  Total transactions: %d\n", sum.Count)
	fmt.Printf("  Total amount: %.2f CHF\n", sum.NetTotal)
	fmt.Printf("  Date range: %s to %s\n", sum.FirstEntry, sum.LastEntry)
	return nil
}
