// Package parser turns the extracted page text of a PostFinance Visa
// statement into structured transactions. A transaction spans one or
// two physical lines: the dated amount line, optionally followed by a
// category line. Classification is a single pass with one line of
// lookahead; the lookahead never crosses a page boundary.
package parser

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/visa-extractor/pkg/transaction"
)

// Parser extracts transactions from statement pages.
type Parser struct {
	rules *Rules
	log   zerolog.Logger
}

// New creates a Parser. currencies configures the foreign-currency
// noise rule; nil selects DefaultCurrencies.
func New(currencies []string, log zerolog.Logger) *Parser {
	return &Parser{
		rules: NewRules(currencies),
		log:   log,
	}
}

// Parse scans all pages of one statement in document order and returns
// the transactions found. The current cardholder persists across pages
// but resets between statements; transactions seen before any section
// header carry an empty cardholder.
func (p *Parser) Parse(pages []string, sourceFile string) *transaction.List {
	list := &transaction.List{SourceFile: sourceFile}
	cardHolder := ""

	for pageNum, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		lines := strings.Split(page, "\n")
		p.log.Debug().Int("page", pageNum+1).Int("lines", len(lines)).Str("file", sourceFile).Msg("scanning page")

		i := 0
		for i < len(lines) {
			line := strings.TrimSpace(lines[i])

			if holder, ok := p.rules.MatchCardHolder(line); ok {
				cardHolder = holder
				i++
				continue
			}

			if rule, ok := p.rules.MatchNoise(line); ok {
				p.log.Debug().Str("rule", rule).Str("line", line).Msg("skipping noise line")
				i++
				continue
			}

			m, ok := p.rules.MatchTransaction(line)
			if !ok {
				i++
				continue
			}

			amount, isCredit, err := ParseAmount(m.RawAmount)
			if err != nil {
				// The line pattern guarantees digit structure, so this
				// is close to unreachable. Drop the one line and keep
				// the statement going.
				p.log.Warn().Err(err).Str("line", line).Msg("unparseable amount, line dropped")
				i++
				continue
			}

			tx := transaction.Transaction{
				EntryDate:    ParseDate(m.EntryDate),
				PurchaseDate: ParseDate(m.PurchaseDate),
				Merchant:     m.Merchant,
				Amount:       amount,
				IsCredit:     isCredit,
				CardHolder:   cardHolder,
				SourceFile:   sourceFile,
			}

			// One line of lookahead for the category, within this page.
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if p.rules.IsCategory(next) {
					tx.Category = next
					i++
				}
			}

			list.Add(tx)
			i++
		}
	}

	p.log.Debug().Int("transactions", list.Total).Str("file", sourceFile).Msg("statement parsed")
	return list
}
