package consolida

import (
	"fmt"
	"log"
	"sort"

	"github.com/shopspring/decimal"
)

// SplitRule rescales the transaction history of a ticker for a corporate
// action. A factor above 1 is a split (quantity multiplied, price divided);
// a factor strictly between 0 and 1 is a reverse split.
type SplitRule struct {
	Ticker string
	Date   Date // effective date; transactions on or before it are rescaled
	Factor Quantity
}

// NewSplitRule validates and builds a split rule. The factor comes as text
// straight from the corrections workbook: a non-numeric or non-positive
// value is rejected.
func NewSplitRule(ticker string, on Date, factor string) (SplitRule, error) {
	f, err := decimal.NewFromString(factor)
	if err != nil {
		return SplitRule{}, fmt.Errorf("split factor %q for %s is not a number: %w", factor, ticker, err)
	}
	if !f.IsPositive() {
		return SplitRule{}, fmt.Errorf("split factor %q for %s must be positive", factor, ticker)
	}
	return SplitRule{Ticker: ticker, Date: on, Factor: Q(f)}, nil
}

// SplitTable is an immutable list of split rules, kept in ascending
// effective-date order.
type SplitTable []SplitRule

// NewSplitTable sorts the rules by effective date. The sort is stable so
// same-day rules keep their input order.
func NewSplitTable(rules []SplitRule) SplitTable {
	t := make(SplitTable, len(rules))
	copy(t, rules)
	sort.SliceStable(t, func(i, j int) bool { return t[i].Date.Before(t[j].Date) })
	return t
}

// Adjust rescales quantities and unit prices in place for every transaction
// dated on or before a rule's effective date. Cumulative factors compose
// multiplicatively: a transaction preceding a 2x and later a 4x split ends up
// rescaled by 8. Rules effective after the cutoff date are skipped.
//
// Rules naming a ticker that never appears in the stream are reported as
// warnings; adjustment of the other tickers is unaffected.
func (t SplitTable) Adjust(txs []Transaction, cutoff Date) []error {
	if len(t) == 0 || len(txs) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(txs))
	for _, tx := range txs {
		seen[tx.Ticker] = true
	}

	var warnings []error
	for _, rule := range t {
		if rule.Date.After(cutoff) {
			log.Printf("split for %s on %s ignored (after cutoff date %s)", rule.Ticker, rule.Date, cutoff)
			continue
		}
		if !seen[rule.Ticker] {
			warnings = append(warnings, &ConsistencyError{
				Ticker: rule.Ticker,
				Date:   rule.Date,
				Msg:    "split rule targets a ticker with no transactions",
			})
			continue
		}
		for i := range txs {
			if txs[i].Ticker != rule.Ticker || txs[i].Date.After(rule.Date) {
				continue
			}
			txs[i].Quantity = txs[i].Quantity.Mul(rule.Factor)
			txs[i].Price = txs[i].Price.Div(rule.Factor)
		}
	}
	return warnings
}
