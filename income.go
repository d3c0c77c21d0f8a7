package consolida

import "sort"

// IncomeRecord is the accumulated income of one asset in one calendar year.
type IncomeRecord struct {
	Ticker string
	Year   int
	Amount Money
}

// ConsolidateIncome buckets the gross amount of every income event by
// (ticker, calendar year). The accumulation is commutative and associative,
// so it carries no ordering dependency; the result is sorted by ticker then
// year for stable output.
func (l *Ledger) ConsolidateIncome() []IncomeRecord {
	type key struct {
		ticker string
		year   int
	}
	buckets := make(map[key]Money)
	for _, tx := range l.transactions {
		if !tx.Kind.IsIncome() {
			continue
		}
		k := key{tx.Ticker, tx.Date.Year()}
		buckets[k] = buckets[k].Add(tx.Amount)
	}

	records := make([]IncomeRecord, 0, len(buckets))
	for k, amount := range buckets {
		records = append(records, IncomeRecord{Ticker: k.ticker, Year: k.year, Amount: amount})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Ticker != records[j].Ticker {
			return records[i].Ticker < records[j].Ticker
		}
		return records[i].Year < records[j].Year
	})
	return records
}
