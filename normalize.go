package consolida

// RenameRule maps a historical ticker to its current symbol.
type RenameRule struct {
	Old string
	New string
}

// RenameTable is an immutable lookup table of ticker renames, built once at
// load time. Application is a single lookup: rename chains are not resolved
// iteratively, so applying the table twice yields the same result.
type RenameTable map[string]string

// NewRenameTable builds a table from a list of rules. A later rule for the
// same old ticker wins.
func NewRenameTable(rules []RenameRule) RenameTable {
	t := make(RenameTable, len(rules))
	for _, r := range rules {
		if r.Old == "" || r.New == "" {
			continue
		}
		t[r.Old] = r.New
	}
	return t
}

// Apply returns the current symbol for ticker. Unmapped tickers pass through
// unchanged; Apply never fails.
func (t RenameTable) Apply(ticker string) string {
	if current, ok := t[ticker]; ok {
		return current
	}
	return ticker
}

// Normalize rewrites the ticker of every transaction in place.
func (t RenameTable) Normalize(txs []Transaction) {
	if len(t) == 0 {
		return
	}
	for i := range txs {
		txs[i].Ticker = t.Apply(txs[i].Ticker)
	}
}
