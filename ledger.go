package consolida

import (
	"iter"
	"sort"
)

// Ledger holds the merged transaction stream of all statements.
//
// Transactions are kept in ascending date order with a stable tie-break on
// input order, the order the replay depends on.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds transactions and restores the chronological order. The sort is
// stable: same-day transactions keep their relative input order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions yields every transaction in chronological order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Position is the holding of a single asset after the replay.
// Quantity never goes negative; AvgCost is meaningless at zero quantity.
type Position struct {
	Ticker    string
	Quantity  Quantity
	AvgCost   Money
	TotalCost Money
}

// SaleRecord is one entry of the append-only realized-sales log.
type SaleRecord struct {
	Date      Date
	Ticker    string
	Quantity  Quantity
	Price     Money // sale unit price
	Proceeds  Money // quantity times price
	CostBasis Money // average cost of the sold shares at sale time
	Gain      Money // realized gain or loss
}

// Consolidation is the outcome of a ledger replay: the position snapshot at
// the cutoff date, the full sales log, and the consistency warnings
// accumulated along the way.
type Consolidation struct {
	On        Date
	Positions []Position // nonzero positions, sorted by ticker
	Sales     []SaleRecord
	Warnings  []error
}

// Position returns the position for a ticker, or false when the snapshot
// holds none.
func (c *Consolidation) Position(ticker string) (Position, bool) {
	for _, p := range c.Positions {
		if p.Ticker == ticker {
			return p, true
		}
	}
	return Position{}, false
}

// position is the running engine state for one ticker during the replay.
type position struct {
	quantity Quantity
	cost     Money // total cost of the held shares
}

func (p position) avgCost() Money {
	if p.quantity.IsZero() {
		return BRL(0)
	}
	return p.cost.Div(p.quantity)
}

// Consolidate replays the transaction stream up to and including the cutoff
// date and computes, per ticker, the weighted-average cost position and the
// realized-sales log.
//
// On a buy of quantity q at unit price p the total cost grows by q*p, so the
// average cost becomes (q0*c0 + q*p) / (q0 + q). A sell realizes
// q*(price - avg) and leaves the average cost of the remaining shares
// unchanged. A sell exceeding the held quantity is clamped at zero and
// reported as a warning; the clamped quantity is what the sale record and
// the realized gain are computed from, which keeps the replay deterministic.
//
// Transactions after the cutoff never reach the snapshot; they are filtered
// here by parameter, not assumed away upstream.
func (l *Ledger) Consolidate(cutoff Date) (*Consolidation, error) {
	if cutoff.IsZero() {
		return nil, &ConfigError{Field: "cutoff date", Cause: errMissingCutoff}
	}

	result := &Consolidation{On: cutoff}
	state := make(map[string]*position)

	for _, tx := range l.transactions {
		if tx.Date.After(cutoff) {
			// The ledger is sorted by date, so it is safe to break.
			break
		}
		if !tx.Kind.IsTrade() {
			continue
		}

		pos := state[tx.Ticker]
		if pos == nil {
			pos = &position{cost: BRL(0)}
			state[tx.Ticker] = pos
		}

		switch tx.Kind {
		case KindBuy:
			pos.quantity = pos.quantity.Add(tx.Quantity)
			pos.cost = pos.cost.Add(tx.Cost())
		case KindSell:
			sold := tx.Quantity
			if sold.GreaterThan(pos.quantity) {
				result.Warnings = append(result.Warnings, &ConsistencyError{
					Ticker: tx.Ticker,
					Date:   tx.Date,
					Msg:    "sell of " + sold.String() + " exceeds held quantity " + pos.quantity.String() + ", clamped",
				})
				sold = pos.quantity
			}
			if sold.IsZero() {
				continue
			}
			avg := pos.avgCost()
			costBasis := avg.Mul(sold)
			proceeds := tx.Price.Mul(sold)
			result.Sales = append(result.Sales, SaleRecord{
				Date:      tx.Date,
				Ticker:    tx.Ticker,
				Quantity:  sold,
				Price:     tx.Price,
				Proceeds:  proceeds,
				CostBasis: costBasis,
				Gain:      proceeds.Sub(costBasis),
			})
			pos.quantity = pos.quantity.Sub(sold)
			if pos.quantity.IsZero() {
				pos.cost = BRL(0)
			} else {
				pos.cost = pos.cost.Sub(costBasis)
			}
		}
	}

	tickers := make([]string, 0, len(state))
	for ticker := range state {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	for _, ticker := range tickers {
		pos := state[ticker]
		if !pos.quantity.IsPositive() {
			continue
		}
		result.Positions = append(result.Positions, Position{
			Ticker:    ticker,
			Quantity:  pos.quantity,
			AvgCost:   pos.avgCost(),
			TotalCost: pos.cost,
		})
	}
	return result, nil
}
