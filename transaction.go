package consolida

import "fmt"

// Kind identifies the nature of a normalized transaction.
type Kind int

const (
	KindUnknown Kind = iota
	// KindBuy acquires shares: auction purchases, bonus shares and credit
	// settlements all normalize to a buy.
	KindBuy
	// KindSell disposes of shares, including fractional-share disposals and
	// debit settlements.
	KindSell
	// KindDividend is a cash dividend payment.
	KindDividend
	// KindInterestOnEquity is the brazilian "juros sobre capital próprio".
	KindInterestOnEquity
	// KindDistribution is a fund income distribution ("rendimento").
	KindDistribution
)

func (k Kind) String() string {
	switch k {
	case KindBuy:
		return "buy"
	case KindSell:
		return "sell"
	case KindDividend:
		return "dividend"
	case KindInterestOnEquity:
		return "interest-on-equity"
	case KindDistribution:
		return "distribution"
	default:
		return "unknown"
	}
}

// IsTrade reports whether the kind moves shares in or out of a position.
func (k Kind) IsTrade() bool { return k == KindBuy || k == KindSell }

// IsIncome reports whether the kind is an income event aggregated by the
// income consolidation.
func (k Kind) IsIncome() bool {
	return k == KindDividend || k == KindInterestOnEquity || k == KindDistribution
}

// Transaction is a single normalized statement row.
//
// Once normalized a transaction is immutable, with one exception: the
// corporate-action adjuster rewrites Quantity and Price in place before the
// ledger replay.
type Transaction struct {
	Date     Date
	Kind     Kind
	Ticker   string
	Product  string // full product label from the statement
	Quantity Quantity
	Price    Money // unit price
	Amount   Money // gross operation value

	// Source row, kept for error context.
	File string
	Row  int
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s @ %s", t.Date, t.Kind, t.Ticker, t.Quantity, t.Price)
}

// Cost returns the acquisition cost of the transaction, quantity times unit
// price. The adjuster preserves this product when rescaling.
func (t Transaction) Cost() Money { return t.Price.Mul(t.Quantity) }
