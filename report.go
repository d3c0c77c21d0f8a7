package consolida

import "fmt"

// Quoter looks up the current market price of an asset. Implementations live
// at the edge of the package; the consolidation core never fetches quotes
// itself.
type Quoter interface {
	Quote(ticker string) (Money, error)
}

// PortfolioLine is a position enriched with its market valuation.
type PortfolioLine struct {
	Position
	LastPrice   Money
	MarketValue Money
	Unrealized  Money
	Quoted      bool // false when the price lookup failed
}

// Report is the full consolidated output handed to the renderers and to the
// workbook writer.
type Report struct {
	On        Date
	Lines     []PortfolioLine
	Positions []Position
	Sales     []SaleRecord
	Income    []IncomeRecord
	Warnings  []error
}

// TotalCost sums the acquisition cost of all positions.
func (r *Report) TotalCost() Money {
	total := BRL(0)
	for _, p := range r.Positions {
		total = total.Add(p.TotalCost)
	}
	return total
}

// TotalMarketValue sums the market value of all quoted positions.
func (r *Report) TotalMarketValue() Money {
	total := BRL(0)
	for _, l := range r.Lines {
		if l.Quoted {
			total = total.Add(l.MarketValue)
		}
	}
	return total
}

// TotalRealized sums the realized gain of the sales log.
func (r *Report) TotalRealized() Money {
	total := BRL(0)
	for _, s := range r.Sales {
		total = total.Add(s.Gain)
	}
	return total
}

// BuildReport consolidates the ledger at the cutoff date and enriches the
// resulting positions with market prices from the quoter. A failed lookup
// degrades the line (no market value) and is recorded as a warning; a nil
// quoter skips the valuation entirely.
func BuildReport(l *Ledger, cutoff Date, quoter Quoter) (*Report, error) {
	c, err := l.Consolidate(cutoff)
	if err != nil {
		return nil, err
	}

	report := &Report{
		On:        c.On,
		Positions: c.Positions,
		Sales:     c.Sales,
		Income:    l.ConsolidateIncome(),
		Warnings:  c.Warnings,
	}

	for _, pos := range c.Positions {
		line := PortfolioLine{Position: pos}
		if quoter != nil {
			price, err := quoter.Quote(pos.Ticker)
			if err != nil {
				report.Warnings = append(report.Warnings, fmt.Errorf("could not quote %s: %w", pos.Ticker, err))
			} else {
				line.LastPrice = price
				line.MarketValue = price.Mul(pos.Quantity)
				line.Unrealized = line.MarketValue.Sub(pos.TotalCost)
				line.Quoted = true
			}
		}
		report.Lines = append(report.Lines, line)
	}
	return report, nil
}
