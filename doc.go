// Package consolida consolidates brokerage transaction statements into a
// portfolio report: current holdings with average acquisition cost, realized
// gains from the sales ledger, and income (dividends, interest on equity,
// fund distributions) aggregated by asset and year.
//
// The heart of the package is the cost-basis ledger: a deterministic,
// chronological replay of the merged transaction stream that maintains the
// running quantity and weighted-average cost per asset. Before the replay,
// historical tickers are rewritten to their current symbols with a
// RenameTable, and quantities and prices are rescaled for corporate actions
// with a SplitTable.
//
// Reading B3 statement workbooks, writing the output workbook, and fetching
// market quotes are peripheral collaborators around that core.
package consolida
