package consolida

import (
	"errors"
	"testing"
)

func TestNewSplitRule(t *testing.T) {
	on := MustParseDate("2024-05-01")

	testCases := []struct {
		name    string
		factor  string
		wantErr bool
	}{
		{name: "split", factor: "2"},
		{name: "reverse split", factor: "0.25"},
		{name: "fractional factor", factor: "1.5"},
		{name: "not a number", factor: "dois", wantErr: true},
		{name: "zero", factor: "0", wantErr: true},
		{name: "negative", factor: "-2", wantErr: true},
		{name: "empty", factor: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSplitRule("PETR4", on, tc.factor)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewSplitRule(%q) error = %v, wantErr %v", tc.factor, err, tc.wantErr)
			}
		})
	}
}

func TestSplitTable_Adjust(t *testing.T) {
	cutoff := MustParseDate("2024-12-31")

	mustRule := func(ticker, on, factor string) SplitRule {
		t.Helper()
		r, err := NewSplitRule(ticker, MustParseDate(on), factor)
		if err != nil {
			t.Fatalf("NewSplitRule: %v", err)
		}
		return r
	}

	t.Run("split rescales quantity and price", func(t *testing.T) {
		txs := []Transaction{buy(t, "2024-01-10", "MGLU3", 100, 10)}
		table := NewSplitTable([]SplitRule{mustRule("MGLU3", "2024-02-01", "4")})

		warnings := table.Adjust(txs, cutoff)
		if len(warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", warnings)
		}
		assertQuantity(t, "quantity", txs[0].Quantity, 400)
		assertMoney(t, "price", txs[0].Price, 2.5)
		// The economic value of the transaction is unchanged.
		assertMoney(t, "cost", txs[0].Cost(), 1000)
	})

	t.Run("consecutive splits compound", func(t *testing.T) {
		txs := []Transaction{buy(t, "2024-01-10", "MGLU3", 100, 10)}
		table := NewSplitTable([]SplitRule{
			mustRule("MGLU3", "2024-06-01", "4"),
			mustRule("MGLU3", "2024-02-01", "2"),
		})

		table.Adjust(txs, cutoff)
		// 2x then 4x: the original transaction ends up rescaled by 8.
		assertQuantity(t, "quantity", txs[0].Quantity, 800)
		assertMoney(t, "price", txs[0].Price, 1.25)
	})

	t.Run("reverse split", func(t *testing.T) {
		txs := []Transaction{buy(t, "2024-01-10", "OIBR3", 100, 1)}
		table := NewSplitTable([]SplitRule{mustRule("OIBR3", "2024-02-01", "0.1")})

		table.Adjust(txs, cutoff)
		assertQuantity(t, "quantity", txs[0].Quantity, 10)
		assertMoney(t, "price", txs[0].Price, 10)
	})

	t.Run("transactions after the effective date untouched", func(t *testing.T) {
		txs := []Transaction{
			buy(t, "2024-01-10", "MGLU3", 100, 10),
			buy(t, "2024-03-10", "MGLU3", 50, 3),
		}
		table := NewSplitTable([]SplitRule{mustRule("MGLU3", "2024-02-01", "2")})

		table.Adjust(txs, cutoff)
		assertQuantity(t, "pre-split quantity", txs[0].Quantity, 200)
		assertQuantity(t, "post-split quantity", txs[1].Quantity, 50)
	})

	t.Run("other tickers untouched", func(t *testing.T) {
		txs := []Transaction{
			buy(t, "2024-01-10", "MGLU3", 100, 10),
			buy(t, "2024-01-10", "PETR4", 10, 100),
		}
		table := NewSplitTable([]SplitRule{mustRule("MGLU3", "2024-02-01", "2")})

		table.Adjust(txs, cutoff)
		assertQuantity(t, "PETR4 quantity", txs[1].Quantity, 10)
	})

	t.Run("rule after cutoff skipped", func(t *testing.T) {
		txs := []Transaction{buy(t, "2024-01-10", "MGLU3", 100, 10)}
		table := NewSplitTable([]SplitRule{mustRule("MGLU3", "2025-02-01", "2")})

		warnings := table.Adjust(txs, cutoff)
		if len(warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", warnings)
		}
		assertQuantity(t, "quantity", txs[0].Quantity, 100)
	})

	t.Run("rule for unknown ticker warns", func(t *testing.T) {
		txs := []Transaction{buy(t, "2024-01-10", "MGLU3", 100, 10)}
		table := NewSplitTable([]SplitRule{mustRule("XXXX9", "2024-02-01", "2")})

		warnings := table.Adjust(txs, cutoff)
		if len(warnings) != 1 {
			t.Fatalf("got %d warnings, want 1", len(warnings))
		}
		var consistency *ConsistencyError
		if !errors.As(warnings[0], &consistency) {
			t.Fatalf("warning is %T, want *ConsistencyError", warnings[0])
		}
		assertQuantity(t, "quantity", txs[0].Quantity, 100)
	})
}

func TestSplitThenConsolidate(t *testing.T) {
	// Rescaled history replays to the same economics: 100 shares bought for
	// 1000 become 200 shares at average cost 5.
	txs := []Transaction{buy(t, "2024-01-10", "MGLU3", 100, 10)}
	rule, err := NewSplitRule("MGLU3", MustParseDate("2024-02-01"), "2")
	if err != nil {
		t.Fatalf("NewSplitRule: %v", err)
	}
	NewSplitTable([]SplitRule{rule}).Adjust(txs, MustParseDate("2024-12-31"))

	l := NewLedger()
	l.Append(txs...)
	c, err := l.Consolidate(MustParseDate("2024-12-31"))
	if err != nil {
		t.Fatalf("Consolidate() failed: %v", err)
	}
	pos, _ := c.Position("MGLU3")
	assertQuantity(t, "quantity", pos.Quantity, 200)
	assertMoney(t, "avg cost", pos.AvgCost, 5)
	assertMoney(t, "total cost", pos.TotalCost, 1000)
}
