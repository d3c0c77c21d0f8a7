package consolida

import (
	"errors"
	"testing"
)

func TestLedger_AppendSorts(t *testing.T) {
	l := NewLedger()
	l.Append(
		sell(t, "2024-03-01", "PETR4", 5, 150),
		buy(t, "2024-01-10", "PETR4", 10, 100),
		buy(t, "2024-02-10", "PETR4", 10, 120),
	)

	var dates []string
	for _, tx := range l.Transactions() {
		dates = append(dates, tx.Date.String())
	}
	want := []string{"2024-01-10", "2024-02-10", "2024-03-01"}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("transaction %d on %s, want %s", i, dates[i], want[i])
		}
	}
}

func TestLedger_Consolidate_AverageCost(t *testing.T) {
	l := NewLedger()
	l.Append(
		buy(t, "2024-01-10", "PETR4", 10, 100),
		buy(t, "2024-02-10", "PETR4", 10, 120),
		sell(t, "2024-03-01", "PETR4", 5, 150),
	)

	c, err := l.Consolidate(MustParseDate("2024-12-31"))
	if err != nil {
		t.Fatalf("Consolidate() failed: %v", err)
	}

	// Average cost after both buys is (10*100 + 10*120) / 20 = 110, and a
	// sale never changes the average of the remaining shares.
	pos, ok := c.Position("PETR4")
	if !ok {
		t.Fatal("no position for PETR4")
	}
	assertQuantity(t, "quantity", pos.Quantity, 15)
	assertMoney(t, "avg cost", pos.AvgCost, 110)
	assertMoney(t, "total cost", pos.TotalCost, 1650)

	if len(c.Sales) != 1 {
		t.Fatalf("got %d sales, want 1", len(c.Sales))
	}
	s := c.Sales[0]
	assertQuantity(t, "sold quantity", s.Quantity, 5)
	assertMoney(t, "proceeds", s.Proceeds, 750)
	assertMoney(t, "cost basis", s.CostBasis, 550)
	assertMoney(t, "gain", s.Gain, 200) // 5 * (150 - 110)

	if len(c.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", c.Warnings)
	}
}

func TestLedger_Consolidate_ClosedPositionDropped(t *testing.T) {
	l := NewLedger()
	l.Append(
		buy(t, "2024-01-10", "VALE3", 10, 60),
		sell(t, "2024-02-10", "VALE3", 10, 70),
	)

	c, err := l.Consolidate(MustParseDate("2024-12-31"))
	if err != nil {
		t.Fatalf("Consolidate() failed: %v", err)
	}
	if _, ok := c.Position("VALE3"); ok {
		t.Error("closed position still present in the snapshot")
	}
	if len(c.Sales) != 1 {
		t.Fatalf("got %d sales, want 1", len(c.Sales))
	}
	assertMoney(t, "gain", c.Sales[0].Gain, 100)
}

func TestLedger_Consolidate_OversellClamped(t *testing.T) {
	l := NewLedger()
	l.Append(
		buy(t, "2024-01-10", "ITUB4", 5, 30),
		sell(t, "2024-02-10", "ITUB4", 8, 40),
	)

	c, err := l.Consolidate(MustParseDate("2024-12-31"))
	if err != nil {
		t.Fatalf("Consolidate() failed: %v", err)
	}

	// The sale is clamped to the 5 shares actually held, and the clamp is
	// reported as a consistency warning.
	if len(c.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(c.Warnings), c.Warnings)
	}
	var consistency *ConsistencyError
	if !errors.As(c.Warnings[0], &consistency) {
		t.Fatalf("warning is %T, want *ConsistencyError", c.Warnings[0])
	}
	if consistency.Ticker != "ITUB4" {
		t.Errorf("warning ticker = %q, want ITUB4", consistency.Ticker)
	}

	if len(c.Sales) != 1 {
		t.Fatalf("got %d sales, want 1", len(c.Sales))
	}
	s := c.Sales[0]
	assertQuantity(t, "sold quantity", s.Quantity, 5)
	assertMoney(t, "proceeds", s.Proceeds, 200) // 5 * 40, not 8 * 40
	assertMoney(t, "gain", s.Gain, 50)

	if _, ok := c.Position("ITUB4"); ok {
		t.Error("clamped position should be empty and dropped")
	}
}

func TestLedger_Consolidate_SellWithNothingHeld(t *testing.T) {
	l := NewLedger()
	l.Append(sell(t, "2024-02-10", "BBAS3", 10, 25))

	c, err := l.Consolidate(MustParseDate("2024-12-31"))
	if err != nil {
		t.Fatalf("Consolidate() failed: %v", err)
	}
	// Clamped to zero: no sale record, only the warning.
	if len(c.Sales) != 0 {
		t.Errorf("got %d sales, want 0", len(c.Sales))
	}
	if len(c.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(c.Warnings))
	}
}

func TestLedger_Consolidate_CutoffExcludesLaterTransactions(t *testing.T) {
	l := NewLedger()
	l.Append(
		buy(t, "2024-01-10", "PETR4", 10, 100),
		buy(t, "2024-06-10", "PETR4", 10, 200),
	)

	c, err := l.Consolidate(MustParseDate("2024-03-31"))
	if err != nil {
		t.Fatalf("Consolidate() failed: %v", err)
	}
	pos, ok := c.Position("PETR4")
	if !ok {
		t.Fatal("no position for PETR4")
	}
	assertQuantity(t, "quantity", pos.Quantity, 10)
	assertMoney(t, "total cost", pos.TotalCost, 1000)
}

func TestLedger_Consolidate_CutoffIsInclusive(t *testing.T) {
	l := NewLedger()
	l.Append(buy(t, "2024-03-31", "PETR4", 10, 100))

	c, err := l.Consolidate(MustParseDate("2024-03-31"))
	if err != nil {
		t.Fatalf("Consolidate() failed: %v", err)
	}
	if _, ok := c.Position("PETR4"); !ok {
		t.Error("transaction on the cutoff date itself must be included")
	}
}

func TestLedger_Consolidate_MissingCutoff(t *testing.T) {
	l := NewLedger()
	l.Append(buy(t, "2024-01-10", "PETR4", 10, 100))

	_, err := l.Consolidate(Date{})
	var cfg *ConfigError
	if !errors.As(err, &cfg) {
		t.Fatalf("Consolidate(zero date) = %v, want *ConfigError", err)
	}
}

func TestLedger_Consolidate_PositionsSortedByTicker(t *testing.T) {
	l := NewLedger()
	l.Append(
		buy(t, "2024-01-10", "VALE3", 1, 60),
		buy(t, "2024-01-11", "BBAS3", 1, 25),
		buy(t, "2024-01-12", "PETR4", 1, 100),
	)

	c, err := l.Consolidate(MustParseDate("2024-12-31"))
	if err != nil {
		t.Fatalf("Consolidate() failed: %v", err)
	}
	want := []string{"BBAS3", "PETR4", "VALE3"}
	if len(c.Positions) != len(want) {
		t.Fatalf("got %d positions, want %d", len(c.Positions), len(want))
	}
	for i, p := range c.Positions {
		if p.Ticker != want[i] {
			t.Errorf("position %d is %s, want %s", i, p.Ticker, want[i])
		}
	}
}

func TestLedger_Consolidate_IncomeDoesNotMovePositions(t *testing.T) {
	l := NewLedger()
	l.Append(
		buy(t, "2024-01-10", "PETR4", 10, 100),
		income(t, KindDividend, "2024-02-10", "PETR4", 55),
	)

	c, err := l.Consolidate(MustParseDate("2024-12-31"))
	if err != nil {
		t.Fatalf("Consolidate() failed: %v", err)
	}
	pos, _ := c.Position("PETR4")
	assertQuantity(t, "quantity", pos.Quantity, 10)
	assertMoney(t, "total cost", pos.TotalCost, 1000)
}
