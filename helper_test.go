package consolida

import "testing"

// trade builds a trade transaction from literals, the short form the replay
// tests use everywhere.
func trade(t *testing.T, kind Kind, on, ticker string, quantity, price float64) Transaction {
	t.Helper()
	return Transaction{
		Date:     MustParseDate(on),
		Kind:     kind,
		Ticker:   ticker,
		Quantity: Q(quantity),
		Price:    BRL(price),
		Amount:   BRL(quantity * price),
	}
}

func buy(t *testing.T, on, ticker string, quantity, price float64) Transaction {
	t.Helper()
	return trade(t, KindBuy, on, ticker, quantity, price)
}

func sell(t *testing.T, on, ticker string, quantity, price float64) Transaction {
	t.Helper()
	return trade(t, KindSell, on, ticker, quantity, price)
}

// income builds an income transaction; only the gross amount matters.
func income(t *testing.T, kind Kind, on, ticker string, amount float64) Transaction {
	t.Helper()
	return Transaction{
		Date:   MustParseDate(on),
		Kind:   kind,
		Ticker: ticker,
		Amount: BRL(amount),
	}
}

// assertMoney fails when got is not the expected amount.
func assertMoney(t *testing.T, label string, got Money, want float64) {
	t.Helper()
	if !got.Equal(BRL(want)) {
		t.Errorf("%s = %s, want %s", label, got, BRL(want))
	}
}

// assertQuantity fails when got is not the expected quantity.
func assertQuantity(t *testing.T, label string, got Quantity, want float64) {
	t.Helper()
	if !got.Equal(Q(want)) {
		t.Errorf("%s = %s, want %v", label, got, want)
	}
}
