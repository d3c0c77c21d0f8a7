package consolida

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// StatementSheet is the sheet of a B3 statement workbook holding the
// transaction rows.
const StatementSheet = "Movimentação"

// Statement column headers.
const (
	colDate      = "Data"
	colMovement  = "Movimentação"
	colDirection = "Entrada/Saída"
	colProduct   = "Produto"
	colQuantity  = "Quantidade"
	colPrice     = "Preço unitário"
	colAmount    = "Valor da Operação"
)

var tickerRE = regexp.MustCompile(`^([^\s-]+)`)

// TickerFromProduct extracts the ticker symbol from a statement product
// label, e.g. "PETR4 - PETROBRAS PN" yields "PETR4".
func TickerFromProduct(product string) string {
	return tickerRE.FindString(strings.TrimSpace(product))
}

// mapMovement normalizes a statement movement type (and, for settlements,
// its direction) into a transaction kind. Movements that do not contribute
// to the consolidation are reported as not ok and skipped.
func mapMovement(movement, direction string) (Kind, bool) {
	switch movement {
	case "Compra", "Leilão de Fração", "Bonificação em Ativos":
		return KindBuy, true
	case "Venda", "Fração em Ativos":
		return KindSell, true
	case "Transferência - Liquidação":
		switch direction {
		case "Credito":
			return KindBuy, true
		case "Debito":
			return KindSell, true
		}
		return KindUnknown, false
	case "Dividendo":
		return KindDividend, true
	case "Juros Sobre Capital Próprio":
		return KindInterestOnEquity, true
	case "Rendimento":
		return KindDistribution, true
	}
	return KindUnknown, false
}

// parseDecimalBR parses a spreadsheet number that may use the brazilian
// comma decimal separator and dot thousands ("1.234,56"), an "R$" prefix, or
// a plain "-" for an empty value.
func parseDecimalBR(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

// headerIndex maps column headers of the first row to their position.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	return index
}

// cell returns the trimmed cell at idx, tolerating short rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ReadStatement parses the transaction sheet of a single B3 statement
// workbook. Malformed rows are returned as joined DataFormatErrors alongside
// the rows that did parse; a non-nil error does not invalidate the
// transactions.
func ReadStatement(r io.Reader, name string) ([]Transaction, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open statement %q: %w", name, err)
	}
	defer f.Close()

	rows, err := f.GetRows(StatementSheet)
	if err != nil {
		return nil, fmt.Errorf("statement %q has no %q sheet: %w", name, StatementSheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := headerIndex(rows[0])
	for _, required := range []string{colDate, colMovement, colProduct, colPrice} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("statement %q is missing the %q column", name, required)
		}
	}

	var txs []Transaction
	var rowErrs []error
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		kind, ok := mapMovement(cell(row, index[colMovement]), cell(row, index[colDirection]))
		if !ok {
			continue
		}

		on, err := ParseDate(cell(row, index[colDate]))
		if err != nil {
			rowErrs = append(rowErrs, &DataFormatError{File: name, Row: rowNum, Field: colDate, Cause: err})
			continue
		}
		quantity, err := parseDecimalBR(cell(row, index[colQuantity]))
		if err != nil {
			rowErrs = append(rowErrs, &DataFormatError{File: name, Row: rowNum, Field: colQuantity, Cause: err})
			continue
		}
		price, err := parseDecimalBR(cell(row, index[colPrice]))
		if err != nil {
			rowErrs = append(rowErrs, &DataFormatError{File: name, Row: rowNum, Field: colPrice, Cause: err})
			continue
		}
		amount, err := parseDecimalBR(cell(row, index[colAmount]))
		if err != nil {
			rowErrs = append(rowErrs, &DataFormatError{File: name, Row: rowNum, Field: colAmount, Cause: err})
			continue
		}

		product := cell(row, index[colProduct])
		txs = append(txs, Transaction{
			Date:     on,
			Kind:     kind,
			Ticker:   TickerFromProduct(product),
			Product:  product,
			Quantity: Q(quantity),
			Price:    BRL(price),
			Amount:   BRL(amount),
			File:     name,
			Row:      rowNum,
		})
	}
	return txs, errors.Join(rowErrs...)
}

// ReadStatements parses every .xlsx statement in a folder, merging the rows
// of all files. Files without the transaction sheet are skipped with a
// warning, matching how brokers mix statement types in one folder.
func ReadStatements(dir string) ([]Transaction, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read statements folder %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".xlsx") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	var txs []Transaction
	var errs []error
	for _, file := range files {
		path := filepath.Join(dir, file)
		log.Printf("reading statement %s", path)
		f, err := os.Open(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fileTxs, err := ReadStatement(f, file)
		f.Close()
		if err != nil {
			// Keep whatever parsed; sheet-level failures yield no rows.
			errs = append(errs, err)
		}
		txs = append(txs, fileTxs...)
	}
	return txs, errors.Join(errs...)
}

// ReadRenames loads the ticker rename corrections workbook
// (Ticker Antigo / Ticker Novo columns, first sheet).
func ReadRenames(r io.Reader, name string) (RenameTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open renames %q: %w", name, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil || len(rows) == 0 {
		return NewRenameTable(nil), err
	}

	index := headerIndex(rows[0])
	oldCol, okOld := index["Ticker Antigo"]
	newCol, okNew := index["Ticker Novo"]
	if !okOld || !okNew {
		return nil, fmt.Errorf("renames %q is missing the \"Ticker Antigo\"/\"Ticker Novo\" columns", name)
	}

	var rules []RenameRule
	for _, row := range rows[1:] {
		rules = append(rules, RenameRule{Old: cell(row, oldCol), New: cell(row, newCol)})
	}
	return NewRenameTable(rules), nil
}

// ReadSplits loads the splits/reverse-splits corrections workbook
// (Ticker / Fator / Data columns, first sheet). Rows with a malformed factor
// or date are returned as joined DataFormatErrors; valid rows still build
// the table.
func ReadSplits(r io.Reader, name string) (SplitTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open splits %q: %w", name, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil || len(rows) == 0 {
		return NewSplitTable(nil), err
	}

	index := headerIndex(rows[0])
	tickerCol, okTicker := index["Ticker"]
	factorCol, okFactor := index["Fator"]
	dateCol, okDate := index[colDate]
	if !okTicker || !okFactor || !okDate {
		return nil, fmt.Errorf("splits %q is missing the Ticker/Fator/Data columns", name)
	}

	var rules []SplitRule
	var rowErrs []error
	for i, row := range rows[1:] {
		rowNum := i + 2
		on, err := ParseDate(cell(row, dateCol))
		if err != nil {
			rowErrs = append(rowErrs, &DataFormatError{File: name, Row: rowNum, Field: colDate, Cause: err})
			continue
		}
		rule, err := NewSplitRule(cell(row, tickerCol), on, cell(row, factorCol))
		if err != nil {
			rowErrs = append(rowErrs, &DataFormatError{File: name, Row: rowNum, Field: "Fator", Cause: err})
			continue
		}
		rules = append(rules, rule)
	}
	return NewSplitTable(rules), errors.Join(rowErrs...)
}
