package consolida

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Output workbook sheets.
const (
	SheetPortfolio = "Portfolio"
	SheetPositions = "Posicao_Custo"
	SheetSales     = "Vendas_Log"
	SheetIncome    = "Rendimentos_Log"
)

const brlNumFmt = `"R$" #,##0.00`

// WriteWorkbook writes the consolidated report as an xlsx workbook with four
// sheets: current portfolio valuation, cost-basis positions, the sales log
// and the income log. Monetary cells carry the R$ number format.
func WriteWorkbook(path string, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	numFmt := brlNumFmt
	brl, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}

	w := workbookWriter{f: f, brl: brl}

	rows := make([][]any, 0, len(r.Lines))
	for _, l := range r.Lines {
		row := []any{l.Ticker, l.Quantity.Float64(), l.AvgCost.Float64(), l.TotalCost.Float64()}
		if l.Quoted {
			row = append(row, l.LastPrice.Float64(), l.MarketValue.Float64(), l.Unrealized.Float64())
		} else {
			row = append(row, nil, nil, nil)
		}
		rows = append(rows, row)
	}
	if err := w.sheet(SheetPortfolio,
		[]string{"Ativo", "Quantidade", "Preço Médio", "Custo Total", "Preço Atual", "Valor Atual", "L/P Não Realizado"},
		rows, 2); err != nil {
		return err
	}

	rows = rows[:0]
	for _, p := range r.Positions {
		rows = append(rows, []any{p.Ticker, p.Quantity.Float64(), p.AvgCost.Float64(), p.TotalCost.Float64()})
	}
	if err := w.sheet(SheetPositions,
		[]string{"Ativo", "Quantidade", "Preço Médio", "Custo Total"},
		rows, 2); err != nil {
		return err
	}

	rows = rows[:0]
	for _, s := range r.Sales {
		rows = append(rows, []any{s.Date.String(), s.Ticker, s.Quantity.Float64(),
			s.Price.Float64(), s.Proceeds.Float64(), s.CostBasis.Float64(), s.Gain.Float64()})
	}
	if err := w.sheet(SheetSales,
		[]string{"Data", "Ativo", "Quantidade", "Preço unitário", "Valor da Operação", "Custo", "Resultado"},
		rows, 3); err != nil {
		return err
	}

	rows = rows[:0]
	for _, in := range r.Income {
		rows = append(rows, []any{in.Ticker, in.Year, in.Amount.Float64()})
	}
	if err := w.sheet(SheetIncome,
		[]string{"Ativo", "Ano", "Renda Total"},
		rows, 2); err != nil {
		return err
	}

	// The first sheet excelize creates is a placeholder.
	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex(SheetPortfolio); err == nil {
		f.SetActiveSheet(idx)
	}

	return f.SaveAs(path)
}

type workbookWriter struct {
	f   *excelize.File
	brl int
}

// sheet writes a header row and data rows, applies the currency style to
// every column from moneyFrom on, and fits column widths to their content.
func (w workbookWriter) sheet(name string, header []string, rows [][]any, moneyFrom int) error {
	if _, err := w.f.NewSheet(name); err != nil {
		return err
	}

	widths := make([]float64, len(header))
	for col, h := range header {
		axis, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(name, axis, h); err != nil {
			return err
		}
		widths[col] = float64(len(h))
	}

	for i, row := range rows {
		for col, v := range row {
			if v == nil {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := w.f.SetCellValue(name, axis, v); err != nil {
				return err
			}
			if l := float64(len(fmt.Sprint(v))); l > widths[col] {
				widths[col] = l
			}
		}
	}

	if len(rows) > 0 && moneyFrom < len(header) {
		first, err := excelize.CoordinatesToCellName(moneyFrom+1, 2)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(header), len(rows)+1)
		if err != nil {
			return err
		}
		if err := w.f.SetCellStyle(name, first, last, w.brl); err != nil {
			return err
		}
	}

	for col := range header {
		letter, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(name, letter, letter, widths[col]+4); err != nil {
			return err
		}
	}
	return nil
}
