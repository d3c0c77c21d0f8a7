package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/rmaia/consolida"
)

// Income is the dividends-and-distributions view, bucketed by asset and
// calendar year.
type Income struct {
	// Date is the cutoff date of the consolidation.
	Date consolida.Date `json:"date"`
	// Total is the sum of all income received.
	Total consolida.Money `json:"total"`
	// Records are the (ticker, year) buckets, sorted by ticker then year.
	Records []IncomeRecord `json:"records"`
}

// IncomeRecord is a single (ticker, year) bucket of the income view.
type IncomeRecord struct {
	Ticker string          `json:"ticker"`
	Year   int             `json:"year"`
	Amount consolida.Money `json:"amount"`
}

// NewIncome builds the income view from a consolidated report.
func NewIncome(r *consolida.Report) *Income {
	in := &Income{
		Date:    r.On,
		Total:   consolida.BRL(0),
		Records: make([]IncomeRecord, 0, len(r.Income)),
	}
	for _, rec := range r.Income {
		in.Records = append(in.Records, IncomeRecord{Ticker: rec.Ticker, Year: rec.Year, Amount: rec.Amount})
		in.Total = in.Total.Add(rec.Amount)
	}
	return in
}

const incomeMarkdownTemplate = `# Income up to {{ .Date }}

{{- if .Records }}

| Ticker | Year | Amount |
|:---|---:|---:|
{{- range .Records }}
| {{ .Ticker }} | {{ .Year }} | {{ .Amount }} |
{{- end }}
| **Total** | | **{{ .Total }}** |
{{- else }}

No income recorded.
{{- end }}
`

// RenderIncome renders the income view to markdown.
func RenderIncome(in *Income) string {
	tmpl := template.Must(template.New("income").Parse(incomeMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, in); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
