package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/rmaia/consolida"
)

// Sales is the realized-gains view of the consolidation.
type Sales struct {
	// Date is the cutoff date of the consolidation.
	Date consolida.Date `json:"date"`
	// TotalRealized is the sum of all realized gains and losses.
	TotalRealized consolida.Money `json:"totalRealized"`
	// Records are the individual sale events, oldest first.
	Records []SaleRecord `json:"records"`
}

// SaleRecord is a single sale row of the sales view.
type SaleRecord struct {
	Date      consolida.Date     `json:"date"`
	Ticker    string             `json:"ticker"`
	Quantity  consolida.Quantity `json:"quantity"`
	Price     consolida.Money    `json:"price"`
	Proceeds  consolida.Money    `json:"proceeds"`
	CostBasis consolida.Money    `json:"costBasis"`
	Gain      consolida.Money    `json:"gain"`
}

// NewSales builds the sales view from a consolidated report.
func NewSales(r *consolida.Report) *Sales {
	s := &Sales{
		Date:          r.On,
		TotalRealized: r.TotalRealized(),
		Records:       make([]SaleRecord, 0, len(r.Sales)),
	}
	for _, rec := range r.Sales {
		s.Records = append(s.Records, SaleRecord{
			Date:      rec.Date,
			Ticker:    rec.Ticker,
			Quantity:  rec.Quantity,
			Price:     rec.Price,
			Proceeds:  rec.Proceeds,
			CostBasis: rec.CostBasis,
			Gain:      rec.Gain,
		})
	}
	return s
}

const salesMarkdownTemplate = `# Sales up to {{ .Date }}

{{- if .Records }}

| Date | Ticker | Quantity | Price | Proceeds | Cost Basis | Gain |
|:---|:---|---:|---:|---:|---:|---:|
{{- range .Records }}
| {{ .Date }} | {{ .Ticker }} | {{ .Quantity }} | {{ .Price }} | {{ .Proceeds }} | {{ .CostBasis }} | {{ .Gain.SignedString }} |
{{- end }}
| **Total** | | | | | | **{{ .TotalRealized.SignedString }}** |
{{- else }}

No sales recorded.
{{- end }}
`

// RenderSales renders the sales view to markdown.
func RenderSales(s *Sales) string {
	tmpl := template.Must(template.New("sales").Parse(salesMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, s); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
