// Package renderer builds presentation views from consolidation results and
// renders them as markdown. Views are plain structs that also marshal cleanly
// to json, so every command can offer both outputs from the same data.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/rmaia/consolida"
)

// Portfolio is the valuation view of the consolidated positions.
type Portfolio struct {
	// Date is the cutoff date the positions were consolidated at.
	Date consolida.Date `json:"date"`
	// TotalCost is the acquisition cost of the whole portfolio.
	TotalCost consolida.Money `json:"totalCost"`
	// TotalMarketValue is the market value of every quoted position.
	TotalMarketValue consolida.Money `json:"totalMarketValue"`
	// Lines are the per-asset rows.
	Lines []PortfolioLine `json:"lines"`
	// Unquoted lists the assets whose price lookup failed.
	Unquoted []string `json:"unquoted,omitempty"`
}

// PortfolioLine is a single asset row of the portfolio view.
type PortfolioLine struct {
	Ticker      string             `json:"ticker"`
	Quantity    consolida.Quantity `json:"quantity"`
	AvgCost     consolida.Money    `json:"avgCost"`
	TotalCost   consolida.Money    `json:"totalCost"`
	LastPrice   consolida.Money    `json:"lastPrice,omitzero"`
	MarketValue consolida.Money    `json:"marketValue,omitzero"`
	Unrealized  consolida.Money    `json:"unrealized,omitzero"`
	Quoted      bool               `json:"quoted"`
}

// NewPortfolio builds the portfolio view from a consolidated report.
func NewPortfolio(r *consolida.Report) *Portfolio {
	p := &Portfolio{
		Date:             r.On,
		TotalCost:        r.TotalCost(),
		TotalMarketValue: r.TotalMarketValue(),
		Lines:            make([]PortfolioLine, 0, len(r.Lines)),
	}
	for _, l := range r.Lines {
		p.Lines = append(p.Lines, PortfolioLine{
			Ticker:      l.Ticker,
			Quantity:    l.Quantity,
			AvgCost:     l.AvgCost,
			TotalCost:   l.TotalCost,
			LastPrice:   l.LastPrice,
			MarketValue: l.MarketValue,
			Unrealized:  l.Unrealized,
			Quoted:      l.Quoted,
		})
		if !l.Quoted {
			p.Unquoted = append(p.Unquoted, l.Ticker)
		}
	}
	return p
}

const portfolioMarkdownTemplate = `# Portfolio on {{ .Date }}

{{- if .Lines }}

| Ticker | Quantity | Avg Cost | Total Cost | Price | Market Value | Unrealized |
|:---|---:|---:|---:|---:|---:|---:|
{{- range .Lines }}
| {{ .Ticker }} | {{ .Quantity }} | {{ .AvgCost }} | {{ .TotalCost }} | {{ if .Quoted }}{{ .LastPrice }}{{ else }}?{{ end }} | {{ if .Quoted }}{{ .MarketValue }}{{ else }}?{{ end }} | {{ if .Quoted }}{{ .Unrealized.SignedString }}{{ else }}?{{ end }} |
{{- end }}
| **Total** | | | **{{ .TotalCost }}** | | **{{ .TotalMarketValue }}** | |
{{- else }}

No open positions.
{{- end }}

{{- if .Unquoted }}

No market price for: {{ range $i, $t := .Unquoted }}{{ if $i }}, {{ end }}{{ $t }}{{ end }}.
{{- end }}
`

// RenderPortfolio renders the portfolio view to markdown.
func RenderPortfolio(p *Portfolio) string {
	tmpl := template.Must(template.New("portfolio").Parse(portfolioMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, p); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}

const positionsMarkdownTemplate = `# Positions on {{ .Date }}

{{- if .Lines }}

| Ticker | Quantity | Avg Cost | Total Cost |
|:---|---:|---:|---:|
{{- range .Lines }}
| {{ .Ticker }} | {{ .Quantity }} | {{ .AvgCost }} | {{ .TotalCost }} |
{{- end }}
| **Total** | | | **{{ .TotalCost }}** |
{{- else }}

No open positions.
{{- end }}
`

// RenderPositions renders the cost-basis columns of the portfolio view,
// leaving market valuation out. Used when no quotes were fetched.
func RenderPositions(p *Portfolio) string {
	tmpl := template.Must(template.New("positions").Parse(positionsMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, p); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
