package renderer

import (
	"fmt"
	"strings"

	"github.com/rmaia/consolida"
)

// FullReport aggregates every view of a consolidation run. It is the input
// of the full report command and of the assistant prompt.
type FullReport struct {
	Portfolio *Portfolio `json:"portfolio"`
	Sales     *Sales     `json:"sales"`
	Income    *Income    `json:"income"`
	// Warnings are the consistency issues found while replaying the
	// transactions (oversells, orphan split rules, failed quotes).
	Warnings []string `json:"warnings,omitempty"`
}

// NewFullReport builds the combined view from a consolidated report.
func NewFullReport(r *consolida.Report) *FullReport {
	fr := &FullReport{
		Portfolio: NewPortfolio(r),
		Sales:     NewSales(r),
		Income:    NewIncome(r),
	}
	for _, w := range r.Warnings {
		fr.Warnings = append(fr.Warnings, w.Error())
	}
	return fr
}

// RenderFullReport renders all views as one markdown document, warnings
// last.
func RenderFullReport(fr *FullReport) string {
	var b strings.Builder
	b.WriteString(RenderPortfolio(fr.Portfolio))
	b.WriteString("\n")
	b.WriteString(RenderSales(fr.Sales))
	b.WriteString("\n")
	b.WriteString(RenderIncome(fr.Income))
	if len(fr.Warnings) > 0 {
		b.WriteString("\n# Warnings\n\n")
		for _, w := range fr.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}
