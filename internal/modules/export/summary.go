package export

import (
	"bytes"
	"fmt"
	"html/template"
)

// SummaryData feeds the plan summary card.
type SummaryData struct {
	Destination string
	Days        int
	Budget      int
	Cost        int
}

func (d SummaryData) OverBudget() bool { return d.Cost > d.Budget }

func (d SummaryData) Over() int { return d.Cost - d.Budget }

var summaryTmpl = template.Must(template.New("summary").Parse(`<div class="card">
  <h2>{{.Destination}} — {{.Days}} days</h2>
  <p>Estimated cost: <strong>INR {{.Cost}}</strong> (Your budget: INR {{.Budget}})</p>
  {{- if .OverBudget}}
  <p class="over-budget">Over budget by INR {{.Over}}</p>
  {{- end}}
</div>
`))

// RenderSummary returns the HTML summary card with all fields escaped.
func RenderSummary(d SummaryData) (string, error) {
	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("summary: render: %w", err)
	}
	return buf.String(), nil
}
