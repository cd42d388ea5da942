package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/pkg/dateutil"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"count":    FormatCount,
	"dec":      FormatDecimal,
	"pct":      FormatSignedPercentage,
	"rate":     FormatRate,
	"seconds":  FormatSeconds,
	"duration": dateutil.HumanizeDuration,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.SimulationReport
		Comparison Comparison
		TotalIDs   uint64
	}{
		SimulationReport: report,
		Comparison:       AnalyzeReport(report),
		TotalIDs:         report.Config.TotalIDs(),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
