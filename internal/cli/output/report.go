package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/pycodelint/internal/report"
	"github.com/leapstack-labs/pycodelint/pkg/core"
)

// FileReport is the outcome of checking one document.
type FileReport struct {
	File       string // name as it appears in the report
	ConfigFile string // merged config file, empty if none
	Report     string // "path:row:col: CODE text" lines
}

// ReportOutput is the JSON form of a FileReport.
type ReportOutput struct {
	File        string              `json:"file"`
	ConfigFile  string              `json:"config_file,omitempty"`
	Diagnostics []report.Diagnostic `json:"diagnostics"`
	Summary     ReportSummary       `json:"summary"`
}

// ReportSummary counts diagnostics by severity.
type ReportSummary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// NewReportOutput reads a FileReport back into structured diagnostics.
func NewReportOutput(fr FileReport) ReportOutput {
	out := ReportOutput{
		File:        fr.File,
		ConfigFile:  fr.ConfigFile,
		Diagnostics: []report.Diagnostic{},
	}
	for _, d := range report.Parse(fr.Report) {
		out.Diagnostics = append(out.Diagnostics, d)
		out.Summary.Total++
		if d.Severity == core.SeverityError {
			out.Summary.Errors++
		} else {
			out.Summary.Warnings++
		}
	}
	return out
}

// Report writes a FileReport in the effective mode.
func (r *Renderer) Report(fr FileReport) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(NewReportOutput(fr))
	case ModePretty:
		r.prettyReport(NewReportOutput(fr))
		return nil
	default:
		_, err := io.WriteString(r.out, fr.Report)
		return err
	}
}

func (r *Renderer) prettyReport(out ReportOutput) {
	s := r.styles
	if out.Summary.Total == 0 {
		r.Println(s.Success.Render("✓ ") + out.File + s.Muted.Render(": no issues found"))
		return
	}

	r.Println(s.Path.Render(out.File))
	for _, d := range out.Diagnostics {
		r.Printf("  %s  %s  %s  %s\n",
			s.Muted.Render(fmt.Sprintf("%-7s", fmt.Sprintf("%d:%d", d.Line, d.Column))),
			r.severity(d.Severity),
			s.Code.Render(fmt.Sprintf("%-5s", d.Code)),
			d.Message,
		)
	}
	r.Println("")

	parts := []string{fmt.Sprintf("%d issues", out.Summary.Total)}
	if out.Summary.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", out.Summary.Errors))
	}
	if out.Summary.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", out.Summary.Warnings))
	}
	r.Printf("Summary: %s\n", strings.Join(parts, ", "))
	if out.ConfigFile != "" {
		r.Println(s.Muted.Render("Config: " + out.ConfigFile))
	}
}

func (r *Renderer) severity(sev core.Severity) string {
	switch sev {
	case core.SeverityError:
		return r.styles.Error.Render("error  ")
	default:
		return r.styles.Warning.Render("warning")
	}
}
