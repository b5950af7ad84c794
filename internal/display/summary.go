package display

import (
	"log/slog"
	"strings"
	"text/template"

	"github.com/pixil98/go-questmap/internal/game"
)

// DefaultSummaryTemplate renders "<title> (Complete!)" or "<title> (In Progress)".
const DefaultSummaryTemplate = `{{ .Title | trim }} {{ .Status }}`

// SummaryFormatter renders task summaries for the overlay's hover text.
type SummaryFormatter struct {
	tmpl  *template.Template
	width int
}

// NewSummaryFormatter parses tmplStr once. An empty template uses
// DefaultSummaryTemplate; width is the wrap column, zero disables wrapping.
func NewSummaryFormatter(tmplStr string, width int) (*SummaryFormatter, error) {
	if tmplStr == "" {
		tmplStr = DefaultSummaryTemplate
	}
	tmpl, err := ParseTemplate(tmplStr)
	if err != nil {
		return nil, err
	}
	return &SummaryFormatter{tmpl: tmpl, width: width}, nil
}

// Format renders one summary.
func (f *SummaryFormatter) Format(s game.TaskSummary) (string, error) {
	out, err := execute(f.tmpl, s)
	if err != nil {
		return "", err
	}
	return Wrap(Capitalize(strings.TrimSpace(out)), f.width), nil
}

// FormatAll renders every summary in order. A summary the template cannot
// render falls back to its plain display text.
func (f *SummaryFormatter) FormatAll(summaries []game.TaskSummary) []string {
	if len(summaries) == 0 {
		return nil
	}
	lines := make([]string, 0, len(summaries))
	for _, s := range summaries {
		line, err := f.Format(s)
		if err != nil {
			slog.Warn("rendering task summary", "task", s.TaskId, "error", err)
			line = Wrap(s.DisplayText(), f.width)
		}
		lines = append(lines, line)
	}
	return lines
}
