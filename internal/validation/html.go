package validation

import (
	"fmt"
	"os"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"findingsheet/domain/finding"
	"findingsheet/internal/errors"
)

// Markdown renders the report as a markdown document
func (r *Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Findings sheet validation\n\n")
	fmt.Fprintf(&b, "Run `%s` on worksheet **%s**: %d rows x %d columns, %d data rows.\n\n",
		r.RunID, escapeMarkdown(r.SheetName), r.MaxRow, r.MaxColumn, r.DataRows)

	b.WriteString("## Columns\n\n| # | Header |\n|---|---|\n")
	for _, h := range r.Headers {
		fmt.Fprintf(&b, "| %d | %s |\n", h.Column, escapeMarkdown(h.Name))
	}
	b.WriteString("\n## Checks\n\n")
	if r.RequiredColumnsPresent() {
		b.WriteString("- All required columns present\n")
	} else {
		fmt.Fprintf(&b, "- **Missing required columns:** %s\n", escapeMarkdown(strings.Join(r.MissingRequired, ", ")))
	}
	fmt.Fprintf(&b, "- Enum warnings: %d\n- Field issues: %d\n", len(r.EnumWarnings), len(r.FieldIssues))

	if len(r.EnumWarnings)+len(r.FieldIssues) > 0 {
		b.WriteString("\n| Row | Column | Problem |\n|---|---|---|\n")
		for _, w := range r.EnumWarnings {
			fmt.Fprintf(&b, "| %d | %s | '%s' not in %s |\n", w.Row, w.Column,
				escapeMarkdown(w.Value), escapeMarkdown(strings.Join(w.Allowed, ", ")))
		}
		for _, i := range r.FieldIssues {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", i.Row, escapeMarkdown(i.Column), escapeMarkdown(i.Message))
		}
	}

	b.WriteString("\n## Risk profile\n\n| Rating | Findings |\n|---|---|\n")
	for _, rating := range finding.Ratings() {
		fmt.Fprintf(&b, "| %s | %d |\n", rating, r.Risk.Ratings[rating])
	}
	fmt.Fprintf(&b, "\nOverdue: %d\n", r.Risk.Overdue)
	return b.String()
}

// RenderHTML renders the report as a standalone HTML page
func RenderHTML(r *Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: "Findings sheet validation",
	})
	return markdown.ToHTML([]byte(r.Markdown()), p, renderer)
}

// WriteHTML writes the HTML report to path
func WriteHTML(path string, r *Report) error {
	if err := os.WriteFile(path, RenderHTML(r), 0o644); err != nil {
		return errors.WriteError(path, err)
	}
	return nil
}

var markdownEscaper = strings.NewReplacer("|", "\\|", "*", "\\*", "_", "\\_", "`", "\\`", "<", "&lt;", ">", "&gt;")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
