package report

import (
	"context"
	"strings"
)

// RenderReportHTML renders the report page for runs into a string.
func RenderReportHTML(ctx context.Context, runs []Run) (string, error) {
	var builder strings.Builder
	if err := ReportPage(runs).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// BuildReportHTML renders a report for runs, swallowing render errors.
func BuildReportHTML(runs []Run) string {
	html, err := RenderReportHTML(context.Background(), runs)
	if err != nil {
		return ""
	}
	return html
}
