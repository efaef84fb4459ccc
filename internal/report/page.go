package report

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// errWriter latches the first write error so render code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) raw(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

const pageStyle = `body { font-family: sans-serif; margin: 2em; color: #1a1a1a; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 0.35em 0.7em; text-align: left; }
th { background: #f0f0f0; }
h2 { margin-top: 2em; }
.ok { color: #1a7f37; }
.fail { color: #cf222e; }
.muted { color: #6e7781; }`

// ReportPage renders the full HTML report for a set of runs.
func ReportPage(runs []Run) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.raw("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Conclave Eval Report</title>\n")
		ew.printf("<style>%s</style>\n</head>\n<body>\n", pageStyle)
		ew.raw("<h1>Conclave Eval Report</h1>\n")
		if len(runs) == 0 {
			ew.raw("<p class=\"muted\">No runs found.</p>\n")
		} else {
			if err := summaryTable(runs).Render(ctx, w); err != nil {
				return err
			}
			for _, run := range runs {
				if err := runSection(run).Render(ctx, w); err != nil {
					return err
				}
			}
		}
		ew.raw("</body>\n</html>\n")
		return ew.err
	})
}

// summaryTable lists one row per run.
func summaryTable(runs []Run) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.raw("<table>\n<thead><tr><th>Run</th><th>Timestamp</th><th>Tier</th><th>Mode</th><th>Tasks</th><th>Success rate</th><th>Total (s)</th><th>Avg (s)</th></tr></thead>\n<tbody>\n")
		for _, run := range runs {
			if run.Error != "" {
				ew.printf("<tr><td>%s</td><td colspan=\"7\" class=\"fail\">%s</td></tr>\n",
					templ.EscapeString(run.Name()), templ.EscapeString(run.Error))
				continue
			}
			ew.printf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s%%</td><td>%s</td><td>%s</td></tr>\n",
				templ.EscapeString(run.Name()),
				run.Metadata.Timestamp.Format("2006-01-02 15:04:05"),
				templ.EscapeString(run.Metadata.Tier),
				templ.EscapeString(string(run.Metadata.Mode)),
				run.Summary.TotalTasks,
				formatPassRate(run.SuccessRate()),
				formatSeconds(run.Summary.TotalTimeSeconds),
				formatSeconds(run.Summary.AvgTimeSeconds))
		}
		ew.raw("</tbody>\n</table>\n")
		return ew.err
	})
}

// runSection renders one run's category and task breakdown.
func runSection(run Run) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if run.Error != "" {
			return nil
		}
		ew := &errWriter{w: w}
		ew.printf("<h2>%s</h2>\n", templ.EscapeString(run.Name()))
		chairman := run.Metadata.Chairman
		if chairman == "" {
			chairman = "N/A"
		}
		ew.printf("<p class=\"muted\">Tier %s, mode %s, chairman %s</p>\n",
			templ.EscapeString(run.Metadata.Tier),
			templ.EscapeString(string(run.Metadata.Mode)),
			templ.EscapeString(chairman))

		ew.raw("<table>\n<thead><tr><th>Category</th><th>Tasks</th><th>Successful</th><th>Success rate</th><th>Avg (s)</th></tr></thead>\n<tbody>\n")
		for _, stats := range run.ByCategory() {
			rate := 0.0
			if stats.Total > 0 {
				rate = float64(stats.Successful) / float64(stats.Total)
			}
			ew.printf("<tr><td>%s</td><td>%d</td><td>%d</td><td>%s%%</td><td>%s</td></tr>\n",
				templ.EscapeString(string(stats.Category)),
				stats.Total,
				stats.Successful,
				formatPassRate(rate),
				formatSeconds(round2(stats.AvgSeconds)))
		}
		ew.raw("</tbody>\n</table>\n")

		ew.raw("<table>\n<thead><tr><th>Task</th><th>Category</th><th>Difficulty</th><th>Status</th><th>Seconds</th></tr></thead>\n<tbody>\n")
		for _, result := range run.Results {
			status := "<span class=\"ok\">ok</span>"
			if !result.Success {
				status = fmt.Sprintf("<span class=\"fail\">failed: %s</span>", templ.EscapeString(result.Error))
			}
			ew.printf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				templ.EscapeString(result.TaskID),
				templ.EscapeString(string(result.Category)),
				templ.EscapeString(string(result.Difficulty)),
				status,
				formatSeconds(result.ElapsedSeconds))
		}
		ew.raw("</tbody>\n</table>\n")
		return ew.err
	})
}
