package live

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const statusColumn = 4

func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Task", Width: 24},
		{Title: "Category", Width: 14},
		{Title: "Difficulty", Width: 10},
		{Title: "Status", Width: 30},
		{Title: "Time", Width: 8},
	}
}

// columnsForWidth widens the status column to fill the terminal.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	if width <= 0 {
		return columns
	}
	fixed := 0
	for i, column := range columns {
		if i != statusColumn {
			fixed += column.Width
		}
	}
	// Each cell carries two characters of padding.
	remaining := width - fixed - 2*len(columns)
	if remaining > columns[statusColumn].Width {
		columns[statusColumn].Width = remaining
	}
	return columns
}

func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			strconv.Itoa(row.Index),
			formatTaskName(row),
			string(row.Category),
			string(row.Difficulty),
			formatStatus(row, noColor),
			formatRowDuration(row, now),
		})
	}
	return rows
}

func newTable() table.Model {
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows(nil),
		table.WithFocused(false),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)
	return t
}
