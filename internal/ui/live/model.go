package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultTickInterval = 200 * time.Millisecond

// Options configures the live view.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// EventMsg wraps a run event for the bubbletea loop.
type EventMsg struct {
	Event Event
}

type tickMsg time.Time

// Model renders run progress as a table that updates as events arrive.
type Model struct {
	state        State
	table        table.Model
	events       <-chan Event
	tickInterval time.Duration
	now          time.Time
	noColor      bool
}

// NewModel builds a live view model reading from the event channel.
func NewModel(events <-chan Event, opts Options) Model {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return Model{
		table:        newTable(),
		events:       events,
		tickInterval: interval,
		now:          time.Now(),
		noColor:      opts.NoColor,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tick(m.tickInterval))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetColumns(columnsForWidth(msg.Width))
		m.table.SetWidth(msg.Width)
		height := msg.Height - 5
		if height < 5 {
			height = 5
		}
		m.table.SetHeight(height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	case EventMsg:
		m = m.applyEvent(msg.Event)
		m.table.SetRows(rowsForState(m.state, m.now, m.noColor))
		if msg.Event.Kind == EventRunEnd {
			return m, tea.Quit
		}
		return m, waitForEvent(m.events)
	case tickMsg:
		m.now = time.Time(msg)
		m.table.SetRows(rowsForState(m.state, m.now, m.noColor))
		return m, tick(m.tickInterval)
	}
	return m, nil
}

func (m Model) applyEvent(event Event) Model {
	switch event.Kind {
	case EventRunStart:
		m.state.Tier = event.Tier
		m.state.Mode = event.Mode
		m.state.Total = event.Total
		if m.state.StartedAt.IsZero() {
			m.state.StartedAt = m.now
		}
	case EventTask:
		m.state = Reduce(m.state, event.Task)
	}
	return m
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.state, m.now, m.noColor),
		renderSummary(m.state, m.noColor),
		m.table.View(),
		renderFooter(m.state),
	)
}

// waitForEvent blocks on the next run event, quitting when the channel closes.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return EventMsg{Event: event}
	}
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
