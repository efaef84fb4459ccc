// Package live renders eval run progress as an interactive terminal table.
package live

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"conclave/internal/council"
	"conclave/internal/harness"
)

const eventBuffer = 256

// Controller feeds run events into a bubbletea program. It implements
// harness.RunObserver so it can be passed straight to a suite run.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

var _ harness.RunObserver = (*Controller)(nil)

// Start launches the live view writing to stdout and returns its controller.
func Start(stdout io.Writer, opts Options) *Controller {
	events := make(chan Event, eventBuffer)
	program := tea.NewProgram(NewModel(events, opts), tea.WithOutput(stdout))
	c := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		defer close(c.done)
		_, _ = program.Run()
	}()
	return c
}

func (c *Controller) OnRunStart(tier string, mode council.Mode, total int) {
	c.send(Event{Kind: EventRunStart, Tier: tier, Mode: mode, Total: total})
}

func (c *Controller) OnTaskEvent(event harness.TaskEvent) {
	c.send(Event{Kind: EventTask, Task: event})
}

func (c *Controller) OnRunEnd(harness.EvalRun) {
	c.send(Event{Kind: EventRunEnd})
	c.Close()
}

// Close stops event delivery. The view quits once pending events drain.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the view has exited and the terminal is restored.
func (c *Controller) Wait() {
	<-c.done
}

// send never blocks; under backpressure events are dropped and the next
// tick repaints from the reduced state.
func (c *Controller) send(event Event) {
	select {
	case c.events <- event:
	default:
	}
}
