package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"relaxfmt/internal/driver"
)

type formatOutcome struct {
	results []driver.FormatResult
	err     error
}

// RunFormat runs driver.FormatPaths for files while a progress view is
// drawn on out. It returns once both the run and the view have finished.
func RunFormat(ctx context.Context, out io.Writer, title string, files []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	// Every file emits three events; the buffer never blocks the workers.
	events := make(chan driver.ProgressEvent, 3*len(files)+1)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		optsCopy := opts
		next := opts.Progress
		optsCopy.Progress = func(ev driver.ProgressEvent) {
			if next != nil {
				next(ev)
			}
			events <- ev
		}
		results, err := driver.FormatPaths(ctx, files, optsCopy)
		outcomeCh <- formatOutcome{results: results, err: err}
		close(events)
	}()

	model := NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
