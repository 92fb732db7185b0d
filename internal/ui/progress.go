// Package ui renders live progress of a formatting run with Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"relaxfmt/internal/driver"
)

// fileState is what the view knows about one file of the run.
type fileState uint8

const (
	stateQueued fileState = iota
	stateFormatting
	stateUnchanged
	stateChanged
	stateCached
	stateCachedChanged
	stateError
)

var states = [...]struct {
	label string
	color lipgloss.Color
}{
	stateQueued:        {"queued", "7"},
	stateFormatting:    {"formatting", "6"},
	stateUnchanged:     {"unchanged", "2"},
	stateChanged:       {"changed", "3"},
	stateCached:        {"cached", "2"},
	stateCachedChanged: {"cached*", "3"},
	stateError:         {"error", "1"},
}

func (s fileState) String() string { return states[s].label }

func (s fileState) final() bool { return s >= stateUnchanged }

func stateOf(ev driver.ProgressEvent) fileState {
	switch ev.Status {
	case driver.ProgressWorking:
		return stateFormatting
	case driver.ProgressError:
		return stateError
	case driver.ProgressDone:
		switch {
		case ev.Cached && ev.Changed:
			return stateCachedChanged
		case ev.Cached:
			return stateCached
		case ev.Changed:
			return stateChanged
		}
		return stateUnchanged
	}
	return stateQueued
}

type fileItem struct {
	path    string
	state   fileState
	elapsed time.Duration
}

type progressModel struct {
	title   string
	events  <-chan driver.ProgressEvent
	spinner spinner.Model
	bar     progress.Model
	items   []fileItem
	index   map[string]int
	// counts per state, for the footer and the finished total
	counts [len(states)]int
	width  int
	done   bool
}

type eventMsg driver.ProgressEvent
type doneMsg struct{}

const statusWidth = 12

// NewProgressModel returns a Bubble Tea model listing files with their
// status above a progress bar. The model quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.ProgressEvent) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(states[stateFormatting].color)

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient()),
		items:   make([]fileItem, len(files)),
		index:   make(map[string]int, len(files)),
	}
	m.resize(80)
	for i, file := range files {
		m.items[i] = fileItem{path: file}
		m.index[file] = i
	}
	m.counts[stateQueued] = len(files)
	return m
}

func (m *progressModel) resize(width int) {
	m.width = width
	m.bar.Width = width - 4
}

func (m *progressModel) finished() int {
	n := 0
	for s, c := range m.counts {
		if fileState(s).final() {
			n += c
		}
	}
	return n
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.ProgressEvent(msg)), m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.resize(msg.Width)
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	header := fmt.Sprintf("%s (%d/%d)", m.title, m.finished(), len(m.items))
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-12, 20)
	for _, it := range m.items {
		status := lipgloss.NewStyle().Foreground(states[it.state].color).
			Render(fmt.Sprintf("%*s", statusWidth, it.state))
		fmt.Fprintf(&b, "  %s %s", status, truncate(it.path, nameWidth))
		if it.state.final() && it.elapsed > 0 {
			fmt.Fprintf(&b, "  %s", it.elapsed.Round(time.Millisecond))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.done {
		b.WriteString(m.bar.ViewAs(1.0))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	b.WriteString(m.footer())
	return b.String()
}

// footer: "changed 2 · unchanged 5 · error 1", zero counts omitted.
func (m *progressModel) footer() string {
	var parts []string
	for _, s := range []fileState{stateChanged, stateUnchanged, stateCached, stateCachedChanged, stateError} {
		if n := m.counts[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", s, n))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " · ") + "\n"
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) apply(ev driver.ProgressEvent) tea.Cmd {
	idx, ok := m.index[ev.Path]
	if !ok {
		return nil
	}
	it := &m.items[idx]
	m.counts[it.state]--
	it.state = stateOf(ev)
	it.elapsed = ev.Elapsed
	m.counts[it.state]++
	return m.bar.SetPercent(float64(m.finished()) / float64(len(m.items)))
}

// truncate fits value into width cells, marking the cut with "...".
func truncate(value string, width int) string {
	switch {
	case width <= 0:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
