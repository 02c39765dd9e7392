// Package tui shows the station action popup.
package tui

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/station-menu/internal/errors"
	"github.com/cristianoliveira/station-menu/internal/menu"
	"github.com/cristianoliveira/station-menu/internal/station"
)

type mode int

const (
	modeMenu mode = iota
	modeFeedback
	modeConfirm
	modeDone
)

type actionItem struct {
	id    menu.ActionID
	label string
}

func (i actionItem) Title() string       { return i.label }
func (i actionItem) Description() string { return i.id.String() }
func (i actionItem) FilterValue() string { return i.label }

// notice collects what a handler reports through menu.Env while it runs
// outside the bubbletea loop. Questions are sent to the model on events and
// the handler blocks until the user answers.
type notice struct {
	events   chan tea.Msg
	message  string
	undo     func() error
	pinned   string
	pinnedAt string
}

// Confirm asks prompt inside the popup. It reports false when ctx ends first.
func (n *notice) Confirm(ctx context.Context, prompt string) bool {
	reply := make(chan bool, 1)
	select {
	case n.events <- confirmMsg{prompt: prompt, reply: reply, events: n.events}:
	case <-ctx.Done():
		return false
	}
	select {
	case ok := <-reply:
		return ok
	case <-ctx.Done():
		return false
	}
}

func (n *notice) Notify(message string, undo func() error) {
	n.message = message
	if undo != nil {
		n.undo = undo
	}
}

func (n *notice) ShortcutPinned(name, path string) {
	n.pinned = name
	n.pinnedAt = path
}

type dispatchedMsg struct {
	selection menu.ActionID
	result    menu.DispatchResult
	err       error
	notice    *notice
}

type confirmMsg struct {
	prompt string
	reply  chan<- bool
	events <-chan tea.Msg
}

type undoneMsg struct {
	err error
}

// Outcome is what the popup did once it closed.
type Outcome struct {
	Selection menu.ActionID
	Result    menu.DispatchResult
	Err       error
	Discarded bool
	Undone    bool
	Messages  []errors.Message
}

// Model is the bubbletea model of the popup. It owns one invocation.
type Model struct {
	ctx     context.Context
	inv     *menu.Invocation
	station *station.Station
	list    list.Model
	keys    keyMap
	mode    mode

	errorHandler *errors.TUIHandler
	status       errors.Message
	hasStatus    bool
	undo         func() error
	pending      *confirmMsg
	outcome      Outcome
}

// NewModel creates the popup for st over an open invocation.
func NewModel(ctx context.Context, inv *menu.Invocation, st *station.Station) *Model {
	if inv == nil {
		panic("NewModel: invocation cannot be nil")
	}
	items := make([]list.Item, 0, len(inv.Actions()))
	for _, id := range inv.Actions() {
		label, _ := inv.Label(id)
		items = append(items, actionItem{id: id, label: label})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, popupWidth, popupHeight)
	l.Title = st.Name
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	m := &Model{
		ctx:     ctx,
		inv:     inv,
		station: st,
		list:    l,
		keys:    defaultKeyMap(),
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.status = msg
		m.hasStatus = msg.Text != ""
	})
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case dispatchedMsg:
		return m.handleDispatched(msg)
	case confirmMsg:
		m.pending = &msg
		m.mode = modeConfirm
		return m, waitForEvent(msg.events)
	case undoneMsg:
		return m.handleUndone(msg)
	case tea.WindowSizeMsg:
		m.list.SetWidth(min(msg.Width, popupWidth))
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeConfirm:
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.answer(true)
		case key.Matches(msg, m.keys.No):
			m.answer(false)
		}
		return m, nil
	case modeFeedback:
		if m.undo != nil && key.Matches(msg, m.keys.Undo) {
			undo := m.undo
			m.undo = nil
			return m, func() tea.Msg { return undoneMsg{err: undo()} }
		}
		if key.Matches(msg, m.keys.Close) {
			return m.finish()
		}
		return m, nil
	case modeDone:
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Discard):
		if m.inv.Discard() {
			m.outcome.Discarded = true
		}
		return m.finish()
	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(actionItem)
		if !ok {
			return m, nil
		}
		return m, m.dispatch(item.id)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) answer(ok bool) {
	if m.pending != nil {
		m.pending.reply <- ok
		m.pending = nil
	}
	m.mode = modeMenu
}

// dispatch runs the handler off the update loop. A second enter produces a
// second command whose dispatch is rejected by the invocation.
func (m *Model) dispatch(id menu.ActionID) tea.Cmd {
	ctx, inv, st := m.ctx, m.inv, m.station
	return func() tea.Msg {
		events := make(chan tea.Msg, 1)
		n := &notice{events: events}
		go func() {
			res, err := inv.Dispatch(ctx, id, st, menu.Env{Anchor: n, PinListener: n})
			events <- dispatchedMsg{selection: id, result: res, err: err, notice: n}
		}()
		return <-events
	}
}

// waitForEvent delivers the next message a running handler sends.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

func (m *Model) handleDispatched(msg dispatchedMsg) (tea.Model, tea.Cmd) {
	if stderrors.Is(msg.err, menu.ErrInvocationReused) {
		return m, nil
	}
	m.outcome.Selection = msg.selection
	m.outcome.Result = msg.result
	m.outcome.Err = msg.err

	switch {
	case msg.err != nil:
		m.errorHandler.Error(msg.err.Error())
	case msg.result == menu.Unhandled:
		m.errorHandler.Warning(fmt.Sprintf("%s is not available", msg.selection))
	case msg.notice.pinnedAt != "":
		m.errorHandler.Success(fmt.Sprintf("Pinned %s at %s", msg.notice.pinned, msg.notice.pinnedAt))
	case msg.notice.message != "":
		m.errorHandler.Success(msg.notice.message)
	default:
		label, _ := m.inv.Label(msg.selection)
		m.errorHandler.Success(label)
	}

	if msg.err == nil && msg.notice.undo != nil {
		m.undo = msg.notice.undo
		m.mode = modeFeedback
		return m, nil
	}
	if msg.err != nil || msg.result == menu.Unhandled {
		m.mode = modeFeedback
		return m, nil
	}
	return m.finish()
}

func (m *Model) handleUndone(msg undoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorHandler.Error(fmt.Sprintf("undo failed: %v", msg.err))
		return m, nil
	}
	m.outcome.Undone = true
	m.errorHandler.Info("Undone")
	return m.finish()
}

func (m *Model) finish() (tea.Model, tea.Cmd) {
	m.mode = modeDone
	return m, tea.Quit
}

// Outcome returns what happened in the popup.
func (m *Model) Outcome() Outcome {
	out := m.outcome
	out.Messages = m.errorHandler.All()
	return out
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == modeDone {
		return ""
	}
	var b strings.Builder
	switch m.mode {
	case modeMenu:
		b.WriteString(m.list.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(helpLine(m.keys.Select, m.keys.Discard)))
	case modeConfirm:
		b.WriteString(titleStyle.Render(m.station.Name))
		b.WriteString("\n\n")
		b.WriteString(m.pending.prompt)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(helpLine(m.keys.Yes, m.keys.No)))
		return frameStyle.Render(b.String())
	default:
		b.WriteString(titleStyle.Render(m.station.Name))
		b.WriteString("\n\n")
	}
	if m.hasStatus {
		b.WriteString("\n")
		b.WriteString(statusStyles[m.status.Type].Render(m.status.Text))
	}
	if m.mode == modeFeedback {
		b.WriteString("\n")
		if m.undo != nil {
			b.WriteString(helpStyle.Render(helpLine(m.keys.Undo, m.keys.Close)))
		} else {
			b.WriteString(helpStyle.Render(helpLine(m.keys.Close)))
		}
	}
	return frameStyle.Render(b.String())
}

// Run shows the popup until the user picks an action or closes it.
func Run(ctx context.Context, inv *menu.Invocation, st *station.Station, opts ...tea.ProgramOption) (Outcome, error) {
	// Cancelled on return so a handler still waiting for an answer gives up.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	m := NewModel(ctx, inv, st)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		inv.Discard()
		return m.Outcome(), fmt.Errorf("tui: %w", err)
	}
	// Closing the terminal without a key still releases the invocation.
	inv.Discard()
	return m.Outcome(), nil
}
