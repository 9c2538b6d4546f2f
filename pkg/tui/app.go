// Package tui hosts the Bubble Tea program for the reflect UI: the daily
// form, the history browser, and the toast stack.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/reflect/pkg/app"
	"tableflip.dev/reflect/pkg/entry"
	"tableflip.dev/reflect/pkg/notify"
	"tableflip.dev/reflect/pkg/store"
	"tableflip.dev/reflect/pkg/timeutil"
)

type mode int

const (
	modeNav mode = iota
	modeEdit
)

// fieldCount is the number of daily questions on the form.
const fieldCount = 3

var questions = [fieldCount]string{
	"What went well today?",
	"What made you anxious today?",
	"What could you improve tomorrow?",
}

var fieldNames = [fieldCount]string{
	entry.FieldAchievements,
	entry.FieldAnxieties,
	entry.FieldImprovements,
}

type (
	tickMsg         time.Time
	toastChangedMsg struct{}
	storeChangedMsg struct {
		ok bool
	}
	submitResultMsg struct {
		err error
	}
)

// Model contains UI state. All journal state lives in the Service; the model
// only keeps what the terminal needs (inputs, focus, sizes).
type Model struct {
	svc   *app.Service
	queue *notify.Queue
	ctx   context.Context

	mode         mode
	fields       [fieldCount]textarea.Model
	focus        int
	fieldErrs    map[string]string
	history      viewport.Model
	historyWidth int
	historyDay   string

	width  int
	height int
	theme  Theme

	watch <-chan store.Event
}

// New creates a UI model backed by the Service. The queue must be the same
// notifier the Service pushes to, so toasts show up on screen.
func New(ctx context.Context, svc *app.Service, queue *notify.Queue) *Model {
	m := &Model{
		svc:   svc,
		queue: queue,
		ctx:   ctx,
		theme: Default(),
		history: viewport.New(
			viewport.WithWidth(1),
			viewport.WithHeight(1),
		),
	}
	if svc.Persistence != nil {
		// Outside edits to the store show up without restarting the UI.
		if ch, err := svc.Persistence.Watch(ctx); err == nil {
			m.watch = ch
		}
	}
	for i := range m.fields {
		ta := textarea.New()
		ta.Placeholder = placeholders[i]
		ta.CharLimit = entry.MaxFieldLen
		ta.ShowLineNumbers = false
		ta.SetWidth(60)
		ta.SetHeight(3)
		m.fields[i] = ta
	}
	return m
}

var placeholders = [fieldCount]string{
	"Share your wins, accomplishments, or positive moments from today...",
	"Share your worries, stress, or challenges you faced today...",
	"Think about small steps you can take to grow or do better tomorrow...",
}

// Run initializes the state machine and drives the program until quit.
func Run(ctx context.Context, svc *app.Service, queue *notify.Queue) error {
	if err := svc.Initialize(ctx); err != nil && !errors.Is(err, app.ErrInitialized) {
		return err
	}
	p := tea.NewProgram(New(ctx, svc, queue), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.waitForToast(), m.waitForStore())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) waitForToast() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case <-m.queue.Events():
			return toastChangedMsg{}
		}
	}
}

func (m *Model) waitForStore() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	ch := m.watch
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case _, ok := <-ch:
			return storeChangedMsg{ok: ok}
		}
	}
}

func (m *Model) submitCmd(f entry.Form) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.Submit(m.ctx, f)
		return submitResultMsg{err: err}
	}
}

func (m *Model) form() entry.Form {
	return entry.Form{
		Achievements: m.fields[0].Value(),
		Anxieties:    m.fields[1].Value(),
		Improvements: m.fields[2].Value(),
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()

	case tickMsg:
		// Day rollover and toast countdowns surface on the next render.
		cmds = append(cmds, m.tick())

	case toastChangedMsg:
		cmds = append(cmds, m.waitForToast())

	case storeChangedMsg:
		if msg.ok {
			if err := m.svc.Reload(m.ctx); err == nil {
				m.refreshHistory()
			}
			cmds = append(cmds, m.waitForStore())
		}

	case submitResultMsg:
		if msg.err == nil {
			for i := range m.fields {
				m.fields[i].Reset()
				m.fields[i].Blur()
			}
			m.fieldErrs = nil
			m.mode = modeNav
			m.refreshHistory()
		}
		// Failures surface through the toast queue; the form keeps its
		// answers so the user can retry.

	case tea.KeyPressMsg:
		if m.mode == modeEdit {
			if handled, cmd := m.handleEditKey(msg); handled {
				return m, cmd
			}
			var cmd tea.Cmd
			m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
			delete(m.fieldErrs, fieldNames[m.focus])
			return m, cmd
		}
		if cmd, quit := m.handleNavKey(msg); quit {
			return m, tea.Quit
		} else if cmd != nil {
			return m, cmd
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	return m, tea.Batch(cmds...)
}

// handleNavKey routes keys outside the form editor. The second result
// requests quit.
func (m *Model) handleNavKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		return nil, true
	case "t":
		m.svc.SwitchView(app.ViewToday)
	case "h":
		m.svc.SwitchView(app.ViewHistory)
		m.refreshHistory()
	case "x":
		if active := m.queue.Active(); len(active) > 0 {
			m.queue.Dismiss(active[0].ID)
		}
	case "enter", "i":
		st := m.svc.Snapshot()
		if st.View == app.ViewToday && !st.HasSubmittedToday && !st.Submitting {
			m.mode = modeEdit
			m.focus = 0
			return m.focusField(0), false
		}
	}
	return nil, false
}

// handleEditKey consumes form-level keys; unhandled keys fall through to the
// focused textarea.
func (m *Model) handleEditKey(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNav
		m.fields[m.focus].Blur()
		return true, nil
	case "tab":
		return true, m.focusField((m.focus + 1) % fieldCount)
	case "shift+tab":
		return true, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	case "ctrl+s":
		f := m.form()
		if errs := f.Validate(); len(errs) > 0 {
			m.fieldErrs = f.FieldErrors()
			return true, nil
		}
		m.fieldErrs = nil
		m.fields[m.focus].Blur()
		m.mode = modeNav
		return true, m.submitCmd(f)
	}
	return false, nil
}

func (m *Model) focusField(i int) tea.Cmd {
	m.fields[m.focus].Blur()
	m.focus = i
	return m.fields[i].Focus()
}

func (m *Model) applySizes() {
	w := m.width - 6
	if w < 30 {
		w = 30
	}
	if w > 76 {
		w = 76
	}
	for i := range m.fields {
		m.fields[i].SetWidth(w)
	}
	m.history.SetWidth(max(m.width-2, 20))
	m.history.SetHeight(max(m.height-7, 5))
	m.historyWidth = max(m.width-6, 20)
	m.refreshHistory()
}

// refreshHistory re-renders the history content. Cached by day so the
// relative-time column stays honest across midnight.
func (m *Model) refreshHistory() {
	st := m.svc.Snapshot()
	m.historyDay = timeutil.Today()
	m.history.SetContent(renderHistory(m.theme, st.Reflections, max(m.historyWidth, 20)))
	m.history.SetYOffset(0)
}

func renderHistory(th Theme, entries []*entry.Entry, width int) string {
	if len(entries) == 0 {
		return th.Hint.Render("No reflections yet. Press t to answer today's questions.")
	}
	now := time.Now()
	var b strings.Builder
	for i, e := range entries {
		if e == nil {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		header := th.EntryDate.Render(timeutil.DisplayDate(e.Date)) +
			"  " + th.EntryWhen.Render(timeutil.TimeAgo(e.Date, now))
		b.WriteString(header + "\n")
		b.WriteString(renderAnswer(th, questions[0], e.Achievements, width))
		b.WriteString(renderAnswer(th, questions[1], e.Anxieties, width))
		b.WriteString(renderAnswer(th, questions[2], e.Improvements, width))
	}
	return b.String()
}

func renderAnswer(th Theme, question, answer string, width int) string {
	var b strings.Builder
	b.WriteString(th.Question.Render(question) + "\n")
	for _, line := range strings.Split(wordwrap.String(answer, width), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func (m *Model) View() string {
	st := m.svc.Snapshot()

	var sections []string
	if toasts := renderToasts(m.theme, m.queue.Active()); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.header(st))

	switch st.View {
	case app.ViewHistory:
		if m.historyDay != timeutil.Today() {
			m.refreshHistory()
		}
		sections = append(sections, m.history.View())
	default:
		if st.HasSubmittedToday {
			sections = append(sections, m.completedView(st))
		} else {
			sections = append(sections, m.formView(st))
		}
	}

	sections = append(sections, m.footer(st))
	return strings.Join(sections, "\n")
}

func (m *Model) header(st app.State) string {
	todayTab := m.theme.TabInactive.Render("today (t)")
	historyTab := m.theme.TabInactive.Render("history (h)")
	if st.View == app.ViewHistory {
		historyTab = m.theme.TabActive.Render("history")
	} else {
		todayTab = m.theme.TabActive.Render("today")
	}
	title := m.theme.Header.Render("Daily Reflection")
	date := m.theme.Hint.Render(timeutil.DisplayDate(timeutil.Today()))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", todayTab, historyTab, "  ", date)
}

func (m *Model) formView(st app.State) string {
	var b strings.Builder
	for i := range m.fields {
		style := m.theme.FieldFrame
		if m.mode == modeEdit && m.focus == i {
			style = m.theme.FieldFocused
		}
		b.WriteString(m.theme.Question.Render(questions[i]) + "\n")
		b.WriteString(style.Render(m.fields[i].View()) + "\n")
		if msg, ok := m.fieldErrs[fieldNames[i]]; ok {
			b.WriteString(m.theme.FieldError.Render(msg) + "\n")
		}
	}

	if st.Submitting {
		b.WriteString(m.theme.Hint.Render("Saving your reflection...") + "\n")
	} else {
		answered := answeredCount(m.form())
		b.WriteString(m.theme.Progress.Render(
			fmt.Sprintf("%d of %d answered", answered, fieldCount)) + "\n")
	}
	return b.String()
}

func (m *Model) completedView(st app.State) string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Today's reflection is complete.") + "\n\n")
	if st.Today != nil {
		width := max(m.width-6, 30)
		b.WriteString(renderAnswer(m.theme, questions[0], st.Today.Achievements, width))
		b.WriteString(renderAnswer(m.theme, questions[1], st.Today.Anxieties, width))
		b.WriteString(renderAnswer(m.theme, questions[2], st.Today.Improvements, width))
		if !st.Today.Created.IsZero() {
			b.WriteString(m.theme.Hint.Render(
				"Written at "+st.Today.Created.Local().Format("3:04 PM")) + "\n")
		}
	}
	return b.String()
}

func (m *Model) footer(st app.State) string {
	var help string
	if m.mode == modeEdit {
		help = "tab next · shift+tab prev · ctrl+s save · esc done"
	} else if st.View == app.ViewHistory {
		help = "t today · ↑/↓ scroll · x dismiss toast · q quit"
	} else if st.HasSubmittedToday {
		help = "h history · q quit"
	} else {
		help = "enter answer · h history · q quit"
	}
	count := ""
	if n := len(st.Reflections); n == 1 {
		count = "1 reflection saved"
	} else if n > 1 {
		count = fmt.Sprintf("%d reflections saved", n)
	}
	return m.theme.Footer.Render(help + "   " + count)
}

// answeredCount reports how many of the three answers have content.
func answeredCount(f entry.Form) int {
	n := 0
	for _, v := range []string{f.Achievements, f.Anxieties, f.Improvements} {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

// renderToasts draws the active notification stack, oldest first. Expiring
// toasts fade before they disappear.
func renderToasts(th Theme, active []notify.Notification) string {
	if len(active) == 0 {
		return ""
	}
	lines := make([]string, 0, len(active))
	for _, n := range active {
		style := th.ToastInfo
		marker := "ℹ"
		switch n.Kind {
		case notify.KindSuccess:
			style = th.ToastSuccess
			marker = "✔"
		case notify.KindError:
			style = th.ToastError
			marker = "✘"
		}
		if n.Expiring {
			style = th.ToastFading
		}
		lines = append(lines, style.Render(marker+" "+n.Message))
	}
	return strings.Join(lines, "\n")
}
