package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/tempo/internal/cues"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/engine"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// tickInterval is the display refresh cadence. Correctness never depends on
// it: the engine derives remaining time from the end timestamp, so a missed
// or late tick self-corrects on the next one.
const tickInterval = 200 * time.Millisecond

type tickMsg struct{ seq int }

// motivationMsg and celebrationMsg carry async advisory results back into
// the update loop, tagged with the session sequence captured at dispatch.
type motivationMsg struct {
	seq  int
	text string
}

type celebrationMsg struct {
	seq  int
	text string
}

// timerModel is the bubbletea model for the interactive timer. The engine
// owns all lifecycle and countdown state; the model owns presentation and
// tick scheduling.
type timerModel struct {
	app *App
	eng *engine.Engine

	form      *huh.Form
	category  *string
	duration  *string
	intention *string

	progress progress.Model
	prefs    domain.Prefs

	// tickSeq invalidates outstanding scheduled ticks: every transition
	// that halts or restarts ticking bumps it, and stale tickMsgs are
	// dropped on arrival. This guarantees a single live ticker.
	tickSeq int

	width    int
	errText  string
	quitting bool
}

func newTimerModel(app *App, eng *engine.Engine, prefs domain.Prefs) *timerModel {
	m := &timerModel{
		app:      app,
		eng:      eng,
		prefs:    prefs,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.rebuildForm(prefs.DefaultCategory, prefs.DefaultDurationMin, "")
	return m
}

// runTimer wires the engine to the terminal and runs the TUI.
func runTimer(app *App) error {
	prefs := domain.DefaultPrefs()
	if p, err := app.Prefs.Get(context.Background()); err == nil {
		prefs = *p
	}

	eng := engine.New(
		cues.NewTerminal(os.Stderr, prefs.SoundEnabled),
		app.Sessions,
		engine.WithLogf(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}),
	)

	p := tea.NewProgram(newTimerModel(app, eng, prefs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// rebuildForm creates a fresh setup form pre-filled with the given values.
func (m *timerModel) rebuildForm(category domain.Category, durationMin int, intention string) {
	m.category = new(string)
	m.duration = new(string)
	m.intention = new(string)
	*m.category = string(category)
	*m.duration = strconv.Itoa(durationMin)
	*m.intention = intention

	options := make([]huh.Option[string], 0, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		options = append(options, huh.NewOption(CategoryLabel(c), string(c)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(m.category),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("25").
				Value(m.duration).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Intention (optional)").
				Placeholder("What is this session for?").
				CharLimit(domain.MaxIntentionLen).
				Value(m.intention),
		),
	).WithShowHelp(false)
}

func (m *timerModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 8
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.progress.Width = w
		}

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tickMsg:
		if msg.seq != m.tickSeq {
			return m, nil // stale tick from a halted run
		}
		if m.eng.Tick(context.Background()) {
			seq := m.eng.Seq()
			category := m.eng.Session().Category
			return m, m.fetchCelebration(seq, category)
		}
		return m, m.scheduleTick()

	case motivationMsg:
		m.eng.AttachMotivation(msg.seq, msg.text)
		return m, nil

	case celebrationMsg:
		m.eng.AttachCelebration(msg.seq, msg.text)
		return m, nil
	}

	if m.eng.State() == engine.StateSetup {
		return m, m.updateForm(msg)
	}
	return m, nil
}

// handleKey processes control keys. Keys are only intercepted outside
// SETUP, where the form needs raw input; ctrl+c always quits.
func (m *timerModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit, true
	}
	if m.eng.State() == engine.StateSetup {
		return nil, false
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return tea.Quit, true

	case " ":
		switch m.eng.State() {
		case engine.StateRunning:
			m.eng.Pause()
			m.tickSeq++ // halt the outstanding ticker
			return nil, true
		case engine.StatePaused:
			m.eng.Resume()
			return m.scheduleTick(), true
		}
		return nil, true

	case "a":
		if m.eng.State() == engine.StateRunning || m.eng.State() == engine.StatePaused {
			m.eng.Abandon()
			m.tickSeq++
			s := m.eng.Session()
			m.rebuildForm(s.Category, s.DurationMinutes, s.Intention)
			return m.form.Init(), true
		}
		return nil, true

	case "enter":
		if m.eng.State() == engine.StateCompleted {
			m.eng.Reset()
			s := m.eng.Session()
			m.rebuildForm(s.Category, s.DurationMinutes, s.Intention)
			return m.form.Init(), true
		}
		return nil, true
	}
	return nil, false
}

// updateForm advances the setup form and starts the session on completion.
func (m *timerModel) updateForm(msg tea.Msg) tea.Cmd {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State != huh.StateCompleted {
		return cmd
	}
	return tea.Batch(cmd, m.startSession())
}

// startSession reads the completed form and transitions the engine to
// RUNNING, dispatching the first tick and, when an intention was given,
// the advisory fetch.
func (m *timerModel) startSession() tea.Cmd {
	category, _ := domain.ParseCategory(*m.category)
	minutes, err := strconv.Atoi(*m.duration)
	if err != nil {
		minutes = 0 // rejected by the engine below
	}
	intention := *m.intention

	if err := m.eng.Start(category, minutes, intention); err != nil {
		m.errText = err.Error()
		m.rebuildForm(category, m.prefs.DefaultDurationMin, intention)
		return m.form.Init()
	}
	m.errText = ""

	// Remember this configuration for the next run. Best-effort.
	m.prefs.DefaultCategory = category
	m.prefs.DefaultDurationMin = minutes
	_ = m.app.Prefs.Save(context.Background(), &m.prefs)

	cmds := []tea.Cmd{m.scheduleTick()}
	if intention != "" {
		cmds = append(cmds, m.fetchMotivation(m.eng.Seq(), m.eng.Session()))
	}
	return tea.Batch(cmds...)
}

// scheduleTick arms the next display tick for the current ticker sequence.
func (m *timerModel) scheduleTick() tea.Cmd {
	m.tickSeq++
	seq := m.tickSeq
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

func (m *timerModel) fetchMotivation(seq int, s domain.FocusSession) tea.Cmd {
	return func() tea.Msg {
		tip := m.app.Motivation.MotivationalTip(context.Background(), s.Category, s.DurationMinutes, s.Intention)
		return motivationMsg{seq: seq, text: tip}
	}
}

func (m *timerModel) fetchCelebration(seq int, category domain.Category) tea.Cmd {
	return func() tea.Msg {
		msg := m.app.Motivation.CelebrationMessage(context.Background(), category)
		return celebrationMsg{seq: seq, text: msg}
	}
}

// validatePositiveInt accepts strictly positive integers.
func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number of minutes")
	}
	return nil
}
