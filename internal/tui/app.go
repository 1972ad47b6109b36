package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/pyrite/internal/catalog"
	"github.com/jask/pyrite/internal/config"
	"github.com/jask/pyrite/internal/ledger"
	"github.com/jask/pyrite/internal/logging"
	"github.com/jask/pyrite/internal/week"
)

// Options carries what the app needs. Now defaults to the wall clock.
type Options struct {
	Config  config.Config
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger
	Policy  week.Policy
	Now     func() time.Time
}

// App is the bubbletea model of the weekly tracker.
type App struct {
	ctx     context.Context
	cfg     config.Config
	log     zerolog.Logger
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	policy  week.Policy
	now     func() time.Time
	keys    *KeyRegistry

	menu    *Menu
	entry   Entry
	hint    *Timer
	pointer time.Time // start of the displayed week

	width     int
	height    int
	status    string
	statusErr bool

	// Committed purchases not yet saved, and the batch being saved.
	pending  []ledger.Purchase
	inflight []ledger.Purchase
}

func New(ctx context.Context, opts Options) (*App, error) {
	if opts.Catalog == nil || opts.Ledger == nil {
		return nil, errors.New("tui: catalog and ledger are required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	bindings, err := ApplyActionKeybindings(DefaultKeyBindings(), opts.Config.Keys)
	if err != nil {
		return nil, err
	}
	a := &App{
		ctx:     ctx,
		cfg:     opts.Config,
		log:     logging.Component("tui"),
		catalog: opts.Catalog,
		ledger:  opts.Ledger,
		policy:  opts.Policy,
		now:     opts.Now,
		keys:    NewKeyRegistry(bindings),
		menu:    NewMenu(opts.Catalog.Names()),
		hint:    NewTimer(opts.Config.UI.HintTimeout, opts.Now),
	}
	a.resetPointer()
	return a, nil
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case savedMsg:
		return a, a.handleSaved(m)
	case hintExpiredMsg:
		if m.started.Equal(a.hint.Started()) {
			a.hint.Expire()
		}
	case RolloverMsg:
		a.log.Info().Time("week", a.policy.StartOfWeek(a.now())).Msg("week rollover")
		a.resetPointer()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	switch a.keys.Action(m) {
	case actionQuit:
		return tea.Quit
	case actionUp:
		a.menu.Previous()
		return a.showHint()
	case actionDown:
		a.menu.Next()
		return a.showHint()
	case actionFirst:
		a.menu.First()
		return a.showHint()
	case actionLast:
		a.menu.Last()
		return a.showHint()
	case actionPrevWeek:
		a.pointer = a.policy.Shift(a.pointer, -1)
	case actionNextWeek:
		a.pointer = a.policy.Shift(a.pointer, 1)
	case actionCommit:
		return a.commit()
	case actionBackspace:
		a.entry.Backspace()
	case actionClear:
		a.entry.Clear()
	default:
		if m.Type == tea.KeyRunes {
			a.entry.Add(string(m.Runes))
		}
	}
	return nil
}

// showHint restarts the hint popup and schedules its expiry redraw.
func (a *App) showHint() tea.Cmd {
	if a.hint.Duration <= 0 {
		return nil
	}
	a.hint.Start()
	started := a.hint.Started()
	return tea.Tick(a.hint.Duration, func(time.Time) tea.Msg {
		return hintExpiredMsg{started: started}
	})
}

func (a *App) resetPointer() {
	a.pointer = a.policy.StartOfWeek(a.now())
}

// commit records the buffered amount against the focused category and
// starts a save.
func (a *App) commit() tea.Cmd {
	if a.entry.Empty() {
		return nil
	}
	category := a.menu.Selected()
	if category == "" {
		a.setError(errors.New("no categories to add to"))
		return nil
	}
	amount, err := a.entry.Amount()
	if err != nil {
		a.setError(err)
		return nil
	}
	p := a.ledger.Append(category, amount)
	a.entry.Clear()
	a.resetPointer()
	a.pending = append(a.pending, p)
	a.setStatus(fmt.Sprintf("added %s to %s", amount, category))
	a.log.Debug().Str("category", category).Str("cost", amount.Plain()).Msg("purchase added")
	return a.flush()
}

// flush saves a snapshot holding every pending purchase. At most one save
// is in flight; purchases committed meanwhile go out with the next one.
func (a *App) flush() tea.Cmd {
	if a.inflight != nil || len(a.pending) == 0 {
		return nil
	}
	if !a.ledger.Bound() {
		a.dropBatch(a.pending, ledger.ErrPersistenceUnavailable)
		a.pending = nil
		return nil
	}
	a.inflight, a.pending = a.pending, nil
	ctx, store, records, batch := a.ctx, a.ledger.Store(), a.ledger.Snapshot(), a.inflight
	return func() tea.Msg {
		return savedMsg{purchases: batch, err: store.Save(ctx, records)}
	}
}

func (a *App) handleSaved(m savedMsg) tea.Cmd {
	a.inflight = nil
	if m.err != nil {
		a.dropBatch(m.purchases, m.err)
	} else {
		a.log.Debug().Int("purchases", len(m.purchases)).Msg("ledger saved")
	}
	return a.flush()
}

// dropBatch backs purchases out of the ledger after their save failed.
func (a *App) dropBatch(purchases []ledger.Purchase, err error) {
	for _, p := range purchases {
		a.ledger.Discard(p)
	}
	a.log.Error().Err(err).Int("dropped", len(purchases)).Msg("save failed")
	a.setError(fmt.Errorf("save failed, purchase not recorded: %w", err))
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = "error: " + err.Error()
	a.statusErr = true
}

// Pointer returns the start of the displayed week.
func (a *App) Pointer() time.Time { return a.pointer }

// Focused returns the focused category name.
func (a *App) Focused() string { return a.menu.Selected() }

// Status returns the status line text and whether it reports an error.
func (a *App) Status() (string, bool) { return a.status, a.statusErr }
