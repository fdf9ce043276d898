package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/paddyterm/internal/catalog"
	"github.com/muurk/paddyterm/internal/command"
	"github.com/muurk/paddyterm/internal/content"
	"github.com/muurk/paddyterm/internal/focus"
	"github.com/muurk/paddyterm/internal/logging"
	"github.com/muurk/paddyterm/internal/pane"
	"github.com/muurk/paddyterm/internal/render"
	"github.com/muurk/paddyterm/internal/surface"
)

// Options configures a Model.
type Options struct {
	Catalog   *catalog.Catalog
	Source    content.Source
	StartPage string
	Palette   surface.Palette
}

// Model is the Bubble Tea model of the browser.
type Model struct {
	opts  Options
	keys  keyMap
	bus   *command.Bus
	reg   *pane.Registry
	sched *render.Scheduler
	err   error
}

// New creates a model. Panes are built when the terminal size is known.
func New(opts Options) *Model {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.StartPage == "" {
		opts.StartPage = catalog.HomePageID
	}
	return &Model{opts: opts, keys: defaultKeyMap()}
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error { return m.err }

// Registry returns the panes, or nil before the first WindowSizeMsg.
func (m *Model) Registry() *pane.Registry { return m.reg }

// Scheduler returns the render scheduler, or nil before the first
// WindowSizeMsg.
func (m *Model) Scheduler() *render.Scheduler { return m.sched }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		size := surface.Size{Rows: msg.Height, Cols: msg.Width}
		if m.sched == nil {
			if err := m.start(size); err != nil {
				m.err = err
				logging.Error("Startup failed", zap.Error(err))
				return m, tea.Quit
			}
			return m, nil
		}
		if err := m.sched.Resize(size); err != nil {
			m.setStatus(fmt.Sprintf("terminal too small: %v", err))
			m.sched.UpdateRender()
			return m, nil
		}
		m.setStatus("")
		m.sched.UpdateRender()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.sched == nil {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Focus):
			m.sched.AdvanceFocus()
		default:
			k, ok := m.keys.paneKey(msg)
			if !ok {
				return m, nil
			}
			if err := m.sched.HandleKey(k); err != nil {
				m.setStatus(err.Error())
			} else {
				m.setStatus("")
			}
		}
		m.sched.UpdateRender()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.sched == nil {
		return ""
	}
	return m.sched.Screen().Frame()
}

// start builds the panes for the first known terminal size and loads the
// start page.
func (m *Model) start(size surface.Size) error {
	cat := m.opts.Catalog
	if !cat.Contains(m.opts.StartPage) {
		return fmt.Errorf("tui: start page %q is not in the menu", m.opts.StartPage)
	}

	bus := command.NewBus()
	tabs, err := pane.NewTabStrip(cat, bus, size)
	if err != nil {
		return err
	}
	reg := pane.NewRegistry(
		pane.NewHeader(size),
		pane.NewFooter(m.keys.hints(), size),
		pane.NewNavMenu(cat, bus, size),
		tabs,
		pane.NewContentList(pane.NavCols(cat), size),
	)
	ring := focus.NewRing(pane.NavMenuName, pane.TabStripName, pane.ContentListName)
	registerHandlers(bus, reg, m.opts.Source)

	m.bus = bus
	m.reg = reg
	m.sched = render.NewScheduler(surface.NewScreen(size, m.opts.Palette), reg, ring)

	if err := bus.Dispatch(command.LoadPage{Page: m.opts.StartPage}); err != nil {
		m.setStatus(err.Error())
	}
	m.sched.FullRender()
	return nil
}

func (m *Model) setStatus(msg string) {
	m.reg.Footer().SetStatus(msg)
}
