// Package app contains the root application model: the main view with its
// buttons and the bottom sheet drawn over it.
package app

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/sheets/internal/config"
	"github.com/zjrosen/sheets/internal/flags"
	"github.com/zjrosen/sheets/internal/keys"
	"github.com/zjrosen/sheets/internal/log"
	"github.com/zjrosen/sheets/internal/pubsub"
	"github.com/zjrosen/sheets/internal/sheet"
	"github.com/zjrosen/sheets/internal/ui/markdown"
	"github.com/zjrosen/sheets/internal/ui/overlay"
	"github.com/zjrosen/sheets/internal/ui/screens"
	"github.com/zjrosen/sheets/internal/ui/styles"
	"github.com/zjrosen/sheets/internal/ui/toaster"
	"github.com/zjrosen/sheets/internal/watcher"
)

// buttonCount is the number of "Open bottom sheet" buttons on the main view.
const buttonCount = 3

// minSheetHeight keeps the handle, close button and text visible on tiny terminals.
const minSheetHeight = 4

// Loader re-reads configuration when the config file changes.
type Loader func() (config.Config, error)

// Options configures a new Model.
type Options struct {
	Config config.Config
	// ConfigPath is watched for changes when the config-reload flag is on.
	// Empty disables watching.
	ConfigPath string
	// Loader overrides how the config is re-read. Defaults to config.Load(ConfigPath).
	Loader Loader
}

// Model is the root application state.
type Model struct {
	sheet sheet.Controller

	cfg      config.Config
	flags    *flags.Registry
	keys     keys.KeyMap
	help     help.Model
	renderer *markdown.Renderer
	loader   Loader

	// Global state
	width  int
	height int
	focus  int
	status string

	toaster toaster.Model

	// Sheet state subscription
	listenerCtx    context.Context
	listenerCancel context.CancelFunc
	listener       *pubsub.ContinuousListener[sheet.StateEvent]

	// Config file watcher for live reload
	watcherHandle *watcher.Watcher
	watcherCh     <-chan struct{}
}

// New creates the application model.
func New(opts Options) Model {
	cfg := opts.Config
	applyTheme(cfg.Theme)

	loader := opts.Loader
	if loader == nil && opts.ConfigPath != "" {
		path := opts.ConfigPath
		loader = func() (config.Config, error) { return config.Load(path) }
	}

	registry := flags.New(cfg.FlagValues())

	var (
		watcherHandle *watcher.Watcher
		watcherCh     <-chan struct{}
	)
	if opts.ConfigPath != "" && registry.Enabled(flags.FlagConfigReload) {
		w, err := watcher.New(watcher.Config{Path: opts.ConfigPath})
		if err == nil {
			ch, err := w.Start()
			if err == nil {
				watcherHandle, watcherCh = w, ch
			} else {
				log.ErrorErr(log.CatWatcher, "Failed to start config watcher", err)
				_ = w.Stop()
			}
		} else {
			log.ErrorErr(log.CatWatcher, "Failed to create config watcher", err)
		}
		// The app works without live reload
	}

	controller := sheet.New(cfg.Sheet.Animation())
	ctx, cancel := context.WithCancel(context.Background())

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle
	h.Styles.ShortDesc = styles.HelpStyle

	return Model{
		sheet:          controller,
		cfg:            cfg,
		flags:          registry,
		keys:           keys.DefaultKeyMap(),
		help:           h,
		renderer:       markdown.New(cfg.UI.MarkdownStyle),
		loader:         loader,
		status:         "ready",
		toaster:        toaster.New(),
		listenerCtx:    ctx,
		listenerCancel: cancel,
		listener:       pubsub.NewContinuousListener(ctx, controller.Events()),
		watcherHandle:  watcherHandle,
		watcherCh:      watcherCh,
	}
}

// Init implements tea.Model. It starts listening for sheet state changes
// and, when enabled, config file changes.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listener.Listen()}
	if m.watcherHandle != nil {
		cmds = append(cmds, m.watcherHandle.WaitCmd(m.watcherCh))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The controller sees every message so the collapse rule is applied
	// whatever caused the collapse.
	var sheetCmd tea.Cmd
	m.sheet, sheetCmd = m.sheet.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case pubsub.Event[sheet.StateEvent]:
		m.status = describe(msg)
		return m, m.listener.Listen()

	case watcher.ChangedMsg:
		var toastCmd tea.Cmd
		m, toastCmd = m.reload()
		if m.watcherHandle == nil {
			return m, toastCmd
		}
		return m, tea.Batch(toastCmd, m.watcherHandle.WaitCmd(m.watcherCh))

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, sheetCmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Close):
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Close()
		return m, cmd

	case key.Matches(msg, m.keys.Dismiss):
		if !m.sheet.Visible() {
			return m, nil
		}
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.SetVisibility(sheet.Collapsed)
		return m, cmd

	case key.Matches(msg, m.keys.OpenOne):
		return m.open(0)
	case key.Matches(msg, m.keys.OpenTwo):
		return m.open(1)
	case key.Matches(msg, m.keys.OpenThree):
		return m.open(2)

	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % buttonCount
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + buttonCount - 1) % buttonCount
		return m, nil
	case key.Matches(msg, m.keys.Activate):
		return m.open(m.focus)
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.sheet.Visible() {
		return m.handleSheetMouse(msg)
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	for i := range buttonCount {
		if z := zone.Get(buttonZoneID(i)); z != nil && z.InBounds(msg) {
			return m.open(i)
		}
	}
	return m, nil
}

// handleSheetMouse handles mouse input while the sheet covers the main
// view. The main view is behind a barrier: a click there is a tap outside.
func (m Model) handleSheetMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		if z := zone.Get(screens.CloseZoneID); z != nil && z.InBounds(msg) {
			var cmd tea.Cmd
			m.sheet, cmd = m.sheet.Close()
			return m, cmd
		}
		if msg.Y < m.sheetTop() && m.flags.Enabled(flags.FlagTapOutsideDismiss) {
			log.Debug(log.CatUI, "tap outside sheet", "y", msg.Y, "top", m.sheetTop())
			var cmd tea.Cmd
			m.sheet, cmd = m.sheet.SetVisibility(sheet.Collapsed)
			return m, cmd
		}

	case msg.Button == tea.MouseButtonWheelDown:
		if msg.Y >= m.sheetTop() && m.flags.Enabled(flags.FlagDragDismiss) {
			log.Debug(log.CatUI, "drag down on sheet", "y", msg.Y)
			var cmd tea.Cmd
			m.sheet, cmd = m.sheet.SetVisibility(sheet.Collapsed)
			return m, cmd
		}
	}
	return m, nil
}

// open focuses button i and opens the sheet on its screen.
func (m Model) open(i int) (tea.Model, tea.Cmd) {
	m.focus = i
	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Open(m.screenFor(i))
	return m, cmd
}

func (m Model) screenFor(i int) sheet.Screen {
	switch i {
	case 0:
		return sheet.ScreenOne{}
	case 1:
		return sheet.ScreenTwo{}
	default:
		return sheet.ScreenThree{Argument: m.cfg.Screens.Argument}
	}
}

// reload re-reads the config and applies what can change at runtime.
// A failed reload keeps the current settings.
func (m Model) reload() (Model, tea.Cmd) {
	if m.loader == nil {
		return m, nil
	}
	var cmd tea.Cmd
	cfg, err := m.loader()
	if err != nil {
		log.ErrorErr(log.CatConfig, "Config reload failed", err)
		m.status = "config reload failed: " + err.Error()
		m.toaster, cmd = m.toaster.Show("Config reload failed", toaster.StyleError, toaster.DefaultTimeout)
		return m, cmd
	}

	applyTheme(cfg.Theme)
	m.sheet = m.sheet.SetConfig(cfg.Sheet.Animation())
	m.flags = flags.New(cfg.FlagValues())
	style := cfg.UI.MarkdownStyle
	if style == "" {
		style = markdown.DefaultStyle
	}
	switch {
	case style != m.renderer.Style():
		m.renderer = markdown.New(style)
	case cfg.UI.Intro != m.cfg.UI.Intro:
		// Renderings of the old intro would never be read again.
		m.renderer.Reset(context.Background())
	}
	m.cfg = cfg
	m.status = "config reloaded"
	m.toaster, cmd = m.toaster.Show("Config reloaded", toaster.StyleInfo, toaster.DefaultTimeout)

	log.Info(log.CatConfig, "Config reloaded", "argument", cfg.Screens.Argument)
	return m, cmd
}

// Sheet returns the sheet controller.
func (m Model) Sheet() sheet.Controller { return m.sheet }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.listenerCancel != nil {
		m.listenerCancel()
	}
	m.sheet.Dispose()

	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return fmt.Errorf("stopping config watcher: %w", err)
		}
	}
	return nil
}

func describe(e pubsub.Event[sheet.StateEvent]) string {
	return fmt.Sprintf("%s: %s, screen %s", e.Type, e.Payload.Visibility, e.Payload.Kind())
}

func applyTheme(t config.ThemeConfig) {
	styles.ApplyTheme(styles.Theme{
		Highlight:   t.Highlight,
		Subtle:      t.Subtle,
		ScreenOne:   t.ScreenOne,
		ScreenTwo:   t.ScreenTwo,
		ScreenThree: t.ScreenThree,
	})
}

// sheetHeight is the height of the fully expanded sheet.
func (m Model) sheetHeight() int {
	h := int(math.Round(m.cfg.Sheet.HeightRatio * float64(m.height)))
	return min(max(h, minSheetHeight), m.height)
}

// sheetRows is how many rows of the sheet are currently on screen.
func (m Model) sheetRows() int {
	if !m.sheet.Visible() {
		return 0
	}
	return int(math.Round(m.sheet.Progress() * float64(m.sheetHeight())))
}

// sheetTop is the first screen row covered by the sheet.
func (m Model) sheetTop() int {
	return m.height - m.sheetRows()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	view := m.mainView()
	if rows := m.sheetRows(); rows > 0 {
		view = overlay.Place(overlay.Config{
			Width:    m.width,
			Height:   m.height,
			Position: overlay.Bottom,
		}, overlay.Reveal(m.sheetView(), rows), view)
	}
	view = m.toaster.Overlay(view, m.width, m.height)

	return zone.Scan(view)
}

func (m Model) mainView() string {
	// The status bar sits at the top so the open sheet never covers it.
	var header string
	if m.cfg.UI.ShowStatusBar {
		header = styles.StatusBarStyle.Width(m.width).Render(m.status)
	}
	footer := m.help.View(m.keys)

	intro := m.renderer.RenderOrPlain(context.Background(), m.cfg.UI.Intro, m.width)

	buttons := make([]string, 0, buttonCount)
	for i := range buttonCount {
		style := styles.PrimaryButtonStyle
		if i == m.focus {
			style = styles.PrimaryButtonFocusedStyle
		}
		label := style.Render(fmt.Sprintf("Open bottom sheet %d", i+1))
		buttons = append(buttons, zone.Mark(buttonZoneID(i), label), "")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		intro,
		"",
		lipgloss.JoinVertical(lipgloss.Center, buttons...),
	)

	bodyHeight := m.height - lipgloss.Height(footer)
	if header != "" {
		bodyHeight -= lipgloss.Height(header)
	}
	body := lipgloss.Place(m.width, max(bodyHeight, 0), lipgloss.Center, lipgloss.Center, content)

	if header == "" {
		return lipgloss.JoinVertical(lipgloss.Left, body, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// sheetView renders the fully expanded sheet: a handle row above the
// selected screen with its close button.
func (m Model) sheetView() string {
	height := m.sheetHeight()
	handle := styles.SheetHandleStyle.
		Width(m.width).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", min(8, m.width)))

	panel := screens.Render(m.sheet.CurrentVariant(), m.width, height-1)
	return lipgloss.JoinVertical(lipgloss.Left, handle, screens.WithCloseButton(panel, m.width))
}

func buttonZoneID(i int) string {
	return fmt.Sprintf("open-sheet-%d", i+1)
}
