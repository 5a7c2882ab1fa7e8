package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Browser layout constants
const (
	browserChrome = 8 // Title, borders and help
	maxReplays    = 100
)

// BrowserKeyMap defines the key bindings for the replay browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// RecordedConfig returns the game configuration rec was played under.
// Rounds stored without one fall back to cfg on the recorded board.
func RecordedConfig(cfg config.SnakeConfig, rec storage.RoundRecord) (config.SnakeConfig, error) {
	if rec.Config == "" {
		cfg.Board.Width, cfg.Board.Height = rec.BoardW, rec.BoardH
		return cfg, nil
	}
	recorded, err := config.Parse(rec.Config)
	if err != nil {
		return config.SnakeConfig{}, fmt.Errorf("tui: round %d: %w", rec.ID, err)
	}
	return recorded, nil
}

// ReplayRecord rebuilds a stored round headless under the configuration it
// was recorded with and returns its final snapshot.
func ReplayRecord(cfg config.SnakeConfig, rec storage.RoundRecord) (snake.Snapshot, error) {
	recorded, err := RecordedConfig(cfg, rec)
	if err != nil {
		return snake.Snapshot{}, err
	}
	j, err := snake.DecodeJournal(rec.Journal)
	if err != nil {
		return snake.Snapshot{}, fmt.Errorf("tui: round %d: %w", rec.ID, err)
	}
	return snake.Replay(recorded.Params(), rec.Seed, rec.Speed, j, max(rec.Ticks, 1))
}

// BrowserModel lists recorded rounds and lets the player pick one to watch.
type BrowserModel struct {
	config   config.SnakeConfig
	rounds   []storage.RoundRecord
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	width    int
	height   int
	selected int64
	quitting bool
}

// NewBrowserModel loads the most recent rounds from store.
func NewBrowserModel(ctx context.Context, store storage.RoundStore, cfg config.SnakeConfig, width, height int) (BrowserModel, error) {
	rounds, err := store.RecentRounds(ctx, maxReplays)
	if err != nil {
		return BrowserModel{}, fmt.Errorf("tui: %w", err)
	}

	m := BrowserModel{
		config: cfg,
		rounds: rounds,
		help:   help.New(),
		keys:   DefaultBrowserKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m, nil
}

func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Speed", Width: 6},
		{Title: "Score", Width: 6},
		{Title: "Ticks", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-browserChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		score := "?"
		if snap, err := ReplayRecord(m.config, r); err == nil {
			score = strconv.Itoa(snap.Score)
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			player,
			strconv.Itoa(r.Speed),
			score,
			strconv.FormatUint(r.Ticks, 10),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the browser.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.rounds) {
				m.selected = m.rounds[i].ID
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RECORDED ROUNDS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No rounds recorded yet.\nPlay a round to record one!")
	} else {
		content = m.table.View()
	}
	b.WriteString(centerText(tableStyle.Render(content), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the id of the round picked for watching, or 0.
func (m BrowserModel) Selected() int64 {
	return m.selected
}

// centerText centers every line of text within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunBrowser shows the replay browser and returns the picked round id.
// A zero id means the player left without picking.
func RunBrowser(ctx context.Context, store storage.RoundStore, cfg config.SnakeConfig, width, height int) (int64, error) {
	model, err := NewBrowserModel(ctx, store, cfg, width, height)
	if err != nil {
		return 0, err
	}

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
