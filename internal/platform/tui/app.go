package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	startLabel = "[ START ]"

	// The configure form is a fixed-width block of rows centered on screen.
	configureWidth  = 28
	configureHeight = 5
	buttonRow       = 4

	saveTimeout = 5 * time.Second
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	buttonStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Observer is notified of round starts and of the events every tick emits.
type Observer interface {
	RoundStarted()
	ObserveEvents(events []core.Event)
}

type nopObserver struct{}

func (nopObserver) RoundStarted() {}

func (nopObserver) ObserveEvents([]core.Event) {}

// ReplaySpec describes a recorded round to play back instead of live input.
type ReplaySpec struct {
	Seed    int64
	Speed   int
	Journal *snake.Journal
	EndTick uint64
}

// Options configures an App.
type Options struct {
	Config config.SnakeConfig
	Seed   int64 // 0 means current time
	Width  int
	Height int

	Store  storage.RoundStore // nil disables recording
	Player string

	Sound    audio.Player
	Observer Observer
	Logger   *log.Logger

	// Speed skips the configure screen when positive.
	Speed int

	// Replay plays a recorded round back and exits when it ends.
	Replay *ReplaySpec
}

// App is the Bubble Tea model for one player's game.
type App struct {
	opts   Options
	keys   KeyMap
	help   help.Model
	input  textinput.Model
	round  *snake.Round
	buffer *keyBuffer
	source snake.InputSource
	screen *core.Screen
	logger *log.Logger
	rt     core.RuntimeConfig

	message  string
	quitting bool
}

// NewApp creates the model. The round is started right away when opts asks
// for a speed or a replay.
func NewApp(opts Options) (App, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	rt := opts.Config.RuntimeConfig(opts.Width, opts.Height, opts.Seed)
	round, err := snake.NewRound(opts.Config.Params(), rt.Seed)
	if err != nil {
		return App{}, fmt.Errorf("tui: %w", err)
	}

	input := textinput.New()
	input.Prompt = "Speed - "
	input.CharLimit = config.SpeedInputLimit
	input.Width = config.SpeedInputLimit
	input.Placeholder = strconv.Itoa(opts.Config.Gameplay.DefaultSpeed)
	input.Focus()

	buffer := newKeyBuffer()
	a := App{
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  input,
		round:  round,
		buffer: buffer,
		source: buffer,
		screen: core.NewScreen(rt.ScreenW, rt.ScreenH),
		logger: opts.Logger,
		rt:     rt,
	}

	switch {
	case opts.Replay != nil:
		spec := opts.Replay
		if spec.Journal == nil {
			spec.Journal = snake.NewJournal()
		}
		if err := round.StartSeeded(spec.Speed, spec.Seed); err != nil {
			return App{}, fmt.Errorf("tui: %w", err)
		}
		spec.Journal.Rewind()
		a.source = spec.Journal
		a.logger.Info("replay started", "seed", spec.Seed, "speed", spec.Speed, "ticks", spec.EndTick)
	case opts.Speed > 0:
		a.input.SetValue(strconv.Itoa(config.ClampSpeed(opts.Speed)))
		if err := a.start(config.ClampSpeed(opts.Speed)); err != nil {
			return App{}, err
		}
	}
	return a, nil
}

// Init starts the tick loop and the cursor blink.
func (a App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(a.rt.TickRate))
}

// Update handles incoming messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case tea.WindowSizeMsg:
		a.rt.ScreenW, a.rt.ScreenH = msg.Width, msg.Height
		a.screen.Resize(msg.Width, msg.Height)
		return a, nil
	case TickMsg:
		return a.handleTick()
	}

	if a.configuring() {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Screenshot) {
		if path, err := a.saveScreenshot(); err != nil {
			a.logger.Warn("could not save screenshot", "error", err)
		} else {
			a.logger.Debug("screenshot saved", "path", path)
		}
		return a, nil
	}

	action := a.keys.Action(msg)

	if action == core.ActionQuit {
		if a.round.State() == snake.StatePlaying && a.opts.Replay == nil {
			// Handled on the next tick so the round is saved with its final state.
			a.buffer.Press(action)
			return a, nil
		}
		a.round.Tick(snake.Input{Quit: true})
		a.quitting = true
		return a, tea.Quit
	}

	if a.configuring() {
		if action == core.ActionConfirm {
			return a.tryStart()
		}
		if !digitsOnly(msg) {
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		if v, err := strconv.Atoi(a.input.Value()); err == nil && v > config.MaxSpeed {
			a.input.SetValue(strconv.Itoa(config.MaxSpeed))
		}
		a.message = ""
		return a, cmd
	}

	if a.opts.Replay == nil {
		a.buffer.Press(action)
	}
	return a, nil
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.configuring() {
		return a, nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}
	if startButtonRect(a.rt.ScreenW, a.rt.ScreenH).Contains(msg.X, msg.Y) {
		return a.tryStart()
	}
	return a, nil
}

func (a App) handleTick() (tea.Model, tea.Cmd) {
	prev := a.round.State()
	res := a.round.Step(a.source)

	for _, e := range res.Events {
		a.opts.Sound.Play(e)
	}
	a.opts.Observer.ObserveEvents(res.Events)

	switch {
	case res.State == snake.StateQuit:
		if prev == snake.StatePlaying {
			a.logger.Info("round abandoned", "score", a.round.Score(), "ticks", a.round.TickCount())
			a.saveRound()
		}
		a.quitting = true
		return a, tea.Quit
	case prev == snake.StatePlaying && res.State == snake.StateGameOver:
		a.logger.Info("round over", "score", a.round.Score(), "ticks", a.round.TickCount())
		a.saveRound()
	case prev == snake.StateGameOver && res.State == snake.StateConfiguring:
		a.logger.Debug("back to configure")
		if a.opts.Replay != nil {
			a.quitting = true
			return a, tea.Quit
		}
	}

	if spec := a.opts.Replay; spec != nil && spec.EndTick > 0 && res.State == snake.StatePlaying && a.round.TickCount() >= spec.EndTick {
		a.logger.Info("replay finished", "score", a.round.Score(), "ticks", a.round.TickCount())
		a.quitting = true
		return a, tea.Quit
	}

	return a, tickCmd(a.rt.TickRate)
}

func (a App) tryStart() (tea.Model, tea.Cmd) {
	speed, err := config.ParseSpeed(a.input.Value())
	if err != nil {
		a.logger.Debug("start rejected", "input", a.input.Value(), "error", err)
		a.message = fmt.Sprintf("Speed must be %d-%d", config.MinSpeed, config.MaxSpeed)
		return a, nil
	}
	if err := a.start(speed); err != nil {
		a.logger.Error("could not start round", "error", err)
		a.message = "Could not start"
		return a, nil
	}
	return a, nil
}

func (a *App) start(speed int) error {
	if err := a.round.Start(speed); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	a.message = ""
	a.opts.Observer.RoundStarted()
	a.logger.Info("round started", "speed", speed, "seed", a.round.SessionSeed())
	return nil
}

func (a App) saveRound() {
	if a.opts.Store == nil || a.opts.Replay != nil {
		return
	}
	cfg, err := a.opts.Config.Encode()
	if err != nil {
		a.logger.Warn("could not save round", "error", err)
		return
	}
	p := a.round.Params()
	rec := storage.RoundRecord{
		Player:  a.opts.Player,
		Seed:    a.round.SessionSeed(),
		Speed:   a.round.Speed(),
		BoardW:  p.Board.Width,
		BoardH:  p.Board.Height,
		Ticks:   a.round.TickCount(),
		Journal: a.round.Journal().Encode(),
		Config:  cfg,
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	id, err := a.opts.Store.SaveRound(ctx, rec)
	if err != nil {
		a.logger.Warn("could not save round", "error", err)
		return
	}
	a.logger.Debug("round saved", "id", id, "inputs", a.round.Journal().Len())
}

// saveScreenshot writes the current frame as plain text to the data dir.
func (a App) saveScreenshot() (string, error) {
	snake.Render(a.screen, a.round.Snapshot())

	dir := filepath.Join(config.DataDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(a.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	if a.configuring() && a.rt.ScreenW >= snake.MinScreenW && a.rt.ScreenH >= snake.MinScreenH {
		return a.configureView()
	}

	snap := a.round.Snapshot()
	snake.Render(a.screen, snap)

	var background lipgloss.TerminalColor
	if snap.State == snake.StateGameOver {
		background = gameOverBackground
	}
	return RenderScreen(a.screen, background)
}

func (a App) configureView() string {
	lines := make([]string, configureHeight)
	lines[0] = titleStyle.Render(snake.Title)
	lines[2] = a.input.View()
	if a.message != "" {
		lines[3] = messageStyle.Render(a.message)
	}
	lines[buttonRow] = buttonStyle.Render(startLabel)

	left, top := configureOrigin(a.rt.ScreenW, a.rt.ScreenH)
	var sb strings.Builder
	sb.WriteString(strings.Repeat("\n", top))
	for i, line := range lines {
		if i > 0 {
			sb.WriteRune('\n')
		}
		pad := left + max((configureWidth-lipgloss.Width(line))/2, 0)
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(line)
	}

	rows := top + len(lines)
	if rows < a.rt.ScreenH {
		sb.WriteString(strings.Repeat("\n", a.rt.ScreenH-rows))
		sb.WriteString(" ")
		sb.WriteString(a.help.View(a.keys))
	}
	return sb.String()
}

// State returns the phase of the underlying round.
func (a App) State() snake.State {
	return a.round.State()
}

// Snapshot returns the current round snapshot.
func (a App) Snapshot() snake.Snapshot {
	return a.round.Snapshot()
}

func (a App) configuring() bool {
	return a.round.State() == snake.StateConfiguring && a.opts.Replay == nil
}

func configureOrigin(w, h int) (left, top int) {
	return max((w-configureWidth)/2, 0), max((h-configureHeight)/2, 0)
}

// startButtonRect is the clickable area of the START button.
func startButtonRect(w, h int) core.Rect {
	left, top := configureOrigin(w, h)
	labelW := len(startLabel)
	return core.NewRect(left+(configureWidth-labelW)/2, top+buttonRow, labelW, 1)
}

// digitsOnly reports whether a key may reach the speed box. Editing keys
// pass; typed runes must all be digits.
func digitsOnly(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return msg.Type != tea.KeySpace
	}
	for _, r := range msg.Runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Run starts the game in the current terminal and blocks until it exits.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
