package viz

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
)

type screen int

const (
	screenMenu screen = iota
	screenInput
	screenVisualize
)

const (
	fieldValues = iota
	fieldTarget
)

// frameMsg signals that the player changed state.
type frameMsg struct{}

// Options configure a new App.
type Options struct {
	Registry  *algorithms.Registry
	Theme     string
	Speed     playback.Speed
	Seed      int64
	Logger    *slog.Logger
	Scheduler playback.Scheduler

	// Algorithm and Input, when both set, open the visualize screen directly.
	Algorithm string
	Input     *algorithms.Input
}

type App struct {
	screen screen
	reg    *algorithms.Registry
	infos  []algorithms.Info
	cursor int
	info   algorithms.Info
	notice string

	values   string
	target   string
	field    int
	inputErr error

	player *playback.Player
	wake   chan struct{}
	view   playback.View
	run    *algorithms.Run
	series []float64

	rng    *rand.Rand
	theme  Theme
	st     styles
	keys   keyMap
	help   help.Model
	logger *slog.Logger

	width, height int
}

func NewApp(opts Options) (*App, error) {
	reg := opts.Registry
	if reg == nil {
		reg = algorithms.NewRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	speed := opts.Speed
	if speed == "" {
		speed = playback.SpeedNormal
	}

	wake := make(chan struct{}, 1)
	popts := []playback.Option{
		playback.WithSpeed(speed),
		playback.WithLogger(logger),
		playback.OnChange(func(playback.View) {
			select {
			case wake <- struct{}{}:
			default:
			}
		}),
	}
	if opts.Scheduler != nil {
		popts = append(popts, playback.WithScheduler(opts.Scheduler))
	}

	theme := GetTheme(opts.Theme)
	a := &App{
		screen: screenMenu,
		reg:    reg,
		infos:  reg.List(),
		player: playback.NewPlayer(popts...),
		wake:   wake,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		theme:  theme,
		st:     newStyles(theme),
		keys:   defaultKeyMap,
		help:   help.New(),
		logger: logger,
		width:  80,
		height: 24,
	}
	a.view = a.player.View()

	if opts.Algorithm != "" && opts.Input != nil {
		info, err := reg.Info(opts.Algorithm)
		if err != nil {
			return nil, err
		}
		a.selectAlgorithm(info)
		a.values = input.Format(opts.Input.Values)
		a.target = strconv.Itoa(opts.Input.Target)
		if err := a.generate(*opts.Input); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *App) Init() tea.Cmd {
	return waitForFrame(a.wake)
}

func waitForFrame(wake <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-wake
		return frameMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, nil
	case frameMsg:
		a.refresh()
		return a, waitForFrame(a.wake)
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) && !(a.screen == screenInput && msg.String() == "q") {
			a.player.Close()
			return a, tea.Quit
		}
		switch a.screen {
		case screenMenu:
			a.menuKey(msg)
		case screenInput:
			a.inputKey(msg)
		case screenVisualize:
			a.visualizeKey(msg)
		}
	}
	return a, nil
}

func (a *App) menuKey(msg tea.KeyMsg) {
	a.notice = ""
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.infos)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Theme):
		a.setTheme(a.theme.next())
	case key.Matches(msg, a.keys.Select):
		info := a.infos[a.cursor]
		if !info.Implemented {
			a.notice = fmt.Sprintf("%s visualizer coming soon", info.Name)
			return
		}
		a.selectAlgorithm(info)
		a.values = input.Format(info.DefaultValues)
		a.target = strconv.Itoa(info.DefaultTarget)
		a.screen = screenInput
	}
}

func (a *App) inputKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.inputErr = nil
		a.screen = screenMenu
	case key.Matches(msg, a.keys.Tab):
		if a.info.Limits.NeedsTarget {
			a.field = 1 - a.field
		}
	case key.Matches(msg, a.keys.Random):
		in := input.Random(a.rng, a.info)
		a.values = input.Format(in.Values)
		a.target = strconv.Itoa(in.Target)
		a.inputErr = nil
	case key.Matches(msg, a.keys.Select):
		a.submit()
	case msg.Type == tea.KeyBackspace:
		f := a.focused()
		if len(*f) > 0 {
			*f = (*f)[:len(*f)-1]
		}
	case msg.Type == tea.KeySpace:
		if a.field == fieldValues {
			a.values += " "
		}
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			if accepts(a.field, r) {
				*a.focused() += string(r)
			}
		}
	}
}

func (a *App) visualizeKey(msg tea.KeyMsg) {
	a.notice = ""
	switch {
	case key.Matches(msg, a.keys.Back):
		a.player.Pause()
		a.screen = screenMenu
	case key.Matches(msg, a.keys.Edit):
		a.player.Pause()
		a.screen = screenInput
	case key.Matches(msg, a.keys.Play):
		a.player.Toggle()
	case key.Matches(msg, a.keys.Step):
		a.player.Step()
	case key.Matches(msg, a.keys.Reset):
		a.player.Reset()
	case key.Matches(msg, a.keys.Slow):
		a.player.SetSpeed(playback.SpeedSlow)
	case key.Matches(msg, a.keys.Normal):
		a.player.SetSpeed(playback.SpeedNormal)
	case key.Matches(msg, a.keys.Fast):
		a.player.SetSpeed(playback.SpeedFast)
	case key.Matches(msg, a.keys.Theme):
		a.setTheme(a.theme.next())
	case key.Matches(msg, a.keys.Random):
		in := input.Random(a.rng, a.info)
		a.values = input.Format(in.Values)
		a.target = strconv.Itoa(in.Target)
		if err := a.generate(in); err != nil {
			a.notice = err.Error()
		}
	}
	a.refresh()
}

// submit validates the editor fields and, on success, generates a fresh
// sequence and switches to the visualize screen.
func (a *App) submit() {
	target := 0
	if a.info.Limits.NeedsTarget {
		t, err := strconv.Atoi(strings.TrimSpace(a.target))
		if err != nil {
			a.inputErr = fmt.Errorf("target: %q is not a number", a.target)
			return
		}
		target = t
	}
	in, err := input.PrepareString(a.info, a.values, target)
	if err != nil {
		a.inputErr = err
		return
	}
	if err := a.generate(in); err != nil {
		a.inputErr = err
		return
	}
	a.inputErr = nil
	a.values = input.Format(in.Values)
}

func (a *App) generate(in algorithms.Input) error {
	run, err := a.reg.Generate(a.info.ID, in)
	if err != nil {
		return err
	}
	a.run = run
	a.series = metrics.InversionSeries(run.Steps)
	a.player.Load(run.ID, run.Steps)
	a.logger.Info("sequence generated",
		slog.String("run_id", run.ID),
		slog.String("algorithm", run.Algorithm),
		slog.Int("steps", len(run.Steps)),
	)
	a.screen = screenVisualize
	a.refresh()
	return nil
}

func (a *App) selectAlgorithm(info algorithms.Info) {
	a.info = info
	a.field = fieldValues
	a.inputErr = nil
}

func (a *App) setTheme(t Theme) {
	a.theme = t
	a.st = newStyles(t)
}

func (a *App) refresh() {
	a.view = a.player.View()
	a.keys.syncControls(a.view)
}

func (a *App) focused() *string {
	if a.field == fieldTarget {
		return &a.target
	}
	return &a.values
}

func accepts(field int, r rune) bool {
	if r >= '0' && r <= '9' || r == '-' {
		return true
	}
	return field == fieldValues && (r == ',' || r == ' ' || r == ';')
}

// Player exposes the underlying player, mainly for tests.
func (a *App) Player() *playback.Player { return a.player }

func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	app.player.Close()
	return err
}
