package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// framesPerSecond is the fixed render rate. Frames draw whatever the
// panels hold at that instant; rendering never waits on the network.
const framesPerSecond = 60

type frameMsg time.Time

// App is the top-level bubbletea model: a fixed-rate frame tick merged
// with the key event stream. Keys other than quit are forwarded to the
// run list panel, which dispatches them on its own task.
type App struct {
	list   *RunListPanel
	keys   KeyMap
	styles Styles

	width    int
	height   int
	quitting bool
}

// NewApp creates the event loop around the run list panel.
func NewApp(list *RunListPanel) *App {
	return &App{
		list:   list,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
}

// Run starts the bubbletea program and blocks until quit.
func (a *App) Run() error {
	program := tea.NewProgram(a, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.list.Start()
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case frameMsg:
		if a.quitting {
			return a, nil
		}
		return a, frameTick()
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.quitting = true
			return a, tea.Quit
		}
		select {
		case a.list.Events() <- msg:
		default:
			// The panel is mid-fetch with a full queue; dropping a key
			// beats stalling the render loop.
		}
		return a, nil
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	width, height := a.width, a.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	title := a.styles.Title.Width(width).Render("GitHub Workflow Dashboard")
	return lipgloss.JoinVertical(lipgloss.Left, title, a.list.View(width, height-1))
}
