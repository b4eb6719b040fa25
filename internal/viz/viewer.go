package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/arcsim/internal/experiment"
)

var tabNames = []string{"path", "speed", "height", "report"}

// Viewer browses one finished run. Nothing is simulated while it is open.
type Viewer struct {
	res           *experiment.Result
	tab           int
	theme         int
	width, height int
}

func NewViewer(res *experiment.Result) Viewer {
	return Viewer{res: res, width: 80, height: 24}
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		case "tab", "right", "l":
			v.tab = (v.tab + 1) % len(tabNames)
		case "shift+tab", "left", "h":
			v.tab = (v.tab + len(tabNames) - 1) % len(tabNames)
		case "1", "2", "3", "4":
			v.tab = int(msg.String()[0] - '1')
		case "t":
			v.theme = (v.theme + 1) % len(Themes)
		}
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	}
	return v, nil
}

func (v Viewer) body(s styles) string {
	if v.res.Trajectory == nil && v.tab != 3 {
		return s.bad.Render(MsgInfeasible)
	}
	w := max(v.width-8, 20)
	h := max(v.height-8, 6)
	switch tabNames[v.tab] {
	case "path":
		return Scene(v.res.Trajectory, w, h)
	case "speed":
		return SpeedChart(v.res.Trajectory, w-10, h-2)
	case "height":
		return HeightChart(v.res.Trajectory, w-10, h-2)
	default:
		return Report(v.res, Themes[v.theme])
	}
}

func (v Viewer) View() string {
	theme := Themes[v.theme]
	s := theme.styles()

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == v.tab {
			tabs[i] = s.active.Render(label)
		} else {
			tabs[i] = s.tab.Render(label)
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n")
	b.WriteString(s.panel.Render(v.body(s)) + "\n")
	b.WriteString(s.muted.Render(fmt.Sprintf("tab/←→ switch · t theme (%s) · q quit", theme.Name)))
	return b.String()
}

// RunViewer blocks until the user quits.
func RunViewer(res *experiment.Result) error {
	_, err := tea.NewProgram(NewViewer(res), tea.WithAltScreen()).Run()
	return err
}
