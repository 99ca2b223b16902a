package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algolab/internal/account"
	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/frame"
	"github.com/san-kum/algolab/internal/playback"
)

const (
	speedStep = 50
	minBars   = 6
)

type model struct {
	ctrl  *playback.Controller
	user  *account.Profile
	lb    labels
	theme int

	view    playback.View
	cur     frame.Frame
	running bool

	editing bool
	editBuf string
	errMsg  string

	width, height int
}

func newModel(ctrl *playback.Controller, user *account.Profile, theme string) model {
	m := model{
		ctrl:   ctrl,
		user:   user,
		lb:     labelsFor(ctrl.Lang()),
		theme:  themeIndex(theme),
		width:  80,
		height: 32,
	}
	m.refresh()
	return m
}

// refresh reloads the controller snapshot, including its current frame.
func (m *model) refresh() {
	m.view = m.ctrl.View()
	m.cur = frameFromView(m.view)
	m.running = m.view.State == playback.Running.String()
}

func frameFromView(v playback.View) frame.Frame {
	tags := make(frame.Highlight, len(v.Tags))
	for i, name := range v.Tags {
		tags[i], _ = frame.ParseTag(name)
	}
	f := frame.New(frame.KindReset, v.Values, tags, v.Status)
	f.Step = v.Step
	return f
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case frameMsg:
		m.view = m.ctrl.View()
		m.cur, m.running = msg.frame, msg.running
	case configMsg:
		m.view = m.ctrl.View()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg), nil
	}

	m.errMsg = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "enter", "s":
		if err := m.ctrl.Start(); err != nil {
			m.errMsg = err.Error()
		}
	case "r":
		m.ctrl.Reset(m.view.Size, drivers.Category(m.view.Category))
	case "c":
		m.ctrl.SetCategory(nextCategory(drivers.Category(m.view.Category)))
	case "a":
		m.ctrl.SetAlgorithm(next(m.view.Algorithms, m.view.Algorithm))
	case "+", "=":
		m.ctrl.SetSpeed(m.view.Speed + speedStep)
	case "-", "_":
		m.ctrl.SetSpeed(m.view.Speed - speedStep)
	case "]":
		m.ctrl.SetSize(m.view.Size + 1)
	case "[":
		m.ctrl.SetSize(m.view.Size - 1)
	case "/":
		if m.view.Category == string(drivers.Searching) && !m.running {
			m.editing, m.editBuf = true, m.view.Target
		}
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) model {
	switch msg.Type {
	case tea.KeyEnter:
		m.ctrl.SetTarget(m.editBuf)
		m.editing, m.editBuf = false, ""
		m.refresh()
	case tea.KeyEsc:
		m.editing, m.editBuf = false, ""
	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || (r == '-' && m.editBuf == "") {
				m.editBuf += string(r)
			}
		}
	}
	return m
}

func nextCategory(c drivers.Category) drivers.Category {
	for i, cat := range drivers.Categories {
		if cat == c {
			return drivers.Categories[(i+1)%len(drivers.Categories)]
		}
	}
	return drivers.Sorting
}

func next(names []string, cur string) string {
	for i, name := range names {
		if name == cur {
			return names[(i+1)%len(names)]
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return cur
}

func (m model) View() string {
	th := Themes[m.theme]
	text := lipgloss.NewStyle().Foreground(th.Text)
	muted := lipgloss.NewStyle().Foreground(th.Muted)
	width := max(40, min(m.width-4, 100))

	var b strings.Builder
	b.WriteString("\n  " + GradientText(m.lb.title, th.Primary, th.Accent) + "\n")
	if m.user != nil {
		b.WriteString("  " + text.Render(m.lb.welcome) + boldStyle.Foreground(th.Text).Render(m.user.Name) + text.Render("!") + "\n")
		b.WriteString("  " + muted.Render(m.lb.created+account.FormatCreated(m.user.CreatedAt)) + "\n")
	}
	b.WriteString("  " + Separator(width, th.Muted) + "\n\n")

	barHeight := max(minBars, m.height-24)
	for _, line := range strings.Split(RenderBars(m.cur.Values, m.cur.Tags, th, barHeight, len(m.cur.Values) <= LabelLimit), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n  " + Legend(th) + "\n\n")

	b.WriteString("  " + lipgloss.NewStyle().Italic(true).Foreground(th.Text).Render(m.cur.Status) + "\n")
	if m.errMsg != "" {
		b.WriteString("  " + lipgloss.NewStyle().Bold(true).Foreground(th.Error).Render(m.errMsg) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(panelStyle.BorderForeground(th.Muted).Width(width).Render(m.controls(th)) + "\n")
	desc := boldStyle.Foreground(th.Primary).Render(m.lb.description) + "\n" + text.Render(m.view.Description)
	b.WriteString(panelStyle.BorderForeground(th.Muted).Width(width).Render(desc) + "\n\n")

	toggle := m.lb.start
	if m.running {
		toggle = m.lb.stop
	}
	b.WriteString("  " + keyHints(th,
		"space", toggle, "r", m.lb.reset, "c/a", m.lb.cycle, "[ ]", m.lb.sizes,
		"+/-", strings.ToLower(m.lb.speed), "/", m.lb.edit, "t", m.lb.theme, "q", m.lb.quit) + "\n")
	return b.String()
}

func (m model) controls(th Theme) string {
	label := lipgloss.NewStyle().Foreground(th.Muted).Width(20)
	value := lipgloss.NewStyle().Foreground(th.Text)
	active := boldStyle.Foreground(th.Accent)

	var lines []string
	row := func(name, v string) {
		lines = append(lines, label.Render(name)+v)
	}

	var cats []string
	for _, c := range drivers.Categories {
		if string(c) == m.view.Category {
			cats = append(cats, active.Render(string(c)))
		} else {
			cats = append(cats, value.Render(string(c)))
		}
	}
	row(m.lb.category, strings.Join(cats, " / "))

	var algos []string
	for _, a := range m.view.Algorithms {
		if a == m.view.Algorithm {
			algos = append(algos, active.Render(a))
		} else {
			algos = append(algos, value.Render(a))
		}
	}
	row(m.lb.algorithm, strings.Join(algos, " / "))

	if m.view.Category == string(drivers.Searching) {
		target := value.Render(m.view.Target)
		switch {
		case m.editing:
			target = active.Render(m.editBuf + "_")
		case m.view.Target == "":
			target = lipgloss.NewStyle().Foreground(th.Muted).Render(m.lb.targetHint)
		}
		row(m.lb.target, target)
	}

	row(fmt.Sprintf("%s: %d", m.lb.size, m.view.Size),
		Gauge(float64(m.view.Size-frame.MinSize)/float64(frame.MaxSize-frame.MinSize), 24, th.Primary))
	row(fmt.Sprintf("%s: %d", m.lb.speed, m.view.Speed),
		Gauge(float64(m.view.Speed-frame.MinSpeed)/float64(frame.MaxSpeed-frame.MinSpeed), 24, th.Primary)+
			value.Render(fmt.Sprintf(" %dms", m.view.DelayMillis)))
	return strings.Join(lines, "\n")
}

// RunLab runs the interactive lab until the user quits. opts.Surface is
// replaced by the program.
func RunLab(opts playback.Options, user *account.Profile, theme string) error {
	surface := &programSurface{}
	opts.Surface = surface
	ctrl := playback.New(opts)
	defer ctrl.Close()

	p := tea.NewProgram(newModel(ctrl, user, theme), tea.WithAltScreen())
	surface.attach(p)
	_, err := p.Run()
	return err
}
