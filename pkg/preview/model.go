// Package preview is an interactive terminal rendition of the portfolio
// page. The interaction hooks run here against real input: mouse motion,
// clipboard, scrolling and section visibility.
package preview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/interact"
	"github.com/nikogura/folio/pkg/page"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	frameInterval = 16 * time.Millisecond
	minSidebar    = 24
	maxSidebar    = 40
)

// Options inject the platform pieces. Zero values use the real ones.
type Options struct {
	Clipboard interact.Clipboard
	Fallback  interact.Clipboard
	Clock     interact.Clock
	Logger    *zap.Logger
}

// ReloadMsg replaces the displayed portfolio.
type ReloadMsg struct {
	Portfolio content.Portfolio
}

type copiedMsg bool

type frameMsg struct{}

// Model is the bubbletea model of the preview.
type Model struct {
	composer *page.Composer
	styles   Styles
	logger   *zap.Logger

	width    int
	height   int
	sidebar  int
	viewport viewport.Model
	layout   layout

	pointer   *pointerSource
	mouse     *interact.MouseTracker
	observer  *viewportObserver
	active    *interact.ActiveSection
	navigator *interact.Navigator
	copier    *interact.Copier

	events    chan tea.Msg
	done      chan struct{}
	closeOnce sync.Once
	target    int
	animating bool
	status    string
}

// New builds a preview model for portfolio.
func New(portfolio content.Portfolio, opts Options) (m *Model) {
	if opts.Clipboard == nil {
		opts.Clipboard = interact.SystemClipboard{}
	}
	if opts.Fallback == nil {
		opts.Fallback = interact.NewTerminalClipboard()
	}
	if opts.Clock == nil {
		opts.Clock = interact.RealClock()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	m = &Model{
		logger:   opts.Logger,
		viewport: viewport.New(0, 0),
		pointer:  newPointerSource(),
		events:   make(chan tea.Msg, 8),
		done:     make(chan struct{}),
	}

	m.observer = &viewportObserver{blocks: func() []block { return m.layout.blocks }}
	m.copier = interact.NewCopier(interact.CopierConfig{
		Primary:  opts.Clipboard,
		Fallback: opts.Fallback,
		Clock:    opts.Clock,
		OnChange: m.notifyCopied,
		Logger:   opts.Logger,
	})
	m.mouse = interact.NewMouseTracker(m.pointer, nil)

	m.load(portfolio)
	return m
}

// load swaps in a portfolio and reattaches the hooks with its settings.
func (m *Model) load(portfolio content.Portfolio) {
	if m.active != nil {
		m.active.Close()
	}

	m.composer = page.NewComposer(portfolio)
	m.styles = NewStyles(portfolio.Theme, portfolio.Config.Spotlight.Color)
	m.navigator = interact.NewNavigator(viewportDocument{model: m}, portfolio.Config.SmoothScroll)
	m.active = interact.NewActiveSection(m.composer, m.observer, nil, m.logger)

	m.relayout()

	site := portfolio.Config
	m.mouse.Track(site.Spotlight.Enabled)
	m.active.Observe(site.Observer.Enabled, site.Observer.Thresholds, site.Observer.RootMargin)
	m.observe()
}

// notifyCopied runs on the timer goroutine; hand the change to Update.
func (m *Model) notifyCopied(copied bool) {
	select {
	case m.events <- copiedMsg(copied):
	default:
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		case <-m.done:
			return nil
		}
	}
}

// Init starts listening for hook events.
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		m.observe()
		return m, nil

	case tea.KeyMsg:
		cmd, handled := m.handleKey(msg)
		if handled {
			return m, cmd
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.pointer.emit(interact.Position{X: msg.X, Y: msg.Y})
		}

	case copiedMsg:
		return m, m.waitForEvent()

	case frameMsg:
		return m, m.stepAnimation()

	case ReloadMsg:
		m.load(msg.Portfolio)
		m.status = "reloaded"
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.observe()

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	handled = true

	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		m.Close()
		cmd = tea.Quit
	case "tab":
		cmd = m.step(1)
	case "shift+tab":
		cmd = m.step(-1)
	case "c":
		email := m.composer.Portfolio.Metadata.ContactEmail()
		m.copier.Copy(email)
		if m.copier.IsCopied() {
			m.status = ""
		} else if email != "" {
			m.status = "copy failed"
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			cmd = m.navigateIndex(int(key[0] - '1'))
			return cmd, handled
		}
		handled = false
	}

	return cmd, handled
}

// step moves to the next or previous navigation entry from the active one.
func (m *Model) step(delta int) (cmd tea.Cmd) {
	nav := m.composer.Nav()
	if len(nav) == 0 {
		return cmd
	}

	current := -1
	active := m.active.Active()
	for i, entry := range nav {
		if entry.ID == active {
			current = i
			break
		}
	}

	next := (current + delta + len(nav)) % len(nav)
	if current == -1 && delta < 0 {
		next = len(nav) - 1
	}
	cmd = m.navigateIndex(next)
	return cmd
}

func (m *Model) navigateIndex(i int) (cmd tea.Cmd) {
	nav := m.composer.Nav()
	if i < 0 || i >= len(nav) {
		return cmd
	}
	cmd = m.Navigate(nav[i].ID)
	return cmd
}

// Navigate runs in-page navigation to id and returns the animation command
// when a smooth scroll started.
func (m *Model) Navigate(id string) (cmd tea.Cmd) {
	wasAnimating := m.animating
	m.navigator.OnNavigate(&navEvent{}, id)
	m.observe()

	if m.animating && !wasAnimating {
		cmd = frame()
	}
	return cmd
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// scrollTo moves the viewport to target, animating when smooth.
func (m *Model) scrollTo(target int, smooth bool) {
	maxOffset := len(m.layout.lines) - m.viewport.Height
	if target > maxOffset {
		target = maxOffset
	}
	if target < 0 {
		target = 0
	}

	if !smooth {
		m.animating = false
		m.viewport.SetYOffset(target)
		return
	}

	m.target = target
	m.animating = true
}

// stepAnimation eases the viewport a third of the way to the target.
func (m *Model) stepAnimation() (cmd tea.Cmd) {
	if !m.animating {
		return cmd
	}

	offset := m.viewport.YOffset
	distance := m.target - offset
	if distance == 0 {
		m.animating = false
		return cmd
	}

	move := distance / 3
	if move == 0 {
		move = distance
	}
	m.viewport.SetYOffset(offset + move)
	m.observe()

	if m.viewport.YOffset == offset {
		// Clamped by the viewport.
		m.animating = false
		return cmd
	}

	cmd = frame()
	return cmd
}

func (m *Model) observe() {
	m.observer.update(m.viewport.YOffset, m.viewport.Height)
}

func (m *Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	m.sidebar = m.width / 3
	if m.sidebar < minSidebar {
		m.sidebar = minSidebar
	}
	if m.sidebar > maxSidebar {
		m.sidebar = maxSidebar
	}

	contentWidth := m.width - m.sidebar - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	offset := m.viewport.YOffset
	m.viewport.Width = contentWidth
	m.viewport.Height = m.height
	m.layout = buildLayout(m.composer, m.styles, contentWidth)
	m.viewport.SetContent(m.layout.content())
	m.viewport.SetYOffset(offset)
}

// Active returns the active section id.
func (m *Model) Active() (id string) {
	id = m.active.Active()
	return id
}

// Close releases every hook and ends a pending event wait. It is safe to
// call more than once.
func (m *Model) Close() {
	m.mouse.Close()
	m.active.Close()
	m.copier.Close()
	m.closeOnce.Do(func() { close(m.done) })
}

// View renders the sidebar next to the content pane.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	sidebar := lipgloss.NewStyle().
		Width(m.sidebar).
		Height(m.height).
		PaddingRight(2).
		Render(m.renderSidebar())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.renderContent())
}

func (m *Model) renderSidebar() string {
	p := m.composer.Portfolio
	meta := p.Metadata
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Name.Render(meta.Name) + "\n")
	if meta.Title != "" {
		b.WriteString(s.Title.Render(meta.Title) + "\n")
	}
	if meta.Tagline != "" {
		b.WriteString("\n" + s.Text.Width(m.sidebar-2).Render(meta.Tagline) + "\n")
	}

	if email := meta.ContactEmail(); email != "" {
		b.WriteString("\n" + s.Primary.Render(email))
		if m.copier.IsCopied() {
			b.WriteString(" " + s.Accent.Render("Copied!"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	active := m.active.Active()
	for i, entry := range m.composer.Nav() {
		number := ""
		if i < 9 {
			number = fmt.Sprintf("%d ", i+1)
		}
		if entry.ID == active {
			b.WriteString(s.Active.Render(number+"──── "+strings.ToUpper(entry.Title)) + "\n")
			continue
		}
		b.WriteString(s.Line.Render(number+"── ") + s.Muted.Render(strings.ToUpper(entry.Title)) + "\n")
	}

	if p.Config.Display.ShowSocialLinks {
		links := page.SocialLinks(meta.Social)
		if len(links) > 0 {
			b.WriteString("\n")
		}
		for _, link := range links {
			b.WriteString(s.Muted.Render(link.Label+" ") + s.Link.Render(link.URL) + "\n")
		}
	}

	b.WriteString("\n" + s.Help.Render("j/k scroll · tab next · c copy · q quit"))
	if m.status != "" {
		b.WriteString("\n" + s.Accent.Render(m.status))
	}
	return b.String()
}

// renderContent draws the viewport, lighting the row under the pointer
// when the spotlight is on.
func (m *Model) renderContent() string {
	out := m.viewport.View()
	if !m.composer.Portfolio.Config.Spotlight.Enabled {
		return out
	}

	pos := m.mouse.Position()
	if pos.X < m.sidebar {
		return out
	}

	rows := strings.Split(out, "\n")
	if pos.Y < 0 || pos.Y >= len(rows) {
		return out
	}
	rows[pos.Y] = lipgloss.NewStyle().Background(m.styles.Spotlight).Width(m.viewport.Width).Render(rows[pos.Y])
	return strings.Join(rows, "\n")
}

// Run starts the preview program until the user quits or ctx ends. reload,
// when not nil, delivers replacement portfolios.
func Run(ctx context.Context, portfolio content.Portfolio, opts Options, reload <-chan content.Portfolio) (err error) {
	m := New(portfolio, opts)
	defer m.Close()

	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	if reload != nil {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case p, ok := <-reload:
					if !ok {
						return
					}
					program.Send(ReloadMsg{Portfolio: p})
				}
			}
		}()
	}

	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Cancelled from outside.
		err = nil
		return err
	}
	if err != nil {
		err = errors.Wrap(err, "preview failed")
		return err
	}

	return err
}
