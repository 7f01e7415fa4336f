package dash

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prdeck/prdeck/internal/provider"
	"github.com/prdeck/prdeck/internal/stats"
	"github.com/prdeck/prdeck/models"
)

// tickInterval drives transient status expiry.
const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

type reloadedMsg struct {
	prs []models.PullRequest
	err error
}

type repoReloadedMsg struct {
	owner, name string
	prs         []models.PullRequest
	err         error
}

type mergedMsg struct {
	pr  models.PullRequest
	err error
}

type approvedMsg struct {
	pr  models.PullRequest
	err error
}

type previewMsg struct {
	mode    PreviewMode
	id      string
	content string
	err     error
}

type contribMsg struct {
	cal *models.ContributionCalendar
	err error
}

// Model is the bubbletea wrapper around the Controller. It translates
// key events into controller calls, runs queued tasks against the
// provider off the UI goroutine, and feeds results back through the
// Apply methods.
type Model struct {
	ctrl   *Controller
	prov   provider.Provider
	keys   keyMap
	width  int
	height int
}

// NewModel creates the dashboard model.
func NewModel(ctrl *Controller, prov provider.Provider) *Model {
	return &Model{ctrl: ctrl, prov: prov, keys: defaultKeys}
}

// Run starts the bubbletea program.
func (m *Model) Run() error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.ctrl.ReloadAll()
	return tea.Batch(m.runPending(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.ctrl.Tick(time.Time(msg))
		return m, tea.Batch(tick(), m.runPending())

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.ctrl.Scroll(-3)
			case tea.MouseButtonWheelDown:
				m.ctrl.Scroll(3)
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg.String())

	case reloadedMsg:
		m.ctrl.ApplyReload(msg.prs, msg.err)
	case repoReloadedMsg:
		m.ctrl.ApplyRepoReload(msg.owner, msg.name, msg.prs, msg.err)
	case mergedMsg:
		m.ctrl.ApplyMerged(msg.pr, msg.err)
	case approvedMsg:
		m.ctrl.ApplyApproved(msg.pr, msg.err)
	case previewMsg:
		m.ctrl.ApplyPreview(msg.mode, msg.id, msg.content, msg.err)
	case contribMsg:
		m.ctrl.ApplyContributions(msg.cal, msg.err)
	}

	// A completed task may have queued a follow-up (scoped reload after
	// a merge, preview fill after a reload).
	m.ctrl.EnsurePreview()
	return m, m.runPending()
}

func (m *Model) handleKey(key string) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case matches(key, k.Quit):
		return m, tea.Quit
	case matches(key, k.Down):
		m.ctrl.SelectNext()
	case matches(key, k.Up):
		m.ctrl.SelectPrev()
	case matches(key, k.More):
		m.ctrl.AdvancePreview()
	case matches(key, k.Less):
		m.ctrl.RetreatPreview()
	case matches(key, k.ScrollDown):
		m.ctrl.Scroll(1)
	case matches(key, k.ScrollUp):
		m.ctrl.Scroll(-1)
	case matches(key, k.PageDown):
		m.ctrl.Scroll(m.previewHeight())
	case matches(key, k.PageUp):
		m.ctrl.Scroll(-m.previewHeight())
	case matches(key, k.Merge):
		m.ctrl.MergeSelected()
	case matches(key, k.Approve):
		m.ctrl.ApproveSelected()
	case matches(key, k.Reload):
		m.ctrl.ReloadAll()
	case matches(key, k.Contrib):
		m.ctrl.ToggleContributions()
	case matches(key, k.Dismiss):
		m.ctrl.DismissStatus()
	case matches(key, k.Open):
		if pr, ok := m.ctrl.Selected(); ok {
			if err := openURL(pr.URL); err != nil {
				m.ctrl.setTransient("opening browser: " + err.Error())
			}
		}
	}
	return m, m.runPending()
}

// runPending executes the next queued task, if any, as a tea.Cmd.
func (m *Model) runPending() tea.Cmd {
	t := m.ctrl.TakePending()
	if t == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		switch t.Kind {
		case TaskReloadAll:
			prs, err := m.fetchAll(ctx)
			return reloadedMsg{prs: prs, err: err}
		case TaskReloadRepo:
			prs, err := m.prov.RepoPRs(ctx, t.Owner, t.Name)
			return repoReloadedMsg{owner: t.Owner, name: t.Name, prs: prs, err: err}
		case TaskMerge:
			return mergedMsg{pr: t.PR, err: m.prov.MergePR(ctx, t.PR)}
		case TaskApprove:
			return approvedMsg{pr: t.PR, err: m.prov.ApprovePR(ctx, t.PR)}
		case TaskLoadPreview:
			content, err := m.loadPreview(ctx, t.PR, t.Mode)
			return previewMsg{mode: t.Mode, id: t.PR.ID, content: content, err: err}
		case TaskReloadContributions:
			cal, err := m.prov.ContributionCalendar(ctx, t.Login)
			return contribMsg{cal: cal, err: err}
		}
		return nil
	}
}

func (m *Model) fetchAll(ctx context.Context) ([]models.PullRequest, error) {
	var all []models.PullRequest
	for _, target := range m.ctrl.Targets() {
		var (
			prs []models.PullRequest
			err error
		)
		if target.IsRepo() {
			prs, err = m.prov.RepoPRs(ctx, target.Owner, target.Name)
		} else {
			prs, err = m.prov.AccountPRs(ctx, target.Owner)
		}
		if err != nil {
			return nil, err
		}
		all = append(all, prs...)
	}
	return all, nil
}

func (m *Model) loadPreview(ctx context.Context, pr models.PullRequest, mode PreviewMode) (string, error) {
	switch mode {
	case PreviewBody:
		body, err := m.prov.PRBody(ctx, pr.Owner, pr.Name, pr.Number)
		if err != nil {
			return "", err
		}
		return renderBody(pr, body), nil
	case PreviewFiles:
		files, err := m.prov.PRFiles(ctx, pr.Owner, pr.Name, pr.Number)
		if err != nil {
			return "", err
		}
		return renderFiles(files), nil
	case PreviewCommits:
		commits, err := m.prov.PRCommits(ctx, pr.Owner, pr.Name, pr.Number)
		if err != nil {
			return "", err
		}
		return renderCommits(commits), nil
	}
	return "", nil
}

func (m *Model) previewHeight() int {
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	return h
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// The contributions pane takes a strip above the status bar.
	contrib := ""
	contribH := 0
	if m.ctrl.ShowingContributions() {
		contrib = renderContributions(m.ctrl, func() stats.Summary {
			cal, _ := m.ctrl.Calendar()
			return stats.Summarize(cal, time.Now())
		})
		contribH = lipgloss.Height(contrib)
	}

	contentH := m.height - 3 - contribH
	if contentH < 3 {
		contentH = 3
	}

	var main string
	if m.ctrl.Preview() != PreviewOff {
		listW := m.width * 2 / 5
		if listW < 30 {
			listW = 30
		}
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(listW).Render(renderList(m.ctrl, listW, contentH)),
			renderPreview(m.ctrl, m.width-listW, contentH-2),
		)
	} else {
		main = renderList(m.ctrl, m.width, contentH)
	}

	sections := []string{
		renderHeader(m.ctrl, m.width),
		lipgloss.NewStyle().Height(contentH).Render(main),
	}
	if contrib != "" {
		sections = append(sections, contrib)
	}
	sections = append(sections, renderStatusBar(m.ctrl, m.keys, m.width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
