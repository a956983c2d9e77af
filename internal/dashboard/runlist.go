package dashboard

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/s22625/ghdash/internal/model"
	"github.com/s22625/ghdash/internal/service"
)

// pollInterval is how often each panel refetches its data.
const pollInterval = 60 * time.Second

// eventBuffer bounds the forwarded-key channel so the render loop never
// blocks on a busy panel.
const eventBuffer = 64

// URLOpener opens a URL in the user's default browser.
type URLOpener interface {
	Browse(url string) error
}

// RunListPanel owns the run table's view-state and its background polling
// task. The view-state lives behind one RWMutex: fetch completions and
// navigation write, rendering takes the same lock exclusively because it
// updates scroll bookkeeping. The lock is never held across a fetch.
type RunListPanel struct {
	svc    service.WorkflowService
	repos  []model.Repository
	opener URLOpener
	logger *log.Logger
	styles Styles
	keys   KeyMap

	events chan tea.KeyMsg

	mu      sync.RWMutex
	runs    []model.WorkflowRun
	loading LoadingState
	table   tableState

	details *JobDetailPanel
}

// NewRunListPanel creates the panel and its (hidden) detail panel over
// the same service.
func NewRunListPanel(svc service.WorkflowService, repos []model.Repository, opener URLOpener, logger *log.Logger) *RunListPanel {
	if logger == nil {
		logger = log.Default()
	}
	return &RunListPanel{
		svc:     svc,
		repos:   repos,
		opener:  opener,
		logger:  logger,
		styles:  DefaultStyles(),
		keys:    DefaultKeyMap(),
		events:  make(chan tea.KeyMsg, eventBuffer),
		table:   newTableState(),
		details: NewJobDetailPanel(svc, logger),
	}
}

// Events is where the top-level loop forwards key presses.
func (p *RunListPanel) Events() chan<- tea.KeyMsg {
	return p.events
}

// Details exposes the panel's job-detail overlay.
func (p *RunListPanel) Details() *JobDetailPanel {
	return p.details
}

// Start launches the background polling task. Call it exactly once per
// panel; a second call would spawn a second poller.
func (p *RunListPanel) Start() {
	go p.poll()
}

// poll fetches immediately, then waits on the earlier of the next
// interval tick or a forwarded key press.
func (p *RunListPanel) poll() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	p.refresh()
	for {
		select {
		case <-ticker.C:
			p.refresh()
		case msg := <-p.events:
			p.HandleKey(msg)
		}
	}
}

// HandleKey dispatches one key press. Unrecognized keys are ignored.
func (p *RunListPanel) HandleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Open):
		p.openSelected()
	case key.Matches(msg, p.keys.Details):
		p.showDetails()
	case key.Matches(msg, p.keys.Down):
		p.moveDown()
	case key.Matches(msg, p.keys.Up):
		p.moveUp()
	case key.Matches(msg, p.keys.Refresh):
		p.refresh()
	case key.Matches(msg, p.keys.Close):
		p.details.Hide()
	}
}

// refresh runs one fetch cycle. Overlapping calls (timer plus manual
// refresh) serialize their writes on the state lock; the later completion
// wins, by completion order rather than issue order.
func (p *RunListPanel) refresh() {
	p.setLoading(StartedFetch())

	runs, err := p.svc.ListRuns(p.repos)
	if err != nil {
		p.onError(err)
		return
	}
	p.onLoad(runs)
}

func (p *RunListPanel) onLoad(runs []model.WorkflowRun) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.runs = runs
	if len(runs) > 0 && p.table.selected < 0 {
		p.table.selected = 0
	}
	p.table.clampAfterReplace(len(runs))
	p.loading = p.loading.Transition(Succeeded(time.Now()))
}

// onError leaves rows and selection untouched; the status line carries
// the message until the next fetch.
func (p *RunListPanel) onError(err error) {
	p.logger.Error("failed to list workflow runs", "err", err)
	p.setLoading(Failed(err.Error()))
}

func (p *RunListPanel) setLoading(ev LoadEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = p.loading.Transition(ev)
}

func (p *RunListPanel) moveDown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.table.moveDown(len(p.runs))
}

func (p *RunListPanel) moveUp() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.table.moveUp()
}

// selectedRun snapshots the selected run, if any.
func (p *RunListPanel) selectedRun() (model.WorkflowRun, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.table.selected < 0 || p.table.selected >= len(p.runs) {
		return model.WorkflowRun{}, false
	}
	return p.runs[p.table.selected], true
}

// showDetails opens the detail panel for the selected run. An already
// open panel is fully hidden first so its poller stands down before the
// new one starts.
func (p *RunListPanel) showDetails() {
	run, ok := p.selectedRun()
	if !ok {
		return
	}
	p.details.Hide()
	p.details.Show(run)
}

func (p *RunListPanel) openSelected() {
	run, ok := p.selectedRun()
	if !ok {
		return
	}
	if err := p.opener.Browse(run.URL); err != nil {
		p.logger.Error("failed to open browser", "url", run.URL, "err", err)
	}
}

// View renders the run table with the detail overlay composited on top
// when visible. It takes the write lock: rendering adjusts the table's
// scroll offset to follow the selection.
func (p *RunListPanel) View(width, height int) string {
	p.mu.Lock()

	cols := []column{
		{title: "Project", width: 22},
		{title: "Branch", width: 12},
		{title: "Workflow Name", width: 16},
		{title: "Commit Title"},
		{title: "Start Time", width: 19},
		{title: "Status", width: 11},
		{title: "Conclusion", width: 14},
	}

	rows := make([][]string, 0, len(p.runs))
	for _, run := range p.runs {
		rows = append(rows, []string{
			run.Slug(),
			run.Branch,
			run.Name,
			run.CommitTitle(),
			run.StartTime.Local().Format(timeColumnLayout),
			run.Status.Display(),
			run.Conclusion.Display(),
		})
	}

	title := p.styles.Header.Render("Workflow Runs") +
		"  " + p.styles.Status.Render(p.loading.String())
	tableLines := renderTable(p.styles, cols, rows, &p.table, width, height-2)
	footer := p.styles.HelpBar.Render(p.keys.HelpLine())

	p.mu.Unlock()

	body := title + "\n" + strings.Join(tableLines, "\n")
	for lines := strings.Count(body, "\n"); lines < height-2; lines++ {
		body += "\n"
	}
	view := body + "\n" + footer

	// The detail panel is composited after the list lock is released;
	// the two panels never share a lock.
	if p.details.Visible() {
		detailView := p.details.View(width*3/4, height*3/4)
		view = overlay(view, detailView, width, height)
	}
	return view
}
