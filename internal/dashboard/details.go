package dashboard

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/s22625/ghdash/internal/model"
	"github.com/s22625/ghdash/internal/service"
)

const timeColumnLayout = "2006-01-02 15:04:05"

// JobDetailPanel shows the jobs of one run in an overlay. The tracked run
// is fixed for the lifetime of one Show; reopening on another run starts
// over with a fresh poller.
type JobDetailPanel struct {
	svc    service.WorkflowService
	logger *log.Logger
	styles Styles

	mu      sync.RWMutex
	run     model.WorkflowRun
	jobs    []model.WorkflowJob
	loading LoadingState
	table   tableState
	visible bool
	gen     uint64
}

// NewJobDetailPanel creates a hidden panel over svc.
func NewJobDetailPanel(svc service.WorkflowService, logger *log.Logger) *JobDetailPanel {
	if logger == nil {
		logger = log.Default()
	}
	return &JobDetailPanel{
		svc:    svc,
		logger: logger,
		styles: DefaultStyles(),
		table:  newTableState(),
	}
}

// Visible reports whether the panel should be composited over the list.
func (d *JobDetailPanel) Visible() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.visible
}

// Show marks the panel visible, pins it to run, and starts its polling
// task. Each Show bumps a generation counter; a poller from a previous
// Show observes the bump on its next wake and exits, so two pollers never
// write into the same view-state.
func (d *JobDetailPanel) Show(run model.WorkflowRun) {
	d.mu.Lock()
	d.run = run
	d.jobs = nil
	d.loading = LoadingState{}
	d.table = newTableState()
	d.visible = true
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	go d.poll(run, gen)
}

// Hide marks the panel not visible and clears its rows synchronously, so
// stale jobs can never flash up if the panel is reopened for another run
// before the next fetch lands.
func (d *JobDetailPanel) Hide() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = nil
	d.visible = false
}

// poll is the panel's background task: fetch immediately, then every
// interval while the panel is still the live generation. It terminates
// permanently once hidden or superseded; Show starts a new one.
func (d *JobDetailPanel) poll(run model.WorkflowRun, gen uint64) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if !d.live(gen) {
			return
		}
		d.refresh(run, gen)
		<-ticker.C
	}
}

func (d *JobDetailPanel) live(gen uint64) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.visible && d.gen == gen
}

func (d *JobDetailPanel) refresh(run model.WorkflowRun, gen uint64) {
	d.setLoading(gen, StartedFetch())

	jobs, err := d.svc.ListJobs(run)
	if err != nil {
		d.logger.Error("failed to list workflow jobs", "run", run.ID, "err", err)
		d.setLoading(gen, Failed(err.Error()))
		return
	}
	d.onLoad(gen, jobs)
}

func (d *JobDetailPanel) onLoad(gen uint64, jobs []model.WorkflowJob) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen {
		// A fetch from a superseded poller completes after a new Show;
		// its result is discarded.
		return
	}
	d.jobs = jobs
	d.loading = d.loading.Transition(Succeeded(time.Now()))
}

func (d *JobDetailPanel) setLoading(gen uint64, ev LoadEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen {
		return
	}
	d.loading = d.loading.Transition(ev)
}

// View renders the jobs table inside a bordered box.
func (d *JobDetailPanel) View(width, height int) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	inner := width - 2
	cols := []column{
		{title: "Job Name"},
		{title: "Started At", width: 19},
		{title: "Completed At", width: 19},
		{title: "Status", width: 11},
		{title: "Conclusion", width: 15},
	}

	rows := make([][]string, 0, len(d.jobs))
	for _, job := range d.jobs {
		completed := ""
		if job.CompletedAt != nil {
			completed = job.CompletedAt.Local().Format(timeColumnLayout)
		}
		rows = append(rows, []string{
			job.Name,
			job.StartedAt.Local().Format(timeColumnLayout),
			completed,
			job.Status.Display(),
			job.Conclusion.Display(),
		})
	}

	title := d.styles.Header.Render("Workflow Jobs") +
		"  " + d.styles.Status.Render(d.loading.String())
	tableLines := renderTable(d.styles, cols, rows, &d.table, inner, height-4)
	footer := d.styles.HelpBar.Render("esc to close")

	content := title + "\n" + strings.Join(tableLines, "\n") + "\n" + footer
	return d.styles.Panel.Width(inner).Render(content)
}
