package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/s22625/ghdash/internal/model"
)

// Fake is a WorkflowService that serves scripted or seeded-random data.
// It backs --demo mode and the panel tests; it is injected through the
// same interface as the real service.
type Fake struct {
	mu   sync.Mutex
	rng  *rand.Rand
	runs []model.WorkflowRun
	jobs []model.WorkflowJob

	runsErr error
	jobsErr error
}

// NewFake returns a fake that always serves the given rows.
func NewFake(runs []model.WorkflowRun, jobs []model.WorkflowJob) *Fake {
	return &Fake{runs: runs, jobs: jobs}
}

// NewRandomFake returns a fake that generates up to 16 rows per call from
// the seed. The same seed yields the same sequence of responses.
func NewRandomFake(seed int64) *Fake {
	return &Fake{rng: rand.New(rand.NewSource(seed))}
}

// SetRuns replaces the scripted run rows.
func (f *Fake) SetRuns(runs []model.WorkflowRun) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = runs
}

// SetJobs replaces the scripted job rows.
func (f *Fake) SetJobs(jobs []model.WorkflowJob) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = jobs
}

// FailRuns makes subsequent ListRuns calls return err (nil to clear).
func (f *Fake) FailRuns(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runsErr = err
}

// FailJobs makes subsequent ListJobs calls return err (nil to clear).
func (f *Fake) FailJobs(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobsErr = err
}

// ListRuns implements WorkflowService.
func (f *Fake) ListRuns([]model.Repository) ([]model.WorkflowRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.runsErr != nil {
		return nil, f.runsErr
	}
	if f.rng != nil {
		return f.randomRuns(), nil
	}
	out := make([]model.WorkflowRun, len(f.runs))
	copy(out, f.runs)
	return out, nil
}

// ListJobs implements WorkflowService.
func (f *Fake) ListJobs(model.WorkflowRun) ([]model.WorkflowJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.jobsErr != nil {
		return nil, f.jobsErr
	}
	if f.rng != nil {
		return f.randomJobs(), nil
	}
	out := make([]model.WorkflowJob, len(f.jobs))
	copy(out, f.jobs)
	return out, nil
}

var fakeRepos = []model.Repository{
	{Owner: "s22625", Name: "ghdash"},
	{Owner: "s22625", Name: "orch"},
	{Owner: "charmbracelet", Name: "bubbletea"},
}

var fakeWorkflows = []string{"CI", "Release", "Nightly", "Docs"}

var fakeCommits = []string{
	"fix run sort under merged repos\n\nlonger explanation",
	"bump deps",
	"add actor filter to run listing",
	"retry transient fetch failures",
}

var fakeRunConclusions = []model.RunConclusion{
	model.RunConclusionPending,
	model.RunConclusionSuccess,
	model.RunConclusionFailure,
	model.RunConclusion("startup_failure"),
}

var fakeJobConclusions = []model.JobConclusion{
	model.JobConclusionNeutral,
	model.JobConclusionActionRequired,
	model.JobConclusionCancelled,
	model.JobConclusionFailure,
	model.JobConclusionSkipped,
	model.JobConclusionSuccess,
	model.JobConclusionTimedOut,
}

func (f *Fake) randomRuns() []model.WorkflowRun {
	n := f.rng.Intn(16) + 1
	now := time.Now()

	runs := make([]model.WorkflowRun, 0, n)
	for i := 0; i < n; i++ {
		repo := fakeRepos[f.rng.Intn(len(fakeRepos))]
		status := model.RunStatusCompleted
		conclusion := fakeRunConclusions[f.rng.Intn(len(fakeRunConclusions))]
		if conclusion == model.RunConclusionPending {
			status = model.RunStatusInProgress
		}
		runs = append(runs, model.WorkflowRun{
			ID:            int64(f.rng.Intn(1_000_000)),
			Owner:         repo.Owner,
			Repo:          repo.Name,
			Name:          fakeWorkflows[f.rng.Intn(len(fakeWorkflows))],
			Branch:        model.DefaultBranch,
			CommitMessage: fakeCommits[f.rng.Intn(len(fakeCommits))],
			StartTime:     now.Add(-time.Duration(f.rng.Intn(72)) * time.Hour),
			Status:        status,
			Conclusion:    conclusion,
			URL:           fmt.Sprintf("https://github.com/%s/actions/runs/%d", repo.Slug(), i),
		})
	}
	return runs
}

func (f *Fake) randomJobs() []model.WorkflowJob {
	n := f.rng.Intn(16) + 1
	now := time.Now()

	jobs := make([]model.WorkflowJob, 0, n)
	for i := 0; i < n; i++ {
		started := now.Add(-time.Duration(f.rng.Intn(120)) * time.Minute)
		job := model.WorkflowJob{
			ID:         int64(f.rng.Intn(1_000_000)),
			Name:       fmt.Sprintf("%s / job-%d", fakeWorkflows[f.rng.Intn(len(fakeWorkflows))], i),
			StartedAt:  started,
			Status:     model.JobStatusInProgress,
			Conclusion: fakeJobConclusions[f.rng.Intn(len(fakeJobConclusions))],
			URL:        fmt.Sprintf("https://github.com/s22625/ghdash/actions/jobs/%d", i),
		}
		if f.rng.Intn(2) == 0 {
			completed := started.Add(time.Duration(f.rng.Intn(30)) * time.Minute)
			job.CompletedAt = &completed
			job.Status = model.JobStatusCompleted
		}
		jobs = append(jobs, job)
	}
	return jobs
}
