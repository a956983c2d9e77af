// Package service fetches workflow data for the dashboard panels. It is a
// pure request-to-result layer: it never touches panel state, so the
// panels stay free to guard their own state however they like.
package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/s22625/ghdash/internal/model"
)

// WorkflowService is the capability the panels poll against. Implemented
// by the real GitHub service and by Fake for tests and demo mode.
type WorkflowService interface {
	ListRuns(repos []model.Repository) ([]model.WorkflowRun, error)
	ListJobs(run model.WorkflowRun) ([]model.WorkflowJob, error)
}

// API is the per-repository provider surface GitHub fans out over.
// *gh.Client satisfies it.
type API interface {
	ListWorkflowRuns(repo model.Repository) ([]model.WorkflowRun, error)
	ListWorkflowJobs(run model.WorkflowRun) ([]model.WorkflowJob, error)
}

// GitHub lists runs across many repositories concurrently.
type GitHub struct {
	api    API
	logger *log.Logger
}

// NewGitHub creates the service over the given provider client.
func NewGitHub(api API, logger *log.Logger) *GitHub {
	if logger == nil {
		logger = log.Default()
	}
	return &GitHub{api: api, logger: logger}
}

// ListRuns issues one request per repository target and merges the
// results, most recent first. A single repository failing is logged and
// contributes zero rows; it never fails the call as a whole.
func (s *GitHub) ListRuns(repos []model.Repository) ([]model.WorkflowRun, error) {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		merged []model.WorkflowRun
	)

	for _, repo := range repos {
		wg.Add(1)
		go func(repo model.Repository) {
			defer wg.Done()
			runs, err := s.api.ListWorkflowRuns(repo)
			if err != nil {
				s.logger.Error("failed to list workflow runs", "repo", repo.Slug(), "err", err)
				return
			}
			mu.Lock()
			merged = append(merged, runs...)
			mu.Unlock()
		}(repo)
	}
	wg.Wait()

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StartTime.After(merged[j].StartTime)
	})

	return merged, nil
}

// ListJobs fetches the jobs of one run, in provider order.
func (s *GitHub) ListJobs(run model.WorkflowRun) ([]model.WorkflowJob, error) {
	jobs, err := s.api.ListWorkflowJobs(run)
	if err != nil {
		return nil, fmt.Errorf("getting workflow jobs: %w", err)
	}
	return jobs, nil
}
