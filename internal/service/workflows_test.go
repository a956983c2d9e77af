package service

import (
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s22625/ghdash/internal/model"
)

// stubAPI serves canned per-repository responses.
type stubAPI struct {
	runsBySlug map[string][]model.WorkflowRun
	errBySlug  map[string]error
	jobs       []model.WorkflowJob
	jobsErr    error
}

func (s *stubAPI) ListWorkflowRuns(repo model.Repository) ([]model.WorkflowRun, error) {
	if err := s.errBySlug[repo.Slug()]; err != nil {
		return nil, err
	}
	return s.runsBySlug[repo.Slug()], nil
}

func (s *stubAPI) ListWorkflowJobs(model.WorkflowRun) ([]model.WorkflowJob, error) {
	if s.jobsErr != nil {
		return nil, s.jobsErr
	}
	return s.jobs, nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func repoN(i int) model.Repository {
	return model.Repository{Owner: "org", Name: fmt.Sprintf("repo-%d", i)}
}

func runAt(slug string, t time.Time) model.WorkflowRun {
	return model.WorkflowRun{Owner: "org", Repo: slug, Name: "CI", StartTime: t}
}

func TestListRunsPartialFailure(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	api := &stubAPI{
		runsBySlug: map[string][]model.WorkflowRun{},
		errBySlug:  map[string]error{},
	}
	repos := make([]model.Repository, 0, 5)
	for i := 0; i < 5; i++ {
		repo := repoN(i)
		repos = append(repos, repo)
		if i == 1 || i == 3 {
			api.errBySlug[repo.Slug()] = errors.New("boom")
			continue
		}
		api.runsBySlug[repo.Slug()] = []model.WorkflowRun{
			runAt(repo.Name, base.Add(time.Duration(i)*time.Minute)),
		}
	}

	svc := NewGitHub(api, quietLogger())
	runs, err := svc.ListRuns(repos)
	require.NoError(t, err, "per-repo failures must not surface")
	require.Len(t, runs, 3)

	for i := 1; i < len(runs); i++ {
		assert.False(t, runs[i].StartTime.After(runs[i-1].StartTime),
			"runs must be sorted most recent first")
	}
	for _, run := range runs {
		assert.NotEqual(t, "repo-1", run.Repo)
		assert.NotEqual(t, "repo-3", run.Repo)
	}
}

func TestListRunsMergeSort(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	api := &stubAPI{runsBySlug: map[string][]model.WorkflowRun{
		"org/repo-0": {runAt("repo-0", base.Add(-10 * time.Minute))},
		"org/repo-1": {runAt("repo-1", base.Add(-5 * time.Minute))},
		"org/repo-2": {runAt("repo-2", base.Add(-20 * time.Minute))},
	}}

	svc := NewGitHub(api, quietLogger())
	runs, err := svc.ListRuns([]model.Repository{repoN(0), repoN(1), repoN(2)})
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, "repo-1", runs[0].Repo)
	assert.Equal(t, "repo-0", runs[1].Repo)
	assert.Equal(t, "repo-2", runs[2].Repo)
}

func TestListRunsAllFail(t *testing.T) {
	api := &stubAPI{errBySlug: map[string]error{
		"org/repo-0": errors.New("boom"),
		"org/repo-1": errors.New("boom"),
	}}

	svc := NewGitHub(api, quietLogger())
	runs, err := svc.ListRuns([]model.Repository{repoN(0), repoN(1)})
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestListJobsWrapsError(t *testing.T) {
	api := &stubAPI{jobsErr: errors.New("401 unauthorized")}
	svc := NewGitHub(api, quietLogger())

	_, err := svc.ListJobs(model.WorkflowRun{ID: 1, Owner: "org", Repo: "repo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting workflow jobs")
	assert.Contains(t, err.Error(), "401 unauthorized")
}

func TestListJobsProviderOrder(t *testing.T) {
	api := &stubAPI{jobs: []model.WorkflowJob{
		{ID: 3, Name: "setup"},
		{ID: 1, Name: "build"},
		{ID: 2, Name: "test"},
	}}
	svc := NewGitHub(api, quietLogger())

	jobs, err := svc.ListJobs(model.WorkflowRun{ID: 1})
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "setup", jobs[0].Name)
	assert.Equal(t, "build", jobs[1].Name)
	assert.Equal(t, "test", jobs[2].Name)
}
