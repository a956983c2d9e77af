// Package gh is the REST client for the GitHub Actions API. It holds one
// explicit client handle; nothing in this package is process-global.
package gh

import (
	"fmt"
	"net/url"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"

	"github.com/s22625/ghdash/internal/model"
)

const requestTimeout = 30 * time.Second

// Client wraps a go-gh REST client for the configured host.
type Client struct {
	rest *api.RESTClient
}

// NewClient builds a client for host authenticated with token.
func NewClient(host, token string) (*Client, error) {
	rest, err := api.NewRESTClient(api.ClientOptions{
		Host:      host,
		AuthToken: token,
		Timeout:   requestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create rest client for %s: %w", host, err)
	}
	return &Client{rest: rest}, nil
}

// ListWorkflowRuns fetches the most recent workflow runs for one
// repository target, filtered to its branch and actor and bounded by its
// page size.
func (c *Client) ListWorkflowRuns(repo model.Repository) ([]model.WorkflowRun, error) {
	repo = repo.Normalized()

	query := url.Values{}
	query.Set("per_page", fmt.Sprintf("%d", repo.PageSize))
	query.Set("branch", repo.Branch)
	if repo.Actor != "" {
		query.Set("actor", repo.Actor)
	}
	endpoint := fmt.Sprintf("repos/%s/actions/runs?%s", repo.Slug(), query.Encode())

	var resp runsResponse
	if err := c.rest.Get(endpoint, &resp); err != nil {
		return nil, fmt.Errorf("list runs for %s: %w", repo.Slug(), err)
	}

	runs := make([]model.WorkflowRun, 0, len(resp.WorkflowRuns))
	for _, dto := range resp.WorkflowRuns {
		runs = append(runs, dto.toModel())
	}
	return runs, nil
}

// ListWorkflowJobs fetches the jobs of one run, in provider order.
func (c *Client) ListWorkflowJobs(run model.WorkflowRun) ([]model.WorkflowJob, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/actions/runs/%d/jobs", run.Owner, run.Repo, run.ID)

	var resp jobsResponse
	if err := c.rest.Get(endpoint, &resp); err != nil {
		return nil, fmt.Errorf("list jobs for %s run %d: %w", run.Slug(), run.ID, err)
	}

	jobs := make([]model.WorkflowJob, 0, len(resp.Jobs))
	for _, dto := range resp.Jobs {
		jobs = append(jobs, dto.toModel())
	}
	return jobs, nil
}
