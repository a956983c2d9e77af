package gh

import (
	"time"

	"github.com/s22625/ghdash/internal/model"
)

// Wire types for the actions endpoints, reduced to the fields the
// dashboard uses.

type runsResponse struct {
	TotalCount   int           `json:"total_count"`
	WorkflowRuns []workflowRun `json:"workflow_runs"`
}

type workflowRun struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	HeadBranch string    `json:"head_branch"`
	Status     string    `json:"status"`
	Conclusion string    `json:"conclusion"`
	HTMLURL    string    `json:"html_url"`
	CreatedAt  time.Time `json:"created_at"`
	HeadCommit struct {
		Message string `json:"message"`
	} `json:"head_commit"`
	Repository struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
	} `json:"repository"`
}

func (r workflowRun) toModel() model.WorkflowRun {
	return model.WorkflowRun{
		ID:            r.ID,
		Owner:         r.Repository.Owner.Login,
		Repo:          r.Repository.Name,
		Name:          r.Name,
		Branch:        r.HeadBranch,
		CommitMessage: r.HeadCommit.Message,
		StartTime:     r.CreatedAt,
		Status:        model.RunStatus(r.Status),
		Conclusion:    model.RunConclusion(r.Conclusion),
		URL:           r.HTMLURL,
	}
}

type jobsResponse struct {
	TotalCount int           `json:"total_count"`
	Jobs       []workflowJob `json:"jobs"`
}

type workflowJob struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	Conclusion  string     `json:"conclusion"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	HTMLURL     string     `json:"html_url"`
}

func (j workflowJob) toModel() model.WorkflowJob {
	return model.WorkflowJob{
		ID:          j.ID,
		Name:        j.Name,
		StartedAt:   j.StartedAt,
		CompletedAt: j.CompletedAt,
		Status:      model.JobStatus(j.Status),
		Conclusion:  model.JobConclusion(j.Conclusion),
		URL:         j.HTMLURL,
	}
}
