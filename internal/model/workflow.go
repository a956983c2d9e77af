package model

import (
	"fmt"
	"strings"
	"time"
)

// RunStatus is the lifecycle phase of a workflow run as reported by the
// provider. Unrecognized provider values pass through verbatim so new
// phases never break decoding.
type RunStatus string

const (
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusCompleted  RunStatus = "completed"
)

// Display returns the human label for the status.
func (s RunStatus) Display() string {
	switch s {
	case RunStatusInProgress:
		return "In Progress"
	case RunStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// RunConclusion is the terminal outcome of a workflow run. The provider
// omits it while a run is still going, which maps to Pending.
type RunConclusion string

const (
	RunConclusionPending RunConclusion = ""
	RunConclusionSuccess RunConclusion = "success"
	RunConclusionFailure RunConclusion = "failure"
)

// Display returns the human label for the conclusion, glyph included.
func (c RunConclusion) Display() string {
	switch c {
	case RunConclusionPending:
		return "⌛ Pending"
	case RunConclusionSuccess:
		return "✅ Success"
	case RunConclusionFailure:
		return "❌ Failure"
	default:
		return string(c)
	}
}

// JobStatus is the lifecycle phase of a single job within a run.
type JobStatus string

const (
	JobStatusPending    JobStatus = ""
	JobStatusQueued     JobStatus = "queued"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Display returns the human label for the status. Every known phase has a
// non-empty label, including the pending placeholder the provider reports
// before a job is scheduled.
func (s JobStatus) Display() string {
	switch s {
	case JobStatusPending:
		return "Pending"
	case JobStatusQueued:
		return "Queued"
	case JobStatusInProgress:
		return "In Progress"
	case JobStatusCompleted:
		return "Completed"
	case JobStatusFailed:
		return "Failed"
	default:
		return string(s)
	}
}

// JobConclusion is the terminal outcome of a job. A job without a
// conclusion yet is Neutral.
type JobConclusion string

const (
	JobConclusionNeutral        JobConclusion = "neutral"
	JobConclusionActionRequired JobConclusion = "action_required"
	JobConclusionCancelled      JobConclusion = "cancelled"
	JobConclusionFailure        JobConclusion = "failure"
	JobConclusionSkipped        JobConclusion = "skipped"
	JobConclusionSuccess        JobConclusion = "success"
	JobConclusionTimedOut       JobConclusion = "timed_out"
)

// Display returns the human label for the conclusion, glyph included.
func (c JobConclusion) Display() string {
	switch c {
	case JobConclusionNeutral, "":
		return "Neutral"
	case JobConclusionActionRequired:
		return "Action Required"
	case JobConclusionCancelled:
		return "🛑 Cancelled"
	case JobConclusionFailure:
		return "❌ Failure"
	case JobConclusionSkipped:
		return "⏩ Skipped"
	case JobConclusionSuccess:
		return "✅ Success"
	case JobConclusionTimedOut:
		return "⏱️ Timed Out"
	default:
		return string(c)
	}
}

// WorkflowRun is one execution of a CI workflow. Values are built once by
// the fetch layer and never mutated afterwards.
type WorkflowRun struct {
	ID            int64
	Owner         string
	Repo          string
	Name          string
	Branch        string
	CommitMessage string
	StartTime     time.Time
	Status        RunStatus
	Conclusion    RunConclusion
	URL           string
}

// Slug returns the "owner/repo" the run belongs to.
func (r WorkflowRun) Slug() string {
	return r.Owner + "/" + r.Repo
}

// CommitTitle returns the first line of the commit message.
func (r WorkflowRun) CommitTitle() string {
	title, _, _ := strings.Cut(r.CommitMessage, "\n")
	return title
}

func (r WorkflowRun) String() string {
	return fmt.Sprintf("WorkflowRun<id=%d, repo=%s/%s, name=%s, status=%s, conclusion=%s, url=%s>",
		r.ID, r.Owner, r.Repo, r.Name, r.Status.Display(), r.Conclusion.Display(), r.URL)
}

// WorkflowJob is one unit of work within a run. CompletedAt is nil while
// the job is still going.
type WorkflowJob struct {
	ID          int64
	Name        string
	StartedAt   time.Time
	CompletedAt *time.Time
	Status      JobStatus
	Conclusion  JobConclusion
	URL         string
}

func (j WorkflowJob) String() string {
	return fmt.Sprintf("WorkflowJob<id=%d, name=%s, status=%s, conclusion=%s, url=%s>",
		j.ID, j.Name, j.Status.Display(), j.Conclusion.Display(), j.URL)
}
