package model

import (
	"testing"
	"time"
)

func TestRunConclusionDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   RunConclusion
		want string
	}{
		{name: "pending default", in: RunConclusionPending, want: "⌛ Pending"},
		{name: "success", in: RunConclusionSuccess, want: "✅ Success"},
		{name: "failure", in: RunConclusionFailure, want: "❌ Failure"},
		{name: "unknown passes through", in: RunConclusion("startup_failure"), want: "startup_failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Display(); got != tt.want {
				t.Fatalf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJobConclusionDisplay(t *testing.T) {
	known := []JobConclusion{
		JobConclusionNeutral,
		JobConclusionActionRequired,
		JobConclusionCancelled,
		JobConclusionFailure,
		JobConclusionSkipped,
		JobConclusionSuccess,
		JobConclusionTimedOut,
	}
	for _, c := range known {
		if c.Display() == "" {
			t.Fatalf("conclusion %q has an empty display label", string(c))
		}
		if c != JobConclusionNeutral && c.Display() == string(c) {
			t.Fatalf("conclusion %q has no human label", string(c))
		}
	}

	if got := JobConclusion("").Display(); got != "Neutral" {
		t.Fatalf("missing conclusion = %q, want Neutral", got)
	}
	if got := JobConclusion("stale").Display(); got != "stale" {
		t.Fatalf("unknown conclusion = %q, want verbatim passthrough", got)
	}
}

func TestStatusDisplay(t *testing.T) {
	statuses := []JobStatus{
		JobStatusPending,
		JobStatusQueued,
		JobStatusInProgress,
		JobStatusCompleted,
		JobStatusFailed,
	}
	for _, s := range statuses {
		if s.Display() == "" {
			t.Fatalf("job status %q has an empty display label", string(s))
		}
	}
	if got := JobStatusPending.Display(); got != "Pending" {
		t.Fatalf("pending placeholder = %q, want Pending", got)
	}

	if got := RunStatusInProgress.Display(); got != "In Progress" {
		t.Fatalf("run status = %q, want In Progress", got)
	}
	if got := RunStatus("waiting").Display(); got != "waiting" {
		t.Fatalf("unknown run status = %q, want verbatim passthrough", got)
	}
}

func TestRepositoryNormalized(t *testing.T) {
	r := Repository{Owner: "s22625", Name: "ghdash"}.Normalized()
	if r.Branch != "main" {
		t.Fatalf("Branch = %q, want main", r.Branch)
	}
	if r.PageSize != 1 {
		t.Fatalf("PageSize = %d, want 1", r.PageSize)
	}

	r = Repository{Owner: "o", Name: "n", Branch: "dev", PageSize: 5}.Normalized()
	if r.Branch != "dev" || r.PageSize != 5 {
		t.Fatalf("explicit values were overwritten: %+v", r)
	}
}

func TestCommitTitle(t *testing.T) {
	run := WorkflowRun{CommitMessage: "fix flaky test\n\nlong body here"}
	if got := run.CommitTitle(); got != "fix flaky test" {
		t.Fatalf("CommitTitle() = %q", got)
	}

	run = WorkflowRun{CommitMessage: "single line"}
	if got := run.CommitTitle(); got != "single line" {
		t.Fatalf("CommitTitle() = %q", got)
	}
}

func TestWorkflowJobString(t *testing.T) {
	done := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	j := WorkflowJob{
		ID:          7,
		Name:        "build",
		StartedAt:   done.Add(-time.Minute),
		CompletedAt: &done,
		Status:      JobStatusCompleted,
		Conclusion:  JobConclusionSuccess,
		URL:         "https://github.com/s22625/ghdash/runs/7",
	}
	want := "WorkflowJob<id=7, name=build, status=Completed, conclusion=✅ Success, url=https://github.com/s22625/ghdash/runs/7>"
	if got := j.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
