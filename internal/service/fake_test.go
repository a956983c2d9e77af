package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s22625/ghdash/internal/model"
)

func TestRandomFakeDeterministic(t *testing.T) {
	a := NewRandomFake(7)
	b := NewRandomFake(7)

	runsA, err := a.ListRuns(nil)
	require.NoError(t, err)
	runsB, err := b.ListRuns(nil)
	require.NoError(t, err)

	require.Equal(t, len(runsA), len(runsB))
	for i := range runsA {
		assert.Equal(t, runsA[i].ID, runsB[i].ID)
		assert.Equal(t, runsA[i].Repo, runsB[i].Repo)
		assert.Equal(t, runsA[i].Conclusion, runsB[i].Conclusion)
	}

	jobsA, err := a.ListJobs(model.WorkflowRun{})
	require.NoError(t, err)
	require.NotEmpty(t, jobsA)
}

func TestScriptedFake(t *testing.T) {
	runs := []model.WorkflowRun{{ID: 1, Repo: "ghdash"}}
	f := NewFake(runs, nil)

	got, err := f.ListRuns(nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// Callers get a copy, not the fake's backing slice.
	got[0].Repo = "mutated"
	again, err := f.ListRuns(nil)
	require.NoError(t, err)
	assert.Equal(t, "ghdash", again[0].Repo)

	f.FailRuns(errors.New("scripted failure"))
	_, err = f.ListRuns(nil)
	require.Error(t, err)
}
