package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeharte/wizard-arena/internal/storage"
)

func TestHandleTimedOutMatch(t *testing.T) {
	repo, m := buildMatch(t)

	require.NoError(t, HandleTimedOutMatch(repo, m))

	assert.Equal(t, storage.MatchFinished, m.Status)
	assert.Equal(t, "Patient Foe", m.Winner)
	assert.Equal(t, storage.EndReasonTimeout, m.EndReason)
	assert.True(t, m.StatsCounted)
	assert.Equal(t, 1, repo.statsCalls)
	assert.False(t, repo.resigned, "a timeout is not a resignation")
}

func TestHandleTimedOutMatch_FinishedMatchIsNoOp(t *testing.T) {
	repo, m := buildMatch(t)
	m.Status = storage.MatchFinished

	require.NoError(t, HandleTimedOutMatch(repo, m))
	assert.Zero(t, repo.statsCalls)
}
