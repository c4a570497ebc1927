package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-analyzer/internal/models"
)

func TestSessionStoreReplacesResultWholesale(t *testing.T) {
	store := NewSessionStore()
	sessionID := store.NewSession()

	first := &models.AnalysisResult{FitScore: "first", State: models.StateComplete}
	second := &models.AnalysisResult{FitScore: "second", State: models.StateComplete}

	store.SetResult(sessionID, first)
	store.SetResult(sessionID, second)

	got, ok := store.GetResult(sessionID)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestSessionStoreIsolatesSessions(t *testing.T) {
	store := NewSessionStore()

	a := store.NewSession()
	b := store.NewSession()
	require.NotEqual(t, a, b)

	store.SetResult(a, &models.AnalysisResult{FitScore: "for a"})

	_, ok := store.GetResult(b)
	assert.False(t, ok)

	got, ok := store.GetResult(a)
	require.True(t, ok)
	assert.Equal(t, "for a", got.FitScore)
}

func TestSessionStoreClear(t *testing.T) {
	store := NewSessionStore()
	sessionID := store.NewSession()

	store.SetResult(sessionID, &models.AnalysisResult{})
	store.Clear(sessionID)

	_, ok := store.GetResult(sessionID)
	assert.False(t, ok)
}
