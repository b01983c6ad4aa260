package pairwise_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"suasor/recommend/pairwise"
	"suasor/types/models"
)

func setupTrainerDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.PairwiseSession{},
		&models.PairwiseJudgment{},
		&models.PersonaDelta{},
	))
	return db
}

func TestCreateSessionRejectsTinyPool(t *testing.T) {
	db := setupTrainerDB(t)
	tr := pairwise.NewTrainer(db, nil, nil, nil)

	_, err := tr.CreateSession(context.Background(), 1, "cozy mysteries", "movie", []uint64{1})
	assert.Error(t, err)
}

func TestCreateSessionAssignsTotalPairsByPoolBand(t *testing.T) {
	db := setupTrainerDB(t)
	tr := pairwise.NewTrainer(db, nil, nil, nil)

	pool := make([]uint64, 20)
	for i := range pool {
		pool[i] = uint64(i + 1)
	}
	session, err := tr.CreateSession(context.Background(), 1, "", "movie", pool)
	require.NoError(t, err)
	assert.Equal(t, 20, len(session.CandidatePool))
	assert.Equal(t, models.PairwiseSessionActive, session.Status)
	assert.NotZero(t, session.TotalPairs)
}

func TestNextPairServesRoundRobinAndSkipsJudged(t *testing.T) {
	db := setupTrainerDB(t)
	tr := pairwise.NewTrainer(db, nil, nil, nil)
	ctx := context.Background()

	session, err := tr.CreateSession(ctx, 1, "", "movie", []uint64{10, 20, 30})
	require.NoError(t, err)

	p1, err := tr.NextPair(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, p1)
	assert.Equal(t, uint64(10), p1.A)
	assert.Equal(t, uint64(20), p1.B)

	require.NoError(t, tr.SubmitJudgment(ctx, session.ID, p1.A, p1.B, models.WinnerA, 1200))

	p2, err := tr.NextPair(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, p2)
	assert.NotEqual(t, *p1, *p2, "a judged pair must not be served again")
}

func TestNextPairReturnsNilOncePoolIsExhausted(t *testing.T) {
	db := setupTrainerDB(t)
	tr := pairwise.NewTrainer(db, nil, nil, nil)
	ctx := context.Background()

	// a 2-item pool has only one distinct pair, but its TotalPairs target
	// (the minTotalPairs floor) is higher than that, so the session stays
	// active past its only available pair.
	session, err := tr.CreateSession(ctx, 1, "", "movie", []uint64{1, 2})
	require.NoError(t, err)
	require.Greater(t, session.TotalPairs, 1)

	require.NoError(t, tr.SubmitJudgment(ctx, session.ID, 1, 2, models.WinnerA, 500))

	status, err := tr.SessionStatus(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, models.PairwiseSessionActive, status.Status)

	p, err := tr.NextPair(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, p, "no further pairs exist in an exhausted 2-item pool")
}

func TestSubmitJudgmentCompletesSessionAtTotalPairs(t *testing.T) {
	db := setupTrainerDB(t)
	tr := pairwise.NewTrainer(db, nil, nil, nil)
	ctx := context.Background()

	pool := []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	session, err := tr.CreateSession(ctx, 1, "", "movie", pool)
	require.NoError(t, err)
	require.Equal(t, 15, session.TotalPairs, "an 11-item pool falls in the mid band")

	for i := 0; i < session.TotalPairs; i++ {
		pair, err := tr.NextPair(ctx, session.ID)
		require.NoError(t, err)
		require.NotNil(t, pair, "iteration %d", i)
		require.NoError(t, tr.SubmitJudgment(ctx, session.ID, pair.A, pair.B, models.WinnerA, 100))
	}

	status, err := tr.SessionStatus(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PairwiseSessionCompleted, status.Status)
	assert.Equal(t, status.TotalPairs, status.CompletedPairs)
}

func TestSubmitJudgmentRejectsUnknownSession(t *testing.T) {
	db := setupTrainerDB(t)
	tr := pairwise.NewTrainer(db, nil, nil, nil)
	err := tr.SubmitJudgment(context.Background(), 999, 1, 2, models.WinnerA, 100)
	assert.Error(t, err)
}

func TestSubmitJudgmentRejectsInactiveSession(t *testing.T) {
	db := setupTrainerDB(t)
	tr := pairwise.NewTrainer(db, nil, nil, nil)
	ctx := context.Background()

	session, err := tr.CreateSession(ctx, 1, "", "movie", []uint64{1, 2})
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.PairwiseSession{}).Where("id = ?", session.ID).
		Update("status", models.PairwiseSessionAbandoned).Error)

	err = tr.SubmitJudgment(ctx, session.ID, 1, 2, models.WinnerA, 100)
	assert.Error(t, err)
}

func TestExpireStaleSessionsMarksOldActiveSessionsAbandoned(t *testing.T) {
	db := setupTrainerDB(t)
	tr := pairwise.NewTrainer(db, nil, nil, nil)
	ctx := context.Background()

	session, err := tr.CreateSession(ctx, 1, "", "movie", []uint64{1, 2, 3})
	require.NoError(t, err)

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Model(&models.PairwiseSession{}).Where("id = ?", session.ID).
		Update("updated_at", stale).Error)

	n, err := tr.ExpireStaleSessions(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	status, err := tr.SessionStatus(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PairwiseSessionAbandoned, status.Status)
}
