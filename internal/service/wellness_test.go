package service

import (
	"testing"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWellnessServiceForTest(t *testing.T) (*WellnessService, *mockWellnessRepo) {
	t.Helper()
	wellnessRepo := &mockWellnessRepo{}
	userRepo := newMockUserRepo()
	userRepo.users["u1"] = &model.User{ID: "u1", Email: "budi@kampus.ac.id"}
	return NewWellnessService(wellnessRepo, userRepo, newMockProfileRepo(), testEmailService()), wellnessRepo
}

func TestSubmitCheckInStoresScoredLog(t *testing.T) {
	svc, repo := newWellnessServiceForTest(t)

	result, err := svc.SubmitCheckIn("u1", "okay", []int{1, 0, 1, 0, 1, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Log.GAD7Score)
	assert.Equal(t, scoring.SeverityMinimal, result.Log.Severity)
	assert.Equal(t, "okay", result.Log.Mood)
	assert.False(t, result.Log.NeedsFollowUp)
	assert.Empty(t, result.CrisisResources)
	assert.Len(t, repo.logs, 1)
	assert.JSONEq(t, "[1,0,1,0,1,0,0]", repo.logs[0].Answers)
}

func TestSubmitCheckInSurfacesCrisisResources(t *testing.T) {
	svc, _ := newWellnessServiceForTest(t)

	// Score 14 crosses the follow-up threshold
	result, err := svc.SubmitCheckIn("u1", "anxious", []int{2, 2, 2, 2, 2, 2, 2})
	require.NoError(t, err)

	assert.True(t, result.Log.NeedsFollowUp)
	assert.Equal(t, scoring.SeverityModerate, result.Log.Severity)
	assert.Equal(t, CrisisResources, result.CrisisResources)
}

func TestSubmitCheckInBlocksInvalidAnswers(t *testing.T) {
	svc, repo := newWellnessServiceForTest(t)

	_, err := svc.SubmitCheckIn("u1", "okay", []int{1, 2, 3})
	assert.ErrorIs(t, err, scoring.ErrIncompleteQuestionnaire)

	_, err = svc.SubmitCheckIn("u1", "okay", []int{1, 1, 1, 1, 1, 1, 4})
	assert.ErrorIs(t, err, scoring.ErrAnswerOutOfRange)

	// Invalid questionnaires never reach storage
	assert.Empty(t, repo.logs)
}

func seedWellnessLog(repo *mockWellnessRepo, userID string, score int, at time.Time) {
	repo.logs = append(repo.logs, &model.WellnessLog{
		UserID:    userID,
		GAD7Score: score,
		CreatedAt: at,
	})
}

func TestTrendComparesAdjacentMonths(t *testing.T) {
	svc, repo := newWellnessServiceForTest(t)

	march := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	seedWellnessLog(repo, "u1", 12, march)
	seedWellnessLog(repo, "u1", 10, march)
	seedWellnessLog(repo, "u1", 5, april)

	// Lower average score is an improvement
	trend, err := svc.Trend("u1", april)
	require.NoError(t, err)
	assert.Equal(t, scoring.TrendImproving, trend)
}

func TestTrendWorseningWhenScoresRise(t *testing.T) {
	svc, repo := newWellnessServiceForTest(t)

	march := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	seedWellnessLog(repo, "u1", 4, march)
	seedWellnessLog(repo, "u1", 9, april)

	trend, err := svc.Trend("u1", april)
	require.NoError(t, err)
	assert.Equal(t, scoring.TrendWorsening, trend)
}

func TestTrendStableForSmallSwings(t *testing.T) {
	svc, repo := newWellnessServiceForTest(t)

	march := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	seedWellnessLog(repo, "u1", 6, march)
	seedWellnessLog(repo, "u1", 6, april)

	trend, err := svc.Trend("u1", april)
	require.NoError(t, err)
	assert.Equal(t, scoring.TrendStable, trend)
}

func TestTrendStableWithoutHistory(t *testing.T) {
	svc, repo := newWellnessServiceForTest(t)

	april := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	// No data at all
	trend, err := svc.Trend("u1", april)
	require.NoError(t, err)
	assert.Equal(t, scoring.TrendStable, trend)

	// Data only in the current month, none before
	seedWellnessLog(repo, "u1", 15, april)
	trend, err = svc.Trend("u1", april)
	require.NoError(t, err)
	assert.Equal(t, scoring.TrendStable, trend)
}

func TestHistoryClampsLimit(t *testing.T) {
	svc, repo := newWellnessServiceForTest(t)

	now := time.Now()
	for i := 0; i < 40; i++ {
		seedWellnessLog(repo, "u1", 3, now.Add(time.Duration(i)*time.Hour))
	}

	logs, err := svc.History("u1", 0)
	require.NoError(t, err)
	assert.Len(t, logs, 30)

	logs, err = svc.History("u1", 5)
	require.NoError(t, err)
	assert.Len(t, logs, 5)
}
