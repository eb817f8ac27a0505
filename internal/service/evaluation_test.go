package service

import (
	"testing"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/scoring"
	"github.com/careerpathid/careerpath/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evaluationFixture struct {
	svc           *EvaluationService
	userSkillRepo *mockUserSkillRepo
	courseRepo    *mockCourseRepo
	jobRepo       *mockJobRepo
	targetRepo    *mockTargetRepo
	wellnessRepo  *mockWellnessRepo
}

func newEvaluationFixture(t *testing.T) *evaluationFixture {
	t.Helper()

	f := &evaluationFixture{
		userSkillRepo: &mockUserSkillRepo{},
		courseRepo:    newMockCourseRepo(),
		jobRepo:       newMockJobRepo(),
		targetRepo:    &mockTargetRepo{},
		wellnessRepo:  &mockWellnessRepo{},
	}

	userRepo := newMockUserRepo()
	userRepo.users["u1"] = &model.User{ID: "u1", Email: "siti@kampus.ac.id"}
	wellness := NewWellnessService(f.wellnessRepo, userRepo, newMockProfileRepo(), testEmailService())

	f.svc = NewEvaluationService(f.userSkillRepo, f.courseRepo, f.jobRepo, f.targetRepo, wellness)
	return f
}

func TestEvaluateRejectsBadMonth(t *testing.T) {
	f := newEvaluationFixture(t)

	_, err := f.svc.Evaluate("u1", "Agustus 2026")
	assert.ErrorIs(t, err, validation.ErrInvalidMonth)
}

func TestEvaluateEmptyMonthScoresWellnessOnly(t *testing.T) {
	f := newEvaluationFixture(t)

	report, err := f.svc.Evaluate("u1", "2026-08")
	require.NoError(t, err)

	// No activity and no wellness history: only the stable-trend points
	assert.Equal(t, scoring.TrendStable, report.Activity.WellnessTrend)
	assert.Equal(t, scoring.EvalWellnessStable, report.Evaluation.WellnessScore)
	assert.Equal(t, int(scoring.EvalWellnessStable), report.Evaluation.TotalScore)
	assert.Equal(t, "D", report.Evaluation.Grade)
}

func TestEvaluateAggregatesMonthActivity(t *testing.T) {
	f := newEvaluationFixture(t)

	inMonth := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	before := inMonth.AddDate(0, -2, 0)

	// Two skills added this month, one added earlier and improved now
	f.userSkillRepo.skills = []*model.UserSkill{
		{ID: "us1", UserID: "u1", CreatedAt: inMonth, UpdatedAt: inMonth},
		{ID: "us2", UserID: "u1", CreatedAt: inMonth, UpdatedAt: inMonth},
		{ID: "us3", UserID: "u1", CreatedAt: before, UpdatedAt: inMonth},
	}

	// A 10-hour course completed this month
	f.courseRepo.courses["c1"] = &model.Course{ID: "c1", DurationHours: 10}
	completed := inMonth
	f.courseRepo.enrollments = []*model.UserCourse{
		{ID: "e1", UserID: "u1", CourseID: "c1", StartedAt: before, CompletedAt: &completed},
	}

	// Two applications
	f.jobRepo.applications = []*model.JobApplication{
		{UserID: "u1", JobID: "j1", AppliedAt: inMonth},
		{UserID: "u1", JobID: "j2", AppliedAt: inMonth},
	}

	// Both targets achieved
	achieved := inMonth
	f.targetRepo.targets = []*model.Target{
		{ID: "t1", UserID: "u1", Month: "2026-08", Achieved: true, AchievedAt: &achieved},
		{ID: "t2", UserID: "u1", Month: "2026-08", Achieved: true, AchievedAt: &achieved},
	}

	// Wellness improved against July
	seedWellnessLog(f.wellnessRepo, "u1", 10, inMonth.AddDate(0, -1, 0))
	seedWellnessLog(f.wellnessRepo, "u1", 4, inMonth)

	report, err := f.svc.Evaluate("u1", "2026-08")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Activity.SkillsAdded)
	assert.Equal(t, 1, report.Activity.SkillsImproved)
	assert.Equal(t, 10.0, report.Activity.LearningHours)
	assert.Equal(t, 2, report.Activity.JobsApplied)
	assert.Equal(t, scoring.TrendImproving, report.Activity.WellnessTrend)
	assert.Equal(t, 2, report.Activity.TargetsSet)
	assert.Equal(t, 2, report.Activity.TargetsAchieved)

	// 30 (skills, capped) + 15 (learning) + 6 (jobs) + 15 (wellness) + 15 (targets) = 81
	assert.Equal(t, 81, report.Evaluation.TotalScore)
	assert.Equal(t, "A", report.Evaluation.Grade)
}

func TestEvaluateIgnoresOtherMonths(t *testing.T) {
	f := newEvaluationFixture(t)

	july := time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC)
	f.userSkillRepo.skills = []*model.UserSkill{
		{ID: "us1", UserID: "u1", CreatedAt: july, UpdatedAt: july},
	}
	f.jobRepo.applications = []*model.JobApplication{
		{UserID: "u1", JobID: "j1", AppliedAt: july},
	}

	report, err := f.svc.Evaluate("u1", "2026-08")
	require.NoError(t, err)

	assert.Zero(t, report.Activity.SkillsAdded)
	assert.Zero(t, report.Activity.JobsApplied)
}
