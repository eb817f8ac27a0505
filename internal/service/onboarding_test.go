package service

import (
	"testing"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type onboardingFixture struct {
	svc          *OnboardingService
	drafts       *mockOnboardingRepo
	profileRepo  *mockProfileRepo
	wellnessRepo *mockWellnessRepo
	careerRepo   *mockCareerRepo
}

func newOnboardingFixture(t *testing.T) *onboardingFixture {
	t.Helper()

	f := &onboardingFixture{
		drafts:       newMockOnboardingRepo(),
		profileRepo:  newMockProfileRepo(),
		wellnessRepo: &mockWellnessRepo{},
		careerRepo:   newMockCareerRepo(),
	}

	f.profileRepo.profiles["u1"] = &model.Profile{ID: "p1", UserID: "u1"}
	f.careerRepo.careers["career-1"] = &model.Career{ID: "career-1", Title: "Backend Engineer"}

	userRepo := newMockUserRepo()
	userRepo.users["u1"] = &model.User{ID: "u1", Email: "dewi@kampus.ac.id"}

	wellness := NewWellnessService(f.wellnessRepo, userRepo, f.profileRepo, testEmailService())
	f.svc = NewOnboardingService(f.drafts, NewProfileService(f.profileRepo), wellness, NewCareerService(f.careerRepo))
	return f
}

// completeAnswers covers every required step of the wizard.
func completeAnswers() map[string]any {
	return map[string]any{
		"name":            "Dewi Lestari",
		"university":      "Universitas Indonesia",
		"major":           "Informatika",
		"graduation_year": float64(2027),
		"interests":       []any{"backend", "data"},
		"career_id":       "career-1",
		"mood":            "hopeful",
		"gad7_answers":    []any{float64(1), float64(0), float64(2), float64(1), float64(0), float64(1), float64(0)},
	}
}

func TestGetCreatesDraftAtStepOne(t *testing.T) {
	f := newOnboardingFixture(t)

	view, err := f.svc.Get("u1")
	require.NoError(t, err)

	assert.Equal(t, 1, view.CurrentStep)
	assert.Equal(t, OnboardingSteps, view.TotalSteps)
	assert.Empty(t, view.Answers)
	assert.False(t, view.CanProceed)

	// The draft is persisted, not just returned
	_, err = f.drafts.ByUserID("u1")
	assert.NoError(t, err)
}

func TestNextGatedByRequiredAnswers(t *testing.T) {
	f := newOnboardingFixture(t)

	_, err := f.svc.Next("u1")
	assert.ErrorIs(t, err, ErrStepIncomplete)

	_, err = f.svc.SaveAnswers("u1", map[string]any{"name": "  "})
	require.NoError(t, err)
	_, err = f.svc.Next("u1")
	assert.ErrorIs(t, err, ErrStepIncomplete)

	_, err = f.svc.SaveAnswers("u1", map[string]any{"name": "Dewi"})
	require.NoError(t, err)
	view, err := f.svc.Next("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, view.CurrentStep)
}

func TestSaveAnswersMergesWithoutMovingStep(t *testing.T) {
	f := newOnboardingFixture(t)

	_, err := f.svc.SaveAnswers("u1", map[string]any{"name": "Dewi"})
	require.NoError(t, err)
	view, err := f.svc.SaveAnswers("u1", map[string]any{"university": "UI"})
	require.NoError(t, err)

	assert.Equal(t, 1, view.CurrentStep)
	assert.Equal(t, "Dewi", view.Answers["name"])
	assert.Equal(t, "UI", view.Answers["university"])
}

func TestGraduationYearValidated(t *testing.T) {
	f := newOnboardingFixture(t)

	// Walk to the graduation year step
	_, err := f.svc.SaveAnswers("u1", map[string]any{
		"name": "Dewi", "university": "UI", "major": "Informatika",
	})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = f.svc.Next("u1")
		require.NoError(t, err)
	}

	_, err = f.svc.SaveAnswers("u1", map[string]any{"graduation_year": float64(1900)})
	require.NoError(t, err)
	_, err = f.svc.Next("u1")
	assert.ErrorIs(t, err, ErrStepIncomplete)

	_, err = f.svc.SaveAnswers("u1", map[string]any{"graduation_year": float64(2027)})
	require.NoError(t, err)
	view, err := f.svc.Next("u1")
	require.NoError(t, err)
	assert.Equal(t, 5, view.CurrentStep)
}

func TestBackStopsAtStepOne(t *testing.T) {
	f := newOnboardingFixture(t)

	view, err := f.svc.Back("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.CurrentStep)

	_, err = f.svc.SaveAnswers("u1", map[string]any{"name": "Dewi"})
	require.NoError(t, err)
	_, err = f.svc.Next("u1")
	require.NoError(t, err)

	view, err = f.svc.Back("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.CurrentStep)
	// Going back keeps the answers
	assert.Equal(t, "Dewi", view.Answers["name"])
}

func TestSubmitRefusesIncompleteAnswers(t *testing.T) {
	f := newOnboardingFixture(t)

	answers := completeAnswers()
	delete(answers, "mood")
	_, err := f.svc.SaveAnswers("u1", answers)
	require.NoError(t, err)

	_, err = f.svc.Submit("u1")
	assert.ErrorIs(t, err, ErrOnboardingComplete)

	// Nothing written and the draft survives for a retry
	assert.Empty(t, f.wellnessRepo.logs)
	assert.Empty(t, f.careerRepo.selections)
	_, err = f.drafts.ByUserID("u1")
	assert.NoError(t, err)
}

func TestSubmitFansOutAndDeletesDraft(t *testing.T) {
	f := newOnboardingFixture(t)

	_, err := f.svc.SaveAnswers("u1", completeAnswers())
	require.NoError(t, err)

	result, err := f.svc.Submit("u1")
	require.NoError(t, err)

	// Profile fields applied
	profile := f.profileRepo.profiles["u1"]
	assert.Equal(t, "Dewi Lestari", profile.Name)
	assert.Equal(t, "Universitas Indonesia", profile.University)
	assert.Equal(t, "Informatika", profile.Major)
	require.NotNil(t, profile.GraduationYear)
	assert.Equal(t, 2027, *profile.GraduationYear)
	assert.Equal(t, "backend,data", profile.Interests)

	// First wellness check-in recorded from the wizard answers
	require.Len(t, f.wellnessRepo.logs, 1)
	assert.Equal(t, 5, result.Log.GAD7Score)
	assert.Equal(t, "hopeful", result.Log.Mood)

	// Career selected
	require.Len(t, f.careerRepo.selections, 1)
	assert.Equal(t, "career-1", f.careerRepo.selections[0].CareerID)

	// Draft is gone once everything is written
	_, err = f.drafts.ByUserID("u1")
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)
}

func TestSubmitKeepsDraftWhenWriteFails(t *testing.T) {
	f := newOnboardingFixture(t)

	_, err := f.svc.SaveAnswers("u1", completeAnswers())
	require.NoError(t, err)

	f.wellnessRepo.failNext = true
	_, err = f.svc.Submit("u1")
	require.Error(t, err)

	// The draft survives so the student can retry without re-entering
	_, err = f.drafts.ByUserID("u1")
	assert.NoError(t, err)

	// The retry succeeds and records exactly one check-in
	_, err = f.svc.Submit("u1")
	assert.NoError(t, err)
	assert.Len(t, f.wellnessRepo.logs, 1)
}

func TestSubmitRecordsNoCheckInWhenCareerSelectFails(t *testing.T) {
	f := newOnboardingFixture(t)

	answers := completeAnswers()
	answers["career_id"] = "career-gone"
	_, err := f.svc.SaveAnswers("u1", answers)
	require.NoError(t, err)

	_, err = f.svc.Submit("u1")
	require.ErrorIs(t, err, repository.ErrCareerNotFound)

	// The check-in must not land before the career write, or a retry
	// would log a second one
	assert.Empty(t, f.wellnessRepo.logs)

	_, err = f.svc.SaveAnswers("u1", map[string]any{"career_id": "career-1"})
	require.NoError(t, err)
	_, err = f.svc.Submit("u1")
	require.NoError(t, err)
	assert.Len(t, f.wellnessRepo.logs, 1)
}

func TestSubmitToleratesAlreadySelectedCareer(t *testing.T) {
	f := newOnboardingFixture(t)

	f.careerRepo.selections = append(f.careerRepo.selections, &model.UserCareer{
		UserID: "u1", CareerID: "career-1", SelectedAt: time.Now(),
	})

	_, err := f.svc.SaveAnswers("u1", completeAnswers())
	require.NoError(t, err)

	_, err = f.svc.Submit("u1")
	assert.NoError(t, err)
	assert.Len(t, f.careerRepo.selections, 1)
}

func TestNextStopsAtLastStep(t *testing.T) {
	f := newOnboardingFixture(t)

	_, err := f.svc.SaveAnswers("u1", completeAnswers())
	require.NoError(t, err)

	var view *DraftView
	for i := 0; i < OnboardingSteps+3; i++ {
		view, err = f.svc.Next("u1")
		require.NoError(t, err)
	}
	assert.Equal(t, OnboardingSteps, view.CurrentStep)
}
