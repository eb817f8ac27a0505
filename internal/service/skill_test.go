package service

import (
	"testing"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillServiceForTest(t *testing.T) (*SkillService, *mockSkillRepo, *mockUserSkillRepo) {
	t.Helper()
	skillRepo := newMockSkillRepo()
	userSkillRepo := &mockUserSkillRepo{}
	return NewSkillService(skillRepo, userSkillRepo), skillRepo, userSkillRepo
}

func seedSkill(t *testing.T, svc *SkillService, name string) *model.Skill {
	t.Helper()
	skill, err := svc.CreateSkill(name, "Programming", "")
	require.NoError(t, err)
	return skill
}

func TestAddUserSkillAwardsXPFromProficiency(t *testing.T) {
	svc, _, _ := newSkillServiceForTest(t)
	golang := seedSkill(t, svc, "Go")

	view, err := svc.AddUserSkill("u1", golang.ID, scoring.ProficiencyIntermediate)
	require.NoError(t, err)

	assert.Equal(t, 300, view.XP)
	assert.Equal(t, scoring.ProficiencyIntermediate, view.ProficiencyLevel)
	assert.Equal(t, 1, view.Level.Tier.Level)
}

func TestAddUserSkillRejectsUnknownProficiency(t *testing.T) {
	svc, _, userSkillRepo := newSkillServiceForTest(t)
	golang := seedSkill(t, svc, "Go")

	_, err := svc.AddUserSkill("u1", golang.ID, "Wizard")
	assert.ErrorIs(t, err, scoring.ErrInvalidProficiency)
	// Nothing written when validation fails
	assert.Empty(t, userSkillRepo.skills)
}

func TestAddUserSkillRequiresCatalogSkill(t *testing.T) {
	svc, _, _ := newSkillServiceForTest(t)

	_, err := svc.AddUserSkill("u1", "no-such-skill", scoring.ProficiencyBeginner)
	assert.ErrorIs(t, err, repository.ErrSkillNotFound)
}

func TestAddUserSkillRejectsDuplicate(t *testing.T) {
	svc, _, _ := newSkillServiceForTest(t)
	golang := seedSkill(t, svc, "Go")

	_, err := svc.AddUserSkill("u1", golang.ID, scoring.ProficiencyBeginner)
	require.NoError(t, err)

	_, err = svc.AddUserSkill("u1", golang.ID, scoring.ProficiencyExpert)
	assert.ErrorIs(t, err, repository.ErrSkillAlreadyAdded)
}

func TestUserLevelSumsXPAcrossSkills(t *testing.T) {
	svc, _, _ := newSkillServiceForTest(t)
	golang := seedSkill(t, svc, "Go")
	sql := seedSkill(t, svc, "SQL")

	_, err := svc.AddUserSkill("u1", golang.ID, scoring.ProficiencyExpert) // 1000
	require.NoError(t, err)
	_, err = svc.AddUserSkill("u1", sql.ID, scoring.ProficiencyAdvanced) // 600
	require.NoError(t, err)

	level, err := svc.UserLevel("u1")
	require.NoError(t, err)
	assert.Equal(t, 1600, level.TotalXP)
	assert.Equal(t, "Achiever", level.Tier.Name)
}

func TestTrainAccumulatesHoursAndProgress(t *testing.T) {
	svc, _, _ := newSkillServiceForTest(t)
	golang := seedSkill(t, svc, "Go")

	view, err := svc.AddUserSkill("u1", golang.ID, scoring.ProficiencyBeginner)
	require.NoError(t, err)

	view, err = svc.Train("u1", view.ID, 40, 2.5)
	require.NoError(t, err)
	view, err = svc.Train("u1", view.ID, 55, 1.5)
	require.NoError(t, err)

	assert.Equal(t, 55, view.ProgressPercentage)
	assert.Equal(t, 4.0, view.HoursPracticed)
}

func TestTrainRefusesBackwardsProgress(t *testing.T) {
	svc, _, _ := newSkillServiceForTest(t)
	golang := seedSkill(t, svc, "Go")

	view, err := svc.AddUserSkill("u1", golang.ID, scoring.ProficiencyBeginner)
	require.NoError(t, err)

	_, err = svc.Train("u1", view.ID, 60, 1)
	require.NoError(t, err)

	_, err = svc.Train("u1", view.ID, 30, 1)
	assert.ErrorIs(t, err, ErrProgressBackwards)

	// Same value is allowed; only decreases are refused
	again, err := svc.Train("u1", view.ID, 60, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 60, again.ProgressPercentage)
}

func TestTrainValidatesInputs(t *testing.T) {
	svc, _, _ := newSkillServiceForTest(t)
	golang := seedSkill(t, svc, "Go")

	view, err := svc.AddUserSkill("u1", golang.ID, scoring.ProficiencyBeginner)
	require.NoError(t, err)

	_, err = svc.Train("u1", view.ID, 101, 0)
	assert.ErrorIs(t, err, ErrInvalidProgress)

	_, err = svc.Train("u1", view.ID, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidProgress)

	_, err = svc.Train("u1", view.ID, 50, -0.5)
	assert.ErrorIs(t, err, ErrNegativeHours)
}

func TestTrainScopedToOwner(t *testing.T) {
	svc, _, _ := newSkillServiceForTest(t)
	golang := seedSkill(t, svc, "Go")

	view, err := svc.AddUserSkill("u1", golang.ID, scoring.ProficiencyBeginner)
	require.NoError(t, err)

	_, err = svc.Train("u2", view.ID, 50, 1)
	assert.ErrorIs(t, err, repository.ErrUserSkillNotFound)
}
