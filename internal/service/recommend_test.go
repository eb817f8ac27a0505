package service

import (
	"testing"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recommendFixture struct {
	svc           *RecommendService
	careerRepo    *mockCareerRepo
	userSkillRepo *mockUserSkillRepo
	profileRepo   *mockProfileRepo
}

func newRecommendFixture(t *testing.T) *recommendFixture {
	t.Helper()

	f := &recommendFixture{
		careerRepo:    newMockCareerRepo(),
		userSkillRepo: &mockUserSkillRepo{},
		profileRepo:   newMockProfileRepo(),
	}
	f.svc = NewRecommendService(f.careerRepo, f.userSkillRepo, f.profileRepo)
	return f
}

func (f *recommendFixture) addCareer(id, title, field, requiredSkills string) {
	f.careerRepo.careers[id] = &model.Career{
		ID: id, Title: title, Field: field, RequiredSkills: requiredSkills,
	}
}

func (f *recommendFixture) addUserSkill(userID, skillName string) {
	f.userSkillRepo.skills = append(f.userSkillRepo.skills, &model.UserSkill{
		ID: "us-" + skillName, UserID: userID, SkillName: skillName,
	})
}

func TestRecommendRanksBySkillOverlap(t *testing.T) {
	f := newRecommendFixture(t)
	f.addCareer("c1", "Backend Engineer", "Software", "Go,SQL")
	f.addCareer("c2", "Data Analyst", "Data", "SQL,Python,Excel")
	f.addCareer("c3", "Graphic Designer", "Design", "Figma")

	f.addUserSkill("u1", "Go")
	f.addUserSkill("u1", "SQL")

	recs, err := f.svc.Recommend("u1", 10)
	require.NoError(t, err)

	// Full overlap beats partial; no overlap is filtered out entirely
	require.Len(t, recs, 2)
	assert.Equal(t, "c1", recs[0].Career.ID)
	assert.Equal(t, 70, recs[0].MatchScore)
	assert.Equal(t, "c2", recs[1].Career.ID)
	assert.Equal(t, 23, recs[1].MatchScore) // 1/3 of 70
}

func TestRecommendSkillMatchIsCaseInsensitive(t *testing.T) {
	f := newRecommendFixture(t)
	f.addCareer("c1", "Backend Engineer", "Software", "go, sql")
	f.addUserSkill("u1", "Go")
	f.addUserSkill("u1", "SQL")

	recs, err := f.svc.Recommend("u1", 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 70, recs[0].MatchScore)
}

func TestRecommendAddsInterestBonus(t *testing.T) {
	f := newRecommendFixture(t)
	f.addCareer("c1", "Data Analyst", "Data", "SQL")
	f.addUserSkill("u1", "SQL")
	f.profileRepo.profiles["u1"] = &model.Profile{UserID: "u1", Interests: "data,design"}

	recs, err := f.svc.Recommend("u1", 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 100, recs[0].MatchScore)
	assert.Contains(t, recs[0].Reasoning, "SQL")
	assert.Contains(t, recs[0].Reasoning, "interest")
}

func TestRecommendInterestAloneStillSurfaces(t *testing.T) {
	f := newRecommendFixture(t)
	f.addCareer("c1", "UX Designer", "Design", "Figma,User Research")
	f.profileRepo.profiles["u1"] = &model.Profile{UserID: "u1", Interests: "design"}

	recs, err := f.svc.Recommend("u1", 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 30, recs[0].MatchScore)
}

func TestRecommendDeterministicTieBreak(t *testing.T) {
	f := newRecommendFixture(t)
	f.addCareer("c1", "Backend Engineer", "Software", "Go")
	f.addCareer("c2", "API Engineer", "Software", "Go")
	f.addUserSkill("u1", "Go")

	for i := 0; i < 5; i++ {
		recs, err := f.svc.Recommend("u1", 10)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		// Equal scores fall back to title order, every run
		assert.Equal(t, "API Engineer", recs[0].Career.Title)
		assert.Equal(t, "Backend Engineer", recs[1].Career.Title)
	}
}

func TestRecommendHonorsLimit(t *testing.T) {
	f := newRecommendFixture(t)
	for _, id := range []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7"} {
		f.addCareer(id, "Career "+id, "Software", "Go")
	}
	f.addUserSkill("u1", "Go")

	recs, err := f.svc.Recommend("u1", 3)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	// Out-of-range limits fall back to the default of 5
	recs, err = f.svc.Recommend("u1", 0)
	require.NoError(t, err)
	assert.Len(t, recs, 5)
}
