package service

import (
	"testing"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileServiceForTest(t *testing.T) (*ProfileService, *mockProfileRepo) {
	t.Helper()
	repo := newMockProfileRepo()
	repo.profiles["u1"] = &model.Profile{ID: "p1", UserID: "u1"}
	return NewProfileService(repo), repo
}

func TestUpdateProfileNormalizesInterests(t *testing.T) {
	svc, _ := newProfileServiceForTest(t)

	year := 2027
	profile, err := svc.Update("u1", ProfileUpdate{
		Name:           " Dewi Lestari ",
		University:     " Universitas Indonesia ",
		GraduationYear: &year,
		Interests:      []string{" Backend ", "backend", "", "Data "},
	})
	require.NoError(t, err)

	assert.Equal(t, "Dewi Lestari", profile.Name)
	assert.Equal(t, "Universitas Indonesia", profile.University)
	// Lowercased, trimmed, deduped
	assert.Equal(t, "backend,data", profile.Interests)
}

func TestUpdateProfileValidatesName(t *testing.T) {
	svc, _ := newProfileServiceForTest(t)

	_, err := svc.Update("u1", ProfileUpdate{Name: "   "})
	assert.Error(t, err)
}

func TestUpdateProfileValidatesGraduationYear(t *testing.T) {
	svc, _ := newProfileServiceForTest(t)

	for _, year := range []int{1989, 2050} {
		y := year
		_, err := svc.Update("u1", ProfileUpdate{Name: "Dewi", GraduationYear: &y})
		assert.Error(t, err, year)
	}

	y := 2026
	_, err := svc.Update("u1", ProfileUpdate{Name: "Dewi", GraduationYear: &y})
	assert.NoError(t, err)
}
