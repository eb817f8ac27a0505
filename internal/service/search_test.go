package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldNormalizesQueries(t *testing.T) {
	cases := map[string]string{
		"  Backend  ":  "backend",
		"DÉSAINER":     "desainer",
		"école":        "ecole",
		"Gaji Menarik": "gaji menarik",
		"":             "",
		"   ":          "",
	}

	for in, want := range cases {
		assert.Equal(t, want, Fold(in), in)
	}
}

func TestSearchEmptyQueryReturnsEmptyGroups(t *testing.T) {
	svc := NewSearchService(newMockCareerRepo(), newMockCourseRepo(), newMockJobRepo(), newMockSkillRepo())

	results, err := svc.Search("   ")
	require.NoError(t, err)

	// Empty query must not dump the full catalogs
	assert.Empty(t, results.Careers)
	assert.Empty(t, results.Courses)
	assert.Empty(t, results.Jobs)
	assert.Empty(t, results.Skills)
	assert.NotNil(t, results.Careers)
}
