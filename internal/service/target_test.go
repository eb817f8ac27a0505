package service

import (
	"fmt"
	"testing"

	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTargetTrimsDescription(t *testing.T) {
	svc := NewTargetService(&mockTargetRepo{})

	target, err := svc.Create("u1", "2026-08", "  finish Go course  ")
	require.NoError(t, err)
	assert.Equal(t, "finish Go course", target.Description)
	assert.Equal(t, "2026-08", target.Month)
	assert.False(t, target.Achieved)
}

func TestCreateTargetValidation(t *testing.T) {
	svc := NewTargetService(&mockTargetRepo{})

	_, err := svc.Create("u1", "2026-08", "   ")
	assert.ErrorIs(t, err, ErrTargetDescriptionRequired)

	_, err = svc.Create("u1", "August 2026", "learn SQL")
	assert.ErrorIs(t, err, validation.ErrInvalidMonth)

	_, err = svc.Create("u1", "", "learn SQL")
	assert.ErrorIs(t, err, validation.ErrInvalidMonth)
}

func TestCreateTargetEnforcesMonthlyLimit(t *testing.T) {
	svc := NewTargetService(&mockTargetRepo{})

	for i := 0; i < MaxTargetsPerMonth; i++ {
		_, err := svc.Create("u1", "2026-08", fmt.Sprintf("target %d", i))
		require.NoError(t, err)
	}

	_, err := svc.Create("u1", "2026-08", "one too many")
	assert.ErrorIs(t, err, ErrTargetLimitReached)

	// The limit is per month, a new month starts fresh
	_, err = svc.Create("u1", "2026-09", "new month")
	assert.NoError(t, err)

	// And per user
	_, err = svc.Create("u2", "2026-08", "different user")
	assert.NoError(t, err)
}

func TestMarkAchievedUpdatesCounts(t *testing.T) {
	repo := &mockTargetRepo{}
	svc := NewTargetService(repo)

	target, err := svc.Create("u1", "2026-08", "apply to three internships")
	require.NoError(t, err)
	_, err = svc.Create("u1", "2026-08", "second target")
	require.NoError(t, err)

	require.NoError(t, svc.MarkAchieved("u1", target.ID))

	set, achieved, err := svc.CountByMonth("u1", "2026-08")
	require.NoError(t, err)
	assert.Equal(t, 2, set)
	assert.Equal(t, 1, achieved)

	stored, err := svc.ByMonth("u1", "2026-08")
	require.NoError(t, err)
	for _, got := range stored {
		if got.ID == target.ID {
			assert.True(t, got.Achieved)
			assert.NotNil(t, got.AchievedAt)
		}
	}
}

func TestTargetOperationsScopedToOwner(t *testing.T) {
	svc := NewTargetService(&mockTargetRepo{})

	target, err := svc.Create("u1", "2026-08", "mine")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.MarkAchieved("u2", target.ID), repository.ErrTargetNotFound)
	assert.ErrorIs(t, svc.Delete("u2", target.ID), repository.ErrTargetNotFound)
	assert.NoError(t, svc.Delete("u1", target.ID))
}
