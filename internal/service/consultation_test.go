package service

import (
	"testing"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/service/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookConsultationStartsPending(t *testing.T) {
	svc := NewConsultationService(newMockConsultationRepo())

	scheduledAt := time.Now().Add(48 * time.Hour)
	c, err := svc.Book("u1", "  career switch to data  ", "prefer evening", "single", scheduledAt)
	require.NoError(t, err)

	assert.Equal(t, "career switch to data", c.Topic)
	assert.Equal(t, model.ConsultationStatusPending, c.Status)
	assert.Equal(t, "single", c.Plan)
}

func TestBookConsultationValidation(t *testing.T) {
	svc := NewConsultationService(newMockConsultationRepo())
	future := time.Now().Add(24 * time.Hour)

	_, err := svc.Book("u1", "   ", "", "single", future)
	assert.ErrorIs(t, err, ErrTopicRequired)

	_, err = svc.Book("u1", "topic", "", "single", time.Now().Add(-time.Hour))
	assert.ErrorIs(t, err, ErrScheduleInPast)

	_, err = svc.Book("u1", "topic", "", "platinum", future)
	assert.ErrorIs(t, err, payment.ErrUnknownPlan)
}

func TestConsultationLifecycle(t *testing.T) {
	repo := newMockConsultationRepo()
	svc := NewConsultationService(repo)

	c, err := svc.Book("u1", "topic", "", "single", time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(c.ID))
	got, err := svc.ByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ConsultationStatusConfirmed, got.Status)

	require.NoError(t, svc.Complete(c.ID))
	got, err = svc.ByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ConsultationStatusCompleted, got.Status)
}

func TestCancelScopedToOwner(t *testing.T) {
	svc := NewConsultationService(newMockConsultationRepo())

	c, err := svc.Book("u1", "topic", "", "single", time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Cancel("u2", c.ID), repository.ErrConsultationNotFound)

	require.NoError(t, svc.Cancel("u1", c.ID))
	got, err := svc.ByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ConsultationStatusCancelled, got.Status)
}
