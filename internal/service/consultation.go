package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/service/payment"
	"github.com/google/uuid"
)

var (
	ErrTopicRequired  = errors.New("consultation topic is required")
	ErrScheduleInPast = errors.New("consultation must be scheduled in the future")
)

type ConsultationService struct {
	consultationRepo repository.ConsultationRepository
}

func NewConsultationService(consultationRepo repository.ConsultationRepository) *ConsultationService {
	return &ConsultationService{consultationRepo: consultationRepo}
}

// Book creates a pending consultation. It stays pending until the linked
// payment settles.
func (s *ConsultationService) Book(userID, topic, notes, planID string, scheduledAt time.Time) (*model.Consultation, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrTopicRequired
	}
	if scheduledAt.Before(time.Now()) {
		return nil, ErrScheduleInPast
	}
	if _, err := payment.PlanByID(planID); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &model.Consultation{
		ID:          uuid.New().String(),
		UserID:      userID,
		Topic:       topic,
		Notes:       strings.TrimSpace(notes),
		Plan:        planID,
		Status:      model.ConsultationStatusPending,
		ScheduledAt: scheduledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.consultationRepo.Create(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}

	return c, nil
}

func (s *ConsultationService) ByUser(userID string) ([]*model.Consultation, error) {
	return s.consultationRepo.ByUser(userID)
}

func (s *ConsultationService) ByID(id string) (*model.Consultation, error) {
	return s.consultationRepo.ByID(id)
}

func (s *ConsultationService) List(limit, offset int) ([]*model.Consultation, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}
	return s.consultationRepo.List(limit, offset)
}

func (s *ConsultationService) Confirm(id string) error {
	return s.consultationRepo.UpdateStatus(id, model.ConsultationStatusConfirmed)
}

func (s *ConsultationService) Complete(id string) error {
	return s.consultationRepo.UpdateStatus(id, model.ConsultationStatusCompleted)
}

func (s *ConsultationService) Cancel(userID, id string) error {
	return s.consultationRepo.Cancel(userID, id)
}
