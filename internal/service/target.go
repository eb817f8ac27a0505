package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrTargetDescriptionRequired = errors.New("target description is required")
	ErrTargetLimitReached        = errors.New("monthly target limit reached")
)

// MaxTargetsPerMonth bounds how many targets a user can set for one month.
const MaxTargetsPerMonth = 10

type TargetService struct {
	repo repository.TargetRepository
}

func NewTargetService(repo repository.TargetRepository) *TargetService {
	return &TargetService{repo: repo}
}

func (s *TargetService) Create(userID, month, description string) (*model.Target, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrTargetDescriptionRequired
	}

	if err := validation.ValidateMonth(month); err != nil {
		return nil, err
	}

	set, _, err := s.repo.CountByMonth(userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to count targets: %w", err)
	}
	if set >= MaxTargetsPerMonth {
		return nil, ErrTargetLimitReached
	}

	target := &model.Target{
		ID:          uuid.New().String(),
		UserID:      userID,
		Month:       month,
		Description: description,
		CreatedAt:   time.Now(),
	}

	err = s.repo.Create(target)
	if err != nil {
		return nil, fmt.Errorf("failed to create target: %w", err)
	}

	return target, nil
}

func (s *TargetService) ByMonth(userID, month string) ([]*model.Target, error) {
	if err := validation.ValidateMonth(month); err != nil {
		return nil, err
	}
	return s.repo.ByUserAndMonth(userID, month)
}

func (s *TargetService) MarkAchieved(userID, targetID string) error {
	return s.repo.MarkAchieved(userID, targetID, time.Now())
}

func (s *TargetService) Delete(userID, targetID string) error {
	return s.repo.Delete(userID, targetID)
}

func (s *TargetService) CountByMonth(userID, month string) (set int, achieved int, err error) {
	return s.repo.CountByMonth(userID, month)
}
