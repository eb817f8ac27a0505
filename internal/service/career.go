package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/google/uuid"
)

type CareerService struct {
	careerRepo repository.CareerRepository
}

func NewCareerService(careerRepo repository.CareerRepository) *CareerService {
	return &CareerService{careerRepo: careerRepo}
}

type CareerInput struct {
	Title          string
	Field          string
	Description    string
	RequiredSkills []string
	SalaryRange    string
	DemandLevel    string
}

func (in CareerInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required")
	}
	switch in.DemandLevel {
	case model.DemandLow, model.DemandMedium, model.DemandHigh:
		return nil
	default:
		return fmt.Errorf("invalid demand level: %s", in.DemandLevel)
	}
}

func (s *CareerService) Create(in CareerInput) (*model.Career, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	career := &model.Career{
		ID:             uuid.New().String(),
		Title:          strings.TrimSpace(in.Title),
		Field:          strings.TrimSpace(in.Field),
		Description:    in.Description,
		RequiredSkills: strings.Join(in.RequiredSkills, ","),
		SalaryRange:    in.SalaryRange,
		DemandLevel:    in.DemandLevel,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.careerRepo.Create(career)
	if err != nil {
		return nil, fmt.Errorf("failed to create career: %w", err)
	}

	return career, nil
}

func (s *CareerService) ByID(id string) (*model.Career, error) {
	return s.careerRepo.ByID(id)
}

func (s *CareerService) List(opts repository.CatalogListOptions) ([]*model.Career, int, error) {
	return s.careerRepo.List(opts)
}

func (s *CareerService) Update(id string, in CareerInput) (*model.Career, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	career, err := s.careerRepo.ByID(id)
	if err != nil {
		return nil, err
	}

	career.Title = strings.TrimSpace(in.Title)
	career.Field = strings.TrimSpace(in.Field)
	career.Description = in.Description
	career.RequiredSkills = strings.Join(in.RequiredSkills, ",")
	career.SalaryRange = in.SalaryRange
	career.DemandLevel = in.DemandLevel

	err = s.careerRepo.Update(career)
	if err != nil {
		return nil, err
	}

	return career, nil
}

func (s *CareerService) Delete(id string) error {
	return s.careerRepo.Delete(id)
}

// Select adds a career to the user's pursued list.
func (s *CareerService) Select(userID, careerID string) error {
	if _, err := s.careerRepo.ByID(careerID); err != nil {
		return err
	}

	uc := &model.UserCareer{
		ID:         uuid.New().String(),
		UserID:     userID,
		CareerID:   careerID,
		SelectedAt: time.Now(),
	}

	return s.careerRepo.Select(uc)
}

func (s *CareerService) Unselect(userID, careerID string) error {
	return s.careerRepo.Unselect(userID, careerID)
}

func (s *CareerService) SelectedByUser(userID string) ([]*model.Career, error) {
	return s.careerRepo.SelectedByUser(userID)
}
