package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/scoring"
	"github.com/google/uuid"
)

var (
	ErrProgressBackwards = errors.New("progress percentage cannot decrease")
	ErrInvalidProgress   = errors.New("progress percentage must be between 0 and 100")
	ErrNegativeHours     = errors.New("hours practiced cannot be negative")
)

// UserSkillView is a user skill paired with its resolved level.
type UserSkillView struct {
	*model.UserSkill
	Level scoring.LevelInfo `json:"level"`
}

type SkillService struct {
	skillRepo     repository.SkillRepository
	userSkillRepo repository.UserSkillRepository
}

func NewSkillService(skillRepo repository.SkillRepository, userSkillRepo repository.UserSkillRepository) *SkillService {
	return &SkillService{
		skillRepo:     skillRepo,
		userSkillRepo: userSkillRepo,
	}
}

// Catalog management (admin).

func (s *SkillService) CreateSkill(name, category, description string) (*model.Skill, error) {
	now := time.Now()
	skill := &model.Skill{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.skillRepo.Create(skill)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}

func (s *SkillService) SkillByID(id string) (*model.Skill, error) {
	return s.skillRepo.ByID(id)
}

func (s *SkillService) ListSkills(opts repository.CatalogListOptions) ([]*model.Skill, int, error) {
	return s.skillRepo.List(opts)
}

func (s *SkillService) UpdateSkill(skill *model.Skill) error {
	return s.skillRepo.Update(skill)
}

func (s *SkillService) DeleteSkill(id string) error {
	return s.skillRepo.Delete(id)
}

// AddUserSkill declares a skill at a proficiency level. The XP award is
// derived from the proficiency label; an unknown label is rejected before
// anything is written.
func (s *SkillService) AddUserSkill(userID, skillID, proficiency string) (*UserSkillView, error) {
	xp, err := scoring.XPForProficiency(proficiency)
	if err != nil {
		return nil, err
	}

	// Skill must exist in the catalog
	if _, err := s.skillRepo.ByID(skillID); err != nil {
		return nil, err
	}

	now := time.Now()
	us := &model.UserSkill{
		ID:               uuid.New().String(),
		UserID:           userID,
		SkillID:          skillID,
		ProficiencyLevel: proficiency,
		XP:               xp,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.userSkillRepo.Create(us)
	if err != nil {
		return nil, err
	}

	return s.view(userID, us)
}

// Train records practice on an existing skill. Progress only moves up;
// hours only accumulate.
func (s *SkillService) Train(userID, userSkillID string, progressPercentage int, hoursAdded float64) (*UserSkillView, error) {
	if progressPercentage < 0 || progressPercentage > 100 {
		return nil, ErrInvalidProgress
	}
	if hoursAdded < 0 {
		return nil, ErrNegativeHours
	}

	us, err := s.userSkillRepo.ByID(userID, userSkillID)
	if err != nil {
		return nil, err
	}

	if progressPercentage < us.ProgressPercentage {
		return nil, ErrProgressBackwards
	}

	us.ProgressPercentage = progressPercentage
	us.HoursPracticed += hoursAdded

	err = s.userSkillRepo.Update(us)
	if err != nil {
		return nil, err
	}

	return s.view(userID, us)
}

// UserSkills returns all of a user's skills, each with the level resolved
// from the user's total XP.
func (s *SkillService) UserSkills(userID string) ([]*UserSkillView, scoring.LevelInfo, error) {
	skills, err := s.userSkillRepo.ByUser(userID)
	if err != nil {
		return nil, scoring.LevelInfo{}, err
	}

	level, err := s.UserLevel(userID)
	if err != nil {
		return nil, scoring.LevelInfo{}, err
	}

	views := make([]*UserSkillView, 0, len(skills))
	for _, us := range skills {
		views = append(views, &UserSkillView{UserSkill: us, Level: level})
	}

	return views, level, nil
}

func (s *SkillService) DeleteUserSkill(userID, userSkillID string) error {
	return s.userSkillRepo.Delete(userID, userSkillID)
}

// UserLevel resolves the user's level from their summed skill XP.
func (s *SkillService) UserLevel(userID string) (scoring.LevelInfo, error) {
	totalXP, err := s.userSkillRepo.TotalXP(userID)
	if err != nil {
		return scoring.LevelInfo{}, fmt.Errorf("failed to sum XP: %w", err)
	}

	return scoring.ResolveLevel(totalXP)
}

func (s *SkillService) view(userID string, us *model.UserSkill) (*UserSkillView, error) {
	level, err := s.UserLevel(userID)
	if err != nil {
		return nil, err
	}

	// Re-read to pick up the joined skill name and category
	fresh, err := s.userSkillRepo.ByID(userID, us.ID)
	if err == nil {
		us = fresh
	}

	return &UserSkillView{UserSkill: us, Level: level}, nil
}
