package service

import (
	"fmt"
	"time"

	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/scoring"
	"github.com/careerpathid/careerpath/internal/validation"
)

// MonthlyReport is an evaluation together with the raw activity counts it
// was computed from.
type MonthlyReport struct {
	Month      string                  `json:"month"`
	Activity   scoring.MonthlyActivity `json:"activity"`
	Evaluation scoring.Evaluation      `json:"evaluation"`
}

type EvaluationService struct {
	userSkillRepo   repository.UserSkillRepository
	courseRepo      repository.CourseRepository
	jobRepo         repository.JobRepository
	targetRepo      repository.TargetRepository
	wellnessService *WellnessService
}

func NewEvaluationService(
	userSkillRepo repository.UserSkillRepository,
	courseRepo repository.CourseRepository,
	jobRepo repository.JobRepository,
	targetRepo repository.TargetRepository,
	wellnessService *WellnessService,
) *EvaluationService {
	return &EvaluationService{
		userSkillRepo:   userSkillRepo,
		courseRepo:      courseRepo,
		jobRepo:         jobRepo,
		targetRepo:      targetRepo,
		wellnessService: wellnessService,
	}
}

// Evaluate aggregates one month of activity and grades it.
// month is YYYY-MM.
func (s *EvaluationService) Evaluate(userID, month string) (*MonthlyReport, error) {
	if err := validation.ValidateMonth(month); err != nil {
		return nil, err
	}

	monthStart, _ := time.Parse("2006-01", month)
	monthEnd := monthStart.AddDate(0, 1, 0)

	skillsAdded, err := s.userSkillRepo.CountAddedBetween(userID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count added skills: %w", err)
	}

	skillsImproved, err := s.userSkillRepo.CountImprovedBetween(userID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count improved skills: %w", err)
	}

	learningHours, err := s.courseRepo.CompletedHoursBetween(userID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum learning hours: %w", err)
	}

	jobsApplied, err := s.jobRepo.CountAppliedBetween(userID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	trend, err := s.wellnessService.Trend(userID, monthStart)
	if err != nil {
		return nil, err
	}

	targetsSet, targetsAchieved, err := s.targetRepo.CountByMonth(userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to count targets: %w", err)
	}

	activity := scoring.MonthlyActivity{
		SkillsAdded:     skillsAdded,
		SkillsImproved:  skillsImproved,
		LearningHours:   learningHours,
		JobsApplied:     jobsApplied,
		WellnessTrend:   trend,
		TargetsSet:      targetsSet,
		TargetsAchieved: targetsAchieved,
	}

	return &MonthlyReport{
		Month:      month,
		Activity:   activity,
		Evaluation: scoring.EvaluateMonth(activity),
	}, nil
}
