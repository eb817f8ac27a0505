package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/scoring"
	"github.com/google/uuid"
)

// CrisisResources are surfaced whenever a check-in crosses the follow-up
// threshold. Hotlines are Indonesian national services.
var CrisisResources = []string{
	"Hotline Kesehatan Jiwa Kemenkes: 119 ext 8",
	"Layanan SEJIWA: 119 ext 8",
	"Konseling kampus: hubungi unit bimbingan konseling universitasmu",
}

type WellnessService struct {
	wellnessRepo repository.WellnessRepository
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	emailService *EmailService
}

func NewWellnessService(
	wellnessRepo repository.WellnessRepository,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	emailService *EmailService,
) *WellnessService {
	return &WellnessService{
		wellnessRepo: wellnessRepo,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		emailService: emailService,
	}
}

// CheckInResult is a stored check-in plus the resources shown when a
// follow-up is needed.
type CheckInResult struct {
	Log             *model.WellnessLog `json:"log"`
	CrisisResources []string           `json:"crisisResources,omitempty"`
}

// SubmitCheckIn scores a GAD-7 questionnaire and appends the log.
// Validation failures block the write entirely.
func (s *WellnessService) SubmitCheckIn(userID, mood string, answers []int) (*CheckInResult, error) {
	result, err := scoring.ScoreGAD7(answers)
	if err != nil {
		return nil, err
	}

	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}

	log := &model.WellnessLog{
		ID:            uuid.New().String(),
		UserID:        userID,
		GAD7Score:     result.Score,
		Severity:      result.Severity,
		Mood:          mood,
		Answers:       string(rawAnswers),
		NeedsFollowUp: result.NeedsFollowUp,
		CreatedAt:     time.Now(),
	}

	err = s.wellnessRepo.Create(log)
	if err != nil {
		return nil, fmt.Errorf("failed to store wellness log: %w", err)
	}

	out := &CheckInResult{Log: log}
	if result.NeedsFollowUp {
		out.CrisisResources = CrisisResources
		s.notifyFollowUp(userID)
	}

	return out, nil
}

// notifyFollowUp emails counseling resources. Failures never surface to
// the user; the check-in has already been recorded.
func (s *WellnessService) notifyFollowUp(userID string) {
	user, err := s.userRepo.ByID(userID)
	if err != nil {
		slog.Warn("failed to load user for wellness follow-up", "error", err, "user_id", userID)
		return
	}

	name := ""
	if profile, err := s.profileRepo.ByUserID(userID); err == nil {
		name = profile.Name
	}

	err = s.emailService.SendWellnessFollowUpEmail(user.Email, name)
	if err != nil {
		slog.Warn("failed to send wellness follow-up email", "error", err, "user_id", userID)
	}
}

// History returns the most recent check-ins, newest first.
func (s *WellnessService) History(userID string, limit int) ([]*model.WellnessLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	return s.wellnessRepo.ByUser(userID, limit)
}

// Trend compares the average GAD-7 score of the given month against the
// month before it. Lower is better; a swing under one point is stable,
// as is any month without data on either side.
func (s *WellnessService) Trend(userID string, month time.Time) (string, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	prevStart := monthStart.AddDate(0, -1, 0)

	current, err := s.wellnessRepo.Between(userID, monthStart, monthEnd)
	if err != nil {
		return "", fmt.Errorf("failed to load wellness logs: %w", err)
	}

	previous, err := s.wellnessRepo.Between(userID, prevStart, monthStart)
	if err != nil {
		return "", fmt.Errorf("failed to load wellness logs: %w", err)
	}

	if len(current) == 0 || len(previous) == 0 {
		return scoring.TrendStable, nil
	}

	delta := averageScore(current) - averageScore(previous)
	switch {
	case delta <= -1:
		return scoring.TrendImproving, nil
	case delta >= 1:
		return scoring.TrendWorsening, nil
	default:
		return scoring.TrendStable, nil
	}
}

func averageScore(logs []*model.WellnessLog) float64 {
	total := 0
	for _, l := range logs {
		total += l.GAD7Score
	}
	return float64(total) / float64(len(logs))
}
