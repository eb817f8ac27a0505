package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/google/uuid"
)

const OnboardingSteps = 10

var (
	ErrStepIncomplete     = errors.New("current step is missing required answers")
	ErrOnboardingComplete = errors.New("onboarding answers are incomplete")
)

// onboardingStep describes one wizard step and how to tell whether its
// answers are good enough to move past it.
type onboardingStep struct {
	Field    string
	Title    string
	Required bool
	valid    func(answers map[string]any) bool
}

var onboardingFlow = [OnboardingSteps]onboardingStep{
	{Field: "name", Title: "Your name", Required: true, valid: answerNonEmpty("name")},
	{Field: "university", Title: "Your university", Required: true, valid: answerNonEmpty("university")},
	{Field: "major", Title: "Your major", Required: true, valid: answerNonEmpty("major")},
	{Field: "graduation_year", Title: "Expected graduation", Required: true, valid: validGraduationYear},
	{Field: "interests", Title: "Fields you're curious about", Required: true, valid: answerListNonEmpty("interests")},
	{Field: "career_id", Title: "Pick a career direction", Required: true, valid: answerNonEmpty("career_id")},
	{Field: "skills", Title: "Skills you already have", Required: false, valid: alwaysValid},
	{Field: "mood", Title: "How are you feeling lately", Required: true, valid: answerNonEmpty("mood")},
	{Field: "gad7_answers", Title: "Quick wellness check", Required: true, valid: validGAD7Answers},
	{Field: "confirm", Title: "Review and confirm", Required: false, valid: alwaysValid},
}

type OnboardingService struct {
	onboardingRepo  repository.OnboardingRepository
	profileService  *ProfileService
	wellnessService *WellnessService
	careerService   *CareerService
}

func NewOnboardingService(
	onboardingRepo repository.OnboardingRepository,
	profileService *ProfileService,
	wellnessService *WellnessService,
	careerService *CareerService,
) *OnboardingService {
	return &OnboardingService{
		onboardingRepo:  onboardingRepo,
		profileService:  profileService,
		wellnessService: wellnessService,
		careerService:   careerService,
	}
}

// DraftView is the wizard state sent to the client.
type DraftView struct {
	CurrentStep int            `json:"current_step"`
	TotalSteps  int            `json:"total_steps"`
	StepTitle   string         `json:"step_title"`
	Answers     map[string]any `json:"answers"`
	CanProceed  bool           `json:"can_proceed"`
}

// Get returns the user's draft, creating a fresh one at step 1 when none
// exists yet.
func (s *OnboardingService) Get(userID string) (*DraftView, error) {
	draft, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return s.view(draft)
}

// SaveAnswers merges the submitted answers into the draft without moving
// the step pointer. Partial saves are fine; gating happens on Next.
func (s *OnboardingService) SaveAnswers(userID string, answers map[string]any) (*DraftView, error) {
	draft, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	merged, err := decodeAnswers(draft.Answers)
	if err != nil {
		return nil, err
	}
	for k, v := range answers {
		merged[k] = v
	}

	err = s.store(draft, merged)
	if err != nil {
		return nil, err
	}

	return s.view(draft)
}

// Next advances one step, refusing while the current step's required
// answers are missing or invalid.
func (s *OnboardingService) Next(userID string) (*DraftView, error) {
	draft, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	answers, err := decodeAnswers(draft.Answers)
	if err != nil {
		return nil, err
	}

	step := onboardingFlow[draft.CurrentStep-1]
	if step.Required && !step.valid(answers) {
		return nil, ErrStepIncomplete
	}

	if draft.CurrentStep < OnboardingSteps {
		draft.CurrentStep++
		err = s.store(draft, answers)
		if err != nil {
			return nil, err
		}
	}

	return s.view(draft)
}

// Back moves one step towards the start. Step 1 is the floor.
func (s *OnboardingService) Back(userID string) (*DraftView, error) {
	draft, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if draft.CurrentStep > 1 {
		draft.CurrentStep--
		answers, err := decodeAnswers(draft.Answers)
		if err != nil {
			return nil, err
		}
		err = s.store(draft, answers)
		if err != nil {
			return nil, err
		}
	}

	return s.view(draft)
}

// Submit validates every required step, then fans the answers out to the
// profile, the selected career, and the wellness log. The draft is only
// deleted after every write succeeds, so a failed submit can be retried
// without re-entering anything. The check-in runs last: it is the one
// write a retry must not repeat, since each one appends a GAD-7 log and
// can trigger a crisis alert.
func (s *OnboardingService) Submit(userID string) (*CheckInResult, error) {
	draft, err := s.onboardingRepo.ByUserID(userID)
	if err != nil {
		return nil, err
	}

	answers, err := decodeAnswers(draft.Answers)
	if err != nil {
		return nil, err
	}

	for _, step := range onboardingFlow {
		if step.Required && !step.valid(answers) {
			return nil, fmt.Errorf("%w: %s", ErrOnboardingComplete, step.Field)
		}
	}

	year := int(answerFloat(answers, "graduation_year"))
	upd := ProfileUpdate{
		Name:           answerString(answers, "name"),
		University:     answerString(answers, "university"),
		Major:          answerString(answers, "major"),
		GraduationYear: &year,
		Interests:      answerStrings(answers, "interests"),
	}

	_, err = s.profileService.Update(userID, upd)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	err = s.careerService.Select(userID, answerString(answers, "career_id"))
	if err != nil && err != repository.ErrCareerAlreadySelected {
		return nil, fmt.Errorf("failed to select career: %w", err)
	}

	checkIn, err := s.wellnessService.SubmitCheckIn(userID, answerString(answers, "mood"), answerInts(answers, "gad7_answers"))
	if err != nil {
		return nil, fmt.Errorf("failed to record wellness check-in: %w", err)
	}

	err = s.onboardingRepo.Delete(userID)
	if err != nil && err != repository.ErrDraftNotFound {
		return nil, err
	}

	return checkIn, nil
}

func (s *OnboardingService) loadOrCreate(userID string) (*model.OnboardingDraft, error) {
	draft, err := s.onboardingRepo.ByUserID(userID)
	if err == repository.ErrDraftNotFound {
		draft = &model.OnboardingDraft{
			ID:          uuid.New().String(),
			UserID:      userID,
			CurrentStep: 1,
			Answers:     "{}",
			CreatedAt:   time.Now(),
		}
		return draft, s.onboardingRepo.Upsert(draft)
	}
	return draft, err
}

func (s *OnboardingService) store(draft *model.OnboardingDraft, answers map[string]any) error {
	raw, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	draft.Answers = string(raw)
	return s.onboardingRepo.Upsert(draft)
}

func (s *OnboardingService) view(draft *model.OnboardingDraft) (*DraftView, error) {
	answers, err := decodeAnswers(draft.Answers)
	if err != nil {
		return nil, err
	}

	step := onboardingFlow[draft.CurrentStep-1]
	return &DraftView{
		CurrentStep: draft.CurrentStep,
		TotalSteps:  OnboardingSteps,
		StepTitle:   step.Title,
		Answers:     answers,
		CanProceed:  !step.Required || step.valid(answers),
	}, nil
}

func decodeAnswers(raw string) (map[string]any, error) {
	answers := map[string]any{}
	if raw == "" {
		return answers, nil
	}
	err := json.Unmarshal([]byte(raw), &answers)
	if err != nil {
		return nil, fmt.Errorf("corrupt onboarding answers: %w", err)
	}
	return answers, nil
}

func alwaysValid(map[string]any) bool { return true }

func answerNonEmpty(field string) func(map[string]any) bool {
	return func(answers map[string]any) bool {
		return answerString(answers, field) != ""
	}
}

func answerListNonEmpty(field string) func(map[string]any) bool {
	return func(answers map[string]any) bool {
		return len(answerStrings(answers, field)) > 0
	}
}

func validGraduationYear(answers map[string]any) bool {
	year := int(answerFloat(answers, "graduation_year"))
	return year >= 1990 && year <= time.Now().Year()+10
}

func validGAD7Answers(answers map[string]any) bool {
	values := answerInts(answers, "gad7_answers")
	if len(values) != 7 {
		return false
	}
	for _, v := range values {
		if v < 0 || v > 3 {
			return false
		}
	}
	return true
}

func answerString(answers map[string]any, field string) string {
	s, _ := answers[field].(string)
	return strings.TrimSpace(s)
}

func answerFloat(answers map[string]any, field string) float64 {
	// encoding/json decodes every number into float64
	f, _ := answers[field].(float64)
	return f
}

func answerStrings(answers map[string]any, field string) []string {
	raw, _ := answers[field].([]any)
	out := []string{}
	for _, v := range raw {
		if s, ok := v.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func answerInts(answers map[string]any, field string) []int {
	raw, _ := answers[field].([]any)
	out := make([]int, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(float64); ok {
			out = append(out, int(f))
		}
	}
	return out
}
