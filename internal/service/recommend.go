package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
)

// CareerRecommendation is one ranked suggestion with the evidence that
// produced its score.
type CareerRecommendation struct {
	Career         *model.Career `json:"career"`
	MatchScore     int           `json:"matchScore"` // 0..100
	Reasoning      string        `json:"reasoning"`
	RequiredSkills []string      `json:"requiredSkills"`
	SalaryRange    string        `json:"salaryRange"`
}

type RecommendService struct {
	careerRepo    repository.CareerRepository
	userSkillRepo repository.UserSkillRepository
	profileRepo   repository.ProfileRepository
}

func NewRecommendService(
	careerRepo repository.CareerRepository,
	userSkillRepo repository.UserSkillRepository,
	profileRepo repository.ProfileRepository,
) *RecommendService {
	return &RecommendService{
		careerRepo:    careerRepo,
		userSkillRepo: userSkillRepo,
		profileRepo:   profileRepo,
	}
}

// Recommend ranks the career catalog for a user by overlap between the
// career's required skills and the user's skills and interests. The
// scoring is deterministic: same profile, same ranking.
func (s *RecommendService) Recommend(userID string, limit int) ([]*CareerRecommendation, error) {
	if limit <= 0 || limit > 20 {
		limit = 5
	}

	careers, _, err := s.careerRepo.List(repository.CatalogListOptions{Limit: 500})
	if err != nil {
		return nil, fmt.Errorf("failed to load careers: %w", err)
	}

	userSkills, err := s.userSkillRepo.ByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user skills: %w", err)
	}

	skillSet := make(map[string]bool, len(userSkills))
	for _, us := range userSkills {
		skillSet[Fold(us.SkillName)] = true
	}

	interestSet := map[string]bool{}
	if profile, err := s.profileRepo.ByUserID(userID); err == nil {
		for _, tag := range strings.Split(profile.Interests, ",") {
			if tag = Fold(tag); tag != "" {
				interestSet[tag] = true
			}
		}
	}

	recommendations := make([]*CareerRecommendation, 0, len(careers))
	for _, career := range careers {
		rec := scoreCareer(career, skillSet, interestSet)
		if rec.MatchScore > 0 {
			recommendations = append(recommendations, rec)
		}
	}

	// Stable order: score first, then title so ties don't shuffle
	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].MatchScore != recommendations[j].MatchScore {
			return recommendations[i].MatchScore > recommendations[j].MatchScore
		}
		return recommendations[i].Career.Title < recommendations[j].Career.Title
	})

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}

	return recommendations, nil
}

// scoreCareer weighs matched required skills at 70 points and interest
// hits on field/title at 30.
func scoreCareer(career *model.Career, skillSet, interestSet map[string]bool) *CareerRecommendation {
	required := splitSkills(career.RequiredSkills)

	matched := []string{}
	for _, skill := range required {
		if skillSet[Fold(skill)] {
			matched = append(matched, skill)
		}
	}

	score := 0.0
	if len(required) > 0 {
		score += float64(len(matched)) / float64(len(required)) * 70
	}

	interestHit := false
	for tag := range interestSet {
		if strings.Contains(Fold(career.Field), tag) || strings.Contains(Fold(career.Title), tag) {
			interestHit = true
			break
		}
	}
	if interestHit {
		score += 30
	}

	return &CareerRecommendation{
		Career:         career,
		MatchScore:     int(score),
		Reasoning:      reasoningFor(career, matched, interestHit),
		RequiredSkills: required,
		SalaryRange:    career.SalaryRange,
	}
}

func reasoningFor(career *model.Career, matched []string, interestHit bool) string {
	parts := []string{}
	if len(matched) > 0 {
		parts = append(parts, fmt.Sprintf("you already have %s", strings.Join(matched, ", ")))
	}
	if interestHit {
		parts = append(parts, fmt.Sprintf("matches your interest in %s", strings.ToLower(career.Field)))
	}
	if len(parts) == 0 {
		return "worth exploring based on market demand"
	}
	return strings.Join(parts, "; ")
}

func splitSkills(raw string) []string {
	out := []string{}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
