package service

import (
	"strings"
	"unicode"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SearchResults groups matches per catalog, mirroring how the client
// renders the omnisearch dropdown.
type SearchResults struct {
	Careers []*model.Career `json:"careers"`
	Courses []*model.Course `json:"courses"`
	Jobs    []*model.Job    `json:"jobs"`
	Skills  []*model.Skill  `json:"skills"`
}

type SearchService struct {
	careerRepo repository.CareerRepository
	courseRepo repository.CourseRepository
	jobRepo    repository.JobRepository
	skillRepo  repository.SkillRepository
}

func NewSearchService(
	careerRepo repository.CareerRepository,
	courseRepo repository.CourseRepository,
	jobRepo repository.JobRepository,
	skillRepo repository.SkillRepository,
) *SearchService {
	return &SearchService{
		careerRepo: careerRepo,
		courseRepo: courseRepo,
		jobRepo:    jobRepo,
		skillRepo:  skillRepo,
	}
}

// foldTransformer strips diacritics so "désainer" matches "desainer".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normalizes a query for accent- and case-insensitive matching.
func Fold(q string) string {
	folded, _, err := transform.String(foldTransformer, q)
	if err != nil {
		folded = q
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Search runs the folded query across all four catalogs. An empty query
// returns empty groups rather than full tables.
func (s *SearchService) Search(q string) (*SearchResults, error) {
	results := &SearchResults{
		Careers: []*model.Career{},
		Courses: []*model.Course{},
		Jobs:    []*model.Job{},
		Skills:  []*model.Skill{},
	}

	folded := Fold(q)
	if folded == "" {
		return results, nil
	}

	careers, err := s.careerRepo.Search(folded)
	if err != nil {
		return nil, err
	}
	results.Careers = careers

	courses, err := s.courseRepo.Search(folded)
	if err != nil {
		return nil, err
	}
	results.Courses = courses

	jobs, err := s.jobRepo.Search(folded)
	if err != nil {
		return nil, err
	}
	results.Jobs = jobs

	skills, err := s.skillRepo.Search(folded)
	if err != nil {
		return nil, err
	}
	results.Skills = skills

	return results, nil
}
