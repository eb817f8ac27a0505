package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/validation"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

func (s *ProfileService) ByUserID(userID string) (*model.Profile, error) {
	return s.profileRepo.ByUserID(userID)
}

func (s *ProfileService) Create(profile *model.Profile) error {
	return s.profileRepo.Create(profile)
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name           string
	University     string
	Major          string
	GraduationYear *int
	Bio            string
	Interests      []string
}

func (s *ProfileService) Update(userID string, upd ProfileUpdate) (*model.Profile, error) {
	upd.Name = strings.TrimSpace(upd.Name)

	err := validation.ValidateName(upd.Name)
	if err != nil {
		return nil, err
	}

	if upd.GraduationYear != nil {
		year := *upd.GraduationYear
		if year < 1990 || year > time.Now().Year()+10 {
			return nil, fmt.Errorf("graduation year out of range")
		}
	}

	profile, err := s.profileRepo.ByUserID(userID)
	if err != nil {
		return nil, err
	}

	profile.Name = upd.Name
	profile.University = strings.TrimSpace(upd.University)
	profile.Major = strings.TrimSpace(upd.Major)
	profile.GraduationYear = upd.GraduationYear
	profile.Bio = strings.TrimSpace(upd.Bio)
	profile.Interests = joinInterests(upd.Interests)

	err = s.profileRepo.Update(profile)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// joinInterests normalizes interest tags to a comma-separated string,
// dropping empties and duplicates.
func joinInterests(interests []string) string {
	seen := make(map[string]bool, len(interests))
	cleaned := make([]string, 0, len(interests))

	for _, tag := range interests {
		tag = strings.TrimSpace(strings.ToLower(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		cleaned = append(cleaned, tag)
	}

	return strings.Join(cleaned, ",")
}
