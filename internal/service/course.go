package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/google/uuid"
)

type CourseService struct {
	courseRepo repository.CourseRepository
}

func NewCourseService(courseRepo repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

type CourseInput struct {
	Title         string
	Provider      string
	URL           string
	DurationHours float64
	Description   string
}

func (s *CourseService) Create(in CourseInput) (*model.Course, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if in.DurationHours < 0 {
		return nil, fmt.Errorf("duration hours cannot be negative")
	}

	course := &model.Course{
		ID:            uuid.New().String(),
		Title:         strings.TrimSpace(in.Title),
		Provider:      strings.TrimSpace(in.Provider),
		URL:           strings.TrimSpace(in.URL),
		DurationHours: in.DurationHours,
		Description:   in.Description,
		CreatedAt:     time.Now(),
	}

	err := s.courseRepo.Create(course)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

func (s *CourseService) ByID(id string) (*model.Course, error) {
	return s.courseRepo.ByID(id)
}

func (s *CourseService) List(opts repository.CatalogListOptions) ([]*model.Course, int, error) {
	return s.courseRepo.List(opts)
}

func (s *CourseService) Delete(id string) error {
	return s.courseRepo.Delete(id)
}

func (s *CourseService) Enroll(userID, courseID string) (*model.UserCourse, error) {
	if _, err := s.courseRepo.ByID(courseID); err != nil {
		return nil, err
	}

	uc := &model.UserCourse{
		ID:        uuid.New().String(),
		UserID:    userID,
		CourseID:  courseID,
		Status:    model.CourseStatusStarted,
		StartedAt: time.Now(),
	}

	err := s.courseRepo.Enroll(uc)
	if err != nil {
		return nil, err
	}

	return uc, nil
}

func (s *CourseService) Enrollments(userID string) ([]*model.UserCourse, error) {
	return s.courseRepo.EnrollmentsByUser(userID)
}

// Complete marks an enrollment finished. Completing twice is a no-op
// error from the repository.
func (s *CourseService) Complete(userID, enrollmentID string) (*model.UserCourse, error) {
	err := s.courseRepo.Complete(userID, enrollmentID, time.Now())
	if err != nil {
		return nil, err
	}

	return s.courseRepo.EnrollmentByID(userID, enrollmentID)
}
