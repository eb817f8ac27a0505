package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/google/uuid"
)

type JobService struct {
	jobRepo repository.JobRepository
}

func NewJobService(jobRepo repository.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

type JobInput struct {
	Title       string
	Company     string
	Location    string
	Type        string
	SalaryRange string
	Description string
	PostedAt    time.Time
}

func (s *JobService) Create(in JobInput) (*model.Job, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Company) == "" {
		return nil, fmt.Errorf("title and company are required")
	}

	switch in.Type {
	case model.JobTypeFullTime, model.JobTypePartTime, model.JobTypeInternship, model.JobTypeContract:
	default:
		return nil, fmt.Errorf("invalid job type: %s", in.Type)
	}

	if in.PostedAt.IsZero() {
		in.PostedAt = time.Now()
	}

	job := &model.Job{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		Type:        in.Type,
		SalaryRange: in.SalaryRange,
		Description: in.Description,
		PostedAt:    in.PostedAt,
		CreatedAt:   time.Now(),
	}

	err := s.jobRepo.Create(job)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return job, nil
}

func (s *JobService) ByID(id string) (*model.Job, error) {
	return s.jobRepo.ByID(id)
}

func (s *JobService) List(opts repository.CatalogListOptions) ([]*model.Job, int, error) {
	return s.jobRepo.List(opts)
}

func (s *JobService) Delete(id string) error {
	return s.jobRepo.Delete(id)
}

// Apply records a job application. Re-applying to the same job is a
// conflict, not an update.
func (s *JobService) Apply(userID, jobID string) (*model.JobApplication, error) {
	if _, err := s.jobRepo.ByID(jobID); err != nil {
		return nil, err
	}

	app := &model.JobApplication{
		ID:        uuid.New().String(),
		UserID:    userID,
		JobID:     jobID,
		Status:    model.ApplicationStatusApplied,
		AppliedAt: time.Now(),
	}

	err := s.jobRepo.Apply(app)
	if err != nil {
		return nil, err
	}

	return app, nil
}

func (s *JobService) Applications(userID string) ([]*model.JobApplication, error) {
	return s.jobRepo.ApplicationsByUser(userID)
}

func (s *JobService) Save(userID, jobID string) error {
	if _, err := s.jobRepo.ByID(jobID); err != nil {
		return err
	}

	saved := &model.SavedJob{
		ID:      uuid.New().String(),
		UserID:  userID,
		JobID:   jobID,
		SavedAt: time.Now(),
	}

	return s.jobRepo.Save(saved)
}

func (s *JobService) Unsave(userID, jobID string) error {
	return s.jobRepo.Unsave(userID, jobID)
}

func (s *JobService) SavedJobs(userID string) ([]*model.Job, error) {
	return s.jobRepo.SavedByUser(userID)
}
