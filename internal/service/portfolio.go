package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/scoring"
	"github.com/google/uuid"
)

var ErrTitleRequired = errors.New("title is required")

type PortfolioService struct {
	portfolioRepo repository.PortfolioRepository
	userSkillRepo repository.UserSkillRepository
	fileService   *FileService
}

func NewPortfolioService(
	portfolioRepo repository.PortfolioRepository,
	userSkillRepo repository.UserSkillRepository,
	fileService *FileService,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
		userSkillRepo: userSkillRepo,
		fileService:   fileService,
	}
}

// AddCertificate stores a certificate, optionally with an uploaded
// document. The document is validated by the handler before it gets here.
func (s *PortfolioService) AddCertificate(userID, title, issuer string, issuedAt *time.Time, file multipart.File, header *multipart.FileHeader) (*model.Certificate, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	cert := &model.Certificate{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Issuer:    strings.TrimSpace(issuer),
		IssuedAt:  issuedAt,
		CreatedAt: time.Now(),
	}

	if file != nil && header != nil {
		uploaded, err := s.fileService.Upload(userID, "certificate", cert.ID, model.FileTypeCertificate, file, header, false)
		if err != nil {
			return nil, fmt.Errorf("failed to upload certificate file: %w", err)
		}
		cert.FileID = &uploaded.ID
		cert.FileURL = s.fileService.URL(uploaded)
	}

	err := s.portfolioRepo.CreateCertificate(cert)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	return cert, nil
}

func (s *PortfolioService) Certificates(userID string) ([]*model.Certificate, error) {
	certs, err := s.portfolioRepo.CertificatesByUser(userID)
	if err != nil {
		return nil, err
	}

	for _, cert := range certs {
		if cert.FileID == nil {
			continue
		}
		if file, err := s.fileService.ByID(*cert.FileID); err == nil {
			cert.FileURL = s.fileService.URL(file)
		}
	}

	return certs, nil
}

func (s *PortfolioService) DeleteCertificate(userID, certID string) error {
	cert, err := s.portfolioRepo.CertificateByID(userID, certID)
	if err != nil {
		return err
	}

	if cert.FileID != nil {
		if err := s.fileService.Delete(*cert.FileID); err != nil {
			return fmt.Errorf("failed to delete certificate file: %w", err)
		}
	}

	return s.portfolioRepo.DeleteCertificate(userID, certID)
}

type ProjectInput struct {
	Title       string
	Description string
	URL         string
	Featured    bool
}

func (s *PortfolioService) AddProject(userID string, in ProjectInput) (*model.Project, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	now := time.Now()
	project := &model.Project{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		URL:         strings.TrimSpace(in.URL),
		Featured:    in.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.portfolioRepo.CreateProject(project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

func (s *PortfolioService) Projects(userID string) ([]*model.Project, error) {
	return s.portfolioRepo.ProjectsByUser(userID)
}

func (s *PortfolioService) SetFeatured(userID, projectID string, featured bool) (*model.Project, error) {
	project, err := s.portfolioRepo.ProjectByID(userID, projectID)
	if err != nil {
		return nil, err
	}

	project.Featured = featured
	err = s.portfolioRepo.UpdateProject(project)
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (s *PortfolioService) DeleteProject(userID, projectID string) error {
	return s.portfolioRepo.DeleteProject(userID, projectID)
}

// Score recomputes the 0-10 portfolio strength from current counts.
func (s *PortfolioService) Score(userID string) (scoring.PortfolioCounts, int, error) {
	projects, err := s.portfolioRepo.CountProjects(userID)
	if err != nil {
		return scoring.PortfolioCounts{}, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	certificates, err := s.portfolioRepo.CountCertificates(userID)
	if err != nil {
		return scoring.PortfolioCounts{}, 0, fmt.Errorf("failed to count certificates: %w", err)
	}

	skills, err := s.userSkillRepo.CountByUser(userID)
	if err != nil {
		return scoring.PortfolioCounts{}, 0, fmt.Errorf("failed to count skills: %w", err)
	}

	featured, err := s.portfolioRepo.HasFeaturedProject(userID)
	if err != nil {
		return scoring.PortfolioCounts{}, 0, fmt.Errorf("failed to check featured project: %w", err)
	}

	counts := scoring.PortfolioCounts{
		Projects:           projects,
		Certificates:       certificates,
		Skills:             skills,
		HasFeaturedProject: featured,
	}

	return counts, scoring.PortfolioScore(counts), nil
}
