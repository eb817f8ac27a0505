package app

import (
	"fmt"

	"github.com/careerpathid/careerpath/internal/config"
	"github.com/careerpathid/careerpath/internal/db"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/service"
	"github.com/careerpathid/careerpath/internal/service/payment"
	"github.com/careerpathid/careerpath/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg                 *config.Config
	DB                  *sqlx.DB
	AuthService         *service.AuthService
	UserService         *service.UserService
	ProfileService      *service.ProfileService
	EmailService        *service.EmailService
	FileService         *service.FileService
	OnboardingService   *service.OnboardingService
	CareerService       *service.CareerService
	SkillService        *service.SkillService
	JobService          *service.JobService
	CourseService       *service.CourseService
	WellnessService     *service.WellnessService
	TargetService       *service.TargetService
	EvaluationService   *service.EvaluationService
	PortfolioService    *service.PortfolioService
	CommunityService    *service.CommunityService
	LeaderboardService  *service.LeaderboardService
	RecommendService    *service.RecommendService
	SearchService       *service.SearchService
	ConsultationService *service.ConsultationService
	BillingService      *service.BillingService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	tokenRepository := repository.NewTokenRepository(database)
	fileRepository := repository.NewFileRepository(database)
	careerRepository := repository.NewCareerRepository(database)
	skillRepository := repository.NewSkillRepository(database)
	userSkillRepository := repository.NewUserSkillRepository(database)
	jobRepository := repository.NewJobRepository(database)
	courseRepository := repository.NewCourseRepository(database)
	wellnessRepository := repository.NewWellnessRepository(database)
	targetRepository := repository.NewTargetRepository(database)
	postRepository := repository.NewPostRepository(database)
	portfolioRepository := repository.NewPortfolioRepository(database)
	leaderboardRepository := repository.NewLeaderboardRepository(database)
	consultationRepository := repository.NewConsultationRepository(database)
	paymentRepository := repository.NewPaymentRepository(database)
	onboardingRepository := repository.NewOnboardingRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.SupportEmail,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	fileService := service.NewFileService(fileRepository, fileStorage)

	authService := service.NewAuthService(
		userRepository,
		profileRepository,
		tokenRepository,
		emailService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
		cfg.TokenEmailChangeExpiry,
		cfg.TokenMagicLinkExpiry,
	)
	userService := service.NewUserService(userRepository, profileRepository, fileService, emailService)
	profileService := service.NewProfileService(profileRepository)

	careerService := service.NewCareerService(careerRepository)
	skillService := service.NewSkillService(skillRepository, userSkillRepository)
	jobService := service.NewJobService(jobRepository)
	courseService := service.NewCourseService(courseRepository)
	wellnessService := service.NewWellnessService(wellnessRepository, userRepository, profileRepository, emailService)
	targetService := service.NewTargetService(targetRepository)
	evaluationService := service.NewEvaluationService(
		userSkillRepository,
		courseRepository,
		jobRepository,
		targetRepository,
		wellnessService,
	)
	portfolioService := service.NewPortfolioService(portfolioRepository, userSkillRepository, fileService)
	communityService := service.NewCommunityService(postRepository)
	leaderboardService := service.NewLeaderboardService(leaderboardRepository)
	recommendService := service.NewRecommendService(careerRepository, userSkillRepository, profileRepository)
	searchService := service.NewSearchService(careerRepository, courseRepository, jobRepository, skillRepository)
	consultationService := service.NewConsultationService(consultationRepository)
	onboardingService := service.NewOnboardingService(onboardingRepository, profileService, wellnessService, careerService)

	paymentProvider, err := payment.NewMidtransProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment provider: %v", err)
	}

	billingService := service.NewBillingService(
		paymentRepository,
		consultationService,
		userRepository,
		profileRepository,
		emailService,
		paymentProvider,
	)

	return &App{
		Cfg:                 cfg,
		DB:                  database,
		AuthService:         authService,
		UserService:         userService,
		ProfileService:      profileService,
		EmailService:        emailService,
		FileService:         fileService,
		OnboardingService:   onboardingService,
		CareerService:       careerService,
		SkillService:        skillService,
		JobService:          jobService,
		CourseService:       courseService,
		WellnessService:     wellnessService,
		TargetService:       targetService,
		EvaluationService:   evaluationService,
		PortfolioService:    portfolioService,
		CommunityService:    communityService,
		LeaderboardService:  leaderboardService,
		RecommendService:    recommendService,
		SearchService:       searchService,
		ConsultationService: consultationService,
		BillingService:      billingService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
