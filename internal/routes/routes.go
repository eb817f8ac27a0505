package routes

import (
	"net/http"

	"github.com/careerpathid/careerpath/internal/app"
	"github.com/careerpathid/careerpath/internal/handler"
	"github.com/careerpathid/careerpath/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.Cfg)
	onboarding := handler.NewOnboardingHandler(app.OnboardingService)
	profile := handler.NewProfileHandler(app.ProfileService, app.FileService)
	user := handler.NewUserHandler(app.UserService, app.AuthService)
	career := handler.NewCareerHandler(app.CareerService)
	skill := handler.NewSkillHandler(app.SkillService)
	job := handler.NewJobHandler(app.JobService)
	course := handler.NewCourseHandler(app.CourseService)
	wellness := handler.NewWellnessHandler(app.WellnessService)
	target := handler.NewTargetHandler(app.TargetService)
	evaluation := handler.NewEvaluationHandler(app.EvaluationService)
	portfolio := handler.NewPortfolioHandler(app.PortfolioService)
	community := handler.NewCommunityHandler(app.CommunityService)
	leaderboard := handler.NewLeaderboardHandler(app.LeaderboardService)
	recommend := handler.NewRecommendHandler(app.RecommendService)
	search := handler.NewSearchHandler(app.SearchService)
	consultation := handler.NewConsultationHandler(app.ConsultationService)
	payment := handler.NewPaymentHandler(app.BillingService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("POST /auth/magic-link", rateLimiter(auth.RequestMagicLink))
	mux.HandleFunc("GET /auth/magic-link/{token}", auth.VerifyMagicLink)
	mux.HandleFunc("GET /auth/google", rateLimiter(auth.GoogleRedirect))
	mux.HandleFunc("GET /auth/google/callback", rateLimiter(auth.GoogleCallback))

	// Catalog browsing and search
	mux.HandleFunc("GET /api/search", search.Search)
	mux.HandleFunc("GET /api/careers", career.List)
	mux.HandleFunc("GET /api/careers/{id}", career.ByID)
	mux.HandleFunc("GET /api/jobs", job.List)
	mux.HandleFunc("GET /api/jobs/{id}", job.ByID)
	mux.HandleFunc("GET /api/courses", course.List)
	mux.HandleFunc("GET /api/skills", skill.List)

	// ============================================================================
	// AUTHENTICATED ROUTES
	// ============================================================================

	// Onboarding wizard
	mux.HandleFunc("GET /api/onboarding", middleware.RequireAuth(onboarding.Get))
	mux.HandleFunc("POST /api/onboarding/answers", middleware.RequireAuth(onboarding.SaveAnswers))
	mux.HandleFunc("POST /api/onboarding/next", middleware.RequireAuth(onboarding.Next))
	mux.HandleFunc("POST /api/onboarding/back", middleware.RequireAuth(onboarding.Back))
	mux.HandleFunc("POST /api/onboarding/submit", middleware.RequireAuth(onboarding.Submit))

	// Profile and account
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profile.Get))
	mux.HandleFunc("PATCH /api/profile", middleware.RequireAuth(profile.Update))
	mux.HandleFunc("POST /api/profile/avatar", middleware.RequireAuth(profile.UploadAvatar))
	mux.HandleFunc("DELETE /api/profile/avatar", middleware.RequireAuth(profile.DeleteAvatar))
	mux.HandleFunc("POST /api/account/password", middleware.RequireAuth(user.UpdatePassword))
	mux.HandleFunc("DELETE /api/account", middleware.RequireAuth(user.DeleteAccount))

	// Careers
	mux.HandleFunc("POST /api/careers/{id}/select", middleware.RequireAuth(career.Select))
	mux.HandleFunc("DELETE /api/careers/{id}/select", middleware.RequireAuth(career.Unselect))
	mux.HandleFunc("GET /api/me/careers", middleware.RequireAuth(career.MyCareers))

	// Skills
	mux.HandleFunc("POST /api/me/skills", middleware.RequireAuth(skill.AddUserSkill))
	mux.HandleFunc("GET /api/me/skills", middleware.RequireAuth(skill.MySkills))
	mux.HandleFunc("PATCH /api/me/skills/{id}/train", middleware.RequireAuth(skill.Train))
	mux.HandleFunc("DELETE /api/me/skills/{id}", middleware.RequireAuth(skill.DeleteUserSkill))

	// Jobs
	mux.HandleFunc("POST /api/jobs/{id}/apply", middleware.RequireAuth(job.Apply))
	mux.HandleFunc("POST /api/jobs/{id}/save", middleware.RequireAuth(job.Save))
	mux.HandleFunc("DELETE /api/jobs/{id}/save", middleware.RequireAuth(job.Unsave))
	mux.HandleFunc("GET /api/me/jobs", middleware.RequireAuth(job.MyJobs))

	// Courses
	mux.HandleFunc("POST /api/courses/{id}/enroll", middleware.RequireAuth(course.Enroll))
	mux.HandleFunc("PATCH /api/me/courses/{id}/complete", middleware.RequireAuth(course.Complete))
	mux.HandleFunc("GET /api/me/courses", middleware.RequireAuth(course.MyCourses))

	// Wellness
	mux.HandleFunc("POST /api/wellness", middleware.RequireAuth(wellness.CheckIn))
	mux.HandleFunc("GET /api/wellness", middleware.RequireAuth(wellness.History))
	mux.HandleFunc("GET /api/wellness/trend", middleware.RequireAuth(wellness.Trend))

	// Monthly targets and evaluation
	mux.HandleFunc("GET /api/targets", middleware.RequireAuth(target.List))
	mux.HandleFunc("POST /api/targets", middleware.RequireAuth(target.Create))
	mux.HandleFunc("PATCH /api/targets/{id}/achieve", middleware.RequireAuth(target.Achieve))
	mux.HandleFunc("DELETE /api/targets/{id}", middleware.RequireAuth(target.Delete))
	mux.HandleFunc("GET /api/evaluation", middleware.RequireAuth(evaluation.Get))

	// Portfolio
	mux.HandleFunc("GET /api/portfolio/certificates", middleware.RequireAuth(portfolio.Certificates))
	mux.HandleFunc("POST /api/portfolio/certificates", middleware.RequireAuth(portfolio.AddCertificate))
	mux.HandleFunc("DELETE /api/portfolio/certificates/{id}", middleware.RequireAuth(portfolio.DeleteCertificate))
	mux.HandleFunc("GET /api/portfolio/projects", middleware.RequireAuth(portfolio.Projects))
	mux.HandleFunc("POST /api/portfolio/projects", middleware.RequireAuth(portfolio.AddProject))
	mux.HandleFunc("PATCH /api/portfolio/projects/{id}/feature", middleware.RequireAuth(portfolio.SetFeatured))
	mux.HandleFunc("DELETE /api/portfolio/projects/{id}", middleware.RequireAuth(portfolio.DeleteProject))
	mux.HandleFunc("GET /api/portfolio/score", middleware.RequireAuth(portfolio.Score))

	// Community feed
	mux.HandleFunc("GET /api/posts", middleware.RequireAuth(community.Feed))
	mux.HandleFunc("POST /api/posts", middleware.RequireAuth(community.CreatePost))
	mux.HandleFunc("DELETE /api/posts/{id}", middleware.RequireAuth(community.DeletePost))
	mux.HandleFunc("POST /api/posts/{id}/like", middleware.RequireAuth(community.Like))
	mux.HandleFunc("DELETE /api/posts/{id}/like", middleware.RequireAuth(community.Unlike))

	// Leaderboard and recommendations
	mux.HandleFunc("GET /api/leaderboard", middleware.RequireAuth(leaderboard.Get))
	mux.HandleFunc("POST /api/ai/career-recommend", middleware.RequireAuth(recommend.Recommend))

	// Consultations and payments
	mux.HandleFunc("GET /api/consultations", middleware.RequireAuth(consultation.Mine))
	mux.HandleFunc("POST /api/consultations", middleware.RequireAuth(consultation.Book))
	mux.HandleFunc("DELETE /api/consultations/{id}", middleware.RequireAuth(consultation.Cancel))
	mux.HandleFunc("POST /api/payment/create", middleware.RequireAuth(payment.Create))
	mux.HandleFunc("GET /api/payments", middleware.RequireAuth(payment.Mine))

	// ============================================================================
	// ADMIN ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/admin/careers", middleware.RequireAdmin(career.List))
	mux.HandleFunc("POST /api/admin/careers", middleware.RequireAdmin(career.Create))
	mux.HandleFunc("PATCH /api/admin/careers/{id}", middleware.RequireAdmin(career.Update))
	mux.HandleFunc("DELETE /api/admin/careers/{id}", middleware.RequireAdmin(career.Delete))

	mux.HandleFunc("GET /api/admin/skills", middleware.RequireAdmin(skill.List))
	mux.HandleFunc("POST /api/admin/skills", middleware.RequireAdmin(skill.Create))
	mux.HandleFunc("PATCH /api/admin/skills/{id}", middleware.RequireAdmin(skill.Update))
	mux.HandleFunc("DELETE /api/admin/skills/{id}", middleware.RequireAdmin(skill.Delete))

	mux.HandleFunc("GET /api/admin/users", middleware.RequireAdmin(user.List))
	mux.HandleFunc("PATCH /api/admin/users/{id}", middleware.RequireAdmin(user.UpdateRole))
	mux.HandleFunc("DELETE /api/admin/users/{id}", middleware.RequireAdmin(user.AdminDelete))

	mux.HandleFunc("GET /api/admin/jobs", middleware.RequireAdmin(job.List))
	mux.HandleFunc("POST /api/admin/jobs", middleware.RequireAdmin(job.Create))
	mux.HandleFunc("DELETE /api/admin/jobs/{id}", middleware.RequireAdmin(job.Delete))
	mux.HandleFunc("GET /api/admin/courses", middleware.RequireAdmin(course.List))
	mux.HandleFunc("POST /api/admin/courses", middleware.RequireAdmin(course.Create))
	mux.HandleFunc("DELETE /api/admin/courses/{id}", middleware.RequireAdmin(course.Delete))

	mux.HandleFunc("GET /api/admin/consultations", middleware.RequireAdmin(consultation.List))
	mux.HandleFunc("PATCH /api/admin/consultations/{id}/complete", middleware.RequireAdmin(consultation.Complete))

	// ============================================================================
	// WEBHOOKS
	// ============================================================================

	mux.HandleFunc("POST /webhooks/payment", payment.Webhook)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserService, app.ProfileService),
	)

	return handler
}
