package service

import (
	"errors"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/service/payment"
)

// In-memory repository fakes. Each one keeps just enough state to drive
// the service under test; write failures are simulated with failNext.

var errStorage = errors.New("storage unavailable")

func testEmailService() *EmailService {
	// Dev mode logs instead of sending
	return NewEmailService("", "noreply@test", "support@test", "http://localhost:8090", "CareerPath", true)
}

type mockSkillRepo struct {
	skills map[string]*model.Skill
}

func newMockSkillRepo() *mockSkillRepo {
	return &mockSkillRepo{skills: map[string]*model.Skill{}}
}

func (m *mockSkillRepo) Create(skill *model.Skill) error {
	m.skills[skill.ID] = skill
	return nil
}

func (m *mockSkillRepo) ByID(id string) (*model.Skill, error) {
	skill, ok := m.skills[id]
	if !ok {
		return nil, repository.ErrSkillNotFound
	}
	return skill, nil
}

func (m *mockSkillRepo) List(opts repository.CatalogListOptions) ([]*model.Skill, int, error) {
	out := []*model.Skill{}
	for _, s := range m.skills {
		out = append(out, s)
	}
	return out, len(out), nil
}

func (m *mockSkillRepo) Search(q string) ([]*model.Skill, error) { return nil, nil }

func (m *mockSkillRepo) Update(skill *model.Skill) error {
	if _, ok := m.skills[skill.ID]; !ok {
		return repository.ErrSkillNotFound
	}
	m.skills[skill.ID] = skill
	return nil
}

func (m *mockSkillRepo) Delete(id string) error {
	if _, ok := m.skills[id]; !ok {
		return repository.ErrSkillNotFound
	}
	delete(m.skills, id)
	return nil
}

type mockUserSkillRepo struct {
	skills []*model.UserSkill
}

func (m *mockUserSkillRepo) Create(us *model.UserSkill) error {
	for _, existing := range m.skills {
		if existing.UserID == us.UserID && existing.SkillID == us.SkillID {
			return repository.ErrSkillAlreadyAdded
		}
	}
	m.skills = append(m.skills, us)
	return nil
}

func (m *mockUserSkillRepo) ByID(userID, id string) (*model.UserSkill, error) {
	for _, us := range m.skills {
		if us.UserID == userID && us.ID == id {
			return us, nil
		}
	}
	return nil, repository.ErrUserSkillNotFound
}

func (m *mockUserSkillRepo) ByUser(userID string) ([]*model.UserSkill, error) {
	out := []*model.UserSkill{}
	for _, us := range m.skills {
		if us.UserID == userID {
			out = append(out, us)
		}
	}
	return out, nil
}

func (m *mockUserSkillRepo) Update(us *model.UserSkill) error {
	for i, existing := range m.skills {
		if existing.UserID == us.UserID && existing.ID == us.ID {
			m.skills[i] = us
			return nil
		}
	}
	return repository.ErrUserSkillNotFound
}

func (m *mockUserSkillRepo) Delete(userID, id string) error {
	for i, us := range m.skills {
		if us.UserID == userID && us.ID == id {
			m.skills = append(m.skills[:i], m.skills[i+1:]...)
			return nil
		}
	}
	return repository.ErrUserSkillNotFound
}

func (m *mockUserSkillRepo) TotalXP(userID string) (int, error) {
	total := 0
	for _, us := range m.skills {
		if us.UserID == userID {
			total += us.XP
		}
	}
	return total, nil
}

func (m *mockUserSkillRepo) CountAddedBetween(userID string, from, to time.Time) (int, error) {
	count := 0
	for _, us := range m.skills {
		if us.UserID == userID && !us.CreatedAt.Before(from) && us.CreatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (m *mockUserSkillRepo) CountImprovedBetween(userID string, from, to time.Time) (int, error) {
	count := 0
	for _, us := range m.skills {
		if us.UserID == userID && us.UpdatedAt.After(us.CreatedAt) &&
			!us.UpdatedAt.Before(from) && us.UpdatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (m *mockUserSkillRepo) CountByUser(userID string) (int, error) {
	count := 0
	for _, us := range m.skills {
		if us.UserID == userID {
			count++
		}
	}
	return count, nil
}

type mockWellnessRepo struct {
	logs     []*model.WellnessLog
	failNext bool
}

func (m *mockWellnessRepo) Create(log *model.WellnessLog) error {
	if m.failNext {
		m.failNext = false
		return errStorage
	}
	m.logs = append(m.logs, log)
	return nil
}

func (m *mockWellnessRepo) ByUser(userID string, limit int) ([]*model.WellnessLog, error) {
	out := []*model.WellnessLog{}
	for i := len(m.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if m.logs[i].UserID == userID {
			out = append(out, m.logs[i])
		}
	}
	return out, nil
}

func (m *mockWellnessRepo) Between(userID string, from, to time.Time) ([]*model.WellnessLog, error) {
	out := []*model.WellnessLog{}
	for _, l := range m.logs {
		if l.UserID == userID && !l.CreatedAt.Before(from) && l.CreatedAt.Before(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockWellnessRepo) Latest(userID string) (*model.WellnessLog, error) {
	for i := len(m.logs) - 1; i >= 0; i-- {
		if m.logs[i].UserID == userID {
			return m.logs[i], nil
		}
	}
	return nil, repository.ErrWellnessLogNotFound
}

type mockTargetRepo struct {
	targets []*model.Target
}

func (m *mockTargetRepo) Create(target *model.Target) error {
	m.targets = append(m.targets, target)
	return nil
}

func (m *mockTargetRepo) ByUserAndMonth(userID, month string) ([]*model.Target, error) {
	out := []*model.Target{}
	for _, t := range m.targets {
		if t.UserID == userID && t.Month == month {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTargetRepo) MarkAchieved(userID, id string, achievedAt time.Time) error {
	for _, t := range m.targets {
		if t.UserID == userID && t.ID == id {
			t.Achieved = true
			t.AchievedAt = &achievedAt
			return nil
		}
	}
	return repository.ErrTargetNotFound
}

func (m *mockTargetRepo) Delete(userID, id string) error {
	for i, t := range m.targets {
		if t.UserID == userID && t.ID == id {
			m.targets = append(m.targets[:i], m.targets[i+1:]...)
			return nil
		}
	}
	return repository.ErrTargetNotFound
}

func (m *mockTargetRepo) CountByMonth(userID, month string) (int, int, error) {
	set, achieved := 0, 0
	for _, t := range m.targets {
		if t.UserID == userID && t.Month == month {
			set++
			if t.Achieved {
				achieved++
			}
		}
	}
	return set, achieved, nil
}

type mockProfileRepo struct {
	profiles map[string]*model.Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: map[string]*model.Profile{}}
}

func (m *mockProfileRepo) ByUserID(userID string) (*model.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) Create(profile *model.Profile) error {
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockProfileRepo) Update(profile *model.Profile) error {
	if _, ok := m.profiles[profile.UserID]; !ok {
		return repository.ErrProfileNotFound
	}
	m.profiles[profile.UserID] = profile
	return nil
}

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*model.User{}}
}

func (m *mockUserRepo) Create(user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) ByID(id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ByEmail(email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) List(opts repository.UserListOptions) ([]*model.User, int, error) {
	out := []*model.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (m *mockUserRepo) Update(user *model.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) UpdateRole(id, role string) error {
	u, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (m *mockUserRepo) Delete(id string) error {
	if _, ok := m.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type mockCareerRepo struct {
	careers    map[string]*model.Career
	selections []*model.UserCareer
}

func newMockCareerRepo() *mockCareerRepo {
	return &mockCareerRepo{careers: map[string]*model.Career{}}
}

func (m *mockCareerRepo) Create(career *model.Career) error {
	m.careers[career.ID] = career
	return nil
}

func (m *mockCareerRepo) ByID(id string) (*model.Career, error) {
	c, ok := m.careers[id]
	if !ok {
		return nil, repository.ErrCareerNotFound
	}
	return c, nil
}

func (m *mockCareerRepo) List(opts repository.CatalogListOptions) ([]*model.Career, int, error) {
	out := []*model.Career{}
	for _, c := range m.careers {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (m *mockCareerRepo) Search(q string) ([]*model.Career, error) { return nil, nil }

func (m *mockCareerRepo) Update(career *model.Career) error {
	if _, ok := m.careers[career.ID]; !ok {
		return repository.ErrCareerNotFound
	}
	m.careers[career.ID] = career
	return nil
}

func (m *mockCareerRepo) Delete(id string) error {
	if _, ok := m.careers[id]; !ok {
		return repository.ErrCareerNotFound
	}
	delete(m.careers, id)
	return nil
}

func (m *mockCareerRepo) Select(uc *model.UserCareer) error {
	for _, existing := range m.selections {
		if existing.UserID == uc.UserID && existing.CareerID == uc.CareerID {
			return repository.ErrCareerAlreadySelected
		}
	}
	m.selections = append(m.selections, uc)
	return nil
}

func (m *mockCareerRepo) Unselect(userID, careerID string) error {
	for i, uc := range m.selections {
		if uc.UserID == userID && uc.CareerID == careerID {
			m.selections = append(m.selections[:i], m.selections[i+1:]...)
			return nil
		}
	}
	return repository.ErrCareerNotFound
}

func (m *mockCareerRepo) SelectedByUser(userID string) ([]*model.Career, error) {
	out := []*model.Career{}
	for _, uc := range m.selections {
		if uc.UserID == userID {
			if c, ok := m.careers[uc.CareerID]; ok {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

type mockPostRepo struct {
	posts map[string]*model.Post
	likes []*model.PostLike
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: map[string]*model.Post{}}
}

func (m *mockPostRepo) Create(post *model.Post) error {
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) ByID(id, viewerID string) (*model.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	out := *p
	for _, l := range m.likes {
		if l.PostID != id {
			continue
		}
		out.LikeCount++
		if l.UserID == viewerID {
			out.LikedByMe = true
		}
	}
	return &out, nil
}

func (m *mockPostRepo) Feed(viewerID string, limit, offset int) ([]*model.Post, int, error) {
	out := []*model.Post{}
	for id := range m.posts {
		p, _ := m.ByID(id, viewerID)
		out = append(out, p)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, len(m.posts), nil
}

func (m *mockPostRepo) Delete(userID, id string) error {
	p, ok := m.posts[id]
	if !ok || p.UserID != userID {
		return repository.ErrPostNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) DeleteAny(id string) error {
	if _, ok := m.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) Like(like *model.PostLike) error {
	if _, ok := m.posts[like.PostID]; !ok {
		return repository.ErrPostNotFound
	}
	for _, l := range m.likes {
		if l.PostID == like.PostID && l.UserID == like.UserID {
			return repository.ErrAlreadyLiked
		}
	}
	m.likes = append(m.likes, like)
	return nil
}

func (m *mockPostRepo) Unlike(userID, postID string) error {
	for i, l := range m.likes {
		if l.PostID == postID && l.UserID == userID {
			m.likes = append(m.likes[:i], m.likes[i+1:]...)
			return nil
		}
	}
	return repository.ErrLikeNotFound
}

type mockPortfolioRepo struct {
	certificates []*model.Certificate
	projects     []*model.Project
}

func (m *mockPortfolioRepo) CreateCertificate(c *model.Certificate) error {
	m.certificates = append(m.certificates, c)
	return nil
}

func (m *mockPortfolioRepo) CertificateByID(userID, id string) (*model.Certificate, error) {
	for _, c := range m.certificates {
		if c.UserID == userID && c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrCertificateNotFound
}

func (m *mockPortfolioRepo) CertificatesByUser(userID string) ([]*model.Certificate, error) {
	out := []*model.Certificate{}
	for _, c := range m.certificates {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockPortfolioRepo) DeleteCertificate(userID, id string) error {
	for i, c := range m.certificates {
		if c.UserID == userID && c.ID == id {
			m.certificates = append(m.certificates[:i], m.certificates[i+1:]...)
			return nil
		}
	}
	return repository.ErrCertificateNotFound
}

func (m *mockPortfolioRepo) CountCertificates(userID string) (int, error) {
	certs, _ := m.CertificatesByUser(userID)
	return len(certs), nil
}

func (m *mockPortfolioRepo) CreateProject(p *model.Project) error {
	m.projects = append(m.projects, p)
	return nil
}

func (m *mockPortfolioRepo) ProjectByID(userID, id string) (*model.Project, error) {
	for _, p := range m.projects {
		if p.UserID == userID && p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrProjectNotFound
}

func (m *mockPortfolioRepo) ProjectsByUser(userID string) ([]*model.Project, error) {
	out := []*model.Project{}
	for _, p := range m.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPortfolioRepo) UpdateProject(p *model.Project) error {
	for i, existing := range m.projects {
		if existing.UserID == p.UserID && existing.ID == p.ID {
			m.projects[i] = p
			return nil
		}
	}
	return repository.ErrProjectNotFound
}

func (m *mockPortfolioRepo) DeleteProject(userID, id string) error {
	for i, p := range m.projects {
		if p.UserID == userID && p.ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return nil
		}
	}
	return repository.ErrProjectNotFound
}

func (m *mockPortfolioRepo) CountProjects(userID string) (int, error) {
	projects, _ := m.ProjectsByUser(userID)
	return len(projects), nil
}

func (m *mockPortfolioRepo) HasFeaturedProject(userID string) (bool, error) {
	for _, p := range m.projects {
		if p.UserID == userID && p.Featured {
			return true, nil
		}
	}
	return false, nil
}

type mockOnboardingRepo struct {
	drafts map[string]*model.OnboardingDraft
}

func newMockOnboardingRepo() *mockOnboardingRepo {
	return &mockOnboardingRepo{drafts: map[string]*model.OnboardingDraft{}}
}

func (m *mockOnboardingRepo) Upsert(draft *model.OnboardingDraft) error {
	m.drafts[draft.UserID] = draft
	return nil
}

func (m *mockOnboardingRepo) ByUserID(userID string) (*model.OnboardingDraft, error) {
	d, ok := m.drafts[userID]
	if !ok {
		return nil, repository.ErrDraftNotFound
	}
	return d, nil
}

func (m *mockOnboardingRepo) Delete(userID string) error {
	if _, ok := m.drafts[userID]; !ok {
		return repository.ErrDraftNotFound
	}
	delete(m.drafts, userID)
	return nil
}

type mockCourseRepo struct {
	courses     map[string]*model.Course
	enrollments []*model.UserCourse
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: map[string]*model.Course{}}
}

func (m *mockCourseRepo) Create(course *model.Course) error {
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) ByID(id string) (*model.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, repository.ErrCourseNotFound
	}
	return c, nil
}

func (m *mockCourseRepo) List(opts repository.CatalogListOptions) ([]*model.Course, int, error) {
	out := []*model.Course{}
	for _, c := range m.courses {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (m *mockCourseRepo) Search(q string) ([]*model.Course, error) { return nil, nil }

func (m *mockCourseRepo) Delete(id string) error {
	if _, ok := m.courses[id]; !ok {
		return repository.ErrCourseNotFound
	}
	delete(m.courses, id)
	return nil
}

func (m *mockCourseRepo) Enroll(uc *model.UserCourse) error {
	for _, existing := range m.enrollments {
		if existing.UserID == uc.UserID && existing.CourseID == uc.CourseID {
			return repository.ErrAlreadyEnrolled
		}
	}
	m.enrollments = append(m.enrollments, uc)
	return nil
}

func (m *mockCourseRepo) EnrollmentByID(userID, id string) (*model.UserCourse, error) {
	for _, uc := range m.enrollments {
		if uc.UserID == userID && uc.ID == id {
			return uc, nil
		}
	}
	return nil, repository.ErrEnrollmentNotFound
}

func (m *mockCourseRepo) EnrollmentsByUser(userID string) ([]*model.UserCourse, error) {
	out := []*model.UserCourse{}
	for _, uc := range m.enrollments {
		if uc.UserID == userID {
			out = append(out, uc)
		}
	}
	return out, nil
}

func (m *mockCourseRepo) Complete(userID, id string, completedAt time.Time) error {
	for _, uc := range m.enrollments {
		if uc.UserID == userID && uc.ID == id {
			uc.Status = model.CourseStatusCompleted
			uc.CompletedAt = &completedAt
			return nil
		}
	}
	return repository.ErrEnrollmentNotFound
}

func (m *mockCourseRepo) CountStartedBetween(userID string, from, to time.Time) (int, error) {
	count := 0
	for _, uc := range m.enrollments {
		if uc.UserID == userID && !uc.StartedAt.Before(from) && uc.StartedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (m *mockCourseRepo) CompletedHoursBetween(userID string, from, to time.Time) (float64, error) {
	hours := 0.0
	for _, uc := range m.enrollments {
		if uc.UserID != userID || uc.CompletedAt == nil {
			continue
		}
		if !uc.CompletedAt.Before(from) && uc.CompletedAt.Before(to) {
			if course, ok := m.courses[uc.CourseID]; ok {
				hours += course.DurationHours
			}
		}
	}
	return hours, nil
}

type mockJobRepo struct {
	jobs         map[string]*model.Job
	applications []*model.JobApplication
	saved        []*model.SavedJob
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: map[string]*model.Job{}}
}

func (m *mockJobRepo) Create(job *model.Job) error {
	m.jobs[job.ID] = job
	return nil
}

func (m *mockJobRepo) ByID(id string) (*model.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepo) List(opts repository.CatalogListOptions) ([]*model.Job, int, error) {
	out := []*model.Job{}
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, len(out), nil
}

func (m *mockJobRepo) Search(q string) ([]*model.Job, error) { return nil, nil }

func (m *mockJobRepo) Delete(id string) error {
	if _, ok := m.jobs[id]; !ok {
		return repository.ErrJobNotFound
	}
	delete(m.jobs, id)
	return nil
}

func (m *mockJobRepo) Apply(app *model.JobApplication) error {
	for _, existing := range m.applications {
		if existing.UserID == app.UserID && existing.JobID == app.JobID {
			return repository.ErrAlreadyApplied
		}
	}
	m.applications = append(m.applications, app)
	return nil
}

func (m *mockJobRepo) ApplicationsByUser(userID string) ([]*model.JobApplication, error) {
	out := []*model.JobApplication{}
	for _, app := range m.applications {
		if app.UserID == userID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (m *mockJobRepo) CountAppliedBetween(userID string, from, to time.Time) (int, error) {
	count := 0
	for _, app := range m.applications {
		if app.UserID == userID && !app.AppliedAt.Before(from) && app.AppliedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (m *mockJobRepo) Save(saved *model.SavedJob) error {
	for _, existing := range m.saved {
		if existing.UserID == saved.UserID && existing.JobID == saved.JobID {
			return repository.ErrJobAlreadySaved
		}
	}
	m.saved = append(m.saved, saved)
	return nil
}

func (m *mockJobRepo) Unsave(userID, jobID string) error {
	for i, s := range m.saved {
		if s.UserID == userID && s.JobID == jobID {
			m.saved = append(m.saved[:i], m.saved[i+1:]...)
			return nil
		}
	}
	return repository.ErrSavedJobMissing
}

func (m *mockJobRepo) SavedByUser(userID string) ([]*model.Job, error) {
	out := []*model.Job{}
	for _, s := range m.saved {
		if s.UserID == userID {
			if j, ok := m.jobs[s.JobID]; ok {
				out = append(out, j)
			}
		}
	}
	return out, nil
}

type mockConsultationRepo struct {
	consultations map[string]*model.Consultation
}

func newMockConsultationRepo() *mockConsultationRepo {
	return &mockConsultationRepo{consultations: map[string]*model.Consultation{}}
}

func (m *mockConsultationRepo) Create(c *model.Consultation) error {
	m.consultations[c.ID] = c
	return nil
}

func (m *mockConsultationRepo) ByID(id string) (*model.Consultation, error) {
	c, ok := m.consultations[id]
	if !ok {
		return nil, repository.ErrConsultationNotFound
	}
	return c, nil
}

func (m *mockConsultationRepo) ByUser(userID string) ([]*model.Consultation, error) {
	out := []*model.Consultation{}
	for _, c := range m.consultations {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockConsultationRepo) List(limit, offset int) ([]*model.Consultation, int, error) {
	out := []*model.Consultation{}
	for _, c := range m.consultations {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (m *mockConsultationRepo) UpdateStatus(id, status string) error {
	c, ok := m.consultations[id]
	if !ok {
		return repository.ErrConsultationNotFound
	}
	c.Status = status
	return nil
}

func (m *mockConsultationRepo) Cancel(userID, id string) error {
	c, ok := m.consultations[id]
	if !ok || c.UserID != userID {
		return repository.ErrConsultationNotFound
	}
	c.Status = model.ConsultationStatusCancelled
	return nil
}

type mockPaymentRepo struct {
	payments map[string]*model.Payment // keyed by order id
	failNext bool
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{payments: map[string]*model.Payment{}}
}

func (m *mockPaymentRepo) Create(p *model.Payment) error {
	if m.failNext {
		m.failNext = false
		return errStorage
	}
	m.payments[p.OrderID] = p
	return nil
}

func (m *mockPaymentRepo) ByOrderID(orderID string) (*model.Payment, error) {
	p, ok := m.payments[orderID]
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}
	return p, nil
}

func (m *mockPaymentRepo) ByUser(userID string) ([]*model.Payment, error) {
	out := []*model.Payment{}
	for _, p := range m.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPaymentRepo) List(limit, offset int) ([]*model.Payment, int, error) {
	out := []*model.Payment{}
	for _, p := range m.payments {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (m *mockPaymentRepo) UpdateStatus(orderID, status string) error {
	p, ok := m.payments[orderID]
	if !ok {
		return repository.ErrPaymentNotFound
	}
	p.Status = status
	return nil
}

// fakeProvider stands in for the payment gateway. Notifications verify
// by echoing verifyStatus; createErr simulates a gateway outage.
type fakeProvider struct {
	createErr    error
	verifyErr    error
	verifyStatus string

	lastOrderID string
	lastAmount  int64
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) CreateTransaction(orderID string, amount int64, customerEmail, customerName, itemName string) (*payment.Transaction, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastOrderID = orderID
	f.lastAmount = amount
	return &payment.Transaction{Token: "snap-token", RedirectURL: "https://pay.test/" + orderID}, nil
}

func (f *fakeProvider) VerifyNotification(n payment.Notification) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return f.verifyStatus, nil
}
