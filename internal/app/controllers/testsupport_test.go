package controllers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

// In-memory repository fakes. They honor the same error contracts as the
// MongoDB implementations so the controllers and services behave exactly as
// they would against a real database.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailTaken
		}
	}
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users[user.ID.Hex()] = user
	return nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserRepo) FindAll(ctx context.Context) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]*models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (m *memUserRepo) FindApprovedAlumni(ctx context.Context) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	alumni := []*models.User{}
	for _, user := range m.users {
		if user.Role == models.RoleAlumni && user.IsApproved {
			alumni = append(alumni, user)
		}
	}
	return alumni, nil
}

func (m *memUserRepo) SetApproved(ctx context.Context, id string, approved bool) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	user.IsApproved = approved
	user.UpdatedAt = time.Now().UTC()
	return user, nil
}

func (m *memUserRepo) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, user := range m.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (m *memUserRepo) CountPendingAlumni(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, user := range m.users {
		if user.Role == models.RoleAlumni && !user.IsApproved {
			count++
		}
	}
	return count, nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile // keyed by user hex id
	users    *memUserRepo
}

func newMemProfileRepo(users *memUserRepo) *memProfileRepo {
	return &memProfileRepo{profiles: map[string]*models.Profile{}, users: users}
}

func (m *memProfileRepo) FindByUser(ctx context.Context, userID string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if profile, ok := m.profiles[userID]; ok {
		return profile, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *memProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if profile.ID.IsZero() {
		profile.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	m.profiles[profile.User.Hex()] = profile
	return nil
}

func (m *memProfileRepo) Upsert(ctx context.Context, userID string, update bson.M) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile, ok := m.profiles[userID]
	if !ok {
		ownerID, err := bson.ObjectIDFromHex(userID)
		if err != nil {
			return nil, apperrors.ErrNotFound
		}
		profile = &models.Profile{
			ID:        bson.NewObjectID(),
			User:      ownerID,
			CreatedAt: time.Now().UTC(),
		}
		m.profiles[userID] = profile
	}
	applyProfileUpdate(profile, update)
	return profile, nil
}

func applyProfileUpdate(profile *models.Profile, update bson.M) {
	for key, value := range update {
		switch key {
		case "headline":
			profile.Headline = value.(string)
		case "bio":
			profile.Bio = value.(string)
		case "department":
			profile.Department = value.(string)
		case "graduationYear":
			year := value.(int)
			profile.GraduationYear = &year
		case "currentRole":
			profile.CurrentRole = value.(string)
		case "company":
			profile.Company = value.(string)
		case "location":
			profile.Location = value.(string)
		case "phone":
			profile.Phone = value.(string)
		case "socials":
			profile.Socials = value.(*models.Socials)
		case "skills":
			profile.Skills = value.([]models.Skill)
		case "certifications":
			profile.Certifications = value.([]models.Certification)
		case "experience":
			profile.Experience = value.([]models.Experience)
		case "interests":
			profile.Interests = value.([]string)
		case "updatedAt":
			profile.UpdatedAt = value.(time.Time)
		}
	}
}

func (m *memProfileRepo) FindByUsers(ctx context.Context, userIDs []bson.ObjectID) ([]*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profiles := []*models.Profile{}
	for _, id := range userIDs {
		if profile, ok := m.profiles[id.Hex()]; ok {
			profiles = append(profiles, profile)
		}
	}
	return profiles, nil
}

func (m *memProfileRepo) AlumniByCompany(ctx context.Context, limit int64) ([]*dto.CompanyCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[string]int64{}
	for userID, profile := range m.profiles {
		if profile.Company == "" {
			continue
		}
		user, ok := m.users.users[userID]
		if !ok || user.Role != models.RoleAlumni || !user.IsApproved {
			continue
		}
		counts[profile.Company]++
	}
	result := []*dto.CompanyCount{}
	for company, count := range counts {
		result = append(result, &dto.CompanyCount{Company: company, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Company < result[j].Company
	})
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

type memJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.JobPost
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[string]*models.JobPost{}}
}

func (m *memJobRepo) Create(ctx context.Context, job *models.JobPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job.ID.IsZero() {
		job.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now
	m.jobs[job.ID.Hex()] = job
	return nil
}

func (m *memJobRepo) FindByID(ctx context.Context, id string) (*models.JobPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, ok := m.jobs[id]; ok {
		return job, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *memJobRepo) List(ctx context.Context, filter dto.JobListFilter) ([]*models.JobPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	jobs := []*models.JobPost{}
	for _, job := range m.jobs {
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		if filter.Type != "" && job.Type != filter.Type {
			continue
		}
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}

func (m *memJobRepo) Update(ctx context.Context, job *models.JobPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[job.ID.Hex()]; !ok {
		return apperrors.ErrNotFound
	}
	job.UpdatedAt = time.Now().UTC()
	m.jobs[job.ID.Hex()] = job
	return nil
}

func (m *memJobRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

func (m *memJobRepo) CountByStatus(ctx context.Context) (*dto.JobStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := &dto.JobStats{}
	for _, job := range m.jobs {
		switch job.Status {
		case models.JobStatusOpen:
			stats.Open++
		case models.JobStatusClosed:
			stats.Closed++
		}
	}
	return stats, nil
}

type memEventRepo struct {
	mu     sync.Mutex
	events map[string]*models.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: map[string]*models.Event{}}
}

func (m *memEventRepo) Create(ctx context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if event.ID.IsZero() {
		event.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	m.events[event.ID.Hex()] = event
	return nil
}

func (m *memEventRepo) FindByID(ctx context.Context, id string) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if event, ok := m.events[id]; ok {
		return event, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *memEventRepo) ListPublished(ctx context.Context, upcomingOnly bool) ([]*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	events := []*models.Event{}
	for _, event := range m.events {
		if !event.IsPublished {
			continue
		}
		if upcomingOnly && event.StartDate.Before(now) {
			continue
		}
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartDate.Before(events[j].StartDate) })
	return events, nil
}

func (m *memEventRepo) Update(ctx context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[event.ID.Hex()]; !ok {
		return apperrors.ErrNotFound
	}
	event.UpdatedAt = time.Now().UTC()
	m.events[event.ID.Hex()] = event
	return nil
}

func (m *memEventRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *memEventRepo) Stats(ctx context.Context) (*dto.EventStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	stats := &dto.EventStats{}
	for _, event := range m.events {
		stats.Total++
		if event.StartDate.After(now) {
			stats.Upcoming++
		}
	}
	return stats, nil
}

type memMentorshipRepo struct {
	mu    sync.Mutex
	posts map[string]*models.MentorshipPost
}

func newMemMentorshipRepo() *memMentorshipRepo {
	return &memMentorshipRepo{posts: map[string]*models.MentorshipPost{}}
}

func (m *memMentorshipRepo) Create(ctx context.Context, post *models.MentorshipPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if post.ID.IsZero() {
		post.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	m.posts[post.ID.Hex()] = post
	return nil
}

func (m *memMentorshipRepo) List(ctx context.Context) ([]*models.MentorshipPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	posts := make([]*models.MentorshipPost, 0, len(m.posts))
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

type memStoryRepo struct {
	mu      sync.Mutex
	stories map[string]*models.SuccessStory
}

func newMemStoryRepo() *memStoryRepo {
	return &memStoryRepo{stories: map[string]*models.SuccessStory{}}
}

func (m *memStoryRepo) Create(ctx context.Context, story *models.SuccessStory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if story.ID.IsZero() {
		story.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	story.CreatedAt = now
	story.UpdatedAt = now
	m.stories[story.ID.Hex()] = story
	return nil
}

func (m *memStoryRepo) FindByID(ctx context.Context, id string) (*models.SuccessStory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if story, ok := m.stories[id]; ok {
		return story, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStoryRepo) List(ctx context.Context) ([]*models.SuccessStory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stories := make([]*models.SuccessStory, 0, len(m.stories))
	for _, story := range m.stories {
		stories = append(stories, story)
	}
	sort.Slice(stories, func(i, j int) bool {
		if stories[i].Featured != stories[j].Featured {
			return stories[i].Featured
		}
		return stories[i].CreatedAt.After(stories[j].CreatedAt)
	})
	return stories, nil
}

func (m *memStoryRepo) Update(ctx context.Context, story *models.SuccessStory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stories[story.ID.Hex()]; !ok {
		return apperrors.ErrNotFound
	}
	story.UpdatedAt = time.Now().UTC()
	m.stories[story.ID.Hex()] = story
	return nil
}

func (m *memStoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stories[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.stories, id)
	return nil
}
