// Package memory provides the in-memory implementation of storage.Store.
//
// State lives in plain maps for the lifetime of the process; nothing is
// persisted. A RWMutex guards each operation, so individual calls are safe
// under concurrent handlers, but a read-check-update sequence across two
// calls (e.g. an ownership check followed by an update) is still
// last-write-wins between concurrent requests. That hazard is accepted for
// the intended single-instance deployment.
package memory

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/caretrack/wellness/internal/models"
	"github.com/caretrack/wellness/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store using maps keyed by generated UUIDs.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[string]*models.User
	goals     map[string]*models.Goal
	reminders map[string]*models.Reminder
	audits    []models.AuditEntry
	tips      []models.HealthTip
	content   []models.PublicContent
}

// New creates an empty store preloaded with the built-in health tips.
func New() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]*models.User),
		goals:     make(map[string]*models.Goal),
		reminders: make(map[string]*models.Reminder),
		tips:      defaultHealthTips(),
	}
}

// CreateUser persists a new user. Email uniqueness is enforced here,
// case-insensitively, before the record is written.
func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(user.Email)
	for _, existing := range s.users {
		if strings.ToLower(existing.Email) == lower {
			return storage.ErrEmailExists
		}
	}

	now := time.Now().UTC()
	user.ID = uuid.New().String()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = copyUser(user)
	return nil
}

// GetUser retrieves a user by id, hash included.
func (s *MemoryStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return copyUser(user), nil
}

// GetUserByEmail retrieves a user by email, case-insensitively.
func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(email)
	for _, user := range s.users {
		if strings.ToLower(user.Email) == lower {
			return copyUser(user), nil
		}
	}
	return nil, storage.ErrNotFound
}

// GetSafeUser retrieves a user by id without the credential hash.
func (s *MemoryStore) GetSafeUser(ctx context.Context, id string) (*models.SafeUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return copyUser(user).Safe(), nil
}

// UpdateProfile merges a partial profile update into the stored user.
func (s *MemoryStore) UpdateProfile(ctx context.Context, id string, updates models.UpdateProfile) (*models.SafeUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if p := updates.Profile; p != nil {
		if p.DateOfBirth != nil {
			user.Profile.DateOfBirth = *p.DateOfBirth
		}
		if p.Allergies != nil {
			user.Profile.Allergies = append([]string(nil), (*p.Allergies)...)
		}
		if p.Medications != nil {
			user.Profile.Medications = append([]string(nil), (*p.Medications)...)
		}
		if p.EmergencyContact != nil {
			user.Profile.EmergencyContact = *p.EmergencyContact
		}
		if p.BloodType != nil {
			user.Profile.BloodType = *p.BloodType
		}
	}
	user.UpdatedAt = time.Now().UTC()

	return copyUser(user).Safe(), nil
}

// ListGoals returns the user's goals sorted descending by date.
func (s *MemoryStore) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := []models.Goal{}
	for _, goal := range s.goals {
		if goal.UserID == userID {
			goals = append(goals, *goal)
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Date > goals[j].Date
	})
	return goals, nil
}

// GetGoal retrieves a goal by id.
func (s *MemoryStore) GetGoal(ctx context.Context, id string) (*models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goal, ok := s.goals[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *goal
	return &copied, nil
}

// CreateGoal persists a new goal, assigning ID and timestamps.
func (s *MemoryStore) CreateGoal(ctx context.Context, goal *models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	goal.ID = uuid.New().String()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	if goal.Date == "" {
		goal.Date = now.Format("2006-01-02")
	}

	copied := *goal
	s.goals[goal.ID] = &copied
	return nil
}

// UpdateGoalProgress sets a goal's progress and refreshes its timestamp.
func (s *MemoryStore) UpdateGoalProgress(ctx context.Context, id string, progress float64) (*models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, ok := s.goals[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	goal.ProgressValue = progress
	goal.UpdatedAt = time.Now().UTC()

	copied := *goal
	return &copied, nil
}

// DeleteGoal removes a goal; unknown ids are a no-op.
func (s *MemoryStore) DeleteGoal(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.goals[id]
	delete(s.goals, id)
	return ok, nil
}

// ListReminders returns the user's reminders sorted ascending by due date.
func (s *MemoryStore) ListReminders(ctx context.Context, userID string) ([]models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := []models.Reminder{}
	for _, reminder := range s.reminders {
		if reminder.UserID == userID {
			reminders = append(reminders, *reminder)
		}
	}
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].DueDate < reminders[j].DueDate
	})
	return reminders, nil
}

// GetReminder retrieves a reminder by id.
func (s *MemoryStore) GetReminder(ctx context.Context, id string) (*models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminder, ok := s.reminders[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *reminder
	return &copied, nil
}

// CreateReminder persists a new reminder, assigning ID and timestamps.
// New reminders always start out pending.
func (s *MemoryStore) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	reminder.ID = uuid.New().String()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now
	if reminder.Status == "" {
		reminder.Status = models.ReminderPending
	}
	if reminder.Category == "" {
		reminder.Category = models.CategoryOther
	}

	copied := *reminder
	s.reminders[reminder.ID] = &copied
	return nil
}

// UpdateReminder applies a whitelisted partial update.
func (s *MemoryStore) UpdateReminder(ctx context.Context, id string, updates models.ReminderUpdate) (*models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminder, ok := s.reminders[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if updates.Title != nil {
		reminder.Title = *updates.Title
	}
	if updates.Description != nil {
		reminder.Description = *updates.Description
	}
	if updates.DueDate != nil {
		reminder.DueDate = *updates.DueDate
	}
	if updates.Status != nil {
		reminder.Status = *updates.Status
	}
	if updates.Category != nil {
		reminder.Category = *updates.Category
	}
	reminder.UpdatedAt = time.Now().UTC()

	copied := *reminder
	return &copied, nil
}

// DeleteReminder removes a reminder; unknown ids are a no-op.
func (s *MemoryStore) DeleteReminder(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.reminders[id]
	delete(s.reminders, id)
	return ok, nil
}

// ListPatients returns the patient accounts linked to the given provider,
// sorted by name for stable dashboard ordering.
func (s *MemoryStore) ListPatients(ctx context.Context, providerID string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patients := []models.User{}
	for _, user := range s.users {
		if user.Role == models.RolePatient && user.ProviderID == providerID {
			patients = append(patients, *copyUser(user))
		}
	}
	sort.Slice(patients, func(i, j int) bool {
		return patients[i].Name < patients[j].Name
	})
	return patients, nil
}

// AppendAudit appends one entry to the audit log.
func (s *MemoryStore) AppendAudit(ctx context.Context, entry models.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.New().String()
	entry.Timestamp = time.Now().UTC()
	if entry.Metadata != nil {
		copied := make(map[string]any, len(entry.Metadata))
		for k, v := range entry.Metadata {
			copied[k] = v
		}
		entry.Metadata = copied
	}

	s.audits = append(s.audits, entry)
	return nil
}

// ListAudit returns a user's audit entries, newest first.
func (s *MemoryStore) ListAudit(ctx context.Context, userID string) ([]models.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := []models.AuditEntry{}
	for _, entry := range s.audits {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

// HealthTip returns a random tip from the built-in set.
func (s *MemoryStore) HealthTip(ctx context.Context) (models.HealthTip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tips[rand.IntN(len(s.tips))], nil
}

// PublicContent returns the public health-info articles.
func (s *MemoryStore) PublicContent(ctx context.Context) ([]models.PublicContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content := make([]models.PublicContent, len(s.content))
	copy(content, s.content)
	return content, nil
}

// copyUser deep-copies a user so callers never share profile slices with
// the stored record.
func copyUser(user *models.User) *models.User {
	copied := *user
	copied.Profile.Allergies = append([]string(nil), user.Profile.Allergies...)
	copied.Profile.Medications = append([]string(nil), user.Profile.Medications...)
	return &copied
}

func defaultHealthTips() []models.HealthTip {
	return []models.HealthTip{
		{
			ID:       "1",
			Tip:      "Stay hydrated! Aim to drink at least 8 glasses of water per day for optimal health.",
			Category: "hydration",
			Icon:     "droplets",
		},
		{
			ID:       "2",
			Tip:      "Take a 5-minute stretch break every hour to reduce muscle tension and improve circulation.",
			Category: "exercise",
			Icon:     "activity",
		},
		{
			ID:       "3",
			Tip:      "Prioritize sleep! Adults need 7-9 hours of quality sleep for optimal health and cognitive function.",
			Category: "sleep",
			Icon:     "moon",
		},
		{
			ID:       "4",
			Tip:      "Add more colorful vegetables to your plate. Different colors provide different nutrients.",
			Category: "nutrition",
			Icon:     "apple",
		},
		{
			ID:       "5",
			Tip:      "Practice deep breathing for 5 minutes daily to reduce stress and improve mental clarity.",
			Category: "mental-health",
			Icon:     "brain",
		},
	}
}
