// Package storage defines the record store contract and its sentinel errors.
package storage

import (
	"context"
	"errors"

	"github.com/caretrack/wellness/internal/models"
)

var (
	// ErrNotFound is returned when a record id does not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrEmailExists is returned by CreateUser when the email is already
	// registered (compared case-insensitively).
	ErrEmailExists = errors.New("email already registered")
)

// Store is the record store: key-based operations over users, goals,
// reminders, the audit log and read-only content.
//
// The store exclusively owns all entity instances; callers receive copies
// and never hold authoritative state. No operation spans more than one
// collection atomically — a get followed by an update is two independent
// operations and concurrent writers are last-write-wins.
type Store interface {
	// CreateUser persists a new user, assigning ID and timestamps.
	// The user must already carry a password hash, never a plaintext
	// credential. Fails with ErrEmailExists on a duplicate email.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by id, including the credential hash.
	// Only auth-internal callers should use this; everything API-facing
	// goes through GetSafeUser.
	GetUser(ctx context.Context, id string) (*models.User, error)

	// GetUserByEmail retrieves a user by email, case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetSafeUser retrieves a user by id with the credential hash stripped.
	GetSafeUser(ctx context.Context, id string) (*models.SafeUser, error)

	// UpdateProfile applies a partial profile update, refreshing the update
	// timestamp, and returns the safe projection of the result.
	UpdateProfile(ctx context.Context, id string, updates models.UpdateProfile) (*models.SafeUser, error)

	// ListGoals returns the user's goals, newest date first.
	ListGoals(ctx context.Context, userID string) ([]models.Goal, error)

	// GetGoal retrieves a goal by id.
	GetGoal(ctx context.Context, id string) (*models.Goal, error)

	// CreateGoal persists a new goal, assigning ID and timestamps.
	CreateGoal(ctx context.Context, goal *models.Goal) error

	// UpdateGoalProgress sets a goal's progress value and refreshes its
	// update timestamp.
	UpdateGoalProgress(ctx context.Context, id string, progress float64) (*models.Goal, error)

	// DeleteGoal removes a goal. Deleting an unknown id is not an error;
	// the bool reports whether a record was removed.
	DeleteGoal(ctx context.Context, id string) (bool, error)

	// ListReminders returns the user's reminders, earliest due date first.
	ListReminders(ctx context.Context, userID string) ([]models.Reminder, error)

	// GetReminder retrieves a reminder by id.
	GetReminder(ctx context.Context, id string) (*models.Reminder, error)

	// CreateReminder persists a new reminder, assigning ID and timestamps.
	CreateReminder(ctx context.Context, reminder *models.Reminder) error

	// UpdateReminder applies a whitelisted partial update and refreshes the
	// update timestamp. Identity fields cannot be changed.
	UpdateReminder(ctx context.Context, id string, updates models.ReminderUpdate) (*models.Reminder, error)

	// DeleteReminder removes a reminder. Same idempotency contract as
	// DeleteGoal.
	DeleteReminder(ctx context.Context, id string) (bool, error)

	// ListPatients returns the patient accounts linked to a provider.
	ListPatients(ctx context.Context, providerID string) ([]models.User, error)

	// AppendAudit appends one entry to the audit log, assigning ID and
	// timestamp. Entries are never mutated or deleted.
	AppendAudit(ctx context.Context, entry models.AuditEntry) error

	// ListAudit returns a user's audit entries, newest first.
	ListAudit(ctx context.Context, userID string) ([]models.AuditEntry, error)

	// HealthTip returns a random health tip.
	HealthTip(ctx context.Context) (models.HealthTip, error)

	// PublicContent returns the public health-info articles.
	PublicContent(ctx context.Context) ([]models.PublicContent, error)
}
