package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/caretrack/wellness/internal/models"
	"github.com/caretrack/wellness/internal/storage"
)

func newTestUser(email string) *models.User {
	return &models.User{
		Email:        email,
		PasswordHash: "$2a$10$fakehashfortesting",
		Name:         "Test User",
		Role:         models.RolePatient,
		Profile: models.Profile{
			Allergies:   []string{},
			Medications: []string{},
		},
		DataConsent: true,
	}
}

func TestMemoryStoreUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateUser generates ID and timestamps", func(t *testing.T) {
		store := New()
		user := newTestUser("alice@example.com")

		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if user.ID == "" {
			t.Error("Expected user ID to be generated")
		}
		if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
			t.Error("Expected timestamps to be set")
		}
	})

	t.Run("duplicate email fails case-insensitively", func(t *testing.T) {
		store := New()
		if err := store.CreateUser(ctx, newTestUser("alice@example.com")); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		err := store.CreateUser(ctx, newTestUser("Alice@Example.COM"))
		if !errors.Is(err, storage.ErrEmailExists) {
			t.Errorf("Expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("GetUserByEmail is case-insensitive", func(t *testing.T) {
		store := New()
		user := newTestUser("bob@example.com")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		found, err := store.GetUserByEmail(ctx, "BOB@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("Got user %s, want %s", found.ID, user.ID)
		}
	})

	t.Run("GetSafeUser strips the hash", func(t *testing.T) {
		store := New()
		user := newTestUser("carol@example.com")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		safe, err := store.GetSafeUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetSafeUser failed: %v", err)
		}
		if safe.Email != user.Email || safe.ID != user.ID {
			t.Errorf("Safe user fields mismatch: %+v", safe)
		}
	})

	t.Run("UpdateProfile merges partial updates", func(t *testing.T) {
		store := New()
		user := newTestUser("dan@example.com")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		name := "Daniel"
		blood := "O-"
		updated, err := store.UpdateProfile(ctx, user.ID, models.UpdateProfile{
			Name: &name,
			Profile: &models.ProfileUpdate{
				BloodType: &blood,
			},
		})
		if err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		if updated.Name != "Daniel" {
			t.Errorf("Name = %q, want Daniel", updated.Name)
		}
		if updated.Profile.BloodType != "O-" {
			t.Errorf("BloodType = %q, want O-", updated.Profile.BloodType)
		}
		// Untouched fields survive the merge.
		if updated.Email != "dan@example.com" {
			t.Errorf("Email changed to %q", updated.Email)
		}
	})

	t.Run("callers receive copies", func(t *testing.T) {
		store := New()
		user := newTestUser("eve@example.com")
		user.Profile.Allergies = []string{"Penicillin"}
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		got, err := store.GetUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		got.Profile.Allergies[0] = "mutated"
		got.Name = "mutated"

		again, err := store.GetUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if again.Name == "mutated" || again.Profile.Allergies[0] == "mutated" {
			t.Error("store state mutated through a returned copy")
		}
	})
}

func TestMemoryStoreGoals(t *testing.T) {
	ctx := context.Background()
	store := New()

	user := newTestUser("goals@example.com")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	dates := []string{"2025-01-05", "2025-01-07", "2025-01-06"}
	for _, date := range dates {
		goal := &models.Goal{
			UserID:      user.ID,
			GoalType:    models.GoalSteps,
			TargetValue: 8000,
			Unit:        "steps",
			Date:        date,
		}
		if err := store.CreateGoal(ctx, goal); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}
	}

	t.Run("ListGoals sorts newest date first", func(t *testing.T) {
		goals, err := store.ListGoals(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListGoals failed: %v", err)
		}
		if len(goals) != 3 {
			t.Fatalf("Got %d goals, want 3", len(goals))
		}
		want := []string{"2025-01-07", "2025-01-06", "2025-01-05"}
		for i, date := range want {
			if goals[i].Date != date {
				t.Errorf("goals[%d].Date = %s, want %s", i, goals[i].Date, date)
			}
		}
	})

	t.Run("CreateGoal defaults empty date to today", func(t *testing.T) {
		goal := &models.Goal{
			UserID:      user.ID,
			GoalType:    models.GoalWater,
			TargetValue: 8,
			Unit:        "glasses",
		}
		if err := store.CreateGoal(ctx, goal); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}
		if goal.Date == "" {
			t.Error("Expected date to default to today")
		}
	})

	t.Run("UpdateGoalProgress sets progress only", func(t *testing.T) {
		goals, _ := store.ListGoals(ctx, user.ID)
		target := goals[0]

		updated, err := store.UpdateGoalProgress(ctx, target.ID, 4321)
		if err != nil {
			t.Fatalf("UpdateGoalProgress failed: %v", err)
		}
		if updated.ProgressValue != 4321 {
			t.Errorf("ProgressValue = %v, want 4321", updated.ProgressValue)
		}
		if updated.TargetValue != target.TargetValue {
			t.Errorf("TargetValue changed: %v", updated.TargetValue)
		}
		if !updated.UpdatedAt.After(target.UpdatedAt) && !updated.UpdatedAt.Equal(target.UpdatedAt) {
			t.Error("Expected UpdatedAt to be refreshed")
		}
	})

	t.Run("UpdateGoalProgress on unknown id is not found", func(t *testing.T) {
		_, err := store.UpdateGoalProgress(ctx, "nope", 1)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteGoal is idempotent", func(t *testing.T) {
		goals, _ := store.ListGoals(ctx, user.ID)
		id := goals[0].ID

		deleted, err := store.DeleteGoal(ctx, id)
		if err != nil || !deleted {
			t.Fatalf("DeleteGoal = (%v, %v), want (true, nil)", deleted, err)
		}

		deleted, err = store.DeleteGoal(ctx, id)
		if err != nil {
			t.Fatalf("second DeleteGoal errored: %v", err)
		}
		if deleted {
			t.Error("second DeleteGoal reported a removal")
		}
	})
}

func TestMemoryStoreReminders(t *testing.T) {
	ctx := context.Background()
	store := New()

	user := newTestUser("reminders@example.com")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	dueDates := []string{"2025-02-01", "2025-01-10", "2025-01-20"}
	for _, due := range dueDates {
		reminder := &models.Reminder{
			UserID:  user.ID,
			Title:   "Checkup",
			DueDate: due,
		}
		if err := store.CreateReminder(ctx, reminder); err != nil {
			t.Fatalf("CreateReminder failed: %v", err)
		}
	}

	t.Run("new reminders default to pending and other", func(t *testing.T) {
		reminders, err := store.ListReminders(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListReminders failed: %v", err)
		}
		for _, r := range reminders {
			if r.Status != models.ReminderPending {
				t.Errorf("Status = %q, want pending", r.Status)
			}
			if r.Category != models.CategoryOther {
				t.Errorf("Category = %q, want other", r.Category)
			}
		}
	})

	t.Run("ListReminders sorts earliest due date first", func(t *testing.T) {
		reminders, err := store.ListReminders(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListReminders failed: %v", err)
		}
		want := []string{"2025-01-10", "2025-01-20", "2025-02-01"}
		for i, due := range want {
			if reminders[i].DueDate != due {
				t.Errorf("reminders[%d].DueDate = %s, want %s", i, reminders[i].DueDate, due)
			}
		}
	})

	t.Run("UpdateReminder only touches whitelisted fields", func(t *testing.T) {
		reminders, _ := store.ListReminders(ctx, user.ID)
		target := reminders[0]

		status := models.ReminderCompleted
		updated, err := store.UpdateReminder(ctx, target.ID, models.ReminderUpdate{
			Status: &status,
		})
		if err != nil {
			t.Fatalf("UpdateReminder failed: %v", err)
		}
		if updated.Status != models.ReminderCompleted {
			t.Errorf("Status = %q, want completed", updated.Status)
		}
		if updated.UserID != user.ID || updated.ID != target.ID {
			t.Error("identity fields changed on update")
		}
		if updated.Title != target.Title || updated.DueDate != target.DueDate {
			t.Error("unspecified fields changed on update")
		}
	})

	t.Run("DeleteReminder is idempotent", func(t *testing.T) {
		reminders, _ := store.ListReminders(ctx, user.ID)
		id := reminders[0].ID

		deleted, err := store.DeleteReminder(ctx, id)
		if err != nil || !deleted {
			t.Fatalf("DeleteReminder = (%v, %v), want (true, nil)", deleted, err)
		}
		deleted, err = store.DeleteReminder(ctx, id)
		if err != nil || deleted {
			t.Fatalf("second DeleteReminder = (%v, %v), want (false, nil)", deleted, err)
		}
	})
}

func TestMemoryStoreProvidersAndAudit(t *testing.T) {
	ctx := context.Background()
	store := New()

	provider := newTestUser("doc@example.com")
	provider.Role = models.RoleProvider
	if err := store.CreateUser(ctx, provider); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	linked := newTestUser("patient1@example.com")
	linked.ProviderID = provider.ID
	unlinked := newTestUser("patient2@example.com")
	for _, u := range []*models.User{linked, unlinked} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	t.Run("ListPatients returns only linked patients", func(t *testing.T) {
		patients, err := store.ListPatients(ctx, provider.ID)
		if err != nil {
			t.Fatalf("ListPatients failed: %v", err)
		}
		if len(patients) != 1 || patients[0].ID != linked.ID {
			t.Errorf("Got %d patients, want exactly the linked one", len(patients))
		}
	})

	t.Run("AppendAudit assigns id and timestamp", func(t *testing.T) {
		err := store.AppendAudit(ctx, models.AuditEntry{
			UserID:         provider.ID,
			Action:         models.ActionViewPatients,
			TargetResource: "patients",
		})
		if err != nil {
			t.Fatalf("AppendAudit failed: %v", err)
		}

		entries, err := store.ListAudit(ctx, provider.ID)
		if err != nil {
			t.Fatalf("ListAudit failed: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("Got %d entries, want 1", len(entries))
		}
		if entries[0].ID == "" || entries[0].Timestamp.IsZero() {
			t.Error("Expected id and timestamp to be assigned")
		}
	})
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	store := New()

	if err := SeedDemoData(ctx, store); err != nil {
		t.Fatalf("SeedDemoData failed: %v", err)
	}

	provider, err := store.GetUserByEmail(ctx, "provider@wellness.com")
	if err != nil {
		t.Fatalf("seed provider missing: %v", err)
	}

	patients, err := store.ListPatients(ctx, provider.ID)
	if err != nil {
		t.Fatalf("ListPatients failed: %v", err)
	}
	if len(patients) != 3 {
		t.Fatalf("Got %d seeded patients, want 3", len(patients))
	}

	content, err := store.PublicContent(ctx)
	if err != nil {
		t.Fatalf("PublicContent failed: %v", err)
	}
	if len(content) == 0 {
		t.Error("Expected seeded public content")
	}

	tip, err := store.HealthTip(ctx)
	if err != nil || tip.Tip == "" {
		t.Errorf("HealthTip = (%+v, %v), want a non-empty tip", tip, err)
	}
}
