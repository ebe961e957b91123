package memory

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/caretrack/wellness/internal/models"
)

// SeedDemoData populates the store with a demo provider, three linked
// patients with goals and reminders, and the public health-info articles.
// Intended for demo and development runs; disable via config in anything
// resembling production.
func SeedDemoData(ctx context.Context, s *MemoryStore) error {
	today := time.Now().UTC().Format("2006-01-02")

	providerHash, err := bcrypt.GenerateFromPassword([]byte("provider123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	patientHash, err := bcrypt.GenerateFromPassword([]byte("patient123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	provider := &models.User{
		Email:        "provider@wellness.com",
		PasswordHash: string(providerHash),
		Name:         "Dr. Sarah Johnson",
		Role:         models.RoleProvider,
		Profile: models.Profile{
			Allergies:   []string{},
			Medications: []string{},
		},
		DataConsent: true,
	}
	if err := s.CreateUser(ctx, provider); err != nil {
		return fmt.Errorf("failed to seed provider: %w", err)
	}

	patients := []*models.User{
		{
			Email:        "david@example.com",
			PasswordHash: string(patientHash),
			Name:         "David Miller",
			Role:         models.RolePatient,
			Profile: models.Profile{
				DateOfBirth:      "1985-06-15",
				Allergies:        []string{"Penicillin", "Peanuts"},
				Medications:      []string{"Aspirin 100mg"},
				BloodType:        "A+",
				EmergencyContact: "555-0123",
			},
			ProviderID:  provider.ID,
			DataConsent: true,
		},
		{
			Email:        "emma@example.com",
			PasswordHash: string(patientHash),
			Name:         "Emma Wilson",
			Role:         models.RolePatient,
			Profile: models.Profile{
				DateOfBirth: "1990-03-22",
				Allergies:   []string{},
				Medications: []string{"Vitamin D"},
				BloodType:   "O+",
			},
			ProviderID:  provider.ID,
			DataConsent: true,
		},
		{
			Email:        "james@example.com",
			PasswordHash: string(patientHash),
			Name:         "James Brown",
			Role:         models.RolePatient,
			Profile: models.Profile{
				DateOfBirth: "1978-11-08",
				Allergies:   []string{"Sulfa drugs"},
				Medications: []string{"Metformin 500mg", "Lisinopril 10mg"},
				BloodType:   "B+",
			},
			ProviderID:  provider.ID,
			DataConsent: true,
		},
	}
	for _, patient := range patients {
		if err := s.CreateUser(ctx, patient); err != nil {
			return fmt.Errorf("failed to seed patient %s: %w", patient.Email, err)
		}
	}

	goals := []models.Goal{
		{UserID: patients[0].ID, GoalType: models.GoalSteps, TargetValue: 8000, ProgressValue: 6240, Unit: "steps", Date: today},
		{UserID: patients[0].ID, GoalType: models.GoalWater, TargetValue: 8, ProgressValue: 6, Unit: "glasses", Date: today},
		{UserID: patients[0].ID, GoalType: models.GoalSleep, TargetValue: 8, ProgressValue: 7.5, Unit: "hours", Date: today},
		{UserID: patients[0].ID, GoalType: models.GoalActiveTime, TargetValue: 60, ProgressValue: 45, Unit: "minutes", Date: today},
		{UserID: patients[1].ID, GoalType: models.GoalSteps, TargetValue: 10000, ProgressValue: 8500, Unit: "steps", Date: today},
		{UserID: patients[1].ID, GoalType: models.GoalWater, TargetValue: 10, ProgressValue: 8, Unit: "glasses", Date: today},
		{UserID: patients[2].ID, GoalType: models.GoalSteps, TargetValue: 6000, ProgressValue: 2000, Unit: "steps", Date: today},
		{UserID: patients[2].ID, GoalType: models.GoalSleep, TargetValue: 7, ProgressValue: 5, Unit: "hours", Date: today},
	}
	for i := range goals {
		if err := s.CreateGoal(ctx, &goals[i]); err != nil {
			return fmt.Errorf("failed to seed goal: %w", err)
		}
	}

	reminders := []models.Reminder{
		{
			UserID:      patients[0].ID,
			Title:       "Annual blood test",
			Description: "Fasting blood work at City Medical Center",
			DueDate:     "2025-01-15",
			Status:      models.ReminderPending,
			Category:    models.CategoryCheckup,
		},
		{
			UserID:      patients[0].ID,
			Title:       "Flu vaccination",
			Description: "Get seasonal flu shot",
			DueDate:     "2025-01-10",
			Status:      models.ReminderPending,
			Category:    models.CategoryVaccination,
		},
		{
			UserID:      patients[1].ID,
			Title:       "Eye exam",
			Description: "Annual vision check",
			DueDate:     "2025-02-01",
			Status:      models.ReminderPending,
			Category:    models.CategoryCheckup,
		},
		{
			UserID:      patients[2].ID,
			Title:       "A1C test",
			Description: "Quarterly diabetes monitoring",
			DueDate:     "2024-12-20",
			Status:      models.ReminderMissed,
			Category:    models.CategoryCheckup,
		},
		{
			UserID:      patients[2].ID,
			Title:       "Cardiology follow-up",
			Description: "Review heart health with Dr. Smith",
			DueDate:     "2025-01-25",
			Status:      models.ReminderPending,
			Category:    models.CategoryCheckup,
		},
	}
	for i := range reminders {
		if err := s.CreateReminder(ctx, &reminders[i]); err != nil {
			return fmt.Errorf("failed to seed reminder: %w", err)
		}
	}

	s.mu.Lock()
	s.content = seedPublicContent()
	s.mu.Unlock()

	return nil
}

func seedPublicContent() []models.PublicContent {
	published := time.Date(2024, time.November, 4, 9, 0, 0, 0, time.UTC)
	return []models.PublicContent{
		{
			ID:          "flu-season-prep",
			Title:       "Preparing for Flu Season",
			Summary:     "When to get vaccinated and what to expect this year.",
			Body:        "Annual flu vaccination remains the most effective protection against seasonal influenza. The CDC recommends vaccination by the end of October, though getting vaccinated later still provides benefit throughout the season. People over 65, pregnant women, and those with chronic conditions should talk to their provider about high-dose options.",
			Category:    models.ContentFlu,
			Tags:        []string{"vaccination", "prevention", "seasonal"},
			PublishedAt: published,
			UpdatedAt:   published,
		},
		{
			ID:          "daily-movement",
			Title:       "Why 30 Minutes of Daily Movement Matters",
			Summary:     "Small, consistent activity beats occasional intense workouts.",
			Body:        "Research consistently shows that 30 minutes of moderate activity most days of the week lowers the risk of heart disease, type 2 diabetes, and depression. Walking, cycling, gardening, and taking the stairs all count. The key is consistency, not intensity.",
			Category:    models.ContentExercise,
			Tags:        []string{"exercise", "habits", "heart-health"},
			PublishedAt: published,
			UpdatedAt:   published,
		},
		{
			ID:          "plate-method",
			Title:       "The Plate Method for Balanced Meals",
			Summary:     "A simple visual guide to healthier portions.",
			Body:        "Fill half your plate with vegetables and fruit, one quarter with lean protein, and one quarter with whole grains. This simple rule delivers balanced nutrition without counting calories, and it works at home, at restaurants, and on busy days.",
			Category:    models.ContentNutrition,
			Tags:        []string{"nutrition", "meals"},
			PublishedAt: published,
			UpdatedAt:   published,
		},
	}
}
