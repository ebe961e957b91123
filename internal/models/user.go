package models

import "time"

// Role distinguishes patients from providers.
type Role string

const (
	RolePatient  Role = "patient"
	RoleProvider Role = "provider"
)

// Profile holds a user's optional medical profile details.
type Profile struct {
	DateOfBirth      string   `json:"dateOfBirth,omitempty"`
	Allergies        []string `json:"allergies"`
	Medications      []string `json:"medications"`
	EmergencyContact string   `json:"emergencyContact,omitempty"`
	BloodType        string   `json:"bloodType,omitempty"`
}

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Email is the user's email address. Unique, compared case-insensitively.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized; API responses use SafeUser instead.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	Role    Role    `json:"role"`
	Profile Profile `json:"profile"`

	// ProviderID links a patient to their provider. Empty for providers
	// and for patients without an assigned provider.
	ProviderID string `json:"providerId,omitempty"`

	// DataConsent records that the user agreed to data usage at registration.
	DataConsent bool `json:"dataConsent"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SafeUser is the User projection exposed over the API: everything except
// the password hash.
type SafeUser struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        Role      `json:"role"`
	Profile     Profile   `json:"profile"`
	ProviderID  string    `json:"providerId,omitempty"`
	DataConsent bool      `json:"dataConsent"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Safe returns the user without its credential hash.
func (u *User) Safe() *SafeUser {
	return &SafeUser{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Profile:     u.Profile,
		ProviderID:  u.ProviderID,
		DataConsent: u.DataConsent,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
