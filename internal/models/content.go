package models

import "time"

// ContentCategory enumerates the public health-info topics.
type ContentCategory string

const (
	ContentCovid        ContentCategory = "covid"
	ContentFlu          ContentCategory = "flu"
	ContentMentalHealth ContentCategory = "mental-health"
	ContentNutrition    ContentCategory = "nutrition"
	ContentExercise     ContentCategory = "exercise"
	ContentOther        ContentCategory = "other"
)

// PublicContent is an article on the public health-info page. Read-only;
// served without authentication.
type PublicContent struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	Summary     string          `json:"summary"`
	Category    ContentCategory `json:"category"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Tags        []string        `json:"tags"`
	PublishedAt time.Time       `json:"publishedAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// HealthTip is a short tip shown on the dashboard.
type HealthTip struct {
	ID       string `json:"id"`
	Tip      string `json:"tip"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}
