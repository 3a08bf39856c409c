package entity

import "time"

// Recommendation priority levels.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Recommendation is an advisory record for a business. Dismissal is terminal:
// once dismissed it stays dismissed and keeps its original DismissedAt.
type Recommendation struct {
	ID          int64      `json:"id"`
	BusinessID  int64      `json:"business_id"`
	Type        string     `json:"type"` // platform_suggestion, budget_optimization, etc.
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    int        `json:"priority"`
	ImpactScore *int       `json:"impact_score,omitempty"` // 1-10 scale
	Data        Payload    `json:"data"`
	IsDismissed bool       `json:"is_dismissed"`
	DismissedAt *time.Time `json:"dismissed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewRecommendation(businessID int64, recType, title, description string, priority int, impactScore *int, data Payload) *Recommendation {
	if priority == 0 {
		priority = PriorityHigh
	}
	if data == nil {
		data = Payload{}
	}
	return &Recommendation{
		BusinessID:  businessID,
		Type:        recType,
		Title:       title,
		Description: description,
		Priority:    priority,
		ImpactScore: impactScore,
		Data:        data,
		CreatedAt:   time.Now(),
	}
}

// Dismiss marks the recommendation dismissed. Idempotent: a repeat call
// changes nothing and keeps the first dismissal time.
func (r *Recommendation) Dismiss() {
	if r.IsDismissed {
		return
	}
	now := time.Now()
	r.IsDismissed = true
	r.DismissedAt = &now
}
