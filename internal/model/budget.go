package model

import "time"

// Budget is a monthly spending ceiling for one expense category.
// At most one budget exists per (category, month) pair; setting a budget
// for an existing pair replaces it.
type Budget struct {
	ID                    string    `json:"id"`
	Category              string    `json:"category"`
	Month                 Month     `json:"month"`
	Amount                float64   `json:"amount"`
	Notifications         bool      `json:"notifications,omitempty"`
	NotificationThreshold float64   `json:"notificationThreshold,omitempty"`
	Color                 string    `json:"color,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// Key identifies the budget's (category, month) slot.
func (b Budget) Key() string {
	return b.Category + "|" + b.Month.String()
}
