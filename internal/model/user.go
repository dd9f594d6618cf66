package model

import "time"

// User is the locally stored mock account record. There is no real
// authentication; the session exists so the UI can show a profile.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
