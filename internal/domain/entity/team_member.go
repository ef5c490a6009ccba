package entity

import "time"

// TeamMember is a snapshot of a user added to the team roster. A user id
// appears at most once and the roster never exceeds the configured cap.
type TeamMember struct {
	ID          string
	UserID      string // Mirrors the referenced User id.
	Email       string
	DisplayName string
	Role        Role
	AddedAt     time.Time
}
