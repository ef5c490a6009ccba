// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity record. Email is the unique key; the role
// defaults to "employee" on self-registration and is only changed through
// an admin-authorized role update.
type User struct {
	ID          string    // Hex document id assigned by the store.
	Email       string    // Unique login/contact email.
	DisplayName string    // Name shown in search results and team rosters.
	Role        Role      // Current access level.
	CreatedAt   time.Time // Timestamp of when this account was created.
}

// Principal is the verified identity derived from a bearer credential.
type Principal struct {
	Email     string
	SubjectID string
}
