package entity

import "time"

// HRStatus is the lifecycle state of an HR application.
type HRStatus string

const (
	HRStatusPending  HRStatus = "pending"
	HRStatusApproved HRStatus = "approved"
	HRStatusRejected HRStatus = "rejected"
)

// IsValid checks if the HRStatus is a known value.
func (s HRStatus) IsValid() bool {
	switch s {
	case HRStatusPending, HRStatusApproved, HRStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
// The only legal transitions are pending -> approved and pending -> rejected.
func (s HRStatus) IsTerminal() bool {
	return s == HRStatusApproved || s == HRStatusRejected
}

// HRApplication is a registration request for the HR role. The role is
// forced to "hr" and the status to "pending" regardless of caller input.
type HRApplication struct {
	ID          string
	FullName    string
	Email       string
	CompanyName string
	CompanyLogo string
	Role        Role
	Status      HRStatus
	CreatedAt   time.Time
}
