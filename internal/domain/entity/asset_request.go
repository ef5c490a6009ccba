package entity

import "time"

// RequestStatus is the lifecycle state of an asset request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusDelivered RequestStatus = "delivered"
)

// IsValid checks if the RequestStatus is a known value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusDelivered:
		return true
	default:
		return false
	}
}

// AssetRequest is an employee's request for an asset. The request date and
// the initial "pending" status are server-assigned at creation, never taken
// from the caller.
type AssetRequest struct {
	ID             string
	AssetID        string
	AssetName      string
	RequesterEmail string
	RequesterName  string
	Note           string
	RequestDate    time.Time
	RequestStatus  RequestStatus
}
