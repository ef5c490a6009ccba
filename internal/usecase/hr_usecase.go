package usecase

import (
	"context"

	"assetverse/internal/domain/entity"
)

// RegisterHRInput defines the data required to file an HR application.
// Role and status are forced server-side regardless of caller input.
type RegisterHRInput struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	CompanyName string `json:"companyName" validate:"required"`
	CompanyLogo string `json:"companyLogo"`
}

// HRUsecase defines the interface for HR application operations.
type HRUsecase interface {
	// RegisterApplication files a new application with role="hr" and
	// status="pending".
	RegisterApplication(ctx context.Context, input *RegisterHRInput) (*entity.HRApplication, error)

	// ListApplications returns all applications, newest first.
	ListApplications(ctx context.Context) ([]*entity.HRApplication, error)

	// Approve moves a pending application to approved.
	Approve(ctx context.Context, id string) error

	// Reject moves a pending application to rejected.
	Reject(ctx context.Context, id string) error
}
