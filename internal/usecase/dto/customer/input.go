package customerdto

import "github.com/driveline/autosales-service/internal/domain"

type CreateCustomerInput struct {
	OwnerID    string
	Name       string
	Email      string
	Phone      string
	Vehicle    *domain.CustomerVehicle
	IsReferral bool
	ReferredBy *domain.ReferralSource
}

type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Vehicle *domain.CustomerVehicle
}
