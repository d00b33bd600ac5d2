package mappers

import (
	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/models"
)

func ToDomainCustomer(model *models.CustomerModel) *domain.Customer {
	customer := &domain.Customer{
		ID:           model.ID,
		OwnerID:      model.OwnerID,
		Name:         model.Name,
		Email:        model.Email,
		Phone:        model.Phone,
		Vehicle:      model.Vehicle,
		IsReferral:   model.IsReferral,
		PurchaseDate: model.PurchaseDate,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	if model.ReferrerID != "" && model.ReferralDate != nil {
		customer.ReferredBy = &domain.ReferralSource{
			ReferrerID:   model.ReferrerID,
			ReferralDate: *model.ReferralDate,
		}
	}
	return customer
}

func ToGORMCustomer(customer *domain.Customer) *models.CustomerModel {
	model := &models.CustomerModel{
		ID:           customer.ID,
		OwnerID:      customer.OwnerID,
		Name:         customer.Name,
		Email:        customer.Email,
		Phone:        customer.Phone,
		Vehicle:      customer.Vehicle,
		IsReferral:   customer.IsReferral,
		PurchaseDate: customer.PurchaseDate,
		CreatedAt:    customer.CreatedAt,
		UpdatedAt:    customer.UpdatedAt,
	}
	if customer.ReferredBy != nil {
		model.ReferrerID = customer.ReferredBy.ReferrerID
		referralDate := customer.ReferredBy.ReferralDate
		model.ReferralDate = &referralDate
	}
	return model
}
