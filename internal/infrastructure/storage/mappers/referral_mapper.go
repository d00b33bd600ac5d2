package mappers

import (
	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/models"
)

func ToDomainReferral(model *models.ReferralModel) *domain.Referral {
	return &domain.Referral{
		ID:         model.ID,
		OwnerID:    model.OwnerID,
		ReferrerID: model.ReferrerID,
		Name:       model.Name,
		Email:      model.Email,
		Phone:      model.Phone,
		Date:       model.Date,
		Status:     domain.ReferralStatus(model.Status),
		Notes:      model.Notes,
		SaleValue:  model.SaleValue,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func ToGORMReferral(referral *domain.Referral) *models.ReferralModel {
	return &models.ReferralModel{
		ID:         referral.ID,
		OwnerID:    referral.OwnerID,
		ReferrerID: referral.ReferrerID,
		Name:       referral.Name,
		Email:      referral.Email,
		Phone:      referral.Phone,
		Date:       referral.Date,
		Status:     string(referral.Status),
		Notes:      referral.Notes,
		SaleValue:  referral.SaleValue,
		CreatedAt:  referral.CreatedAt,
		UpdatedAt:  referral.UpdatedAt,
	}
}
