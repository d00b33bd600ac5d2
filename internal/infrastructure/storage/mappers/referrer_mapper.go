package mappers

import (
	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/models"
)

func ToDomainReferrer(model *models.ReferrerModel) *domain.Referrer {
	return &domain.Referrer{
		ID:                       model.ID,
		OwnerID:                  model.OwnerID,
		Name:                     model.Name,
		Email:                    model.Email,
		Phone:                    model.Phone,
		ReferralCount:            model.ReferralCount,
		TotalCommissionGenerated: model.TotalCommissionGenerated,
		LastReferralDate:         model.LastReferralDate,
		CreatedAt:                model.CreatedAt,
	}
}

func ToGORMReferrer(referrer *domain.Referrer) *models.ReferrerModel {
	return &models.ReferrerModel{
		ID:                       referrer.ID,
		OwnerID:                  referrer.OwnerID,
		Name:                     referrer.Name,
		Email:                    referrer.Email,
		Phone:                    referrer.Phone,
		ReferralCount:            referrer.ReferralCount,
		TotalCommissionGenerated: referrer.TotalCommissionGenerated,
		LastReferralDate:         referrer.LastReferralDate,
		CreatedAt:                referrer.CreatedAt,
	}
}
