package repository

import (
	"errors"

	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/mappers"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/models"
	"gorm.io/gorm"
)

type DefaultReferralRepository struct {
	DB *gorm.DB
}

func NewDefaultReferralRepository(db *gorm.DB) *DefaultReferralRepository {
	return &DefaultReferralRepository{DB: db}
}

func (r *DefaultReferralRepository) CreateReferral(referral *domain.Referral) error {
	return r.DB.Create(mappers.ToGORMReferral(referral)).Error
}

func (r *DefaultReferralRepository) GetReferralByID(ownerID, referralID string) (*domain.Referral, error) {
	var referral models.ReferralModel
	if err := r.DB.First(&referral, "id = ? AND owner_id = ?", referralID, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainReferral(&referral), nil
}

func (r *DefaultReferralRepository) GetAllReferrals(ownerID string) ([]*domain.Referral, error) {
	var referralModels []models.ReferralModel
	if err := r.DB.Where("owner_id = ?", ownerID).Order("date ASC").Find(&referralModels).Error; err != nil {
		return nil, err
	}
	return toDomainReferrals(referralModels), nil
}

func (r *DefaultReferralRepository) GetReferralsByReferrer(ownerID, referrerID string) ([]*domain.Referral, error) {
	var referralModels []models.ReferralModel
	if err := r.DB.
		Where("owner_id = ? AND referrer_id = ?", ownerID, referrerID).
		Order("date ASC").
		Find(&referralModels).Error; err != nil {
		return nil, err
	}
	return toDomainReferrals(referralModels), nil
}

func (r *DefaultReferralRepository) GetReferralsByStatus(ownerID string, status domain.ReferralStatus) ([]*domain.Referral, error) {
	var referralModels []models.ReferralModel
	if err := r.DB.
		Where("owner_id = ? AND status = ?", ownerID, string(status)).
		Order("date ASC").
		Find(&referralModels).Error; err != nil {
		return nil, err
	}
	return toDomainReferrals(referralModels), nil
}

func (r *DefaultReferralRepository) UpdateReferral(referral *domain.Referral) error {
	model := mappers.ToGORMReferral(referral)

	return r.DB.Model(&models.ReferralModel{}).
		Where("id = ? AND owner_id = ?", referral.ID, referral.OwnerID).
		Select("name", "email", "phone", "date", "status", "notes", "sale_value", "updated_at").
		Updates(model).Error
}

func (r *DefaultReferralRepository) DeleteReferral(ownerID, referralID string) error {
	return r.DB.Delete(&models.ReferralModel{}, "id = ? AND owner_id = ?", referralID, ownerID).Error
}

func toDomainReferrals(referralModels []models.ReferralModel) []*domain.Referral {
	referrals := make([]*domain.Referral, len(referralModels))
	for i, referralModel := range referralModels {
		referrals[i] = mappers.ToDomainReferral(&referralModel)
	}
	return referrals
}
