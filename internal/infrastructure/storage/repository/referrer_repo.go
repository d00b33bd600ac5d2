package repository

import (
	"errors"
	"strings"

	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/mappers"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/models"
	"gorm.io/gorm"
)

type DefaultReferrerRepository struct {
	DB *gorm.DB
}

func NewDefaultReferrerRepository(db *gorm.DB) *DefaultReferrerRepository {
	return &DefaultReferrerRepository{DB: db}
}

func (r *DefaultReferrerRepository) CreateReferrer(referrer *domain.Referrer) error {
	return r.DB.Create(mappers.ToGORMReferrer(referrer)).Error
}

func (r *DefaultReferrerRepository) GetReferrerByID(ownerID, referrerID string) (*domain.Referrer, error) {
	var referrer models.ReferrerModel
	if err := r.DB.First(&referrer, "id = ? AND owner_id = ?", referrerID, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainReferrer(&referrer), nil
}

func (r *DefaultReferrerRepository) GetAllReferrers(ownerID string) ([]*domain.Referrer, error) {
	var referrerModels []models.ReferrerModel
	if err := r.DB.
		Where("owner_id = ?", ownerID).
		Order("referral_count ASC, name ASC").
		Find(&referrerModels).Error; err != nil {
		return nil, err
	}
	return toDomainReferrers(referrerModels), nil
}

func (r *DefaultReferrerRepository) SearchReferrers(ownerID, query string) ([]*domain.Referrer, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var referrerModels []models.ReferrerModel
	if err := r.DB.
		Where("owner_id = ? AND (LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", ownerID, pattern, pattern).
		Order("name ASC").
		Find(&referrerModels).Error; err != nil {
		return nil, err
	}
	return toDomainReferrers(referrerModels), nil
}

// UpdateContact touches contact fields only; referral_count,
// total_commission_generated and last_referral_date stay with the
// transaction coordinator.
func (r *DefaultReferrerRepository) UpdateContact(referrer *domain.Referrer) error {
	return r.DB.Model(&models.ReferrerModel{}).
		Where("id = ? AND owner_id = ?", referrer.ID, referrer.OwnerID).
		Updates(map[string]interface{}{
			"name":  referrer.Name,
			"email": referrer.Email,
			"phone": referrer.Phone,
		}).Error
}

func (r *DefaultReferrerRepository) DeleteReferrer(ownerID, referrerID string) error {
	return r.DB.Delete(&models.ReferrerModel{}, "id = ? AND owner_id = ?", referrerID, ownerID).Error
}

func toDomainReferrers(referrerModels []models.ReferrerModel) []*domain.Referrer {
	referrers := make([]*domain.Referrer, len(referrerModels))
	for i, referrerModel := range referrerModels {
		referrers[i] = mappers.ToDomainReferrer(&referrerModel)
	}
	return referrers
}
