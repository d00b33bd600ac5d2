package repository

import (
	"errors"
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/mappers"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/models"
	"gorm.io/gorm"
)

type DefaultSaleRepository struct {
	DB *gorm.DB
}

func NewDefaultSaleRepository(db *gorm.DB) *DefaultSaleRepository {
	return &DefaultSaleRepository{DB: db}
}

func (r *DefaultSaleRepository) GetSaleByID(ownerID, saleID string) (*domain.Sale, error) {
	var sale models.SaleModel
	if err := r.DB.First(&sale, "id = ? AND owner_id = ?", saleID, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainSale(&sale), nil
}

func (r *DefaultSaleRepository) GetAllSales(ownerID string) ([]*domain.Sale, error) {
	var saleModels []models.SaleModel
	if err := r.DB.Where("owner_id = ?", ownerID).Order("date ASC").Find(&saleModels).Error; err != nil {
		return nil, err
	}

	sales := make([]*domain.Sale, len(saleModels))
	for i, saleModel := range saleModels {
		sales[i] = mappers.ToDomainSale(&saleModel)
	}
	return sales, nil
}

func (r *DefaultSaleRepository) GetSalesByPeriod(ownerID string, from, to time.Time) ([]*domain.Sale, error) {
	var saleModels []models.SaleModel
	if err := r.DB.
		Where("owner_id = ? AND date >= ? AND date < ?", ownerID, from, to).
		Order("date ASC").
		Find(&saleModels).Error; err != nil {
		return nil, err
	}

	sales := make([]*domain.Sale, len(saleModels))
	for i, saleModel := range saleModels {
		sales[i] = mappers.ToDomainSale(&saleModel)
	}
	return sales, nil
}

func (r *DefaultSaleRepository) UpdateSale(sale *domain.Sale) error {
	model := mappers.ToGORMSale(sale)

	// Explicit field list so zero values stick; no matching row means no-op.
	return r.DB.Model(&models.SaleModel{}).
		Where("id = ? AND owner_id = ?", sale.ID, sale.OwnerID).
		Select(
			"date", "customer_first_name", "customer_last_name",
			"customer_email", "customer_phone", "vehicle_info", "is_flat",
			"flat_amount", "front_end_profit", "back_end_profit",
			"bonus_amount", "aftermarket_products", "referrer_id",
			"total_commission", "updated_at",
		).
		Updates(model).Error
}

func (r *DefaultSaleRepository) DeleteSale(ownerID, saleID string) error {
	return r.DB.Delete(&models.SaleModel{}, "id = ? AND owner_id = ?", saleID, ownerID).Error
}
