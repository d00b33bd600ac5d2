package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/mappers"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/models"
	"github.com/jaevor/go-nanoid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultTxCoordinator runs every multi-collection protocol inside one
// database transaction. Writers are additionally serialized through mu so
// that no two protocols interleave their read-modify-write of the referrer
// counters, regardless of engine-level isolation (sqlite has no row locks).
type DefaultTxCoordinator struct {
	DB *gorm.DB
	mu sync.Mutex
}

func NewDefaultTxCoordinator(db *gorm.DB) *DefaultTxCoordinator {
	return &DefaultTxCoordinator{DB: db}
}

func (c *DefaultTxCoordinator) CreateSaleWithAttribution(sale *domain.Sale) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMSale(sale)).Error; err != nil {
			return err
		}

		if sale.ReferrerID == "" {
			return nil
		}

		// A dangling referrer reference fails the whole unit; the sale
		// insert above rolls back with it.
		var referrer models.ReferrerModel
		if err := tx.First(&referrer, "id = ? AND owner_id = ?", sale.ReferrerID, sale.OwnerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrReferrerNotFound
			}
			return err
		}

		now := time.Now().UTC()
		return tx.Model(&models.ReferrerModel{}).
			Where("id = ?", referrer.ID).
			Updates(map[string]interface{}{
				"referral_count":             referrer.ReferralCount + 1,
				"total_commission_generated": referrer.TotalCommissionGenerated + sale.TotalCommission,
				"last_referral_date":         now,
			}).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransactionFailed, err)
	}
	return nil
}

func (c *DefaultTxCoordinator) ConvertReferral(ownerID, referralID string, saleValue float64) (*domain.ConversionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := &domain.ConversionResult{}
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		var referral models.ReferralModel
		if err := tx.First(&referral, "id = ? AND owner_id = ?", referralID, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Retried conversion: the referral was already folded into a
				// customer and deleted. No second customer, no double count.
				return nil
			}
			return err
		}
		if domain.ReferralStatus(referral.Status) == domain.ReferralStatusConverted {
			return nil
		}

		idGenerator, err := nanoid.Standard(21)
		if err != nil {
			return err
		}

		// Contact fields are read before the referral row is deleted.
		now := time.Now().UTC()
		customer := &domain.Customer{
			ID:         idGenerator(),
			OwnerID:    ownerID,
			Name:       referral.Name,
			Email:      referral.Email,
			Phone:      referral.Phone,
			IsReferral: true,
			ReferredBy: &domain.ReferralSource{
				ReferrerID:   referral.ReferrerID,
				ReferralDate: referral.Date,
			},
			PurchaseDate: now,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := insertCustomer(tx, customer); err != nil {
			return err
		}

		var referrer models.ReferrerModel
		if err := tx.First(&referrer, "id = ? AND owner_id = ?", referral.ReferrerID, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrReferrerNotFound
			}
			return err
		}
		if err := tx.Model(&models.ReferrerModel{}).
			Where("id = ?", referrer.ID).
			Updates(map[string]interface{}{
				"referral_count":             referrer.ReferralCount + 1,
				"total_commission_generated": referrer.TotalCommissionGenerated + saleValue,
				"last_referral_date":         now,
			}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.ReferralModel{}, "id = ?", referral.ID).Error; err != nil {
			return err
		}

		result.Converted = true
		result.CustomerID = customer.ID
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransactionFailed, err)
	}
	return result, nil
}

func (c *DefaultTxCoordinator) ExportAll(ownerID string) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{}
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		var saleModels []models.SaleModel
		if err := tx.Where("owner_id = ?", ownerID).Find(&saleModels).Error; err != nil {
			return err
		}
		var customerModels []models.CustomerModel
		if err := tx.Where("owner_id = ?", ownerID).Find(&customerModels).Error; err != nil {
			return err
		}
		var referrerModels []models.ReferrerModel
		if err := tx.Where("owner_id = ?", ownerID).Find(&referrerModels).Error; err != nil {
			return err
		}
		var referralModels []models.ReferralModel
		if err := tx.Where("owner_id = ?", ownerID).Find(&referralModels).Error; err != nil {
			return err
		}

		snapshot.Sales = make([]*domain.Sale, len(saleModels))
		for i, saleModel := range saleModels {
			snapshot.Sales[i] = mappers.ToDomainSale(&saleModel)
		}
		snapshot.Customers = toDomainCustomers(customerModels)
		snapshot.Referrers = toDomainReferrers(referrerModels)
		snapshot.Referrals = toDomainReferrals(referralModels)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransactionFailed, err)
	}
	return snapshot, nil
}

// ImportAll upserts every record of the snapshot in one unit, preserving
// ids and field values so an export/import round-trip is exact.
func (c *DefaultTxCoordinator) ImportAll(ownerID string, snapshot *domain.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	upsert := clause.OnConflict{UpdateAll: true}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		for _, sale := range snapshot.Sales {
			sale.OwnerID = ownerID
			if err := tx.Clauses(upsert).Create(mappers.ToGORMSale(sale)).Error; err != nil {
				return err
			}
		}
		for _, customer := range snapshot.Customers {
			customer.OwnerID = ownerID
			if err := tx.Clauses(upsert).Create(mappers.ToGORMCustomer(customer)).Error; err != nil {
				return err
			}
		}
		for _, referrer := range snapshot.Referrers {
			referrer.OwnerID = ownerID
			if err := tx.Clauses(upsert).Create(mappers.ToGORMReferrer(referrer)).Error; err != nil {
				return err
			}
		}
		for _, referral := range snapshot.Referrals {
			referral.OwnerID = ownerID
			if err := tx.Clauses(upsert).Create(mappers.ToGORMReferral(referral)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransactionFailed, err)
	}
	return nil
}
