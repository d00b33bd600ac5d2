package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/mappers"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/models"
	"gorm.io/gorm"
)

type DefaultCustomerRepository struct {
	DB *gorm.DB
}

func NewDefaultCustomerRepository(db *gorm.DB) *DefaultCustomerRepository {
	return &DefaultCustomerRepository{DB: db}
}

// insertCustomer applies the duplicate-email rewrite and inserts within the
// caller's transaction. Shared between the explicit new-customer flow and
// the referral-conversion synthesis so both deduplicate the same way.
func insertCustomer(tx *gorm.DB, customer *domain.Customer) error {
	if customer.Email != "" {
		var existing int64
		if err := tx.Model(&models.CustomerModel{}).
			Where("owner_id = ? AND email = ?", customer.OwnerID, customer.Email).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			suffix := customer.ID
			if len(suffix) > 6 {
				suffix = suffix[:6]
			}
			customer.Email = fmt.Sprintf("%s-%s", customer.Email, suffix)
		}
	}

	return tx.Create(mappers.ToGORMCustomer(customer)).Error
}

func (r *DefaultCustomerRepository) CreateCustomer(customer *domain.Customer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return insertCustomer(tx, customer)
	})
}

func (r *DefaultCustomerRepository) GetCustomerByID(ownerID, customerID string) (*domain.Customer, error) {
	var customer models.CustomerModel
	if err := r.DB.First(&customer, "id = ? AND owner_id = ?", customerID, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainCustomer(&customer), nil
}

func (r *DefaultCustomerRepository) GetAllCustomers(ownerID string) ([]*domain.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.DB.Where("owner_id = ?", ownerID).Order("name ASC").Find(&customerModels).Error; err != nil {
		return nil, err
	}
	return toDomainCustomers(customerModels), nil
}

func (r *DefaultCustomerRepository) GetCustomersByReferrer(ownerID, referrerID string) ([]*domain.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.DB.
		Where("owner_id = ? AND referrer_id = ?", ownerID, referrerID).
		Order("name ASC").
		Find(&customerModels).Error; err != nil {
		return nil, err
	}
	return toDomainCustomers(customerModels), nil
}

func (r *DefaultCustomerRepository) SearchCustomers(ownerID, query string) ([]*domain.Customer, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var customerModels []models.CustomerModel
	if err := r.DB.
		Where("owner_id = ? AND (LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", ownerID, pattern, pattern).
		Order("name ASC").
		Find(&customerModels).Error; err != nil {
		return nil, err
	}
	return toDomainCustomers(customerModels), nil
}

func (r *DefaultCustomerRepository) UpdateCustomer(customer *domain.Customer) error {
	model := mappers.ToGORMCustomer(customer)

	return r.DB.Model(&models.CustomerModel{}).
		Where("id = ? AND owner_id = ?", customer.ID, customer.OwnerID).
		Select(
			"name", "email", "phone", "vehicle", "is_referral",
			"referrer_id", "referral_date", "purchase_date", "updated_at",
		).
		Updates(model).Error
}

func (r *DefaultCustomerRepository) DeleteCustomer(ownerID, customerID string) error {
	return r.DB.Delete(&models.CustomerModel{}, "id = ? AND owner_id = ?", customerID, ownerID).Error
}

func toDomainCustomers(customerModels []models.CustomerModel) []*domain.Customer {
	customers := make([]*domain.Customer, len(customerModels))
	for i, customerModel := range customerModels {
		customers[i] = mappers.ToDomainCustomer(&customerModel)
	}
	return customers
}
