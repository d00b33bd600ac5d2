package usecase

import (
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/metrics"
	customerdto "github.com/driveline/autosales-service/internal/usecase/dto/customer"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

type CustomerUsecase interface {
	AddCustomer(input *customerdto.CreateCustomerInput) (string, error)
	GetCustomerByID(ownerID, customerID string) (*domain.Customer, error)
	GetAllCustomers(ownerID string) ([]*domain.Customer, error)
	GetCustomersByReferrer(ownerID, referrerID string) ([]*domain.Customer, error)
	SearchCustomers(ownerID, query string) ([]*domain.Customer, error)
	UpdateCustomer(ownerID, customerID string, input *customerdto.UpdateCustomerInput) error
	DeleteCustomer(ownerID, customerID string) error
}

type DefaultCustomerUsecase struct {
	CustomerRepo domain.CustomerRepository
	Metrics      *metrics.CRMMetrics
	Logger       *zap.Logger
}

func NewDefaultCustomerUsecase(
	customerRepo domain.CustomerRepository,
	crmMetrics *metrics.CRMMetrics,
	logger *zap.Logger) *DefaultCustomerUsecase {

	return &DefaultCustomerUsecase{
		CustomerRepo: customerRepo,
		Metrics:      crmMetrics,
		Logger:       logger,
	}
}

func (uc *DefaultCustomerUsecase) AddCustomer(input *customerdto.CreateCustomerInput) (string, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		ID:           idGenerator(),
		OwnerID:      input.OwnerID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Vehicle:      input.Vehicle,
		IsReferral:   input.IsReferral,
		ReferredBy:   input.ReferredBy,
		PurchaseDate: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	requestedEmail := customer.Email
	if err := uc.CustomerRepo.CreateCustomer(customer); err != nil {
		uc.Metrics.RecordStoreError("add_customer")
		return "", err
	}

	uc.Metrics.RecordCustomerCreated(customer.OwnerID, "manual")
	if requestedEmail != "" && customer.Email != requestedEmail {
		// The repository rewrote a colliding email instead of rejecting it.
		uc.Metrics.RecordEmailRewrite(customer.OwnerID)
		uc.Logger.Info("duplicate customer email rewritten",
			zap.String("customer_id", customer.ID), zap.String("stored_email", customer.Email))
	}

	return customer.ID, nil
}

func (uc *DefaultCustomerUsecase) GetCustomerByID(ownerID, customerID string) (*domain.Customer, error) {
	return uc.CustomerRepo.GetCustomerByID(ownerID, customerID)
}

func (uc *DefaultCustomerUsecase) GetAllCustomers(ownerID string) ([]*domain.Customer, error) {
	return uc.CustomerRepo.GetAllCustomers(ownerID)
}

func (uc *DefaultCustomerUsecase) GetCustomersByReferrer(ownerID, referrerID string) ([]*domain.Customer, error) {
	return uc.CustomerRepo.GetCustomersByReferrer(ownerID, referrerID)
}

func (uc *DefaultCustomerUsecase) SearchCustomers(ownerID, query string) ([]*domain.Customer, error) {
	return uc.CustomerRepo.SearchCustomers(ownerID, query)
}

func (uc *DefaultCustomerUsecase) UpdateCustomer(ownerID, customerID string, input *customerdto.UpdateCustomerInput) error {
	customer, err := uc.CustomerRepo.GetCustomerByID(ownerID, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return nil
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Vehicle != nil {
		customer.Vehicle = input.Vehicle
	}
	customer.UpdatedAt = time.Now().UTC()

	return uc.CustomerRepo.UpdateCustomer(customer)
}

func (uc *DefaultCustomerUsecase) DeleteCustomer(ownerID, customerID string) error {
	return uc.CustomerRepo.DeleteCustomer(ownerID, customerID)
}
