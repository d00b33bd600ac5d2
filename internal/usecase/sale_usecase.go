package usecase

import (
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	publisher "github.com/driveline/autosales-service/internal/infrastructure/kafka"
	"github.com/driveline/autosales-service/internal/infrastructure/metrics"
	saledto "github.com/driveline/autosales-service/internal/usecase/dto/sale"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

type SaleUsecase interface {
	AddSale(input *saledto.CreateSaleInput) (string, error)
	GetSaleByID(ownerID, saleID string) (*domain.Sale, error)
	GetAllSales(ownerID string) ([]*domain.Sale, error)
	GetSalesForMonth(ownerID string, year int, month time.Month) ([]*domain.Sale, error)
	UpdateSale(ownerID, saleID string, input *saledto.UpdateSaleInput) error
	DeleteSale(ownerID, saleID string) error
}

type DefaultSaleUsecase struct {
	SaleRepo    domain.SaleRepository
	Coordinator domain.TxCoordinator
	Publisher   publisher.EventPublisher
	Metrics     *metrics.CRMMetrics
	Logger      *zap.Logger
}

func NewDefaultSaleUsecase(
	saleRepo domain.SaleRepository,
	coordinator domain.TxCoordinator,
	eventPublisher publisher.EventPublisher,
	crmMetrics *metrics.CRMMetrics,
	logger *zap.Logger) *DefaultSaleUsecase {

	return &DefaultSaleUsecase{
		SaleRepo:    saleRepo,
		Coordinator: coordinator,
		Publisher:   eventPublisher,
		Metrics:     crmMetrics,
		Logger:      logger,
	}
}

func (uc *DefaultSaleUsecase) AddSale(input *saledto.CreateSaleInput) (string, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	sale := &domain.Sale{
		ID:      idGenerator(),
		OwnerID: input.OwnerID,
		Date:    date,
		CustomerInfo: domain.CustomerInfo{
			FirstName: input.CustomerFirstName,
			LastName:  input.CustomerLastName,
			Email:     input.CustomerEmail,
			Phone:     input.CustomerPhone,
		},
		VehicleInfo:         input.VehicleInfo,
		IsFlat:              input.IsFlat,
		FlatAmount:          input.FlatAmount,
		FrontEndProfit:      input.FrontEndProfit,
		BackEndProfit:       input.BackEndProfit,
		BonusAmount:         input.BonusAmount,
		AftermarketProducts: input.AftermarketProducts,
		ReferrerID:          input.ReferrerID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	sale.TotalCommission = domain.ComputeTotalCommission(sale)

	if err := uc.Coordinator.CreateSaleWithAttribution(sale); err != nil {
		uc.Metrics.RecordStoreError("add_sale")
		return "", err
	}

	uc.Metrics.RecordSaleRecorded(sale.OwnerID, sale.ReferrerID != "", sale.TotalCommission)

	if err := uc.Publisher.PublishSaleRecorded(publisher.SaleRecordedEvent{
		EventID:         uuid.NewString(),
		OwnerID:         sale.OwnerID,
		SaleID:          sale.ID,
		ReferrerID:      sale.ReferrerID,
		TotalCommission: sale.TotalCommission,
		Date:            sale.Date,
	}); err != nil {
		uc.Logger.Warn("failed to publish sale recorded event",
			zap.String("sale_id", sale.ID), zap.Error(err))
	}

	return sale.ID, nil
}

func (uc *DefaultSaleUsecase) GetSaleByID(ownerID, saleID string) (*domain.Sale, error) {
	return uc.SaleRepo.GetSaleByID(ownerID, saleID)
}

func (uc *DefaultSaleUsecase) GetAllSales(ownerID string) ([]*domain.Sale, error) {
	return uc.SaleRepo.GetAllSales(ownerID)
}

func (uc *DefaultSaleUsecase) GetSalesForMonth(ownerID string, year int, month time.Month) ([]*domain.Sale, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return uc.SaleRepo.GetSalesByPeriod(ownerID, from, to)
}

// UpdateSale merges the partial edit into the stored record, recomputes the
// total commission from the merged fields and writes the result back. An
// absent sale is a silent no-op, mirroring the repository contract.
func (uc *DefaultSaleUsecase) UpdateSale(ownerID, saleID string, input *saledto.UpdateSaleInput) error {
	sale, err := uc.SaleRepo.GetSaleByID(ownerID, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return nil
	}

	if input.Date != nil {
		sale.Date = *input.Date
	}
	if input.CustomerFirstName != nil {
		sale.CustomerInfo.FirstName = *input.CustomerFirstName
	}
	if input.CustomerLastName != nil {
		sale.CustomerInfo.LastName = *input.CustomerLastName
	}
	if input.CustomerEmail != nil {
		sale.CustomerInfo.Email = *input.CustomerEmail
	}
	if input.CustomerPhone != nil {
		sale.CustomerInfo.Phone = *input.CustomerPhone
	}
	if input.VehicleInfo != nil {
		sale.VehicleInfo = input.VehicleInfo
	}
	if input.IsFlat != nil {
		sale.IsFlat = *input.IsFlat
	}
	if input.FlatAmount != nil {
		sale.FlatAmount = *input.FlatAmount
	}
	if input.FrontEndProfit != nil {
		sale.FrontEndProfit = *input.FrontEndProfit
	}
	if input.BackEndProfit != nil {
		sale.BackEndProfit = *input.BackEndProfit
	}
	if input.BonusAmount != nil {
		sale.BonusAmount = *input.BonusAmount
	}
	if input.AftermarketProducts != nil {
		sale.AftermarketProducts = *input.AftermarketProducts
	}
	if input.ReferrerID != nil {
		sale.ReferrerID = *input.ReferrerID
	}

	sale.TotalCommission = domain.ComputeTotalCommission(sale)
	sale.UpdatedAt = time.Now().UTC()

	if err := uc.SaleRepo.UpdateSale(sale); err != nil {
		uc.Metrics.RecordStoreError("update_sale")
		return err
	}
	return nil
}

func (uc *DefaultSaleUsecase) DeleteSale(ownerID, saleID string) error {
	return uc.SaleRepo.DeleteSale(ownerID, saleID)
}
