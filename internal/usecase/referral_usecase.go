package usecase

import (
	"fmt"
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	publisher "github.com/driveline/autosales-service/internal/infrastructure/kafka"
	"github.com/driveline/autosales-service/internal/infrastructure/metrics"
	referraldto "github.com/driveline/autosales-service/internal/usecase/dto/referral"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

type ReferralUsecase interface {
	AddReferral(input *referraldto.CreateReferralInput) (string, error)
	GetReferralByID(ownerID, referralID string) (*domain.Referral, error)
	GetAllReferrals(ownerID string) ([]*domain.Referral, error)
	GetReferralsByReferrer(ownerID, referrerID string) ([]*domain.Referral, error)
	GetReferralsByStatus(ownerID string, status domain.ReferralStatus) ([]*domain.Referral, error)
	UpdateReferral(ownerID, referralID string, input *referraldto.UpdateReferralInput) error
	UpdateReferralStatus(ownerID, referralID string, status domain.ReferralStatus, saleValue float64) (*domain.ConversionResult, error)
	DeleteReferral(ownerID, referralID string) error
}

type DefaultReferralUsecase struct {
	ReferralRepo domain.ReferralRepository
	Coordinator  domain.TxCoordinator
	Publisher    publisher.EventPublisher
	Metrics      *metrics.CRMMetrics
	Logger       *zap.Logger
}

func NewDefaultReferralUsecase(
	referralRepo domain.ReferralRepository,
	coordinator domain.TxCoordinator,
	eventPublisher publisher.EventPublisher,
	crmMetrics *metrics.CRMMetrics,
	logger *zap.Logger) *DefaultReferralUsecase {

	return &DefaultReferralUsecase{
		ReferralRepo: referralRepo,
		Coordinator:  coordinator,
		Publisher:    eventPublisher,
		Metrics:      crmMetrics,
		Logger:       logger,
	}
}

// AddReferral logs a new referral. Every referral starts in pending
// regardless of what the caller supplies; status only moves through
// UpdateReferralStatus afterwards.
func (uc *DefaultReferralUsecase) AddReferral(input *referraldto.CreateReferralInput) (string, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	referral := &domain.Referral{
		ID:         idGenerator(),
		OwnerID:    input.OwnerID,
		ReferrerID: input.ReferrerID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Date:       now,
		Status:     domain.ReferralStatusPending,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.ReferralRepo.CreateReferral(referral); err != nil {
		uc.Metrics.RecordStoreError("add_referral")
		return "", err
	}

	uc.Metrics.RecordReferralCreated(referral.OwnerID)
	return referral.ID, nil
}

func (uc *DefaultReferralUsecase) GetReferralByID(ownerID, referralID string) (*domain.Referral, error) {
	return uc.ReferralRepo.GetReferralByID(ownerID, referralID)
}

func (uc *DefaultReferralUsecase) GetAllReferrals(ownerID string) ([]*domain.Referral, error) {
	return uc.ReferralRepo.GetAllReferrals(ownerID)
}

func (uc *DefaultReferralUsecase) GetReferralsByReferrer(ownerID, referrerID string) ([]*domain.Referral, error) {
	return uc.ReferralRepo.GetReferralsByReferrer(ownerID, referrerID)
}

func (uc *DefaultReferralUsecase) GetReferralsByStatus(ownerID string, status domain.ReferralStatus) ([]*domain.Referral, error) {
	return uc.ReferralRepo.GetReferralsByStatus(ownerID, status)
}

func (uc *DefaultReferralUsecase) UpdateReferral(ownerID, referralID string, input *referraldto.UpdateReferralInput) error {
	referral, err := uc.ReferralRepo.GetReferralByID(ownerID, referralID)
	if err != nil {
		return err
	}
	if referral == nil {
		return nil
	}

	if input.Name != nil {
		referral.Name = *input.Name
	}
	if input.Email != nil {
		referral.Email = *input.Email
	}
	if input.Phone != nil {
		referral.Phone = *input.Phone
	}
	if input.Notes != nil {
		referral.Notes = *input.Notes
	}
	if input.SaleValue != nil {
		referral.SaleValue = *input.SaleValue
	}
	referral.UpdatedAt = time.Now().UTC()

	return uc.ReferralRepo.UpdateReferral(referral)
}

// UpdateReferralStatus drives the referral state machine. Non-converting
// transitions write the record in place; entering converted hands off to the
// coordinator's conversion protocol. A missing referral or a same-status
// request is a no-op with Converted=false, so retries are harmless.
func (uc *DefaultReferralUsecase) UpdateReferralStatus(ownerID, referralID string, status domain.ReferralStatus, saleValue float64) (*domain.ConversionResult, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidStatusTransition, status)
	}

	referral, err := uc.ReferralRepo.GetReferralByID(ownerID, referralID)
	if err != nil {
		return nil, err
	}
	if referral == nil || referral.Status == status {
		return &domain.ConversionResult{}, nil
	}

	if !referral.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, referral.Status, status)
	}

	if status == domain.ReferralStatusConverted {
		return uc.convert(referral, saleValue)
	}

	referral.Status = status
	referral.UpdatedAt = time.Now().UTC()

	if err := uc.ReferralRepo.UpdateReferral(referral); err != nil {
		uc.Metrics.RecordStoreError("update_referral_status")
		return nil, err
	}

	if status == domain.ReferralStatusLost {
		uc.Metrics.RecordReferralLost(ownerID)
	}
	return &domain.ConversionResult{}, nil
}

func (uc *DefaultReferralUsecase) convert(referral *domain.Referral, saleValue float64) (*domain.ConversionResult, error) {
	if saleValue == 0 {
		saleValue = referral.SaleValue
	}

	start := time.Now()
	result, err := uc.Coordinator.ConvertReferral(referral.OwnerID, referral.ID, saleValue)
	if err != nil {
		uc.Metrics.RecordStoreError("convert_referral")
		return nil, err
	}
	if !result.Converted {
		return result, nil
	}

	uc.Metrics.RecordReferralConverted(referral.OwnerID, time.Since(start).Seconds())
	uc.Metrics.RecordCustomerCreated(referral.OwnerID, "conversion")

	if err := uc.Publisher.PublishReferralConverted(publisher.ReferralConvertedEvent{
		EventID:    uuid.NewString(),
		OwnerID:    referral.OwnerID,
		ReferralID: referral.ID,
		ReferrerID: referral.ReferrerID,
		CustomerID: result.CustomerID,
		SaleValue:  saleValue,
	}); err != nil {
		uc.Logger.Warn("failed to publish referral converted event",
			zap.String("referral_id", referral.ID), zap.Error(err))
	}

	return result, nil
}

func (uc *DefaultReferralUsecase) DeleteReferral(ownerID, referralID string) error {
	return uc.ReferralRepo.DeleteReferral(ownerID, referralID)
}
