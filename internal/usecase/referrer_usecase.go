package usecase

import (
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/metrics"
	referrerdto "github.com/driveline/autosales-service/internal/usecase/dto/referrer"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

type ReferrerUsecase interface {
	AddReferrer(input *referrerdto.CreateReferrerInput) (string, error)
	GetReferrerByID(ownerID, referrerID string) (*domain.Referrer, error)
	GetAllReferrers(ownerID string) ([]*domain.Referrer, error)
	SearchReferrers(ownerID, query string) ([]*domain.Referrer, error)
	UpdateReferrer(ownerID, referrerID string, input *referrerdto.UpdateReferrerInput) error
	DeleteReferrer(ownerID, referrerID string) error
}

type DefaultReferrerUsecase struct {
	ReferrerRepo domain.ReferrerRepository
	Metrics      *metrics.CRMMetrics
	Logger       *zap.Logger
}

func NewDefaultReferrerUsecase(
	referrerRepo domain.ReferrerRepository,
	crmMetrics *metrics.CRMMetrics,
	logger *zap.Logger) *DefaultReferrerUsecase {

	return &DefaultReferrerUsecase{
		ReferrerRepo: referrerRepo,
		Metrics:      crmMetrics,
		Logger:       logger,
	}
}

// AddReferrer registers a referrer with zeroed derived counters. The counters
// only ever move through the transaction coordinator afterwards.
func (uc *DefaultReferrerUsecase) AddReferrer(input *referrerdto.CreateReferrerInput) (string, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return "", err
	}

	referrer := &domain.Referrer{
		ID:        idGenerator(),
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.ReferrerRepo.CreateReferrer(referrer); err != nil {
		uc.Metrics.RecordStoreError("add_referrer")
		return "", err
	}

	return referrer.ID, nil
}

func (uc *DefaultReferrerUsecase) GetReferrerByID(ownerID, referrerID string) (*domain.Referrer, error) {
	return uc.ReferrerRepo.GetReferrerByID(ownerID, referrerID)
}

func (uc *DefaultReferrerUsecase) GetAllReferrers(ownerID string) ([]*domain.Referrer, error) {
	return uc.ReferrerRepo.GetAllReferrers(ownerID)
}

func (uc *DefaultReferrerUsecase) SearchReferrers(ownerID, query string) ([]*domain.Referrer, error) {
	return uc.ReferrerRepo.SearchReferrers(ownerID, query)
}

func (uc *DefaultReferrerUsecase) UpdateReferrer(ownerID, referrerID string, input *referrerdto.UpdateReferrerInput) error {
	referrer, err := uc.ReferrerRepo.GetReferrerByID(ownerID, referrerID)
	if err != nil {
		return err
	}
	if referrer == nil {
		return nil
	}

	if input.Name != nil {
		referrer.Name = *input.Name
	}
	if input.Email != nil {
		referrer.Email = *input.Email
	}
	if input.Phone != nil {
		referrer.Phone = *input.Phone
	}

	return uc.ReferrerRepo.UpdateContact(referrer)
}

func (uc *DefaultReferrerUsecase) DeleteReferrer(ownerID, referrerID string) error {
	return uc.ReferrerRepo.DeleteReferrer(ownerID, referrerID)
}
