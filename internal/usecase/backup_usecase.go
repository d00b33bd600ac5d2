package usecase

import (
	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

type BackupUsecase interface {
	Export(ownerID string) (*domain.Snapshot, error)
	Import(ownerID string, snapshot *domain.Snapshot) error
}

// DefaultBackupUsecase moves whole-owner snapshots through the coordinator
// so an export is a consistent cut and an import lands atomically.
type DefaultBackupUsecase struct {
	Coordinator domain.TxCoordinator
	Metrics     *metrics.CRMMetrics
	Logger      *zap.Logger
}

func NewDefaultBackupUsecase(
	coordinator domain.TxCoordinator,
	crmMetrics *metrics.CRMMetrics,
	logger *zap.Logger) *DefaultBackupUsecase {

	return &DefaultBackupUsecase{
		Coordinator: coordinator,
		Metrics:     crmMetrics,
		Logger:      logger,
	}
}

func (uc *DefaultBackupUsecase) Export(ownerID string) (*domain.Snapshot, error) {
	snapshot, err := uc.Coordinator.ExportAll(ownerID)
	if err != nil {
		uc.Metrics.RecordStoreError("export_all")
		return nil, err
	}

	uc.Logger.Info("exported snapshot",
		zap.String("owner_id", ownerID),
		zap.Int("sales", len(snapshot.Sales)),
		zap.Int("customers", len(snapshot.Customers)),
		zap.Int("referrers", len(snapshot.Referrers)),
		zap.Int("referrals", len(snapshot.Referrals)))
	return snapshot, nil
}

func (uc *DefaultBackupUsecase) Import(ownerID string, snapshot *domain.Snapshot) error {
	if err := uc.Coordinator.ImportAll(ownerID, snapshot); err != nil {
		uc.Metrics.RecordStoreError("import_all")
		return err
	}

	uc.Logger.Info("imported snapshot", zap.String("owner_id", ownerID))
	return nil
}
