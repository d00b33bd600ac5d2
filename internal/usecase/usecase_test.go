package usecase

import (
	"testing"
	"time"

	"github.com/driveline/autosales-service/internal/config"
	"github.com/driveline/autosales-service/internal/domain"
	publisher "github.com/driveline/autosales-service/internal/infrastructure/kafka"
	"github.com/driveline/autosales-service/internal/infrastructure/metrics"
	"github.com/driveline/autosales-service/internal/infrastructure/storage"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testOwner = "owner-1"

// crmMetrics is shared across tests: promauto panics on duplicate
// registration, so the instruments are built once per test binary.
var crmMetrics = metrics.NewCRMMetrics()

type testEnv struct {
	db        *gorm.DB
	sales     *DefaultSaleUsecase
	customers *DefaultCustomerUsecase
	referrers *DefaultReferrerUsecase
	referrals *DefaultReferralUsecase
	goals     *DefaultGoalUsecase
	backup    *DefaultBackupUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.AppConfig{
		CRMDB: config.CRMDB{Driver: "sqlite", Dsn: ":memory:"},
	}
	db, err := storage.InitDB(cfg)
	require.NoError(t, err)

	saleRepo := repository.NewDefaultSaleRepository(db)
	customerRepo := repository.NewDefaultCustomerRepository(db)
	referrerRepo := repository.NewDefaultReferrerRepository(db)
	referralRepo := repository.NewDefaultReferralRepository(db)
	coordinator := repository.NewDefaultTxCoordinator(db)
	noop := publisher.NoopPublisher{}
	logger := zap.NewNop()

	return &testEnv{
		db:        db,
		sales:     NewDefaultSaleUsecase(saleRepo, coordinator, noop, crmMetrics, logger),
		customers: NewDefaultCustomerUsecase(customerRepo, crmMetrics, logger),
		referrers: NewDefaultReferrerUsecase(referrerRepo, crmMetrics, logger),
		referrals: NewDefaultReferralUsecase(referralRepo, coordinator, noop, crmMetrics, logger),
		goals:     NewDefaultGoalUsecase(saleRepo, logger),
		backup:    NewDefaultBackupUsecase(coordinator, crmMetrics, logger),
	}
}

func monthDate(dayOfMonth int) time.Time {
	return time.Date(2026, time.March, dayOfMonth, 12, 0, 0, 0, time.UTC)
}

func requireReferrer(t *testing.T, env *testEnv, id string) *domain.Referrer {
	t.Helper()
	referrer, err := env.referrers.GetReferrerByID(testOwner, id)
	require.NoError(t, err)
	require.NotNil(t, referrer)
	return referrer
}
