package repository

import (
	"testing"
	"time"

	"github.com/driveline/autosales-service/internal/config"
	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/storage"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testOwner = "owner-1"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.AppConfig{
		CRMDB: config.CRMDB{Driver: "sqlite", Dsn: ":memory:"},
	}
	db, err := storage.InitDB(cfg)
	require.NoError(t, err)
	return db
}

func seedReferrer(t *testing.T, db *gorm.DB, id string, count int, total float64) {
	t.Helper()

	repo := NewDefaultReferrerRepository(db)
	require.NoError(t, repo.CreateReferrer(&domain.Referrer{
		ID:        id,
		OwnerID:   testOwner,
		Name:      "Bob Smith",
		Email:     "bob@example.com",
		CreatedAt: time.Now().UTC(),
	}))
	if count > 0 || total > 0 {
		require.NoError(t, db.Model(&models.ReferrerModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"referral_count":             count,
				"total_commission_generated": total,
			}).Error)
	}
}

func day(dayOfMonth int) time.Time {
	return time.Date(2026, time.March, dayOfMonth, 12, 0, 0, 0, time.UTC)
}
