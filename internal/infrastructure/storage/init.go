package storage

import (
	"fmt"
	"log"
	"sync"

	"github.com/driveline/autosales-service/internal/config"
	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the configured storage engine and runs the idempotent schema
// upgrade. Any failure wraps domain.ErrStoreUnavailable: no entity operation
// can proceed without the store, so callers must treat it as fatal.
func InitDB(cfg *config.AppConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.CRMDB.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.CRMDB.Dsn)
	default:
		dialector = sqlite.Open(cfg.CRMDB.Dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if err := db.AutoMigrate(
		&models.SaleModel{},
		&models.CustomerModel{},
		&models.ReferrerModel{},
		&models.ReferralModel{},
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return db, nil
}

func MustInitDB(cfg *config.AppConfig) *gorm.DB {
	db, err := InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err)
	}
	return db
}

// Store owns the single process-wide database handle. Open is memoized:
// concurrent first callers share one in-flight open instead of racing
// duplicate schema upgrades. The composition root constructs the Store and
// injects the handle; nothing reaches it through a package global.
type Store struct {
	cfg  *config.AppConfig
	once sync.Once
	db   *gorm.DB
	err  error
}

func NewStore(cfg *config.AppConfig) *Store {
	return &Store{cfg: cfg}
}

func (s *Store) Open() (*gorm.DB, error) {
	s.once.Do(func() {
		s.db, s.err = InitDB(s.cfg)
	})
	return s.db, s.err
}

func (s *Store) MustOpen() *gorm.DB {
	db, err := s.Open()
	if err != nil {
		log.Fatalf("failed to open store: %v\n", err)
	}
	return db
}
