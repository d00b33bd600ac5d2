package models

import (
	"time"

	"github.com/driveline/autosales-service/internal/domain"
)

type CustomerModel struct {
	ID      string `gorm:"primaryKey"`
	OwnerID string `gorm:"index:idx_customers_owner_name,priority:1"`
	Name    string `gorm:"index:idx_customers_owner_name,priority:2"`
	// Deliberately non-unique: collisions are rewritten with an id-derived
	// suffix before insert, never rejected.
	Email        string `gorm:"index:idx_customers_email"`
	Phone        string
	Vehicle      *domain.CustomerVehicle `gorm:"serializer:json"`
	IsReferral   bool
	ReferrerID   string `gorm:"index:idx_customers_referrer"`
	ReferralDate *time.Time
	PurchaseDate time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
