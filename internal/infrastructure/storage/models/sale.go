package models

import (
	"time"

	"github.com/driveline/autosales-service/internal/domain"
)

type SaleModel struct {
	ID                  string    `gorm:"primaryKey"`
	OwnerID             string    `gorm:"index:idx_sales_owner_date,priority:1"`
	Date                time.Time `gorm:"index:idx_sales_owner_date,priority:2"`
	CustomerFirstName   string    `gorm:"index:idx_sales_customer"`
	CustomerLastName    string
	CustomerEmail       string
	CustomerPhone       string
	VehicleInfo         *domain.VehicleInfo         `gorm:"serializer:json"`
	IsFlat              bool
	FlatAmount          float64
	FrontEndProfit      float64
	BackEndProfit       float64
	BonusAmount         float64
	AftermarketProducts []domain.AftermarketProduct `gorm:"serializer:json"`
	ReferrerID          string                      `gorm:"index:idx_sales_referrer"`
	TotalCommission     float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
