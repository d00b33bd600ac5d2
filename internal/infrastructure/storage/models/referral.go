package models

import "time"

type ReferralModel struct {
	ID         string    `gorm:"primaryKey"`
	OwnerID    string    `gorm:"index:idx_referrals_owner_date,priority:1"`
	ReferrerID string    `gorm:"index:idx_referrals_referrer"`
	Name       string
	Email      string
	Phone      string
	Date       time.Time `gorm:"index:idx_referrals_owner_date,priority:2"`
	Status     string    `gorm:"index:idx_referrals_status"`
	Notes      string
	SaleValue  float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
