package models

import "time"

type ReferrerModel struct {
	ID                       string `gorm:"primaryKey"`
	OwnerID                  string `gorm:"index:idx_referrers_owner_count,priority:1"`
	Name                     string `gorm:"index:idx_referrers_name"`
	Email                    string `gorm:"index:idx_referrers_email"`
	Phone                    string
	ReferralCount            int `gorm:"index:idx_referrers_owner_count,priority:2"`
	TotalCommissionGenerated float64
	LastReferralDate         *time.Time
	CreatedAt                time.Time
}
