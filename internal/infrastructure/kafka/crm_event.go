package kafka

import "time"

type SaleRecordedEvent struct {
	EventID         string    `json:"event_id"`
	OwnerID         string    `json:"owner_id"`
	SaleID          string    `json:"sale_id"`
	ReferrerID      string    `json:"referrer_id,omitempty"`
	TotalCommission float64   `json:"total_commission"`
	Date            time.Time `json:"date"`
}

type ReferralConvertedEvent struct {
	EventID    string  `json:"event_id"`
	OwnerID    string  `json:"owner_id"`
	ReferralID string  `json:"referral_id"`
	ReferrerID string  `json:"referrer_id"`
	CustomerID string  `json:"customer_id"`
	SaleValue  float64 `json:"sale_value"`
}
