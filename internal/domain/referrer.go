package domain

import "time"

// Referrer tracks a person who sends prospective customers. ReferralCount,
// TotalCommissionGenerated and LastReferralDate are derived state: a cached
// fold over the referrer's attributed sales and converted referrals,
// maintained transactionally by the coordinator and never written by hand.
type Referrer struct {
	ID                       string     `json:"id"`
	OwnerID                  string     `json:"ownerId"`
	Name                     string     `json:"name"`
	Email                    string     `json:"email"`
	Phone                    string     `json:"phone"`
	ReferralCount            int        `json:"referralCount"`
	TotalCommissionGenerated float64    `json:"totalCommissionGenerated"`
	LastReferralDate         *time.Time `json:"lastReferralDate,omitempty"`
	CreatedAt                time.Time  `json:"createdAt"`
}

type ReferrerRepository interface {
	CreateReferrer(referrer *Referrer) error
	// GetReferrerByID returns (nil, nil) when no referrer matches.
	GetReferrerByID(ownerID, referrerID string) (*Referrer, error)
	// GetAllReferrers returns the owner's referrers ordered by referral
	// count ascending, matching the original by-referral-count index scan.
	GetAllReferrers(ownerID string) ([]*Referrer, error)
	SearchReferrers(ownerID, query string) ([]*Referrer, error)
	// UpdateContact writes contact fields only; the derived counters belong
	// to the transaction coordinator. Missing record: silent no-op.
	UpdateContact(referrer *Referrer) error
	DeleteReferrer(ownerID, referrerID string) error
}
