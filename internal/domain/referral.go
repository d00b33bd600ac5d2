package domain

import "time"

type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusContacted ReferralStatus = "contacted"
	ReferralStatusConverted ReferralStatus = "converted"
	ReferralStatusLost      ReferralStatus = "lost"
)

func (s ReferralStatus) Valid() bool {
	switch s {
	case ReferralStatusPending, ReferralStatusContacted, ReferralStatusConverted, ReferralStatusLost:
		return true
	}
	return false
}

// CanTransitionTo encodes the closed referral state machine:
// pending -> contacted|converted|lost, contacted -> pending|converted|lost.
// Converted and lost are terminal. Entering converted is the only transition
// with side effects (customer synthesis, referrer counters, record removal).
func (s ReferralStatus) CanTransitionTo(target ReferralStatus) bool {
	switch s {
	case ReferralStatusPending:
		return target == ReferralStatusContacted || target == ReferralStatusConverted || target == ReferralStatusLost
	case ReferralStatusContacted:
		// Manual regression back to pending is allowed.
		return target == ReferralStatusPending || target == ReferralStatusConverted || target == ReferralStatusLost
	default:
		return false
	}
}

type Referral struct {
	ID         string         `json:"id"`
	OwnerID    string         `json:"ownerId"`
	ReferrerID string         `json:"referrerId"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Date       time.Time      `json:"date"`
	Status     ReferralStatus `json:"status"`
	Notes      string         `json:"notes,omitempty"`
	// SaleValue is the realized value once known; it is credited to the
	// referrer's totals when the referral converts.
	SaleValue float64   `json:"saleValue"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ReferralRepository interface {
	CreateReferral(referral *Referral) error
	// GetReferralByID returns (nil, nil) when no referral matches.
	GetReferralByID(ownerID, referralID string) (*Referral, error)
	// GetAllReferrals returns the owner's referrals ordered by date ascending.
	GetAllReferrals(ownerID string) ([]*Referral, error)
	GetReferralsByReferrer(ownerID, referrerID string) ([]*Referral, error)
	GetReferralsByStatus(ownerID string, status ReferralStatus) ([]*Referral, error)
	// UpdateReferral writes the record back in place (non-converting
	// transitions only). Missing record: silent no-op.
	UpdateReferral(referral *Referral) error
	DeleteReferral(ownerID, referralID string) error
}
