package referraldto

type CreateReferralInput struct {
	OwnerID    string
	ReferrerID string
	Name       string
	Email      string
	Phone      string
	Notes      string
}

// UpdateReferralInput edits a referral in place (contact fields, notes,
// realized sale value). Status changes go through UpdateReferralStatus so
// the state machine and conversion protocol stay in one path.
type UpdateReferralInput struct {
	Name      *string
	Email     *string
	Phone     *string
	Notes     *string
	SaleValue *float64
}
