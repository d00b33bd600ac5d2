package domain

import "time"

// ReferralSource records how a customer was acquired when they came in
// through a referral.
type ReferralSource struct {
	ReferrerID   string    `json:"referrerId"`
	ReferralDate time.Time `json:"referralDate"`
}

type CustomerVehicle struct {
	VIN   string  `json:"vin"`
	Make  string  `json:"make"`
	Model string  `json:"model"`
	Year  string  `json:"year"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

type Customer struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
	// Email is not unique: a colliding insert gets a suffix derived from the
	// new record's id instead of being rejected.
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Vehicle      *CustomerVehicle `json:"vehicle,omitempty"`
	IsReferral   bool             `json:"isReferral"`
	ReferredBy   *ReferralSource  `json:"referredBy,omitempty"`
	PurchaseDate time.Time        `json:"purchaseDate"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

type CustomerRepository interface {
	// CreateCustomer inserts the record. When another customer of the same
	// owner already holds the email, the email is rewritten to
	// "<email>-<first 6 chars of the new id>" before the insert; the write
	// itself is never rejected. The passed record reflects the stored email.
	CreateCustomer(customer *Customer) error
	// GetCustomerByID returns (nil, nil) when no customer matches.
	GetCustomerByID(ownerID, customerID string) (*Customer, error)
	// GetAllCustomers returns the owner's customers ordered by name.
	GetAllCustomers(ownerID string) ([]*Customer, error)
	GetCustomersByReferrer(ownerID, referrerID string) ([]*Customer, error)
	// SearchCustomers matches name or email, case-insensitive substring.
	SearchCustomers(ownerID, query string) ([]*Customer, error)
	// UpdateCustomer writes the full record back. Missing record: silent no-op.
	UpdateCustomer(customer *Customer) error
	DeleteCustomer(ownerID, customerID string) error
}
