package domain

import "time"

type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type VehicleInfo struct {
	VIN        string `json:"vin"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       string `json:"year"`
	DealNumber string `json:"dealNumber"`
}

// AftermarketProduct is a flat line item on a sale, not a foreign reference.
type AftermarketProduct struct {
	Name       string  `json:"name"`
	Profit     float64 `json:"profit"`
	Commission float64 `json:"commission"`
}

type Sale struct {
	ID           string       `json:"id"`
	OwnerID      string       `json:"ownerId"`
	Date         time.Time    `json:"date"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	VehicleInfo  *VehicleInfo `json:"vehicleInfo,omitempty"`

	// Exactly one commission branch is authoritative at a time: the flat
	// amount when IsFlat is set, the front/back split otherwise. The unused
	// branch keeps its stored value and is ignored.
	IsFlat         bool    `json:"isFlat"`
	FlatAmount     float64 `json:"flatAmount"`
	FrontEndProfit float64 `json:"frontEndProfit"`
	BackEndProfit  float64 `json:"backEndProfit"`
	BonusAmount    float64 `json:"bonusAmount"`

	AftermarketProducts []AftermarketProduct `json:"aftermarketProducts,omitempty"`

	// ReferrerID is empty when the sale carries no referral attribution.
	ReferrerID string `json:"referrerId,omitempty"`

	// TotalCommission always equals ComputeTotalCommission over the other
	// fields; it is re-stored on every create and edit, never edited directly.
	TotalCommission float64 `json:"totalCommission"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SaleRepository interface {
	// GetSaleByID returns (nil, nil) when no sale matches.
	GetSaleByID(ownerID, saleID string) (*Sale, error)
	// GetAllSales returns the owner's sales ordered by date ascending.
	GetAllSales(ownerID string) ([]*Sale, error)
	// GetSalesByPeriod returns sales with from <= date < to, ordered by date.
	GetSalesByPeriod(ownerID string, from, to time.Time) ([]*Sale, error)
	// UpdateSale writes the full record back. A missing record is a silent no-op.
	UpdateSale(sale *Sale) error
	// DeleteSale is a silent no-op when the record is absent.
	DeleteSale(ownerID, saleID string) error
}
