package saledto

import (
	"time"

	"github.com/driveline/autosales-service/internal/domain"
)

type CreateSaleInput struct {
	OwnerID             string
	Date                time.Time
	CustomerFirstName   string
	CustomerLastName    string
	CustomerEmail       string
	CustomerPhone       string
	VehicleInfo         *domain.VehicleInfo
	IsFlat              bool
	FlatAmount          float64
	FrontEndProfit      float64
	BackEndProfit       float64
	BonusAmount         float64
	AftermarketProducts []domain.AftermarketProduct
	ReferrerID          string
}

// UpdateSaleInput carries a partial edit: nil fields keep their stored
// value. Total commission is not editable; it is recomputed from whatever
// the merge produces.
type UpdateSaleInput struct {
	Date                *time.Time
	CustomerFirstName   *string
	CustomerLastName    *string
	CustomerEmail       *string
	CustomerPhone       *string
	VehicleInfo         *domain.VehicleInfo
	IsFlat              *bool
	FlatAmount          *float64
	FrontEndProfit      *float64
	BackEndProfit       *float64
	BonusAmount         *float64
	AftermarketProducts *[]domain.AftermarketProduct
	ReferrerID          *string
}
