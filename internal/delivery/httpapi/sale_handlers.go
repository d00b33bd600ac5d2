package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	saledto "github.com/driveline/autosales-service/internal/usecase/dto/sale"
	"github.com/go-chi/chi/v5"
)

type createSaleRequest struct {
	Date                *time.Time                  `json:"date"`
	CustomerFirstName   string                      `json:"customerFirstName" validate:"required"`
	CustomerLastName    string                      `json:"customerLastName"`
	CustomerEmail       string                      `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone       string                      `json:"customerPhone"`
	VehicleInfo         *domain.VehicleInfo         `json:"vehicleInfo"`
	IsFlat              bool                        `json:"isFlat"`
	FlatAmount          float64                     `json:"flatAmount"`
	FrontEndProfit      float64                     `json:"frontEndProfit"`
	BackEndProfit       float64                     `json:"backEndProfit"`
	BonusAmount         float64                     `json:"bonusAmount"`
	AftermarketProducts []domain.AftermarketProduct `json:"aftermarketProducts"`
	ReferrerID          string                      `json:"referrerId"`
}

type updateSaleRequest struct {
	Date                *time.Time                   `json:"date"`
	CustomerFirstName   *string                      `json:"customerFirstName"`
	CustomerLastName    *string                      `json:"customerLastName"`
	CustomerEmail       *string                      `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone       *string                      `json:"customerPhone"`
	VehicleInfo         *domain.VehicleInfo          `json:"vehicleInfo"`
	IsFlat              *bool                        `json:"isFlat"`
	FlatAmount          *float64                     `json:"flatAmount"`
	FrontEndProfit      *float64                     `json:"frontEndProfit"`
	BackEndProfit       *float64                     `json:"backEndProfit"`
	BonusAmount         *float64                     `json:"bonusAmount"`
	AftermarketProducts *[]domain.AftermarketProduct `json:"aftermarketProducts"`
	ReferrerID          *string                      `json:"referrerId"`
}

func (h *Handler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	input := &saledto.CreateSaleInput{
		OwnerID:             h.ownerID(r),
		CustomerFirstName:   req.CustomerFirstName,
		CustomerLastName:    req.CustomerLastName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		VehicleInfo:         req.VehicleInfo,
		IsFlat:              req.IsFlat,
		FlatAmount:          req.FlatAmount,
		FrontEndProfit:      req.FrontEndProfit,
		BackEndProfit:       req.BackEndProfit,
		BonusAmount:         req.BonusAmount,
		AftermarketProducts: req.AftermarketProducts,
		ReferrerID:          req.ReferrerID,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	saleID, err := h.Sales.AddSale(input)
	if err != nil {
		h.writeDomainError(w, err, "failed to record sale")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": saleID})
}

func (h *Handler) GetSale(w http.ResponseWriter, r *http.Request) {
	sale, err := h.Sales.GetSaleByID(h.ownerID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sale == nil {
		writeError(w, http.StatusNotFound, "sale not found")
		return
	}
	writeJSON(w, http.StatusOK, sale)
}

// ListSales returns all sales, or one month's slice when year and month
// query parameters are both present.
func (h *Handler) ListSales(w http.ResponseWriter, r *http.Request) {
	owner := h.ownerID(r)
	query := r.URL.Query()

	if query.Get("year") != "" || query.Get("month") != "" {
		year, err := strconv.Atoi(query.Get("year"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		month, err := strconv.Atoi(query.Get("month"))
		if err != nil || month < 1 || month > 12 {
			writeError(w, http.StatusBadRequest, "month must be 1-12")
			return
		}

		sales, err := h.Sales.GetSalesForMonth(owner, year, time.Month(month))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": sales, "count": len(sales)})
		return
	}

	sales, err := h.Sales.GetAllSales(owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": sales, "count": len(sales)})
}

func (h *Handler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	var req updateSaleRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	input := &saledto.UpdateSaleInput{
		Date:                req.Date,
		CustomerFirstName:   req.CustomerFirstName,
		CustomerLastName:    req.CustomerLastName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		VehicleInfo:         req.VehicleInfo,
		IsFlat:              req.IsFlat,
		FlatAmount:          req.FlatAmount,
		FrontEndProfit:      req.FrontEndProfit,
		BackEndProfit:       req.BackEndProfit,
		BonusAmount:         req.BonusAmount,
		AftermarketProducts: req.AftermarketProducts,
		ReferrerID:          req.ReferrerID,
	}

	if err := h.Sales.UpdateSale(h.ownerID(r), chi.URLParam(r, "id"), input); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	if err := h.Sales.DeleteSale(h.ownerID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
