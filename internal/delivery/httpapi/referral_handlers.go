package httpapi

import (
	"net/http"

	"github.com/driveline/autosales-service/internal/domain"
	referraldto "github.com/driveline/autosales-service/internal/usecase/dto/referral"
	"github.com/go-chi/chi/v5"
)

type createReferralRequest struct {
	ReferrerID string `json:"referrerId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Notes      string `json:"notes"`
}

type updateReferralRequest struct {
	Name      *string  `json:"name"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Phone     *string  `json:"phone"`
	Notes     *string  `json:"notes"`
	SaleValue *float64 `json:"saleValue"`
}

type updateReferralStatusRequest struct {
	Status    string  `json:"status" validate:"required"`
	SaleValue float64 `json:"saleValue"`
}

func (h *Handler) CreateReferral(w http.ResponseWriter, r *http.Request) {
	var req createReferralRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	referralID, err := h.Referrals.AddReferral(&referraldto.CreateReferralInput{
		OwnerID:    h.ownerID(r),
		ReferrerID: req.ReferrerID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Notes:      req.Notes,
	})
	if err != nil {
		h.writeDomainError(w, err, "failed to create referral")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": referralID})
}

func (h *Handler) GetReferral(w http.ResponseWriter, r *http.Request) {
	referral, err := h.Referrals.GetReferralByID(h.ownerID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if referral == nil {
		writeError(w, http.StatusNotFound, "referral not found")
		return
	}
	writeJSON(w, http.StatusOK, referral)
}

func (h *Handler) ListReferrals(w http.ResponseWriter, r *http.Request) {
	owner := h.ownerID(r)
	query := r.URL.Query()

	var (
		referrals []*domain.Referral
		err       error
	)
	switch {
	case query.Get("referrer_id") != "":
		referrals, err = h.Referrals.GetReferralsByReferrer(owner, query.Get("referrer_id"))
	case query.Get("status") != "":
		status := domain.ReferralStatus(query.Get("status"))
		if !status.Valid() {
			writeError(w, http.StatusBadRequest, "unknown referral status")
			return
		}
		referrals, err = h.Referrals.GetReferralsByStatus(owner, status)
	default:
		referrals, err = h.Referrals.GetAllReferrals(owner)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": referrals, "count": len(referrals)})
}

func (h *Handler) UpdateReferral(w http.ResponseWriter, r *http.Request) {
	var req updateReferralRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.Referrals.UpdateReferral(h.ownerID(r), chi.URLParam(r, "id"), &referraldto.UpdateReferralInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		SaleValue: req.SaleValue,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// UpdateReferralStatus drives the state machine; converting returns the
// synthesized customer id so the caller can navigate to the new record.
func (h *Handler) UpdateReferralStatus(w http.ResponseWriter, r *http.Request) {
	var req updateReferralStatusRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.Referrals.UpdateReferralStatus(
		h.ownerID(r), chi.URLParam(r, "id"), domain.ReferralStatus(req.Status), req.SaleValue)
	if err != nil {
		h.writeDomainError(w, err, "failed to update referral status")
		return
	}

	payload := map[string]any{"status": "ok", "converted": result.Converted}
	if result.CustomerID != "" {
		payload["customerId"] = result.CustomerID
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) DeleteReferral(w http.ResponseWriter, r *http.Request) {
	if err := h.Referrals.DeleteReferral(h.ownerID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
