package httpapi

import (
	"net/http"

	"github.com/driveline/autosales-service/internal/domain"
	referrerdto "github.com/driveline/autosales-service/internal/usecase/dto/referrer"
	"github.com/go-chi/chi/v5"
)

type createReferrerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

type updateReferrerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone"`
}

func (h *Handler) CreateReferrer(w http.ResponseWriter, r *http.Request) {
	var req createReferrerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	referrerID, err := h.Referrers.AddReferrer(&referrerdto.CreateReferrerInput{
		OwnerID: h.ownerID(r),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		h.writeDomainError(w, err, "failed to create referrer")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": referrerID})
}

func (h *Handler) GetReferrer(w http.ResponseWriter, r *http.Request) {
	referrer, err := h.Referrers.GetReferrerByID(h.ownerID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if referrer == nil {
		writeError(w, http.StatusNotFound, "referrer not found")
		return
	}
	writeJSON(w, http.StatusOK, referrer)
}

func (h *Handler) ListReferrers(w http.ResponseWriter, r *http.Request) {
	owner := h.ownerID(r)

	var (
		referrers []*domain.Referrer
		err       error
	)
	if search := r.URL.Query().Get("search"); search != "" {
		referrers, err = h.Referrers.SearchReferrers(owner, search)
	} else {
		referrers, err = h.Referrers.GetAllReferrers(owner)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": referrers, "count": len(referrers)})
}

func (h *Handler) UpdateReferrer(w http.ResponseWriter, r *http.Request) {
	var req updateReferrerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.Referrers.UpdateReferrer(h.ownerID(r), chi.URLParam(r, "id"), &referrerdto.UpdateReferrerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) DeleteReferrer(w http.ResponseWriter, r *http.Request) {
	if err := h.Referrers.DeleteReferrer(h.ownerID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
