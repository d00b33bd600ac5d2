package httpapi

import (
	"net/http"

	"github.com/driveline/autosales-service/internal/domain"
	customerdto "github.com/driveline/autosales-service/internal/usecase/dto/customer"
	"github.com/go-chi/chi/v5"
)

type createCustomerRequest struct {
	Name       string                  `json:"name" validate:"required"`
	Email      string                  `json:"email" validate:"omitempty,email"`
	Phone      string                  `json:"phone"`
	Vehicle    *domain.CustomerVehicle `json:"vehicle"`
	IsReferral bool                    `json:"isReferral"`
	ReferredBy *domain.ReferralSource  `json:"referredBy"`
}

type updateCustomerRequest struct {
	Name    *string                 `json:"name"`
	Email   *string                 `json:"email" validate:"omitempty,email"`
	Phone   *string                 `json:"phone"`
	Vehicle *domain.CustomerVehicle `json:"vehicle"`
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	customerID, err := h.Customers.AddCustomer(&customerdto.CreateCustomerInput{
		OwnerID:    h.ownerID(r),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Vehicle:    req.Vehicle,
		IsReferral: req.IsReferral,
		ReferredBy: req.ReferredBy,
	})
	if err != nil {
		h.writeDomainError(w, err, "failed to create customer")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": customerID})
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Customers.GetCustomerByID(h.ownerID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if customer == nil {
		writeError(w, http.StatusNotFound, "customer not found")
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// ListCustomers supports ?search= substring matching and ?referrer_id=
// filtering; the plain listing is name-ordered.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	owner := h.ownerID(r)
	query := r.URL.Query()

	var (
		customers []*domain.Customer
		err       error
	)
	switch {
	case query.Get("search") != "":
		customers, err = h.Customers.SearchCustomers(owner, query.Get("search"))
	case query.Get("referrer_id") != "":
		customers, err = h.Customers.GetCustomersByReferrer(owner, query.Get("referrer_id"))
	default:
		customers, err = h.Customers.GetAllCustomers(owner)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": customers, "count": len(customers)})
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req updateCustomerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.Customers.UpdateCustomer(h.ownerID(r), chi.URLParam(r, "id"), &customerdto.UpdateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Vehicle: req.Vehicle,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.Customers.DeleteCustomer(h.ownerID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
