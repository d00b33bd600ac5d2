package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/driveline/autosales-service/internal/client"
	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/usecase"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	Sales     usecase.SaleUsecase
	Customers usecase.CustomerUsecase
	Referrers usecase.ReferrerUsecase
	Referrals usecase.ReferralUsecase
	Goals     usecase.GoalUsecase
	Backup    usecase.BackupUsecase
	VIN       *client.VINClient

	DefaultOwnerID string

	validate *validator.Validate
	logger   *zap.Logger
}

func NewHandler(
	sales usecase.SaleUsecase,
	customers usecase.CustomerUsecase,
	referrers usecase.ReferrerUsecase,
	referrals usecase.ReferralUsecase,
	goals usecase.GoalUsecase,
	backup usecase.BackupUsecase,
	vin *client.VINClient,
	defaultOwnerID string,
	logger *zap.Logger) *Handler {

	return &Handler{
		Sales:          sales,
		Customers:      customers,
		Referrers:      referrers,
		Referrals:      referrals,
		Goals:          goals,
		Backup:         backup,
		VIN:            vin,
		DefaultOwnerID: defaultOwnerID,
		validate:       validator.New(),
		logger:         logger,
	}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// ownerID resolves the scoping key for a request: the X-Owner-ID header when
// present, the configured default otherwise. There is no auth backend; the
// owner id is an opaque partition key.
func (h *Handler) ownerID(r *http.Request) string {
	if owner := r.Header.Get("X-Owner-ID"); owner != "" {
		return owner
	}
	return h.DefaultOwnerID
}

// decodeAndValidate unmarshals the request body into dst and runs the
// validator tags. A false return means the error response was already written.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// writeDomainError maps sentinel domain errors onto HTTP statuses; anything
// unrecognized is a 500 with the fallback message.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrReferrerNotFound):
		writeError(w, http.StatusUnprocessableEntity, "referrer not found")
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "store unavailable")
	default:
		h.logger.Error(fallback, zap.Error(err))
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
