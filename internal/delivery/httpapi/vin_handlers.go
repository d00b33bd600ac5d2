package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) DecodeVIN(w http.ResponseWriter, r *http.Request) {
	vin := chi.URLParam(r, "vin")
	if len(vin) != 17 {
		writeError(w, http.StatusBadRequest, "vin must be 17 characters")
		return
	}

	decoded, err := h.VIN.Decode(r.Context(), vin)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, decoded)
}
