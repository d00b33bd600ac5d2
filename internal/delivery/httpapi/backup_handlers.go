package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/driveline/autosales-service/internal/domain"
)

func (h *Handler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Backup.Export(h.ownerID(r))
	if err != nil {
		h.writeDomainError(w, err, "failed to export backup")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) ImportBackup(w http.ResponseWriter, r *http.Request) {
	var snapshot domain.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		writeError(w, http.StatusBadRequest, "malformed snapshot")
		return
	}

	if err := h.Backup.Import(h.ownerID(r), &snapshot); err != nil {
		h.writeDomainError(w, err, "failed to import backup")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
