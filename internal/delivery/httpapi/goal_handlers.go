package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/driveline/autosales-service/internal/domain"
)

// GoalProgressResponse pairs the display-capped progress bars with the
// uncapped band/message tiering.
type GoalProgressResponse struct {
	Progress domain.GoalProgress `json:"progress"`
	Band     domain.ProgressBand `json:"band"`
	Message  string              `json:"message"`
}

// GetGoalProgress folds the requested month's sales against targets passed
// as query parameters: year, month, target_units, target_commission,
// target_aftermarket. Year and month default to the current month.
func (h *Handler) GetGoalProgress(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	now := time.Now().UTC()

	year := now.Year()
	month := now.Month()
	if raw := query.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		year = parsed
	}
	if raw := query.Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			writeError(w, http.StatusBadRequest, "month must be 1-12")
			return
		}
		month = time.Month(parsed)
	}

	goal := domain.SalesGoal{
		Month:      month,
		Year:       year,
		SkillLevel: query.Get("skill_level"),
	}
	var err error
	if goal.TargetUnits, err = parseIntParam(query.Get("target_units")); err != nil {
		writeError(w, http.StatusBadRequest, "target_units must be an integer")
		return
	}
	if goal.TargetCommission, err = parseFloatParam(query.Get("target_commission")); err != nil {
		writeError(w, http.StatusBadRequest, "target_commission must be a number")
		return
	}
	if goal.TargetAftermarket, err = parseFloatParam(query.Get("target_aftermarket")); err != nil {
		writeError(w, http.StatusBadRequest, "target_aftermarket must be a number")
		return
	}

	progress, err := h.Goals.ComputeMonthlyProgress(h.ownerID(r), goal)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GoalProgressResponse{
		Progress: progress.Display(),
		Band:     domain.BandFor(progress.UnitsProgress),
		Message:  h.Goals.MotivationalMessage(progress.UnitsProgress),
	})
}

func parseIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseFloatParam(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
