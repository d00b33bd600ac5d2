package domain

import "time"

// SalesGoal is a per-month target against which the period's sales are
// measured.
type SalesGoal struct {
	Month             time.Month
	Year              int
	SkillLevel        string
	TargetUnits       int
	TargetIncome      float64
	TargetCommission  float64
	TargetAftermarket float64
}

// DisplayProgressCap bounds progress-bar percentages. The computed ratios
// stay uncapped so callers can tier messages above 200%.
const DisplayProgressCap = 200.0

type GoalProgress struct {
	CurrentUnits          int     `json:"currentUnits"`
	UnitsProgress         float64 `json:"unitsProgress"`
	CommissionProgress    float64 `json:"commissionProgress"`
	AftermarketProgress   float64 `json:"aftermarketProgress"`
	AvgCommissionPerUnit  float64 `json:"avgCommissionPerUnit"`
	AftermarketAttachRate float64 `json:"aftermarketAttachRate"`
}

// ComputeGoalProgress folds a period's sales against the goal. Every average
// is defined as zero for an empty period; the percentages are uncapped.
func ComputeGoalProgress(sales []*Sale, goal SalesGoal) GoalProgress {
	progress := GoalProgress{CurrentUnits: len(sales)}

	if len(sales) > 0 {
		var commissionSum float64
		var aftermarketCount int
		for _, sale := range sales {
			commissionSum += sale.TotalCommission
			aftermarketCount += len(sale.AftermarketProducts)
		}
		progress.AvgCommissionPerUnit = commissionSum / float64(len(sales))
		progress.AftermarketAttachRate = float64(aftermarketCount) / float64(len(sales))
	}

	if goal.TargetUnits > 0 {
		progress.UnitsProgress = float64(progress.CurrentUnits) / float64(goal.TargetUnits) * 100
	}
	if goal.TargetCommission > 0 {
		progress.CommissionProgress = progress.AvgCommissionPerUnit / goal.TargetCommission * 100
	}
	if goal.TargetAftermarket > 0 {
		progress.AftermarketProgress = progress.AftermarketAttachRate / goal.TargetAftermarket * 100
	}

	return progress
}

// Display returns a copy with the percentages capped for progress bars.
func (p GoalProgress) Display() GoalProgress {
	capped := p
	capped.UnitsProgress = capPercent(p.UnitsProgress)
	capped.CommissionProgress = capPercent(p.CommissionProgress)
	capped.AftermarketProgress = capPercent(p.AftermarketProgress)
	return capped
}

func capPercent(pct float64) float64 {
	if pct > DisplayProgressCap {
		return DisplayProgressCap
	}
	return pct
}

type ProgressBand string

const (
	BandBehind    ProgressBand = "behind"
	BandOnTrack   ProgressBand = "onTrack"
	BandExceeding ProgressBand = "exceeding"
)

// BandFor tiers an uncapped percentage for the coaching surface.
func BandFor(pct float64) ProgressBand {
	switch {
	case pct >= 100:
		return BandExceeding
	case pct >= 50:
		return BandOnTrack
	default:
		return BandBehind
	}
}

// Milestone labels the finer-grained tier of an uncapped percentage,
// distinguishing 400%+ from merely exceeding the goal.
func Milestone(pct float64) string {
	switch {
	case pct >= 400:
		return "400%+ of goal!"
	case pct >= 300:
		return "300%+ of goal!"
	case pct >= 200:
		return "200%+ of goal!"
	case pct >= 150:
		return "150%+ of goal!"
	case pct >= 100:
		return "Goal achieved!"
	case pct >= 90:
		return "90% there!"
	case pct >= 80:
		return "80% complete!"
	case pct >= 70:
		return "70% there!"
	case pct >= 60:
		return "60% complete!"
	case pct >= 50:
		return "Halfway there!"
	case pct >= 40:
		return "40% complete"
	case pct >= 30:
		return "30% there"
	case pct >= 20:
		return "20% complete"
	case pct >= 10:
		return "10% started"
	default:
		return "Let's get started!"
	}
}
